package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/gridledger/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: exits early when invoked by the completion hook.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"init":          {},
			"add-device":    {Flags: map[string]complete.Predictor{"type": predict.Set{"solar_panel", "battery", "ev_charger", "home", "grid"}}},
			"device-status": {Flags: map[string]complete.Predictor{"status": predict.Set{"active", "inactive"}}},
			"devices":       {},
			"pay":           {Flags: map[string]complete.Predictor{"type": predict.Set{"payment", "subsidy"}}},
			"sell-energy":   {},
			"distribute":    {Flags: map[string]complete.Predictor{"mode": predict.Set{"equal", "weighted"}}},
			"tx":            {Flags: map[string]complete.Predictor{"type": predict.Set{"payment", "energy_sale", "distribution", "subsidy"}}},
			"summary":       {},
			"rate":          {},
			"serve":         {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"config":      predict.Files("*.yaml"),
		},
	}
	completion.Complete("kwl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
