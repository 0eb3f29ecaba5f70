package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/gridledger"
	"github.com/google/subcommands"
)

type rateCmd struct {
	set  string
	peak bool
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show or update the energy rates" }
func (*rateCmd) Usage() string {
	return `kwl rate [-set <value> [-peak]]

  Without -set, shows the current standard and peak rates, in KRNL per
  kWh. With -set, updates the standard (or, with -peak, the peak) rate.
  Rate changes apply only to future pricing, never to settled sales.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "New rate value, in KRNL per kWh.")
	f.BoolVar(&c.peak, "peak", false, "Target the peak-hour rate.")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.set == "" {
		fmt.Printf("standard: %s per kWh\n", ledger.Rate(false))
		fmt.Printf("peak:     %s per kWh\n", ledger.Rate(true))
		return subcommands.ExitSuccess
	}

	value, err := gridledger.ParseMoney(c.set)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := ledger.SetRate(c.peak, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating rate: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveLedgerFile(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.peak {
		fmt.Printf("Peak rate set to %s per kWh\n", value)
	} else {
		fmt.Printf("Standard rate set to %s per kWh\n", value)
	}
	return subcommands.ExitSuccess
}
