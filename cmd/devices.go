package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/gridledger/renderer"
	"github.com/google/subcommands"
)

type devicesCmd struct{}

func (*devicesCmd) Name() string     { return "devices" }
func (*devicesCmd) Synopsis() string { return "list all registered devices" }
func (*devicesCmd) Usage() string {
	return `kwl devices

  Lists every registered device with its balance, status and energy meter,
  in registration order.
`
}

func (*devicesCmd) SetFlags(*flag.FlagSet) {}

func (c *devicesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Devices(ledger.Devices()))
	return subcommands.ExitSuccess
}
