package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/gridledger"
	"github.com/google/subcommands"
)

type initCmd struct {
	demo bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new ledger file" }
func (*initCmd) Usage() string {
	return `kwl init [-demo]

  Creates a new ledger file. With -demo, the ledger is seeded with the
  community demo data set (two users, three devices, one energy sale);
  otherwise it starts empty with the default rates.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.demo, "demo", false, "Seed the ledger with the demo data set.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(LedgerPath()); err == nil {
		fmt.Fprintf(os.Stderr, "Error: ledger file %q already exists\n", LedgerPath())
		return subcommands.ExitFailure
	}

	ledger := gridledger.NewLedgerService()
	if c.demo {
		ledger = gridledger.DemoLedger()
	}

	if err := SaveLedgerFile(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created ledger file %s\n", LedgerPath())
	return subcommands.ExitSuccess
}
