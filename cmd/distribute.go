package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/gridledger"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type distributeCmd struct {
	from    string
	to      string
	amount  string
	mode    string
	weights string
}

func (*distributeCmd) Name() string     { return "distribute" }
func (*distributeCmd) Synopsis() string { return "split revenue across several devices" }
func (*distributeCmd) Usage() string {
	return `kwl distribute -from <addr> -to <addr,addr,...> -amount <total> [-mode equal|weighted -weights <w,w,...>]

  Splits the total amount across every recipient, each share settled as its
  own distribution transaction. Weighted mode requires one weight per
  recipient. The sequence is best effort: a failure partway leaves the
  earlier shares committed.
`
}

func (c *distributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source device address.")
	f.StringVar(&c.to, "to", "", "Comma-separated recipient addresses.")
	f.StringVar(&c.amount, "amount", "", "Total amount to distribute, in KRNL.")
	f.StringVar(&c.mode, "mode", string(gridledger.EqualSplit), "Split mode (equal or weighted).")
	f.StringVar(&c.weights, "weights", "", "Comma-separated weights, one per recipient (weighted mode).")
}

func (c *distributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := gridledger.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	mode, err := gridledger.ParseDistributionMode(c.mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var recipients []string
	if c.to != "" {
		recipients = strings.Split(c.to, ",")
	}

	var weights []decimal.Decimal
	if c.weights != "" {
		for _, s := range strings.Split(c.weights, ",") {
			w, err := decimal.NewFromString(strings.TrimSpace(s))
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid weight %q: %v\n", s, err)
				return subcommands.ExitUsageError
			}
			weights = append(weights, w)
		}
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	txs, err := ledger.Distribute(c.from, recipients, amount, mode, weights)
	if err != nil {
		// Earlier shares may have settled: save them before reporting.
		if len(txs) > 0 {
			if saveErr := SaveLedgerFile(ledger); saveErr != nil {
				fmt.Fprintln(os.Stderr, saveErr)
			}
		}
		fmt.Fprintf(os.Stderr, "Error distributing revenue: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveLedgerFile(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, tx := range txs {
		fmt.Printf("Distributed %s to %s (transaction %s)\n", tx.Amount, tx.To, tx.ID)
	}
	return subcommands.ExitSuccess
}
