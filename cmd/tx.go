package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/gridledger"
	"github.com/etnz/gridledger/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	address string
	typ     string
	from    string
	to      string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, newest first" }
func (*txCmd) Usage() string {
	return `kwl tx [-address <addr>] [-type <type>] [-from <date>] [-to <date>]

  Lists settled transactions, newest first. Filters combine: an address
  matches either side of a transaction, and the date bounds are inclusive.
  Dates are given as 2006-01-02 or full RFC 3339 timestamps.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.address, "address", "", "Only transactions touching this address.")
	f.StringVar(&c.typ, "type", "", "Only transactions of this type.")
	f.StringVar(&c.from, "from", "", "Only transactions at or after this date.")
	f.StringVar(&c.to, "to", "", "Only transactions at or before this date.")
}

// parseDate accepts a plain date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected 2006-01-02 or RFC 3339", s)
	}
	return t, nil
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filter gridledger.TxFilter
	filter.Address = c.address

	if c.typ != "" {
		typ, err := gridledger.ParseTxType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		filter.Type = typ
	}
	if c.from != "" {
		t, err := parseDate(c.from)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		filter.From = t
	}
	if c.to != "" {
		t, err := parseDate(c.to)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		filter.To = t
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Transactions(ledger.Transactions(filter)))
	return subcommands.ExitSuccess
}
