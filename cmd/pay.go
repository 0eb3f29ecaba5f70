package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/gridledger"
	"github.com/google/subcommands"
)

type payCmd struct {
	from   string
	to     string
	amount string
	typ    string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "send a direct payment between two devices" }
func (*payCmd) Usage() string {
	return `kwl pay -from <addr> -to <addr> -amount <amount> [-type <type>]

  Moves value from one device to another and records the transaction.
  Either address may reference an off-registry counterparty; that side's
  balance is then left untouched. If the source balance is smaller than
  the amount it is drained to zero, and the transaction still records the
  requested amount.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source device address.")
	f.StringVar(&c.to, "to", "", "Destination device address.")
	f.StringVar(&c.amount, "amount", "", "Amount to transfer, in KRNL.")
	f.StringVar(&c.typ, "type", string(gridledger.Payment), "Transaction type (payment, subsidy).")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := gridledger.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	typ, err := gridledger.ParseTxType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, err := ledger.Transfer(c.from, c.to, amount, typ, gridledger.Energy{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sending payment: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveLedgerFile(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Sent %s from %s to %s (transaction %s)\n", tx.Amount, tx.From, tx.To, tx.ID)
	return subcommands.ExitSuccess
}
