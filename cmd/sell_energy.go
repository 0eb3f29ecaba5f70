package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/gridledger"
	"github.com/google/subcommands"
)

type sellEnergyCmd struct {
	seller string
	buyer  string
	energy string
	peak   bool
}

func (*sellEnergyCmd) Name() string     { return "sell-energy" }
func (*sellEnergyCmd) Synopsis() string { return "settle an energy sale at the current rate" }
func (*sellEnergyCmd) Usage() string {
	return `kwl sell-energy -seller <addr> -buyer <addr> -energy <kWh> [-peak]

  Prices the energy quantity at the current standard (or peak) rate and
  settles the sale: the buyer pays the seller, and the transaction records
  both the amount and the energy sold. Later rate changes never reprice a
  settled sale.
`
}

func (c *sellEnergyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.seller, "seller", "", "Device address selling the energy.")
	f.StringVar(&c.buyer, "buyer", "", "Device address buying the energy.")
	f.StringVar(&c.energy, "energy", "", "Energy quantity sold, in kWh.")
	f.BoolVar(&c.peak, "peak", false, "Price at the peak-hour rate.")
}

func (c *sellEnergyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	energy, err := gridledger.ParseEnergy(c.energy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	amount, err := ledger.PriceEnergy(energy, c.peak)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tx, err := ledger.Transfer(c.buyer, c.seller, amount, gridledger.EnergySale, energy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error settling energy sale: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveLedgerFile(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Sold %s kWh for %s from %s to %s (transaction %s)\n", energy, tx.Amount, c.seller, c.buyer, tx.ID)
	return subcommands.ExitSuccess
}
