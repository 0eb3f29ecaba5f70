package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/gridledger"
	"github.com/google/subcommands"
)

type addDeviceCmd struct {
	address string
	name    string
	typ     string
	balance string
	owner   string
}

func (*addDeviceCmd) Name() string     { return "add-device" }
func (*addDeviceCmd) Synopsis() string { return "register a new device in the ledger" }
func (*addDeviceCmd) Usage() string {
	return `kwl add-device -address <addr> -name <name> -type <type> [-balance <amount>] [-owner <user>]

  Registers a new device and sets it active. The type is one of
  solar_panel, battery, ev_charger, home, grid. The address must not be
  registered yet.
`
}

func (c *addDeviceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.address, "address", "", "Unique device address.")
	f.StringVar(&c.name, "name", "", "Human readable device name.")
	f.StringVar(&c.typ, "type", "", "Device type (solar_panel, battery, ev_charger, home, grid).")
	f.StringVar(&c.balance, "balance", "0", "Initial balance in KRNL.")
	f.StringVar(&c.owner, "owner", "", "Owning user id. Defaults to the first registered user.")
}

func (c *addDeviceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := gridledger.ParseDeviceType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	balance, err := gridledger.ParseMoney(c.balance)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	device, err := ledger.AddDevice(c.address, c.name, typ, balance, c.owner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding device: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveLedgerFile(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registered %s device %q at %s with balance %s\n", device.Type, device.Name, device.Address, device.Balance)
	return subcommands.ExitSuccess
}
