package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/gridledger"
	"github.com/google/subcommands"
)

type deviceStatusCmd struct {
	address string
	status  string
}

func (*deviceStatusCmd) Name() string     { return "device-status" }
func (*deviceStatusCmd) Synopsis() string { return "set a device active or inactive" }
func (*deviceStatusCmd) Usage() string {
	return `kwl device-status -address <addr> -status <active|inactive>

  Toggles the status of a registered device.
`
}

func (c *deviceStatusCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.address, "address", "", "Device address.")
	f.StringVar(&c.status, "status", "", "New status (active or inactive).")
}

func (c *deviceStatusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := gridledger.ParseDeviceStatus(c.status)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := ledger.SetDeviceStatus(c.address, status); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating device status: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveLedgerFile(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Device %s is now %s\n", c.address, status)
	return subcommands.ExitSuccess
}
