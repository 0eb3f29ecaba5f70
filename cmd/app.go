// Package cmd implements the CLI application to manage an energy-trading
// ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/gridledger"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "ledger")

	c.Register(&addDeviceCmd{}, "devices")
	c.Register(&deviceStatusCmd{}, "devices")
	c.Register(&devicesCmd{}, "devices")

	c.Register(&payCmd{}, "transactions")
	c.Register(&sellEnergyCmd{}, "transactions")
	c.Register(&distributeCmd{}, "transactions")

	c.Register(&txCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&rateCmd{}, "rates")
	c.Register(&serveCmd{}, "server")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file (JSONL format)")
var configFile = flag.String("config", "", "Path to an optional YAML config file")

// DecodeLedgerFile loads the ledger working set from the app ledger file.
func DecodeLedgerFile() (*gridledger.LedgerService, error) {
	path := LedgerPath()
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting from an empty ledger")
		return gridledger.NewLedgerService(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := gridledger.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return l, nil
}

// SaveLedgerFile writes the ledger working set back to the app ledger file.
func SaveLedgerFile(l *gridledger.LedgerService) error {
	path := LedgerPath()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create ledger file %q: %w", path, err)
	}
	defer f.Close()

	if err := gridledger.EncodeLedger(f, l); err != nil {
		return fmt.Errorf("could not encode ledger file %q: %w", path, err)
	}
	return nil
}
