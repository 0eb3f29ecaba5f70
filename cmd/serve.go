package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/etnz/gridledger/api"
	"github.com/google/subcommands"
)

type serveCmd struct {
	listen string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the ledger over HTTP" }
func (*serveCmd) Usage() string {
	return `kwl serve [-listen <addr>]

  Loads the ledger file (if any) and serves it over HTTP. The server holds
  the ledger in memory for its lifetime and does not write back to the
  ledger file.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.listen, "listen", "", "Listen address. Defaults to the config file value or :8080.")
}

// listenAddr resolves the listen address: explicit flag, then config file,
// then the default.
func (c *serveCmd) listenAddr() string {
	if c.listen != "" {
		return c.listen
	}
	if cfg, err := loadConfig(); err == nil && cfg.Listen != "" {
		return cfg.Listen
	}
	return ":8080"
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	addr := c.listenAddr()
	log.Printf("serving ledger API on %s", addr)
	if err := http.ListenAndServe(addr, api.NewHandler(ledger).Router()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
