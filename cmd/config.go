package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config carries the optional file-based settings of the kwl tool. Every
// field has a flag counterpart; an explicitly set flag wins over the file.
type Config struct {
	// LedgerFile is the path of the JSONL ledger working set.
	LedgerFile string `yaml:"ledger_file"`
	// Listen is the address the serve command binds to.
	Listen string `yaml:"listen"`
}

// defaultConfigFile is probed when no -config flag is given.
const defaultConfigFile = "kwl.yaml"

var (
	configOnce sync.Once
	config     Config
	configErr  error
)

// loadConfig reads the YAML config file once. A missing default file is not
// an error: the tool runs on flag defaults alone.
func loadConfig() (Config, error) {
	configOnce.Do(func() {
		path := *configFile
		probed := false
		if path == "" {
			path = defaultConfigFile
			probed = true
		}
		data, err := os.ReadFile(path)
		if err != nil {
			if probed && errors.Is(err, fs.ErrNotExist) {
				return
			}
			configErr = fmt.Errorf("could not read config file %q: %w", path, err)
			return
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			configErr = fmt.Errorf("could not parse config file %q: %w", path, err)
		}
	})
	return config, configErr
}

// flagWasSet reports whether the named flag was given on the command line.
func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// LedgerPath resolves the ledger file path: explicit flag, then config
// file, then the flag default.
func LedgerPath() string {
	if flagWasSet("ledger-file") {
		return *ledgerFile
	}
	if cfg, err := loadConfig(); err == nil && cfg.LedgerFile != "" {
		return cfg.LedgerFile
	}
	return *ledgerFile
}
