package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/gridledger"
	"gopkg.in/yaml.v3"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2025-06-01", want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)},
		{in: "2025-06-01T12:30:00Z", want: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)},
		{in: "yesterday", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseDate(%q) succeeded, want error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate(%q): %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("parseDate(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestConfigYAML(t *testing.T) {
	var cfg Config
	data := []byte("ledger_file: /var/lib/kwl/ledger.jsonl\nlisten: \":9090\"\n")
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if cfg.LedgerFile != "/var/lib/kwl/ledger.jsonl" {
		t.Errorf("LedgerFile = %q, want %q", cfg.LedgerFile, "/var/lib/kwl/ledger.jsonl")
	}
	if cfg.Listen != ":9090" {
		t.Errorf("Listen = %q, want %q", cfg.Listen, ":9090")
	}
}

func TestLedgerFileRoundTrip(t *testing.T) {
	old := *ledgerFile
	*ledgerFile = filepath.Join(t.TempDir(), "ledger.jsonl")
	defer func() { *ledgerFile = old }()

	// A missing ledger file is not an error: the tool starts empty.
	l, err := DecodeLedgerFile()
	if err != nil {
		t.Fatalf("DecodeLedgerFile on missing file: %v", err)
	}
	if got := len(l.Devices()); got != 0 {
		t.Fatalf("got %d devices from a missing file, want 0", got)
	}

	if _, err := l.AddDevice("0xAAA", "Solar Roof", gridledger.SolarPanel, gridledger.M(100), ""); err != nil {
		t.Fatal(err)
	}
	if err := SaveLedgerFile(l); err != nil {
		t.Fatalf("SaveLedgerFile: %v", err)
	}

	back, err := DecodeLedgerFile()
	if err != nil {
		t.Fatalf("DecodeLedgerFile: %v", err)
	}
	devices := back.Devices()
	if len(devices) != 1 || devices[0].Address != "0xAAA" {
		t.Errorf("devices = %+v, want the saved 0xAAA", devices)
	}
	if !devices[0].Balance.Equal(gridledger.M(100)) {
		t.Errorf("balance = %s, want %s", devices[0].Balance, gridledger.M(100))
	}
}
