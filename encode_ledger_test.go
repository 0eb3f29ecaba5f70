package gridledger

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	// A JSONL stream with every record kind, empty lines included.
	jsonlStream := `
{"record":"rates","standard":0.12,"peak":0.2}
{"record":"user","id":"user1","name":"Admin User","role":"admin"}
{"record":"device","address":"0xAAA","name":"Solar Roof","type":"solar_panel","balance":105,"status":"active","energyProduced":250,"owner":"user1"}
{"record":"device","address":"0xBBB","name":"Charger","type":"ev_charger","balance":45,"status":"inactive","energyConsumed":120,"owner":"user1"}
{"record":"transaction","id":"tx-1","fromAddress":"0xBBB","toAddress":"0xAAA","amount":5,"timestamp":"2025-06-01T12:00:00Z","type":"energy_sale","energyAmount":50}
`
	ledger, err := DecodeLedger(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	if got, want := ledger.Rate(false), M(0.12); !got.Equal(want) {
		t.Errorf("standard rate = %s, want %s", got, want)
	}
	if got, want := ledger.Rate(true), M(0.2); !got.Equal(want) {
		t.Errorf("peak rate = %s, want %s", got, want)
	}

	users := ledger.Users()
	if len(users) != 1 || users[0].ID != "user1" || users[0].Role != Admin {
		t.Errorf("users = %+v, want one admin user1", users)
	}

	devices := ledger.Devices()
	if len(devices) != 2 {
		t.Fatalf("got %d devices, want 2", len(devices))
	}
	if d := devices[0]; d.Address != "0xAAA" || d.Type != SolarPanel ||
		!d.Balance.Equal(M(105)) || !d.EnergyProduced.Equal(E(250)) {
		t.Errorf("devices[0] = %+v, want the encoded solar panel", d)
	}
	if d := devices[1]; d.Status != Inactive || !d.EnergyConsumed.Equal(E(120)) {
		t.Errorf("devices[1] = %+v, want the encoded inactive charger", d)
	}

	// Transactions come back as settled history: balances are not replayed.
	txs := ledger.Transactions(TxFilter{})
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	if tx := txs[0]; tx.ID != "tx-1" || tx.Type != EnergySale || !tx.Energy.Equal(E(50)) {
		t.Errorf("txs[0] = %+v, want the encoded energy sale", tx)
	}
	if got, want := balance(t, ledger, "0xAAA"), M(105); !got.Equal(want) {
		t.Errorf("balance after decode = %s, want the encoded %s", got, want)
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		stream string
	}{
		{"not json", "device"},
		{"unknown record kind", `{"record":"meter","address":"0xAAA"}`},
		{"duplicate device address", `{"record":"device","address":"0xAAA","name":"A","type":"home","balance":0,"status":"active"}
{"record":"device","address":"0xAAA","name":"B","type":"home","balance":0,"status":"active"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.stream)); err == nil {
				t.Error("DecodeLedger succeeded, want error")
			}
		})
	}
}

func TestEncodeDecodeLedger_RoundTrip(t *testing.T) {
	l := testLedger()
	if _, err := l.AddUser("user1", "Admin User", Admin); err != nil {
		t.Fatal(err)
	}
	mustAddDevice(t, l, "0xAAA", "Solar Roof", SolarPanel, M(100))
	mustAddDevice(t, l, "0xBBB", "Charger", EVCharger, M(50))
	if err := l.SetRate(true, M(0.2)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Transfer("0xBBB", "0xAAA", M(5), EnergySale, E(50)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Transfer("0xAAA", "0xGRID", M(2), Payment, E(0)); err != nil {
		t.Fatal(err)
	}

	var first bytes.Buffer
	if err := EncodeLedger(&first, l); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	decoded, err := DecodeLedger(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	// The encoding is canonical: encoding the decoded ledger reproduces the
	// stream byte for byte.
	var second bytes.Buffer
	if err := EncodeLedger(&second, decoded); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("round trip is not canonical.\nFirst:\n%s\nSecond:\n%s", first.String(), second.String())
	}
}
