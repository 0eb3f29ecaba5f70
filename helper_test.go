package gridledger

import (
	"fmt"
	"testing"
	"time"
)

// testNow is the base timestamp for deterministic ledgers.
var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// testLedger returns a ledger with a deterministic id sequence ("tx-1",
// "tx-2", ...) and a clock that advances one minute per transaction.
// Both injected funcs are only ever called under the ledger lock.
func testLedger() *LedgerService {
	l := NewLedgerService()
	var ids int
	l.newID = func() string {
		ids++
		return fmt.Sprintf("tx-%d", ids)
	}
	var ticks int
	l.now = func() time.Time {
		t := testNow.Add(time.Duration(ticks) * time.Minute)
		ticks++
		return t
	}
	return l
}

// mustAddDevice registers a device or fails the test.
func mustAddDevice(t *testing.T, l *LedgerService, address, name string, typ DeviceType, balance Money) Device {
	t.Helper()
	d, err := l.AddDevice(address, name, typ, balance, "")
	if err != nil {
		t.Fatalf("AddDevice(%q): %v", address, err)
	}
	return d
}

// balance returns the current balance of a registered device or fails the
// test when the address does not resolve.
func balance(t *testing.T, l *LedgerService, address string) Money {
	t.Helper()
	d, ok := l.Device(address)
	if !ok {
		t.Fatalf("device %q not found", address)
	}
	return d.Balance
}
