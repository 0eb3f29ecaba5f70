package gridledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// recordKind discriminates the JSONL line types of an encoded ledger.
type recordKind string

const (
	recordRates       recordKind = "rates"
	recordUser        recordKind = "user"
	recordDevice      recordKind = "device"
	recordTransaction recordKind = "transaction"
)

// EncodeLedger writes the full ledger state as JSONL: one rates line, then
// users, devices and transactions, each on its own line. The output is
// canonical: encoding the decoded result reproduces it byte for byte.
//
// The engine itself never touches disk; this codec exists so a short-lived
// consumer like the kwl CLI can carry its working set between invocations.
func EncodeLedger(w io.Writer, l *LedgerService) error {
	l.mu.Lock()
	rates := l.rates
	users := make([]User, len(l.users))
	copy(users, l.users)
	devices := l.registry.list()
	txs := make([]Transaction, len(l.log))
	copy(txs, l.log)
	l.mu.Unlock()

	var lines []any

	var rw jsonObjectWriter
	rw.Append("record", recordRates)
	rw.Append("standard", rates.standard)
	rw.Append("peak", rates.peak)
	lines = append(lines, &rw)

	for _, u := range users {
		var uw jsonObjectWriter
		uw.Append("record", recordUser)
		uw.EmbedFrom(u)
		lines = append(lines, &uw)
	}
	for _, d := range devices {
		var dw jsonObjectWriter
		dw.Append("record", recordDevice)
		dw.EmbedFrom(d)
		lines = append(lines, &dw)
	}
	for _, tx := range txs {
		var tw jsonObjectWriter
		tw.Append("record", recordTransaction)
		tw.EmbedFrom(tx)
		lines = append(lines, &tw)
	}

	for _, line := range lines {
		b, err := json.Marshal(line)
		if err != nil {
			return fmt.Errorf("could not encode ledger line: %w", err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL stream produced by EncodeLedger and rebuilds
// the LedgerService. Transactions are restored as settled history: their
// balance effects are already reflected in the encoded device balances and
// are not replayed.
func DecodeLedger(r io.Reader) (*LedgerService, error) {
	l := NewLedgerService()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record recordKind `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case recordRates:
			var temp struct {
				Standard Money `json:"standard"`
				Peak     Money `json:"peak"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("could not decode rates line: %w", err)
			}
			if err := l.rates.set(false, temp.Standard); err != nil {
				return nil, err
			}
			if err := l.rates.set(true, temp.Peak); err != nil {
				return nil, err
			}
		case recordUser:
			var u User
			if err := json.Unmarshal(lineBytes, &u); err != nil {
				return nil, fmt.Errorf("could not decode user line: %w", err)
			}
			l.users = append(l.users, u)
		case recordDevice:
			var d Device
			if err := json.Unmarshal(lineBytes, &d); err != nil {
				return nil, fmt.Errorf("could not decode device line: %w", err)
			}
			if _, err := l.registry.add(d); err != nil {
				return nil, err
			}
		case recordTransaction:
			var tx Transaction
			if err := json.Unmarshal(lineBytes, &tx); err != nil {
				return nil, fmt.Errorf("could not decode transaction line: %w", err)
			}
			l.log = append(l.log, tx)
		default:
			return nil, fmt.Errorf("unknown record kind %q in line %q", identifier.Record, string(lineBytes))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger stream: %w", err)
	}
	return l, nil
}
