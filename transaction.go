package gridledger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TxType is a typed string identifying the kind of value movement a
// transaction settles.
type TxType string

// Transaction types recorded in the log.
const (
	Payment      TxType = "payment"
	EnergySale   TxType = "energy_sale"
	Distribution TxType = "distribution"
	Subsidy      TxType = "subsidy"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Payment, EnergySale, Distribution, Subsidy:
		return TxType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is the immutable record of one settled transfer. It stores the
// requested amount, which can exceed the value actually moved when the
// source balance was clamped at zero. Either address may reference an
// off-registry counterparty.
type Transaction struct {
	ID        string
	From      string
	To        string
	Amount    Money
	Timestamp time.Time
	Type      TxType
	Energy    Energy // non-zero only for energy-priced transfers
}

// newTxID generates a unique transaction id. Ids are never reused; there is
// no coordination requirement beyond uniqueness, so a random UUID fits.
func newTxID() string {
	return uuid.NewString()
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("fromAddress", t.From)
	w.Append("toAddress", t.To)
	w.Append("amount", t.Amount)
	w.Append("timestamp", t.Timestamp)
	w.Append("type", t.Type)
	w.OptionalEnergy("energyAmount", t.Energy)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        string    `json:"id"`
		From      string    `json:"fromAddress"`
		To        string    `json:"toAddress"`
		Amount    Money     `json:"amount"`
		Timestamp time.Time `json:"timestamp"`
		Type      TxType    `json:"type"`
		Energy    Energy    `json:"energyAmount"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.ID = temp.ID
	t.From = temp.From
	t.To = temp.To
	t.Amount = temp.Amount
	t.Timestamp = temp.Timestamp
	t.Type = temp.Type
	t.Energy = temp.Energy
	return nil
}

// TxFilter selects transactions from the log. Zero-valued fields match
// everything; set fields are combined as a conjunction.
type TxFilter struct {
	// Address matches transactions where it equals either side.
	Address string
	// Type matches the transaction type exactly.
	Type TxType
	// From and To are inclusive bounds on the timestamp. A zero time
	// leaves that side unbounded.
	From time.Time
	To   time.Time
}

// Matches reports whether the transaction satisfies every set predicate.
func (f TxFilter) Matches(tx Transaction) bool {
	if f.Address != "" && tx.From != f.Address && tx.To != f.Address {
		return false
	}
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if !f.From.IsZero() && tx.Timestamp.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && tx.Timestamp.After(f.To) {
		return false
	}
	return true
}
