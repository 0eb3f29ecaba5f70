package gridledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Energy represents a quantity of energy in kWh, held as an exact decimal.
type Energy struct {
	value decimal.Decimal
}

// E creates an Energy from any numeric value.
func E[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Energy {
	return Energy{value: newDecimal(value)}
}

// ParseEnergy parses a decimal string ("50", "120.5") into an Energy.
func ParseEnergy(s string) (Energy, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Energy{}, fmt.Errorf("invalid energy amount %q: %w", s, err)
	}
	return Energy{value: d}, nil
}

func (e Energy) Equal(f Energy) bool      { return e.value.Equal(f.value) }
func (e Energy) IsZero() bool             { return e.value.IsZero() }
func (e Energy) IsNegative() bool         { return e.value.IsNegative() }
func (e Energy) Add(f Energy) Energy      { return Energy{value: e.value.Add(f.value)} }
func (e Energy) Sub(f Energy) Energy      { return Energy{value: e.value.Sub(f.value)} }
func (e Energy) String() string           { return e.value.String() }
func (e Energy) Decimal() decimal.Decimal { return e.value }

// MarshalJSON implements the json.Marshaler interface for Energy.
func (e Energy) MarshalJSON() ([]byte, error) {
	return e.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Energy.
func (e *Energy) UnmarshalJSON(data []byte) error {
	return e.value.UnmarshalJSON(data)
}
