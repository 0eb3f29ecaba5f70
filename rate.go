package gridledger

import "fmt"

// rateTable holds the live energy-to-currency conversion rates, in KRNL per
// kWh. Rate changes apply only to future pricing: settled transactions keep
// the amount they were priced at.
type rateTable struct {
	standard Money
	peak     Money
}

// defaultRates returns the community's launch pricing.
func defaultRates() rateTable {
	return rateTable{standard: M(0.10), peak: M(0.15)}
}

func (r *rateTable) get(peak bool) Money {
	if peak {
		return r.peak
	}
	return r.standard
}

func (r *rateTable) set(peak bool, value Money) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: rate %s", ErrNegativeAmount, value)
	}
	if peak {
		r.peak = value
	} else {
		r.standard = value
	}
	return nil
}
