package gridledger

import "errors"

// Sentinel errors for the ledger's failure taxonomy. Callers match them with
// errors.Is; the wrapping message carries the offending address or value.
var (
	// ErrDeviceNotFound reports an operation on an address that is required
	// to resolve to a registered device (status changes). Transfers never
	// return it: an unresolved side of a transfer is a deliberate no-op.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrDuplicateAddress reports an AddDevice on an already registered
	// address. Addresses are unique for the registry's lifetime.
	ErrDuplicateAddress = errors.New("device address already registered")

	// ErrNegativeAmount reports a negative monetary or energy amount where
	// only non-negative values are meaningful.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrNoRecipients reports a distribution with an empty recipient list.
	ErrNoRecipients = errors.New("distribution requires at least one recipient")

	// ErrWeightMismatch reports a weighted distribution whose weight count
	// differs from its recipient count.
	ErrWeightMismatch = errors.New("weight count does not match recipient count")

	// ErrZeroWeightSum reports a weighted distribution whose weights sum to
	// zero, which would divide every share by zero.
	ErrZeroWeightSum = errors.New("distribution weights sum to zero")
)
