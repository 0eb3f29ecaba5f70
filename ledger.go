package gridledger

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// DistributionMode selects how a revenue distribution is split across its
// recipients.
type DistributionMode string

const (
	// EqualSplit gives every recipient the same share.
	EqualSplit DistributionMode = "equal"
	// WeightedSplit gives each recipient a share proportional to its weight.
	WeightedSplit DistributionMode = "weighted"
)

// ParseDistributionMode parses a string into a DistributionMode.
func ParseDistributionMode(s string) (DistributionMode, error) {
	switch DistributionMode(s) {
	case EqualSplit, WeightedSplit:
		return DistributionMode(s), nil
	default:
		return "", fmt.Errorf("unknown distribution mode: %q", s)
	}
}

// LedgerService is the authoritative in-memory ledger of one energy-trading
// community: the device registry, the append-only transaction log, the rate
// table and the user roster. Construct one per process (or per test) with
// NewLedgerService and share the handle; all methods are safe for concurrent
// use.
type LedgerService struct {
	mu       sync.Mutex
	registry *registry
	log      []Transaction
	rates    rateTable
	users    []User

	// injected for deterministic tests
	now   func() time.Time
	newID func() string
}

// NewLedgerService creates an empty ledger with the default energy rates.
func NewLedgerService() *LedgerService {
	return &LedgerService{
		registry: newRegistry(),
		rates:    defaultRates(),
		now:      time.Now,
		newID:    newTxID,
	}
}

// AddDevice registers a new device with the given initial balance and sets
// it active. The address must be unique for the lifetime of the registry.
// Energy meters start at zero for the device types that track them. An empty
// owner defaults to the first registered user, if any.
func (l *LedgerService) AddDevice(address, name string, typ DeviceType, initialBalance Money, owner string) (Device, error) {
	if _, err := ParseDeviceType(string(typ)); err != nil {
		return Device{}, err
	}
	if name == "" {
		return Device{}, fmt.Errorf("device name is missing")
	}
	if initialBalance.IsNegative() {
		return Device{}, fmt.Errorf("%w: initial balance %s", ErrNegativeAmount, initialBalance)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if owner == "" && len(l.users) > 0 {
		owner = l.users[0].ID
	}
	d, err := l.registry.add(Device{
		Address:        address,
		Name:           name,
		Type:           typ,
		Balance:        initialBalance,
		Status:         Active,
		EnergyProduced: E(0),
		EnergyConsumed: E(0),
		Owner:          owner,
	})
	if err != nil {
		return Device{}, err
	}
	return *d, nil
}

// SetDeviceStatus toggles a device between active and inactive.
func (l *LedgerService) SetDeviceStatus(address string, status DeviceStatus) error {
	if _, err := ParseDeviceStatus(string(status)); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	d := l.registry.get(address)
	if d == nil {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, address)
	}
	d.Status = status
	return nil
}

// Device returns a copy of the device at the given address.
func (l *LedgerService) Device(address string) (Device, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	d := l.registry.get(address)
	if d == nil {
		return Device{}, false
	}
	return *d, true
}

// Devices returns a snapshot of every registered device in insertion order.
func (l *LedgerService) Devices() []Device {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.list()
}

// AddUser records a user in the roster. Users are reference data: the
// engine never checks roles against operations.
func (l *LedgerService) AddUser(id, name string, role Role) (User, error) {
	if _, err := ParseRole(string(role)); err != nil {
		return User{}, err
	}
	if id == "" {
		return User{}, fmt.Errorf("user id is missing")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, u := range l.users {
		if u.ID == id {
			return User{}, fmt.Errorf("user %q already registered", id)
		}
	}
	u := User{ID: id, Name: name, Role: role}
	l.users = append(l.users, u)
	return u, nil
}

// Users returns a snapshot of the user roster.
func (l *LedgerService) Users() []User {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]User, len(l.users))
	copy(out, l.users)
	return out
}

// Transfer moves value from one address to another and appends the settled
// Transaction to the log. The whole sequence (debit, credit, record) runs
// as one critical section, so concurrent transfers touching the same device
// never interleave their balance updates.
//
// Neither address is required to resolve to a registered device: an
// unresolved side skips its balance update, so a transfer can legitimately
// settle against an off-registry counterparty such as an external market.
// The source debit is clamped at zero; the recorded Transaction always
// carries the requested amount, not the possibly smaller clamped movement.
func (l *LedgerService) Transfer(from, to string, amount Money, typ TxType, energy Energy) (Transaction, error) {
	if _, err := ParseTxType(string(typ)); err != nil {
		return Transaction{}, err
	}
	if from == "" || to == "" {
		return Transaction{}, fmt.Errorf("transfer requires both a from and a to address")
	}
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: transfer of %s", ErrNegativeAmount, amount)
	}
	if energy.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: energy amount %s", ErrNegativeAmount, energy)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.registry.adjustBalance(from, amount.Neg())
	l.registry.adjustBalance(to, amount)

	tx := Transaction{
		ID:        l.newID(),
		From:      from,
		To:        to,
		Amount:    amount,
		Timestamp: l.now(),
		Type:      typ,
		Energy:    energy,
	}
	l.log = append(l.log, tx)
	return tx, nil
}

// Distribute splits totalAmount from one source across every recipient,
// each share settled as an independent distribution Transfer. Structural
// validation (recipient count, weight count, weight sum) happens before any
// transfer; past that point the sequence is best-effort: a failure aborts
// the remaining shares but already-settled transfers stay committed.
// Individual transfers remain atomic, but unrelated transfers may
// interleave with the sequence.
func (l *LedgerService) Distribute(from string, to []string, totalAmount Money, mode DistributionMode, weights []decimal.Decimal) ([]Transaction, error) {
	if totalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: distribution of %s", ErrNegativeAmount, totalAmount)
	}
	if len(to) == 0 {
		return nil, ErrNoRecipients
	}

	shares := make([]Money, 0, len(to))
	switch mode {
	case EqualSplit:
		share := Money{value: totalAmount.value.Div(decimal.NewFromInt(int64(len(to))))}.round()
		for range to {
			shares = append(shares, share)
		}
	case WeightedSplit:
		if len(weights) != len(to) {
			return nil, fmt.Errorf("%w: %d weights for %d recipients", ErrWeightMismatch, len(weights), len(to))
		}
		sum := decimal.Zero
		for _, w := range weights {
			sum = sum.Add(w)
		}
		if sum.IsZero() {
			return nil, ErrZeroWeightSum
		}
		for _, w := range weights {
			shares = append(shares, Money{value: totalAmount.value.Mul(w).Div(sum)}.round())
		}
	default:
		return nil, fmt.Errorf("unknown distribution mode: %q", mode)
	}

	txs := make([]Transaction, 0, len(to))
	for i, recipient := range to {
		tx, err := l.Transfer(from, recipient, shares[i], Distribution, Energy{})
		if err != nil {
			// Best effort: earlier shares stay committed.
			return txs, fmt.Errorf("distribution aborted after %d of %d shares: %w", i, len(to), err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// Transactions returns the settled transactions matching the filter, newest
// first. The result is a snapshot: later appends do not show through. A
// zero filter returns the whole log.
func (l *LedgerService) Transactions(filter TxFilter) []Transaction {
	l.mu.Lock()
	matched := make([]Transaction, 0, len(l.log))
	for _, tx := range l.log {
		if filter.Matches(tx) {
			matched = append(matched, tx)
		}
	}
	l.mu.Unlock()

	// Query order is by timestamp, independent of the log's append order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[j].Timestamp.Before(matched[i].Timestamp)
	})
	return matched
}

// Rate returns the live energy price, in KRNL per kWh.
func (l *LedgerService) Rate(peak bool) Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rates.get(peak)
}

// SetRate updates an energy price. The change applies only to future
// pricing; settled transactions keep their amounts.
func (l *LedgerService) SetRate(peak bool, value Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rates.set(peak, value)
}

// PriceEnergy converts an energy quantity into a payable amount at the
// current standard or peak rate.
func (l *LedgerService) PriceEnergy(energy Energy, peak bool) (Money, error) {
	if energy.IsNegative() {
		return Money{}, fmt.Errorf("%w: energy amount %s", ErrNegativeAmount, energy)
	}
	return l.Rate(peak).MulEnergy(energy), nil
}
