package gridledger

import "fmt"

// registry owns the set of devices. It preserves insertion order for
// listing and keeps an address index for O(1) resolution. It is not safe
// for concurrent use on its own: the owning LedgerService serializes all
// access under its lock.
type registry struct {
	devices []*Device
	index   map[string]*Device
}

func newRegistry() *registry {
	return &registry{
		devices: make([]*Device, 0),
		index:   make(map[string]*Device),
	}
}

// add registers a new device. The address must not already be registered:
// re-adding an address would create two entries racing for one balance.
func (r *registry) add(d Device) (*Device, error) {
	if d.Address == "" {
		return nil, fmt.Errorf("device address is missing")
	}
	if _, ok := r.index[d.Address]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateAddress, d.Address)
	}
	dev := &d
	r.devices = append(r.devices, dev)
	r.index[d.Address] = dev
	return dev, nil
}

// get resolves an address to its device, or nil if unregistered.
func (r *registry) get(address string) *Device {
	return r.index[address]
}

// list returns a copy of every device in insertion order.
func (r *registry) list() []Device {
	out := make([]Device, 0, len(r.devices))
	for _, d := range r.devices {
		out = append(out, *d)
	}
	return out
}

// adjustBalance applies a signed delta to a device's balance, clamping the
// result at zero on the downward side. It returns the new balance and
// whether the address resolved; an unresolved address is a no-op.
// The clamp means a debit larger than the balance silently moves less than
// requested: the transfer engine records intent, not the clamped delta.
func (r *registry) adjustBalance(address string, delta Money) (Money, bool) {
	d, ok := r.index[address]
	if !ok {
		return Money{}, false
	}
	next := d.Balance.Add(delta)
	if next.IsNegative() {
		next = M(0)
	}
	d.Balance = next
	return next, true
}
