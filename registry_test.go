package gridledger

import (
	"errors"
	"testing"
)

func TestAddDevice(t *testing.T) {
	testCases := []struct {
		name         string
		typ          DeviceType
		wantProduces bool
		wantConsumes bool
	}{
		{"solar panel meters production", SolarPanel, true, false},
		{"home meters consumption", Home, false, true},
		{"ev charger meters consumption", EVCharger, false, true},
		{"battery meters nothing", Battery, false, false},
		{"grid meters nothing", Grid, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := testLedger()
			d, err := l.AddDevice("0xAAA", "Device", tc.typ, M(10), "")
			if err != nil {
				t.Fatalf("AddDevice: %v", err)
			}
			if d.Status != Active {
				t.Errorf("Status = %q, want %q", d.Status, Active)
			}
			if !d.Balance.Equal(M(10)) {
				t.Errorf("Balance = %s, want %s", d.Balance, M(10))
			}
			if !d.EnergyProduced.IsZero() || !d.EnergyConsumed.IsZero() {
				t.Errorf("meters = %s/%s, want 0/0", d.EnergyProduced, d.EnergyConsumed)
			}
			if got := d.Type.TracksProduction(); got != tc.wantProduces {
				t.Errorf("TracksProduction() = %v, want %v", got, tc.wantProduces)
			}
			if got := d.Type.TracksConsumption(); got != tc.wantConsumes {
				t.Errorf("TracksConsumption() = %v, want %v", got, tc.wantConsumes)
			}
		})
	}
}

func TestAddDevice_RejectsDuplicateAddress(t *testing.T) {
	l := testLedger()
	mustAddDevice(t, l, "0xAAA", "First", SolarPanel, M(10))

	_, err := l.AddDevice("0xAAA", "Second", Home, M(20), "")
	if !errors.Is(err, ErrDuplicateAddress) {
		t.Fatalf("AddDevice error = %v, want %v", err, ErrDuplicateAddress)
	}

	// The original registration is untouched.
	d, ok := l.Device("0xAAA")
	if !ok {
		t.Fatal("device 0xAAA not found")
	}
	if d.Name != "First" || !d.Balance.Equal(M(10)) {
		t.Errorf("device = %q with %s, want the first registration", d.Name, d.Balance)
	}
	if got := len(l.Devices()); got != 1 {
		t.Errorf("device count = %d, want 1", got)
	}
}

func TestAddDevice_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		address string
		devName string
		typ     DeviceType
		balance Money
		wantErr error // nil means any error is accepted
	}{
		{name: "unknown type", address: "0xAAA", devName: "Device", typ: DeviceType("windmill"), balance: M(0)},
		{name: "empty name", address: "0xAAA", devName: "", typ: Home, balance: M(0)},
		{name: "empty address", address: "", devName: "Device", typ: Home, balance: M(0)},
		{name: "negative balance", address: "0xAAA", devName: "Device", typ: Home, balance: M(-1), wantErr: ErrNegativeAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := testLedger()
			_, err := l.AddDevice(tc.address, tc.devName, tc.typ, tc.balance, "")
			if err == nil {
				t.Fatal("AddDevice succeeded, want error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("AddDevice error = %v, want %v", err, tc.wantErr)
			}
			if got := len(l.Devices()); got != 0 {
				t.Errorf("device count = %d, want 0", got)
			}
		})
	}
}

func TestAddDevice_OwnerDefaultsToFirstUser(t *testing.T) {
	l := testLedger()
	if _, err := l.AddUser("user1", "Admin User", Admin); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddUser("user2", "Viewer User", Viewer); err != nil {
		t.Fatal(err)
	}

	d := mustAddDevice(t, l, "0xAAA", "Device", Home, M(0))
	if d.Owner != "user1" {
		t.Errorf("Owner = %q, want %q", d.Owner, "user1")
	}

	d, err := l.AddDevice("0xBBB", "Device", Home, M(0), "user2")
	if err != nil {
		t.Fatal(err)
	}
	if d.Owner != "user2" {
		t.Errorf("Owner = %q, want the explicit %q", d.Owner, "user2")
	}
}

func TestDevices_InsertionOrder(t *testing.T) {
	l := testLedger()
	addresses := []string{"0xCCC", "0xAAA", "0xBBB"}
	for _, addr := range addresses {
		mustAddDevice(t, l, addr, "Device "+addr, Home, M(0))
	}

	devices := l.Devices()
	if len(devices) != len(addresses) {
		t.Fatalf("got %d devices, want %d", len(devices), len(addresses))
	}
	for i, d := range devices {
		if d.Address != addresses[i] {
			t.Errorf("devices[%d].Address = %q, want %q", i, d.Address, addresses[i])
		}
	}
}

func TestDevices_ReturnsSnapshot(t *testing.T) {
	l := testLedger()
	mustAddDevice(t, l, "0xAAA", "Device", Home, M(10))

	devices := l.Devices()
	devices[0].Balance = M(999)

	if got, want := balance(t, l, "0xAAA"), M(10); !got.Equal(want) {
		t.Errorf("balance after snapshot mutation = %s, want %s", got, want)
	}
}

func TestSetDeviceStatus(t *testing.T) {
	l := testLedger()
	mustAddDevice(t, l, "0xAAA", "Device", Home, M(0))

	if err := l.SetDeviceStatus("0xAAA", Inactive); err != nil {
		t.Fatalf("SetDeviceStatus: %v", err)
	}
	d, _ := l.Device("0xAAA")
	if d.Status != Inactive {
		t.Errorf("Status = %q, want %q", d.Status, Inactive)
	}

	if err := l.SetDeviceStatus("0xAAA", Active); err != nil {
		t.Fatalf("SetDeviceStatus: %v", err)
	}
	d, _ = l.Device("0xAAA")
	if d.Status != Active {
		t.Errorf("Status = %q, want %q", d.Status, Active)
	}

	if err := l.SetDeviceStatus("0xZZZ", Active); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("SetDeviceStatus(unknown) error = %v, want %v", err, ErrDeviceNotFound)
	}
	if err := l.SetDeviceStatus("0xAAA", DeviceStatus("paused")); err == nil {
		t.Error("SetDeviceStatus(paused) succeeded, want error")
	}
}

func TestUsers(t *testing.T) {
	l := testLedger()
	if _, err := l.AddUser("user1", "Admin User", Admin); err != nil {
		t.Fatal(err)
	}

	if _, err := l.AddUser("user1", "Again", Viewer); err == nil {
		t.Error("AddUser(duplicate id) succeeded, want error")
	}
	if _, err := l.AddUser("", "Nameless", Viewer); err == nil {
		t.Error("AddUser(empty id) succeeded, want error")
	}
	if _, err := l.AddUser("user2", "Viewer User", Role("operator")); err == nil {
		t.Error("AddUser(unknown role) succeeded, want error")
	}

	users := l.Users()
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	if users[0].ID != "user1" || users[0].Role != Admin {
		t.Errorf("users[0] = %+v, want user1/admin", users[0])
	}
}
