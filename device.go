package gridledger

import (
	"encoding/json"
	"fmt"
)

// DeviceType is a typed string identifying what kind of participant a
// device is.
type DeviceType string

// Device types known to the registry.
const (
	SolarPanel DeviceType = "solar_panel"
	Battery    DeviceType = "battery"
	EVCharger  DeviceType = "ev_charger"
	Home       DeviceType = "home"
	Grid       DeviceType = "grid"
)

// ParseDeviceType parses a string into a DeviceType.
func ParseDeviceType(s string) (DeviceType, error) {
	switch DeviceType(s) {
	case SolarPanel, Battery, EVCharger, Home, Grid:
		return DeviceType(s), nil
	default:
		return "", fmt.Errorf("unknown device type: %q", s)
	}
}

// TracksProduction reports whether devices of this type meter the energy
// they generate.
func (t DeviceType) TracksProduction() bool { return t == SolarPanel }

// TracksConsumption reports whether devices of this type meter the energy
// they draw.
func (t DeviceType) TracksConsumption() bool { return t == EVCharger || t == Home }

// DeviceStatus is a typed string for a device's availability.
type DeviceStatus string

const (
	Active   DeviceStatus = "active"
	Inactive DeviceStatus = "inactive"
)

// ParseDeviceStatus parses a string into a DeviceStatus.
func ParseDeviceStatus(s string) (DeviceStatus, error) {
	switch DeviceStatus(s) {
	case Active, Inactive:
		return DeviceStatus(s), nil
	default:
		return "", fmt.Errorf("unknown device status: %q", s)
	}
}

// Device is a registered economic participant holding a KRNL balance.
// Its address is unique and immutable for the registry's lifetime; the
// balance is only ever mutated by the transfer engine and never goes
// negative.
type Device struct {
	Address        string
	Name           string
	Type           DeviceType
	Balance        Money
	Status         DeviceStatus
	EnergyProduced Energy // metered only when Type.TracksProduction()
	EnergyConsumed Energy // metered only when Type.TracksConsumption()
	Owner          string
}

// MarshalJSON implements the json.Marshaler interface for Device.
// Energy meters are emitted only for device types that track them, matching
// the registry's initialization rules.
func (d Device) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("address", d.Address)
	w.Append("name", d.Name)
	w.Append("type", d.Type)
	w.Append("balance", d.Balance)
	w.Append("status", d.Status)
	if d.Type.TracksProduction() {
		w.Append("energyProduced", d.EnergyProduced)
	}
	if d.Type.TracksConsumption() {
		w.Append("energyConsumed", d.EnergyConsumed)
	}
	w.Optional("owner", d.Owner)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Device.
func (d *Device) UnmarshalJSON(data []byte) error {
	var temp struct {
		Address        string       `json:"address"`
		Name           string       `json:"name"`
		Type           DeviceType   `json:"type"`
		Balance        Money        `json:"balance"`
		Status         DeviceStatus `json:"status"`
		EnergyProduced Energy       `json:"energyProduced"`
		EnergyConsumed Energy       `json:"energyConsumed"`
		Owner          string       `json:"owner"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	d.Address = temp.Address
	d.Name = temp.Name
	d.Type = temp.Type
	d.Balance = temp.Balance
	d.Status = temp.Status
	d.EnergyProduced = temp.EnergyProduced
	d.EnergyConsumed = temp.EnergyConsumed
	d.Owner = temp.Owner
	return nil
}

// User is static reference data describing who owns devices. Roles are
// informational: nothing in the engine enforces them.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Role is a typed string for a user's role.
type Role string

const (
	Admin  Role = "admin"
	Viewer Role = "viewer"
)

// ParseRole parses a string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case Admin, Viewer:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}
