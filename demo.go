package gridledger

import "time"

// DemoLedger returns a ledger seeded with the community demo data set: two
// users, three devices and one historical energy sale. The kwl init command
// uses it to bootstrap a fresh ledger file.
func DemoLedger() *LedgerService {
	l := NewLedgerService()

	// The fixture is built through the public API, so these calls cannot
	// fail; the meters and the settled sale are backfilled directly since
	// only the transfer engine mutates live state.
	l.AddUser("user1", "Admin User", Admin)
	l.AddUser("user2", "Viewer User", Viewer)
	l.AddDevice("0x1234...5678", "Home Solar Panel", SolarPanel, M(100), "user1")
	l.AddDevice("0x8765...4321", "EV Charger", EVCharger, M(50), "user1")
	l.AddDevice("0xabcd...efgh", "Grid Buyback", Grid, M(0), "user2")
	l.SetDeviceStatus("0xabcd...efgh", Inactive)

	l.mu.Lock()
	l.registry.get("0x1234...5678").EnergyProduced = E(250)
	l.registry.get("0x8765...4321").EnergyConsumed = E(120)
	l.log = append(l.log, Transaction{
		ID:        l.newID(),
		From:      "0x1234...5678",
		To:        "0x8765...4321",
		Amount:    M(25),
		Timestamp: l.now().Add(-24 * time.Hour),
		Type:      EnergySale,
		Energy:    E(50),
	})
	l.mu.Unlock()
	return l
}
