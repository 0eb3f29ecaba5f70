package gridledger

// Summary is an aggregate snapshot of registry and ledger totals for
// reporting. Totals are decimal sums over the current device set.
type Summary struct {
	TotalDevices        int
	ActiveDevices       int
	TotalBalance        Money
	TotalTransactions   int
	TotalEnergyProduced Energy
	TotalEnergyConsumed Energy
}

// Summary recomputes the aggregate totals from a consistent snapshot of the
// registry and the log. There is no incremental caching: the device set is
// small and correctness wins over throughput.
func (l *LedgerService) Summary() Summary {
	l.mu.Lock()
	devices := l.registry.list()
	txCount := len(l.log)
	l.mu.Unlock()

	s := Summary{
		TotalDevices:        len(devices),
		TotalTransactions:   txCount,
		TotalBalance:        M(0),
		TotalEnergyProduced: E(0),
		TotalEnergyConsumed: E(0),
	}
	for _, d := range devices {
		if d.Status == Active {
			s.ActiveDevices++
		}
		s.TotalBalance = s.TotalBalance.Add(d.Balance)
		if d.Type.TracksProduction() {
			s.TotalEnergyProduced = s.TotalEnergyProduced.Add(d.EnergyProduced)
		}
		if d.Type.TracksConsumption() {
			s.TotalEnergyConsumed = s.TotalEnergyConsumed.Add(d.EnergyConsumed)
		}
	}
	return s
}
