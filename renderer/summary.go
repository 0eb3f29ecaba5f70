package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/gridledger"
	md "github.com/nao1215/markdown"
)

// Summary renders the aggregate ledger snapshot to a markdown string.
func Summary(s gridledger.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Grid Summary")

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Devices", fmt.Sprintf("%d", s.TotalDevices)},
			{"Active devices", fmt.Sprintf("%d", s.ActiveDevices)},
			{"Total balance", s.TotalBalance.String()},
			{"Transactions", fmt.Sprintf("%d", s.TotalTransactions)},
			{"Energy produced", s.TotalEnergyProduced.String() + " kWh"},
			{"Energy consumed", s.TotalEnergyConsumed.String() + " kWh"},
		},
	})

	if err := doc.Build(); err != nil {
		return err.Error()
	}
	return buf.String()
}
