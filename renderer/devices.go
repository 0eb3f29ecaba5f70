package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/gridledger"
	md "github.com/nao1215/markdown"
)

// Devices renders the device registry to a markdown string.
func Devices(devices []gridledger.Device) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Devices (%d)", len(devices)))

	rows := make([][]string, 0, len(devices))
	for _, d := range devices {
		energy := "-"
		switch {
		case d.Type.TracksProduction():
			energy = d.EnergyProduced.String() + " kWh produced"
		case d.Type.TracksConsumption():
			energy = d.EnergyConsumed.String() + " kWh consumed"
		}
		rows = append(rows, []string{
			d.Address,
			d.Name,
			string(d.Type),
			string(d.Status),
			d.Balance.String(),
			energy,
			d.Owner,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Address", "Name", "Type", "Status", "Balance", "Energy", "Owner"},
		Rows:   rows,
	})

	if err := doc.Build(); err != nil {
		return err.Error()
	}
	return buf.String()
}
