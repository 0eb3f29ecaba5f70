package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/gridledger"
	md "github.com/nao1215/markdown"
)

// Transactions renders a transaction list to a markdown string, in the
// order given (the query service already sorts newest first).
func Transactions(txs []gridledger.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Transactions (%d)", len(txs)))

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		energy := "-"
		if !tx.Energy.IsZero() {
			energy = tx.Energy.String() + " kWh"
		}
		rows = append(rows, []string{
			formatTimestamp(tx.Timestamp),
			string(tx.Type),
			tx.From,
			tx.To,
			tx.Amount.String(),
			energy,
			tx.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Timestamp", "Type", "From", "To", "Amount", "Energy", "Id"},
		Rows:   rows,
	})

	if err := doc.Build(); err != nil {
		return err.Error()
	}
	return buf.String()
}
