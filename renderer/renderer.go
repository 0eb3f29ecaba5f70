// Package renderer renders ledger state as markdown for terminal display.
package renderer

import "time"

// timestampLayout is the display format for transaction timestamps.
const timestampLayout = "2006-01-02 15:04:05"

func formatTimestamp(t time.Time) string {
	return t.Local().Format(timestampLayout)
}
