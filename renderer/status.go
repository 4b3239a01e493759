package renderer

import (
	"fmt"
	"strings"
	"time"

	"fenn"
)

// statusPositionLimit caps how many positions are listed per account in the
// status view.
const statusPositionLimit = 5

// StatusMarkdown renders the state of the local archive: when it was synced,
// what connections and accounts it holds, and a peek at each account's
// positions.
func StatusMarkdown(a *fenn.Archive) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Status\n\n")
	fmt.Fprintf(&b, "- Last synced: %s\n", a.SyncedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- Connections: %d\n", len(a.Connections))
	fmt.Fprintf(&b, "- Accounts: %d\n", len(a.Accounts))

	for _, rec := range a.Accounts {
		fmt.Fprintf(&b, "\n## %s\n\n", rec.Info.Name)
		if rec.Info.Institution != "" {
			fmt.Fprintf(&b, "- Institution: %s\n", rec.Info.Institution)
		}
		fmt.Fprintf(&b, "- Positions: %d\n", len(rec.Positions))
		for i, pos := range rec.Positions {
			if i == statusPositionLimit {
				fmt.Fprintf(&b, "- ... and %d more\n", len(rec.Positions)-statusPositionLimit)
				break
			}
			symbol, _ := pos.Symbol()
			fmt.Fprintf(&b, "- %s: %s\n", symbol, pos.Units())
		}
	}
	return b.String()
}
