// Package renderer turns portfolio views into markdown tables. Rendering is
// pure string building: the caller decides where the markdown goes (plain
// stdout, or through a terminal markdown renderer).
package renderer

import (
	"fmt"
	"strings"

	"fenn"
)

// descriptionWidth is the fixed display width for security descriptions.
const descriptionWidth = 40

// AllocationMarkdown renders the aggregated holdings view: one row per
// symbol, sorted by value descending, with the allocation percentage.
func AllocationMarkdown(p *fenn.Portfolio) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio\n\n")
	fmt.Fprintln(&b, "| Symbol | Description | Quantity | Value | Allocation |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")

	for _, row := range fenn.AllocationView(p, descriptionWidth) {
		fmt.Fprintf(&b, "| %s | %s | %.6f | %s | %s |\n",
			row.Symbol,
			row.Description,
			row.Quantity.AsFloat(),
			row.Value,
			row.Allocation,
		)
	}
	fmt.Fprintf(&b, "| **TOTAL** | | | **%s** | 100.00%% |\n", p.TotalValue)
	return b.String()
}

// ByAccountMarkdown renders the holdings grouped by account, one section per
// account sorted by name, each account's holdings by value descending.
func ByAccountMarkdown(p *fenn.Portfolio) string {
	var b strings.Builder
	for _, account := range fenn.ByAccountView(p) {
		fmt.Fprintf(&b, "# %s\n\n", account.Name)
		fmt.Fprintln(&b, "| Symbol | Description | Quantity | Price | Value |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
		for _, row := range account.Holdings {
			fmt.Fprintf(&b, "| %s | %s | %.6f | %s | %s |\n",
				row.Symbol,
				truncate(row.Description, descriptionWidth),
				row.Quantity.AsFloat(),
				row.Price,
				row.Value,
			)
		}
		fmt.Fprintf(&b, "| **Account Total** | | | | **%s** |\n\n", account.Total)
	}
	return b.String()
}

// SummaryMarkdown renders the closing summary lines of a portfolio report.
func SummaryMarkdown(p *fenn.Portfolio) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "- Total Holdings: %d unique symbols\n", len(p.Holdings))
	fmt.Fprintf(&b, "- Total Value: %s\n", p.TotalValue)
	if len(p.Errors) > 0 {
		fmt.Fprintf(&b, "\n**Warning**: errors fetching %d account(s): %s\n",
			len(p.Errors), strings.Join(p.Errors, ", "))
	}
	return b.String()
}

// ConcentrationMarkdown renders the concentration curve as a table, rank by
// rank, with the cumulative share of the portfolio.
func ConcentrationMarkdown(p *fenn.Portfolio) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Concentration\n\n")
	fmt.Fprintln(&b, "| Top | Symbol | Cumulative |")
	fmt.Fprintln(&b, "|---:|:---|---:|")
	for _, pt := range fenn.ConcentrationCurve(p) {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", pt.Rank, pt.Symbol, pt.Cumulative)
	}
	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
