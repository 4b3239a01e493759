package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"fenn/charts"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	kind    string
	topN    int
	output  string
	noOpen  bool
	refresh bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a portfolio chart to HTML" }
func (*chartCmd) Usage() string {
	return `fenn chart [-k <kind>] [-n <top>] [-o <file>] [-no-open] [-r]

  Builds a chart from today's aggregated holdings and writes it as a
  standalone HTML file, opened in the default browser.

  Kinds:
    allocation     donut of the top holdings plus an "Other Holdings" slice
    top            bar chart of the highest-value holdings
    broker         treemap of holdings grouped by institution
    concentration  cumulative allocation against number of holdings
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "allocation", "chart kind: allocation, top, broker or concentration")
	f.IntVar(&c.topN, "n", 10, "number of top holdings shown individually")
	f.StringVar(&c.output, "o", "", "output HTML file (default: a temporary file)")
	f.BoolVar(&c.noOpen, "no-open", false, "do not open the chart in a browser")
	f.BoolVar(&c.refresh, "r", false, "fetch latest data from the brokerages")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadHoldings(c.refresh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var fig charts.Figure
	switch c.kind {
	case "allocation":
		fig = charts.Allocation(p, c.topN)
	case "top":
		fig = charts.TopHoldings(p, c.topN)
	case "broker":
		fig = charts.BrokerTreemap(p)
	case "concentration":
		fig = charts.Concentration(p)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown chart kind %q\n", c.kind)
		return subcommands.ExitUsageError
	}

	path, err := charts.WriteHTML(fig, c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Chart written to %s\n", path)

	if !c.noOpen {
		if err := charts.OpenBrowser(path); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return subcommands.ExitSuccess
}
