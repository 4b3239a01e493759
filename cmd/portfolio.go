package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"fenn/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	byAccount bool
	refresh   bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "show aggregated holdings across all accounts" }
func (*portfolioCmd) Usage() string {
	return `fenn portfolio [-a] [-r]

  Displays the consolidated holdings across all connected accounts, one row
  per symbol with its allocation percentage. The aggregate computed on a
  given day is cached; use -r to force a fresh pull from the brokerages.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.byAccount, "a", false, "group holdings by account")
	f.BoolVar(&c.refresh, "r", false, "fetch latest data from the brokerages")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadHoldings(c.refresh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.byAccount {
		printMarkdown(renderer.ByAccountMarkdown(p))
	} else {
		printMarkdown(renderer.AllocationMarkdown(p))
	}
	printMarkdown(renderer.SummaryMarkdown(p))
	return subcommands.ExitSuccess
}
