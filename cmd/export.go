package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the portfolio archive to a JSON file" }
func (*exportCmd) Usage() string {
	return `fenn export [-o <file>]

  Copies the local archive to the given file, or to a timestamped
  portfolio_export_*.json in the current directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file path")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	content, err := os.ReadFile(archivePath())
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No portfolio data found. Run 'fenn sync' first.")
			return subcommands.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Error reading portfolio data: %v\n", err)
		return subcommands.ExitFailure
	}

	output := c.output
	if output == "" {
		output = fmt.Sprintf("portfolio_export_%s.json", time.Now().Format("20060102_150405"))
	}
	if err := os.WriteFile(output, content, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting data: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Portfolio data exported to %s\n", output)
	return subcommands.ExitSuccess
}
