package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"fenn"
	"fenn/renderer"
)

// statusCmd holds the flags for the 'status' subcommand.
type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show current portfolio status from the local archive" }
func (*statusCmd) Usage() string {
	return `fenn status

  Shows when the archive was last synced and what it contains. Reads only
  the local archive, never the network.
`
}

func (*statusCmd) SetFlags(f *flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	archive, err := fenn.LoadArchive(archivePath())
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No portfolio data found. Run 'fenn sync' first.")
			return subcommands.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Error reading portfolio data: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.StatusMarkdown(archive))
	return subcommands.ExitSuccess
}
