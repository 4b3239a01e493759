package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// connectCmd holds the flags for the 'connect' subcommand.
type connectCmd struct{}

func (*connectCmd) Name() string     { return "connect" }
func (*connectCmd) Synopsis() string { return "get a portal URL to link a brokerage account" }
func (*connectCmd) Usage() string {
	return `fenn connect

  Prints a one-time connection-portal URL. Open it in a browser to link a
  new brokerage account to the user, then run 'fenn sync'.
`
}

func (*connectCmd) SetFlags(f *flag.FlagSet) {}

func (c *connectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	addr, err := client.LoginURL()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error requesting connection URL: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Open this URL in your browser to connect a brokerage account:")
	fmt.Println(addr)
	return subcommands.ExitSuccess
}
