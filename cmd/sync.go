package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"

	"fenn"
)

// syncCmd holds the flags for the 'sync' subcommand.
type syncCmd struct{}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "download and archive portfolio data from all brokers" }
func (*syncCmd) Usage() string {
	return `fenn sync

  Downloads connections, accounts, balances and positions from every
  connected brokerage and overwrites the local archive wholesale.
`
}

func (*syncCmd) SetFlags(f *flag.FlagSet) {}

func (c *syncCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	archive := &fenn.Archive{UserID: client.UserID()}

	connections, err := client.ListConnections()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot list connections: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, conn := range connections {
		archive.Connections = append(archive.Connections, fenn.ConnectionRecord{
			ID:         conn.ID,
			BrokerName: conn.BrokerName,
			Disabled:   conn.Disabled,
		})
	}

	accounts, err := client.Accounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot list accounts: %v\n", err)
		return subcommands.ExitFailure
	}

	bar := newProgressBar(len(accounts))
	failed := 0
	for _, account := range accounts {
		rec := fenn.AccountRecord{Info: account}
		if rec.Balances, err = client.Balances(account.ID); err != nil {
			fmt.Fprintf(os.Stderr, "warning: balances of %q: %v\n", account.Name, err)
		}
		if rec.Positions, err = client.Positions(account.ID); err != nil {
			fmt.Fprintf(os.Stderr, "warning: positions of %q: %v\n", account.Name, err)
			failed++
		}
		archive.Accounts = append(archive.Accounts, rec)
		bar.Add(1)
	}
	fmt.Println()

	archive.SyncedAt = time.Now()
	if err := fenn.SaveArchive(archivePath(), archive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Portfolio data saved to %s\n\n", archivePath())
	fmt.Println("Summary:")
	fmt.Printf("  Connections: %d\n", len(archive.Connections))
	fmt.Printf("  Accounts: %d\n", len(archive.Accounts))
	for _, rec := range archive.Accounts {
		fmt.Printf("  - %s: %d position(s)\n", rec.Info.Name, len(rec.Positions))
	}
	if failed > 0 {
		fmt.Printf("  %d account(s) failed to sync\n", failed)
	}
	return subcommands.ExitSuccess
}

func newProgressBar(accounts int) *progressbar.ProgressBar {
	return progressbar.NewOptions(accounts,
		progressbar.OptionSetDescription("Syncing accounts..."),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowCount(),
	)
}
