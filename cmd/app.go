// Package cmd implements the CLI application to archive and report a
// brokerage portfolio.
package cmd

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"fenn"
	"fenn/snaptrade"
)

// Commands lists every subcommand of the fenn tool.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&syncCmd{},
	&statusCmd{},
	&exportCmd{},
	&portfolioCmd{},
	&chartCmd{},
	&registerCmd{},
	&connectCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", ".fenn", "Path to the local data directory holding the archive and the cache")

// archivePath is the portfolio archive written by 'fenn sync'.
func archivePath() string { return filepath.Join(*dataDir, "portfolio.json") }

// cachePath is the single-slot day-scoped holdings cache.
func cachePath() string { return filepath.Join(*dataDir, "holdings.json") }

// loadConfig loads the .env file if present and returns the validated API
// credentials. The error carries remediation steps, it is the only error of
// the tool that is fatal without a retry.
func loadConfig() (snaptrade.Config, error) {
	// a missing .env file is fine, the variables may come from the environment
	_ = godotenv.Load()

	cfg := snaptrade.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf(`%w

To get started:
1. Copy .env.example to .env
2. Get API keys from https://dashboard.snaptrade.com/api-key
3. Fill in your credentials in .env`, err)
	}
	return cfg, nil
}

// newClient returns a configured API client.
func newClient() (*snaptrade.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return snaptrade.New(cfg), nil
}

// refreshHoldings queries the API account by account, aggregates the
// positions and overwrites the cache slot.
func refreshHoldings() (*fenn.Portfolio, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	accounts, err := client.Accounts()
	if err != nil {
		return nil, fmt.Errorf("cannot list accounts: %w", err)
	}
	p := fenn.Aggregate(accounts, client)
	if err := fenn.StoreCache(cachePath(), p); err != nil {
		return nil, err
	}
	return p, nil
}

// loadHoldings returns today's aggregate, from the cache when it is fresh
// and the caller did not ask for a refresh.
func loadHoldings(refresh bool) (*fenn.Portfolio, error) {
	if !refresh {
		if p, ok := fenn.LoadCache(cachePath()); ok {
			return p, nil
		}
	}
	return refreshHoldings()
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// plain markdown is still readable
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
