package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"fenn/snaptrade"
)

// registerCmd holds the flags for the 'register' subcommand.
type registerCmd struct {
	userID string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register the SnapTrade user and obtain its secret" }
func (*registerCmd) Usage() string {
	return `fenn register [-user <id>]

  Registers the user against the API and prints the issued user secret.
  The secret is issued exactly once: save it to your .env file as
  ` + snaptrade.EnvUserSecret + `.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "user", "", "user id to register (default: "+snaptrade.EnvUserID+" from the environment)")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	userID := c.userID
	if userID == "" {
		userID = cfg.UserID
	}
	if userID == "" {
		fmt.Fprintf(os.Stderr, "Error: no user id: pass -user or set %s\n", snaptrade.EnvUserID)
		return subcommands.ExitUsageError
	}

	secret, err := snaptrade.New(cfg).RegisterUser(userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error registering user %q: %v\n", userID, err)
		return subcommands.ExitFailure
	}

	fmt.Println("IMPORTANT: save this user secret to your .env file:")
	fmt.Printf("%s=%s\n", snaptrade.EnvUserSecret, secret)
	return subcommands.ExitSuccess
}
