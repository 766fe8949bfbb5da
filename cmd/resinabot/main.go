package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/camontes/resinabot/internal/cli"
	"github.com/camontes/resinabot/internal/constants"
	"github.com/camontes/resinabot/internal/storage"
	"github.com/camontes/resinabot/internal/storage/postgres"
	"github.com/camontes/resinabot/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite path or PostgreSQL connection string. Connection strings must NOT embed credentials; use environment variables, .pgpass, or the OS keyring." default:"${config_path}" env:"RESINABOT_DB"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize reminder storage."`
	Migrate cli.MigrateCmd `cmd:"" help:"Run database migrations."`
	Serve   cli.ServeCmd   `cmd:"" help:"Run the bot daemon (HTTP surface + reminder scheduler)."`
	Calc    cli.CalcCmd    `cmd:"" help:"Compute the wait for a resin target without saving anything."`
	Remind  struct {
		Add    cli.RemindAddCmd    `cmd:"" help:"Add a reminder."`
		List   cli.RemindListCmd   `cmd:"" help:"List an owner's reminders."`
		Cancel cli.RemindCancelCmd `cmd:"" help:"Cancel a reminder by its list number."`
	} `cmd:"" help:"Manage reminders from the terminal."`
	Token struct {
		Set   cli.TokenSetCmd   `cmd:"" help:"Store the gateway token in the OS keyring."`
		Clear cli.TokenClearCmd `cmd:"" help:"Remove the gateway token from the OS keyring."`
	} `cmd:"" help:"Manage the chat-gateway token."`
	Tui cli.TuiCmd `cmd:"" help:"Browse reminders interactively."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Resin regeneration tracker and reminder bot"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	// Pick the storage backend from the config string format
	var store storage.Provider
	if strings.HasPrefix(CLI.Config, "postgres://") || strings.HasPrefix(CLI.Config, "postgresql://") {
		if storage.HasEmbeddedCredentials(CLI.Config) {
			fmt.Fprintln(os.Stderr, "❌ Error: PostgreSQL connection strings with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "       Use environment variables, .pgpass, or the OS keyring instead.")
			os.Exit(1)
		}
		store = postgres.New(CLI.Config)
	} else {
		store = sqlite.NewStore(expandHome(CLI.Config))
	}

	appCtx := &cli.Context{Store: store}

	// init and migrate open the database themselves
	if sel := ctx.Selected(); sel != nil && sel.Name != "init" && sel.Name != "migrate" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}
