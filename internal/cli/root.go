// Package cli implements the alchemize maintenance command line: schema
// migration and status, per-scope reset, full wipe, sample-data seeding,
// and calendar inspection.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/app"
	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/config"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	ConfigPath string
	DBPath     string
	Verbose    bool
}

// NewRootCommand creates the alchemize root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "alchemize",
		Short: "Maintain the local Alchemize store",
		Long: `Maintain the local Alchemize store.

The store is a single SQLite file holding every tracked entity (tasks,
habits, nutrition, finances, workouts, appointments, journal) partitioned
per user. Commands open the file named in the config (or --db), never a
remote service.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error once
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config (default: CONFIG_PATH or ./config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "store file path, overrides config")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))
	cmd.AddCommand(NewWipeCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewCalendarCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// env is the per-invocation object graph a subcommand works with.
type env struct {
	cfg *config.Config
	log *slog.Logger
	app *app.App
}

// loadEnv loads configuration, applies global flag overrides, and builds
// the app graph. The store file stays untouched until the command calls
// app.Init.
func (o *RootOptions) loadEnv(cmd *cobra.Command) (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.ConfigPath != "" {
		cfg, err = config.LoadFile(o.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.DBPath != "" {
		cfg.Storage.Path = o.DBPath
	}
	if o.Verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Format = "text"
	}

	// Log lines go to stderr so command output stays pipeable.
	logger := app.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log)

	return &env{
		cfg: cfg,
		log: logger,
		app: app.New(cfg, logger),
	}, nil
}
