// Package cmd provides Cobra CLI commands for tripbook.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tripbook/internal/cli"
	"github.com/bnema/tripbook/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	verbose    bool
	rootCmd    = &cobra.Command{
		Use:   "tripbook",
		Short: "A vehicle trip logbook with search-as-you-type suggestions",
		Long: `Tripbook - a logbook for vehicle trips.

Record trips per vehicle, origin and destination. Every input learns from
what you used before:

Features:
  - Search inputs for vehicles, locations and drivers
  - Recent values first, then exact matches, favorites and other matches
  - Unit prices suggested from the last trip on the same route
  - Local SQLite profile, optional shared PostgreSQL store
  - Optional RabbitMQ fan-out so other instances drop stale prices

Use 'tripbook pick vehicle' for the interactive picker, or explore the
subcommands for one-shot searches, trips and catalog management.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}
			if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigFile: configFile, Verbose: verbose, Build: buildInfo})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/tripbook/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show info and debug logs")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// requireApp returns the app or an error when initialization was skipped.
func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
