package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tripbook/internal/cli"
	"github.com/bnema/tripbook/internal/cli/styles"
	"github.com/bnema/tripbook/internal/infrastructure/config"
	"github.com/bnema/tripbook/internal/infrastructure/messaging/rabbitmq"
	"github.com/bnema/tripbook/internal/infrastructure/persistence/postgres"
)

var aboutCmd = &cobra.Command{
	Use:     "about",
	Aliases: []string{"version"},
	Short:   "Show version, build and storage information",
	Long:    `Display version, build info, the active data store and the event broker.`,
	RunE:    runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	info := storeInfo(app)
	if schema, err := app.ProfileSchema(app.Ctx()); err == nil {
		info.Schema = schema.String()
	} else {
		info.Schema = "unavailable"
	}
	fmt.Println(renderer.Render(app.BuildInfo, info))
	return nil
}

func storeInfo(app *cli.App) styles.StoreInfo {
	cfg := app.Config
	info := styles.StoreInfo{
		Driver:   string(cfg.Database.Driver),
		Location: cfg.Database.Path,
		Broker:   "disabled",
	}
	if cfg.Database.Driver == config.DatabaseDriverPostgres {
		pg := cfg.Database.Postgres
		pg.Password = ""
		info.Location = postgres.DSN(pg)
	}
	if app.ConfigManager != nil {
		info.ConfigFile = app.ConfigManager.GetConfigFile()
	}
	if cfg.RabbitMQ.Enabled {
		info.Broker = cfg.RabbitMQ.Exchange + " (unreachable)"
		if app.HasBroker() {
			rmq := cfg.RabbitMQ
			rmq.Password = ""
			info.Broker = cfg.RabbitMQ.Exchange + " @ " + rabbitmq.URL(rmq)
		}
	}
	return info
}
