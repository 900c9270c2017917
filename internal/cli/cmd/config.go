package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tripbook/internal/cli/styles"
	"github.com/bnema/tripbook/internal/infrastructure/config"
)

const redacted = "********"

var configSchemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Show, validate and describe the TOML configuration.

Every key can be overridden from the environment with the TRIPBOOK_ prefix,
e.g. TRIPBOOK_SEARCH_DEBOUNCE_MS=150 or TRIPBOOK_DATABASE_DRIVER=postgres.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file and environment overrides",
	RunE:  runConfigValidate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of config.toml. With --write the schema is saved
next to the config file so editors with TOML schema support can use it.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd, configValidateCmd, configSchemaCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write config.schema.json next to the config file")
}

// loadConfigManager loads the config the same way the app does, but
// reports failures instead of falling back to defaults.
func loadConfigManager() (*config.Manager, error) {
	var (
		mgr *config.Manager
		err error
	)
	if configFile != "" {
		mgr, err = config.NewManagerForFile(configFile)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	return mgr, nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	mgr, err := loadConfigManager()
	if err != nil {
		return err
	}

	cfg := mgr.Get()
	if cfg.Database.Postgres.Password != "" {
		cfg.Database.Postgres.Password = redacted
	}
	if cfg.RabbitMQ.Password != "" {
		cfg.RabbitMQ.Password = redacted
	}

	data, err := config.EncodeOrdered(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	if configFile != "" {
		fmt.Println(configFile)
		return nil
	}
	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func runConfigValidate(_ *cobra.Command, _ []string) error {
	renderer := styles.NewResultsRenderer(styles.NewTheme())

	mgr, err := loadConfigManager()
	if err != nil {
		return err
	}
	fmt.Println(renderer.RenderSuccess(mgr.GetConfigFile() + " is valid"))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if !configSchemaWrite {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	path, err := config.WriteSchemaFile(dir)
	if err != nil {
		return err
	}
	fmt.Println(styles.NewResultsRenderer(styles.NewTheme()).RenderSuccess("schema written to " + path))
	return nil
}
