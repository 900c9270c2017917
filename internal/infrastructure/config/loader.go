package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	explicitFile   bool
}

// NewManager creates a configuration manager that looks for config.toml in
// the XDG config directory, then the working directory.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	return newManager(v, false)
}

// NewManagerForFile creates a configuration manager bound to one file. The
// file is created with defaults when missing.
func NewManagerForFile(path string) (*Manager, error) {
	if path == "" {
		return nil, errors.New("config file path is empty")
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return newManager(v, true)
}

func newManager(v *viper.Viper, explicitFile bool) (*Manager, error) {
	// Most keys map automatically with the TRIPBOOK_ prefix
	// (e.g. TRIPBOOK_DATABASE_DRIVER, TRIPBOOK_SEARCH_DEBOUNCE_MS).
	v.SetEnvPrefix("TRIPBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TRIPBOOK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TRIPBOOK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TRIPBOOK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TRIPBOOK_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("database.postgres.password", "TRIPBOOK_PG_PASSWORD", "PGPASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind TRIPBOOK_PG_PASSWORD: %w", err)
	}

	return &Manager{
		viper:        v,
		callbacks:    make([]func(*Config), 0),
		explicitFile: explicitFile,
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.explicitFile {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configDir, _ := GetConfigDir()
			configFile = filepath.Join(configDir, "config.toml")
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config: %w\nTry creating the directory manually or check permissions",
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		configFile := m.viper.ConfigFileUsed()
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			configFile,
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	switch DatabaseDriver(strings.ToLower(string(config.Database.Driver))) {
	case "", DatabaseDriverSQLite:
		config.Database.Driver = DatabaseDriverSQLite
	case DatabaseDriverPostgres:
		config.Database.Driver = DatabaseDriverPostgres
	}

	config.Suggest.Eligibility = strings.ToLower(strings.TrimSpace(config.Suggest.Eligibility))
	if config.Suggest.Eligibility == "" {
		config.Suggest.Eligibility = EligibilitySentinel
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Database.Path = strings.TrimSpace(config.Database.Path)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Save writes cfg to the config file and makes it current.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return errors.New("config is nil")
	}

	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		return errors.New("no config file loaded")
	}
	if err := WriteConfigOrdered(cfg, configFile); err != nil {
		return err
	}

	if m.watching {
		// the watcher would otherwise reload what we just wrote
		m.skipNextReload = true
		configCopy := *cfg
		m.config = &configCopy
		return nil
	}
	return m.reload()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the default configuration to the file viper
// will read next.
func (m *Manager) createDefaultConfig() error {
	configFile := m.viper.ConfigFileUsed()
	if !m.explicitFile || configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no defaults needed

	m.setDatabaseDefaults(defaults)
	m.setRabbitMQDefaults(defaults)
	m.setSearchDefaults(defaults)
	m.setSuggestDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setDatabaseDefaults(defaults *Config) {
	m.viper.SetDefault("database.driver", string(defaults.Database.Driver))
	m.viper.SetDefault("database.postgres.host", defaults.Database.Postgres.Host)
	m.viper.SetDefault("database.postgres.port", defaults.Database.Postgres.Port)
	m.viper.SetDefault("database.postgres.user", defaults.Database.Postgres.User)
	m.viper.SetDefault("database.postgres.password", defaults.Database.Postgres.Password)
	m.viper.SetDefault("database.postgres.name", defaults.Database.Postgres.Name)
	m.viper.SetDefault("database.postgres.sslmode", defaults.Database.Postgres.SSLMode)
	m.viper.SetDefault("database.postgres.max_conns", defaults.Database.Postgres.MaxConns)
}

func (m *Manager) setRabbitMQDefaults(defaults *Config) {
	m.viper.SetDefault("rabbitmq.enabled", defaults.RabbitMQ.Enabled)
	m.viper.SetDefault("rabbitmq.host", defaults.RabbitMQ.Host)
	m.viper.SetDefault("rabbitmq.port", defaults.RabbitMQ.Port)
	m.viper.SetDefault("rabbitmq.user", defaults.RabbitMQ.User)
	m.viper.SetDefault("rabbitmq.password", defaults.RabbitMQ.Password)
	m.viper.SetDefault("rabbitmq.vhost", defaults.RabbitMQ.VHost)
	m.viper.SetDefault("rabbitmq.exchange", defaults.RabbitMQ.Exchange)
	m.viper.SetDefault("rabbitmq.queue", defaults.RabbitMQ.Queue)
}

func (m *Manager) setSearchDefaults(defaults *Config) {
	m.viper.SetDefault("search.debounce_ms", defaults.Search.DebounceMs)
	m.viper.SetDefault("search.recent_capacity", defaults.Search.RecentCapacity)
	m.viper.SetDefault("search.max_results", defaults.Search.MaxResults)
}

func (m *Manager) setSuggestDefaults(defaults *Config) {
	m.viper.SetDefault("suggest.debounce_ms", defaults.Suggest.DebounceMs)
	m.viper.SetDefault("suggest.eligibility", defaults.Suggest.Eligibility)
	m.viper.SetDefault("suggest.cache_size", defaults.Suggest.CacheSize)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}
