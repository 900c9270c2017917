package config

// Config represents the complete configuration for tripbook.
type Config struct {
	// Database selects and configures the trip and catalog store.
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	// RabbitMQ configures trip.recorded fan-out between processes.
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq" toml:"rabbitmq" json:"rabbitmq"`
	// Search controls the search inputs (vehicle, location, driver).
	Search SearchConfig `mapstructure:"search" toml:"search" json:"search"`
	// Suggest controls route price suggestions on trip rows.
	Suggest SuggestConfig `mapstructure:"suggest" toml:"suggest" json:"suggest"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// DatabaseDriver selects the backing store.
type DatabaseDriver string

const (
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"
	DatabaseDriverPostgres DatabaseDriver = "postgres"
)

// DatabaseConfig holds database settings. Recent lists always live in the
// local SQLite profile; catalog and trips follow Driver.
type DatabaseConfig struct {
	Driver DatabaseDriver `mapstructure:"driver" toml:"driver" json:"driver" jsonschema:"enum=sqlite,enum=postgres,default=sqlite"`
	// Path is the local SQLite profile. Empty means the XDG data directory.
	Path     string         `mapstructure:"path" toml:"path" json:"path,omitempty"`
	Postgres PostgresConfig `mapstructure:"postgres" toml:"postgres" json:"postgres"`
}

// PostgresConfig holds connection settings for the remote data store.
type PostgresConfig struct {
	Host     string `mapstructure:"host" toml:"host" json:"host"`
	Port     int    `mapstructure:"port" toml:"port" json:"port" jsonschema:"minimum=1,maximum=65535"`
	User     string `mapstructure:"user" toml:"user" json:"user"`
	Password string `mapstructure:"password" toml:"password" json:"password"`
	Name     string `mapstructure:"name" toml:"name" json:"name"`
	SSLMode  string `mapstructure:"sslmode" toml:"sslmode" json:"sslmode" jsonschema:"enum=disable,enum=allow,enum=prefer,enum=require,enum=verify-ca,enum=verify-full"`
	MaxConns int32  `mapstructure:"max_conns" toml:"max_conns" json:"max_conns" jsonschema:"minimum=1"`
}

// RabbitMQConfig holds broker settings.
type RabbitMQConfig struct {
	Enabled  bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Host     string `mapstructure:"host" toml:"host" json:"host"`
	Port     int    `mapstructure:"port" toml:"port" json:"port" jsonschema:"minimum=1,maximum=65535"`
	User     string `mapstructure:"user" toml:"user" json:"user"`
	Password string `mapstructure:"password" toml:"password" json:"password"`
	VHost    string `mapstructure:"vhost" toml:"vhost" json:"vhost"`
	// Exchange is the topic exchange trip events are published to.
	Exchange string `mapstructure:"exchange" toml:"exchange" json:"exchange"`
	// Queue is this process's invalidation queue. Empty means a server-named
	// exclusive queue.
	Queue string `mapstructure:"queue" toml:"queue" json:"queue"`
}

// SearchConfig holds search input settings.
type SearchConfig struct {
	// DebounceMs is the delay after the last keystroke before a lookup.
	DebounceMs int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" jsonschema:"minimum=0,maximum=5000,default=300"`
	// RecentCapacity is how many recent values are kept per category.
	RecentCapacity int `mapstructure:"recent_capacity" toml:"recent_capacity" json:"recent_capacity" jsonschema:"minimum=1,maximum=100,default=10"`
	// MaxResults caps the rendered suggestion list.
	MaxResults int `mapstructure:"max_results" toml:"max_results" json:"max_results" jsonschema:"minimum=1,maximum=200,default=20"`
}

// EligibilityPolicy values for SuggestConfig.Eligibility.
const (
	EligibilitySentinel = "sentinel"
	EligibilityInitial  = "initial"
)

// SuggestConfig holds route price suggestion settings.
type SuggestConfig struct {
	DebounceMs int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" jsonschema:"minimum=0,maximum=5000,default=500"`
	// Eligibility decides whether a row created with a non-default price
	// (e.g. a vehicle's default unit price) may be overwritten.
	Eligibility string `mapstructure:"eligibility" toml:"eligibility" json:"eligibility" jsonschema:"enum=sentinel,enum=initial,default=sentinel"`
	// CacheSize is the number of memoized routes.
	CacheSize int `mapstructure:"cache_size" toml:"cache_size" json:"cache_size" jsonschema:"minimum=1,default=256"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File also writes JSON logs to $XDG_STATE_HOME/tripbook/logs.
	File       bool `mapstructure:"file" toml:"file" json:"file"`
	MaxSizeMB  int  `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1,default=10"`
	MaxBackups int  `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0,default=3"`
	MaxAgeDays int  `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0,default=14"`
	Compress   bool `mapstructure:"compress" toml:"compress" json:"compress"`
}
