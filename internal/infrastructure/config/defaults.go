package config

// Default configuration constants
const (
	// Search defaults
	defaultSearchDebounceMs = 300 // milliseconds
	defaultRecentCapacity   = 10  // items per category
	defaultMaxResults       = 20  // rows

	// Suggest defaults
	defaultSuggestDebounceMs = 500 // milliseconds
	defaultPriceCacheSize    = 256 // routes

	// Postgres defaults
	defaultPostgresPort     = 5432
	defaultPostgresMaxConns = 10

	// RabbitMQ defaults
	defaultRabbitMQPort     = 5672
	defaultRabbitMQExchange = "tripbook.events"

	// Log file defaults
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 14
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver: DatabaseDriverSQLite,
			Postgres: PostgresConfig{
				Host:     "localhost",
				Port:     defaultPostgresPort,
				User:     "tripbook",
				Name:     "tripbook",
				SSLMode:  "disable",
				MaxConns: defaultPostgresMaxConns,
			},
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  false,
			Host:     "localhost",
			Port:     defaultRabbitMQPort,
			User:     "guest",
			Password: "guest",
			VHost:    "/",
			Exchange: defaultRabbitMQExchange,
		},
		Search: SearchConfig{
			DebounceMs:     defaultSearchDebounceMs,
			RecentCapacity: defaultRecentCapacity,
			MaxResults:     defaultMaxResults,
		},
		Suggest: SuggestConfig{
			DebounceMs:  defaultSuggestDebounceMs,
			Eligibility: EligibilitySentinel,
			CacheSize:   defaultPriceCacheSize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format:     "console",
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
			Compress:   true,
		},
	}
}
