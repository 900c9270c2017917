package config

import (
	"fmt"
	"slices"
	"strings"
)

const maxDebounceMs = 5000

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDatabase(config)...)
	validationErrors = append(validationErrors, validateRabbitMQ(config)...)
	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validateSuggest(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateDatabase(config *Config) []string {
	var validationErrors []string
	switch config.Database.Driver {
	case DatabaseDriverSQLite:
	case DatabaseDriverPostgres:
		pg := config.Database.Postgres
		if pg.Host == "" {
			validationErrors = append(validationErrors, "database.postgres.host is required when driver is postgres")
		}
		if pg.Name == "" {
			validationErrors = append(validationErrors, "database.postgres.name is required when driver is postgres")
		}
		if pg.Port < 1 || pg.Port > 65535 {
			validationErrors = append(validationErrors, "database.postgres.port must be between 1 and 65535")
		}
		if pg.MaxConns < 0 {
			validationErrors = append(validationErrors, "database.postgres.max_conns must be non-negative")
		}
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("database.driver must be one of: sqlite, postgres (got: %s)", config.Database.Driver))
	}
	return validationErrors
}

func validateRabbitMQ(config *Config) []string {
	if !config.RabbitMQ.Enabled {
		return nil
	}
	var validationErrors []string
	if config.RabbitMQ.Host == "" {
		validationErrors = append(validationErrors, "rabbitmq.host is required when rabbitmq is enabled")
	}
	if config.RabbitMQ.Port < 1 || config.RabbitMQ.Port > 65535 {
		validationErrors = append(validationErrors, "rabbitmq.port must be between 1 and 65535")
	}
	if config.RabbitMQ.Exchange == "" {
		validationErrors = append(validationErrors, "rabbitmq.exchange cannot be empty when rabbitmq is enabled")
	}
	return validationErrors
}

func validateSearch(config *Config) []string {
	var validationErrors []string
	if config.Search.DebounceMs < 0 || config.Search.DebounceMs > maxDebounceMs {
		validationErrors = append(validationErrors, fmt.Sprintf("search.debounce_ms must be between 0 and %d", maxDebounceMs))
	}
	if config.Search.RecentCapacity < 1 || config.Search.RecentCapacity > 100 {
		validationErrors = append(validationErrors, "search.recent_capacity must be between 1 and 100")
	}
	if config.Search.MaxResults < 1 || config.Search.MaxResults > 200 {
		validationErrors = append(validationErrors, "search.max_results must be between 1 and 200")
	}
	return validationErrors
}

func validateSuggest(config *Config) []string {
	var validationErrors []string
	if config.Suggest.DebounceMs < 0 || config.Suggest.DebounceMs > maxDebounceMs {
		validationErrors = append(validationErrors, fmt.Sprintf("suggest.debounce_ms must be between 0 and %d", maxDebounceMs))
	}
	switch config.Suggest.Eligibility {
	case EligibilitySentinel, EligibilityInitial:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("suggest.eligibility must be one of: sentinel, initial (got: %s)", config.Suggest.Eligibility))
	}
	if config.Suggest.CacheSize < 1 {
		validationErrors = append(validationErrors, "suggest.cache_size must be at least 1")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	validLevels := []string{"trace", "debug", "info", "warn", "error", "disabled", "off"}
	if config.Logging.Level != "" && !slices.Contains(validLevels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: %s (got: %s)", strings.Join(validLevels, ", "), config.Logging.Level))
	}
	validFormats := []string{"console", "json"}
	if config.Logging.Format != "" && !slices.Contains(validFormats, config.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: %s (got: %s)", strings.Join(validFormats, ", "), config.Logging.Format))
	}
	if config.Logging.File && config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.max_size_mb must be at least 1 (got: %d)", config.Logging.MaxSizeMB))
	}
	if config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_backups and logging.max_age_days must not be negative")
	}
	return validationErrors
}
