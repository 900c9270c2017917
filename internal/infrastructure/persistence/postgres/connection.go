// Package postgres provides PostgreSQL implementations of the shared catalog
// and trip repositories.
package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/bnema/tripbook/internal/infrastructure/config"
	"github.com/bnema/tripbook/internal/logging"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectTimeout = 5 * time.Second
	pingTimeout    = 5 * time.Second
)

// DSN builds a connection URL from cfg.
func DSN(cfg config.PostgresConfig) string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Name,
		User:   url.UserPassword(cfg.User, cfg.Password),
	}
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	q := url.Values{}
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// NewPool configures pgxpool from cfg, verifies connectivity and ensures the
// schema exists.
func NewPool(ctx context.Context, cfg config.PostgresConfig, clientName string) (*pgxpool.Pool, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	// never log the password
	log.Debug().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("user", cfg.User).
		Str("database", cfg.Name).
		Bool("password_empty", cfg.Password == "").
		Msg("postgres connection parameters")

	pcfg, err := poolConfig(cfg, clientName)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info().
		Str("host", cfg.Host).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("postgres connection established")

	return pool, nil
}

// poolConfig tags every session with clientName so it shows up in
// pg_stat_activity.
func poolConfig(cfg config.PostgresConfig, clientName string) (*pgxpool.Config, error) {
	pcfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	pcfg.ConnConfig.ConnectTimeout = connectTimeout
	if pcfg.ConnConfig.RuntimeParams == nil {
		pcfg.ConnConfig.RuntimeParams = make(map[string]string, 1)
	}
	pcfg.ConnConfig.RuntimeParams["timezone"] = "UTC"
	if clientName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = clientName
	}
	pcfg.HealthCheckPeriod = 30 * time.Second
	pcfg.MaxConnIdleTime = 5 * time.Minute
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	return pcfg, nil
}
