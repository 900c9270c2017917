package postgres

import (
	"net/url"
	"testing"

	"github.com/bnema/tripbook/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.PostgresConfig{
		Host:     "db.internal",
		Port:     6543,
		User:     "tripbook",
		Password: "p@ss:word",
		Name:     "logbook",
		SSLMode:  "require",
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:6543", u.Host)
	assert.Equal(t, "/logbook", u.Path)
	assert.Equal(t, "tripbook", u.User.Username())
	password, _ := u.User.Password()
	assert.Equal(t, "p@ss:word", password)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
}

func TestDSN_DefaultSSLMode(t *testing.T) {
	u, err := url.Parse(DSN(config.PostgresConfig{Host: "localhost", Port: 5432, Name: "tripbook"}))
	require.NoError(t, err)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"seoul", "%seoul%"},
		{"  12가  ", "%12가%"},
		{"50%", `%50\%%`},
		{"a_b", `%a\_b%`},
		{`c:\x`, `%c:\\x%`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, containsPattern(tt.query), tt.query)
	}
}

func TestPoolConfig_NamesSessions(t *testing.T) {
	cfg := config.PostgresConfig{Host: "db.internal", Port: 5432, User: "tripbook", Name: "logbook", MaxConns: 6}

	pcfg, err := poolConfig(cfg, "tripbook/v1.4.0")
	require.NoError(t, err)
	assert.Equal(t, "tripbook/v1.4.0", pcfg.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, "UTC", pcfg.ConnConfig.RuntimeParams["timezone"])
	assert.Equal(t, int32(6), pcfg.MaxConns)

	pcfg, err = poolConfig(cfg, "")
	require.NoError(t, err)
	assert.NotContains(t, pcfg.ConnConfig.RuntimeParams, "application_name")
}
