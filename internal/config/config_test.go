package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "PG_DSN", "PG_HOST", "PG_DATABASE", "SEARCH_DEFAULT_LIMIT", "SEARCH_MAX_LIMIT", "RESERVATION_DEFAULT_LIMIT", "SERVER_PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Search.DefaultLimit)
	assert.Equal(t, 100, cfg.Search.MaxLimit)
	assert.Equal(t, 10, cfg.Search.DefaultReservationLimit)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "lightbnb", cfg.PostgreSQL.Database)
}

func TestLoad_InvalidIntegerFallsBack(t *testing.T) {
	t.Setenv("SEARCH_DEFAULT_LIMIT", "ten")
	t.Setenv("SEARCH_MAX_LIMIT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Search.DefaultLimit)
}

func TestLoad_RejectsMaxBelowDefault(t *testing.T) {
	t.Setenv("SEARCH_DEFAULT_LIMIT", "50")
	t.Setenv("SEARCH_MAX_LIMIT", "20")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetPostgreSQLDSN(t *testing.T) {
	cfg := &Config{PostgreSQL: PostgreSQLConfig{
		Host:     "db",
		Port:     5432,
		User:     "vagrant",
		Password: "123",
		Database: "lightbnb",
		SSLMode:  "disable",
	}}

	assert.Equal(t, "host=db port=5432 user=vagrant password=123 dbname=lightbnb sslmode=disable", cfg.GetPostgreSQLDSN())

	cfg.PostgreSQL.DSN = "postgres://u:p@h/lightbnb"
	assert.Equal(t, "postgres://u:p@h/lightbnb", cfg.GetPostgreSQLDSN())
}
