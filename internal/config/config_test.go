package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "cleanhome"
password = "from-file"
dbname = "cleanhome"

[auth]
jwt_secret = "file-secret"

[availability]
poll_interval_seconds = 10
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Availability.PollIntervalSeconds)
	assert.Equal(t, "reservations_changed", cfg.Availability.RealtimeChannel)
	assert.Equal(t, 180, cfg.Booking.DurationMinutes)
	assert.Equal(t, "ch", cfg.Geocoder.Country)
	assert.Equal(t, "host=db port=5433 user=cleanhome password=from-file dbname=cleanhome sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestLoad_MissingSecret(t *testing.T) {
	_, err := Load(writeConfig(t, "[server]\nhttp_port = 8080\n"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
