package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "app"
password = "secret"
dbname = "bookings"
sslmode = "disable"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.InDelta(t, 18.0, cfg.Pricing.TaxPercent, 1e-9)
	assert.Equal(t, 17, cfg.Pricing.PeakStartHour)
	assert.Equal(t, 21, cfg.Pricing.PeakEndHour)
	assert.Equal(t, 30, cfg.Availability.SearchBufferMinutes)
}

func TestLoad_ExplicitValuesKept(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5432
user = "app"
password = "secret"
dbname = "bookings"
sslmode = "require"

[pricing]
tax_percent = 5.0
peak_start_hour = 16
peak_end_hour = 22
weekend_is_peak = false

[availability]
search_buffer_minutes = 45
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.InDelta(t, 5.0, cfg.Pricing.TaxPercent, 1e-9)
	assert.Equal(t, 16, cfg.Pricing.PeakStartHour)
	assert.False(t, cfg.Pricing.WeekendIsPeak)
	assert.Equal(t, 45, cfg.Availability.SearchBufferMinutes)

	assert.Equal(t, "host=db.internal port=5432 user=app password=secret dbname=bookings sslmode=require",
		cfg.Database.DSN())
}

func TestLoad_MissingDatabaseHost(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host")
}

func TestLoad_InvalidPeakWindow(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"

[pricing]
peak_start_hour = 21
peak_end_hour = 17
`)

	_, err := Load(path)
	require.Error(t, err)
}
