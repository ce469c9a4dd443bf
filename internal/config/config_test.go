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

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[catalog]
availability_seed = 42
booked_rate = 0.5

[redis]
enabled = true
addr = "redis:6379"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, int64(42), cfg.Catalog.AvailabilitySeed)
	assert.Equal(t, 0.5, cfg.Catalog.BookedRate)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoad_Defaults(t *testing.T) {
	// Пустой файл: действуют значения по умолчанию
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "logs/app.log", cfg.Logs.File)
	assert.Equal(t, "seed/facilities.json", cfg.Catalog.SeedFile)
	assert.Equal(t, 0.3, cfg.Catalog.BookedRate)
	assert.Equal(t, 2000, cfg.Booking.ProcessingDelayMS)
	assert.Equal(t, 1800, cfg.Booking.SessionTTL)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_InvalidBookedRate(t *testing.T) {
	_, err := Load(writeConfig(t, `
[catalog]
booked_rate = 1.5
`))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does/not/exist.toml")
	assert.Error(t, err)
}
