package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  port: "9090"
  mode: debug
database:
  driver: memory
prefs:
  type: memory
storage:
  type: minio
calendar:
  timezone: Europe/Berlin
  week_start: monday
jwt:
  secret: test-secret
  expire_hours: 2
cors:
  allowed_origins:
    - http://localhost:5173
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, sampleConfig)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "memory", cfg.Prefs.Type)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, time.Monday, cfg.Calendar.FirstWeekday())
	assert.Equal(t, "Europe/Berlin", cfg.Calendar.Location().String())
	assert.Equal(t, dir, cfg.Dir)
	// defaults fill in what the file leaves out
	assert.Equal(t, 6000, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "data/prefs.db", cfg.Prefs.BoltPath)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, sampleConfig)
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoadConfigRejectsShortSecretInRelease(t *testing.T) {
	dir := writeConfig(t, "server:\n  mode: release\nstorage:\n  type: minio\njwt:\n  secret: short\n")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestCalendarDefaults(t *testing.T) {
	var c CalendarConfig
	assert.Equal(t, time.Sunday, c.FirstWeekday())
	assert.Equal(t, time.Local, c.Location())

	c.Timezone = "Not/AZone"
	assert.Equal(t, time.Local, c.Location())
}
