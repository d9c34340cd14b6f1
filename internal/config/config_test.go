package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "kinoline.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	content := `{
		"database": "mongodb://localhost:27017",
		"randomizer": {"mode": "pseudo", "timeout-sec": 5},
		"tmdb": {"token": "secret", "cache-file": "/tmp/cache.db", "cache-ttl-hours": 48},
		"retention": {"purge-after-days": 7, "sweep-interval-min": 15}
	}`

	require.NoError(t, Load(writeConfig(t, content)))

	cfg := Config()
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database)
	assert.Equal(t, "pseudo", cfg.Randomizer.Mode)
	assert.Equal(t, 5, cfg.Randomizer.TimeoutSec)
	assert.Equal(t, "secret", cfg.Tmdb.Token)
	assert.Equal(t, "/tmp/cache.db", cfg.Tmdb.CacheFile)
	assert.Equal(t, 48, cfg.Tmdb.CacheTTLHours)
	assert.Equal(t, 7, cfg.Retention.PurgeAfterDays)
	assert.Equal(t, 15, cfg.Retention.SweepIntervalMin)
}

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, Load(writeConfig(t, `{"database": "mongodb://db:27017"}`)))

	cfg := Config()
	assert.Equal(t, "remote", cfg.Randomizer.Mode)
	assert.Equal(t, 10, cfg.Randomizer.TimeoutSec)
	assert.Equal(t, 24, cfg.Tmdb.CacheTTLHours)
	assert.Equal(t, 30, cfg.Retention.PurgeAfterDays)
	assert.Equal(t, 60, cfg.Retention.SweepIntervalMin)
}

func TestLoadErrors(t *testing.T) {
	assert.Error(t, Load(filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, Load(writeConfig(t, "{broken")))
}
