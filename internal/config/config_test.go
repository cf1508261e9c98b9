package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-renderer/internal/layout"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg, err := loadWith(env(nil))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Render.Attempts)
	assert.Equal(t, 60*time.Second, cfg.Render.Timeout)
	assert.Equal(t, layout.A4, cfg.Render.PageSize)
	assert.Empty(t, cfg.Storage.JobsDatabaseURL)
	assert.Empty(t, cfg.Storage.RedisURL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestEnvOverrides(t *testing.T) {
	cfg, err := loadWith(env(map[string]string{
		"PORT":                "9000",
		"CHROME_PATH":         "/usr/bin/chromium",
		"RENDER_ATTEMPTS":     "5",
		"RENDER_TIMEOUT":      "90s",
		"PAGE_SIZE":           "letter",
		"STYLE_CACHE_SIZE":    "8",
		"JOBS_DATABASE_URL":   "postgres://localhost/jobs",
		"REDIS_URL":           "redis://localhost:6379/0",
		"ARTIFACT_CACHE_SIZE": "4",
		"ARTIFACT_TTL":        "10m",
		"LOG_LEVEL":           "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/usr/bin/chromium", cfg.Render.ChromePath)
	assert.Equal(t, 5, cfg.Render.Attempts)
	assert.Equal(t, 90*time.Second, cfg.Render.Timeout)
	assert.Equal(t, layout.Letter, cfg.Render.PageSize)
	assert.Equal(t, 8, cfg.Render.StyleCacheSize)
	assert.Equal(t, "postgres://localhost/jobs", cfg.Storage.JobsDatabaseURL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Storage.RedisURL)
	assert.Equal(t, 4, cfg.Storage.ArtifactCacheSize)
	assert.Equal(t, 10*time.Minute, cfg.Storage.ArtifactTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestInvalidValuesAreReported(t *testing.T) {
	_, err := loadWith(env(map[string]string{
		"PORT":           "http",
		"RENDER_TIMEOUT": "-1s",
		"PAGE_SIZE":      "A3",
		"LOG_LEVEL":      "loud",
	}))
	require.Error(t, err)
	for _, key := range []string{"PORT", "RENDER_TIMEOUT", "PAGE_SIZE", "LOG_LEVEL"} {
		assert.Contains(t, err.Error(), key)
	}
}
