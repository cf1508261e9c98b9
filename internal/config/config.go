package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"resume-renderer/internal/layout"
)

type Config struct {
	Server   ServerConfig
	Render   RenderConfig
	Storage  StorageConfig
	LogLevel slog.Level
}

type ServerConfig struct {
	Port int
}

type RenderConfig struct {
	ChromePath string
	Attempts   int
	Timeout    time.Duration
	PageSize   layout.PageSize
	// StyleCacheSize bounds the number of memoized style sheets.
	StyleCacheSize int
}

type StorageConfig struct {
	// JobsDatabaseURL is empty when documents and jobs are not persisted.
	JobsDatabaseURL   string
	RedisURL          string
	ArtifactCacheSize int
	ArtifactTTL       time.Duration
}

func defaults() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Render: RenderConfig{
			Attempts:       3,
			Timeout:        60 * time.Second,
			PageSize:       layout.A4,
			StyleCacheSize: 64,
		},
		Storage: StorageConfig{
			ArtifactCacheSize: 32,
			ArtifactTTL:       time.Hour,
		},
		LogLevel: slog.LevelInfo,
	}
}

// Load applies environment overrides on top of the defaults.
func Load() (Config, error) {
	return loadWith(os.Getenv)
}

func loadWith(getenv func(string) string) (Config, error) {
	cfg := defaults()
	var errs []string
	str := func(env string, dst *string) {
		if v := strings.TrimSpace(getenv(env)); v != "" {
			*dst = v
		}
	}
	num := func(env string, dst *int) {
		raw := strings.TrimSpace(getenv(env))
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Sprintf("%s=%q: want a positive integer", env, raw))
			return
		}
		*dst = n
	}
	dur := func(env string, dst *time.Duration) {
		raw := strings.TrimSpace(getenv(env))
		if raw == "" {
			return
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			errs = append(errs, fmt.Sprintf("%s=%q: want a positive duration", env, raw))
			return
		}
		*dst = d
	}

	num("PORT", &cfg.Server.Port)
	str("CHROME_PATH", &cfg.Render.ChromePath)
	num("RENDER_ATTEMPTS", &cfg.Render.Attempts)
	dur("RENDER_TIMEOUT", &cfg.Render.Timeout)
	num("STYLE_CACHE_SIZE", &cfg.Render.StyleCacheSize)
	str("JOBS_DATABASE_URL", &cfg.Storage.JobsDatabaseURL)
	str("REDIS_URL", &cfg.Storage.RedisURL)
	num("ARTIFACT_CACHE_SIZE", &cfg.Storage.ArtifactCacheSize)
	dur("ARTIFACT_TTL", &cfg.Storage.ArtifactTTL)

	if raw := getenv("PAGE_SIZE"); raw != "" {
		if size, ok := layout.PageSizeByName(raw); ok {
			cfg.Render.PageSize = size
		} else {
			errs = append(errs, fmt.Sprintf("PAGE_SIZE=%q: want A4 or Letter", raw))
		}
	}
	if raw := strings.TrimSpace(getenv("LOG_LEVEL")); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			errs = append(errs, fmt.Sprintf("LOG_LEVEL=%q: %v", raw, err))
		}
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}
