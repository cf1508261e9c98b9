// Package app wires configuration into a ready processor and HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-renderer/internal/adapter/cache"
	httpadapter "resume-renderer/internal/adapter/http"
	repo "resume-renderer/internal/adapter/repository"
	"resume-renderer/internal/config"
	"resume-renderer/internal/infrastructure/migration"
	"resume-renderer/internal/style"
	"resume-renderer/internal/usecase"
	infra "resume-renderer/pkg/infrastructure"
)

type App struct {
	Config    config.Config
	Processor *usecase.Processor
	Store     usecase.ArtifactStore
	Documents *repo.DocumentsRepo
	Log       *slog.Logger

	pool  *pgxpool.Pool
	redis *cache.RedisStore
}

// NewLogger builds the process logger at the configured level.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// New connects the optional backends. Postgres and redis are only used when
// configured; without them documents are not stored and artifacts are
// cached in process.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Log: log}

	if cfg.Storage.JobsDatabaseURL != "" {
		pool, err := infra.NewJobsPool(ctx, cfg.Storage.JobsDatabaseURL)
		if err != nil {
			log.Warn("jobs DB not available", "error", err)
		} else if err := migration.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		} else {
			a.pool = pool
		}
	}
	a.Documents = repo.NewDocumentsRepo(a.pool)

	if cfg.Storage.RedisURL != "" {
		rs, err := cache.NewRedisStore(cfg.Storage.RedisURL, cfg.Storage.ArtifactTTL)
		if err == nil {
			err = rs.Ping(ctx)
		}
		if err != nil {
			log.Warn("redis not available, caching artifacts in process", "error", err)
		} else {
			a.redis = rs
			a.Store = rs
		}
	}
	if a.Store == nil {
		ms, err := cache.NewMemoryStore(cfg.Storage.ArtifactCacheSize)
		if err != nil {
			return nil, err
		}
		a.Store = ms
	}

	styles, err := style.NewCache(cfg.Render.StyleCacheSize)
	if err != nil {
		return nil, err
	}
	renderer := infra.NewChromedpRenderer(cfg.Render.ChromePath, cfg.Render.Timeout)
	a.Processor = usecase.NewProcessor(renderer, usecase.Options{
		Attempts:   cfg.Render.Attempts,
		PageSize:   cfg.Render.PageSize,
		Styles:     styles,
		Store:      a.Store,
		Jobs:       repo.NewJobsRepo(a.pool),
		Documents:  a.Documents,
		CountPages: infra.CountPages,
		Logger:     log,
	})
	return a, nil
}

// Serve runs the HTTP API until ctx is done.
func (a *App) Serve(ctx context.Context) error {
	srv := fiber.New(fiber.Config{BodyLimit: 16 << 20, DisableStartupMessage: true})
	httpadapter.NewHandler(a.Processor, a.Store, a.Log).Register(srv)

	errc := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", a.Config.Server.Port)
		a.Log.Info("server listening", "addr", addr)
		errc <- srv.Listen(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		a.Log.Info("server shutting down")
		return srv.Shutdown()
	}
}

func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
}
