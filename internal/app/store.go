package app

import (
	"context"
	"log/slog"

	"github.com/daniilsolovey/blogcraft/config"
	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/db"
	"github.com/daniilsolovey/blogcraft/internal/memstore"
	"github.com/go-pg/pg/v10"
)

// NewStore opens the configured blog.Store. The returned cleanup releases
// the database pool and is safe to call for the memory backend.
func NewStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (blog.Store, func(), error) {
	if cfg.Store.Backend != config.BackendPostgres {
		if cfg.Store.Seed {
			return memstore.NewSeeded(), func() {}, nil
		}
		return memstore.New(nil, nil), func() {}, nil
	}

	opt := cfg.Database
	if opt.MaxRetries == 0 {
		opt.MaxRetries = 3
	}

	conn := pg.Connect(&opt)
	if cfg.Store.LogQueries {
		conn.AddQueryHook(db.NewQueryLogger(logger))
		logger.Info("SQL query logging enabled")
	}

	repo := db.New(conn)
	cleanup := func() {
		if err := repo.Close(); err != nil {
			logger.Error("error closing database connection", "error", err)
		}
	}

	if err := repo.Ping(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		cleanup()
		return nil, nil, err
	}

	if err := db.Migrate(ctx, &opt); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		cleanup()
		return nil, nil, err
	}

	if cfg.Store.Seed {
		if err := repo.SeedIfEmpty(ctx, blog.SeedPosts(), blog.SeedCategories()); err != nil {
			logger.Error("failed to seed database", "error", err)
			cleanup()
			return nil, nil, err
		}
	}

	return repo, cleanup, nil
}
