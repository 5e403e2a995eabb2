package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/daniilsolovey/blogcraft/config"
	"github.com/daniilsolovey/blogcraft/internal/admin"
	"github.com/daniilsolovey/blogcraft/internal/blog"
	"github.com/daniilsolovey/blogcraft/internal/metrics"
	"github.com/daniilsolovey/blogcraft/internal/rest"
	"github.com/daniilsolovey/blogcraft/internal/rpc"
	"github.com/labstack/echo/v4"
)

type App struct {
	Store  blog.Store
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, store blog.Store, logger *slog.Logger) *App {
	now := time.Now
	manager := blog.NewManager(store, logger, blog.WithClock(now))

	catalogs := admin.NewCatalogs(logger, now)
	if cfg.Store.Seed {
		catalogs = admin.NewSeededCatalogs(logger, now)
	}

	handler := rest.NewHandler(manager, catalogs, metrics.New(), logger)

	return &App{
		Store:  store,
		Logger: logger,
		Echo: handler.RegisterRoutes(rest.RouteConfig{
			AdminKey:  cfg.App.AdminKey,
			RateLimit: cfg.App.RateLimit,
			RPC:       rpc.NewPublic(logger, manager),
			AdminRPC:  rpc.NewAdmin(logger, manager),
		}),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "service starting", "addr", a.Config.Addr(), "backend", a.Config.Store.Backend)
	err := a.Echo.Start(a.Config.Addr())
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
