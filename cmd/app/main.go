package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/namsral/flag"

	"github.com/daniilsolovey/blogcraft/config"
	_ "github.com/daniilsolovey/blogcraft/docs"
	"github.com/daniilsolovey/blogcraft/internal/app"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flDatabaseURL = flag.String("database-url", "", "postgres URL, overrides the [Database] section")
	cfg           config.Config
	lg            *slog.Logger
)

// @title Blogcraft API
// @version 1.0
// @description Blog content management: public reading views, post and category editor, admin catalogs.
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	if *flDatabaseURL != "" {
		exitOnError(cfg.SetDatabaseURL(*flDatabaseURL))
	}

	ctx := context.Background()
	store, cleanup, err := app.NewStore(ctx, &cfg, lg)
	exitOnError(err)
	defer cleanup()

	service := app.New(&cfg, store, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
