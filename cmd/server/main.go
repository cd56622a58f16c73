// Command server runs the Tuiter HTTP API.
//
// All settings come from the environment or an optional config.yaml; see
// internal/config for the keys. With no configuration at all it serves on
// :8080 from an SQLite file at data/tuiter.db.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/sakif/tuiter/internal/config"
	"github.com/sakif/tuiter/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// no logger yet
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(os.Stdout, cfg)
	slog.SetDefault(logger)

	srv, err := server.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start blocks until Ctrl+C or SIGTERM.
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
