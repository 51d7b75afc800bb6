package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lmtech-pe/ofertas-loader/internal/config"
	"github.com/lmtech-pe/ofertas-loader/internal/core"
	"github.com/lmtech-pe/ofertas-loader/internal/logging"
	"github.com/lmtech-pe/ofertas-loader/internal/sink"
	"github.com/lmtech-pe/ofertas-loader/internal/web"
)

func main() {
	// Load .env if present; real environment variables win.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	// Configuration incompleteness (missing bucket or credentials) is
	// fatal here, before any file is accepted.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("configuration loaded",
		"addr", cfg.Server.Addr(),
		"bucket", cfg.Sink.Bucket,
		"prefix", cfg.Sink.Prefix,
		"format", cfg.Sink.Format,
		"postgres_enabled", cfg.Postgres.URL != "",
	)

	ctx := context.Background()

	store, err := sink.NewS3(ctx, sink.S3Options{
		Bucket:          cfg.Sink.Bucket,
		Region:          cfg.Sink.Region,
		AccessKeyID:     cfg.Sink.AccessKeyID,
		SecretAccessKey: cfg.Sink.SecretAccessKey,
		Endpoint:        cfg.Sink.Endpoint,
	})
	if err != nil {
		slog.Error("failed to create object-store sink", "error", err)
		os.Exit(1)
	}

	var analytics core.Analytics
	if cfg.Postgres.URL != "" {
		pg, err := sink.NewPostgres(ctx, cfg.Postgres.URL, cfg.Postgres.Table)
		if err != nil {
			slog.Error("failed to connect analytics database", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		analytics = pg
		slog.Info("analytics destination enabled", "table", cfg.Postgres.Table)
	}

	service, err := core.NewService(cfg, store, analytics)
	if err != nil {
		slog.Error("failed to create service", "error", err)
		os.Exit(1)
	}

	server := web.NewServer(service, cfg)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
