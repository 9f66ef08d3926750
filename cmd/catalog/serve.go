// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"catalog/internal/catalog"
	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/events"
	"catalog/internal/handlers"
	"catalog/internal/middleware"
	"catalog/internal/router"
	"catalog/internal/storage"
	"catalog/internal/store"
	"catalog/internal/valkey"
)

// shutdownTimeout is how long active requests get to finish on shutdown.
const shutdownTimeout = 30 * time.Second

func serve(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(ctx, db); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	// Valkey carries integration events and rate limit counters. Without
	// it events are only logged and mutations are not rate limited.
	var (
		publisher events.Publisher = events.NewLogPublisher(logger)
		limiter   *middleware.RateLimiter
	)
	if cfg.ValkeyEnabled() {
		client, err := valkey.Connect(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return fmt.Errorf("connect valkey: %w", err)
		}
		defer client.Close()
		publisher = events.NewStreamPublisher(client, cfg.EventStream, events.DefaultStreamMaxLen)
		limiter = middleware.NewRateLimiter(client, cfg.RateLimit, cfg.RateLimitEvery)
		slog.Info("event stream enabled", "stream", cfg.EventStream)
	} else {
		slog.Warn("valkey not configured, events are logged only and rate limiting is off")
	}

	dispatcher := events.NewDispatcher(publisher, cfg.EventTimeout, logger)
	defer dispatcher.Close()

	// Media storage is optional; uploads answer 503 without it.
	var media catalog.MediaStorage
	storageClient, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3BucketPublic, cfg.S3PublicURL)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	if storageClient != nil {
		media = storageClient
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", storageClient.Bucket())
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	svc := catalog.NewService(
		store.NewBrandStore(db),
		store.NewCategoryStore(db),
		store.NewItemStore(db),
		dispatcher,
		media,
		cfg.PublicURL,
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(handlers.NewCatalog(svc), limiter),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
