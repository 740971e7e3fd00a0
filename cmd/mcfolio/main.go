// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the MC Đào Duy portfolio server.
// It loads configuration, connects to services, sets up routing, and
// starts the HTTP server with graceful shutdown support. Backing services
// are optional: a missing database, Redis or object store degrades the
// affected pages instead of preventing startup.
package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mcfolio/internal/config"
	"mcfolio/internal/database"
	"mcfolio/internal/gateway"
	"mcfolio/internal/handlers"
	"mcfolio/internal/notify"
	"mcfolio/internal/render"
	"mcfolio/internal/router"
	"mcfolio/internal/session"
	"mcfolio/internal/storage"
	"mcfolio/web"
)

func main() {
	// Structured logger to stdout for every environment.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL. The site stays up without it: content pages
	// render their unavailable states and the booking form reports the
	// outage instead of losing submissions silently.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Warn("database unavailable — content pages degraded", "error", err)
		db = nil
	}
	if db != nil {
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		if cfg.IsDev() {
			if err := database.Seed(db); err != nil {
				slog.Error("failed to seed database", "error", err)
				os.Exit(1)
			}
		}
	}

	// Connect to Redis for sessions and the change feed. Without it,
	// sessions fall back to process memory and the dashboard loses its
	// live refresh.
	var feed *notify.Feed
	var sessionKV session.KV = session.NewMemoryKV()
	redisClient, err := notify.Connect(cfg.RedisAddr(), cfg.RedisPassword)
	if err != nil {
		slog.Warn("redis unavailable — in-memory sessions, no live refresh", "error", err)
	} else {
		defer redisClient.Close()
		feed = notify.NewFeed(redisClient)
		sessionKV = session.NewRedisKV(redisClient)
	}

	// The session guard hashes the configured admin credential pair once
	// at startup. Without credentials the admin area stays disabled.
	guard, err := session.NewGuard(sessionKV, cfg.AdminUser, cfg.AdminPassword)
	if err != nil {
		slog.Error("failed to initialize session guard", "error", err)
		os.Exit(1)
	}
	if !guard.Configured() {
		slog.Warn("admin credentials not set — admin login disabled")
	}

	// Connect to S3-compatible object storage (optional — the site works
	// without it, with media uploads disabled).
	var blobs gateway.Blobs
	if cfg.StorageConfigured() {
		client, err := storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if client != nil {
			blobs = client
			slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		}
	} else {
		slog.Warn("s3 storage not configured — media uploads disabled")
	}

	// Content gateway over the database, object store and change feed.
	gw := gateway.New(db, blobs, feed)

	// HTML template renderer. In dev mode, templates load assets from
	// CDN; in production they use compiled files embedded in the binary.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		slog.Error("failed to mount static assets", "error", err)
		os.Exit(1)
	}

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(renderer, gw)
	authHandlers := handlers.NewAuth(renderer, guard)
	adminHandlers := handlers.NewAdmin(renderer, gw)

	// Set up the Chi router with all middleware and routes.
	r := router.New(guard, feed, publicHandlers, authHandlers, adminHandlers, static)

	// Create the HTTP server with sensible timeouts. The admin change-feed
	// handler clears its own write deadline, so WriteTimeout only bounds
	// regular page responses.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
