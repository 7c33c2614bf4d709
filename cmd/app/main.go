package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/IdleRates_Go/internal/bootstrap"
	"github.com/osse101/IdleRates_Go/internal/calculator"
	"github.com/osse101/IdleRates_Go/internal/config"
	"github.com/osse101/IdleRates_Go/internal/handler"
	"github.com/osse101/IdleRates_Go/internal/profile"
	"github.com/osse101/IdleRates_Go/internal/server"
	"github.com/osse101/IdleRates_Go/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, cat, err := bootstrap.LoadCatalogs(ctx, cfg)
	if err != nil {
		slog.Error("Failed to load catalogs", "error", err)
		os.Exit(1)
	}

	source := profile.NewCachedSource(
		profile.NewClient(cfg.ProfileAPIBaseURL, cfg.ProfileAPITimeout),
		cfg.ProfileCacheSize,
		cfg.ProfileCacheTTL,
	)
	svc := calculator.NewService(table, cat, source)
	sessions := session.NewStore(svc, cfg.SessionCacheSize, cfg.SessionTTL)

	handler.InitValidator()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, svc, sessions)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		slog.Error("Server failed to start", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:   srv,
		Sessions: sessions,
	})
}
