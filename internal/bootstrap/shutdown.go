package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/IdleRates_Go/internal/server"
	"github.com/osse101/IdleRates_Go/internal/session"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server   *server.Server
	Sessions *session.Store
}

// GracefulShutdown stops the HTTP server so in-flight requests complete,
// then reports the sessions that are lost with the process.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Sessions != nil {
		slog.Info(LogMsgSessionsDiscarded, "count", components.Sessions.Len())
	}

	slog.Info(LogMsgServerStopped)
}
