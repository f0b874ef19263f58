package api

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/sbxservice/hello-service/pkg/config"
	"github.com/sbxservice/hello-service/pkg/diagnostics"
	"github.com/sbxservice/hello-service/pkg/greeting"
	"github.com/sbxservice/hello-service/pkg/server"
	"github.com/sbxservice/hello-service/pkg/telemetry"
)

const (
	name           = "hellod"
	versionDefault = "dev"

	// HelloPath is the greeting endpoint.
	HelloPath = "/api/hello"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/sbxservice/hello-service/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Version returns the build version.
func Version() string {
	return version
}

// Routes returns the application routes served by hellod.
func Routes(cfg *config.Config) map[string]http.HandlerFunc {
	b := greeting.NewBuilder(
		greeting.WithDefaultMessage(cfg.DefaultMessage),
		greeting.WithCollector(diagnostics.NewCollector()),
	)

	return map[string]http.HandlerFunc{
		HelloPath: b.HandleHello,
	}
}

// NewServer builds the hellod server. Caller options are applied first, so
// server.WithConfig can replace the base configuration before hellod's
// identity and routes are added.
func NewServer(cfg *config.Config, opts ...server.Option) *server.Server {
	base := []server.Option{
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(cfg)),
		server.WithMiddleware(telemetry.HTTPMiddleware(name)),
	}
	return server.New(append(slices.Clone(opts), base...)...)
}

// Serve starts the API server and blocks until shutdown.
// It sets up tracing, registers routes, and handles graceful shutdown.
func Serve(ctx context.Context, cfg *config.Config, opts ...server.Option) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"defaultMessageSource", string(cfg.DefaultMessageSource),
	)

	tp, err := telemetry.NewProvider(ctx, telemetry.ConfigFromEnv(name, version))
	if err != nil {
		return err
	}
	defer func() {
		if err := tp.Shutdown(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	s := NewServer(cfg, opts...)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
