// Package api provides the HTTP API layer for the hello service.
//
// This package is a thin wrapper around the reusable pkg/server package,
// configuring it with the greeting route and tracing.
//
// # Usage
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//	return api.Serve(ctx, cfg)
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /api/hello?name=<optional> - Greeting with request and server diagnostics
//
// System endpoints (no rate limiting):
//   - GET /        - Service index
//   - GET /health  - Liveness probe
//   - GET /ready   - Readiness probe
//   - GET /metrics - Prometheus metrics
//
// # Build Information
//
// Version, commit and date are set at build time:
//
//	go build -ldflags "-X github.com/sbxservice/hello-service/pkg/api.version=1.0.0"
package api
