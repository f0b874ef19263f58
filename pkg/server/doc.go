// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides a reusable HTTP server with the operational
// plumbing every hellod endpoint shares.
//
// # Architecture
//
// Routes are served by a chi router. Application handlers registered with
// WithHandler are wrapped, outermost first, in:
//
//   - Prometheus RED metrics (labelled by route pattern)
//   - API version negotiation (X-API-Version)
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// Router-wide middleware added with WithMiddleware, such as tracing, wraps
// every route including the system endpoints.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("hellod"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/api/hello": handler,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until SIGINT, SIGTERM, or ctx cancellation, then drains
// in-flight requests within Config.ShutdownTimeout.
//
// # System Endpoints
//
//   - GET /        - Service index (name, version, readiness, routes)
//   - GET /health  - Liveness probe, always 200 while the process serves
//   - GET /ready   - Readiness probe, 503 before start and during shutdown
//   - GET /metrics - Prometheus exposition
//
// # Errors
//
// Every error is written as an ErrorResponse:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 100, "burst": 200},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "retryable": true
//	}
//
// Handlers report failures with WriteError, WriteMethodNotAllowed, or
// WriteErrorFromErr, which maps pkg/errors codes to HTTP status codes.
//
// # Configuration
//
// NewConfig reads:
//
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window (default 30)
//
// # Service Manager
//
// When started under systemd with Type=notify the server reports READY=1 once
// listening and STOPPING=1 when shutdown begins.
package server
