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

package defaults

import "time"

// Diagnostics timeouts for host fact collection.
const (
	// DiagnosticsTimeout bounds a single server info collection.
	// Host lookups are local, so this only guards against a wedged platform call.
	DiagnosticsTimeout = 2 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the entire request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Telemetry timeouts for trace export.
const (
	// TelemetryShutdownTimeout is the maximum duration to flush pending spans on exit.
	TelemetryShutdownTimeout = 5 * time.Second
)

// Rate limiting defaults for the API endpoints.
const (
	// RateLimitPerSecond is the sustained request rate allowed across all clients.
	RateLimitPerSecond = 100

	// RateLimitBurst is the token bucket size.
	RateLimitBurst = 200
)
