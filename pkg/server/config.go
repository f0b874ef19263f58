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

package server

import (
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/sbxservice/hello-service/pkg/defaults"
	"github.com/sbxservice/hello-service/pkg/errors"
)

const (
	// EnvPort overrides the listen port.
	EnvPort = "PORT"
	// EnvShutdownTimeoutSeconds overrides the graceful shutdown window.
	EnvShutdownTimeoutSeconds = "SHUTDOWN_TIMEOUT_SECONDS"

	defaultPort = 8080
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Handlers are application routes, wrapped with the full middleware chain.
	Handlers map[string]http.HandlerFunc

	// Middleware wraps the whole router, outermost first.
	Middleware []func(http.Handler) http.Handler

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with defaults, overridden by PORT and
// SHUTDOWN_TIMEOUT_SECONDS when set.
func NewConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Handlers:          map[string]http.HandlerFunc{},
		Address:           "",
		Port:              defaultPort,
		RateLimit:         defaults.RateLimitPerSecond,
		RateLimitBurst:    defaults.RateLimitBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		} else {
			slog.Warn("ignoring invalid port", "env", EnvPort, "value", v)
		}
	}

	// Allow the shutdown window to match the supervisor's stop grace period
	if v := os.Getenv(EnvShutdownTimeoutSeconds); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		} else {
			slog.Warn("ignoring invalid shutdown timeout", "env", EnvShutdownTimeoutSeconds, "value", v)
		}
	}

	return cfg
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig, "port out of range",
			map[string]any{"port": c.Port})
	}
	if c.RateLimit <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig, "rate limit must be positive",
			map[string]any{"rateLimit": float64(c.RateLimit)})
	}
	if c.RateLimitBurst <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig, "rate limit burst must be positive",
			map[string]any{"rateLimitBurst": c.RateLimitBurst})
	}
	if c.ShutdownTimeout <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig, "shutdown timeout must be positive",
			map[string]any{"shutdownTimeout": c.ShutdownTimeout.String()})
	}
	return nil
}
