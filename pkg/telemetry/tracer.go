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

package telemetry

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/sbxservice/hello-service/pkg/defaults"
	"github.com/sbxservice/hello-service/pkg/errors"
)

const (
	// EnvEndpoint enables tracing and names the OTLP/HTTP collector,
	// either host:port or a full URL.
	EnvEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// EnvSamplerArg is the trace sampling ratio, 0.0 to 1.0.
	EnvSamplerArg = "OTEL_TRACES_SAMPLER_ARG"
	// EnvServiceName overrides the reported service name.
	EnvServiceName = "OTEL_SERVICE_NAME"
)

// Config holds tracing configuration.
type Config struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	SamplingRate   float64
}

// ConfigFromEnv builds a Config for the given service from the standard
// OpenTelemetry environment variables. Tracing is enabled only when an
// endpoint is set.
func ConfigFromEnv(service, version string) Config {
	cfg := Config{
		ServiceName:    service,
		ServiceVersion: version,
		SamplingRate:   1.0,
	}

	if v := os.Getenv(EnvServiceName); v != "" {
		cfg.ServiceName = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvEndpoint)); v != "" {
		cfg.Enabled = true
		cfg.Endpoint = v
	}

	if v := os.Getenv(EnvSamplerArg); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.SamplingRate = rate
		} else {
			slog.Warn("ignoring invalid sampling rate", "env", EnvSamplerArg, "value", v)
		}
	}

	return cfg
}

// Provider owns the process tracer provider.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider installs the global tracer provider and propagator. When
// tracing is disabled a noop provider is installed.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.Enabled {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return &Provider{}, nil
	}

	res := resource.NewWithAttributes("",
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	)

	exporter, err := otlptracehttp.New(ctx, exporterOptions(cfg.Endpoint)...)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidConfig, "failed to create trace exporter", err,
			map[string]any{"endpoint": cfg.Endpoint})
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sampler(cfg.SamplingRate))),
	)
	otel.SetTracerProvider(tp)

	slog.Info("tracing enabled",
		"endpoint", cfg.Endpoint,
		"samplingRate", cfg.SamplingRate,
	)

	return &Provider{tp: tp}, nil
}

func exporterOptions(endpoint string) []otlptracehttp.Option {
	if strings.Contains(endpoint, "://") {
		return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	}
}

func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate >= 1.0:
		return sdktrace.AlwaysSample()
	case rate <= 0.0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(rate)
	}
}

// Shutdown flushes pending spans. It is a no-op for a disabled provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.tp == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.TelemetryShutdownTimeout)
	defer cancel()

	return p.tp.Shutdown(ctx)
}
