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

package greeting

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sbxservice/hello-service/pkg/diagnostics"
)

const tracerName = "github.com/sbxservice/hello-service/pkg/greeting"

// GreetingResponse is the body returned for a greeting request.
type GreetingResponse struct {
	Message        string                 `json:"message" yaml:"message"`
	Timestamp      time.Time              `json:"timestamp" yaml:"timestamp"`
	UserAgent      string                 `json:"userAgent" yaml:"userAgent"`
	RequestHeaders map[string]string      `json:"requestHeaders" yaml:"requestHeaders"`
	ServerInfo     diagnostics.ServerInfo `json:"serverInfo" yaml:"serverInfo"`
}

// ServerInfoCollector supplies the diagnostics embedded in every response.
type ServerInfoCollector interface {
	CollectServerInfo(ctx context.Context) diagnostics.ServerInfo
}

// Builder assembles GreetingResponse values. It is safe for concurrent use.
type Builder struct {
	// DefaultMessage is returned for requests without a name.
	DefaultMessage string

	collector ServerInfoCollector
	now       func() time.Time
}

// Option is a functional option for configuring Builder instances.
type Option func(*Builder)

// WithDefaultMessage sets the message used when no name is given.
func WithDefaultMessage(msg string) Option {
	return func(b *Builder) {
		b.DefaultMessage = msg
	}
}

// WithCollector replaces the diagnostics source.
func WithCollector(c ServerInfoCollector) Option {
	return func(b *Builder) {
		if c != nil {
			b.collector = c
		}
	}
}

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBuilder creates a Builder greeting with DefaultMessage and collecting
// live host diagnostics unless overridden.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		DefaultMessage: DefaultMessage,
		collector:      diagnostics.NewCollector(),
		now:            time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// BuildResponse greets name and attaches request and server metadata.
// It never fails; a nil rc yields an empty header map.
func (b *Builder) BuildResponse(ctx context.Context, name string, rc RequestContext) *GreetingResponse {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "greeting.BuildResponse")
	defer span.End()

	resp := &GreetingResponse{
		Message:        Generate(name, b.DefaultMessage),
		Timestamp:      b.now(),
		RequestHeaders: map[string]string{},
	}

	if rc != nil {
		for _, h := range rc.HeaderNames() {
			if v, ok := rc.Header(h); ok {
				resp.RequestHeaders[h] = v
			}
		}
		resp.UserAgent, _ = rc.Header("User-Agent")
	}

	resp.ServerInfo = b.collector.CollectServerInfo(ctx)

	span.SetAttributes(
		attribute.Bool("greeting.named", isNamed(name)),
		attribute.Int("greeting.header_count", len(resp.RequestHeaders)),
		attribute.String("host.name", resp.ServerInfo.Hostname),
	)

	return resp
}
