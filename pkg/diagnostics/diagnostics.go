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

package diagnostics

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sbxservice/hello-service/pkg/defaults"
)

const (
	// UnknownValue is reported for any host fact that could not be determined.
	UnknownValue = "unknown"

	bytesPerMB = 1024 * 1024
)

// ServerInfo describes the host and runtime serving a request.
type ServerInfo struct {
	Hostname       string `json:"hostname" yaml:"hostname"`
	RuntimeVersion string `json:"runtimeVersion" yaml:"runtimeVersion"`
	OSName         string `json:"osName" yaml:"osName"`
	OSVersion      string `json:"osVersion" yaml:"osVersion"`
	FreeMemoryMB   int64  `json:"freeMemoryMb" yaml:"freeMemoryMb"`
	TotalMemoryMB  int64  `json:"totalMemoryMb" yaml:"totalMemoryMb"`
}

// Collector gathers ServerInfo snapshots. It holds no mutable state and is
// safe for concurrent use.
type Collector struct {
	hostname       func() (string, error)
	kernelVersion  func(ctx context.Context) (string, error)
	readMemStats   func(*runtime.MemStats)
	runtimeVersion func() string
	goos           string
}

// Option is a functional option for configuring Collector instances.
type Option func(*Collector)

// WithHostnameFunc overrides the hostname source.
func WithHostnameFunc(fn func() (string, error)) Option {
	return func(c *Collector) {
		c.hostname = fn
	}
}

// WithKernelVersionFunc overrides the OS version source.
func WithKernelVersionFunc(fn func(ctx context.Context) (string, error)) Option {
	return func(c *Collector) {
		c.kernelVersion = fn
	}
}

// WithMemStatsFunc overrides the memory statistics source.
func WithMemStatsFunc(fn func(*runtime.MemStats)) Option {
	return func(c *Collector) {
		c.readMemStats = fn
	}
}

// WithRuntimeVersionFunc overrides the runtime version source.
func WithRuntimeVersionFunc(fn func() string) Option {
	return func(c *Collector) {
		c.runtimeVersion = fn
	}
}

// WithGOOS overrides the operating system identifier.
func WithGOOS(goos string) Option {
	return func(c *Collector) {
		c.goos = goos
	}
}

// NewCollector creates a Collector backed by the running process and host.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		hostname:       os.Hostname,
		kernelVersion:  host.KernelVersionWithContext,
		readMemStats:   runtime.ReadMemStats,
		runtimeVersion: runtime.Version,
		goos:           runtime.GOOS,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CollectServerInfo takes a fresh snapshot of host and runtime facts.
// It never fails: facts that cannot be read are reported as UnknownValue.
func (c *Collector) CollectServerInfo(ctx context.Context) ServerInfo {
	free, total := c.memory()

	return ServerInfo{
		Hostname:       c.collectHostname(),
		RuntimeVersion: c.runtimeVersion(),
		OSName:         osName(c.goos),
		OSVersion:      c.collectOSVersion(ctx),
		FreeMemoryMB:   free,
		TotalMemoryMB:  total,
	}
}

func (c *Collector) collectHostname() string {
	name, err := c.hostname()
	if err != nil {
		slog.Debug("failed to resolve hostname", slog.String("error", err.Error()))
		return UnknownValue
	}

	name = strings.TrimSpace(name)
	if name == "" {
		slog.Debug("hostname is empty")
		return UnknownValue
	}

	return name
}

func (c *Collector) collectOSVersion(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, defaults.DiagnosticsTimeout)
	defer cancel()

	v, err := c.kernelVersion(ctx)
	if err != nil {
		slog.Debug("failed to read os version", slog.String("error", err.Error()))
		return UnknownValue
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return UnknownValue
	}

	return v
}

// memory reports free and total heap memory in whole megabytes.
// Total is heap obtained from the OS, free is the part of it not in use.
func (c *Collector) memory() (free, total int64) {
	var ms runtime.MemStats
	c.readMemStats(&ms)

	total = int64(ms.HeapSys / bytesPerMB)
	if ms.HeapAlloc < ms.HeapSys {
		free = int64((ms.HeapSys - ms.HeapAlloc) / bytesPerMB)
	}

	return free, total
}

// osName title-cases a GOOS value, e.g. "linux" becomes "Linux".
func osName(goos string) string {
	if goos == "" {
		return UnknownValue
	}
	// Casers are stateful and must not be shared between goroutines.
	return cases.Title(language.English).String(goos)
}
