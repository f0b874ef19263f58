package diagnostics

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedMemStats(heapSys, heapAlloc uint64) func(*runtime.MemStats) {
	return func(ms *runtime.MemStats) {
		ms.HeapSys = heapSys
		ms.HeapAlloc = heapAlloc
	}
}

func TestCollectServerInfo_Live(t *testing.T) {
	info := NewCollector().CollectServerInfo(t.Context())

	assert.NotEmpty(t, info.Hostname)
	assert.Equal(t, runtime.Version(), info.RuntimeVersion)
	assert.NotEmpty(t, info.OSName)
	assert.NotEmpty(t, info.OSVersion)
	assert.GreaterOrEqual(t, info.FreeMemoryMB, int64(0))
	assert.LessOrEqual(t, info.FreeMemoryMB, info.TotalMemoryMB)
}

func TestCollectServerInfo_Injected(t *testing.T) {
	c := NewCollector(
		WithHostnameFunc(func() (string, error) { return "node-a", nil }),
		WithKernelVersionFunc(func(context.Context) (string, error) { return "6.8.0-45-generic", nil }),
		WithMemStatsFunc(fixedMemStats(64*bytesPerMB, 16*bytesPerMB)),
		WithRuntimeVersionFunc(func() string { return "go1.25.0" }),
		WithGOOS("linux"),
	)

	want := ServerInfo{
		Hostname:       "node-a",
		RuntimeVersion: "go1.25.0",
		OSName:         "Linux",
		OSVersion:      "6.8.0-45-generic",
		FreeMemoryMB:   48,
		TotalMemoryMB:  64,
	}

	assert.Equal(t, want, c.CollectServerInfo(t.Context()))
}

func TestCollectServerInfo_Hostname(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"resolved", func() (string, error) { return "web-1", nil }, "web-1"},
		{"trimmed", func() (string, error) { return " web-1\n", nil }, "web-1"},
		{"error", func() (string, error) { return "", errors.New("no hostname") }, UnknownValue},
		{"empty", func() (string, error) { return "", nil }, UnknownValue},
		{"whitespace", func() (string, error) { return "   ", nil }, UnknownValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(WithHostnameFunc(tt.fn))
			info := c.CollectServerInfo(t.Context())
			assert.Equal(t, tt.want, info.Hostname)
			assert.NotEmpty(t, info.Hostname)
		})
	}
}

func TestCollectServerInfo_OSVersion(t *testing.T) {
	tests := []struct {
		name string
		fn   func(context.Context) (string, error)
		want string
	}{
		{"resolved", func(context.Context) (string, error) { return "23.4.0", nil }, "23.4.0"},
		{"error", func(context.Context) (string, error) { return "", errors.New("unsupported") }, UnknownValue},
		{"empty", func(context.Context) (string, error) { return "", nil }, UnknownValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(WithKernelVersionFunc(tt.fn))
			assert.Equal(t, tt.want, c.CollectServerInfo(t.Context()).OSVersion)
		})
	}
}

func TestCollectServerInfo_OSVersionHasDeadline(t *testing.T) {
	var hasDeadline bool
	c := NewCollector(WithKernelVersionFunc(func(ctx context.Context) (string, error) {
		_, hasDeadline = ctx.Deadline()
		return "1.0", nil
	}))

	c.CollectServerInfo(context.Background())
	assert.True(t, hasDeadline, "os version lookup should be bounded by a timeout")
}

func TestCollectServerInfo_Memory(t *testing.T) {
	tests := []struct {
		name      string
		heapSys   uint64
		heapAlloc uint64
		wantFree  int64
		wantTotal int64
	}{
		{"typical", 8 * bytesPerMB, 3 * bytesPerMB, 5, 8},
		{"truncates partial megabytes", 8*bytesPerMB + 512*1024, 1*bytesPerMB + 900*1024, 6, 8},
		{"fully allocated", 4 * bytesPerMB, 4 * bytesPerMB, 0, 4},
		{"alloc exceeds sys", 2 * bytesPerMB, 3 * bytesPerMB, 0, 2},
		{"below one megabyte", 512 * 1024, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(WithMemStatsFunc(fixedMemStats(tt.heapSys, tt.heapAlloc)))
			info := c.CollectServerInfo(t.Context())

			assert.Equal(t, tt.wantFree, info.FreeMemoryMB)
			assert.Equal(t, tt.wantTotal, info.TotalMemoryMB)
			assert.LessOrEqual(t, info.FreeMemoryMB, info.TotalMemoryMB)
		})
	}
}

func TestOSName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "Linux"},
		{"darwin", "Darwin"},
		{"windows", "Windows"},
		{"freebsd", "Freebsd"},
		{"", UnknownValue},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, osName(tt.goos))
		})
	}
}

func TestCollectServerInfo_Concurrent(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	results := make([]ServerInfo, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.CollectServerInfo(context.Background())
		}(i)
	}
	wg.Wait()

	for _, info := range results {
		require.NotEmpty(t, info.Hostname)
		require.NotEmpty(t, info.OSName)
	}
}
