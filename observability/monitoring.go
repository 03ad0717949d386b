// Package observability exposes lightweight runtime telemetry for the
// health endpoint. No metrics pipeline: one snapshot per request is enough
// for a single-process chat server.
package observability

import (
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthStats is the health endpoint payload.
type HealthStats struct {
	Status        string  `json:"status"`
	Message       string  `json:"message"`
	UptimeSeconds int64   `json:"uptime_seconds"`
	Goroutines    int     `json:"goroutines"`
	AllocMemMb    uint64  `json:"alloc_mem_mb"`
	RssMb         float64 `json:"rss_mb"`
	CPUPercent    float64 `json:"cpu_percent"`
	NumGC         uint32  `json:"num_gc"`
}

type Monitor struct {
	log       *slog.Logger
	startedAt time.Time
	proc      *process.Process
}

func NewMonitor(log *slog.Logger) *Monitor {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		// Self-inspection failing is not fatal; stats degrade to runtime-only.
		log.Warn("Process self-inspection unavailable", "error", err)
		proc = nil
	}
	return &Monitor{log: log, startedAt: time.Now(), proc: proc}
}

// Snapshot collects one point-in-time view of the process.
func (m *Monitor) Snapshot() HealthStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	stats := HealthStats{
		Status:        "ok",
		Message:       "Chat server is running",
		UptimeSeconds: int64(time.Since(m.startedAt).Seconds()),
		Goroutines:    runtime.NumGoroutine(),
		AllocMemMb:    mem.Alloc / 1024 / 1024,
		NumGC:         mem.NumGC,
	}

	if m.proc != nil {
		if memInfo, err := m.proc.MemoryInfo(); err == nil {
			stats.RssMb = float64(memInfo.RSS) / 1024 / 1024
		}
		if cpu, err := m.proc.CPUPercent(); err == nil {
			stats.CPUPercent = cpu
		}
	}
	return stats
}
