package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats is one sample of the dispatcher's own resource usage.
type ProcessStats struct {
	CPUPercent  float64   `json:"cpu_percent"`
	RSSBytes    uint64    `json:"rss_bytes"`
	HeapAllocMb uint64    `json:"heap_alloc_mb"`
	NumGC       uint32    `json:"num_gc"`
	Goroutines  int       `json:"goroutines"`
	Sessions    int       `json:"sessions"`
	SampledAt   time.Time `json:"sampled_at"`
}

// SessionCounter reports how many connections are attached.
type SessionCounter interface {
	Len() int
}

// ProcessMonitor samples the current process every interval and keeps the
// latest sample for the debug page.
type ProcessMonitor struct {
	log      *slog.Logger
	interval time.Duration
	sessions SessionCounter
	pid      int32

	mu     sync.RWMutex
	latest ProcessStats
}

func NewProcessMonitor(log *slog.Logger, interval time.Duration, sessions SessionCounter) *ProcessMonitor {
	return &ProcessMonitor{
		log:      log,
		interval: interval,
		sessions: sessions,
		pid:      int32(os.Getpid()),
	}
}

func (m *ProcessMonitor) Run(ctx context.Context) error {
	p, err := process.NewProcess(m.pid)
	if err != nil {
		return err
	}
	m.sample(p)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.log.Debug("Context done, stopping process monitor")
			return nil
		case <-ticker.C:
			m.sample(p)
		}
	}
}

func (m *ProcessMonitor) sample(p *process.Process) {
	stats := ProcessStats{SampledAt: time.Now().UTC(), Goroutines: runtime.NumGoroutine()}
	if m.sessions != nil {
		stats.Sessions = m.sessions.Len()
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	stats.HeapAllocMb = mem.HeapAlloc / 1024 / 1024
	stats.NumGC = mem.NumGC

	if info, err := p.MemoryInfo(); err == nil {
		stats.RSSBytes = info.RSS
	} else {
		m.log.Debug("Error while finding process memory", "err", err)
	}
	if cpu, err := p.CPUPercent(); err == nil {
		stats.CPUPercent = cpu
	} else {
		m.log.Debug("Error while finding process cpu usage", "err", err)
	}

	m.mu.Lock()
	m.latest = stats
	m.mu.Unlock()

	m.log.Debug("Process stats",
		"cpu_percent", stats.CPUPercent,
		"rss_bytes", stats.RSSBytes,
		"goroutines", stats.Goroutines,
		"sessions", stats.Sessions,
	)
}

// Latest returns the last sample, zero before the first tick.
func (m *ProcessMonitor) Latest() ProcessStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest
}
