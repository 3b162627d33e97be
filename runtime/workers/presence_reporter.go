package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"notification-hub/contract"

	"github.com/shirou/gopsutil/process"
)

// PresenceReporter logs, at every tick, how many sessions and users are
// connected together with the process memory and CPU usage.
type PresenceReporter struct {
	log      *slog.Logger
	registry contract.IRegistry
	interval time.Duration
}

func NewPresenceReporter(log *slog.Logger, registry contract.IRegistry, interval time.Duration) *PresenceReporter {
	return &PresenceReporter{log: log, registry: registry, interval: interval}
}

func (w *PresenceReporter) Run(ctx context.Context) error {
	w.log.Info("Starting presence reporter", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.report(p)
		}
	}
}

func (w *PresenceReporter) report(p *process.Process) {
	attrs := []any{
		"sessions", w.registry.SessionCount(),
		"joined_sessions", w.registry.ReachableSessionCount(),
		"connected_users", w.registry.ConnectedUserCount(),
	}
	rss, cpu, err := selfStats(p)
	if err != nil {
		w.log.Warn("Failed to collect self stats", "error", err)
	} else {
		attrs = append(attrs, "rss_mb", rss/1024/1024, "cpu_percent", cpu)
	}
	w.log.Info("Presence report", attrs...)
}

// selfStats returns the resident memory in bytes and the CPU percentage
// of the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
