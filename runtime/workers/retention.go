package workers

import (
	"context"
	"log/slog"
	"time"
)

type cleaner interface {
	CleanupOld(olderThan time.Duration) (int, error)
}

// RetentionWorker deletes read notifications older than period, once at
// start and then every interval.
type RetentionWorker struct {
	log      *slog.Logger
	cleaner  cleaner
	period   time.Duration
	interval time.Duration
}

func NewRetentionWorker(log *slog.Logger, cleaner cleaner, period, interval time.Duration) *RetentionWorker {
	return &RetentionWorker{log: log, cleaner: cleaner, period: period, interval: interval}
}

func (w *RetentionWorker) Run(ctx context.Context) error {
	w.log.Info("Starting retention worker", "period", w.period, "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.cleanup()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *RetentionWorker) cleanup() {
	deleted, err := w.cleaner.CleanupOld(w.period)
	if err != nil {
		w.log.Error("Retention cleanup failed", "error", err)
		return
	}
	if deleted > 0 {
		w.log.Info("Retention cleanup done", "deleted", deleted)
	}
}
