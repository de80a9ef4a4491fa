package usecase

import (
	"context"
	"fmt"
	"sync"

	xlogger "IPOCal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// CacheWarmer refreshes the calendar on a cron schedule so that user
// requests usually find a fresh snapshot.
type CacheWarmer struct {
	cron     *cron.Cron
	schedule string
	cal      *IPOCalendar
	logger   *xlogger.Logger

	mu      sync.Mutex
	running bool
}

// NewCacheWarmer validates schedule (standard 5-field cron or @every/@hourly
// descriptors) and registers the refresh job.
func NewCacheWarmer(schedule string, cal *IPOCalendar, logger *xlogger.Logger) (*CacheWarmer, error) {
	w := &CacheWarmer{
		cron:     cron.New(),
		schedule: schedule,
		cal:      cal,
		logger:   logger,
	}
	if _, err := w.cron.AddFunc(schedule, w.warm); err != nil {
		return nil, fmt.Errorf("warmup schedule %q: %w", schedule, err)
	}
	return w, nil
}

// Start runs the schedule in the background; it is a no-op if already started.
func (w *CacheWarmer) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	w.cron.Start()
	w.logger.Info("cache warmer started", xlogger.String("schedule", w.schedule))
}

// Stop halts the schedule and waits for an in-flight refresh or ctx.
func (w *CacheWarmer) Stop(ctx context.Context) {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	select {
	case <-w.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (w *CacheWarmer) warm() {
	// the provider client's own timeout bounds the refresh
	res := w.cal.Refresh(context.Background())
	if !res.Success {
		w.logger.Warn("cache warm failed", xlogger.String("error", res.Error))
		return
	}
	w.logger.Debug("cache warmed", xlogger.Int("count", len(res.Data)))
}
