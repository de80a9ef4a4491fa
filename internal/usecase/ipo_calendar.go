package usecase

import (
	"context"
	"fmt"
	"time"

	"IPOCal/internal/domain/models"
	domrepo "IPOCal/internal/domain/repository"
	domsvc "IPOCal/internal/domain/service"
	xlogger "IPOCal/pkg/logger"
)

// IPOCalendar serves the reconciled IPO calendar: cached snapshot when
// fresh, otherwise provider -> normalize -> reconcile with fallback -> cache.
type IPOCalendar struct {
	provider domrepo.IPOProvider
	cache    domrepo.SnapshotCache
	budget   domrepo.CallBudget
	metrics  domrepo.Metrics
	logger   *xlogger.Logger
	fallback func() []models.IPO
	now      func() time.Time
}

// CalendarOption configures IPOCalendar.
type CalendarOption func(*IPOCalendar)

// WithClock overrides the time source used for classification and the
// provider query window.
func WithClock(now func() time.Time) CalendarOption {
	return func(uc *IPOCalendar) { uc.now = now }
}

// WithCallBudget limits provider calls; nil means unlimited.
func WithCallBudget(b domrepo.CallBudget) CalendarOption {
	return func(uc *IPOCalendar) { uc.budget = b }
}

func NewIPOCalendar(
	provider domrepo.IPOProvider,
	cache domrepo.SnapshotCache,
	fallback func() []models.IPO,
	metrics domrepo.Metrics,
	logger *xlogger.Logger,
	opts ...CalendarOption,
) *IPOCalendar {
	uc := &IPOCalendar{
		provider: provider,
		cache:    cache,
		fallback: fallback,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// GetIPOs returns the calendar. Data is never empty; Success is false only
// when an internal fault forced a fallback-only answer.
func (uc *IPOCalendar) GetIPOs(ctx context.Context) models.Result {
	if data, ok := uc.cache.Get(); ok {
		uc.metrics.RecordCacheLookup(true)
		uc.logger.Debug("ipo calendar cache hit", xlogger.Int("count", len(data)))
		return models.Result{Success: true, Data: data}
	}
	uc.metrics.RecordCacheLookup(false)
	return uc.Refresh(ctx)
}

// Refresh rebuilds the calendar regardless of cache state and stores it.
func (uc *IPOCalendar) Refresh(ctx context.Context) (res models.Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = uc.degraded(fmt.Errorf("refresh panic: %v", r))
		}
		uc.metrics.RecordLatency("refresh", time.Since(start).Seconds())
	}()

	data, err := uc.refresh(ctx)
	if err != nil {
		return uc.degraded(err)
	}
	return models.Result{Success: true, Data: data}
}

func (uc *IPOCalendar) refresh(ctx context.Context) ([]models.IPO, error) {
	now := uc.now()
	// the result is shared through the cache, so a caller going away must
	// not cut the provider call short; the client timeout still bounds it
	ctx = context.WithoutCancel(ctx)

	raws := uc.fetchLive(ctx, now)
	live := make([]models.IPO, 0, len(raws))
	for _, raw := range raws {
		live = append(live, domsvc.Normalize(raw, now))
	}

	data := domsvc.Reconcile(live, uc.fallback())
	if err := domsvc.ValidateSet(data); err != nil {
		return nil, fmt.Errorf("reconciled set invalid: %w", err)
	}

	uc.cache.Put(data)
	uc.metrics.RecordDatasetSize(len(data))
	uc.logger.Info("ipo calendar refreshed",
		xlogger.Int("live", len(live)),
		xlogger.Int("total", len(data)),
		xlogger.Bool("fallback_only", len(live) == 0),
	)
	return data, nil
}

// fetchLive calls the provider once. Every failure is logged and reported
// as zero live records.
func (uc *IPOCalendar) fetchLive(ctx context.Context, now time.Time) []map[string]any {
	if uc.budget != nil {
		ok, err := uc.budget.Allow(ctx)
		switch {
		case err != nil:
			uc.logger.Warn("provider budget unavailable, calling anyway", xlogger.Error(err))
		case !ok:
			uc.metrics.RecordProviderCall("throttled")
			uc.logger.Warn("provider call budget exhausted, serving fallback only")
			return nil
		}
	}

	from := now.AddDate(0, -models.LookbackMonths, 0)
	to := now.AddDate(0, models.LookaheadMonths, 0)

	start := time.Now()
	raws, err := uc.provider.FetchCalendar(ctx, from, to)
	uc.metrics.RecordLatency("provider", time.Since(start).Seconds())
	if err != nil {
		uc.metrics.RecordProviderCall("error")
		uc.logger.Warn("ipo provider request failed", xlogger.Error(err))
		return nil
	}
	uc.metrics.RecordProviderCall("ok")
	return raws
}

func (uc *IPOCalendar) degraded(err error) models.Result {
	uc.metrics.RecordError("refresh")
	uc.logger.Error("ipo calendar refresh failed, serving fallback", xlogger.Error(err))
	return models.Result{Success: false, Data: uc.fallback(), Error: err.Error()}
}
