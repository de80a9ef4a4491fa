package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"IPOCal/internal/domain/models"
	"IPOCal/internal/repository"
	"IPOCal/internal/service/cache"
	xlogger "IPOCal/pkg/logger"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type fakeProvider struct {
	calls    atomic.Int32
	raws     []map[string]any
	err      error
	panicMsg string

	mu       sync.Mutex
	lastFrom time.Time
	lastTo   time.Time
}

func (p *fakeProvider) FetchCalendar(ctx context.Context, from, to time.Time) ([]map[string]any, error) {
	p.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.panicMsg != "" {
		panic(p.panicMsg)
	}
	p.mu.Lock()
	p.lastFrom, p.lastTo = from, to
	p.mu.Unlock()
	return p.raws, p.err
}

type fakeBudget struct{ allow bool }

func (b fakeBudget) Allow(context.Context) (bool, error) { return b.allow, nil }

type nopMetrics struct{}

func (nopMetrics) RecordProviderCall(string)     {}
func (nopMetrics) RecordCacheLookup(bool)        {}
func (nopMetrics) RecordDatasetSize(int)         {}
func (nopMetrics) RecordError(string)            {}
func (nopMetrics) RecordLatency(string, float64) {}

func newCalendar(p *fakeProvider, clk *fakeClock, opts ...CalendarOption) (*IPOCalendar, *cache.SnapshotCache) {
	c := cache.NewSnapshotCache(cache.WithClock(clk.Now))
	opts = append([]CalendarOption{WithClock(clk.Now)}, opts...)
	return NewIPOCalendar(p, c, repository.Fallback, nopMetrics{}, xlogger.Nop(), opts...), c
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
}

func TestGetIPOsProviderOutageServesFallback(t *testing.T) {
	p := &fakeProvider{err: errors.New("dial tcp: connection refused")}
	uc, _ := newCalendar(p, newClock())

	res := uc.GetIPOs(context.Background())

	if !res.Success || res.Error != "" {
		t.Fatalf("outage must not fail the request: %+v", res)
	}
	if !reflect.DeepEqual(res.Data, repository.Fallback()) {
		t.Fatalf("expected fallback data, got %d records", len(res.Data))
	}
}

func TestGetIPOsQueriesWindow(t *testing.T) {
	p := &fakeProvider{}
	clk := newClock()
	uc, _ := newCalendar(p, clk)

	uc.GetIPOs(context.Background())

	if want := time.Date(2026, 8, 18, 12, 0, 0, 0, time.UTC); !p.lastFrom.Equal(want) {
		t.Fatalf("from = %v, want %v", p.lastFrom, want)
	}
	if want := time.Date(2027, 4, 18, 12, 0, 0, 0, time.UTC); !p.lastTo.Equal(want) {
		t.Fatalf("to = %v, want %v", p.lastTo, want)
	}
}

func TestGetIPOsLiveRecordIsReclassifiedAndWins(t *testing.T) {
	var raws []map[string]any
	if err := json.Unmarshal([]byte(`[
		{"symbol":"HTFL","company":"HeartFlow","exchange":"NASDAQ","date":"2020-01-01","status":"priced"},
		{"symbol":"NEWCO","company":"New Co","date":"2026-10-25"}
	]`), &raws); err != nil {
		t.Fatal(err)
	}
	p := &fakeProvider{raws: raws}
	uc, _ := newCalendar(p, newClock())

	res := uc.GetIPOs(context.Background())
	if !res.Success {
		t.Fatalf("unexpected failure: %s", res.Error)
	}
	if want := len(repository.Fallback()) + 1; len(res.Data) != want {
		t.Fatalf("len = %d, want %d", len(res.Data), want)
	}

	first := res.Data[0]
	if first.Ticker != "HTFL" || first.ListingDate != "2020-01-01" || first.Status != models.StatusLive {
		t.Fatalf("live HTFL should sort first as live, got %+v", first)
	}
	if first.Description != "" {
		t.Fatalf("live record replaces the fallback one wholesale, got description %q", first.Description)
	}

	last := res.Data[len(res.Data)-1]
	if last.Ticker != "NEWCO" || last.Status != models.StatusUpcoming {
		t.Fatalf("NEWCO should be last and upcoming, got %+v", last)
	}
}

func TestGetIPOsCachesForTTL(t *testing.T) {
	p := &fakeProvider{raws: []map[string]any{{"symbol": "ABC", "date": "2026-11-01"}}}
	clk := newClock()
	uc, _ := newCalendar(p, clk)
	ctx := context.Background()

	first := uc.GetIPOs(ctx)
	clk.Advance(4*time.Minute + 59*time.Second)
	second := uc.GetIPOs(ctx)

	if p.calls.Load() != 1 {
		t.Fatalf("provider calls = %d, want 1", p.calls.Load())
	}
	a, _ := json.Marshal(first.Data)
	b, _ := json.Marshal(second.Data)
	if string(a) != string(b) {
		t.Fatalf("cached response differs")
	}

	clk.Advance(2 * time.Second) // 5m01s after the first call
	uc.GetIPOs(ctx)
	if p.calls.Load() != 2 {
		t.Fatalf("stale cache should trigger a provider call, calls = %d", p.calls.Load())
	}
}

func TestGetIPOsOutageResultIsCached(t *testing.T) {
	p := &fakeProvider{err: errors.New("503")}
	uc, _ := newCalendar(p, newClock())

	uc.GetIPOs(context.Background())
	uc.GetIPOs(context.Background())
	if p.calls.Load() != 1 {
		t.Fatalf("fallback-only set is cached like any other, calls = %d", p.calls.Load())
	}
}

func TestGetIPOsInternalFaultDegrades(t *testing.T) {
	p := &fakeProvider{panicMsg: "nil map write"}
	uc, c := newCalendar(p, newClock())

	res := uc.GetIPOs(context.Background())

	if res.Success {
		t.Fatalf("internal fault must report success=false")
	}
	if res.Error == "" {
		t.Fatalf("internal fault must carry an error message")
	}
	if len(res.Data) < len(repository.Fallback()) {
		t.Fatalf("degraded response must include the fallback set")
	}
	if _, ok := c.Get(); ok {
		t.Fatalf("a failed refresh must not populate the cache")
	}
}

func TestGetIPOsInvalidSetDegrades(t *testing.T) {
	badFallback := func() []models.IPO {
		return []models.IPO{{Ticker: "BAD", Name: "Bad", Exchange: "X", Status: "unknown"}}
	}
	clk := newClock()
	c := cache.NewSnapshotCache(cache.WithClock(clk.Now))
	uc := NewIPOCalendar(&fakeProvider{}, c, badFallback, nopMetrics{}, xlogger.Nop(), WithClock(clk.Now))

	res := uc.GetIPOs(context.Background())
	if res.Success || res.Error == "" || len(res.Data) != 1 {
		t.Fatalf("expected degraded result, got %+v", res)
	}
}

func TestGetIPOsBudgetExhaustedSkipsProvider(t *testing.T) {
	p := &fakeProvider{raws: []map[string]any{{"symbol": "ABC"}}}
	uc, _ := newCalendar(p, newClock(), WithCallBudget(fakeBudget{allow: false}))

	res := uc.GetIPOs(context.Background())
	if p.calls.Load() != 0 {
		t.Fatalf("provider should not be called when budget is exhausted")
	}
	if !res.Success || !reflect.DeepEqual(res.Data, repository.Fallback()) {
		t.Fatalf("expected fallback-only success, got %+v", res)
	}
}

func TestRefreshBypassesCache(t *testing.T) {
	p := &fakeProvider{}
	uc, _ := newCalendar(p, newClock())
	ctx := context.Background()

	uc.GetIPOs(ctx)
	uc.Refresh(ctx)
	uc.GetIPOs(ctx)
	if p.calls.Load() != 2 {
		t.Fatalf("calls = %d, want 2", p.calls.Load())
	}
}

func TestGetIPOsConcurrentCallers(t *testing.T) {
	p := &fakeProvider{raws: []map[string]any{{"symbol": "ABC", "date": "2026-11-01"}}}
	uc, _ := newCalendar(p, newClock())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := uc.GetIPOs(context.Background())
			if !res.Success || len(res.Data) != len(repository.Fallback())+1 {
				t.Errorf("unexpected result: success=%v len=%d", res.Success, len(res.Data))
			}
		}()
	}
	wg.Wait()
}

func TestGetIPOsCancelledCallerDoesNotPoisonCache(t *testing.T) {
	raws := []map[string]any{{"symbol": "NEWCO", "company": "New Co", "date": "2026-10-25"}}
	p := &fakeProvider{raws: raws}
	clk := newClock()
	uc, _ := newCalendar(p, clk)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	first := uc.GetIPOs(ctx)
	if !hasTicker(first.Data, "NEWCO") {
		t.Fatalf("provider call should outlive the cancelled caller")
	}

	clk.Advance(time.Minute)
	second := uc.GetIPOs(context.Background())
	if p.calls.Load() != 1 {
		t.Fatalf("provider calls = %d, want 1", p.calls.Load())
	}
	if !hasTicker(second.Data, "NEWCO") {
		t.Fatalf("cached set lost the live record: %d records", len(second.Data))
	}
}

func hasTicker(ipos []models.IPO, ticker string) bool {
	for _, ipo := range ipos {
		if ipo.Ticker == ticker {
			return true
		}
	}
	return false
}
