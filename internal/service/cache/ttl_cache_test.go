package cache

import (
	"testing"
	"time"

	"IPOCal/internal/domain/models"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestSnapshotCacheEmpty(t *testing.T) {
	c := NewSnapshotCache()
	if _, ok := c.Get(); ok {
		t.Fatalf("new cache should be empty")
	}
}

func TestSnapshotCacheFreshness(t *testing.T) {
	clk := &fakeClock{t: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
	c := NewSnapshotCache(WithClock(clk.Now))
	c.Put([]models.IPO{{Ticker: "AAA"}})

	clk.Advance(models.CacheTTL - time.Second)
	data, ok := c.Get()
	if !ok || len(data) != 1 || data[0].Ticker != "AAA" {
		t.Fatalf("expected fresh hit, got %v %v", data, ok)
	}

	clk.Advance(time.Second)
	if _, ok := c.Get(); ok {
		t.Fatalf("entry at exactly TTL must be stale")
	}
}

func TestSnapshotCachePutReplaces(t *testing.T) {
	clk := &fakeClock{t: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
	c := NewSnapshotCache(WithClock(clk.Now))
	c.Put([]models.IPO{{Ticker: "OLD"}})
	clk.Advance(10 * time.Minute)

	in := []models.IPO{{Ticker: "NEW"}}
	c.Put(in)
	in[0].Ticker = "MUTATED"

	data, ok := c.Get()
	if !ok || data[0].Ticker != "NEW" {
		t.Fatalf("expected replaced entry, got %v %v", data, ok)
	}
}

func TestSnapshotCacheGetReturnsCopy(t *testing.T) {
	c := NewSnapshotCache()
	c.Put([]models.IPO{{Ticker: "AAA"}, {Ticker: "BBB"}})

	got, _ := c.Get()
	got[0].Ticker = "CHANGED"

	again, ok := c.Get()
	if !ok || again[0].Ticker != "AAA" {
		t.Fatalf("caller edits leaked into the cache: %v", again)
	}
}
