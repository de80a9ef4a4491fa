package cache

import (
	"slices"
	"sync"
	"time"

	"IPOCal/internal/domain/models"
)

type snapshot struct {
	data      []models.IPO
	createdAt time.Time
}

// SnapshotCache holds one reconciled IPO set and the time it was stored.
// The whole set is replaced on Put; there is no per-record eviction.
type SnapshotCache struct {
	mu  sync.RWMutex
	cur *snapshot
	ttl time.Duration
	now func() time.Time
}

// Option configures SnapshotCache.
type Option func(*SnapshotCache)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *SnapshotCache) { c.now = now }
}

// NewSnapshotCache returns an empty cache whose entries stay fresh for models.CacheTTL.
func NewSnapshotCache(opts ...Option) *SnapshotCache {
	c := &SnapshotCache{ttl: models.CacheTTL, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns a copy of the stored set while it is younger than the TTL.
func (c *SnapshotCache) Get() ([]models.IPO, bool) {
	c.mu.RLock()
	s := c.cur
	c.mu.RUnlock()
	if s == nil {
		return nil, false
	}
	if c.now().Sub(s.createdAt) >= c.ttl {
		return nil, false
	}
	return slices.Clone(s.data), true
}

// Put replaces the stored set and stamps it with the current time.
func (c *SnapshotCache) Put(data []models.IPO) {
	s := &snapshot{data: slices.Clone(data), createdAt: c.now()}
	c.mu.Lock()
	c.cur = s
	c.mu.Unlock()
}
