package repository

import (
	"context"
	"time"

	"IPOCal/internal/domain/models"
)

// IPOProvider fetches raw calendar entries from the upstream data source.
// Entries are untyped maps; only the normalizer interprets them.
type IPOProvider interface {
	FetchCalendar(ctx context.Context, from, to time.Time) ([]map[string]any, error)
}

// SnapshotCache holds the single most recent reconciled set.
type SnapshotCache interface {
	Get() ([]models.IPO, bool)
	Put(data []models.IPO)
}

// CallBudget bounds how often the provider may be called.
type CallBudget interface {
	Allow(ctx context.Context) (bool, error)
}

type Metrics interface {
	RecordProviderCall(outcome string)
	RecordCacheLookup(hit bool)
	RecordDatasetSize(n int)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
