package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	providerCalls *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	datasetSize   prometheus.Gauge
	latency       *prometheus.HistogramVec
}

// New creates a Prometheus metrics recorder registered on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		providerCalls: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipocal_provider_calls_total",
				Help: "Upstream IPO calendar calls by outcome",
			},
			[]string{"outcome"},
		),
		cacheLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipocal_cache_lookups_total",
				Help: "Snapshot cache lookups by result",
			},
			[]string{"result"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipocal_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		datasetSize: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "ipocal_dataset_records",
				Help: "Number of records in the last reconciled set",
			},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ipocal_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordProviderCall counts a provider call; outcome is ok, error or throttled.
func (r *Recorder) RecordProviderCall(outcome string) {
	r.providerCalls.WithLabelValues(outcome).Inc()
}

func (r *Recorder) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

func (r *Recorder) RecordDatasetSize(n int) {
	r.datasetSize.Set(float64(n))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
