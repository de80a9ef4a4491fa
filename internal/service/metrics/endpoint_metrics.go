package metrics

import (
    "sync"

    "github.com/prometheus/client_golang/prometheus"
)

var (
    once sync.Once

    EndpointLatency = prometheus.NewHistogramVec(
        prometheus.HistogramOpts{
            Namespace: "ipocal",
            Subsystem: "api",
            Name:      "latency_seconds",
            Help:      "Latency of calendar endpoints",
            Buckets:   prometheus.DefBuckets,
        },
        []string{"endpoint"},
    )

    // EndpointDegraded counts responses served with success=false.
    EndpointDegraded = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "ipocal",
            Subsystem: "api",
            Name:      "degraded_total",
            Help:      "Responses served from fallback after an internal fault",
        },
        []string{"endpoint"},
    )
)

func Register() {
    once.Do(func() {
        prometheus.MustRegister(EndpointLatency, EndpointDegraded)
    })
}
