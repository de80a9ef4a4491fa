package di

import (
	"context"
	"fmt"
	"time"

	"IPOCal/internal/domain/repository"
	"IPOCal/internal/handler/api"
	internalrepo "IPOCal/internal/repository"
	"IPOCal/internal/service/cache"
	"IPOCal/internal/service/fmp"
	"IPOCal/internal/service/ratelimit"
	"IPOCal/internal/usecase"
	"IPOCal/pkg/config"
	xhttp "IPOCal/pkg/http"
	xlogger "IPOCal/pkg/logger"
	"IPOCal/pkg/metrics"
	"IPOCal/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	l, err := xlogger.New(&xlogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(xlogger.String("env", cfg.Environment)), nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New(prometheus.DefaultRegisterer)
}

// ProvideIPOProvider creates the FMP calendar client.
func ProvideIPOProvider(cfg *config.Config) repository.IPOProvider {
	return fmp.New(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Provider.UserAgent, cfg.Provider.Timeout)
}

func ProvideSnapshotCache() repository.SnapshotCache {
	return cache.NewSnapshotCache()
}

// ProvideCallBudget returns the provider call budget: Redis-backed when
// redis is enabled, in-process otherwise, nil when the limit is 0.
func ProvideCallBudget(cfg *config.Config, l *xlogger.Logger) (repository.CallBudget, func(), error) {
	perMinute := cfg.RateLimit.ProviderCallsPerMinute
	if perMinute == 0 {
		return nil, func() {}, nil
	}
	if !cfg.Redis.Enabled {
		return ratelimit.NewBudget(ratelimit.New(), perMinute), func() {}, nil
	}

	rb := ratelimit.NewRedisBudget(ratelimit.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   cfg.Redis.Prefix,
	}, perMinute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rb.Ping(ctx); err != nil {
		// budget fails open, so an unreachable redis only costs the limit
		l.Warn("redis ping failed", xlogger.String("addr", cfg.Redis.Addr), xlogger.Error(err))
	}

	cleanup := func() {
		if err := rb.Close(); err != nil {
			l.Warn("redis close error", xlogger.Error(err))
		}
	}
	return rb, cleanup, nil
}

// ProvideIPOCalendar creates the calendar use case.
func ProvideIPOCalendar(
	provider repository.IPOProvider,
	snapshots repository.SnapshotCache,
	budget repository.CallBudget,
	m repository.Metrics,
	l *xlogger.Logger,
) *usecase.IPOCalendar {
	return usecase.NewIPOCalendar(provider, snapshots, internalrepo.Fallback, m, l,
		usecase.WithCallBudget(budget),
	)
}

// ProvideCacheWarmer returns nil when warmup is disabled.
func ProvideCacheWarmer(cfg *config.Config, cal *usecase.IPOCalendar, l *xlogger.Logger) (*usecase.CacheWarmer, error) {
	if !cfg.Warmup.Enabled {
		return nil, nil
	}
	return usecase.NewCacheWarmer(cfg.Warmup.Schedule, cal, l)
}

func ProvideHTTPHandler(l *xlogger.Logger, cal *usecase.IPOCalendar) xhttp.Handler {
	return api.NewIPOsEchoHandler(l, cal)
}

// ProvideHTTPServer creates the Echo server serving the calendar API.
func ProvideHTTPServer(cfg *config.Config, h xhttp.Handler, l *xlogger.Logger) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(l),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetricsPath(cfg.Metrics.Path))
	}
	return xhttp.NewServer(h, opts...)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *xlogger.Logger,
	srv *xhttp.Server,
	warmer *usecase.CacheWarmer,
) *server.App {
	return server.New(cfg, l, srv, warmer)
}
