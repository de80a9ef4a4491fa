package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"IPOCal/internal/usecase"
	"IPOCal/pkg/config"
	xhttp "IPOCal/pkg/http"
	applogger "IPOCal/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	httpServer *xhttp.Server
	warmer     *usecase.CacheWarmer // nil when warmup is disabled
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, l *applogger.Logger, srv *xhttp.Server, warmer *usecase.CacheWarmer) *App {
	return &App{
		cfg:        cfg,
		logger:     l,
		httpServer: srv,
		warmer:     warmer,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	if a.warmer != nil {
		a.warmer.Start()
	}

	<-ctx.Done()
	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.httpServer.ShutdownTimeout())
	defer cancel()

	if a.warmer != nil {
		a.warmer.Stop(shutdownCtx)
	}

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
