//go:build wireinject
// +build wireinject

package di

import (
	"IPOCal/pkg/config"
	"IPOCal/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Repositories
		ProvideIPOProvider,
		ProvideSnapshotCache,
		ProvideCallBudget,

		// Use cases
		ProvideIPOCalendar,
		ProvideCacheWarmer,

		// Transport
		ProvideHTTPHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return nil, nil, nil
}
