//go:build wireinject
// +build wireinject

package di

import (
	"callguard/internal"
	"callguard/internal/bridge"
	"callguard/internal/controllers"
	"callguard/internal/entitlement"
	"callguard/internal/identity"
	"callguard/internal/journal"
	"callguard/internal/notification"
	"callguard/internal/pipeline"
	"callguard/internal/presenter"
	"callguard/internal/providers"
	"callguard/internal/reputation"
	"callguard/internal/screening"
	"callguard/internal/services"
	"callguard/internal/structures"
	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewHTTPClientProvider,
		providers.NewFailureReporter,

		entitlement.NewGate,
		reputation.NewClient,
		identity.NewStore,
		pipeline.NewPipeline,

		bridge.NewLogSurface,
		bridge.NewHostBridge,
		bridge.NewLogNotifier,
		wire.Bind(new(presenter.Surface), new(*bridge.LogSurface)),
		wire.Bind(new(presenter.HostApp), new(*bridge.HostBridge)),
		wire.Bind(new(controllers.HandoffSource), new(*bridge.HostBridge)),
		presenter.RealClock,
		presenter.NewPresenter,
		notification.NewNotifier,

		services.NewJournalService,
		journal.NewZstdCompressor,
		journal.NewFileManager,
		journal.NewScheduler,

		screening.NewScreener,

		controllers.NewCallController,
		controllers.NewOverlayController,
		controllers.NewHandoffController,
		controllers.NewStatsController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
