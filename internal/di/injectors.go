//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"readtrack/internal"
	"readtrack/internal/clients"
	"readtrack/internal/controllers"
	"readtrack/internal/providers"
	"readtrack/internal/storage"
	"readtrack/internal/storage/interfaces"
	"readtrack/internal/structures"
	"readtrack/internal/tracker"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewMemoryStore,
		storage.NewZstdCompressor,
		storage.NewFileManager,
		storage.NewScheduler,

		clients.NewBibleClient,
		clients.NewQuoteClient,
		wire.Bind(new(tracker.ChapterFetcher), new(*clients.BibleClient)),
		wire.Bind(new(tracker.QuoteFetcher), new(*clients.QuoteClient)),

		tracker.NewService,
		wire.Bind(new(tracker.ReadingServiceInterface), new(*tracker.Service)),
		wire.Bind(new(interfaces.DayRoller), new(*tracker.Service)),
		wire.Bind(new(controllers.HistorySizer), new(*tracker.Service)),

		controllers.NewReadingController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
