package app

import (
	"pipeline-studio/internal/catalog"
	"pipeline-studio/internal/common/logging"
	"pipeline-studio/internal/config"
	"pipeline-studio/internal/ratelimit"
	"pipeline-studio/internal/sessions"
	"pipeline-studio/internal/store"
)

// App holds all the application dependencies
type App struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Pipelines *store.PipelineStore
	Queries   *store.QueryStore
	Sessions  *sessions.Manager
	Limiter   *ratelimit.Limiter // nil when rate limiting is disabled
	Logger    logging.Logger
}

// New creates a new application instance with all dependencies
func New(cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logging.GetGlobalLogger().WithFields(logging.String("component", "app")),
	}

	if err := app.initializeCatalog(); err != nil {
		return nil, err
	}
	app.initializeStores()
	app.initializeSessions()
	if err := app.initializeRateLimiter(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *App) initializeCatalog() error {
	if app.Config.CatalogPath == "" {
		app.Catalog = catalog.Default()
		app.Logger.Info("Using built-in catalog")
		return nil
	}

	cat, err := catalog.LoadFile(app.Config.CatalogPath)
	if err != nil {
		app.Logger.Error("Failed to load catalog", err, logging.String("path", app.Config.CatalogPath))
		return err
	}
	app.Catalog = cat
	app.Logger.Info("Catalog loaded",
		logging.String("path", app.Config.CatalogPath),
		logging.Int("sources", len(cat.Sources())),
		logging.Int("outputs", len(cat.Outputs())),
	)
	return nil
}

func (app *App) initializeStores() {
	logger := logging.GetGlobalLogger().WithFields(logging.String("component", "store"))

	pipelineOpts := []store.Option{store.WithLogger(logger)}
	queryOpts := []store.QueryOption{store.WithQueryLogger(logger)}
	if app.Config.SeedFixtures {
		pipelineOpts = append(pipelineOpts, store.WithPipelines(store.FixturePipelines()...))
		queryOpts = append(queryOpts, store.WithQueries(store.FixtureQueries()...))
	}

	app.Pipelines = store.NewPipelineStore(pipelineOpts...)
	app.Queries = store.NewQueryStore(queryOpts...)
	app.Logger.Info("Stores initialized",
		logging.Bool("seeded", app.Config.SeedFixtures),
		logging.Int("pipelines", app.Pipelines.Len()),
	)
}

func (app *App) initializeSessions() {
	app.Sessions = sessions.NewManager(
		app.Config.SessionLimitInt(),
		app.Config.SessionTTLDuration(),
		logging.GetGlobalLogger().WithFields(logging.String("component", "sessions")),
	)
}

func (app *App) initializeRateLimiter() error {
	if !app.Config.RateLimitEnabled {
		app.Logger.Info("Rate limiting disabled")
		return nil
	}

	rlConfig := ratelimit.DefaultConfig()
	rlConfig.RequestsPerSecond = app.Config.RateLimitRPSInt()
	rlConfig.BurstSize = app.Config.RateLimitBurstInt()

	limiter, err := ratelimit.NewLimiter(rlConfig)
	if err != nil {
		return err
	}
	app.Limiter = limiter
	app.Logger.Info("Rate limiting enabled",
		logging.Int("requests_per_second", rlConfig.RequestsPerSecond),
		logging.Int("burst", rlConfig.BurstSize),
	)
	return nil
}
