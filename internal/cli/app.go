// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tripbook/internal/application/port"
	"github.com/bnema/tripbook/internal/application/usecase"
	"github.com/bnema/tripbook/internal/cli/styles"
	"github.com/bnema/tripbook/internal/domain/build"
	"github.com/bnema/tripbook/internal/domain/entity"
	"github.com/bnema/tripbook/internal/domain/repository"
	"github.com/bnema/tripbook/internal/infrastructure/cache"
	"github.com/bnema/tripbook/internal/infrastructure/config"
	"github.com/bnema/tripbook/internal/infrastructure/messaging/rabbitmq"
	"github.com/bnema/tripbook/internal/infrastructure/persistence/postgres"
	"github.com/bnema/tripbook/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tripbook/internal/logging"
	"github.com/bnema/tripbook/internal/ui/component"
)

const brokerConnectTimeout = 5 * time.Second

// Options selects how the App is built.
type Options struct {
	// ConfigFile overrides the XDG config lookup.
	ConfigFile string
	// Verbose keeps info and debug logs. Otherwise the CLI logs warnings
	// and errors only.
	Verbose bool
	// Build names this binary to the trip store and the broker.
	Build build.Info
}

// Settings are the config values read each time an input is bound.
// They follow config file edits while the process runs.
type Settings struct {
	Search  config.SearchConfig
	Suggest config.SuggestConfig
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	db     *sqlite.LazyDB
	pool   *pgxpool.Pool
	broker *rabbitmq.Client

	logFile *logging.LogRotator

	// Use cases
	Recent  *usecase.RecentItemStore
	Catalog *usecase.SearchCatalogUseCase
	Prices  *usecase.RoutePriceUseCase
	Trips   *usecase.RecordTripUseCase

	mu       sync.RWMutex
	settings Settings

	// Context with logger
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, loadErr := loadConfig(opts.ConfigFile)

	logLevel := cfg.Logging.Level
	if !opts.Verbose && logging.ParseLevel(logLevel) < zerolog.WarnLevel {
		logLevel = "warn"
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(logLevel)
	if cfg.Logging.Format == "json" {
		logCfg.Format = "json"
	}
	logFile, logFileErr := openLogFile(cfg.Logging)
	if logFile != nil {
		logCfg.File = logFile
	}
	logger := logging.New(logCfg)
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}
	if logFileErr != nil {
		logger.Warn().Err(logFileErr).Msg("log file disabled")
	}

	dbPath := cfg.Database.Path
	if dbPath == "" {
		var err error
		if dbPath, err = config.GetDatabaseFile(); err != nil {
			if logFile != nil {
				_ = logFile.Close()
			}
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	lazyDB := sqlite.NewLazyDB(dbPath)

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		BuildInfo:     opts.Build,
		db:            lazyDB,
		logFile:       logFile,
		settings:      Settings{Search: cfg.Search, Suggest: cfg.Suggest},
	}

	catalogRepo, tripRepo, err := app.openStores(ctx, cfg.Database)
	if err != nil {
		_ = lazyDB.Close()
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, err
	}

	app.Recent = usecase.NewRecentItemStore(sqlite.NewLazyRecentItemRepository(lazyDB), cfg.Search.RecentCapacity)
	app.Catalog = usecase.NewSearchCatalogUseCase(catalogRepo, cfg.Search.MaxResults)
	app.Prices = usecase.NewRoutePriceUseCase(
		tripRepo,
		cache.NewLRU[entity.RouteKey, usecase.RoutePrice](cfg.Suggest.CacheSize),
	)

	var publisher port.TripEventPublisher
	if cfg.RabbitMQ.Enabled {
		connectCtx, cancel := context.WithTimeout(ctx, brokerConnectTimeout)
		broker, connErr := rabbitmq.Connect(connectCtx, cfg.RabbitMQ, opts.Build.ClientName())
		cancel()
		if connErr != nil {
			logger.Warn().Err(connErr).Msg("rabbitmq unavailable, trip events disabled")
		} else {
			app.broker = broker
			publisher = rabbitmq.NewTripPublisher(broker)
		}
	}
	app.Trips = usecase.NewRecordTripUseCase(tripRepo, app.Prices, app.Recent, publisher)

	app.ctx, app.cancel = context.WithCancel(ctx)
	app.group, app.ctx = errgroup.WithContext(app.ctx)

	return app, nil
}

// openStores builds the catalog and trip repositories for the configured driver.
func (a *App) openStores(ctx context.Context, cfg config.DatabaseConfig) (repository.CatalogRepository, repository.TripRepository, error) {
	switch cfg.Driver {
	case config.DatabaseDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres, a.BuildInfo.ClientName())
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		a.pool = pool
		return postgres.NewCatalogRepository(pool), postgres.NewTripRepository(pool), nil
	default:
		return sqlite.NewLazyCatalogRepository(a.db), sqlite.NewLazyTripRepository(a.db), nil
	}
}

// Settings returns the current search and suggestion settings.
func (a *App) Settings() Settings {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.settings
}

// EligibilityPolicy returns the configured price eligibility policy,
// falling back to sentinel for unknown values.
func (a *App) EligibilityPolicy() component.EligibilityPolicy {
	policy, err := component.ParseEligibilityPolicy(a.Settings().Suggest.Eligibility)
	if err != nil {
		logging.FromContext(a.ctx).Warn().Err(err).Msg("invalid eligibility policy, using sentinel")
		return component.EligibleSentinelOnly
	}
	return policy
}

// WatchConfig applies config file edits to Settings and hands them to
// onChange, which live inputs use to pick up new delays. onChange may be
// nil and runs on the watcher goroutine. Storage and broker settings need
// a restart.
func (a *App) WatchConfig(onChange func(Settings)) {
	if a.ConfigManager == nil {
		return
	}
	log := logging.FromContext(a.ctx)

	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		settings := Settings{Search: cfg.Search, Suggest: cfg.Suggest}
		a.mu.Lock()
		a.settings = settings
		a.mu.Unlock()
		log.Info().
			Int("search_debounce_ms", cfg.Search.DebounceMs).
			Int("suggest_debounce_ms", cfg.Suggest.DebounceMs).
			Msg("config reloaded")
		if onChange != nil {
			onChange(settings)
		}
	})
	if err := a.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch failed")
	}
}

// StartInvalidationConsumer drops memoized route prices when another
// process records a trip. It is a no-op without a broker connection.
func (a *App) StartInvalidationConsumer() {
	if a.broker == nil {
		return
	}
	consumer := rabbitmq.NewInvalidationConsumer(a.broker, a.Prices, a.Config.RabbitMQ.Queue)
	a.group.Go(func() error {
		return consumer.Run(a.ctx)
	})
}

// ProfileSchema reports the migration status of the local profile store,
// which holds recents even when trips live in Postgres.
func (a *App) ProfileSchema(ctx context.Context) (sqlite.SchemaStatus, error) {
	return a.db.Schema(ctx)
}

// HasBroker reports whether trip events are published.
func (a *App) HasBroker() bool {
	return a.broker != nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	if a.group != nil {
		if err := a.group.Wait(); err != nil {
			logging.FromContext(a.ctx).Debug().Err(err).Msg("background worker stopped")
		}
	}
	if a.broker != nil {
		a.broker.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
	return err
}

// openLogFile returns a rotating log file when logging.file is set.
func openLogFile(cfg config.LoggingConfig) (*logging.LogRotator, error) {
	if !cfg.File {
		return nil, nil
	}
	dir, err := config.GetLogDir()
	if err != nil {
		return nil, err
	}
	return logging.NewLogRotator(logging.RotatorOptions{
		Dir:        dir,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	})
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from path, or from standard locations when
// path is empty. Failures fall back to defaults.
func loadConfig(path string) (*config.Manager, *config.Config, error) {
	var (
		mgr *config.Manager
		err error
	)
	if path != "" {
		mgr, err = config.NewManagerForFile(path)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}
