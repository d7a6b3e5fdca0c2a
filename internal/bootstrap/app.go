package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/MinerTapper_Go/internal/catalog"
	"github.com/osse101/MinerTapper_Go/internal/clock"
	"github.com/osse101/MinerTapper_Go/internal/config"
	"github.com/osse101/MinerTapper_Go/internal/economy"
	"github.com/osse101/MinerTapper_Go/internal/event"
	"github.com/osse101/MinerTapper_Go/internal/persistence"
	"github.com/osse101/MinerTapper_Go/internal/referral"
	"github.com/osse101/MinerTapper_Go/internal/repository"
	"github.com/osse101/MinerTapper_Go/internal/scheduler"
	"github.com/osse101/MinerTapper_Go/internal/server"
	"github.com/osse101/MinerTapper_Go/internal/sse"
	"github.com/osse101/MinerTapper_Go/internal/worker"
)

// App is the fully wired service
type App struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Store     repository.StateStore
	Persister *persistence.Adapter
	Bus       event.Bus
	Economy   economy.Service
	Hub       *sse.Hub
	Referral  referral.Service
	Poller    *worker.ReferralPoller // nil when REFERRAL_BASE_URL is unset
	Server    *server.Server

	clock       clock.Clock
	persistPool *worker.Pool
	tickPool    *worker.Pool
	scheduler   *scheduler.Scheduler
}

// Option customises Build
type Option func(*App)

// WithClock replaces the wall clock, mainly for tests
func WithClock(clk clock.Clock) Option {
	return func(a *App) { a.clock = clk }
}

// WithStore uses store instead of opening the one cfg names
func WithStore(store repository.StateStore) Option {
	return func(a *App) { a.Store = store }
}

// Build wires every component but starts nothing
func Build(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	app := &App{Config: cfg, clock: clock.NewRealClock()}
	for _, opt := range opts {
		opt(app)
	}

	cat, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	app.Catalog = cat

	if app.Store == nil {
		store, err := OpenStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.Store = store
	}

	app.persistPool = worker.NewPool(PersistWorkers, cfg.PersistQueueSize)
	app.Persister = persistence.NewAdapter(app.Store, app.persistPool, cfg.StoreDriver)

	st, err := app.Persister.Load(ctx, cat, app.clock.Now())
	if err != nil {
		_ = app.Store.Close()
		return nil, fmt.Errorf(ErrMsgLoadStateFailed, err)
	}
	slog.Info(LogMsgStateRestored,
		"balance", st.Balance,
		"mining_power", st.MiningPower,
		"total_mined", st.TotalMined)

	app.Bus = event.NewMemoryBus()
	app.Hub = sse.NewHub()
	app.buildReferral()

	deps := EventHandlerDependencies{
		EventBus: app.Bus,
		Catalog:  cat,
		Realtime: app.Hub,
		Panels:   app.Referral,
	}
	if err := RegisterEventHandlers(deps); err != nil {
		_ = app.Store.Close()
		return nil, err
	}

	app.Economy = economy.NewService(cat, st, app.clock, app.Persister, app.Bus)

	app.tickPool = worker.NewPool(TickWorkers, TickQueueSize)
	app.scheduler = scheduler.New(app.tickPool)

	app.Server = server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Services{
		Economy:  app.Economy,
		Referral: app.Referral,
		Store:    app.Persister,
		Hub:      app.Hub,
	})

	return app, nil
}

func (a *App) buildReferral() {
	cfg := a.Config

	var identity referral.IdentityProvider = referral.StaticIdentity{UserID: cfg.PlayerID}
	if cfg.TelegramInitData != "" {
		identity = referral.TelegramInitData(cfg.TelegramInitData)
	}

	// Without a base URL every fetch fails, so the panel keeps its link and
	// shows the unavailable placeholders.
	a.Referral = referral.NewService(identity, referral.NewClient(cfg.ReferralBaseURL), cfg.ReferralBotUsername, cfg.ReferralCacheTTL)
	if cfg.ReferralBaseURL == "" {
		slog.Info(LogMsgReferralPollerDisabled)
		return
	}

	a.Poller = worker.NewReferralPoller(a.Referral, a.Bus, cfg.ReferralPollInterval)
	slog.Info(LogMsgReferralEnabled,
		"base_url", cfg.ReferralBaseURL,
		"poll_interval", cfg.ReferralPollInterval)
}

// Start launches the background machinery: worker pools, the realtime hub,
// the accrual schedule and the referral poller. The HTTP server is started
// separately with Server.Start.
func (a *App) Start() {
	a.persistPool.Start()
	a.tickPool.Start()
	a.Hub.Start()
	a.scheduler.Schedule(a.Catalog.TickInterval(), economy.TickJob{Service: a.Economy})
	if a.Poller != nil {
		a.Poller.Start()
	}
}

// Shutdown stops everything Start and Server.Start launched and writes the
// final state.
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{
		Server:         a.Server,
		ReferralPoller: a.Poller,
		Scheduler:      a.scheduler,
		TickPool:       a.tickPool,
		PersistPool:    a.persistPool,
		EconomyService: a.Economy,
		Hub:            a.Hub,
		Store:          a.Store,
	})
}
