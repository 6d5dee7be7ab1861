package router

import (
	"context"
	"fmt"
	"net/http"

	catfixtures "dog-sitters/internal/adapters/catalog/fixtures"
	catremote "dog-sitters/internal/adapters/catalog/remote"
	catrepo "dog-sitters/internal/adapters/catalog/repository"
	mem "dog-sitters/internal/adapters/storage/memory"
	pg "dog-sitters/internal/adapters/storage/postgres"
	rds "dog-sitters/internal/adapters/storage/redis"
	"dog-sitters/internal/config"
	_ "dog-sitters/internal/docs"
	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/clients"
	"dog-sitters/internal/domain/listings"
	"dog-sitters/internal/domain/requests"
	"dog-sitters/internal/domain/sitters"
	"dog-sitters/internal/domain/wizard"
	"dog-sitters/internal/middleware"
	"dog-sitters/internal/platform/logger"
	"dog-sitters/internal/platform/metrics"
	"dog-sitters/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	goredis "github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config       *config.Config    // nil = defaults
	Log          logger.Logger     // nil = nop
	Metrics      *metrics.Manager  // nil = registry propio
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sqlx.DB

	// Opcional: estados de búsqueda en Redis. Si no, in-memory.
	Redis *goredis.Client

	// Opcional: publisher de cambios (kafka). Si no, refresca en el proceso.
	Notifier catalog.Notifier
}

// App es el router armado más el catálogo, que main refresca.
type App struct {
	Handler http.Handler
	Catalog *catalog.Store
}

func New(ctx context.Context, opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.NewManager()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.AccessLog(log, m))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, log, m))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		sitterRepo  sitters.Repository
		clientRepo  clients.Repository
		requestRepo requests.Repository
		stateRepo   listings.StateRepository
	)

	if opts.DB != nil {
		sitterRepo = pg.NewSittersRepo(opts.DB)
		clientRepo = pg.NewClientsRepo(opts.DB)
		requestRepo = pg.NewRequestsRepo(opts.DB)
	} else {
		sitterRepo = mem.NewSitterRepo()
		clientRepo = mem.NewClientRepo()
		requestRepo = mem.NewRequestRepo()
	}

	if opts.Redis != nil {
		stateRepo = rds.NewQueryStateRepo(opts.Redis, cfg.QueryStateTTL)
	} else {
		stateRepo = mem.NewQueryStateRepo()
	}

	if cfg.SeedFixtures {
		if err := seed(ctx, sitterRepo, clientRepo, requestRepo); err != nil {
			return nil, err
		}
	}

	loader, err := catalogLoader(cfg, sitterRepo, requestRepo)
	if err != nil {
		return nil, err
	}
	store := catalog.NewStore(loader, log, catalog.WithRefreshHook(func(s catalog.Snapshot) {
		m.ObserveCatalog(len(s.Sitters), len(s.Requests), s.LoadedAt)
	}))

	var notifier catalog.Notifier = catalog.NewLocalNotifier(store)
	if opts.Notifier != nil {
		notifier = opts.Notifier
	}
	notifier = countingNotifier{next: notifier, m: m}

	// Services por módulo
	clientsSvc := clients.NewService(clientRepo)
	sittersSvc := sitters.NewService(sitterRepo, notifier, log)
	requestsSvc := requests.NewService(requestRepo, clientsSvc, sittersSvc, notifier, log)
	manager := listings.NewManager(stateRepo)

	// Rutas por módulo
	listings.RegisterRoutes(r, listings.Deps{
		Catalog: store,
		Manager: manager,
		Log:     log,
		Metrics: m,
	})
	wizard.RegisterRoutes(r)
	clients.RegisterRoutes(r, clientsSvc)
	sitters.RegisterRoutes(r, sittersSvc)
	requests.RegisterRoutes(r, requestsSvc)

	store.Refresh(ctx)

	return &App{Handler: r, Catalog: store}, nil
}

func catalogLoader(cfg *config.Config, s catrepo.SitterLister, rq catrepo.RequestLister) (catalog.Loader, error) {
	switch cfg.CatalogSource {
	case config.SourceFixtures:
		return catfixtures.Loader{}, nil
	case config.SourceRemote:
		l, err := catremote.NewLoader(catremote.Config{
			BaseURL: cfg.RemoteBaseURL,
			APIKey:  cfg.RemoteAPIKey,
			Timeout: cfg.ReadTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("remote catalog: %w", err)
		}
		return l, nil
	default:
		return catrepo.NewLoader(s, rq), nil
	}
}

// seed carga la demo solo si el repo de sitters está vacío, así un
// Postgres ya poblado no choca con IDs repetidos al reiniciar.
func seed(ctx context.Context, s sitters.Repository, c clients.Repository, rq requests.Repository) error {
	existing, err := s.List(ctx)
	if err != nil {
		return fmt.Errorf("checking seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	return catfixtures.Seed(ctx, s, c, rq)
}

type countingNotifier struct {
	next catalog.Notifier
	m    *metrics.Manager
}

func (n countingNotifier) Publish(ctx context.Context, c catalog.Change) error {
	n.m.CatalogChange(string(c.Kind), "published")
	return n.next.Publish(ctx, c)
}
