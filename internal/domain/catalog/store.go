package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"dog-sitters/internal/platform/logger"
)

// Loader trae las colecciones del catálogo desde alguna fuente
// (fixtures, repositorios o el store remoto).
type Loader interface {
	LoadSitters(ctx context.Context) ([]Sitter, error)
	LoadRequests(ctx context.Context) ([]Request, error)
}

// Snapshot es inmutable: nadie modifica los slices después de publicarlo.
type Snapshot struct {
	Sitters  []Sitter
	Requests []Request
	LoadedAt time.Time
}

// Store publica el snapshot vigente. Los lectores nunca esperan:
// Refresh arma el snapshot nuevo aparte y lo reemplaza de una sola vez.
type Store struct {
	loader Loader
	log    logger.Logger
	now    func() time.Time

	current atomic.Pointer[Snapshot]
	mu      sync.Mutex // serializa Refresh

	onRefresh func(Snapshot)
}

type StoreOption func(*Store)

// WithRefreshHook se llama después de cada Refresh (métricas).
func WithRefreshHook(fn func(Snapshot)) StoreOption {
	return func(s *Store) { s.onRefresh = fn }
}

func NewStore(loader Loader, log logger.Logger, opts ...StoreOption) *Store {
	s := &Store{
		loader: loader,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(&Snapshot{
		Sitters:  []Sitter{},
		Requests: []Request{},
	})
	return s
}

// Current devuelve el snapshot vigente (nunca nil).
func (s *Store) Current() Snapshot {
	return *s.current.Load()
}

// Refresh recarga ambas colecciones. Si una fuente falla, esa colección
// queda vacía; el listado sigue funcionando con catálogo vacío.
func (s *Store) Refresh(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sitters, err := s.loader.LoadSitters(ctx)
	if err != nil {
		s.log.Warn("catalog: load sitters failed", map[string]any{"error": err.Error()})
		sitters = nil
	}
	requests, err := s.loader.LoadRequests(ctx)
	if err != nil {
		s.log.Warn("catalog: load requests failed", map[string]any{"error": err.Error()})
		requests = nil
	}
	if sitters == nil {
		sitters = []Sitter{}
	}
	if requests == nil {
		requests = []Request{}
	}

	snap := &Snapshot{
		Sitters:  sitters,
		Requests: requests,
		LoadedAt: s.now(),
	}
	s.current.Store(snap)

	s.log.Debug("catalog: refreshed", map[string]any{
		"sitters":  len(sitters),
		"requests": len(requests),
	})
	if s.onRefresh != nil {
		s.onRefresh(*snap)
	}
	return *snap
}
