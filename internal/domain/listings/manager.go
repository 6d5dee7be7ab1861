package listings

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	ErrStateNotFound = errors.New("query state not found")
	ErrInvalidInput  = errors.New("invalid input")
)

// StateRepository guarda el último QueryState de cada usuario.
type StateRepository interface {
	Get(ctx context.Context, userID string) (QueryState, error)
	Save(ctx context.Context, userID string, q QueryState) error
	Delete(ctx context.Context, userID string) error
}

// Manager administra el QueryState guardado por usuario.
// Cada operación produce un valor nuevo; nunca se comparte estado mutable.
type Manager struct {
	repo StateRepository
	mu   sync.Mutex // serializa read-modify-write
}

func NewManager(repo StateRepository) *Manager {
	return &Manager{repo: repo}
}

// Get devuelve el estado guardado o el default si no hay ninguno.
func (m *Manager) Get(ctx context.Context, userID string) (QueryState, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return QueryState{}, ErrInvalidInput
	}
	q, err := m.repo.Get(ctx, userID)
	if errors.Is(err, ErrStateNotFound) {
		return DefaultQueryState(), nil
	}
	if err != nil {
		return QueryState{}, err
	}
	return q, nil
}

// SetSearch reemplaza solo el texto de búsqueda.
func (m *Manager) SetSearch(ctx context.Context, userID, search string) (QueryState, error) {
	return m.update(ctx, userID, func(q QueryState) QueryState {
		return q.WithSearch(search)
	})
}

// ApplyFilters reemplaza el objeto de filtros completo.
func (m *Manager) ApplyFilters(ctx context.Context, userID string, f Filters) (QueryState, error) {
	return m.update(ctx, userID, func(q QueryState) QueryState {
		return q.WithFilters(f)
	})
}

// Reset borra el estado guardado y devuelve el default.
func (m *Manager) Reset(ctx context.Context, userID string) (QueryState, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return QueryState{}, ErrInvalidInput
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Delete(ctx, userID); err != nil && !errors.Is(err, ErrStateNotFound) {
		return QueryState{}, err
	}
	return DefaultQueryState(), nil
}

func (m *Manager) update(ctx context.Context, userID string, fn func(QueryState) QueryState) (QueryState, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return QueryState{}, ErrInvalidInput
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.Get(ctx, userID)
	if err != nil {
		return QueryState{}, err
	}

	next := fn(current)
	if err := m.repo.Save(ctx, userID, next); err != nil {
		return QueryState{}, err
	}
	return next, nil
}
