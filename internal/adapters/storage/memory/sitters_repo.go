package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/sitters"
)

// sitterRepo guarda el orden de alta además del índice por ID:
// el listado tiene que salir en orden de catálogo.
type sitterRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]catalog.Sitter
}

func NewSitterRepo() sitters.Repository {
	return &sitterRepo{
		byID: make(map[string]catalog.Sitter),
	}
}

func (r *sitterRepo) Create(ctx context.Context, s catalog.Sitter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("sitter id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("sitter already exists")
	}
	r.byID[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *sitterRepo) GetByID(ctx context.Context, id string) (catalog.Sitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return catalog.Sitter{}, sitters.ErrNotFound
	}
	return s, nil
}

func (r *sitterRepo) GetByOwner(ctx context.Context, ownerUserID string) (catalog.Sitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if s := r.byID[id]; s.OwnerUserID == ownerUserID {
			return s, nil
		}
	}
	return catalog.Sitter{}, sitters.ErrNotFound
}

func (r *sitterRepo) List(ctx context.Context) ([]catalog.Sitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Sitter, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
