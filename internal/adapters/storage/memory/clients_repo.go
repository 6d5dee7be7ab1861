package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/clients"
)

type clientRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]catalog.Client
}

func NewClientRepo() clients.Repository {
	return &clientRepo{
		byID: make(map[string]catalog.Client),
	}
}

func (r *clientRepo) Create(ctx context.Context, c catalog.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("client id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("client already exists")
	}
	r.byID[c.ID] = cloneClient(c)
	r.order = append(r.order, c.ID)
	return nil
}

func (r *clientRepo) Update(ctx context.Context, c catalog.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return clients.ErrNotFound
	}
	r.byID[c.ID] = cloneClient(c)
	return nil
}

func (r *clientRepo) GetByID(ctx context.Context, id string) (catalog.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return catalog.Client{}, clients.ErrNotFound
	}
	return cloneClient(c), nil
}

func (r *clientRepo) GetByOwner(ctx context.Context, ownerUserID string) (catalog.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if c := r.byID[id]; c.OwnerUserID == ownerUserID {
			return cloneClient(c), nil
		}
	}
	return catalog.Client{}, clients.ErrNotFound
}

func (r *clientRepo) List(ctx context.Context) ([]catalog.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Client, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneClient(r.byID[id]))
	}
	return out, nil
}

// cloneClient evita que AddDog sobre una copia toque el slice guardado.
func cloneClient(c catalog.Client) catalog.Client {
	c.Dogs = append([]catalog.Dog{}, c.Dogs...)
	return c
}
