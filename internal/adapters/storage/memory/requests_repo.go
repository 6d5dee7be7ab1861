package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/requests"
)

type requestRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]catalog.Request
}

func NewRequestRepo() requests.Repository {
	return &requestRepo{
		byID: make(map[string]catalog.Request),
	}
}

func (r *requestRepo) Create(ctx context.Context, req catalog.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(req.ID) == "" {
		return errors.New("request id required")
	}
	if _, exists := r.byID[req.ID]; exists {
		return errors.New("request already exists")
	}
	r.byID[req.ID] = req
	r.order = append(r.order, req.ID)
	return nil
}

func (r *requestRepo) Update(ctx context.Context, req catalog.Request, from catalog.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, exists := r.byID[req.ID]
	if !exists {
		return requests.ErrNotFound
	}
	if cur.Status != from {
		return requests.ErrBadState
	}
	r.byID[req.ID] = req
	return nil
}

func (r *requestRepo) GetByID(ctx context.Context, id string) (catalog.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.byID[id]
	if !ok {
		return catalog.Request{}, requests.ErrNotFound
	}
	return req, nil
}

func (r *requestRepo) List(ctx context.Context) ([]catalog.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Request, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
