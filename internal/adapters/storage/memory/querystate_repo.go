package memory

import (
	"context"
	"sync"

	"dog-sitters/internal/domain/listings"
)

// queryStateRepo guarda el QueryState por usuario. QueryState es un
// valor y los With* copian los slices, así que no hace falta clonar acá.
type queryStateRepo struct {
	mu     sync.RWMutex
	byUser map[string]listings.QueryState
}

func NewQueryStateRepo() listings.StateRepository {
	return &queryStateRepo{
		byUser: make(map[string]listings.QueryState),
	}
}

func (r *queryStateRepo) Get(ctx context.Context, userID string) (listings.QueryState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.byUser[userID]
	if !ok {
		return listings.QueryState{}, listings.ErrStateNotFound
	}
	return q, nil
}

func (r *queryStateRepo) Save(ctx context.Context, userID string, q listings.QueryState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[userID] = q
	return nil
}

func (r *queryStateRepo) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUser[userID]; !ok {
		return listings.ErrStateNotFound
	}
	delete(r.byUser, userID)
	return nil
}
