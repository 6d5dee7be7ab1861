package clients

import (
	"context"

	"dog-sitters/internal/domain/catalog"
)

// Repository devuelve ErrNotFound cuando no hay cliente.
type Repository interface {
	Create(ctx context.Context, c catalog.Client) error
	Update(ctx context.Context, c catalog.Client) error
	GetByID(ctx context.Context, id string) (catalog.Client, error)
	GetByOwner(ctx context.Context, ownerUserID string) (catalog.Client, error)
	List(ctx context.Context) ([]catalog.Client, error)
}
