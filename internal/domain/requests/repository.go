package requests

import (
	"context"

	"dog-sitters/internal/domain/catalog"
)

// Repository devuelve ErrNotFound cuando no hay solicitud.
// List respeta el orden de alta.
//
// Update es condicional: solo escribe si el estado guardado sigue siendo
// from; si otro cambio ganó antes devuelve ErrBadState.
type Repository interface {
	Create(ctx context.Context, r catalog.Request) error
	Update(ctx context.Context, r catalog.Request, from catalog.RequestStatus) error
	GetByID(ctx context.Context, id string) (catalog.Request, error)
	List(ctx context.Context) ([]catalog.Request, error)
}
