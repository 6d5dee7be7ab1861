package sitters

import (
	"context"

	"dog-sitters/internal/domain/catalog"
)

// Repository devuelve ErrNotFound cuando no hay sitter.
// List respeta el orden de alta (es el orden del catálogo).
type Repository interface {
	Create(ctx context.Context, s catalog.Sitter) error
	GetByID(ctx context.Context, id string) (catalog.Sitter, error)
	GetByOwner(ctx context.Context, ownerUserID string) (catalog.Sitter, error)
	List(ctx context.Context) ([]catalog.Sitter, error)
}
