package repository

import (
	"context"

	"dog-sitters/internal/domain/catalog"
)

type SitterLister interface {
	List(ctx context.Context) ([]catalog.Sitter, error)
}

type RequestLister interface {
	List(ctx context.Context) ([]catalog.Request, error)
}

// Loader arma el catálogo desde los repositorios propios (memory o postgres).
// Las solicitudes que ya no están abiertas no aparecen en el listado.
type Loader struct {
	sitters  SitterLister
	requests RequestLister
}

var _ catalog.Loader = (*Loader)(nil)

func NewLoader(s SitterLister, r RequestLister) *Loader {
	return &Loader{sitters: s, requests: r}
}

func (l *Loader) LoadSitters(ctx context.Context) ([]catalog.Sitter, error) {
	return l.sitters.List(ctx)
}

func (l *Loader) LoadRequests(ctx context.Context) ([]catalog.Request, error) {
	all, err := l.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Request, 0, len(all))
	for _, r := range all {
		if r.Status == catalog.RequestOpen {
			out = append(out, r)
		}
	}
	return out, nil
}
