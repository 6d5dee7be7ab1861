package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/platform/httpclient"
)

var ErrNotConfigured = errors.New("remote catalog not configured")

// Config del store remoto (REST estilo PostgREST: /rest/v1/<tabla>).
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Loader trae el catálogo desde el backend hospedado.
type Loader struct {
	http *httpclient.Client
}

var _ catalog.Loader = (*Loader)(nil)

func NewLoader(cfg Config) (*Loader, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	c, err := httpclient.New(cfg.BaseURL, cfg.APIKey, httpclient.WithTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}
	return &Loader{http: c}, nil
}

// NewLoaderWithClient permite inyectar el cliente HTTP (tests).
func NewLoaderWithClient(c *httpclient.Client) *Loader {
	return &Loader{http: c}
}

func (l *Loader) LoadSitters(ctx context.Context) ([]catalog.Sitter, error) {
	var out []catalog.Sitter
	if err := l.get(ctx, "/rest/v1/sitters?select=*&order=created_at.asc", &out); err != nil {
		return nil, fmt.Errorf("loading sitters: %w", err)
	}
	return out, nil
}

// LoadRequests trae solo las abiertas: el listado de solicitudes es
// para sitters buscando trabajo.
func (l *Loader) LoadRequests(ctx context.Context) ([]catalog.Request, error) {
	var out []catalog.Request
	if err := l.get(ctx, "/rest/v1/requests?select=*&status=eq.open&order=created_at.asc", &out); err != nil {
		return nil, fmt.Errorf("loading requests: %w", err)
	}
	return out, nil
}

func (l *Loader) get(ctx context.Context, path string, out any) error {
	return l.http.Get(ctx, path, "", out)
}
