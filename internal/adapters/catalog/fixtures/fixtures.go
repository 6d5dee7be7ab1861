package fixtures

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"dog-sitters/internal/domain/catalog"
)

//go:embed data/*.json
var data embed.FS

// Loader sirve el catálogo de demo embebido. Cada llamada decodifica
// de nuevo, así nadie comparte slices con otro snapshot.
type Loader struct{}

var _ catalog.Loader = Loader{}

func (Loader) LoadSitters(ctx context.Context) ([]catalog.Sitter, error) {
	var out []catalog.Sitter
	if err := decode("data/sitters.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (Loader) LoadRequests(ctx context.Context) ([]catalog.Request, error) {
	var out []catalog.Request
	if err := decode("data/requests.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (Loader) LoadClients(ctx context.Context) ([]catalog.Client, error) {
	var out []catalog.Client
	if err := decode("data/clients.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decode(name string, v any) error {
	b, err := data.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decoding fixture %s: %w", name, err)
	}
	return nil
}

// Writers que Seed necesita de cada repositorio.
type (
	SitterWriter  interface{ Create(context.Context, catalog.Sitter) error }
	ClientWriter  interface{ Create(context.Context, catalog.Client) error }
	RequestWriter interface{ Create(context.Context, catalog.Request) error }
)

// Seed carga los datos de demo en los repositorios (clientes antes que
// solicitudes por la FK en postgres).
func Seed(ctx context.Context, sw SitterWriter, cw ClientWriter, rw RequestWriter) error {
	l := Loader{}

	sitters, err := l.LoadSitters(ctx)
	if err != nil {
		return err
	}
	for _, s := range sitters {
		if err := sw.Create(ctx, s); err != nil {
			return fmt.Errorf("seeding sitter %s: %w", s.ID, err)
		}
	}

	clients, err := l.LoadClients(ctx)
	if err != nil {
		return err
	}
	for _, c := range clients {
		if err := cw.Create(ctx, c); err != nil {
			return fmt.Errorf("seeding client %s: %w", c.ID, err)
		}
	}

	requests, err := l.LoadRequests(ctx)
	if err != nil {
		return err
	}
	for _, r := range requests {
		if err := rw.Create(ctx, r); err != nil {
			return fmt.Errorf("seeding request %s: %w", r.ID, err)
		}
	}
	return nil
}
