package requests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/clients"
	"dog-sitters/internal/domain/sitters"
	"dog-sitters/internal/domain/wizard"
	"dog-sitters/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("request not found")
	ErrForbidden    = errors.New("forbidden")
	ErrBadState     = errors.New("invalid status transition")
)

// ClientLookup y SitterLookup son lo único que se usa de los otros módulos.
type ClientLookup interface {
	GetByOwner(ctx context.Context, ownerUserID string) (catalog.Client, error)
}

type SitterLookup interface {
	GetByOwner(ctx context.Context, ownerUserID string) (catalog.Sitter, error)
}

type Service struct {
	repo     Repository
	clients  ClientLookup
	sitters  SitterLookup
	notifier catalog.Notifier
	log      logger.Logger
	flow     wizard.Flow[wizard.RequestDraft]
	now      func() time.Time
}

func NewService(repo Repository, cl ClientLookup, sl SitterLookup, notifier catalog.Notifier, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		clients:  cl,
		sitters:  sl,
		notifier: notifier,
		log:      log,
		flow:     wizard.RequestFlow(),
		now:      time.Now,
	}
}

// Create publica una solicitud del cliente del usuario.
// Si viene dog_id, el perro se copia del perfil del cliente.
// Sin zona explícita se usa la del cliente.
func (s *Service) Create(ctx context.Context, actorUserID string, d wizard.RequestDraft) (catalog.Request, error) {
	client, err := s.clientOf(ctx, actorUserID)
	if err != nil {
		return catalog.Request{}, err
	}

	var dog catalog.Dog
	if id := strings.TrimSpace(d.DogID); id != "" {
		found, ok := client.Dog(id)
		if !ok {
			return catalog.Request{}, &wizard.ValidationError{
				Step:   "dog",
				Fields: []wizard.FieldError{{Field: "dog_id", Message: "unknown dog"}},
			}
		}
		dog = found
		d.DogName, d.DogBreed, d.DogSize = found.Name, found.Breed, found.Size
	} else {
		dog = catalog.Dog{
			Name:  strings.TrimSpace(d.DogName),
			Breed: strings.TrimSpace(d.DogBreed),
			Size:  d.DogSize,
		}
	}
	if strings.TrimSpace(d.Neighborhood) == "" {
		d.Neighborhood = client.Neighborhood
	}

	if err := s.flow.ValidateAll(d); err != nil {
		return catalog.Request{}, err
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(d.Date))
	if err != nil {
		return catalog.Request{}, fmt.Errorf("%w: date", ErrInvalidInput)
	}

	now := s.now()
	req := catalog.Request{
		ID: uuid.NewString(),
		Client: catalog.ClientRef{
			ID:           client.ID,
			Name:         client.Name,
			Neighborhood: client.Neighborhood,
		},
		ServiceKind:         d.ServiceKind,
		Date:                date,
		Time:                strings.TrimSpace(d.Time),
		Dog:                 dog,
		Neighborhood:        d.Neighborhood,
		SpecialInstructions: strings.TrimSpace(d.SpecialInstructions),
		OfferedPrice:        d.OfferedPrice,
		Flexible:            d.Flexible,
		Status:              catalog.RequestOpen,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return catalog.Request{}, err
	}
	s.publish(ctx, req.ID)
	return req, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (catalog.Request, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

// Accept: un sitter toma una solicitud abierta.
func (s *Service) Accept(ctx context.Context, actorUserID, requestID string) (catalog.Request, error) {
	sitter, err := s.sitterOf(ctx, actorUserID)
	if err != nil {
		return catalog.Request{}, err
	}
	return s.transition(ctx, requestID, func(r *catalog.Request) error {
		if r.Status != catalog.RequestOpen {
			return ErrBadState
		}
		r.Status = catalog.RequestAccepted
		r.SitterID = sitter.ID
		return nil
	})
}

// Complete: solo el sitter asignado cierra una solicitud aceptada.
func (s *Service) Complete(ctx context.Context, actorUserID, requestID string) (catalog.Request, error) {
	sitter, err := s.sitterOf(ctx, actorUserID)
	if err != nil {
		return catalog.Request{}, err
	}
	return s.transition(ctx, requestID, func(r *catalog.Request) error {
		if r.SitterID != sitter.ID {
			return ErrForbidden
		}
		if r.Status != catalog.RequestAccepted {
			return ErrBadState
		}
		r.Status = catalog.RequestCompleted
		return nil
	})
}

// Cancel: el cliente dueño cancela mientras no esté terminada.
func (s *Service) Cancel(ctx context.Context, actorUserID, requestID string) (catalog.Request, error) {
	client, err := s.clientOf(ctx, actorUserID)
	if err != nil {
		return catalog.Request{}, err
	}
	return s.transition(ctx, requestID, func(r *catalog.Request) error {
		if r.Client.ID != client.ID {
			return ErrForbidden
		}
		if r.Status != catalog.RequestOpen && r.Status != catalog.RequestAccepted {
			return ErrBadState
		}
		r.Status = catalog.RequestCancelled
		return nil
	})
}

// ListMine devuelve las solicitudes del cliente del usuario y las
// asignadas a su perfil de sitter (un usuario puede tener ambos).
func (s *Service) ListMine(ctx context.Context, actorUserID string) ([]catalog.Request, error) {
	actorUserID = strings.TrimSpace(actorUserID)
	if actorUserID == "" {
		return nil, ErrInvalidInput
	}

	var clientID, sitterID string
	if c, err := s.clients.GetByOwner(ctx, actorUserID); err == nil {
		clientID = c.ID
	} else if !errors.Is(err, clients.ErrNotFound) {
		return nil, err
	}
	if st, err := s.sitters.GetByOwner(ctx, actorUserID); err == nil {
		sitterID = st.ID
	} else if !errors.Is(err, sitters.ErrNotFound) {
		return nil, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Request, 0)
	for _, r := range all {
		if (clientID != "" && r.Client.ID == clientID) || (sitterID != "" && r.SitterID == sitterID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Service) transition(ctx context.Context, requestID string, apply func(*catalog.Request) error) (catalog.Request, error) {
	r, err := s.repo.GetByID(ctx, strings.TrimSpace(requestID))
	if err != nil {
		return catalog.Request{}, err
	}
	from := r.Status
	if err := apply(&r); err != nil {
		return catalog.Request{}, err
	}
	r.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, r, from); err != nil {
		return catalog.Request{}, err
	}
	s.log.Info("requests: status changed", map[string]any{
		"request_id": r.ID,
		"from":       string(from),
		"to":         string(r.Status),
	})
	s.publish(ctx, r.ID)
	return r, nil
}

func (s *Service) clientOf(ctx context.Context, actorUserID string) (catalog.Client, error) {
	if strings.TrimSpace(actorUserID) == "" {
		return catalog.Client{}, ErrInvalidInput
	}
	c, err := s.clients.GetByOwner(ctx, strings.TrimSpace(actorUserID))
	if errors.Is(err, clients.ErrNotFound) {
		return catalog.Client{}, fmt.Errorf("%w: client profile required", ErrForbidden)
	}
	return c, err
}

func (s *Service) sitterOf(ctx context.Context, actorUserID string) (catalog.Sitter, error) {
	if strings.TrimSpace(actorUserID) == "" {
		return catalog.Sitter{}, ErrInvalidInput
	}
	st, err := s.sitters.GetByOwner(ctx, strings.TrimSpace(actorUserID))
	if errors.Is(err, sitters.ErrNotFound) {
		return catalog.Sitter{}, fmt.Errorf("%w: sitter profile required", ErrForbidden)
	}
	return st, err
}

func (s *Service) publish(ctx context.Context, id string) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Publish(ctx, catalog.Change{Kind: catalog.ChangeRequest, ID: id, OccurredAt: s.now()})
	if err != nil {
		s.log.Warn("requests: publish change failed", map[string]any{"request_id": id, "error": err.Error()})
	}
}
