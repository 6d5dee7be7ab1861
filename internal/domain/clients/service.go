package clients

import (
	"context"
	"errors"
	"strings"
	"time"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/wizard"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("client not found")
	ErrForbidden         = errors.New("forbidden")
	ErrAlreadyRegistered = errors.New("client already registered")
)

type Service struct {
	repo Repository
	flow wizard.Flow[wizard.ClientDraft]
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		flow: wizard.ClientFlow(),
		now:  time.Now,
	}
}

// Register crea el cliente al terminar el wizard. Un usuario = un cliente.
func (s *Service) Register(ctx context.Context, ownerUserID string, d wizard.ClientDraft) (catalog.Client, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return catalog.Client{}, ErrInvalidInput
	}
	if err := s.flow.ValidateAll(d); err != nil {
		return catalog.Client{}, err
	}

	if _, err := s.repo.GetByOwner(ctx, ownerUserID); err == nil {
		return catalog.Client{}, ErrAlreadyRegistered
	} else if !errors.Is(err, ErrNotFound) {
		return catalog.Client{}, err
	}

	c := catalog.Client{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		Name:         strings.TrimSpace(d.Name),
		Email:        strings.TrimSpace(d.Email),
		Phone:        strings.TrimSpace(d.Phone),
		ProfileImage: strings.TrimSpace(d.ProfileImage),
		Neighborhood: d.Neighborhood,
		Dogs:         []catalog.Dog{newDog(d.Dog)},
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return catalog.Client{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (catalog.Client, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

// GetByOwner devuelve el cliente del usuario autenticado.
func (s *Service) GetByOwner(ctx context.Context, ownerUserID string) (catalog.Client, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return catalog.Client{}, ErrInvalidInput
	}
	return s.repo.GetByOwner(ctx, strings.TrimSpace(ownerUserID))
}

// AddDog agrega un perro. Solo el dueño del cliente.
func (s *Service) AddDog(ctx context.Context, actorUserID, clientID string, d wizard.DogDraft) (catalog.Dog, error) {
	if strings.TrimSpace(actorUserID) == "" {
		return catalog.Dog{}, ErrInvalidInput
	}
	if errs := wizard.ValidateDog(d); len(errs) > 0 {
		return catalog.Dog{}, &wizard.ValidationError{Step: "dog", Fields: errs}
	}

	c, err := s.repo.GetByID(ctx, strings.TrimSpace(clientID))
	if err != nil {
		return catalog.Dog{}, err
	}
	if c.OwnerUserID != actorUserID {
		return catalog.Dog{}, ErrForbidden
	}

	dog := newDog(d)
	c.Dogs = append(c.Dogs, dog)
	if err := s.repo.Update(ctx, c); err != nil {
		return catalog.Dog{}, err
	}
	return dog, nil
}

func newDog(d wizard.DogDraft) catalog.Dog {
	return catalog.Dog{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(d.Name),
		Breed:          strings.TrimSpace(d.Breed),
		Age:            d.Age,
		Size:           d.Size,
		Temperament:    d.Temperament,
		Image:          strings.TrimSpace(d.Image),
		AdditionalInfo: strings.TrimSpace(d.AdditionalInfo),
		Allergies:      strings.TrimSpace(d.Allergies),
		SpecialNeeds:   strings.TrimSpace(d.SpecialNeeds),
	}
}
