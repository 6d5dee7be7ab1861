package sitters

import (
	"context"
	"errors"
	"strings"
	"time"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/wizard"
	"dog-sitters/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("sitter not found")
	ErrAlreadyRegistered = errors.New("sitter already registered")
)

type Service struct {
	repo     Repository
	notifier catalog.Notifier
	log      logger.Logger
	flow     wizard.Flow[wizard.SitterDraft]
	now      func() time.Time
}

func NewService(repo Repository, notifier catalog.Notifier, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log,
		flow:     wizard.SitterFlow(),
		now:      time.Now,
	}
}

// Register crea el sitter al terminar el wizard. Arranca sin verificar
// y sin reseñas. Los datos de pago se guardan enmascarados.
func (s *Service) Register(ctx context.Context, ownerUserID string, d wizard.SitterDraft) (catalog.Sitter, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return catalog.Sitter{}, ErrInvalidInput
	}
	if err := s.flow.ValidateAll(d); err != nil {
		return catalog.Sitter{}, err
	}

	if _, err := s.repo.GetByOwner(ctx, ownerUserID); err == nil {
		return catalog.Sitter{}, ErrAlreadyRegistered
	} else if !errors.Is(err, ErrNotFound) {
		return catalog.Sitter{}, err
	}

	id := uuid.NewString()
	services := make([]catalog.Service, 0, len(d.Services))
	for _, o := range d.Services {
		services = append(services, catalog.Service{
			ID:          uuid.NewString(),
			Kind:        o.Kind,
			Price:       o.Price,
			Description: strings.TrimSpace(o.Description),
		})
	}
	availability := d.Availability
	if availability == nil {
		availability = []catalog.Availability{}
	}

	sitter := catalog.Sitter{
		ID:            id,
		OwnerUserID:   ownerUserID,
		Name:          strings.TrimSpace(d.Name),
		Email:         strings.TrimSpace(d.Email),
		Phone:         strings.TrimSpace(d.Phone),
		ProfileImage:  strings.TrimSpace(d.ProfileImage),
		Neighborhood:  d.Neighborhoods[0],
		Description:   strings.TrimSpace(d.Description),
		Experience:    strings.TrimSpace(d.Experience),
		Neighborhoods: append([]string{}, d.Neighborhoods...),
		Services:      services,
		Availability:  availability,
		Rating:        0,
		ReviewCount:   0,
		Verified:      false,
		IDDocumentRef: strings.TrimSpace(d.IDDocument),
		SelfieRef:     strings.TrimSpace(d.Selfie),
		PayoutAccount: wizard.MaskAccount(d.Payout.AccountNumber),
		PayoutBank:    strings.TrimSpace(d.Payout.Bank),
		CreatedAt:     s.now(),
	}

	if err := s.repo.Create(ctx, sitter); err != nil {
		return catalog.Sitter{}, err
	}

	s.publish(ctx, sitter.ID)
	return sitter, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (catalog.Sitter, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) GetByOwner(ctx context.Context, ownerUserID string) (catalog.Sitter, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return catalog.Sitter{}, ErrInvalidInput
	}
	return s.repo.GetByOwner(ctx, strings.TrimSpace(ownerUserID))
}

// publish avisa al catálogo. Un fallo no revierte el alta: el próximo
// refresh periódico lo levanta igual.
func (s *Service) publish(ctx context.Context, id string) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Publish(ctx, catalog.Change{Kind: catalog.ChangeSitter, ID: id, OccurredAt: s.now()})
	if err != nil {
		s.log.Warn("sitters: publish change failed", map[string]any{"sitter_id": id, "error": err.Error()})
	}
}
