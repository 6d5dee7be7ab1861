package sitters

import (
	"context"
	"errors"
	"testing"
	"time"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/wizard"
	"dog-sitters/internal/platform/logger"
)

type testRepo struct {
	items []catalog.Sitter
}

func (r *testRepo) Create(ctx context.Context, s catalog.Sitter) error {
	r.items = append(r.items, s)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (catalog.Sitter, error) {
	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return catalog.Sitter{}, ErrNotFound
}

func (r *testRepo) GetByOwner(ctx context.Context, ownerUserID string) (catalog.Sitter, error) {
	for _, s := range r.items {
		if s.OwnerUserID == ownerUserID {
			return s, nil
		}
	}
	return catalog.Sitter{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]catalog.Sitter, error) {
	return append([]catalog.Sitter{}, r.items...), nil
}

type recordingNotifier struct {
	changes []catalog.Change
	err     error
}

func (n *recordingNotifier) Publish(ctx context.Context, c catalog.Change) error {
	n.changes = append(n.changes, c)
	return n.err
}

func validDraft() wizard.SitterDraft {
	return wizard.SitterDraft{
		Name:          "Yossi David",
		Email:         "yossi@example.com",
		Phone:         "052-9876543",
		Description:   "Big dogs welcome",
		IDDocument:    "uploads/id/yossi.jpg",
		Selfie:        "uploads/selfie/yossi.jpg",
		Neighborhoods: []string{"Dizengoff", "Ramat Aviv"},
		Services: []wizard.ServiceOffer{
			{Kind: catalog.ServiceWalk30, Price: 50},
			{Kind: catalog.ServiceHomeVisit, Price: 100},
		},
		Payout: wizard.PayoutDraft{AccountHolder: "Yossi David", AccountNumber: "10-800-123456", Bank: "Hapoalim"},
	}
}

func TestRegister_NewSitterStartsUnverified(t *testing.T) {
	repo := &testRepo{}
	n := &recordingNotifier{}
	svc := NewService(repo, n, logger.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }

	s, err := svc.Register(context.Background(), "user-9", validDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Verified || s.Rating != 0 || s.ReviewCount != 0 {
		t.Fatalf("new sitter must be unverified with no rating: %+v", s)
	}
	if len(s.Services) != 2 || s.Services[0].ID == "" {
		t.Fatalf("services not built: %+v", s.Services)
	}
	if top, ok := s.MaxPrice(); !ok || top != 100 {
		t.Fatalf("expected max price 100, got %v %v", top, ok)
	}
	if s.Neighborhood != "Dizengoff" {
		t.Fatalf("home neighborhood should default to the first one, got %q", s.Neighborhood)
	}
	if s.PayoutAccount != "*******3456" {
		t.Fatalf("expected masked account, got %q", s.PayoutAccount)
	}
	if len(n.changes) != 1 || n.changes[0].Kind != catalog.ChangeSitter || n.changes[0].ID != s.ID {
		t.Fatalf("expected one sitter change, got %+v", n.changes)
	}
}

func TestRegister_InvalidDraftIsNotPersisted(t *testing.T) {
	repo := &testRepo{}
	n := &recordingNotifier{}
	svc := NewService(repo, n, logger.NewNop())

	d := validDraft()
	d.Services = nil

	_, err := svc.Register(context.Background(), "user-9", d)
	if !errors.Is(err, wizard.ErrStepInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.items) != 0 || len(n.changes) != 0 {
		t.Fatalf("nothing should be persisted or published")
	}
}

func TestRegister_OnePerUser(t *testing.T) {
	svc := NewService(&testRepo{}, nil, logger.NewNop())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "user-9", validDraft()); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := svc.Register(ctx, "user-9", validDraft()); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestRegister_PublishFailureDoesNotFail(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, &recordingNotifier{err: errors.New("broker down")}, logger.NewNop())

	if _, err := svc.Register(context.Background(), "user-9", validDraft()); err != nil {
		t.Fatalf("publish errors must not fail registration: %v", err)
	}
	if len(repo.items) != 1 {
		t.Fatalf("sitter should be persisted")
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&testRepo{}, nil, logger.NewNop())
	if _, err := svc.GetByID(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
