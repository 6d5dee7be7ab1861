package clients

import (
	"context"
	"errors"
	"testing"
	"time"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/wizard"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]catalog.Client
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]catalog.Client{}}
}

func (r *testRepo) Create(ctx context.Context, c catalog.Client) error {
	if _, ok := r.byID[c.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Update(ctx context.Context, c catalog.Client) error {
	if _, ok := r.byID[c.ID]; !ok {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (catalog.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return catalog.Client{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) GetByOwner(ctx context.Context, ownerUserID string) (catalog.Client, error) {
	for _, c := range r.byID {
		if c.OwnerUserID == ownerUserID {
			return c, nil
		}
	}
	return catalog.Client{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]catalog.Client, error) {
	out := make([]catalog.Client, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

// -------------------------
// Helpers
// -------------------------

func fixedNow() time.Time {
	return time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = fixedNow
	return svc, repo
}

func validDraft() wizard.ClientDraft {
	return wizard.ClientDraft{
		Name:  " Danny Cohen ",
		Email: "danny@example.com",
		Phone: "050-1112233",
		Dog: wizard.DogDraft{
			Name:        "Max",
			Breed:       "Labrador",
			Age:         3,
			Size:        catalog.DogLarge,
			Temperament: catalog.TemperamentEnergetic,
		},
		Neighborhood: "Florentin",
	}
}

// -------------------------
// Tests
// -------------------------

func TestRegister_CreatesClientWithFirstDog(t *testing.T) {
	svc, repo := newTestService()

	c, err := svc.Register(context.Background(), "user-1", validDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == "" || c.OwnerUserID != "user-1" {
		t.Fatalf("bad ids: %+v", c)
	}
	if c.Name != "Danny Cohen" {
		t.Fatalf("expected trimmed name, got %q", c.Name)
	}
	if len(c.Dogs) != 1 || c.Dogs[0].Name != "Max" || c.Dogs[0].ID == "" {
		t.Fatalf("expected first dog, got %+v", c.Dogs)
	}
	if !c.CreatedAt.Equal(fixedNow()) {
		t.Fatalf("expected created_at from clock, got %v", c.CreatedAt)
	}
	if _, ok := repo.byID[c.ID]; !ok {
		t.Fatalf("client not persisted")
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	svc, repo := newTestService()

	d := validDraft()
	d.Email = "nope"
	d.Neighborhood = ""

	_, err := svc.Register(context.Background(), "user-1", d)
	var verr *wizard.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", verr.Fields)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("nothing should be persisted")
	}
}

func TestRegister_OnePerUser(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "user-1", validDraft()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, "user-1", validDraft()); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestRegister_RequiresUser(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Register(context.Background(), " ", validDraft()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddDog_OnlyOwner(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	c, err := svc.Register(ctx, "user-1", validDraft())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	luna := wizard.DogDraft{Name: "Luna", Breed: "Poodle", Age: 5, Size: catalog.DogMedium}

	if _, err := svc.AddDog(ctx, "user-2", c.ID, luna); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	dog, err := svc.AddDog(ctx, "user-1", c.ID, luna)
	if err != nil {
		t.Fatalf("add dog: %v", err)
	}
	if got := repo.byID[c.ID].Dogs; len(got) != 2 || got[1].ID != dog.ID {
		t.Fatalf("expected 2 dogs, got %+v", got)
	}
}

func TestAddDog_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	c, _ := svc.Register(ctx, "user-1", validDraft())

	_, err := svc.AddDog(ctx, "user-1", c.ID, wizard.DogDraft{Name: "Old", Breed: "Mixed", Age: 30})
	var verr *wizard.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if _, err := svc.AddDog(ctx, "user-1", "missing", wizard.DogDraft{Name: "A", Breed: "B"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
