package requests

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/clients"
	"dog-sitters/internal/domain/sitters"
	"dog-sitters/internal/domain/wizard"
	"dog-sitters/internal/platform/logger"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	mu    sync.Mutex
	items []catalog.Request
}

func (r *testRepo) Create(ctx context.Context, req catalog.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, req)
	return nil
}

func (r *testRepo) Update(ctx context.Context, req catalog.Request, from catalog.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == req.ID {
			if r.items[i].Status != from {
				return ErrBadState
			}
			r.items[i] = req
			return nil
		}
	}
	return ErrNotFound
}

func (r *testRepo) GetByID(ctx context.Context, id string) (catalog.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.items {
		if req.ID == id {
			return req, nil
		}
	}
	return catalog.Request{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]catalog.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]catalog.Request{}, r.items...), nil
}

// readBarrier retiene cada GetByID hasta que todos los lectores leyeron,
// así las transiciones arrancan de la misma copia.
type readBarrier struct {
	*testRepo
	reads sync.WaitGroup
}

func (b *readBarrier) GetByID(ctx context.Context, id string) (catalog.Request, error) {
	req, err := b.testRepo.GetByID(ctx, id)
	b.reads.Done()
	b.reads.Wait()
	return req, err
}

type fakeClients map[string]catalog.Client

func (f fakeClients) GetByOwner(ctx context.Context, ownerUserID string) (catalog.Client, error) {
	c, ok := f[ownerUserID]
	if !ok {
		return catalog.Client{}, clients.ErrNotFound
	}
	return c, nil
}

type fakeSitters map[string]catalog.Sitter

func (f fakeSitters) GetByOwner(ctx context.Context, ownerUserID string) (catalog.Sitter, error) {
	s, ok := f[ownerUserID]
	if !ok {
		return catalog.Sitter{}, sitters.ErrNotFound
	}
	return s, nil
}

type recordingNotifier struct {
	changes []catalog.Change
}

func (n *recordingNotifier) Publish(ctx context.Context, c catalog.Change) error {
	n.changes = append(n.changes, c)
	return nil
}

// -------------------------
// Helpers
// -------------------------

const (
	danny    = "user-danny"
	sara     = "user-sara"
	michal   = "user-michal"
	yossi    = "user-yossi"
	nobody   = "user-nobody"
	maxDogID = "dog-max"
)

type env struct {
	svc      *Service
	repo     *testRepo
	notifier *recordingNotifier
}

func newEnv() env {
	cl := fakeClients{
		danny: {ID: "client-danny", OwnerUserID: danny, Name: "Danny Cohen", Neighborhood: "Florentin", Dogs: []catalog.Dog{
			{ID: maxDogID, Name: "Max", Breed: "Labrador", Size: catalog.DogLarge, Temperament: catalog.TemperamentEnergetic},
		}},
		sara: {ID: "client-sara", OwnerUserID: sara, Name: "Sara Levi", Neighborhood: "Neve Tzedek"},
	}
	st := fakeSitters{
		michal: {ID: "sitter-michal", OwnerUserID: michal, Name: "Michal Avraham"},
		yossi:  {ID: "sitter-yossi", OwnerUserID: yossi, Name: "Yossi David"},
	}
	repo := &testRepo{}
	n := &recordingNotifier{}
	svc := NewService(repo, cl, st, n, logger.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC) }
	return env{svc: svc, repo: repo, notifier: n}
}

func draftWithDog() wizard.RequestDraft {
	return wizard.RequestDraft{
		ServiceKind:  catalog.ServiceWalk30,
		Date:         "2026-05-05",
		Time:         "08:00",
		DogID:        maxDogID,
		OfferedPrice: 45,
		Flexible:     true,
	}
}

func mustCreate(t *testing.T, e env) catalog.Request {
	t.Helper()
	req, err := e.svc.Create(context.Background(), danny, draftWithDog())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return req
}

// -------------------------
// Tests
// -------------------------

func TestCreate_CopiesDogAndDefaultsNeighborhood(t *testing.T) {
	e := newEnv()

	req := mustCreate(t, e)

	if req.Status != catalog.RequestOpen {
		t.Fatalf("expected open, got %s", req.Status)
	}
	if req.Dog.ID != maxDogID || req.Dog.Breed != "Labrador" || req.Dog.Size != catalog.DogLarge {
		t.Fatalf("dog not copied: %+v", req.Dog)
	}
	if req.Neighborhood != "Florentin" {
		t.Fatalf("expected client neighborhood, got %q", req.Neighborhood)
	}
	if req.Client.ID != "client-danny" || req.Client.Name != "Danny Cohen" {
		t.Fatalf("bad client ref: %+v", req.Client)
	}
	if req.Date.Format("2006-01-02") != "2026-05-05" {
		t.Fatalf("bad date: %v", req.Date)
	}
	if len(e.notifier.changes) != 1 || e.notifier.changes[0].Kind != catalog.ChangeRequest {
		t.Fatalf("expected one request change, got %+v", e.notifier.changes)
	}
}

func TestCreate_InlineDog(t *testing.T) {
	e := newEnv()

	d := wizard.RequestDraft{
		ServiceKind:  catalog.ServiceHomeVisit,
		Date:         "2026-05-06",
		Time:         "18:30",
		DogName:      "Luna",
		DogBreed:     "Poodle",
		DogSize:      catalog.DogMedium,
		Neighborhood: "Neve Tzedek",
		OfferedPrice: 80,
	}
	req, err := e.svc.Create(context.Background(), sara, d)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if req.Dog.Name != "Luna" || req.Dog.Size != catalog.DogMedium {
		t.Fatalf("inline dog not used: %+v", req.Dog)
	}
}

func TestCreate_Errors(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	if _, err := e.svc.Create(ctx, nobody, draftWithDog()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden without client profile, got %v", err)
	}

	d := draftWithDog()
	d.DogID = "dog-unknown"
	var verr *wizard.ValidationError
	if _, err := e.svc.Create(ctx, danny, d); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for unknown dog, got %v", err)
	}

	d = draftWithDog()
	d.OfferedPrice = 0
	if _, err := e.svc.Create(ctx, danny, d); !errors.Is(err, wizard.ErrStepInvalid) {
		t.Fatalf("expected validation error for price 0, got %v", err)
	}

	if len(e.repo.items) != 0 {
		t.Fatalf("nothing should be persisted")
	}
}

func TestLifecycle_AcceptComplete(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	req := mustCreate(t, e)

	// Un cliente no puede aceptar
	if _, err := e.svc.Accept(ctx, danny, req.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for client accepting, got %v", err)
	}

	accepted, err := e.svc.Accept(ctx, michal, req.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != catalog.RequestAccepted || accepted.SitterID != "sitter-michal" {
		t.Fatalf("bad accepted request: %+v", accepted)
	}

	// Ya no está abierta
	if _, err := e.svc.Accept(ctx, yossi, req.ID); !errors.Is(err, ErrBadState) {
		t.Fatalf("expected ErrBadState on double accept, got %v", err)
	}

	// Solo el sitter asignado completa
	if _, err := e.svc.Complete(ctx, yossi, req.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other sitter, got %v", err)
	}

	done, err := e.svc.Complete(ctx, michal, req.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != catalog.RequestCompleted {
		t.Fatalf("expected completed, got %s", done.Status)
	}

	// Terminada: no se cancela
	if _, err := e.svc.Cancel(ctx, danny, req.ID); !errors.Is(err, ErrBadState) {
		t.Fatalf("expected ErrBadState cancelling completed, got %v", err)
	}

	if got := len(e.notifier.changes); got != 3 {
		t.Fatalf("expected 3 changes (create, accept, complete), got %d", got)
	}
}

func TestLifecycle_Cancel(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	req := mustCreate(t, e)

	if _, err := e.svc.Cancel(ctx, sara, req.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other client, got %v", err)
	}
	if _, err := e.svc.Accept(ctx, michal, req.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	cancelled, err := e.svc.Cancel(ctx, danny, req.ID)
	if err != nil {
		t.Fatalf("cancel accepted: %v", err)
	}
	if cancelled.Status != catalog.RequestCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}

	if _, err := e.svc.Complete(ctx, michal, req.ID); !errors.Is(err, ErrBadState) {
		t.Fatalf("expected ErrBadState completing cancelled, got %v", err)
	}
}

func TestAccept_ConcurrentSittersOnlyOneWins(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	req := mustCreate(t, e)

	barrier := &readBarrier{testRepo: e.repo}
	barrier.reads.Add(2)
	e.svc.repo = barrier

	actors := []string{michal, yossi}
	errs := make([]error, len(actors))
	var wg sync.WaitGroup
	for i, actor := range actors {
		wg.Add(1)
		go func(i int, actor string) {
			defer wg.Done()
			_, errs[i] = e.svc.Accept(ctx, actor, req.ID)
		}(i, actor)
	}
	wg.Wait()

	var wins, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrBadState):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || lost != 1 {
		t.Fatalf("expected one accept and one ErrBadState, got %v", errs)
	}

	got, _ := e.repo.GetByID(ctx, req.ID)
	winner := "sitter-michal"
	if errs[0] != nil {
		winner = "sitter-yossi"
	}
	if got.Status != catalog.RequestAccepted || got.SitterID != winner {
		t.Fatalf("stored request does not match the winning accept: %+v", got)
	}
}

func TestTransition_NotFound(t *testing.T) {
	e := newEnv()
	if _, err := e.svc.Accept(context.Background(), michal, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListMine(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	req := mustCreate(t, e)

	mine, err := e.svc.ListMine(ctx, danny)
	if err != nil || len(mine) != 1 {
		t.Fatalf("client should see own request: %v %d", err, len(mine))
	}

	mine, _ = e.svc.ListMine(ctx, michal)
	if len(mine) != 0 {
		t.Fatalf("unassigned sitter should see nothing, got %d", len(mine))
	}

	if _, err := e.svc.Accept(ctx, michal, req.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	mine, _ = e.svc.ListMine(ctx, michal)
	if len(mine) != 1 {
		t.Fatalf("assigned sitter should see the request, got %d", len(mine))
	}
}
