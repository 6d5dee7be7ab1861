package memory

import (
	"context"
	"errors"
	"testing"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/clients"
	"dog-sitters/internal/domain/listings"
	"dog-sitters/internal/domain/requests"
)

func TestSitterRepo_ListKeepsInsertionOrder(t *testing.T) {
	r := NewSitterRepo()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		if err := r.Create(ctx, catalog.Sitter{ID: id, OwnerUserID: "u-" + id}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	got, _ := r.List(ctx)
	if len(got) != 3 || got[0].ID != "c" || got[1].ID != "a" || got[2].ID != "b" {
		t.Fatalf("unexpected order: %+v", got)
	}

	s, err := r.GetByOwner(ctx, "u-a")
	if err != nil || s.ID != "a" {
		t.Fatalf("get by owner: %v %+v", err, s)
	}
	if err := r.Create(ctx, catalog.Sitter{ID: "a"}); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestClientRepo_ReturnsCopies(t *testing.T) {
	r := NewClientRepo()
	ctx := context.Background()

	_ = r.Create(ctx, catalog.Client{ID: "c1", Dogs: []catalog.Dog{{ID: "d1"}}})

	c, _ := r.GetByID(ctx, "c1")
	c.Dogs[0].Name = "changed"
	c.Dogs = append(c.Dogs, catalog.Dog{ID: "d2"})

	again, _ := r.GetByID(ctx, "c1")
	if len(again.Dogs) != 1 || again.Dogs[0].Name != "" {
		t.Fatalf("stored client was mutated: %+v", again)
	}

	if err := r.Update(ctx, catalog.Client{ID: "nope"}); !errors.Is(err, clients.ErrNotFound) {
		t.Fatalf("expected clients.ErrNotFound, got %v", err)
	}
}

func TestRequestRepo_UpdateAndNotFound(t *testing.T) {
	r := NewRequestRepo()
	ctx := context.Background()

	_ = r.Create(ctx, catalog.Request{ID: "r1", Status: catalog.RequestOpen})
	if err := r.Update(ctx, catalog.Request{ID: "r1", Status: catalog.RequestAccepted, SitterID: "s1"}, catalog.RequestOpen); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := r.GetByID(ctx, "r1")
	if got.Status != catalog.RequestAccepted {
		t.Fatalf("expected accepted, got %s", got.Status)
	}

	// Estado esperado viejo: no pisa al que ganó
	err := r.Update(ctx, catalog.Request{ID: "r1", Status: catalog.RequestAccepted, SitterID: "s2"}, catalog.RequestOpen)
	if !errors.Is(err, requests.ErrBadState) {
		t.Fatalf("expected requests.ErrBadState, got %v", err)
	}
	if got, _ := r.GetByID(ctx, "r1"); got.SitterID != "s1" {
		t.Fatalf("expected sitter s1 to keep the request, got %s", got.SitterID)
	}
	if err := r.Update(ctx, catalog.Request{ID: "r2"}, catalog.RequestOpen); !errors.Is(err, requests.ErrNotFound) {
		t.Fatalf("expected requests.ErrNotFound on update, got %v", err)
	}
	if _, err := r.GetByID(ctx, "r2"); !errors.Is(err, requests.ErrNotFound) {
		t.Fatalf("expected requests.ErrNotFound, got %v", err)
	}
}

func TestQueryStateRepo(t *testing.T) {
	r := NewQueryStateRepo()
	ctx := context.Background()

	if _, err := r.Get(ctx, "u1"); !errors.Is(err, listings.ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}

	q := listings.DefaultQueryState().WithSearch("max")
	_ = r.Save(ctx, "u1", q)
	got, err := r.Get(ctx, "u1")
	if err != nil || got.Search != "max" {
		t.Fatalf("get after save: %v %+v", err, got)
	}

	if err := r.Delete(ctx, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := r.Delete(ctx, "u1"); !errors.Is(err, listings.ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound on second delete, got %v", err)
	}
}
