package repository

import (
	"context"
	"testing"

	"dog-sitters/internal/adapters/storage/memory"
	"dog-sitters/internal/domain/catalog"
)

func TestLoader_OnlyOpenRequestsInOrder(t *testing.T) {
	ctx := context.Background()
	sitters := memory.NewSitterRepo()
	requests := memory.NewRequestRepo()

	_ = sitters.Create(ctx, catalog.Sitter{ID: "s1"})
	_ = sitters.Create(ctx, catalog.Sitter{ID: "s2"})
	_ = requests.Create(ctx, catalog.Request{ID: "r1", Status: catalog.RequestOpen})
	_ = requests.Create(ctx, catalog.Request{ID: "r2", Status: catalog.RequestAccepted})
	_ = requests.Create(ctx, catalog.Request{ID: "r3", Status: catalog.RequestOpen})

	l := NewLoader(sitters, requests)

	gotS, err := l.LoadSitters(ctx)
	if err != nil || len(gotS) != 2 || gotS[0].ID != "s1" {
		t.Fatalf("sitters: %v %+v", err, gotS)
	}
	gotR, err := l.LoadRequests(ctx)
	if err != nil {
		t.Fatalf("requests: %v", err)
	}
	if len(gotR) != 2 || gotR[0].ID != "r1" || gotR[1].ID != "r3" {
		t.Fatalf("expected open requests r1, r3; got %+v", gotR)
	}
}
