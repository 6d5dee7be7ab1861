package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"dog-sitters/internal/platform/logger"
)

type stubLoader struct {
	sitters     []Sitter
	requests    []Request
	sittersErr  error
	requestsErr error
}

func (l *stubLoader) LoadSitters(ctx context.Context) ([]Sitter, error) {
	return l.sitters, l.sittersErr
}

func (l *stubLoader) LoadRequests(ctx context.Context) ([]Request, error) {
	return l.requests, l.requestsErr
}

func TestStore_CurrentBeforeRefresh_IsEmpty(t *testing.T) {
	s := NewStore(&stubLoader{}, logger.NewNop())

	snap := s.Current()
	if snap.Sitters == nil || snap.Requests == nil {
		t.Fatalf("expected non-nil empty collections")
	}
	if len(snap.Sitters) != 0 || len(snap.Requests) != 0 {
		t.Fatalf("expected empty snapshot, got %d sitters %d requests", len(snap.Sitters), len(snap.Requests))
	}
}

func TestStore_Refresh_ReplacesSnapshot(t *testing.T) {
	loader := &stubLoader{
		sitters:  []Sitter{{ID: "s1"}, {ID: "s2"}},
		requests: []Request{{ID: "r1"}},
	}
	s := NewStore(loader, logger.NewNop())

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	hooked := 0
	s.onRefresh = func(Snapshot) { hooked++ }

	before := s.Current()
	s.Refresh(context.Background())
	after := s.Current()

	if len(before.Sitters) != 0 {
		t.Fatalf("old snapshot must not change")
	}
	if len(after.Sitters) != 2 || len(after.Requests) != 1 {
		t.Fatalf("unexpected snapshot: %+v", after)
	}
	if !after.LoadedAt.Equal(now) {
		t.Fatalf("expected LoadedAt=%v, got %v", now, after.LoadedAt)
	}
	if hooked != 1 {
		t.Fatalf("expected refresh hook once, got %d", hooked)
	}
}

func TestStore_Refresh_FailingSourceYieldsEmptyCollection(t *testing.T) {
	loader := &stubLoader{
		sittersErr: errors.New("upstream down"),
		requests:   []Request{{ID: "r1"}},
	}
	s := NewStore(loader, logger.NewNop())

	snap := s.Refresh(context.Background())
	if snap.Sitters == nil || len(snap.Sitters) != 0 {
		t.Fatalf("expected empty sitters on failure, got %#v", snap.Sitters)
	}
	if len(snap.Requests) != 1 {
		t.Fatalf("expected requests to load independently, got %d", len(snap.Requests))
	}
}

func TestSitter_MaxPrice(t *testing.T) {
	s := Sitter{Services: []Service{
		{Kind: ServiceWalk30, Price: 40},
		{Kind: ServiceHomeVisit, Price: 80},
		{Kind: ServiceWalk60, Price: 70},
	}}
	max, ok := s.MaxPrice()
	if !ok || max != 80 {
		t.Fatalf("expected max 80, got %v ok=%v", max, ok)
	}

	if _, ok := (Sitter{}).MaxPrice(); ok {
		t.Fatalf("expected ok=false for sitter without services")
	}
}

func TestServiceKind_LabelsAreExhaustive(t *testing.T) {
	for _, k := range ServiceKinds() {
		if k.Label() == "" {
			t.Fatalf("service kind %q has no label", k)
		}
	}
	if ServiceKind("grooming").Valid() {
		t.Fatalf("unknown kind must be invalid")
	}
	if k, ok := ParseServiceKind(" WALK_60 "); !ok || k != ServiceWalk60 {
		t.Fatalf("expected walk_60, got %q ok=%v", k, ok)
	}
}
