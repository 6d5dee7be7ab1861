package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dog-sitters/internal/ports/auth"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" || r.Header.Get("apikey") != "anon-key" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Header.Get("Authorization") {
		case "Bearer good":
			_, _ = w.Write([]byte(`{"id":"u-1","email":"danny@example.com","user_metadata":{"user_type":"Client"}}`))
		case "Bearer weird":
			_, _ = w.Write([]byte(`{"id":"u-2","user_metadata":{"user_type":"admin"}}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
}

func TestVerifier(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "anon-key", Timeout: time.Second})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	v := NewVerifier(c)
	ctx := context.Background()

	claims, err := v.Verify(ctx, "good")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "u-1" || claims.UserType != auth.UserTypeClient || claims.Email != "danny@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	claims, err = v.Verify(ctx, "weird")
	if err != nil || claims.UserType != "" {
		t.Fatalf("unknown user types must be dropped: %v %+v", err, claims)
	}

	if _, err := v.Verify(ctx, "bad"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := v.Verify(ctx, " "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}

func TestVerifier_NotConfigured(t *testing.T) {
	c, _ := NewClient(Config{})
	if _, err := NewVerifier(c).Verify(context.Background(), "x"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
