package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dog-sitters/internal/platform/httpclient"
)

func TestLoader_SendsAPIKeyAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "k-123" || r.Header.Get("Authorization") != "Bearer k-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/rest/v1/sitters":
			_, _ = w.Write([]byte(`[{"id":"s1","name":"Michal Avraham","neighborhoods":["Florentin"],"services":[{"id":"x","type":"walk_30","price":40}],"rating":4.8}]`))
		case "/rest/v1/requests":
			if r.URL.Query().Get("status") != "eq.open" {
				t.Errorf("expected status filter, got %q", r.URL.RawQuery)
			}
			_, _ = w.Write([]byte(`[{"id":"r1","service_type":"walk_60","neighborhood":"Florentin","offered_price":75,"dog":{"name":"Max","size":"large"}}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	l, err := NewLoader(Config{BaseURL: ts.URL, APIKey: "k-123", Timeout: time.Second})
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}

	sitters, err := l.LoadSitters(context.Background())
	if err != nil {
		t.Fatalf("load sitters: %v", err)
	}
	if len(sitters) != 1 || sitters[0].Services[0].Price != 40 {
		t.Fatalf("unexpected sitters: %+v", sitters)
	}

	requests, err := l.LoadRequests(context.Background())
	if err != nil {
		t.Fatalf("load requests: %v", err)
	}
	if len(requests) != 1 || requests[0].Dog.Name != "Max" {
		t.Fatalf("unexpected requests: %+v", requests)
	}
}

func TestLoader_UpstreamErrorIsReturned(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, _ := httpclient.New(ts.URL, "k", httpclient.WithTimeout(time.Second))
	l := NewLoaderWithClient(c)

	_, err := l.LoadSitters(context.Background())
	if !httpclient.HasStatus(err, http.StatusBadGateway) {
		t.Fatalf("expected upstream 502, got %v", err)
	}
}

func TestNewLoader_RequiresConfig(t *testing.T) {
	if _, err := NewLoader(Config{BaseURL: "http://x"}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
