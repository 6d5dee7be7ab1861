package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dog-sitters/internal/platform/logger"
	"dog-sitters/internal/platform/metrics"
	"dog-sitters/internal/ports/auth"
)

// echoClaims responde con el userID y el tipo que quedaron en el contexto.
func echoClaims() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, _ := GetClaims(r.Context())
		_, _ = w.Write([]byte(c.UserID + "|" + string(c.UserType)))
	})
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthContext_DevHeaders(t *testing.T) {
	h := AuthContext(nil)(echoClaims())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", " user-1 ")
	req.Header.Set("X-Debug-User-Type", "Sitter")
	if got := serve(h, req).Body.String(); got != "user-1|sitter" {
		t.Fatalf("expected dev claims, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", "user-1")
	req.Header.Set("X-Debug-User-Type", "admin")
	if got := serve(h, req).Body.String(); got != "user-1|" {
		t.Fatalf("expected unknown user type dropped, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	if got := serve(h, req).Body.String(); got != "|" {
		t.Fatalf("expected anonymous request, got %q", got)
	}
}

func TestAuthContext_Verifier(t *testing.T) {
	var (
		calls     int
		verifyErr error
	)
	v := auth.VerifierFunc(func(_ context.Context, token string) (auth.Claims, error) {
		calls++
		if verifyErr != nil {
			return auth.Claims{}, verifyErr
		}
		return auth.Claims{UserID: "u-9", UserType: auth.UserTypeClient}, nil
	})
	h := AuthContext(v)(echoClaims())

	// Con verifier los headers de depuración se ignoran
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", "intruder")
	if got := serve(h, req).Body.String(); got != "|" {
		t.Fatalf("expected debug header ignored, got %q", got)
	}
	if calls != 0 {
		t.Fatalf("expected no verify without token, got %d calls", calls)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer tok")
	if got := serve(h, req).Body.String(); got != "u-9|client" {
		t.Fatalf("expected verified claims, got %q", got)
	}

	verifyErr = errors.New("expired")
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := serve(h, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "|" {
		t.Fatalf("expected request to continue anonymous, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"Bearer":       "",
		"Basic abc":    "",
		"Bearer  abc ": "abc",
		"BEARER xyz":   "xyz",
	}
	for in, want := range cases {
		if got := bearerToken(in); got != want {
			t.Fatalf("bearerToken(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRateLimit_PerIP(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := RateLimit(0.001, 1, logger.NewNop(), metrics.NewManager())(ok)

	reqFrom := func(addr string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		return req
	}

	if rec := serve(h, reqFrom("10.0.0.1:1234")); rec.Code != http.StatusOK {
		t.Fatalf("expected first request allowed, got %d", rec.Code)
	}
	if rec := serve(h, reqFrom("10.0.0.1:5678")); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected same ip limited, got %d", rec.Code)
	}
	if rec := serve(h, reqFrom("10.0.0.2:1234")); rec.Code != http.StatusOK {
		t.Fatalf("expected other ip allowed, got %d", rec.Code)
	}
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { calls++ })
	h := RateLimit(0, 0, logger.NewNop(), nil)(next)

	for i := 0; i < 50; i++ {
		serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	}
	if calls != 50 {
		t.Fatalf("expected all requests through, got %d", calls)
	}
}

func TestLimiterStore_EvictsIdle(t *testing.T) {
	s := newLimiterStore(1, 1)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.get("10.0.0.1")
	now = now.Add(11 * time.Minute)
	s.get("10.0.0.2")

	if _, ok := s.limiters["10.0.0.1"]; ok {
		t.Fatalf("expected idle ip evicted")
	}
	if len(s.limiters) != 1 {
		t.Fatalf("expected one limiter, got %d", len(s.limiters))
	}
}

func TestAccessLog_PassesStatus(t *testing.T) {
	h := AccessLog(logger.NewNop(), metrics.NewManager())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	if rec := serve(h, httptest.NewRequest(http.MethodGet, "/x", nil)); rec.Code != http.StatusTeapot {
		t.Fatalf("expected status passed through, got %d", rec.Code)
	}
}
