package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"dog-sitters/internal/platform/logger"
	"dog-sitters/internal/platform/metrics"

	"golang.org/x/time/rate"
)

// limiterStore guarda un rate.Limiter por IP.
type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rps      rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterStore(rps float64, burst int) *limiterStore {
	if burst <= 0 {
		burst = 1
	}
	return &limiterStore{
		limiters: make(map[string]*limiterEntry),
		rps:      rate.Limit(rps),
		burst:    burst,
		idleTTL:  10 * time.Minute,
		now:      time.Now,
	}
}

func (s *limiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.limiters[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(s.rps, s.burst), lastSeen: now}
		s.limiters[ip] = e
		s.evictIdle(now)
	}
	e.lastSeen = now
	return e.limiter
}

// evictIdle limpia IPs que no se vieron en idleTTL (se llama con mu tomado).
func (s *limiterStore) evictIdle(now time.Time) {
	for ip, e := range s.limiters {
		if now.Sub(e.lastSeen) > s.idleTTL {
			delete(s.limiters, ip)
		}
	}
}

// RateLimit limita requests por IP. rps <= 0 desactiva el límite.
// Debe ir después de chimw.RealIP.
func RateLimit(rps float64, burst int, log logger.Logger, m *metrics.Manager) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	store := newLimiterStore(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !store.get(ip).Allow() {
				m.RateLimited()
				log.Warn("rate limit exceeded", map[string]any{"ip": ip})
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
