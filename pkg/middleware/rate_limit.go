package middleware

import (
	"net/http"
	"sync"
	"time"

	"bookable/pkg/logger"
)

// IdentityExtractor derives the rate-limit key for a request.
type IdentityExtractor func(r *http.Request) string

// DefaultIdentityExtractor keys on the authenticated user's email,
// falling back to the remote address for unauthenticated routes.
func DefaultIdentityExtractor(r *http.Request) string {
	if claims := ClaimsFromContext(r.Context()); claims != nil {
		return claims.Email
	}
	return r.RemoteAddr
}

// RequestRateLimiter is a sliding-window per-identity limiter backed by
// an in-memory map.
type RequestRateLimiter struct {
	mu        sync.Mutex
	requests  map[string][]time.Time
	limit     int
	window    time.Duration
	extractor IdentityExtractor
	log       *logger.Logger
	stopCh    chan struct{}
}

func NewRequestRateLimiter(limit int, window time.Duration, extractor IdentityExtractor, log *logger.Logger) *RequestRateLimiter {
	limiter := &RequestRateLimiter{
		requests:  make(map[string][]time.Time),
		limit:     limit,
		window:    window,
		extractor: extractor,
		log:       log,
		stopCh:    make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

func (rl *RequestRateLimiter) cleanup() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for identity, timestamps := range rl.requests {
				if len(timestamps) == 0 || time.Since(timestamps[len(timestamps)-1]) > rl.window {
					delete(rl.requests, identity)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RequestRateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *RequestRateLimiter) Allow(identity string) bool {
	if identity == "" {
		return true
	}

	now := time.Now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	recent := rl.requests[identity][:0]
	for _, ts := range rl.requests[identity] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= rl.limit {
		rl.requests[identity] = recent
		return false
	}

	rl.requests[identity] = append(recent, now)
	return true
}

func RateLimit(rl *RequestRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := rl.extractor(r)
			if !rl.Allow(identity) {
				rl.log.Warn("Rate limit exceeded",
					"request_id", RequestID(r.Context()),
					"identity", identity,
					"path", r.URL.Path,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"Too many requests"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
