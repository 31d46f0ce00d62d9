// ABOUTME: Rate limiting middleware with fixed-window counters
// ABOUTME: Limits calculation traffic per client IP and reports rejections

package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/markalston/drone-design-calculator/backend/models"
)

// sweepEvery is the number of new windows between expired-entry sweeps
const sweepEvery = 100

// window tracks requests for one key within a fixed period.
type window struct {
	count     int
	expiresAt time.Time
}

// RateLimiter enforces a maximum number of requests per time window.
// Each key gets an independent counter.
type RateLimiter struct {
	mu         sync.Mutex
	windows    map[string]*window
	limit      int
	period     time.Duration
	newWindows int
	now        func() time.Time
}

// NewRateLimiter creates a rate limiter that allows limit requests per period.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
	}
}

// Limit returns the number of requests allowed per period.
func (rl *RateLimiter) Limit() int {
	return rl.limit
}

// Allow reports whether a request for key is permitted. When it is not, the
// returned duration is the time until the key's window resets.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, exists := rl.windows[key]

	// The boundary instant starts a fresh window.
	if !exists || !now.Before(w.expiresAt) {
		rl.windows[key] = &window{count: 1, expiresAt: now.Add(rl.period)}

		rl.newWindows++
		if rl.newWindows >= sweepEvery {
			rl.sweep(now)
			rl.newWindows = 0
		}
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}
	return false, w.expiresAt.Sub(now)
}

// tracked returns the number of keys currently held. Used by tests.
func (rl *RateLimiter) tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.windows)
}

// sweep drops expired windows. Caller holds rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for k, w := range rl.windows {
		if !now.Before(w.expiresAt) {
			delete(rl.windows, k)
		}
	}
}

// ClientIP extracts the client IP from X-Forwarded-For (leftmost) or RemoteAddr.
// X-Forwarded-For is trusted, which assumes a reverse proxy sets it.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if ip != "" && net.ParseIP(ip) != nil {
			return "ip:" + ip
		}
	}

	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return "ip:" + host
}

// RateLimit returns middleware that enforces limits using limiter and keyFunc.
// A nil limiter disables limiting; an empty key passes the request through.
// onLimited, when set, is called for every rejected request.
func RateLimit(limiter *RateLimiter, keyFunc func(*http.Request) string, onLimited func()) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || keyFunc == nil {
				next(w, r)
				return
			}

			key := keyFunc(r)
			if key == "" {
				next(w, r)
				return
			}

			allowed, retryAfter := limiter.Allow(key)
			if allowed {
				next(w, r)
				return
			}

			retrySeconds := int(math.Ceil(retryAfter.Seconds()))
			slog.Warn("Rate limit exceeded", "key", key, "path", sanitizePath(r.URL.Path), "retry_after", retrySeconds)
			if onLimited != nil {
				onLimited()
			}

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(retrySeconds))
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error:   "Rate limit exceeded",
				Details: fmt.Sprintf("limit of %d requests per window reached; retry after %ds", limiter.Limit(), retrySeconds),
				Code:    http.StatusTooManyRequests,
			})
		}
	}
}
