// Package ratelimit provides per-client rate limiting for the analysis
// endpoints using a token bucket algorithm.
package ratelimit

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config controls bucket capacity and refill rate.
type Config struct {
	// Burst is the bucket capacity: how many requests a client may make
	// back to back.
	Burst int
	// RequestsPerMinute is the sustained refill rate.
	RequestsPerMinute int
	// Disabled turns the limiter into a no-op (useful in tests).
	Disabled bool
}

// LoadConfig reads limiter settings from the environment, falling back to
// safe defaults.
func LoadConfig() Config {
	cfg := Config{Burst: 10, RequestsPerMinute: 30}
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST")); err == nil && v > 0 {
		cfg.Burst = v
	}
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_PER_MINUTE")); err == nil && v > 0 {
		cfg.RequestsPerMinute = v
	}
	if os.Getenv("RATE_LIMIT_DISABLED") == "true" {
		cfg.Disabled = true
	}
	return cfg
}

// tokenBucket is one client's bucket. Tokens refill at a steady rate up to
// the burst capacity.
type tokenBucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func (tb *tokenBucket) allow(now time.Time) bool {
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.tokens = min(tb.capacity, tb.tokens+elapsed*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Limiter tracks a token bucket per client key.
type Limiter struct {
	cfg     Config
	mu      sync.Mutex
	buckets map[string]*tokenBucket
}

// NewLimiter creates a limiter with the given configuration.
func NewLimiter(cfg Config) *Limiter {
	return &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*tokenBucket),
	}
}

// Allow reports whether the client identified by key may proceed.
func (l *Limiter) Allow(key string) bool {
	if l.cfg.Disabled {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tb, ok := l.buckets[key]
	if !ok {
		tb = &tokenBucket{
			capacity:   float64(l.cfg.Burst),
			refillRate: float64(l.cfg.RequestsPerMinute) / 60.0,
			tokens:     float64(l.cfg.Burst),
			lastRefill: time.Now(),
		}
		l.buckets[key] = tb
	}
	return tb.allow(time.Now())
}

// Middleware wraps a handler with per-client-IP rate limiting.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientKey(r)) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the client by IP, preferring the first
// X-Forwarded-For hop when present.
func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
