package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter is a per-client token bucket. Each client holds up to Burst
// tokens, refilled continuously at RequestsPerMinute.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	perSec   float64
	burst    float64
	idle     time.Duration
	now      func() time.Time
	stopOnce sync.Once
	stop     chan struct{}
}

type bucket struct {
	tokens float64
	last   time.Time
}

// RateLimiterConfig configures NewRateLimiter. Zero fields take defaults.
type RateLimiterConfig struct {
	RequestsPerMinute int
	// Burst is the bucket size; it defaults to RequestsPerMinute.
	Burst           int
	CleanupInterval time.Duration
}

func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerMinute: 120,
		Burst:             20,
		CleanupInterval:   5 * time.Minute,
	}
}

// NewRateLimiter starts a limiter and its eviction loop. Call Stop to end
// the loop.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	if config.RequestsPerMinute <= 0 {
		config.RequestsPerMinute = 120
	}
	if config.Burst <= 0 {
		config.Burst = config.RequestsPerMinute
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = 5 * time.Minute
	}

	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		perSec:  float64(config.RequestsPerMinute) / 60,
		burst:   float64(config.Burst),
		idle:    config.CleanupInterval,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.evictLoop(config.CleanupInterval)
	return rl
}

// Allow takes one token from client's bucket.
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[client]
	if !ok {
		b = &bucket{tokens: rl.burst, last: now}
		rl.buckets[client] = b
	}

	b.tokens += now.Sub(b.last).Seconds() * rl.perSec
	if b.tokens > rl.burst {
		b.tokens = rl.burst
	}
	b.last = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// evict drops buckets idle for longer than the cleanup interval; a full
// bucket carries no state worth keeping.
func (rl *RateLimiter) evict() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	for client, b := range rl.buckets {
		if now.Sub(b.last) > rl.idle {
			delete(rl.buckets, client)
		}
	}
}

func (rl *RateLimiter) evictLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.evict()
		case <-rl.stop:
			return
		}
	}
}

// Stop ends the eviction loop. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// RateLimitMiddleware answers 429 once a client's bucket is empty.
func RateLimitMiddleware(rl *RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(clientIP(r)) {
			rateLimitedTotal.Inc()
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too Many Requests","message":"rate limit exceeded"}`))
			return
		}
		next(w, r)
	}
}

// clientIP identifies the caller, preferring proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.Trim(r.RemoteAddr, "[]")
	}
	return host
}
