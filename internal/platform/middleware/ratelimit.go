package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultRateLimitConfig returns default rate limiting settings.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 100,
		BurstSize:         200,
	}
}

// bucketIdleEviction is the age past which idle buckets are dropped on the
// next sweep.
const bucketIdleEviction = 10 * time.Minute

// sweepThreshold is the bucket count that triggers an eviction sweep when a
// new key arrives. Keys are auth subjects or client IPs, so the map only
// grows when new callers appear.
const sweepThreshold = 4096

// tokenBucket implements a token bucket rate limiter.
type tokenBucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(rate float64, burst int) *tokenBucket {
	return &tokenBucket{
		tokens:     float64(burst),
		maxTokens:  float64(burst),
		refillRate: rate,
		lastRefill: time.Now(),
	}
}

func (b *tokenBucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * b.refillRate
	if b.tokens > b.maxTokens {
		b.tokens = b.maxTokens
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

func (b *tokenBucket) retryAfter() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.refillRate <= 0 {
		return 1
	}
	return int((1-b.tokens)/b.refillRate) + 1
}

// idle reports whether the bucket has been untouched since the cutoff.
func (b *tokenBucket) idle(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastRefill.Before(cutoff)
}

// rateLimiterStore holds per-key token buckets.
type rateLimiterStore struct {
	buckets map[string]*tokenBucket
	mu      sync.RWMutex
	config  RateLimitConfig
}

func newRateLimiterStore(cfg RateLimitConfig) *rateLimiterStore {
	return &rateLimiterStore{
		buckets: make(map[string]*tokenBucket),
		config:  cfg,
	}
}

func (s *rateLimiterStore) getBucket(key string) *tokenBucket {
	s.mu.RLock()
	bucket, ok := s.buckets[key]
	s.mu.RUnlock()
	if ok {
		return bucket
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Double-check after acquiring write lock
	if bucket, ok := s.buckets[key]; ok {
		return bucket
	}
	if len(s.buckets) >= sweepThreshold {
		s.evictIdleLocked()
	}
	bucket = newTokenBucket(s.config.RequestsPerSecond, s.config.BurstSize)
	s.buckets[key] = bucket
	return bucket
}

// evictIdleLocked drops buckets that have not refilled recently. Caller
// holds the write lock.
func (s *rateLimiterStore) evictIdleLocked() {
	cutoff := time.Now().Add(-bucketIdleEviction)
	for key, bucket := range s.buckets {
		if bucket.idle(cutoff) {
			delete(s.buckets, key)
		}
	}
}

// RateLimit returns middleware that applies a token bucket per caller. The
// bucket key is the authenticated subject when one is set, scoped by client
// IP, so a shared credential cannot starve other addresses. Rejections are
// a 429 with a FHIR OperationOutcome body and a Retry-After hint.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	store := newRateLimiterStore(cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if sub, ok := c.Get("auth_subject").(string); ok && sub != "" {
				key = sub + ":" + key
			}

			limit := strconv.FormatFloat(cfg.RequestsPerSecond, 'f', 0, 64)
			bucket := store.getBucket(key)
			if !bucket.allow() {
				h := c.Response().Header()
				h.Set("Retry-After", strconv.Itoa(bucket.retryAfter()))
				h.Set("X-RateLimit-Limit", limit)
				h.Set("X-RateLimit-Remaining", "0")
				return writeOutcome(c, http.StatusTooManyRequests, "throttled",
					"Rate limit exceeded")
			}

			c.Response().Header().Set("X-RateLimit-Limit", limit)
			return next(c)
		}
	}
}
