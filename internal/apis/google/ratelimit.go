package google

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ServiceType identifies a Google API for rate limiting purposes.
type ServiceType string

const (
	// ServiceDrive is the Google Drive API.
	ServiceDrive ServiceType = "drive"
	// ServiceHealthcare is the Cloud Healthcare API.
	ServiceHealthcare ServiceType = "healthcare"
	// ServicePlaceActions is the My Business Place Actions API.
	ServicePlaceActions ServiceType = "placeactions"
	// ServiceSDM is the Smart Device Management API.
	ServiceSDM ServiceType = "sdm"
)

// HeaderRetryAfter is the retry-after header (seconds).
const HeaderRetryAfter = "Retry-After"

// RateLimitConfig holds rate limiting configuration for a service.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimits provides conservative defaults for each Google API.
// These are well below Google's published per-user quotas.
var DefaultRateLimits = map[ServiceType]RateLimitConfig{
	ServiceDrive:        {RequestsPerSecond: 8.0, BurstSize: 10}, // Google allows 10/sec/user
	ServiceHealthcare:   {RequestsPerSecond: 10.0, BurstSize: 20},
	ServicePlaceActions: {RequestsPerSecond: 5.0, BurstSize: 5},
	ServiceSDM:          {RequestsPerSecond: 1.0, BurstSize: 5}, // device commands are tightly metered
}

// RateLimiter paces requests to a Google API with a token bucket and honours
// the backoff period announced by a 429 response. It never retries a request;
// it only delays the next one.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
	service ServiceType
}

// NewRateLimiter creates a new rate limiter for the specified service.
func NewRateLimiter(service ServiceType) *RateLimiter {
	cfg, ok := DefaultRateLimits[service]
	if !ok {
		// Default fallback
		cfg = RateLimitConfig{RequestsPerSecond: 5.0, BurstSize: 10}
	}

	r := NewRateLimiterWithConfig(cfg)
	r.service = service
	return r
}

// NewRateLimiterWithConfig creates a rate limiter with custom configuration.
func NewRateLimiterWithConfig(cfg RateLimitConfig) *RateLimiter {
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
	}
}

// Service returns the service the limiter was created for, if any.
func (r *RateLimiter) Service() ServiceType {
	return r.service
}

// Wait blocks until a request can be made without exceeding the rate limit.
// It also respects any backoff period set by RecordRateLimitError.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		timer := time.NewTimer(time.Until(retryAt))
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimitError sets a backoff period after a 429 response.
func (r *RateLimiter) RecordRateLimitError(retryAfterSeconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retryAfterSeconds <= 0 {
		// Default backoff: 60 seconds
		retryAfterSeconds = 60
	}

	r.retryAt = time.Now().Add(time.Duration(retryAfterSeconds) * time.Second)
}

// RecordResponse inspects a response and records a backoff when it is a 429.
func (r *RateLimiter) RecordResponse(resp *http.Response) {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return
	}
	seconds, _ := strconv.Atoi(resp.Header.Get(HeaderRetryAfter))
	r.RecordRateLimitError(seconds)
}

// RetryAt returns the end of the current backoff period (zero if none).
func (r *RateLimiter) RetryAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryAt
}

// Allow checks if a request can be made immediately without blocking.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		return false
	}

	return r.limiter.Allow()
}
