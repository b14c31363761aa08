// Package ratelimit throttles API clients with one token bucket per key
package ratelimit

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"pipeline-studio/internal/common/errors"
	"pipeline-studio/internal/common/logging"
)

// Config holds the per-key bucket settings
type Config struct {
	RequestsPerSecond int
	BurstSize         int
	MaxKeys           int
	CleanupPeriod     time.Duration
}

// DefaultConfig returns the settings used when only the rate is known
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 20,
		BurstSize:         40,
		MaxKeys:           10000,
		CleanupPeriod:     5 * time.Minute,
	}
}

// Validate fills unset cleanup settings and rejects non-positive rates
func (c *Config) Validate() error {
	if c.RequestsPerSecond <= 0 {
		return errors.ConfigError("requests per second must be positive").WithContext("value", c.RequestsPerSecond)
	}
	if c.BurstSize <= 0 {
		c.BurstSize = c.RequestsPerSecond
	}
	if c.MaxKeys <= 0 {
		c.MaxKeys = 10000
	}
	if c.CleanupPeriod <= 0 {
		c.CleanupPeriod = 5 * time.Minute
	}
	return nil
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// Limiter keeps a token bucket for every key it has seen recently
type Limiter struct {
	mu          sync.Mutex
	config      Config
	limiters    map[string]*limiterEntry
	lastCleanup time.Time
	now         func() time.Time
}

// NewLimiter creates a limiter from a validated copy of config
func NewLimiter(config Config) (*Limiter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Limiter{
		config:      config,
		limiters:    make(map[string]*limiterEntry),
		lastCleanup: time.Now(),
		now:         time.Now,
	}, nil
}

// Allow takes a token from key's bucket, reporting false when it is empty
func (l *Limiter) Allow(key string) bool {
	lim, now := l.limiterFor(key)
	return lim.AllowN(now, 1)
}

// Keys returns how many buckets are live
func (l *Limiter) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *Limiter) limiterFor(key string) (*rate.Limiter, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastCleanup) > l.config.CleanupPeriod {
		l.cleanup(now)
	}

	entry, exists := l.limiters[key]
	if !exists {
		entry = &limiterEntry{
			limiter: rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.BurstSize),
		}
		l.limiters[key] = entry
		if len(l.limiters) > l.config.MaxKeys {
			l.cleanup(now)
		}
	}
	entry.lastUsed = now
	return entry.limiter, now
}

// cleanup drops buckets idle for longer than the cleanup period
func (l *Limiter) cleanup(now time.Time) {
	cutoff := now.Add(-l.config.CleanupPeriod)
	for key, entry := range l.limiters {
		if entry.lastUsed.Before(cutoff) {
			delete(l.limiters, key)
		}
	}
	l.lastCleanup = now
}

// HTTPMiddleware rejects requests with 429 once their key's bucket is empty.
// Requests without a key pass through.
func (l *Limiter) HTTPMiddleware(keyFunc func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" || l.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			logging.GetGlobalLogger().WithContext(r.Context()).Warn("Rate limit exceeded",
				logging.String("key", key),
				logging.String("path", r.URL.Path),
			)

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", l.config.RequestsPerSecond))
			w.Header().Set("Retry-After", "1")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]string{
				"error": "rate limit exceeded",
				"type":  string(errors.ErrTypeRateLimit),
			})
		})
	}
}

// IPBasedKey keys requests by the first forwarded address, falling back to the peer address
func IPBasedKey(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip != "" {
		ip = strings.TrimSpace(strings.Split(ip, ",")[0])
	}
	if ip == "" {
		ip = r.Header.Get("X-Real-IP")
	}
	if ip == "" {
		ip = r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
	}
	return "ip:" + ip
}
