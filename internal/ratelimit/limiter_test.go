package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		c := Config{RequestsPerSecond: 5}
		require.NoError(t, c.Validate())
		assert.Equal(t, 5, c.BurstSize)
		assert.Equal(t, 10000, c.MaxKeys)
		assert.Equal(t, 5*time.Minute, c.CleanupPeriod)
	})

	t.Run("rejects zero rate", func(t *testing.T) {
		c := Config{}
		assert.Error(t, c.Validate())
	})
}

func TestLimiterAllow(t *testing.T) {
	l, err := NewLimiter(Config{RequestsPerSecond: 1, BurstSize: 2})
	require.NoError(t, err)

	now := time.Now()
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"), "burst exhausted")
	assert.True(t, l.Allow("b"), "keys have separate buckets")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("a"), "one token refilled")
	assert.Equal(t, 2, l.Keys())
}

func TestLimiterCleanup(t *testing.T) {
	l, err := NewLimiter(Config{RequestsPerSecond: 1, CleanupPeriod: time.Minute})
	require.NoError(t, err)

	now := time.Now()
	l.now = func() time.Time { return now }
	l.lastCleanup = now

	l.Allow("stale")
	now = now.Add(2 * time.Minute)
	l.Allow("fresh")

	assert.Equal(t, 1, l.Keys())
}

func TestHTTPMiddleware(t *testing.T) {
	l, err := NewLimiter(Config{RequestsPerSecond: 1, BurstSize: 1})
	require.NoError(t, err)

	handler := l.HTTPMiddleware(IPBasedKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/api/pipelines", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusNoContent, serve("10.0.0.1:5000").Code)

	rr := serve("10.0.0.1:5001")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("Retry-After"))
	assert.Contains(t, rr.Body.String(), "rate_limit")

	assert.Equal(t, http.StatusNoContent, serve("10.0.0.2:5000").Code)
}

func TestIPBasedKey(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.1:80", "ip:203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.2"}, "10.0.0.1:80", "ip:198.51.100.2"},
		{"peer address", nil, "192.0.2.10:5555", "ip:192.0.2.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, IPBasedKey(req))
		})
	}
}
