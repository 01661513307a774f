package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewRateLimiter(t *testing.T) {
	logger, _ := newBufLogger()
	rl := NewRateLimiter(10, time.Minute, logger)
	defer rl.Stop()

	require.NotNil(t, rl)
	assert.Equal(t, 10, rl.rate)
	assert.Equal(t, time.Minute, rl.window)
}

func TestRateLimiter_Allow(t *testing.T) {
	logger, _ := newBufLogger()
	rl := NewRateLimiter(3, time.Minute, logger)
	defer rl.Stop()

	// Первые rate запросов проходят
	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d should be allowed", i)
	}

	// Следующий отклоняется
	assert.False(t, rl.Allow("10.0.0.1"))

	// Другой ключ не задет
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiter_RefillAfterWindow(t *testing.T) {
	logger, _ := newBufLogger()
	rl := NewRateLimiter(1, 10*time.Millisecond, logger)
	defer rl.Stop()

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	time.Sleep(15 * time.Millisecond)
	assert.True(t, rl.Allow("10.0.0.1"), "tokens should refill after window")
}

func TestRateLimitMiddleware(t *testing.T) {
	logger, logBuf := newBufLogger()
	handler := RateLimitMiddleware(nil, 2, time.Minute, logger)(okHandler())

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
	assert.Contains(t, logBuf.String(), "Rate limit exceeded")
}

func TestRateLimitMiddleware_PerPathLimits(t *testing.T) {
	logger, _ := newBufLogger()

	limits := []PathRateLimit{
		{Path: "/api/v1/uploads", Rate: 1, Window: time.Minute},
	}
	handler := RateLimitMiddleware(limits, 10, time.Minute, logger)(okHandler())

	do := func(path string) int {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	// Жесткий лимит на uploads
	assert.Equal(t, http.StatusOK, do("/api/v1/uploads"))
	assert.Equal(t, http.StatusTooManyRequests, do("/api/v1/uploads"))

	// Sync живет на дефолтном лимите
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, do("/api/v1/sync"))
	}
}

func TestRateLimiter_CleanupOldBuckets(t *testing.T) {
	logger, _ := newBufLogger()
	rl := NewRateLimiter(5, 5*time.Millisecond, logger)
	defer rl.Stop()

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")

	time.Sleep(15 * time.Millisecond)
	rl.cleanupOldBuckets()

	rl.mu.RLock()
	defer rl.mu.RUnlock()
	assert.Empty(t, rl.buckets)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{
			name:     "remote addr only",
			remote:   "192.168.1.1:1234",
			expected: "192.168.1.1:1234",
		},
		{
			name:     "x-forwarded-for single",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.5"},
			remote:   "10.0.0.1:1234",
			expected: "203.0.113.5",
		},
		{
			name:     "x-forwarded-for chain takes first",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.5,10.0.0.2"},
			remote:   "10.0.0.1:1234",
			expected: "203.0.113.5",
		},
		{
			name:     "x-real-ip",
			headers:  map[string]string{"X-Real-IP": "203.0.113.7"},
			remote:   "10.0.0.1:1234",
			expected: "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, getClientIP(req))
		})
	}
}
