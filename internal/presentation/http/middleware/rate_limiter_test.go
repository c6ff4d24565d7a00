package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitedRouter(rl *ClientRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/checkout", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestRateLimiterEnforcesConfiguredBurst(t *testing.T) {
	// Mirrors how the router derives the limiter from the RATE_LIMIT_*
	// settings: requests spread over a duration, burst of the same size.
	requests, duration := 2, 60
	rl := NewClientRateLimiter(RateLimiterConfig{
		RequestsPerSecond: float64(requests) / float64(duration),
		BurstSize:         requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router := newRateLimitedRouter(rl)

	for i := 0; i < requests; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, w.Body.String(), "too_many_requests")
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	rl := NewClientRateLimiter(DefaultRateLimiterConfig())
	router := newRateLimitedRouter(rl)

	for _, ip := range []string{"10.0.0.1:1234", "10.0.0.2:1234"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.RemoteAddr = ip
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	stats := rl.Stats()
	assert.Equal(t, 2, stats["active_clients"])
}
