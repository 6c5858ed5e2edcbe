package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func setupLimiterRouter(t *testing.T, rl *RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func doGet(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAboveBurst(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	rl := NewRateLimiter(client, RateLimiterConfig{
		RequestsPerSecond: 1,
		BurstCapacity:     2,
		Enabled:           true,
	}, zaptest.NewLogger(t))
	r := setupLimiterRouter(t, rl)

	assert.Equal(t, http.StatusOK, doGet(r))
	assert.Equal(t, http.StatusOK, doGet(r))
	assert.Equal(t, http.StatusTooManyRequests, doGet(r))
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(nil, RateLimiterConfig{Enabled: false}, zaptest.NewLogger(t))
	r := setupLimiterRouter(t, rl)

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, doGet(r))
	}
}

func TestRateLimiterFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	rl := NewRateLimiter(client, RateLimiterConfig{
		RequestsPerSecond: 1,
		BurstCapacity:     1,
		Enabled:           true,
	}, zaptest.NewLogger(t))
	r := setupLimiterRouter(t, rl)

	mr.Close()

	// Redis being down must not take the API down with it
	assert.Equal(t, http.StatusOK, doGet(r))
}
