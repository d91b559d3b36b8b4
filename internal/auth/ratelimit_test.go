package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_PerKeyBurst(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// Other clients have their own bucket.
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1)
	router := setupRouter()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "192.0.2.7:5555"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send().Code)
	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRateLimiter_SweepDropsIdleClients(t *testing.T) {
	clock := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(0.001, 1)
	limiter.now = func() time.Time { return clock }

	for i := 0; i < 100; i++ {
		limiter.Allow(fmt.Sprintf("198.51.100.%d", i))
	}
	assert.Equal(t, 100, limiter.Tracked())

	clock = clock.Add(5 * time.Minute)
	assert.False(t, limiter.Allow("198.51.100.1"), "recent client keeps its empty bucket")

	clock = clock.Add(6 * time.Minute)
	assert.Equal(t, 99, limiter.Sweep(10*time.Minute))
	assert.Equal(t, 1, limiter.Tracked())

	// A swept client starts over with a full bucket.
	assert.True(t, limiter.Allow("198.51.100.2"))
	assert.Equal(t, 2, limiter.Tracked())
}

func TestRateLimiter_RunSweepsUntilCanceled(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	limiter.Allow("203.0.113.9")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		limiter.Run(ctx, time.Millisecond, 0)
		close(done)
	}()

	assert.Eventually(t, func() bool { return limiter.Tracked() == 0 }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
