package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_PerShop(t *testing.T) {
	rl := NewRateLimiter(0.001, 2, time.Minute)
	defer rl.Stop()

	r := mux.NewRouter()
	r.Handle("/shops/{shopId}/queue", rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))).Methods(http.MethodPost)

	post := func(shop string) int {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/shops/"+shop+"/queue", nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, post("a"))
	assert.Equal(t, http.StatusCreated, post("a"))
	assert.Equal(t, http.StatusTooManyRequests, post("a"))

	// другая парикмахерская со своим лимитом
	assert.Equal(t, http.StatusCreated, post("b"))
}

func TestRateLimiter_CleanupDropsIdleKeys(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)
	defer rl.Stop()

	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("shop:a")
	now = now.Add(2 * time.Minute)
	rl.Allow("shop:b")
	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.limiters, "shop:a")
	assert.Contains(t, rl.limiters, "shop:b")
}

func TestLimitKey_FallsBackToClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
	req.RemoteAddr = "10.0.0.7:5123"

	assert.Equal(t, "ip:10.0.0.7", limitKey(req))
}
