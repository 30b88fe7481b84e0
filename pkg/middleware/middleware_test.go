package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivwell/api/pkg/auth"
	"github.com/vivwell/api/pkg/cache"
	"github.com/vivwell/api/pkg/models"
)

const testSecret = "vivwell-test-jwt-secret"

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func doRequest(e *echo.Echo, handler echo.HandlerFunc, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler(c)
	return rec
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()

	t.Run("allows up to burst then rejects", func(t *testing.T) {
		rl := NewRateLimiter(60, 3)
		handler := rl.RateLimitMiddleware()(okHandler)

		for i := 0; i < 3; i++ {
			rec := doRequest(e, handler, "")
			assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
		}

		rec := doRequest(e, handler, "")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "rate_limit_exceeded", resp.Error)
	})

	t.Run("limits are per IP", func(t *testing.T) {
		rl := NewRateLimiter(60, 1)
		handler := rl.RateLimitMiddleware()(okHandler)

		makeReq := func(ip string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(echo.HeaderXRealIP, ip)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			_ = handler(c)
			return rec
		}

		assert.Equal(t, http.StatusOK, makeReq("203.0.113.10").Code)
		assert.Equal(t, http.StatusTooManyRequests, makeReq("203.0.113.10").Code)
		assert.Equal(t, http.StatusOK, makeReq("203.0.113.20").Code)
	})
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()
	handler := RequireAuth(testSecret, nil)(func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("email").(string))
	})

	t.Run("valid token passes and sets claims", func(t *testing.T) {
		token, err := auth.GenerateJWT("admin@vivwell.co", "admin", testSecret, 1)
		require.NoError(t, err)

		rec := doRequest(e, handler, "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin@vivwell.co", rec.Body.String())
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rec := doRequest(e, handler, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer header rejected", func(t *testing.T) {
		rec := doRequest(e, handler, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		token, err := auth.GenerateJWT("admin@vivwell.co", "admin", "other-secret", 1)
		require.NoError(t, err)

		rec := doRequest(e, handler, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAuth_BlacklistedToken(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })
	blacklist := auth.NewTokenBlacklist(client)

	e := echo.New()
	handler := RequireAuth(testSecret, blacklist)(okHandler)

	token, err := auth.GenerateJWT("admin@vivwell.co", "admin", testSecret, 1)
	require.NoError(t, err)

	rec := doRequest(e, handler, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, blacklist.Add(context.Background(), token, time.Hour))

	rec = doRequest(e, handler, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
