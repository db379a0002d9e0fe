package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/pkg/idempotency"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Permissions-Policy"))
}

func TestIdempotencyKeyExtraction(t *testing.T) {
	t.Run("Idempotency-Key preferred", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/missions", nil)
		req.Header.Set("Idempotency-Key", "idem-1")
		req.Header.Set("X-Correlation-ID", "corr-1")
		assert.Equal(t, "idem-1", idempotencyKey(req))
	})

	t.Run("X-Correlation-ID fallback", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/missions", nil)
		req.Header.Set("X-Correlation-ID", "corr-1")
		assert.Equal(t, "corr-1", idempotencyKey(req))
	})

	t.Run("no key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/missions", nil)
		assert.Empty(t, idempotencyKey(req))
	})
}

// newIdempotentEcho builds a router with one JSON POST route behind the
// idempotency middleware, counting handler invocations.
func newIdempotentEcho(store idempotency.Store, calls *int, handlerErr error) *echo.Echo {
	e := echo.New()
	e.POST("/missions", func(c echo.Context) error {
		*calls++
		if handlerErr != nil {
			return handlerErr
		}
		return c.JSON(http.StatusOK, map[string]any{"call": *calls})
	}, idempotencyMiddleware(store))
	return e
}

func postWithKey(e *echo.Echo, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/missions", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIdempotencyMiddleware(t *testing.T) {
	t.Run("no key bypasses the store", func(t *testing.T) {
		calls := 0
		e := newIdempotentEcho(idempotency.NewMemoryStore(), &calls, nil)

		postWithKey(e, "")
		postWithKey(e, "")
		assert.Equal(t, 2, calls)
	})

	t.Run("duplicate replays the cached response verbatim", func(t *testing.T) {
		calls := 0
		e := newIdempotentEcho(idempotency.NewMemoryStore(), &calls, nil)

		first := postWithKey(e, "key-1")
		require.Equal(t, http.StatusOK, first.Code)

		second := postWithKey(e, "key-1")
		assert.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
		assert.Equal(t, 1, calls, "handler must run once")
	})

	t.Run("in-flight duplicate gets 409", func(t *testing.T) {
		store := idempotency.NewMemoryStore()
		calls := 0
		e := newIdempotentEcho(store, &calls, nil)

		// Claim the composite key as another request would.
		state, _, err := store.Begin(context.Background(), "key-2:POST:/missions")
		require.NoError(t, err)
		require.Equal(t, idempotency.StateNew, state)

		rec := postWithKey(e, "key-2")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("handler failure releases the claim for retry", func(t *testing.T) {
		store := idempotency.NewMemoryStore()
		calls := 0

		failing := newIdempotentEcho(store, &calls, echo.NewHTTPError(http.StatusBadGateway, "down"))
		rec := postWithKey(failing, "key-3")
		require.Equal(t, http.StatusBadGateway, rec.Code)

		succeeding := newIdempotentEcho(store, &calls, nil)
		rec = postWithKey(succeeding, "key-3")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, calls, "retry must reach the handler")
	})

	t.Run("identity includes method and path", func(t *testing.T) {
		store := idempotency.NewMemoryStore()
		calls := 0
		e := echo.New()
		handler := func(c echo.Context) error {
			calls++
			return c.JSON(http.StatusOK, map[string]any{"call": calls})
		}
		e.POST("/missions", handler, idempotencyMiddleware(store))
		e.POST("/other", handler, idempotencyMiddleware(store))

		req := httptest.NewRequest("POST", "/missions", nil)
		req.Header.Set("Idempotency-Key", "key-4")
		e.ServeHTTP(httptest.NewRecorder(), req)

		req = httptest.NewRequest("POST", "/other", nil)
		req.Header.Set("Idempotency-Key", "key-4")
		e.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, 2, calls, "same key on a different path is a different identity")
	})
}
