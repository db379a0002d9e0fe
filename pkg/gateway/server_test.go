package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEchoBackend returns a backend that reports the path and query it saw.
func newEchoBackend(t *testing.T) *httptest.Server {
	t.Helper()
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"path":      r.URL.Path,
			"query":     r.URL.RawQuery,
			"forwarded": r.Header.Get("X-Forwarded-For"),
		})
	}))
	t.Cleanup(backend.Close)
	return backend
}

func newTestGateway(t *testing.T, cfg *Config, secret []byte) *Server {
	t.Helper()
	s, err := NewServer(cfg, secret)
	require.NoError(t, err)
	return s
}

func TestProxyForwardsToBackend(t *testing.T) {
	backend := newEchoBackend(t)

	cfg := &Config{
		ProbeInterval: time.Minute,
		ProbeTimeout:  time.Second,
		Services: []ServiceConfig{
			{Name: "control-plane", BaseURL: backend.URL, HealthPath: "/health", Timeout: 5 * time.Second, RetryCount: 1},
		},
		Routes: []RouteConfig{
			{PathPrefix: "/api", TargetService: "control-plane", StripPrefix: true},
		},
	}
	s := newTestGateway(t, cfg, nil)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/api/missions?limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/missions", body["path"], "matched prefix must be stripped")
	assert.Equal(t, "limit=5", body["query"])
}

func TestProxyUnroutedPathWithoutDefault(t *testing.T) {
	backend := newEchoBackend(t)

	cfg := &Config{
		ProbeInterval: time.Minute,
		ProbeTimeout:  time.Second,
		Services: []ServiceConfig{
			{Name: "control-plane", BaseURL: backend.URL, HealthPath: "/health", Timeout: time.Second},
		},
		Routes: []RouteConfig{
			{PathPrefix: "/api", TargetService: "control-plane"},
		},
	}
	s := newTestGateway(t, cfg, nil)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/elsewhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProxyExhaustedRetriesReturn502(t *testing.T) {
	// A backend that is already gone: every attempt fails at the dial.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	cfg := &Config{
		ProbeInterval: time.Minute,
		ProbeTimeout:  time.Second,
		Services: []ServiceConfig{
			{Name: "control-plane", BaseURL: deadURL, HealthPath: "/health", Timeout: time.Second, RetryCount: 2},
		},
		Routes: []RouteConfig{
			{PathPrefix: "/api", TargetService: "control-plane"},
		},
	}
	s := newTestGateway(t, cfg, nil)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/api/missions", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestProxyRequireAuth(t *testing.T) {
	backend := newEchoBackend(t)
	secret := []byte("gateway-secret")

	cfg := &Config{
		ProbeInterval: time.Minute,
		ProbeTimeout:  time.Second,
		Services: []ServiceConfig{
			{Name: "control-plane", BaseURL: backend.URL, HealthPath: "/health", Timeout: time.Second},
		},
		Routes: []RouteConfig{
			{PathPrefix: "/api", TargetService: "control-plane", RequireAuth: true},
		},
	}
	s := newTestGateway(t, cfg, secret)

	t.Run("missing token is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest("GET", "/api/missions", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/missions", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes through", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString(secret)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/missions", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthRouteWithoutSecretIsRejected(t *testing.T) {
	cfg := &Config{
		ProbeInterval: time.Minute,
		ProbeTimeout:  time.Second,
		Services: []ServiceConfig{
			{Name: "a", BaseURL: "http://localhost:1", HealthPath: "/health", Timeout: time.Second},
		},
		Routes: []RouteConfig{
			{PathPrefix: "/api", TargetService: "a", RequireAuth: true},
		},
	}
	_, err := NewServer(cfg, nil)
	assert.Error(t, err)
}

func TestAggregateHealth(t *testing.T) {
	healthy := newEchoBackend(t)

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	cfg := &Config{
		ProbeInterval: time.Minute,
		ProbeTimeout:  time.Second,
		Services: []ServiceConfig{
			{Name: "control-plane", BaseURL: healthy.URL, HealthPath: "/health", Timeout: time.Second},
			{Name: "dashboard", BaseURL: deadURL, HealthPath: "/health", Timeout: time.Second},
		},
	}
	s := newTestGateway(t, cfg, nil)
	s.Registry().probeAll(context.Background())

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body aggregateHealth
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Gateway)
	assert.True(t, body.Services["control-plane"].Healthy)
	assert.False(t, body.Services["dashboard"].Healthy)
	assert.NotEmpty(t, body.Services["dashboard"].Error)
	assert.Equal(t, 1, body.Summary.Healthy)
	assert.Equal(t, 2, body.Summary.Total)
	assert.InDelta(t, 50.0, body.Summary.Percentage, 0.01)
}
