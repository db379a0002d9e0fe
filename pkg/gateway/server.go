package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echo "github.com/labstack/echo/v5"
)

// Server is the gateway's HTTP front.
type Server struct {
	cfg      *Config
	registry *Registry
	router   *Router
	proxy    *Proxy

	jwtSecret []byte

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer assembles the gateway from its configuration. jwtSecret may be
// empty when no route sets require_auth.
func NewServer(cfg *Config, jwtSecret []byte) (*Server, error) {
	for _, route := range cfg.Routes {
		if route.RequireAuth && len(jwtSecret) == 0 {
			return nil, fmt.Errorf("route %q requires auth but no JWT secret is configured", route.PathPrefix)
		}
	}

	registry := NewRegistry(cfg)
	s := &Server{
		cfg:       cfg,
		registry:  registry,
		router:    NewRouter(cfg),
		proxy:     NewProxy(cfg, registry),
		jwtSecret: jwtSecret,
	}

	e := echo.New()
	e.GET("/health", s.healthHandler)
	e.Any("/*", s.proxyHandler)
	s.echo = e

	return s, nil
}

// Registry exposes the backend registry so the caller can start probes.
func (s *Server) Registry() *Registry { return s.registry }

// Start begins serving on the configured address. It blocks until the server
// stops.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP lets tests drive the router without a listening socket.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// proxyHandler resolves the route and forwards the request.
func (s *Server) proxyHandler(c echo.Context) error {
	r := c.Request()

	route, ok := s.router.Match(r.URL.Path)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no route for path")
	}

	if route.RequireAuth {
		if err := s.verifyBearer(r); err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing credential")
		}
	}

	s.proxy.Forward(c.Response(), r, route)
	return nil
}

// verifyBearer validates the Authorization bearer token against the shared
// HMAC secret. The gateway only authenticates; identity claims are forwarded
// untouched for the backend to authorise.
func (s *Server) verifyBearer(r *http.Request) error {
	header := r.Header.Get("Authorization")
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return fmt.Errorf("missing bearer token")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return fmt.Errorf("invalid token: %w", err)
	}
	return nil
}

// aggregateHealth is the gateway health payload.
type aggregateHealth struct {
	Gateway  string                   `json:"gateway"`
	Services map[string]ServiceHealth `json:"services"`
	Summary  healthSummary            `json:"summary"`
}

type healthSummary struct {
	Healthy    int     `json:"healthy"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// healthHandler aggregates every backend's cached probe result. The gateway
// itself is healthy as long as it can answer; backend state is reported, not
// escalated into the status code.
func (s *Server) healthHandler(c echo.Context) error {
	services := s.registry.Snapshot()

	healthy := 0
	for _, h := range services {
		if h.Healthy {
			healthy++
		}
	}

	summary := healthSummary{
		Healthy: healthy,
		Total:   len(services),
	}
	if summary.Total > 0 {
		summary.Percentage = float64(healthy) / float64(summary.Total) * 100
	}

	return c.JSON(http.StatusOK, &aggregateHealth{
		Gateway:  "healthy",
		Services: services,
		Summary:  summary,
	})
}
