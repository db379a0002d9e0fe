// Package api exposes the control plane over HTTP and WebSocket: the mission
// API, the mission event stream, the chat WebSocket authority, and the
// idempotency middleware.
package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/helmsman-ai/helmsman/pkg/bus"
	"github.com/helmsman-ai/helmsman/pkg/config"
	"github.com/helmsman-ai/helmsman/pkg/database"
	"github.com/helmsman-ai/helmsman/pkg/events"
	"github.com/helmsman-ai/helmsman/pkg/idempotency"
	"github.com/helmsman-ai/helmsman/pkg/orchestrator"
	"github.com/helmsman-ai/helmsman/pkg/queue"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// Server is the control plane's HTTP/WS front door.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client

	orch      *orchestrator.Orchestrator
	missions  *services.MissionService
	eventsSvc *services.EventService

	workerPool *queue.WorkerPool
	bus        *bus.Bus
	listener   *events.NotifyListener

	auth *Authenticator
	idem idempotency.Store

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer wires the front door over the already-constructed services.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	orch *orchestrator.Orchestrator,
	missions *services.MissionService,
	eventsSvc *services.EventService,
	workerPool *queue.WorkerPool,
	b *bus.Bus,
	listener *events.NotifyListener,
	auth *Authenticator,
	idem idempotency.Store,
) *Server {
	s := &Server{
		cfg:        cfg,
		dbClient:   dbClient,
		orch:       orch,
		missions:   missions,
		eventsSvc:  eventsSvc,
		workerPool: workerPool,
		bus:        b,
		listener:   listener,
		auth:       auth,
		idem:       idem,
	}
	s.echo = s.buildRouter()
	return s
}

// buildRouter assembles routes and middleware.
func (s *Server) buildRouter() *echo.Echo {
	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)

	missions := e.Group("/missions")
	missions.POST("", s.createMissionHandler, idempotencyMiddleware(s.idem))
	missions.GET("", s.listMissionsHandler)
	missions.GET("/:id", s.getMissionHandler)
	missions.GET("/:id/events", s.missionEventsHandler)
	missions.POST("/:id/cancel", s.cancelMissionHandler)
	missions.GET("/:id/ws", s.missionWSHandler)

	e.GET("/api/chat/ws", s.chatWSHandler(customerChatPolicy))
	e.GET("/admin/api/chat/ws", s.chatWSHandler(adminChatPolicy))

	return e
}

// Start begins serving on addr. It blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
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

// wsOriginPatterns returns the origin allowlist for WebSocket accepts:
// the dashboard host plus any configured extras.
func (s *Server) wsOriginPatterns() []string {
	var patterns []string
	if s.cfg.DashboardURL != "" {
		if u, err := url.Parse(s.cfg.DashboardURL); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
		}
	}
	patterns = append(patterns, s.cfg.AllowedWSOrigins...)
	return patterns
}
