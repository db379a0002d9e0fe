package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/orchestrator"
)

// CreateMissionRequest is the HTTP request body for POST /missions.
type CreateMissionRequest struct {
	Objective     string         `json:"objective"`
	Context       map[string]any `json:"context,omitempty"`
	Priority      string         `json:"priority,omitempty"`
	ForceResearch bool           `json:"force_research,omitempty"`
}

// createMissionHandler handles POST /missions. An X-Correlation-ID or
// Idempotency-Key header scopes the request to at most one mission; the
// idempotency middleware replays the cached response for duplicates, and the
// unique key column catches duplicates that outlive the cache.
func (s *Server) createMissionHandler(c echo.Context) error {
	var req CreateMissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Objective == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "objective is required")
	}

	m, err := s.orch.StartMission(c.Request().Context(), orchestrator.StartMissionInput{
		Objective:      req.Objective,
		Initiator:      extractInitiator(c),
		Context:        req.Context,
		Priority:       req.Priority,
		ForceResearch:  req.ForceResearch,
		IdempotencyKey: idempotencyKey(c.Request()),
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, newMissionResponse(m))
}

// getMissionHandler handles GET /missions/:id.
func (s *Server) getMissionHandler(c echo.Context) error {
	missionID := c.PathParam("id")
	if missionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mission id is required")
	}

	m, err := s.missions.GetMission(c.Request().Context(), missionID, true)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, newMissionResponse(m))
}

// listMissionsHandler handles GET /missions.
func (s *Server) listMissionsHandler(c echo.Context) error {
	filters := models.MissionFilters{
		Status:    c.QueryParam("status"),
		Initiator: c.QueryParam("initiator"),
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filters.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	result, err := s.missions.ListMissions(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &MissionListResponse{
		Missions:   make([]*MissionResponse, 0, len(result.Missions)),
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	}
	for _, m := range result.Missions {
		resp.Missions = append(resp.Missions, newMissionResponse(m))
	}
	return c.JSON(http.StatusOK, resp)
}

// missionEventsHandler handles GET /missions/:id/events. The ordered
// persisted log is also the WS catch-up source, so clients can always
// reconcile against it.
func (s *Server) missionEventsHandler(c echo.Context) error {
	missionID := c.PathParam("id")
	if missionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mission id is required")
	}

	// Ensure the mission exists so an empty log is distinguishable from a
	// bogus id.
	if _, err := s.missions.GetMission(c.Request().Context(), missionID, false); err != nil {
		return mapServiceError(err)
	}

	sinceSeq := 0
	if v := c.QueryParam("since"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since: must be a non-negative integer")
		}
		sinceSeq = n
	}

	rows, err := s.eventsSvc.GetEventsSince(c.Request().Context(), missionID, sinceSeq)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]MissionEventResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, MissionEventResponse{
			Sequence:  row.Sequence,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"events": out})
}

// cancelMissionHandler handles POST /missions/:id/cancel. The DB transition
// is authoritative; the local worker pool is poked afterwards so an in-flight
// run on this node stops at its next step boundary. Runs on other nodes stop
// when their heartbeat sees the terminal status or via orphan detection.
func (s *Server) cancelMissionHandler(c echo.Context) error {
	missionID := c.PathParam("id")
	if missionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mission id is required")
	}

	m, err := s.orch.CancelMission(c.Request().Context(), missionID)
	if err != nil {
		return mapServiceError(err)
	}

	if s.workerPool != nil {
		s.workerPool.CancelMission(m.ID)
	}

	return c.JSON(http.StatusOK, &CancelResponse{
		MissionID: m.ID,
		Message:   "Mission cancellation requested",
	})
}

// extractInitiator resolves the caller identity from proxy headers.
// Priority: X-Forwarded-User > X-Forwarded-Email > X-Remote-User > "api-client"
func extractInitiator(c echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.Request().Header.Get("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}
