package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/helmsman-ai/helmsman/pkg/events"
	"github.com/helmsman-ai/helmsman/pkg/orchestrator"
)

// Canonical mission-type intents. Anything that isn't a mission-class
// intent is handled as a plain chat turn.
const (
	IntentDefault        = "DEFAULT"
	IntentMissionComplex = "MISSION_COMPLEX"
	IntentDeepAnalysis   = "DEEP_ANALYSIS"
	IntentCodeSearch     = "CODE_SEARCH"
)

// NormalizeMissionType maps the client's free-form mission_type to its
// canonical intent. Known aliases map explicitly; "chat" and empty mean
// DEFAULT; anything else is upper-cased and passed through.
func NormalizeMissionType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "chat":
		return IntentDefault
	case "mission_complex":
		return IntentMissionComplex
	case "deep_analysis":
		return IntentDeepAnalysis
	case "code_search":
		return IntentCodeSearch
	default:
		return strings.ToUpper(strings.TrimSpace(raw))
	}
}

// isMissionIntent reports whether an intent launches a full mission run
// rather than a conversational turn.
func isMissionIntent(intent string) bool {
	switch intent {
	case IntentMissionComplex, IntentDeepAnalysis, IntentCodeSearch:
		return true
	}
	return false
}

// wsPolicy is the role contract for one chat WS route.
type wsPolicy struct {
	// RequiresAdmin gates the route to admin identities when true, and
	// rejects admin identities when false.
	RequiresAdmin bool
	// ForbiddenDetails is the user-visible message sent before the 4403 close.
	ForbiddenDetails string
	// LegacyErrors rewrites assistant_error envelopes to the plain error
	// shape older admin dashboards expect.
	LegacyErrors bool
	// RouteID tags log lines.
	RouteID string
}

var customerChatPolicy = wsPolicy{
	RequiresAdmin:    false,
	ForbiddenDetails: "Admin accounts must use the admin chat endpoint.",
	RouteID:          "chat",
}

var adminChatPolicy = wsPolicy{
	RequiresAdmin:    true,
	ForbiddenDetails: "Administrator access required.",
	LegacyErrors:     true,
	RouteID:          "admin-chat",
}

// chatFrame is one inbound request on the chat WebSocket.
type chatFrame struct {
	Question       string         `json:"question"`
	ConversationID string         `json:"conversation_id,omitempty"`
	MissionType    string         `json:"mission_type,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// chatWSHandler returns the handler for one chat WS route. The socket
// authenticates during the handshake, enforces the route's role policy, then
// serves request/stream turns until the client disconnects.
func (s *Server) chatWSHandler(policy wsPolicy) echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := s.acceptWS(c)
		if err != nil {
			return err
		}

		identity, err := s.authenticateWS(c, conn)
		if err != nil {
			return nil
		}

		ctx := c.Request().Context()

		if identity.IsAdmin() != policy.RequiresAdmin {
			// Explain before closing: a bare 4403 gives the UI nothing to show.
			_ = s.writeEnvelope(ctx, conn, errorFrame(http.StatusForbidden, policy.ForbiddenDetails))
			_ = conn.Close(websocket.StatusCode(CloseForbidden), "forbidden")
			return nil
		}

		slog.Info("Chat WS connected",
			"route", policy.RouteID,
			"user_id", identity.UserID,
			"role", identity.Role)

		s.runChatSession(ctx, conn, identity, policy)
		return nil
	}
}

// runChatSession reads request frames and streams responses until the client
// disconnects. Malformed or empty requests produce an error envelope and keep
// the socket open.
func (s *Server) runChatSession(ctx context.Context, conn *websocket.Conn, identity *Identity, policy wsPolicy) {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return // client gone
		}

		var frame chatFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			if werr := s.writeEnvelope(ctx, conn, errorFrame(http.StatusBadRequest, "invalid request: expected a JSON object")); werr != nil {
				return
			}
			continue
		}
		if strings.TrimSpace(frame.Question) == "" {
			if werr := s.writeEnvelope(ctx, conn, errorFrame(http.StatusBadRequest, "question is required")); werr != nil {
				return
			}
			continue
		}

		intent := NormalizeMissionType(frame.MissionType)

		var turnErr error
		if isMissionIntent(intent) {
			turnErr = s.runMissionTurn(ctx, conn, identity, frame, intent)
		} else {
			turnErr = s.streamChatTurn(ctx, conn, frame, intent, policy)
		}
		if turnErr != nil {
			return
		}
	}
}

// streamChatTurn runs one conversational turn through the orchestrator and
// relays its envelope stream. If the stream ends without any content-bearing
// envelope, an assistant_fallback apology is sent so the client never gets a
// silent completion.
func (s *Server) streamChatTurn(ctx context.Context, conn *websocket.Conn, frame chatFrame, intent string, policy wsPolicy) error {
	out, err := s.orch.StreamChat(ctx, orchestrator.ChatRequest{
		Question:       frame.Question,
		ConversationID: frame.ConversationID,
		Intent:         intent,
		Metadata:       frame.Metadata,
	})
	if err != nil {
		return s.writeEnvelope(ctx, conn, chatTurnError(err))
	}

	contentSent := false
	for env := range out {
		switch env.Type {
		case events.EnvelopeAssistantDelta, events.EnvelopeAssistantFinal, events.EnvelopeToolResultSummary:
			contentSent = true
		case events.EnvelopeAssistantError:
			if policy.LegacyErrors {
				env = legacyErrorFrame(env)
			}
		}
		if err := s.writeEnvelope(ctx, conn, env); err != nil {
			// Drain so the producer goroutine can finish.
			for range out {
			}
			return err
		}
	}

	if !contentSent {
		return s.writeEnvelope(ctx, conn, events.Envelope{
			Type: events.EnvelopeAssistantFallback,
			Payload: map[string]any{
				"message": "I wasn't able to produce a response for that request. Please try rephrasing or try again shortly.",
			},
		})
	}
	return nil
}

// runMissionTurn launches a mission for a mission-class intent and relays its
// lifecycle events inline on the chat socket until the mission reaches a
// terminal state.
func (s *Server) runMissionTurn(ctx context.Context, conn *websocket.Conn, identity *Identity, frame chatFrame, intent string) error {
	missionCtx := frame.Metadata
	if missionCtx == nil {
		missionCtx = map[string]any{}
	}
	missionCtx["mission_type"] = intent
	if frame.ConversationID != "" {
		missionCtx["conversation_id"] = frame.ConversationID
	}

	m, err := s.orch.StartMission(ctx, orchestrator.StartMissionInput{
		Objective: frame.Question,
		Initiator: identity.UserID,
		Context:   missionCtx,
	})
	if err != nil {
		return s.writeEnvelope(ctx, conn, chatTurnError(err))
	}

	sent, err := s.relayMissionStream(ctx, conn, m.ID)
	if err != nil {
		// The mission keeps running server-side; only the relay died.
		slog.Warn("Chat mission relay ended early", "mission_id", m.ID, "error", err)
		return err
	}
	if sent == 0 {
		if err := s.writeEnvelope(ctx, conn, events.Envelope{
			Type: events.EnvelopeAssistantFallback,
			Payload: map[string]any{
				"message":    "The mission finished without producing any output.",
				"mission_id": m.ID,
			},
		}); err != nil {
			return err
		}
	}

	return s.writeEnvelope(ctx, conn, events.Envelope{
		Type: events.EnvelopeComplete,
		Payload: map[string]any{
			"mission_id": m.ID,
		},
	})
}

// errorFrame builds a non-fatal error envelope for the chat socket.
func errorFrame(statusCode int, details string) events.Envelope {
	return events.Envelope{
		Type: events.EnvelopeError,
		Payload: map[string]any{
			"status_code": statusCode,
			"details":     details,
		},
	}
}

// chatTurnError maps a turn-level failure to an error envelope, exposing the
// message only for configuration problems the operator can act on.
func chatTurnError(err error) events.Envelope {
	if orchestrator.IsConfigurationError(err) {
		return errorFrame(http.StatusServiceUnavailable, err.Error())
	}
	slog.Error("Chat turn failed", "error", err)
	return errorFrame(http.StatusInternalServerError, "The request could not be processed.")
}

// legacyErrorFrame rewrites an assistant_error envelope to the flat error
// shape the admin dashboard still parses.
func legacyErrorFrame(env events.Envelope) events.Envelope {
	details := "The assistant failed to respond."
	if msg, ok := env.Payload["details"].(string); ok && msg != "" {
		details = msg
	}
	return errorFrame(http.StatusInternalServerError, details)
}
