package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/pkg/events"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// wsWriteTimeout bounds each frame write so one stuck client cannot pin a
// relay goroutine.
const wsWriteTimeout = 10 * time.Second

// missionWSHandler handles GET /missions/:id/ws: handshake, mission_status
// snapshot, catch-up replay of persisted events, live relay, terminal
// snapshot, close.
func (s *Server) missionWSHandler(c echo.Context) error {
	missionID := c.PathParam("id")

	conn, err := s.acceptWS(c)
	if err != nil {
		return err
	}
	// The socket owns the connection from here; errors go out as close codes.

	identity, err := s.authenticateWS(c, conn)
	if err != nil {
		return nil
	}

	slog.Debug("Mission WS connected",
		"mission_id", missionID,
		"user_id", identity.UserID)

	// Mission WS clients never send frames; CloseRead gives us a context
	// that cancels on client disconnect.
	ctx := conn.CloseRead(c.Request().Context())

	if _, err := s.relayMissionStream(ctx, conn, missionID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			_ = conn.Close(websocket.StatusCode(CloseNotFound), "mission not found")
		} else if ctx.Err() == nil {
			slog.Warn("Mission WS relay failed", "mission_id", missionID, "error", err)
			_ = conn.Close(websocket.StatusInternalError, "relay failed")
		}
		return nil
	}

	_ = conn.Close(websocket.StatusNormalClosure, "mission complete")
	return nil
}

// acceptWS upgrades the connection, negotiating the jwt subprotocol and
// enforcing the origin allowlist. In development an empty allowlist skips
// origin verification so local tooling can connect.
func (s *Server) acceptWS(c echo.Context) (*websocket.Conn, error) {
	opts := &websocket.AcceptOptions{
		Subprotocols:   []string{"jwt"},
		OriginPatterns: s.wsOriginPatterns(),
	}
	if len(opts.OriginPatterns) == 0 && !s.cfg.IsProduction() {
		opts.InsecureSkipVerify = true
	}
	return websocket.Accept(c.Response(), c.Request(), opts)
}

// authenticateWS resolves the handshake credential. On failure the socket is
// closed with 4401 before any frame is sent.
func (s *Server) authenticateWS(c echo.Context, conn *websocket.Conn) (*Identity, error) {
	identity, _, err := s.auth.Authenticate(c.Request())
	if err != nil {
		_ = conn.Close(websocket.StatusCode(CloseUnauthorized), "unauthorized")
		return nil, err
	}
	return identity, nil
}

// relayMissionStream drives one mission's event stream over an accepted
// connection: snapshot, catch-up, live relay, terminal snapshot. It returns
// the number of mission_event frames sent. The caller decides whether to
// close the socket afterwards.
//
// Gap-free ordering: catch-up records the highest replayed sequence and the
// live loop drops anything at or below it, so the client sees the persisted
// sequence exactly once regardless of when the subscription raced the outbox.
func (s *Server) relayMissionStream(ctx context.Context, conn *websocket.Conn, missionID string) (int, error) {
	m, err := s.missions.GetMission(ctx, missionID, true)
	if err != nil {
		return 0, err
	}

	// Subscribe before the snapshot so no committed event can fall between
	// catch-up and live.
	channel := events.MissionChannel(missionID)
	sub := s.bus.Subscribe(channel)
	defer func() {
		s.bus.Unsubscribe(sub)
		if s.listener != nil && s.bus.SubscriberCount(channel) == 0 {
			// Fresh context: the request context is usually gone by now.
			unsubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.listener.Unsubscribe(unsubCtx, channel); err != nil {
				slog.Warn("Failed to UNLISTEN mission channel", "channel", channel, "error", err)
			}
		}
	}()
	if s.listener != nil {
		if err := s.listener.Subscribe(ctx, channel); err != nil {
			return 0, err
		}
	}

	if err := s.writeEnvelope(ctx, conn, missionStatusEnvelope(m)); err != nil {
		return 0, err
	}

	// Catch-up replay from the persisted log.
	sent := 0
	maxSeq := 0
	rows, err := s.eventsSvc.GetEventsSince(ctx, missionID, 0)
	if err != nil {
		return sent, err
	}
	for _, row := range rows {
		env := events.MissionEventEnvelope(missionID, row.Sequence, row.EventType, row.Payload)
		if err := s.writeEnvelope(ctx, conn, env); err != nil {
			return sent, err
		}
		sent++
		maxSeq = row.Sequence
	}

	if isTerminalStatus(m) {
		return sent, s.writeEnvelope(ctx, conn, missionStatusEnvelope(m))
	}

	// Live relay until a terminal event arrives.
	for {
		select {
		case <-ctx.Done():
			return sent, ctx.Err()
		case msg, ok := <-sub.C:
			if !ok {
				return sent, errors.New("bus subscription closed")
			}
			if msg.Sequence > 0 && msg.Sequence <= maxSeq {
				continue // already replayed
			}
			if err := s.writeRaw(ctx, conn, msg.Payload); err != nil {
				return sent, err
			}
			sent++
			if msg.Sequence > 0 {
				maxSeq = msg.Sequence
			}

			if events.IsTerminal(msg.Type) {
				fresh, err := s.missions.GetMission(ctx, missionID, true)
				if err != nil {
					return sent, err
				}
				return sent, s.writeEnvelope(ctx, conn, missionStatusEnvelope(fresh))
			}
		}
	}
}

// missionStatusEnvelope builds the {type: "mission_status"} snapshot frame.
func missionStatusEnvelope(m *ent.Mission) events.Envelope {
	resp := newMissionResponse(m)

	// Round-trip through JSON to get the map payload shape.
	raw, _ := json.Marshal(resp)
	payload := map[string]any{}
	_ = json.Unmarshal(raw, &payload)

	return events.Envelope{
		Type:    events.EnvelopeMissionStatus,
		Payload: payload,
	}
}

func isTerminalStatus(m *ent.Mission) bool {
	switch m.Status {
	case "success", "partial_success", "failed":
		return true
	}
	return false
}

// writeEnvelope marshals and sends one envelope frame.
func (s *Server) writeEnvelope(ctx context.Context, conn *websocket.Conn, env events.Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return s.writeRaw(ctx, conn, data)
}

// writeRaw sends a pre-marshaled frame with a bounded write deadline.
func (s *Server) writeRaw(ctx context.Context, conn *websocket.Conn, data []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, data)
}
