package events

import "encoding/json"

// Envelope is the client-facing event frame: {type, payload}.
type Envelope struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// MissionEventEnvelope wraps a persisted mission event for WS delivery:
// {type: "mission_event", payload: {event_type, mission_id, sequence, data}}.
func MissionEventEnvelope(missionID string, sequence int, eventType string, data map[string]any) Envelope {
	return Envelope{
		Type: EnvelopeMissionEvent,
		Payload: map[string]any{
			"event_type": eventType,
			"mission_id": missionID,
			"sequence":   sequence,
			"data":       data,
		},
	}
}

// EnvelopeRouting is the subset of envelope payload fields needed to route a
// frame onto the local bus.
type EnvelopeRouting struct {
	EventType string `json:"event_type"`
	MissionID string `json:"mission_id"`
	Sequence  int    `json:"sequence"`
}

// DecodeRouting extracts routing fields from a marshaled envelope.
func DecodeRouting(data []byte) (EnvelopeRouting, error) {
	var frame struct {
		Type    string          `json:"type"`
		Payload EnvelopeRouting `json:"payload"`
	}
	if err := json.Unmarshal(data, &frame); err != nil {
		return EnvelopeRouting{}, err
	}
	return frame.Payload, nil
}

// RunPayload is the payload shape shared by brain events (run_started,
// phase_start, phase_completed, phase_error, loop_start).
type RunPayload struct {
	RunID     string `json:"run_id"`
	Iteration int    `json:"iteration"`
	Phase     string `json:"phase,omitempty"`
	Agent     string `json:"agent,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Map converts a RunPayload to the map form stored in the event log.
func (p RunPayload) Map() map[string]any {
	m := map[string]any{
		"run_id":    p.RunID,
		"iteration": p.Iteration,
	}
	if p.Phase != "" {
		m["phase"] = p.Phase
	}
	if p.Agent != "" {
		m["agent"] = p.Agent
	}
	if p.Error != "" {
		m["error"] = p.Error
	}
	return m
}
