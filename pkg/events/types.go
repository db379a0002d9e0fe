// Package events provides real-time event delivery: envelope types, the
// PostgreSQL NOTIFY/LISTEN bridge for cross-node distribution, and payload
// schemas for the persisted mission event log.
//
// Delivery path for a persisted mission event:
//
//	MissionService tx ─► mission_events + outbox_entries (COMMIT)
//	outbox worker     ─► pg_notify(channel, envelope)
//	NotifyListener    ─► local bus.Publish (every node, origin included)
//	WS relay          ─► subscribed WebSocket clients
//
// Catch-up on (re)connect replays mission_events rows directly, then the
// relay filters live bus messages at or below the highest replayed sequence
// so the client sees a gap-free, duplicate-free stream.
package events

// Persisted mission lifecycle event types.
const (
	EventTypeMissionCreated   = "mission_created"
	EventTypeStatusChange     = "status_change"
	EventTypeTaskCompleted    = "task_completed"
	EventTypeMissionCompleted = "mission_completed"
	EventTypeMissionFailed    = "mission_failed"
)

// Persisted brain event types emitted by the supervisor graph, scoped to a
// per-iteration run id.
const (
	EventTypeRunStarted     = "run_started"
	EventTypePhaseStart     = "phase_start"
	EventTypePhaseCompleted = "phase_completed"
	EventTypePhaseError     = "phase_error"
	EventTypeLoopStart      = "loop_start"
)

// Client-facing envelope types that are not mission events.
const (
	EnvelopeMissionStatus = "mission_status"
	EnvelopeMissionEvent  = "mission_event"
	EnvelopeError         = "error"
)

// Chat stream envelope types relayed by the WebSocket authority.
const (
	EnvelopeAssistantDelta    = "assistant_delta"
	EnvelopeAssistantFinal    = "assistant_final"
	EnvelopeAssistantError    = "assistant_error"
	EnvelopeAssistantFallback = "assistant_fallback"
	EnvelopeToolResultSummary = "tool_result_summary"
	EnvelopeStatus            = "status"
	EnvelopeComplete          = "complete"
	EnvelopeConversationInit  = "conversation_init"
)

// IsTerminal reports whether an event type ends a mission's event stream.
// After relaying one, the mission WS sends a final snapshot and closes.
func IsTerminal(eventType string) bool {
	return eventType == EventTypeMissionCompleted || eventType == EventTypeMissionFailed
}

// GlobalMissionsChannel carries transient mission status copies for the
// mission list page.
const GlobalMissionsChannel = "missions"

// MissionChannel returns the channel name for a specific mission's events.
// Format: "mission:{mission_id}"
func MissionChannel(missionID string) string {
	return "mission:" + missionID
}
