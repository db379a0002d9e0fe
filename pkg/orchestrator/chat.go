package orchestrator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/helmsman-ai/helmsman/pkg/events"
	"github.com/helmsman-ai/helmsman/pkg/llm"
)

// chatQueueSize bounds the per-stream envelope queue between the producer
// goroutine and the WebSocket relay.
const chatQueueSize = 64

const chatSystemPrompt = `You are Helmsman's assistant. Answer the user's ` +
	`question directly and concisely. When the question concerns a running ` +
	`or past mission, ground your answer in the facts you are given.`

// ChatRequest is one user turn on a chat stream.
type ChatRequest struct {
	Question       string
	ConversationID string
	// Intent is the canonical mission-type name (DEFAULT, MISSION_COMPLEX, ...).
	Intent   string
	Metadata map[string]any
}

// StreamChat answers a chat turn as a stream of client-facing envelopes.
// A producer goroutine writes to the returned bounded channel and closes it
// when the turn is finished or the context is cancelled; the caller relays
// each envelope to its client.
func (o *Orchestrator) StreamChat(ctx context.Context, req ChatRequest) (<-chan events.Envelope, error) {
	if err := o.checkLLMCredentials(); err != nil {
		return nil, err
	}

	out := make(chan events.Envelope, chatQueueSize)
	go func() {
		defer close(out)
		o.runChatTurn(ctx, req, out)
	}()
	return out, nil
}

// runChatTurn produces the envelope stream for one turn.
func (o *Orchestrator) runChatTurn(ctx context.Context, req ChatRequest, out chan<- events.Envelope) {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
		if !send(ctx, out, events.Envelope{
			Type:    events.EnvelopeConversationInit,
			Payload: map[string]any{"conversation_id": conversationID},
		}) {
			return
		}
	}

	if !send(ctx, out, events.Envelope{
		Type:    events.EnvelopeStatus,
		Payload: map[string]any{"state": "thinking", "conversation_id": conversationID},
	}) {
		return
	}

	chunks, err := o.llm.Stream(ctx, llm.Request{
		System: chatSystemPrompt,
		Prompt: req.Question,
	})
	if err != nil {
		slog.Error("Chat stream failed to start",
			"conversation_id", conversationID, "error", err)
		send(ctx, out, errorEnvelope(events.EnvelopeAssistantError, err))
		return
	}

	var full strings.Builder
	for chunk := range chunks {
		if chunk.Err != nil {
			slog.Warn("Chat stream error",
				"conversation_id", conversationID, "error", chunk.Err)
			send(ctx, out, errorEnvelope(events.EnvelopeAssistantError, chunk.Err))
			return
		}
		if chunk.Done {
			break
		}
		if chunk.Delta == "" {
			continue
		}
		full.WriteString(chunk.Delta)
		if !send(ctx, out, events.Envelope{
			Type:    events.EnvelopeAssistantDelta,
			Payload: map[string]any{"content": chunk.Delta, "conversation_id": conversationID},
		}) {
			return
		}
	}

	if full.Len() > 0 {
		if !send(ctx, out, events.Envelope{
			Type:    events.EnvelopeAssistantFinal,
			Payload: map[string]any{"content": full.String(), "conversation_id": conversationID},
		}) {
			return
		}
	}

	send(ctx, out, events.Envelope{
		Type:    events.EnvelopeComplete,
		Payload: map[string]any{"conversation_id": conversationID},
	})
}

// send enqueues an envelope, giving up when the context is cancelled.
func send(ctx context.Context, out chan<- events.Envelope, env events.Envelope) bool {
	select {
	case out <- env:
		return true
	case <-ctx.Done():
		return false
	}
}

func errorEnvelope(envType string, err error) events.Envelope {
	return events.Envelope{
		Type:    envType,
		Payload: map[string]any{"details": err.Error()},
	}
}
