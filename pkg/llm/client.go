// Package llm provides the model-client boundary for agents and chat
// streaming. Internal prompt engineering stays in pkg/agents; this package
// only knows how to send a prompt and get text (or a token stream) back.
package llm

import (
	"context"
	"errors"
	"time"
)

// DefaultTimeout bounds a single model call.
const DefaultTimeout = 300 * time.Second

// ErrMissingAPIKey indicates the operator-level model credential is absent.
// Mission starts fail fast on it with a user-visible message.
var ErrMissingAPIKey = errors.New("llm: missing API key")

// Request is a single completion request.
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Response is a completed (non-streaming) model reply.
type Response struct {
	Text       string
	StopReason string
}

// Chunk is one streamed token delta. Err is non-nil exactly once, as the
// final chunk, when the stream fails.
type Chunk struct {
	Delta string
	Done  bool
	Err   error
}

// Client is the minimal surface the control plane needs from a model
// provider.
type Client interface {
	// Complete sends a prompt and returns the full reply.
	Complete(ctx context.Context, req Request) (*Response, error)

	// Stream sends a prompt and returns a channel of token deltas. The
	// channel is closed after the Done (or Err) chunk. Cancelling ctx
	// stops the stream promptly.
	Stream(ctx context.Context, req Request) (<-chan Chunk, error)
}
