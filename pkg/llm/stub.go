package llm

import (
	"context"
	"strings"
)

// StubClient is a deterministic Client for development and tests. It echoes
// canned responses keyed by a substring of the prompt, falling back to a
// fixed reply.
type StubClient struct {
	// Responses maps a prompt substring to the canned reply.
	Responses map[string]string
	// Fallback is returned when no substring matches.
	Fallback string
}

// NewStubClient creates a stub with a generic fallback reply.
func NewStubClient() *StubClient {
	return &StubClient{Fallback: "stub response"}
}

func (c *StubClient) lookup(prompt string) string {
	for needle, reply := range c.Responses {
		if strings.Contains(prompt, needle) {
			return reply
		}
	}
	return c.Fallback
}

// Complete returns the canned reply for the prompt.
func (c *StubClient) Complete(_ context.Context, req Request) (*Response, error) {
	return &Response{Text: c.lookup(req.Prompt), StopReason: "end_turn"}, nil
}

// Stream emits the canned reply as word-sized deltas.
func (c *StubClient) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	out := make(chan Chunk, 16)
	go func() {
		defer close(out)
		for _, word := range strings.SplitAfter(c.lookup(req.Prompt), " ") {
			select {
			case out <- Chunk{Delta: word}:
			case <-ctx.Done():
				return
			}
		}
		out <- Chunk{Done: true}
	}()
	return out, nil
}
