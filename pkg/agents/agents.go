// Package agents implements the cognitive roles of the supervisor graph.
// Each agent wraps the model client with a role prompt, parses the reply
// into its typed result, and returns a partial state update.
package agents

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/helmsman-ai/helmsman/pkg/llm"
	"github.com/helmsman-ai/helmsman/pkg/supervisor"
)

// Set builds the full node→agent map for a graph over one model client.
func Set(client llm.Client) map[supervisor.Node]supervisor.Agent {
	return map[supervisor.Node]supervisor.Agent{
		supervisor.NodeContextualizer: NewContextualizer(client),
		supervisor.NodeStrategist:     NewStrategist(client),
		supervisor.NodeArchitect:      NewArchitect(client),
		supervisor.NodeOperator:       NewOperator(client),
		supervisor.NodeAuditor:        NewAuditor(client),
	}
}

// decodeReply extracts the first JSON object from a model reply and decodes
// it into v. Models routinely wrap JSON in markdown fences or prose, so the
// reply is scanned for the outermost object rather than decoded verbatim.
func decodeReply(text string, v any) error {
	raw := extractJSON(text)
	if raw == "" {
		return fmt.Errorf("no JSON object in model reply")
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("failed to decode model reply: %w", err)
	}
	return nil
}

func extractJSON(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}
	return ""
}

// missionHeader renders the shared prompt preamble describing the mission.
func missionHeader(s *supervisor.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Objective: %s\n", s.Objective)
	if s.Priority != "" {
		fmt.Fprintf(&b, "Priority: %s\n", s.Priority)
	}
	if len(s.Constraints) > 0 {
		fmt.Fprintf(&b, "Constraints: %s\n", strings.Join(s.Constraints, "; "))
	}
	if len(s.Context) > 0 {
		if ctx, err := json.Marshal(s.Context); err == nil {
			fmt.Fprintf(&b, "Context: %s\n", ctx)
		}
	}
	if s.Research != nil && s.Research.RefinedObjective != "" {
		fmt.Fprintf(&b, "Refined objective: %s\n", s.Research.RefinedObjective)
	}
	if fb, ok := s.Shared[supervisor.SharedAuditorFeedback].(string); ok && fb != "" {
		fmt.Fprintf(&b, "Previous attempt feedback: %s\n", fb)
	}
	return b.String()
}
