// Package tools implements the MCP tool handlers that expose the form
// engine as named remote operations.
//
// Design principles:
// - SRP: each file = one tool (navigation tools share a file)
// - DIP: tools depend on the engine's registry and session store; the
//   definition catalog is optional and nil-safe
// - Caller mistakes (unknown ids, malformed schemas or values) become
//   tool error results; infrastructure failures return Go errors
package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HendryAvila/formflow/internal/forms"
	"github.com/mark3labs/mcp-go/mcp"
)

// parseAnswer decodes a raw answer argument. Valid JSON literals (numbers,
// booleans, null, quoted strings, nested objects) are decoded as such;
// anything else is kept as a plain string, which keeps value="Alice" and
// value="42" equally ergonomic for callers. Arrays are rejected.
func parseAnswer(raw string) (forms.Value, error) {
	var decoded any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &decoded); err != nil {
		return forms.StringValue(raw), nil
	}
	return forms.ValueFromJSON(decoded)
}

// sessionStateResult renders the full session state as a JSON tool result.
func sessionStateResult(s *forms.Session) (*mcp.CallToolResult, error) {
	data, err := s.StateJSON()
	if err != nil {
		return nil, fmt.Errorf("marshaling session state: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// validityMarker maps a validity to a display marker.
func validityMarker(v forms.Validity) string {
	switch v {
	case forms.ValidityValid:
		return "✅"
	case forms.ValidityInvalid:
		return "❌"
	default:
		return "❔"
	}
}
