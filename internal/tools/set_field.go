package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/formflow/internal/forms"
	"github.com/mark3labs/mcp-go/mcp"
)

// SetFieldTool handles the field_set MCP tool. Every call records the
// answer and immediately re-validates the whole session, so the reported
// field and validity state is never stale.
type SetFieldTool struct {
	store *forms.Store
}

// NewSetFieldTool creates a SetFieldTool.
func NewSetFieldTool(store *forms.Store) *SetFieldTool {
	return &SetFieldTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *SetFieldTool) Definition() mcp.Tool {
	return mcp.NewTool("field_set",
		mcp.WithDescription(
			"Record an answer for a field path and re-validate the session. "+
				"An invalid answer is still stored — invalidity is reported, not "+
				"rejected. Paths outside the question order are accepted into the "+
				"answer data but are not tracked as questions.",
		),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Id of the session."),
		),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Dot-separated field path, e.g. 'applicant.email'."),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("The answer. JSON literals (numbers, booleans, null, "+
				"objects) are decoded; anything else is stored as a plain string. "+
				"Arrays are not supported."),
		),
	)
}

// Handle processes the field_set tool call.
func (t *SetFieldTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := strings.TrimSpace(req.GetString("session_id", ""))
	path := strings.TrimSpace(req.GetString("path", ""))
	rawValue := req.GetString("value", "")

	if id == "" {
		return mcp.NewToolResultError("'session_id' is required"), nil
	}
	if path == "" {
		return mcp.NewToolResultError("'path' is required"), nil
	}

	s, err := t.store.Get(id)
	if err != nil {
		if errors.Is(err, forms.ErrSessionNotFound) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("looking up session: %w", err)
	}

	value, err := parseAnswer(rawValue)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.SetField(path, value); err != nil {
		// The answer is recorded; the validation pass itself failed.
		return mcp.NewToolResultError(fmt.Sprintf("answer recorded, but validation failed: %v", err)), nil
	}

	status, validity := s.Progress()
	var b strings.Builder
	fmt.Fprintf(&b, "# Answer Recorded\n\n**Path:** `%s`\n", path)
	if fs, ok := s.FieldReport(path); ok {
		if fs.SchemaValid {
			b.WriteString("**Field:** ✅ valid\n")
		} else {
			b.WriteString("**Field:** ❌ invalid\n")
			for _, msg := range fs.Messages {
				fmt.Fprintf(&b, "  - %s\n", msg)
			}
		}
	} else {
		b.WriteString("**Field:** not in the question order (stored, untracked)\n")
	}
	fmt.Fprintf(&b, "**Session:** %s %s, status %s\n", validityMarker(validity), validity, status)

	return mcp.NewToolResultText(b.String()), nil
}
