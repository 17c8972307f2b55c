package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/formflow/internal/forms"
	"github.com/mark3labs/mcp-go/mcp"
)

// ValidateSessionTool handles the session_validate MCP tool. field_set
// already validates after every answer; this tool re-runs the pass on
// demand and reports the per-question breakdown.
type ValidateSessionTool struct {
	store *forms.Store
}

// NewValidateSessionTool creates a ValidateSessionTool.
func NewValidateSessionTool(store *forms.Store) *ValidateSessionTool {
	return &ValidateSessionTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ValidateSessionTool) Definition() mcp.Tool {
	return mcp.NewTool("session_validate",
		mcp.WithDescription(
			"Validate the session's answers against the form schema and report "+
				"overall validity plus a per-question breakdown. A fully valid "+
				"session becomes complete.",
		),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Id of the session."),
		),
	)
}

// Handle processes the session_validate tool call.
func (t *ValidateSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := strings.TrimSpace(req.GetString("session_id", ""))
	if id == "" {
		return mcp.NewToolResultError("'session_id' is required"), nil
	}

	s, err := t.store.Get(id)
	if err != nil {
		if errors.Is(err, forms.ErrSessionNotFound) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("looking up session: %w", err)
	}

	if err := s.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	status, validity := s.Progress()
	sum := s.Summarize()

	var b strings.Builder
	fmt.Fprintf(&b, "# Validation Report\n\n")
	fmt.Fprintf(&b, "**Overall:** %s %s\n**Status:** %s\n**Answered:** %d of %d\n",
		validityMarker(validity), validity, status, sum.Answered, sum.Questions)

	if sum.Questions > 0 {
		b.WriteString("\n## Fields\n\n")
		// The question order is immutable after creation, so reading it
		// without the session lock is safe.
		for _, path := range s.QuestionOrder {
			fs, ok := s.FieldReport(path)
			if !ok {
				continue
			}
			marker := "✅"
			if !fs.SchemaValid {
				marker = "❌"
			}
			fmt.Fprintf(&b, "- %s `%s`", marker, path)
			if !fs.Touched {
				b.WriteString(" (unanswered)")
			}
			b.WriteString("\n")
			for _, msg := range fs.Messages {
				fmt.Fprintf(&b, "  - %s\n", msg)
			}
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}
