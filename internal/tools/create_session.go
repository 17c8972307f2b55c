package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/formflow/internal/forms"
	"github.com/mark3labs/mcp-go/mcp"
)

// CreateSessionTool handles the session_create MCP tool.
type CreateSessionTool struct {
	store *forms.Store
}

// NewCreateSessionTool creates a CreateSessionTool.
func NewCreateSessionTool(store *forms.Store) *CreateSessionTool {
	return &CreateSessionTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateSessionTool) Definition() mcp.Tool {
	return mcp.NewTool("session_create",
		mcp.WithDescription(
			"Open a new form-filling session against a registered form. The session "+
				"snapshots the form definition, derives the fixed question order, and "+
				"starts with an empty answer set.",
		),
		mcp.WithString("form_id",
			mcp.Required(),
			mcp.Description("Id of a registered form (see form_list)."),
		),
		mcp.WithString("user_id",
			mcp.Description("Optional user identifier to associate with the session, for session_list filtering."),
		),
	)
}

// Handle processes the session_create tool call.
func (t *CreateSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	formID := strings.TrimSpace(req.GetString("form_id", ""))
	if formID == "" {
		return mcp.NewToolResultError("'form_id' is required"), nil
	}
	userID := strings.TrimSpace(req.GetString("user_id", ""))

	s, err := t.store.Create(formID, userID)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("creating session: %w", err)
	}

	sum := s.Summarize()
	first := s.CurrentPath()
	firstLine := "The form has no questions."
	if first != "" {
		firstLine = fmt.Sprintf("First question: `%s`", first)
	}

	response := fmt.Sprintf(
		"# Session Created\n\n"+
			"**Session ID:** `%s`\n"+
			"**Form:** %s (`%s`)\n"+
			"**Questions:** %d\n"+
			"**Status:** %s\n\n"+
			"%s\n\n"+
			"Answer with `field_set`, move with `question_next`/`question_prev`, "+
			"check with `session_validate`.",
		s.ID, sum.FormName, sum.FormID, sum.Questions, sum.Status, firstLine,
	)
	return mcp.NewToolResultText(response), nil
}
