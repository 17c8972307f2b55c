package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/formflow/internal/forms"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetSessionTool handles the session_get MCP tool.
type GetSessionTool struct {
	store *forms.Store
}

// NewGetSessionTool creates a GetSessionTool.
func NewGetSessionTool(store *forms.Store) *GetSessionTool {
	return &GetSessionTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *GetSessionTool) Definition() mcp.Tool {
	return mcp.NewTool("session_get",
		mcp.WithDescription(
			"Fetch the full state of a session as JSON: answers, per-field "+
				"validation state, status, overall validity, question order and cursor.",
		),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Id of the session (returned by session_create)."),
		),
	)
}

// Handle processes the session_get tool call.
func (t *GetSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
	return sessionStateResult(s)
}
