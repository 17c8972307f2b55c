package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/HendryAvila/formflow/internal/forms"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListSessionsTool handles the session_list MCP tool.
type ListSessionsTool struct {
	store *forms.Store
}

// NewListSessionsTool creates a ListSessionsTool.
func NewListSessionsTool(store *forms.Store) *ListSessionsTool {
	return &ListSessionsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ListSessionsTool) Definition() mcp.Tool {
	return mcp.NewTool("session_list",
		mcp.WithDescription(
			"List sessions as compact JSON summaries, optionally filtered by "+
				"user id and/or form id (exact match).",
		),
		mcp.WithString("user_id",
			mcp.Description("Only sessions created with this user id."),
		),
		mcp.WithString("form_id",
			mcp.Description("Only sessions against this form."),
		),
	)
}

// Handle processes the session_list tool call.
func (t *ListSessionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := forms.Filter{
		UserID: strings.TrimSpace(req.GetString("user_id", "")),
		FormID: strings.TrimSpace(req.GetString("form_id", "")),
	}

	sessions := t.store.List(filter)
	summaries := make([]forms.Summary, 0, len(sessions))
	for _, s := range sessions {
		summaries = append(summaries, s.Summarize())
	}
	// Store order is undefined; sort for a stable listing.
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CreatedAt != summaries[j].CreatedAt {
			return summaries[i].CreatedAt < summaries[j].CreatedAt
		}
		return summaries[i].ID < summaries[j].ID
	})

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling session list: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
