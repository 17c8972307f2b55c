package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/HendryAvila/formflow/internal/forms"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListFormsTool handles the form_list MCP tool.
type ListFormsTool struct {
	registry *forms.Registry
}

// NewListFormsTool creates a ListFormsTool.
func NewListFormsTool(registry *forms.Registry) *ListFormsTool {
	return &ListFormsTool{registry: registry}
}

// Definition returns the MCP tool definition for registration.
func (t *ListFormsTool) Definition() mcp.Tool {
	return mcp.NewTool("form_list",
		mcp.WithDescription("List all registered form definitions with their question counts."),
	)
}

// Handle processes the form_list tool call.
func (t *ListFormsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	defs := t.registry.List()
	if len(defs) == 0 {
		return mcp.NewToolResultText(
			"No forms registered. Use `form_register` to add one, or start the " +
				"server with --demo for sample forms.",
		), nil
	}

	// Registry order is undefined; sort for a stable listing.
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })

	var b strings.Builder
	fmt.Fprintf(&b, "# Registered Forms (%d)\n\n", len(defs))
	for _, def := range defs {
		fmt.Fprintf(&b, "- `%s` — %s (%d questions)\n", def.ID, def.Name, len(def.QuestionOrder()))
	}
	return mcp.NewToolResultText(b.String()), nil
}
