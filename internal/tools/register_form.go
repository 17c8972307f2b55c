package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/HendryAvila/formflow/internal/catalog"
	"github.com/HendryAvila/formflow/internal/forms"
	"github.com/mark3labs/mcp-go/mcp"
)

// RegisterFormTool handles the form_register MCP tool. It registers (or
// replaces) a form definition in the registry and writes it through to the
// catalog when persistence is available.
type RegisterFormTool struct {
	registry *forms.Registry
	catalog  *catalog.Store // nil when persistence is disabled
}

// NewRegisterFormTool creates a RegisterFormTool.
func NewRegisterFormTool(registry *forms.Registry, cat *catalog.Store) *RegisterFormTool {
	return &RegisterFormTool{registry: registry, catalog: cat}
}

// Definition returns the MCP tool definition for registration.
func (t *RegisterFormTool) Definition() mcp.Tool {
	return mcp.NewTool("form_register",
		mcp.WithDescription(
			"Register a form definition. The schema is a JSON Schema document: "+
				"object type with named properties, nested objects, a required list, "+
				"primitive type constraints and string format hints. Registering an "+
				"existing id replaces the definition; sessions already opened against "+
				"the old definition keep it.",
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Unique form id, e.g. 'job-application'."),
		),
		mcp.WithString("name",
			mcp.Description("Display name. Defaults to the id."),
		),
		mcp.WithString("schema",
			mcp.Required(),
			mcp.Description("The JSON Schema document for the form, as a JSON string."),
		),
	)
}

// Handle processes the form_register tool call.
func (t *RegisterFormTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := strings.TrimSpace(req.GetString("id", ""))
	name := strings.TrimSpace(req.GetString("name", ""))
	rawSchema := req.GetString("schema", "")

	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}
	if strings.TrimSpace(rawSchema) == "" {
		return mcp.NewToolResultError("'schema' is required — a JSON Schema document"), nil
	}
	if name == "" {
		name = id
	}

	def, err := forms.NewDefinition(id, name, []byte(rawSchema))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	t.registry.Register(def)
	if t.catalog != nil {
		if err := t.catalog.Save(id, name, rawSchema); err != nil {
			return nil, fmt.Errorf("persisting definition: %w", err)
		}
	}

	order := def.QuestionOrder()
	var questions strings.Builder
	for i, path := range order {
		fmt.Fprintf(&questions, "%d. `%s`\n", i+1, path)
	}
	if len(order) == 0 {
		questions.WriteString("(none — the schema has no named object properties)\n")
	}

	response := fmt.Sprintf(
		"# Form Registered\n\n"+
			"**ID:** `%s`\n"+
			"**Name:** %s\n\n"+
			"## Question Order (%d)\n\n%s\n"+
			"Open a session with `session_create` using form_id=`%s`.",
		id, name, len(order), questions.String(), id,
	)
	return mcp.NewToolResultText(response), nil
}
