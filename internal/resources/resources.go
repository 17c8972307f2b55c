// Package resources implements MCP resource handlers.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (formflow://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/HendryAvila/formflow/internal/forms"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler manages FormFlow resource endpoints.
type Handler struct {
	registry *forms.Registry
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(registry *forms.Registry) *Handler {
	return &Handler{registry: registry}
}

// CatalogResource returns the MCP resource definition for the form catalog.
func (h *Handler) CatalogResource() mcp.Resource {
	return mcp.NewResource(
		"formflow://forms/catalog",
		"Registered Forms",
		mcp.WithResourceDescription("All registered form definitions with their schemas and derived question order"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleCatalog returns the registered forms as JSON.
func (h *Handler) HandleCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	type entry struct {
		ID            string          `json:"id"`
		Name          string          `json:"name"`
		Schema        json.RawMessage `json:"schema"`
		QuestionOrder []string        `json:"question_order"`
	}

	defs := h.registry.List()
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })

	entries := make([]entry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, entry{
			ID:            def.ID,
			Name:          def.Name,
			Schema:        def.RawSchema,
			QuestionOrder: def.QuestionOrder(),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
