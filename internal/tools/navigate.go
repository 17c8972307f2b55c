package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/formflow/internal/forms"
	"github.com/mark3labs/mcp-go/mcp"
)

// The three navigation tools share a file: they are symmetric wrappers
// around the session cursor and have no logic of their own.

// NextQuestionTool handles the question_next MCP tool.
type NextQuestionTool struct {
	store *forms.Store
}

// NewNextQuestionTool creates a NextQuestionTool.
func NewNextQuestionTool(store *forms.Store) *NextQuestionTool {
	return &NextQuestionTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *NextQuestionTool) Definition() mcp.Tool {
	return mcp.NewTool("question_next",
		mcp.WithDescription("Move to the next question. No-op at the last question — the cursor never wraps."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Id of the session.")),
	)
}

// Handle processes the question_next tool call.
func (t *NextQuestionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, result, err := lookupSession(t.store, req)
	if s == nil {
		return result, err
	}
	s.Next()
	return cursorResult(s), nil
}

// PrevQuestionTool handles the question_prev MCP tool.
type PrevQuestionTool struct {
	store *forms.Store
}

// NewPrevQuestionTool creates a PrevQuestionTool.
func NewPrevQuestionTool(store *forms.Store) *PrevQuestionTool {
	return &PrevQuestionTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *PrevQuestionTool) Definition() mcp.Tool {
	return mcp.NewTool("question_prev",
		mcp.WithDescription("Move to the previous question. No-op at the first question."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Id of the session.")),
	)
}

// Handle processes the question_prev tool call.
func (t *PrevQuestionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, result, err := lookupSession(t.store, req)
	if s == nil {
		return result, err
	}
	s.Prev()
	return cursorResult(s), nil
}

// CurrentQuestionTool handles the question_current MCP tool.
type CurrentQuestionTool struct {
	store *forms.Store
}

// NewCurrentQuestionTool creates a CurrentQuestionTool.
func NewCurrentQuestionTool(store *forms.Store) *CurrentQuestionTool {
	return &CurrentQuestionTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *CurrentQuestionTool) Definition() mcp.Tool {
	return mcp.NewTool("question_current",
		mcp.WithDescription("Report the question the cursor is on, without moving it."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Id of the session.")),
	)
}

// Handle processes the question_current tool call.
func (t *CurrentQuestionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, result, err := lookupSession(t.store, req)
	if s == nil {
		return result, err
	}
	return cursorResult(s), nil
}

// lookupSession resolves the session_id argument. When it returns a nil
// session, the accompanying result/error pair is the tool response.
func lookupSession(store *forms.Store, req mcp.CallToolRequest) (*forms.Session, *mcp.CallToolResult, error) {
	id := strings.TrimSpace(req.GetString("session_id", ""))
	if id == "" {
		return nil, mcp.NewToolResultError("'session_id' is required"), nil
	}
	s, err := store.Get(id)
	if err != nil {
		if errors.Is(err, forms.ErrSessionNotFound) {
			return nil, mcp.NewToolResultError(err.Error()), nil
		}
		return nil, nil, fmt.Errorf("looking up session: %w", err)
	}
	return s, nil, nil
}

// cursorResult reports the cursor position and current question path.
func cursorResult(s *forms.Session) *mcp.CallToolResult {
	path := s.CurrentPath()
	index, total := s.Position()
	if path == "" {
		return mcp.NewToolResultText("The form has no questions.")
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"Question %d of %d: `%s`", index+1, total, path,
	))
}
