// Package prompts implements MCP prompt handlers.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// FillPrompt handles the form-fill MCP prompt. It walks the AI through
// opening a session and collecting answers one question at a time.
type FillPrompt struct{}

// NewFillPrompt creates a FillPrompt.
func NewFillPrompt() *FillPrompt {
	return &FillPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *FillPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("form-fill",
		mcp.WithPromptDescription(
			"Fill out a registered form step by step: one question at a time, "+
				"with validation feedback after every answer.",
		),
		mcp.WithArgument("form_id",
			mcp.ArgumentDescription("Id of the form to fill (see form_list)"),
		),
		mcp.WithArgument("user_id",
			mcp.ArgumentDescription("Optional user identifier to tag the session with"),
		),
	)
}

// Handle processes the form-fill prompt request.
func (p *FillPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	formID := ""
	userID := ""
	if args := req.Params.Arguments; args != nil {
		formID = args["form_id"]
		userID = args["user_id"]
	}

	formStep := "1. Call `form_list` and ask me which form to fill.\n"
	if formID != "" {
		formStep = fmt.Sprintf("1. Use the form `%s`.\n", formID)
	}
	userNote := ""
	if userID != "" {
		userNote = fmt.Sprintf(" with user_id='%s'", userID)
	}

	return &mcp.GetPromptResult{
		Description: "Fill out a form step by step",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to fill out a form.\n\n"+
						"Please:\n"+
						"%s"+
						"2. Call `session_create`%s and remember the session id\n"+
						"3. For each question: call `question_current`, ask me for the answer, "+
						"record it with `field_set`, then move on with `question_next`\n"+
						"4. If `field_set` reports the field invalid, show me the messages and "+
						"ask again before moving on\n"+
						"5. After the last question, call `session_validate` and walk me through "+
						"anything still invalid (use `question_prev` to go back)\n"+
						"6. When the report says valid and complete, confirm we're done\n\n"+
						"Ask one question at a time — don't dump the whole form on me.",
					formStep, userNote,
				)),
			},
		},
	}, nil
}
