// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools/prompts/resources that depend on them.
// No business logic lives here — only wiring.
package server

import (
	"log"

	"github.com/HendryAvila/formflow/internal/catalog"
	"github.com/HendryAvila/formflow/internal/forms"
	"github.com/HendryAvila/formflow/internal/prompts"
	"github.com/HendryAvila/formflow/internal/resources"
	"github.com/HendryAvila/formflow/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Options control the optional subsystems of the server.
type Options struct {
	// CatalogDir overrides the definition catalog directory.
	// Empty means the default (~/.formflow).
	CatalogDir string
	// Demo seeds the demo forms when the catalog is empty.
	Demo bool
}

// New creates and configures the MCP server with all tools, prompts, and
// resources registered. This is the single place where all dependencies
// are resolved.
//
// The returned cleanup function closes the catalog's database connection
// and must be called on shutdown (typically via defer). It is always
// non-nil and safe to call even if catalog init failed.
func New(opts Options) (*server.MCPServer, func(), error) {
	registry := forms.NewRegistry()
	store := forms.NewStore(registry)

	s := server.NewMCPServer(
		"formflow",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Definition catalog ---
	//
	// The catalog is an independent subsystem: if it fails to initialize,
	// the server still works with an in-memory registry. We log a warning
	// to stderr and carry on — sessions never persist either way.

	cleanup := noop
	cfg := catalog.DefaultConfig()
	if opts.CatalogDir != "" {
		cfg.DataDir = opts.CatalogDir
	}
	cat, catErr := catalog.New(cfg)
	if catErr != nil {
		log.Printf("WARNING: definition catalog disabled: %v", catErr)
		cat = nil
	} else {
		cleanup = func() {
			if err := cat.Close(); err != nil {
				log.Printf("WARNING: catalog close: %v", err)
			}
		}

		if opts.Demo {
			if n, err := cat.Seed(); err != nil {
				log.Printf("WARNING: demo seed: %v", err)
			} else if n > 0 {
				log.Printf("seeded %d demo forms", n)
			}
		}

		// Replay stored definitions into the registry. A stored form that
		// no longer parses is skipped, not fatal — the rest of the catalog
		// still loads.
		records, err := cat.LoadAll()
		if err != nil {
			log.Printf("WARNING: loading stored definitions: %v", err)
		}
		for _, r := range records {
			def, err := forms.NewDefinition(r.ID, r.Name, []byte(r.Schema))
			if err != nil {
				log.Printf("WARNING: skipping stored form %q: %v", r.ID, err)
				continue
			}
			registry.Register(def)
		}
	}

	// --- Register form tools ---

	registerForm := tools.NewRegisterFormTool(registry, cat)
	s.AddTool(registerForm.Definition(), registerForm.Handle)

	listForms := tools.NewListFormsTool(registry)
	s.AddTool(listForms.Definition(), listForms.Handle)

	// --- Register session tools ---

	createSession := tools.NewCreateSessionTool(store)
	s.AddTool(createSession.Definition(), createSession.Handle)

	getSession := tools.NewGetSessionTool(store)
	s.AddTool(getSession.Definition(), getSession.Handle)

	listSessions := tools.NewListSessionsTool(store)
	s.AddTool(listSessions.Definition(), listSessions.Handle)

	setField := tools.NewSetFieldTool(store)
	s.AddTool(setField.Definition(), setField.Handle)

	validateSession := tools.NewValidateSessionTool(store)
	s.AddTool(validateSession.Definition(), validateSession.Handle)

	// --- Register navigation tools ---

	nextQuestion := tools.NewNextQuestionTool(store)
	s.AddTool(nextQuestion.Definition(), nextQuestion.Handle)

	prevQuestion := tools.NewPrevQuestionTool(store)
	s.AddTool(prevQuestion.Definition(), prevQuestion.Handle)

	currentQuestion := tools.NewCurrentQuestionTool(store)
	s.AddTool(currentQuestion.Definition(), currentQuestion.Handle)

	// --- Register prompts ---

	fillPrompt := prompts.NewFillPrompt()
	s.AddPrompt(fillPrompt.Definition(), fillPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(registry)
	s.AddResource(resourceHandler.CatalogResource(), resourceHandler.HandleCatalog)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used as the default when the catalog
// is disabled or hasn't been initialized.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to drive the form tools.
func serverInstructions() string {
	return `You have access to FormFlow, a form completion MCP server.

## What FormFlow Does

FormFlow manages multi-step, schema-validated form filling. Forms are
registered as JSON Schema documents; each session walks a user through the
form's questions one at a time and validates answers against the schema.

## Workflow

1. form_register — register a form definition (JSON Schema: object type,
   named properties, nested objects, required list, type constraints,
   string format hints). Re-registering an id replaces the definition;
   existing sessions keep the definition they were created with.
2. session_create — open a session for a form. The question order is
   derived once from the schema (depth-first over the object properties)
   and never changes for the session's lifetime.
3. question_current / question_next / question_prev — walk the questions.
   Navigation is positional only and never wraps at the ends.
4. field_set — record an answer by dot-separated path (e.g.
   'applicant.email'). The session re-validates after EVERY answer and the
   response tells you whether the field and the form are valid. Invalid
   answers are stored anyway — fix them by setting the field again.
5. session_validate — full validation report: overall validity plus
   per-question breakdown with messages. When the whole document is valid
   the session becomes complete.
6. session_get / session_list — inspect full session state or list
   sessions (filter by user_id or form_id).

## Important Rules

- Ask the user one question at a time, in the session's question order.
- After field_set reports an invalid field, show the user the messages and
  collect a corrected answer before moving on.
- Values: pass numbers, booleans, null and nested objects as JSON literals
  in the value argument; plain text is stored as a string. Arrays are not
  supported.
- A session's status is a milestone: once complete it stays complete, but
  validity always reflects the latest validation pass — trust validity,
  not status, when deciding whether the data is currently good.
- Use the form-fill prompt when the user wants a guided fill-out.`
}
