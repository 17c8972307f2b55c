// Package forms implements the form completion engine: form definitions
// and their registry, question-order derivation, per-session answer state,
// navigation, and schema-driven validation.
//
// The engine performs no I/O. The MCP layer in internal/tools calls into
// it and is responsible for translating sentinel errors into protocol
// error responses.
package forms

import (
	"bytes"
	"encoding/json"
	"fmt"

	js "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Definition is a registered form: an id, a display name, and the
// structural schema its sessions are validated against.
//
// A Definition is immutable once registered. Re-registering the same id
// replaces the whole Definition object, so sessions holding a snapshot
// keep validating against the schema they were created with.
type Definition struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	RawSchema json.RawMessage `json:"schema"`

	parsed     *js.Schema
	compiled   *jsonschema.Schema
	compileErr error
}

// NewDefinition parses and compiles a form definition. Unparseable JSON is
// rejected outright. A parseable schema that fails compilation is still
// accepted — the compile error resurfaces on every validation attempt
// against it instead.
func NewDefinition(id, name string, rawSchema []byte) (*Definition, error) {
	if id == "" {
		return nil, fmt.Errorf("forms: definition id is required")
	}
	parsed := &js.Schema{}
	if err := json.Unmarshal(rawSchema, parsed); err != nil {
		return nil, fmt.Errorf("forms: parsing schema for %q: %w", id, err)
	}

	def := &Definition{
		ID:        id,
		Name:      name,
		RawSchema: append(json.RawMessage(nil), rawSchema...),
		parsed:    parsed,
	}
	// Compile once here rather than per validation pass. Re-registration
	// replaces the Definition, which replaces the compiled schema with it.
	// Format hints (email, date, ...) assert instead of annotate so that a
	// badly formatted answer actually fails its field.
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	url := id + ".schema.json"
	if err := compiler.AddResource(url, bytes.NewReader(rawSchema)); err != nil {
		def.compileErr = err
	} else {
		def.compiled, def.compileErr = compiler.Compile(url)
	}
	return def, nil
}

// QuestionOrder derives the fixed question sequence for this definition.
func (d *Definition) QuestionOrder() []string {
	return DeriveQuestionOrder(d.parsed)
}

func (d *Definition) compiledSchema() (*jsonschema.Schema, error) {
	if d.compileErr != nil {
		return nil, fmt.Errorf("forms: schema for %q does not compile: %w", d.ID, d.compileErr)
	}
	return d.compiled, nil
}
