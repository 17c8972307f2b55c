package forms

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validate rebuilds the nested answer document from the flat path map,
// checks it against the definition snapshot's schema, and redistributes
// every violation onto per-field state. Field state for every question
// path is fully rewritten on each pass, so two passes with no intervening
// edits produce identical results.
//
// On a valid document the session becomes complete; an invalid document
// never demotes a previously reached complete status.
func (s *Session) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateLocked()
}

func (s *Session) validateLocked() error {
	schema, err := s.definition.compiledSchema()
	if err != nil {
		return err
	}

	doc := buildDocument(s.Data)
	violations := make(map[string][]string)
	valid := true
	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return fmt.Errorf("forms: validating session %s: %w", s.ID, err)
		}
		valid = false
		collectViolations(ve, violations)
	}

	for _, path := range s.QuestionOrder {
		fs := s.Fields[path]
		if fs == nil {
			fs = &FieldState{Path: path}
			s.Fields[path] = fs
		}
		msgs := violations[path]
		if msgs == nil {
			msgs = []string{}
		}
		fs.SchemaValid = len(msgs) == 0
		fs.Messages = msgs
	}

	if valid {
		s.Validity = ValidityValid
		s.Status = StatusComplete
	} else {
		s.Validity = ValidityInvalid
	}
	return nil
}

// buildDocument reconstructs the nested document from dot-separated paths.
// Paths are applied in sorted order so that a nested path always wins over
// a scalar occupying one of its intermediate segments, independent of map
// iteration order.
func buildDocument(data map[string]Value) map[string]any {
	paths := make([]string, 0, len(data))
	for p := range data {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	doc := make(map[string]any)
	for _, path := range paths {
		segments := strings.Split(path, ".")
		node := doc
		for _, seg := range segments[:len(segments)-1] {
			child, ok := node[seg].(map[string]any)
			if !ok {
				// A non-container in an intermediate position is silently
				// replaced by a fresh container.
				child = make(map[string]any)
				node[seg] = child
			}
			node = child
		}
		node[segments[len(segments)-1]] = data[path].Interface()
	}
	return doc
}

// collectViolations walks the validator's error tree and groups leaf
// violation messages by dot path.
func collectViolations(ve *jsonschema.ValidationError, out map[string][]string) {
	if len(ve.Causes) == 0 {
		path := pointerToPath(ve.InstanceLocation)
		out[path] = append(out[path], ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectViolations(cause, out)
	}
}

// pointerToPath converts a JSON pointer instance location to the
// dot-separated field path convention: "/contact/email" becomes
// "contact.email", the root pointer "" stays "".
func pointerToPath(pointer string) string {
	trimmed := strings.TrimPrefix(pointer, "/")
	if trimmed == "" {
		return ""
	}
	parts := strings.Split(trimmed, "/")
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		parts[i] = strings.ReplaceAll(part, "~0", "~")
	}
	return strings.Join(parts, ".")
}
