package forms

import js "github.com/invopop/jsonschema"

// DeriveQuestionOrder flattens an object schema into the fixed sequence of
// question paths presented during navigation.
//
// Traversal is depth-first pre-order: each property path is appended
// before its own children are expanded, and only object-typed properties
// with named properties of their own recurse. Non-object leaves (strings,
// numbers, arrays) terminate at their own path. Array items are never
// expanded element-wise, and composition keywords (oneOf/anyOf/$ref) are
// not traversed — paths under them simply do not become questions.
//
// The schema model preserves property authoring order, so the derived
// order is stable for a fixed schema.
func DeriveQuestionOrder(schema *js.Schema) []string {
	var order []string
	collectPaths(schema, "", &order)
	return order
}

func collectPaths(s *js.Schema, prefix string, order *[]string) {
	if s == nil || s.Type != "object" || s.Properties == nil {
		return
	}
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		path := pair.Key
		if prefix != "" {
			path = prefix + "." + pair.Key
		}
		*order = append(*order, path)
		collectPaths(pair.Value, path, order)
	}
}
