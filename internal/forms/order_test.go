package forms_test

import (
	"slices"
	"testing"

	"github.com/HendryAvila/formflow/internal/forms"
)

// mustDefinition parses a definition or fails the test.
func mustDefinition(t *testing.T, id, schema string) *forms.Definition {
	t.Helper()
	def, err := forms.NewDefinition(id, id, []byte(schema))
	if err != nil {
		t.Fatalf("NewDefinition(%q): %v", id, err)
	}
	return def
}

func TestQuestionOrder_NestedObjects(t *testing.T) {
	def := mustDefinition(t, "nested", `{
		"type": "object",
		"properties": {
			"a": {"type": "string"},
			"b": {
				"type": "object",
				"properties": {
					"c": {"type": "string"}
				}
			}
		}
	}`)

	got := def.QuestionOrder()
	want := []string{"a", "b", "b.c"}
	if !slices.Equal(got, want) {
		t.Errorf("QuestionOrder() = %v, want %v", got, want)
	}
}

func TestQuestionOrder_PreservesAuthoringOrder(t *testing.T) {
	// Alphabetical order would be the giveaway of an unordered map.
	def := mustDefinition(t, "ordering", `{
		"type": "object",
		"properties": {
			"zulu": {"type": "string"},
			"alpha": {"type": "string"},
			"mike": {"type": "number"}
		}
	}`)

	got := def.QuestionOrder()
	want := []string{"zulu", "alpha", "mike"}
	if !slices.Equal(got, want) {
		t.Errorf("QuestionOrder() = %v, want %v", got, want)
	}
}

func TestQuestionOrder_LeavesTerminate(t *testing.T) {
	// Arrays and scalars are questions themselves; nothing below them is.
	def := mustDefinition(t, "leaves", `{
		"type": "object",
		"properties": {
			"tags": {"type": "array", "items": {"type": "string"}},
			"count": {"type": "integer"},
			"nested": {
				"type": "object",
				"properties": {
					"deep": {
						"type": "object",
						"properties": {
							"leaf": {"type": "boolean"}
						}
					}
				}
			}
		}
	}`)

	got := def.QuestionOrder()
	want := []string{"tags", "count", "nested", "nested.deep", "nested.deep.leaf"}
	if !slices.Equal(got, want) {
		t.Errorf("QuestionOrder() = %v, want %v", got, want)
	}
}

func TestQuestionOrder_EmptyObject(t *testing.T) {
	def := mustDefinition(t, "empty", `{"type": "object"}`)
	if got := def.QuestionOrder(); len(got) != 0 {
		t.Errorf("QuestionOrder() = %v, want empty", got)
	}
}

func TestQuestionOrder_NonObjectRoot(t *testing.T) {
	def := mustDefinition(t, "scalar-root", `{"type": "string"}`)
	if got := def.QuestionOrder(); len(got) != 0 {
		t.Errorf("QuestionOrder() = %v, want empty", got)
	}
}

func TestQuestionOrder_Deterministic(t *testing.T) {
	const schema = `{
		"type": "object",
		"properties": {
			"one": {"type": "string"},
			"two": {"type": "string"},
			"three": {"type": "object", "properties": {"four": {"type": "string"}}}
		}
	}`
	first := mustDefinition(t, "det", schema).QuestionOrder()
	for i := 0; i < 20; i++ {
		if got := mustDefinition(t, "det", schema).QuestionOrder(); !slices.Equal(got, first) {
			t.Fatalf("run %d: QuestionOrder() = %v, want %v", i, got, first)
		}
	}
}

func TestNewDefinition_RejectsUnparseableJSON(t *testing.T) {
	if _, err := forms.NewDefinition("bad", "bad", []byte(`{not json`)); err == nil {
		t.Error("NewDefinition should fail on unparseable JSON")
	}
}

func TestNewDefinition_RequiresID(t *testing.T) {
	if _, err := forms.NewDefinition("", "anon", []byte(`{"type":"object"}`)); err == nil {
		t.Error("NewDefinition should fail on empty id")
	}
}
