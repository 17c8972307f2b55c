package forms_test

import (
	"testing"

	"github.com/HendryAvila/formflow/internal/forms"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := forms.NewRegistry()
	def := mustDefinition(t, "contact", `{"type":"object","properties":{"name":{"type":"string"}}}`)
	r.Register(def)

	got, ok := r.Get("contact")
	if !ok {
		t.Fatal("Get should find a registered form")
	}
	if got.ID != "contact" {
		t.Errorf("ID = %q, want %q", got.ID, "contact")
	}
}

func TestRegistry_GetMissing(t *testing.T) {
	r := forms.NewRegistry()
	if _, ok := r.Get("nope"); ok {
		t.Error("Get should report false for an unregistered id")
	}
}

func TestRegistry_LastWriteWins(t *testing.T) {
	r := forms.NewRegistry()
	r.Register(mustDefinition(t, "f", `{"type":"object","properties":{"a":{"type":"string"}}}`))
	r.Register(mustDefinition(t, "f", `{"type":"object","properties":{"b":{"type":"string"}}}`))

	got, ok := r.Get("f")
	if !ok {
		t.Fatal("form should still be registered")
	}
	if order := got.QuestionOrder(); len(order) != 1 || order[0] != "b" {
		t.Errorf("QuestionOrder() = %v, want [b]", order)
	}
	if n := len(r.List()); n != 1 {
		t.Errorf("List() has %d entries, want 1", n)
	}
}

func TestRegistry_List(t *testing.T) {
	r := forms.NewRegistry()
	r.Register(mustDefinition(t, "one", `{"type":"object"}`))
	r.Register(mustDefinition(t, "two", `{"type":"object"}`))

	defs := r.List()
	if len(defs) != 2 {
		t.Fatalf("List() has %d entries, want 2", len(defs))
	}
	seen := map[string]bool{}
	for _, d := range defs {
		seen[d.ID] = true
	}
	if !seen["one"] || !seen["two"] {
		t.Errorf("List() missing entries: %v", seen)
	}
}
