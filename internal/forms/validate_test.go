package forms_test

import (
	"reflect"
	"testing"

	"github.com/HendryAvila/formflow/internal/forms"
)

// ─── Field-level outcomes ───────────────────────────────────────────────────

func TestValidate_BadFormatFlagsField(t *testing.T) {
	_, st := newTestStore(t)
	s, _ := st.Create("contact", "")

	if err := s.SetField("email", forms.StringValue("not-an-email")); err != nil {
		t.Fatalf("SetField: %v", err)
	}

	if _, validity := s.Progress(); validity != forms.ValidityInvalid {
		t.Errorf("Validity = %q, want invalid", validity)
	}
	fs, ok := s.FieldReport("email")
	if !ok {
		t.Fatal("email should be tracked")
	}
	if fs.SchemaValid {
		t.Error("email should be schema-invalid")
	}
	if len(fs.Messages) == 0 {
		t.Error("invalid field should carry messages")
	}
}

func TestValidate_TracksEveryQuestionPath(t *testing.T) {
	_, st := newTestStore(t)
	s, _ := st.Create("contact", "")

	s.SetField("fullName", forms.StringValue("Alice"))

	// One answer, but all three question paths get field state.
	for _, path := range []string{"fullName", "email", "message"} {
		if _, ok := s.FieldReport(path); !ok {
			t.Errorf("path %q missing from Fields after a validation pass", path)
		}
	}
	fs, _ := s.FieldReport("email")
	if fs.Touched {
		t.Error("unanswered email should not be touched")
	}
}

func TestValidate_AllRequiredValid(t *testing.T) {
	_, st := newTestStore(t)
	s, _ := st.Create("contact", "")

	s.SetField("fullName", forms.StringValue("Alice"))
	s.SetField("email", forms.StringValue("alice@example.com"))

	status, validity := s.Progress()
	if validity != forms.ValidityValid {
		t.Errorf("Validity = %q, want valid", validity)
	}
	if status != forms.StatusComplete {
		t.Errorf("Status = %q, want complete", status)
	}
	for _, path := range []string{"fullName", "email", "message"} {
		fs, _ := s.FieldReport(path)
		if !fs.SchemaValid {
			t.Errorf("field %q should be valid", path)
		}
		if len(fs.Messages) != 0 {
			t.Errorf("field %q should have no messages, got %v", path, fs.Messages)
		}
	}
}

func TestValidate_Idempotent(t *testing.T) {
	_, st := newTestStore(t)
	s, _ := st.Create("contact", "")
	s.SetField("email", forms.StringValue("nope"))

	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	first := map[string]forms.FieldState{}
	for _, path := range s.QuestionOrder {
		fs, _ := s.FieldReport(path)
		first[path] = fs
	}

	if err := s.Validate(); err != nil {
		t.Fatalf("Validate (second): %v", err)
	}
	for _, path := range s.QuestionOrder {
		fs, _ := s.FieldReport(path)
		if !reflect.DeepEqual(first[path], fs) {
			t.Errorf("field %q changed between identical passes:\n  first:  %+v\n  second: %+v",
				path, first[path], fs)
		}
	}
}

// ─── Status semantics ───────────────────────────────────────────────────────

func TestValidate_CompleteIsNotDemoted(t *testing.T) {
	_, st := newTestStore(t)
	s, _ := st.Create("contact", "")

	s.SetField("fullName", forms.StringValue("Alice"))
	s.SetField("email", forms.StringValue("alice@example.com"))
	if status, _ := s.Progress(); status != forms.StatusComplete {
		t.Fatalf("Status = %q, want complete", status)
	}

	// Break the data again: validity flips, status stays.
	s.SetField("email", forms.StringValue("broken"))
	status, validity := s.Progress()
	if validity != forms.ValidityInvalid {
		t.Errorf("Validity = %q, want invalid after the bad edit", validity)
	}
	if status != forms.StatusComplete {
		t.Errorf("Status = %q, want complete to stick as a milestone", status)
	}
}

// ─── Nested documents ───────────────────────────────────────────────────────

const applicationSchema = `{
	"type": "object",
	"required": ["applicant"],
	"properties": {
		"applicant": {
			"type": "object",
			"required": ["fullName", "email"],
			"properties": {
				"fullName": {"type": "string", "minLength": 1},
				"email": {"type": "string", "format": "email"}
			}
		},
		"position": {"type": "string"}
	}
}`

func TestValidate_NestedPathViolation(t *testing.T) {
	r := forms.NewRegistry()
	r.Register(mustDefinition(t, "application", applicationSchema))
	st := forms.NewStore(r)
	s, _ := st.Create("application", "")

	s.SetField("applicant.fullName", forms.StringValue("Alice"))
	s.SetField("applicant.email", forms.StringValue("not-an-email"))

	fs, ok := s.FieldReport("applicant.email")
	if !ok {
		t.Fatal("applicant.email should be tracked")
	}
	if fs.SchemaValid {
		t.Error("applicant.email should be schema-invalid")
	}
	if fs2, _ := s.FieldReport("applicant.fullName"); !fs2.SchemaValid {
		t.Errorf("applicant.fullName should be valid, messages: %v", fs2.Messages)
	}
}

func TestValidate_NestedPathWinsOverScalar(t *testing.T) {
	r := forms.NewRegistry()
	r.Register(mustDefinition(t, "application", applicationSchema))
	st := forms.NewStore(r)
	s, _ := st.Create("application", "")

	// A scalar at "applicant" conflicts with the nested paths below it.
	// Reconstruction must deterministically keep the container.
	s.SetField("applicant", forms.StringValue("oops"))
	s.SetField("applicant.fullName", forms.StringValue("Alice"))
	s.SetField("applicant.email", forms.StringValue("alice@example.com"))

	if _, validity := s.Progress(); validity != forms.ValidityValid {
		fs, _ := s.FieldReport("applicant")
		t.Errorf("Validity = %q, want valid (applicant messages: %v)", validity, fs.Messages)
	}
}

// ─── Compilation failures ───────────────────────────────────────────────────

func TestValidate_UncompilableSchema(t *testing.T) {
	// Parses as JSON but fails schema compilation.
	r := forms.NewRegistry()
	r.Register(mustDefinition(t, "broken", `{
		"type": "object",
		"properties": {"a": {"type": "no-such-type"}}
	}`))
	st := forms.NewStore(r)
	s, err := st.Create("broken", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Validate(); err == nil {
		t.Error("Validate should surface the compilation error")
	}

	// The answer is still recorded even though validation errors out.
	if err := s.SetField("a", forms.StringValue("x")); err == nil {
		t.Error("SetField should surface the compilation error")
	}
	if _, ok := s.Data["a"]; !ok {
		t.Error("the answer should be recorded despite the validation error")
	}
}
