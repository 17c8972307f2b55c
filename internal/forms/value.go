package forms

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which member of the answer variant is populated.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
)

// Value is a single form answer: a tagged variant over the JSON shapes an
// answer may take (string, number, boolean, null, nested document).
// Array answers are rejected at the decode boundary — array-typed
// questions are not part of the question model.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	obj  map[string]Value
}

// StringValue returns a string answer.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue returns a numeric answer.
func NumberValue(n float64) Value { return Value{kind: KindNumber, num: n} }

// BoolValue returns a boolean answer.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// NullValue returns an explicit null answer.
func NullValue() Value { return Value{kind: KindNull} }

// ObjectValue returns a nested-document answer.
func ObjectValue(fields map[string]Value) Value { return Value{kind: KindObject, obj: fields} }

// ValueFromJSON converts a json.Unmarshal-ed value into a Value. It fails
// on arrays and anything else that is not a supported answer shape, so
// callers can reject bad answers before touching session state.
func ValueFromJSON(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return NullValue(), nil
	case string:
		return StringValue(v), nil
	case bool:
		return BoolValue(v), nil
	case float64:
		return NumberValue(v), nil
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("forms: invalid number %q: %w", v.String(), err)
		}
		return NumberValue(n), nil
	case map[string]any:
		fields := make(map[string]Value, len(v))
		for name, child := range v {
			cv, err := ValueFromJSON(child)
			if err != nil {
				return Value{}, err
			}
			fields[name] = cv
		}
		return ObjectValue(fields), nil
	default:
		return Value{}, fmt.Errorf("forms: unsupported answer type %T", raw)
	}
}

// Kind reports which variant member is populated.
func (v Value) Kind() Kind { return v.kind }

// Interface converts the value back to plain JSON shapes (string, float64,
// bool, nil, map[string]any) for document reconstruction and validation.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindObject:
		doc := make(map[string]any, len(v.obj))
		for name, child := range v.obj {
			doc[name] = child.Interface()
		}
		return doc
	default:
		return nil
	}
}

// MarshalJSON renders the value as its plain JSON form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes any non-array JSON value.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ValueFromJSON(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
