package types

import (
	"encoding/json"
	"reflect"
	"sort"
	"testing"
	"testing/quick"
)

func TestFieldListAcceptsBothEncodings(t *testing.T) {
	asObject := []byte(`{
		"account1": {"name": "account1", "label": "Card number", "req": 1},
		"cfgive3":  {"name": "cfgive3", "label": "Phone", "req": "0"}
	}`)
	asArray := []byte(`[
		{"name": "account1", "label": "Card number", "req": 1},
		{"name": "cfgive3", "label": "Phone", "req": "0"}
	]`)

	var fromObject, fromArray FieldList
	if err := json.Unmarshal(asObject, &fromObject); err != nil {
		t.Fatalf("object form: %v", err)
	}
	if err := json.Unmarshal(asArray, &fromArray); err != nil {
		t.Fatalf("array form: %v", err)
	}

	if len(fromObject) != len(fromArray) {
		t.Fatalf("count mismatch: object=%d array=%d", len(fromObject), len(fromArray))
	}
	if !reflect.DeepEqual(fieldNames(fromObject), fieldNames(fromArray)) {
		t.Errorf("element mismatch: object=%v array=%v", fieldNames(fromObject), fieldNames(fromArray))
	}
}

func TestFieldListDegenerateShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"null", `null`},
		{"empty array", `[]`},
		{"empty object", `{}`},
		{"string noise", `"nothing"`},
		{"number noise", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l FieldList
			if err := json.Unmarshal([]byte(tt.input), &l); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(l) != 0 {
				t.Errorf("expected empty list, got %d entries", len(l))
			}
		})
	}
}

func TestFieldListDecodeIsIdempotent(t *testing.T) {
	var first FieldList
	if err := json.Unmarshal([]byte(`{"b": {"name": "b"}, "a": {"name": "a", "req": "1"}}`), &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// Re-encoding an already-normalized list and decoding it again must not
	// change it.
	raw, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var second FieldList
	if err := json.Unmarshal(raw, &second); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("round trip changed the list: %v != %v", first, second)
	}
}

// Both encodings of the same collection always normalize to the same set of
// field names, whatever the names are.
func TestFieldListEncodingEquivalenceProperty(t *testing.T) {
	property := func(names []string) bool {
		seen := map[string]bool{}
		object := map[string]Field{}
		var array []Field
		for _, name := range names {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			object[name] = Field{Name: name}
			array = append(array, Field{Name: name})
		}

		objectJSON, err := json.Marshal(object)
		if err != nil {
			return false
		}
		arrayJSON, err := json.Marshal(array)
		if err != nil {
			return false
		}

		var fromObject, fromArray FieldList
		if err := json.Unmarshal(objectJSON, &fromObject); err != nil {
			return false
		}
		if err := json.Unmarshal(arrayJSON, &fromArray); err != nil {
			return false
		}

		a, b := fieldNames(fromObject), fieldNames(fromArray)
		sort.Strings(a)
		sort.Strings(b)
		return reflect.DeepEqual(a, b)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestOptionListNormalization(t *testing.T) {
	input := []byte(`{
		"name": "bank", "label": "Bank", "type": "select", "req": "1",
		"options": {"sber": {"value": "sber", "label": "Sber"}, "tink": {"value": 2, "label": "Tinkoff"}}
	}`)
	var f Field
	if err := json.Unmarshal(input, &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(f.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(f.Options))
	}
	if f.Options[0].Value.String() != "sber" {
		t.Errorf("options[0].value = %q", f.Options[0].Value)
	}
	if f.Options[1].Value.String() != "2" {
		t.Errorf("numeric option value = %q, want \"2\"", f.Options[1].Value)
	}

	// Absent options decode to an empty set.
	var plain Field
	if err := json.Unmarshal([]byte(`{"name": "account1", "type": "text", "req": 1}`), &plain); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(plain.Options) != 0 {
		t.Errorf("expected no options, got %d", len(plain.Options))
	}
}

func TestRequiredFlagComparesAsText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		required bool
	}{
		{"int one", `{"req": 1}`, true},
		{"string one", `{"req": "1"}`, true},
		{"int zero", `{"req": 0}`, false},
		{"string zero", `{"req": "0"}`, false},
		{"absent", `{}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Field
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if f.Required() != tt.required {
				t.Errorf("Required() = %v, want %v", f.Required(), tt.required)
			}
		})
	}
}

func fieldNames(fields []Field) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}
