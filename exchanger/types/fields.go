package types

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Field describes one form input a direction requires on bid creation.
// Name is the form key sent back in create_bid; Req is the requirement flag
// (int or string upstream, compared as text).
type Field struct {
	Name    string     `json:"name"`
	Label   string     `json:"label"`
	Type    string     `json:"type"`
	Req     FlexString `json:"req"`
	Options OptionList `json:"options"`
}

// Required reports whether the field must be filled (req == "1").
func (f Field) Required() bool {
	return f.Req.String() == "1"
}

// Option is one selectable value of a select-type field.
type Option struct {
	Value FlexString `json:"value"`
	Label string     `json:"label"`
}

// FieldList accepts the upstream's inconsistent fields encoding: an array of
// objects, an object keyed by field name, or nothing at all. Map values are
// ordered by key so decoding is deterministic; upstream promises no order
// either way.
type FieldList []Field

func (l *FieldList) UnmarshalJSON(data []byte) error {
	*l = nil
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || string(data) == "null":
		return nil
	case data[0] == '[':
		var v []Field
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*l = v
		return nil
	case data[0] == '{':
		var m map[string]Field
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(FieldList, 0, len(m))
		for _, k := range keys {
			out = append(out, m[k])
		}
		*l = out
		return nil
	default:
		// Scalar noise normalizes to an empty list.
		return nil
	}
}

// OptionList normalizes a field's options the same way FieldList normalizes
// fields. Payloads without options decode to an empty list.
type OptionList []Option

func (l *OptionList) UnmarshalJSON(data []byte) error {
	*l = nil
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || string(data) == "null":
		return nil
	case data[0] == '[':
		var v []Option
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*l = v
		return nil
	case data[0] == '{':
		var m map[string]Option
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(OptionList, 0, len(m))
		for _, k := range keys {
			out = append(out, m[k])
		}
		*l = out
		return nil
	default:
		return nil
	}
}
