package types

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexString handles upstream values that may arrive as JSON strings or
// numbers. Premium Exchanger emits the same field as int(0) on one call and
// "0" on the next, so every ambiguous scalar goes through this type and is
// compared as text.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}

	// Numbers (and any other literal) keep their exact wire text. This
	// preserves decimal precision; nothing ever round-trips through float64.
	*s = FlexString(data)
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// Decimal parses the value as an exact decimal amount.
func (s FlexString) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(string(s))
}

// Bound interprets the value as a min/max limit. Upstream sends the literal
// text "no" when a leg is unbounded; the second return value reports whether
// a numeric bound applies.
func (s FlexString) Bound() (decimal.Decimal, bool) {
	if s == "" || strings.EqualFold(string(s), "no") {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(string(s))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// ConnectionInfo is the payload of the "test" method.
type ConnectionInfo struct {
	IP        string     `json:"ip"`
	UserID    FlexString `json:"user_id"`
	Locale    string     `json:"locale"`
	PartnerID FlexString `json:"partner_id"`
}
