package types

import "encoding/json"

// Currency is one entry of the get_direction_currencies listing.
type Currency struct {
	ID    FlexString `json:"id"`
	Title string     `json:"title"`
	Code  string     `json:"code"`
}

// Currencies holds the two sides of the currency listing.
type Currencies struct {
	Give []Currency `json:"give"`
	Get  []Currency `json:"get"`
}

// Direction is one entry of the get_directions listing.
type Direction struct {
	DirectionID       FlexString `json:"direction_id"`
	CurrencyGiveID    FlexString `json:"currency_give_id"`
	CurrencyGiveTitle string     `json:"currency_give_title"`
	CurrencyGetID     FlexString `json:"currency_get_id"`
	CurrencyGetTitle  string     `json:"currency_get_title"`
	CurrencyCodeGive  string     `json:"currency_code_give"`
	CurrencyCodeGet   string     `json:"currency_code_get"`
	CourseGive        FlexString `json:"course_give"`
	CourseGet         FlexString `json:"course_get"`
	Reserve           FlexString `json:"reserve"`
}

// DirectionDetail is the get_direction payload: courses, limits, reserve and
// the three form-field groups. Min/max limits hold the text "no" when a leg
// is unbounded.
type DirectionDetail struct {
	ID           FlexString      `json:"id"`
	URL          string          `json:"url"`
	CurrencyGive string          `json:"currency_code_give"`
	CurrencyGet  string          `json:"currency_code_get"`
	CourseGive   FlexString      `json:"course_give"`
	CourseGet    FlexString      `json:"course_get"`
	Reserve      FlexString      `json:"reserve"`
	MinGive      FlexString      `json:"min_give"`
	MaxGive      FlexString      `json:"max_give"`
	MinGet       FlexString      `json:"min_get"`
	MaxGet       FlexString      `json:"max_get"`
	GiveFields   FieldList       `json:"give_fields"`
	GetFields    FieldList       `json:"get_fields"`
	DirFields    FieldList       `json:"dir_fields"`
	Info         json.RawMessage `json:"info"`

	// Raw is the untouched data payload the detail was decoded from.
	Raw json.RawMessage `json:"-"`
}

// AllFields returns the give, get and direction field groups as one list.
func (d *DirectionDetail) AllFields() []Field {
	all := make([]Field, 0, len(d.GiveFields)+len(d.GetFields)+len(d.DirFields))
	all = append(all, d.GiveFields...)
	all = append(all, d.GetFields...)
	all = append(all, d.DirFields...)
	return all
}

// RequiredFields returns the fields that must be filled on bid creation.
func (d *DirectionDetail) RequiredFields() []Field {
	var req []Field
	for _, f := range d.AllFields() {
		if f.Required() {
			req = append(req, f)
		}
	}
	return req
}

// OptionalFields returns the fields that may be left empty.
func (d *DirectionDetail) OptionalFields() []Field {
	var opt []Field
	for _, f := range d.AllFields() {
		if !f.Required() {
			opt = append(opt, f)
		}
	}
	return opt
}

// MissingFields reports the names of required fields that are absent or
// empty in the supplied values. An empty result means the values are
// complete.
func (d *DirectionDetail) MissingFields(values map[string]string) []string {
	var missing []string
	for _, f := range d.RequiredFields() {
		if values[f.Name] == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}
