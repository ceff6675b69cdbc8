package types

import "encoding/json"

// CalcResult is the get_calc payload. All amounts stay as wire text so no
// precision is lost; use the FlexString decimal accessors to do arithmetic.
type CalcResult struct {
	SumGive      FlexString `json:"sum_give"`
	SumGiveCom   FlexString `json:"sum_give_com"`
	SumGet       FlexString `json:"sum_get"`
	SumGetCom    FlexString `json:"sum_get_com"`
	CurrencyGive string     `json:"currency_code_give"`
	CurrencyGet  string     `json:"currency_code_get"`
	CourseGive   FlexString `json:"course_give"`
	CourseGet    FlexString `json:"course_get"`
	Reserve      FlexString `json:"reserve"`
	ComGive      FlexString `json:"com_give"`
	ComGet       FlexString `json:"com_get"`
	MinGive      FlexString `json:"min_give"`
	MaxGive      FlexString `json:"max_give"`
	MinGet       FlexString `json:"min_get"`
	MaxGet       FlexString `json:"max_get"`
	Changed      FlexString `json:"changed"`

	// Raw is the untouched data payload the result was decoded from.
	Raw json.RawMessage `json:"-"`
}

// AmountCorrected reports whether the upstream clamped the requested amount
// to fit the direction's limits. When true, the sums above are NOT what was
// asked for and should be surfaced before creating a bid.
func (c *CalcResult) AmountCorrected() bool {
	return c.Changed.String() == "1"
}
