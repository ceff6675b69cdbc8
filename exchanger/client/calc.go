package client

import (
	"context"
	"encoding/json"

	"github.com/exbot/goexch/exchanger/types"
)

// Action selects which leg of the exchange a requested amount refers to.
type Action string

const (
	ActionGive    Action = "give"     // amount is in the "give" currency
	ActionGet     Action = "get"      // amount is in the "get" currency
	ActionGiveCom Action = "give_com" // give amount, commission included
	ActionGetCom  Action = "get_com"  // get amount, commission included
)

// actionCodes is the fixed calc_action wire encoding.
var actionCodes = map[Action]string{
	ActionGive:    "1",
	ActionGet:     "2",
	ActionGiveCom: "3",
	ActionGetCom:  "4",
}

func (a Action) code() (string, bool) {
	code, ok := actionCodes[a]
	return code, ok
}

// CalcRequest is the input to Calculate. Amount is decimal text; it is
// never parsed to a float on the way out. An empty Action means ActionGive.
type CalcRequest struct {
	DirectionID string
	Amount      string
	Action      Action
	CD          string // optional passthrough for form fields flagged cd=1
}

// Calculate runs the amount calculator for a direction. An unknown Action
// fails locally with ErrValidation before any network traffic.
func (c *Client) Calculate(ctx context.Context, req CalcRequest) (*types.CalcResult, error) {
	action := req.Action
	if action == "" {
		action = ActionGive
	}
	code, ok := action.code()
	if !ok {
		return nil, newError(ErrValidation, MethodGetCalc, "", "invalid action %q (valid: give, get, give_com, get_com)", action)
	}

	params := map[string]string{
		"direction_id": req.DirectionID,
		"calc_amount":  req.Amount,
		"calc_action":  code,
	}
	if req.CD != "" {
		params["cd"] = req.CD
	}

	payload, err := c.call(ctx, MethodGetCalc, params)
	if err != nil {
		return nil, err
	}

	var result types.CalcResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, newError(ErrAPIResponse, MethodGetCalc, "", "unexpected payload: %v", err)
	}
	result.Raw = payload

	if result.AmountCorrected() {
		log.Warnf("amount adjusted by upstream; limits %s-%s %s", result.MinGive, result.MaxGive, result.CurrencyGive)
	}
	log.Infof("calc: %s %s -> %s %s", result.SumGive, result.CurrencyGive, result.SumGet, result.CurrencyGet)
	return &result, nil
}
