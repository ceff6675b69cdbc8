package client

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/exbot/goexch/exchanger/types"
)

// SafePay confirms payment only after checking the bid's capability map.
// When a merchant mediates the payment it fails locally with
// ErrPaymentNotAvailable, carrying the merchant URL so the caller can hand
// it to the user. No network call is made when the guard trips.
func (c *Client) SafePay(ctx context.Context, bid *types.Bid) (json.RawMessage, error) {
	if !bid.CanPayViaAPI() {
		if url := bid.PaymentURL(); url != "" {
			return nil, newError(ErrPaymentNotAvailable, MethodPayBid, "",
				"payment goes through a merchant; the user must pay at %s, the status updates once funds arrive", url)
		}
		return nil, newError(ErrPaymentNotAvailable, MethodPayBid, "",
			"payment via API is not available (api_actions.pay=%q)", bid.APIActions.Pay)
	}
	return c.PayBid(ctx, bid.Hash)
}

// SafeCancel cancels only after checking the bid's capability map, failing
// locally with ErrCancelNotAvailable otherwise. The message carries the
// site cancellation URL when one applies.
func (c *Client) SafeCancel(ctx context.Context, bid *types.Bid) (json.RawMessage, error) {
	if !bid.CanCancelViaAPI() {
		if url := bid.CancelURL(); url != "" {
			return nil, newError(ErrCancelNotAvailable, MethodCancelBid, "",
				"cancel via API is not available; cancellation link: %s", url)
		}
		return nil, newError(ErrCancelNotAvailable, MethodCancelBid, "",
			"cancel via API is not available (api_actions.cancel=%q)", bid.APIActions.Cancel)
	}
	return c.CancelBid(ctx, bid.Hash)
}

// FullExchangeRequest is the input to FullExchange. SkipValidation bypasses
// the required-field check (and its extra get_direction round trip).
type FullExchangeRequest struct {
	DirectionID    string
	Amount         string
	Fields         map[string]string
	Action         Action
	APIID          string
	CallbackURL    string
	SkipValidation bool
}

// FullExchangeResult pairs the created bid with the calculation that
// preceded it, so a clamped amount stays visible to the caller.
type FullExchangeResult struct {
	Bid  *types.Bid
	Calc *types.CalcResult
}

// AmountAdjusted reports whether the upstream clamped the requested amount
// during the pre-creation calculation.
func (r *FullExchangeResult) AmountAdjusted() bool {
	return r.Calc != nil && r.Calc.AmountCorrected()
}

// FullExchange runs the whole creation pipeline: calculate, validate the
// required fields against the direction detail, create the bid. Validation
// is all-or-nothing: every missing required field is collected and reported
// in one ErrValidation before any creation call. A clamped amount does not
// stop the pipeline; it is surfaced on the result.
func (c *Client) FullExchange(ctx context.Context, req FullExchangeRequest) (*FullExchangeResult, error) {
	calc, err := c.Calculate(ctx, CalcRequest{
		DirectionID: req.DirectionID,
		Amount:      req.Amount,
		Action:      req.Action,
	})
	if err != nil {
		return nil, err
	}
	if calc.AmountCorrected() {
		log.Warnf("amount %s outside limits (%s-%s); upstream will adjust on creation",
			req.Amount, calc.MinGive, calc.MaxGive)
	}

	if !req.SkipValidation {
		detail, err := c.GetDirection(ctx, req.DirectionID)
		if err != nil {
			return nil, err
		}
		if missing := detail.MissingFields(req.Fields); len(missing) > 0 {
			return nil, newError(ErrValidation, MethodCreateBid, "",
				"missing required fields: %s", strings.Join(missing, ", "))
		}
	}

	bid, err := c.CreateBid(ctx, CreateBidRequest{
		DirectionID: req.DirectionID,
		Amount:      req.Amount,
		Fields:      req.Fields,
		Action:      req.Action,
		APIID:       req.APIID,
		CallbackURL: req.CallbackURL,
	})
	if err != nil {
		return nil, err
	}
	return &FullExchangeResult{Bid: bid, Calc: calc}, nil
}
