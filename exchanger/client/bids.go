package client

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/exbot/goexch/exchanger/types"
)

// CreateBidRequest is the input to CreateBid. Fields carries the filled
// form values keyed by field name (account1, cfgive3, ...); the required
// names come from DirectionDetail.RequiredFields. CreateBid itself does not
// validate them - that is FullExchange's job, or the caller's.
type CreateBidRequest struct {
	DirectionID string
	Amount      string
	Fields      map[string]string
	Action      Action
	APIID       string // caller's own bid id, for tracking
	PartnerID   int
	CallbackURL string // webhook POST target for status changes
}

// CreateBid creates an exchange bid.
func (c *Client) CreateBid(ctx context.Context, req CreateBidRequest) (*types.Bid, error) {
	action := req.Action
	if action == "" {
		action = ActionGive
	}
	code, ok := action.code()
	if !ok {
		return nil, newError(ErrValidation, MethodCreateBid, "", "invalid action %q (valid: give, get, give_com, get_com)", action)
	}

	params := map[string]string{
		"direction_id": req.DirectionID,
		"calc_amount":  req.Amount,
		"calc_action":  code,
	}
	if req.APIID != "" {
		params["api_id"] = req.APIID
	}
	if req.PartnerID > 0 {
		params["partner_id"] = strconv.Itoa(req.PartnerID)
	}
	if req.CallbackURL != "" {
		params["callback_url"] = req.CallbackURL
	}
	for name, value := range req.Fields {
		params[name] = value
	}

	log.Infof("creating bid: direction=%s amount=%s", req.DirectionID, req.Amount)
	payload, err := c.call(ctx, MethodCreateBid, params)
	if err != nil {
		return nil, err
	}

	bid, err := decodeBid(MethodCreateBid, payload)
	if err != nil {
		return nil, err
	}

	log.Infof("bid created: id=%s status=%q %s %s -> %s %s",
		bid.ID, bid.StatusTitle, bid.AmountGive, bid.CurrencyGive, bid.AmountGet, bid.CurrencyGet)
	switch {
	case bid.CanPayViaAPI():
		log.Infof("payment: via API (PayBid)")
	case bid.PaymentURL() != "":
		log.Infof("payment: via merchant -> %s", bid.PaymentURL())
	default:
		log.Warnf("payment: method not determined")
	}
	return bid, nil
}

// GetBidStatus fetches the current snapshot of a bid by hash or by id; at
// least one is required. Only bids created through this API are visible.
func (c *Client) GetBidStatus(ctx context.Context, hash, bidID string) (*types.Bid, error) {
	if hash == "" && bidID == "" {
		return nil, newError(ErrValidation, MethodBidInfo, "", "either hash or bid id is required")
	}

	params := map[string]string{}
	if hash != "" {
		params["hash"] = hash
	}
	if bidID != "" {
		params["id"] = bidID
	}

	payload, err := c.call(ctx, MethodBidInfo, params)
	if err != nil {
		return nil, err
	}

	bid, err := decodeBid(MethodBidInfo, payload)
	if err != nil {
		return nil, err
	}
	log.Infof("bid %s status: %s", bid.ID, bid.StatusTitle)
	return bid, nil
}

// CancelBid cancels a bid by hash. The upstream only honours this when the
// bid's capability map marks cancel as "api"; use SafeCancel to check first.
func (c *Client) CancelBid(ctx context.Context, hash string) (json.RawMessage, error) {
	log.Infof("cancelling bid: hash=%s", hash)
	return c.call(ctx, MethodCancelBid, map[string]string{"hash": hash})
}

// PayBid confirms payment of a bid by hash. Only works when the capability
// map marks pay as "api" (no merchant in the direction); use SafePay to
// check first.
func (c *Client) PayBid(ctx context.Context, hash string) (json.RawMessage, error) {
	log.Infof("confirming payment: hash=%s", hash)
	return c.call(ctx, MethodPayBid, map[string]string{"hash": hash})
}

// ConfirmBid marks a bid completed (success_bid).
func (c *Client) ConfirmBid(ctx context.Context, hash string) (json.RawMessage, error) {
	log.Infof("confirming completion: hash=%s", hash)
	return c.call(ctx, MethodSuccessBid, map[string]string{"hash": hash})
}

// ExchangesQuery filters the get_exchanges listing. Zero values mean unset.
type ExchangesQuery struct {
	StartTime     int64 // unix seconds
	EndTime       int64
	IP            string
	BidID         string
	APIID         string
	StatusHistory bool
	Limit         int
	Offset        int
}

func (q ExchangesQuery) params() map[string]string {
	p := map[string]string{}
	if q.StartTime > 0 {
		p["start_time"] = strconv.FormatInt(q.StartTime, 10)
	}
	if q.EndTime > 0 {
		p["end_time"] = strconv.FormatInt(q.EndTime, 10)
	}
	if q.IP != "" {
		p["ip"] = q.IP
	}
	if q.BidID != "" {
		p["id"] = q.BidID
	}
	if q.APIID != "" {
		p["api_id"] = q.APIID
	}
	if q.StatusHistory {
		p["status_history"] = "1"
	}
	if q.Limit > 0 {
		p["limit"] = strconv.Itoa(q.Limit)
	}
	if q.Offset > 0 {
		p["offset"] = strconv.Itoa(q.Offset)
	}
	return p
}

// GetExchanges lists bids created under this credential. The upstream wraps
// the list in an items key on some installations and sends it bare on
// others; both shapes are accepted.
func (c *Client) GetExchanges(ctx context.Context, query ExchangesQuery) ([]types.ExchangeRecord, error) {
	payload, err := c.call(ctx, MethodGetExchanges, query.params())
	if err != nil {
		return nil, err
	}

	var records []types.ExchangeRecord
	trimmed := strings.TrimSpace(string(payload))
	switch {
	case strings.HasPrefix(trimmed, "["):
		if err := json.Unmarshal(payload, &records); err != nil {
			return nil, newError(ErrAPIResponse, MethodGetExchanges, "", "unexpected payload: %v", err)
		}
	default:
		var wrapped struct {
			Items []types.ExchangeRecord `json:"items"`
		}
		if err := json.Unmarshal(payload, &wrapped); err != nil {
			return nil, newError(ErrAPIResponse, MethodGetExchanges, "", "unexpected payload: %v", err)
		}
		records = wrapped.Items
	}

	log.Infof("exchanges: %d records", len(records))
	return records, nil
}

func decodeBid(method string, payload json.RawMessage) (*types.Bid, error) {
	var bid types.Bid
	if err := json.Unmarshal(payload, &bid); err != nil {
		return nil, newError(ErrAPIResponse, method, "", "unexpected payload: %v", err)
	}
	bid.Raw = payload
	return &bid, nil
}
