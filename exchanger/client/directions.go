package client

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/exbot/goexch/exchanger/types"
)

// CurrencyFilter narrows currency and direction listings by upstream
// currency ids. Zero values mean no filter.
type CurrencyFilter struct {
	GiveID int
	GetID  int
}

func (f CurrencyFilter) params() map[string]string {
	p := map[string]string{}
	if f.GiveID > 0 {
		p["currency_id_give"] = strconv.Itoa(f.GiveID)
	}
	if f.GetID > 0 {
		p["currency_id_get"] = strconv.Itoa(f.GetID)
	}
	return p
}

// TestConnection checks credentials and connectivity via the test method.
func (c *Client) TestConnection(ctx context.Context) (*types.ConnectionInfo, error) {
	payload, err := c.call(ctx, MethodTest, nil)
	if err != nil {
		return nil, err
	}

	var info types.ConnectionInfo
	if err := json.Unmarshal(payload, &info); err != nil {
		return nil, newError(ErrAPIResponse, MethodTest, "", "unexpected payload: %v", err)
	}

	log.Infof("connection OK: user_id=%s ip=%s", info.UserID, info.IP)
	return &info, nil
}

// GetCurrencies lists the currencies available on each side, optionally
// filtered by currency id.
func (c *Client) GetCurrencies(ctx context.Context, filter CurrencyFilter) (*types.Currencies, error) {
	payload, err := c.call(ctx, MethodGetCurrencies, filter.params())
	if err != nil {
		return nil, err
	}

	var currencies types.Currencies
	if err := json.Unmarshal(payload, &currencies); err != nil {
		return nil, newError(ErrAPIResponse, MethodGetCurrencies, "", "unexpected payload: %v", err)
	}

	log.Infof("currencies: %d give, %d get", len(currencies.Give), len(currencies.Get))
	return &currencies, nil
}

// GetDirections lists the configured exchange directions, optionally
// filtered by currency id. The payload must be a list; anything else is a
// malformed envelope.
func (c *Client) GetDirections(ctx context.Context, filter CurrencyFilter) ([]types.Direction, error) {
	payload, err := c.call(ctx, MethodGetDirections, filter.params())
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(payload))
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, newError(ErrAPIResponse, MethodGetDirections, "", "unexpected directions payload: %s", excerpt(payload))
	}

	var directions []types.Direction
	if err := json.Unmarshal(payload, &directions); err != nil {
		return nil, newError(ErrAPIResponse, MethodGetDirections, "", "unexpected payload: %v", err)
	}

	log.Infof("directions: %d", len(directions))
	return directions, nil
}

// FindDirection scans the direction listing for a currency pair by title.
// The give text must appear in the give title; every whitespace-separated
// token of the get text must appear in the get title. Matching is
// case-insensitive. Returns nil when nothing matches.
func (c *Client) FindDirection(ctx context.Context, currencyGive, currencyGet string) (*types.Direction, error) {
	directions, err := c.GetDirections(ctx, CurrencyFilter{})
	if err != nil {
		return nil, err
	}

	giveNeedle := strings.ToLower(currencyGive)
	getTokens := strings.Fields(strings.ToLower(currencyGet))

	for i := range directions {
		d := &directions[i]
		if !strings.Contains(strings.ToLower(d.CurrencyGiveTitle), giveNeedle) {
			continue
		}
		getTitle := strings.ToLower(d.CurrencyGetTitle)
		matched := true
		for _, token := range getTokens {
			if !strings.Contains(getTitle, token) {
				matched = false
				break
			}
		}
		if matched {
			log.Infof("direction found: %s -> %s (id=%s)", d.CurrencyGiveTitle, d.CurrencyGetTitle, d.DirectionID)
			return d, nil
		}
	}

	log.Warnf("direction %s -> %s not found", currencyGive, currencyGet)
	return nil, nil
}

// GetDirection fetches the detail of one direction: courses, limits,
// reserve and the form fields a bid must fill. Limits default to the
// unbounded marker "no" when the upstream omits them.
func (c *Client) GetDirection(ctx context.Context, directionID string) (*types.DirectionDetail, error) {
	payload, err := c.call(ctx, MethodGetDirection, map[string]string{"direction_id": directionID})
	if err != nil {
		return nil, err
	}

	var detail types.DirectionDetail
	if err := json.Unmarshal(payload, &detail); err != nil {
		return nil, newError(ErrAPIResponse, MethodGetDirection, "", "unexpected payload: %v", err)
	}
	detail.Raw = payload

	for _, bound := range []*types.FlexString{&detail.MinGive, &detail.MaxGive, &detail.MinGet, &detail.MaxGet} {
		if *bound == "" {
			*bound = "no"
		}
	}

	log.Infof("direction %s: %s -> %s | course %s:%s | limit %s-%s %s",
		detail.ID, detail.CurrencyGive, detail.CurrencyGet,
		detail.CourseGive, detail.CourseGet,
		detail.MinGive, detail.MaxGive, detail.CurrencyGive)
	return &detail, nil
}
