package types

import (
	"encoding/json"
	"strings"
)

// APIActions is the per-bid capability map. Pay and Cancel each hold "api"
// when the action can be invoked directly, an HTTP URL when the user must be
// redirected, or a disabled/absent marker. The map is re-read on every fetch
// because it changes as the bid moves through its lifecycle.
type APIActions struct {
	Pay         FlexString `json:"pay"`
	Cancel      FlexString `json:"cancel"`
	Type        string     `json:"type"`
	Instruction string     `json:"instruction"`
	PayAmount   FlexString `json:"pay_amount"`
}

// Bid is one exchange order as reported by the upstream. Hash is the stable
// identifier used for all follow-up calls. Instances are immutable
// snapshots; a status fetch yields a new one.
type Bid struct {
	ID           FlexString `json:"id"`
	Hash         string     `json:"hash"`
	URL          string     `json:"url"`
	Status       FlexString `json:"status"`
	StatusTitle  string     `json:"status_title"`
	AmountGive   FlexString `json:"amount_give"`
	AmountGet    FlexString `json:"amount_get"`
	CurrencyGive string     `json:"currency_code_give"`
	CurrencyGet  string     `json:"currency_code_get"`
	APIActions   APIActions `json:"api_actions"`

	// Raw is the untouched data payload the bid was decoded from.
	Raw json.RawMessage `json:"-"`
}

// CanPayViaAPI reports whether payment can be confirmed through pay_bid.
// This is only the case when no merchant mediates the direction; with a
// merchant in play the payment confirms itself once funds arrive.
func (b *Bid) CanPayViaAPI() bool {
	return b.APIActions.Pay.String() == "api"
}

// PaymentURL returns the merchant payment link, or "" when payment is via
// API or disabled.
func (b *Bid) PaymentURL() string {
	if pay := b.APIActions.Pay.String(); strings.HasPrefix(pay, "http") {
		return pay
	}
	return ""
}

// CanCancelViaAPI reports whether the bid can be cancelled through
// cancel_bid.
func (b *Bid) CanCancelViaAPI() bool {
	return b.APIActions.Cancel.String() == "api"
}

// CancelURL returns the site cancellation link, or "" when cancel is via API
// or disabled.
func (b *Bid) CancelURL() string {
	if cancel := b.APIActions.Cancel.String(); strings.HasPrefix(cancel, "http") {
		return cancel
	}
	return ""
}

// ExchangeRecord is one entry of the get_exchanges listing.
type ExchangeRecord struct {
	ID           FlexString `json:"id"`
	Hash         string     `json:"hash"`
	APIID        string     `json:"api_id"`
	Status       FlexString `json:"status"`
	StatusTitle  string     `json:"status_title"`
	AmountGive   FlexString `json:"amount_give"`
	AmountGet    FlexString `json:"amount_get"`
	CurrencyGive string     `json:"currency_code_give"`
	CurrencyGet  string     `json:"currency_code_get"`
	Date         FlexString `json:"date"`
}
