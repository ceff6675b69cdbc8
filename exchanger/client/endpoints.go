package client

// Premium Exchanger userapi v1 method names. Each is appended to the
// configured base URL as the request path.
const (
	MethodTest          = "test"
	MethodGetCurrencies = "get_direction_currencies"
	MethodGetDirections = "get_directions"
	MethodGetDirection  = "get_direction"
	MethodGetCalc       = "get_calc"
	MethodCreateBid     = "create_bid"
	MethodBidInfo       = "bid_info"
	MethodCancelBid     = "cancel_bid"
	MethodPayBid        = "pay_bid"
	MethodSuccessBid    = "success_bid"
	MethodGetExchanges  = "get_exchanges"
)
