package core

// Endpoint identifies a logical venue resource.
// The set is a process-wide constant; venues declare which endpoints they
// serve through their converter tables.
type Endpoint int

// Endpoint constants define all logical resources known to the layer.
const (
	// EndpointTrade retrieves recent public trades for a symbol.
	EndpointTrade Endpoint = iota
	// EndpointTradeHistory retrieves older trades page by page.
	EndpointTradeHistory
	// EndpointSymbols retrieves the venue's symbol catalog.
	EndpointSymbols
	// EndpointTicker retrieves ticker data. Reserved for venues that expose it.
	EndpointTicker
)

// String returns the string representation of the endpoint.
func (e Endpoint) String() string {
	return [...]string{
		"TRADE",
		"TRADE_HISTORY",
		"SYMBOLS",
		"TICKER",
	}[e]
}
