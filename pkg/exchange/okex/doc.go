// Package okex implements the OKEX v1 REST converter and client binding.
//
// The package includes:
//   - Converter: the static lookup tables plus the genuine v1 quirks
//     (".do" URLs, lowercase symbol lists, timestamp-based paging)
//   - New/Register: wiring of the generic REST client with the OKEX
//     converter, transport, rate limiter, and circuit breaker
//
// Example usage:
//
//	ex, err := okex.New(core.DefaultConfig("okex"))
//	trades, err := ex.FetchTrades(ctx, "btc_usd")
package okex
