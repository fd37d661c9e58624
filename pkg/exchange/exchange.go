// Package exchange defines the venue-agnostic interface produced by this
// layer and the registry that resolves venue implementations.
package exchange

import (
	"context"

	"normex/pkg/core"
)

// Exchange is the uniform interface callers see regardless of venue. Trade
// fetching returns canonical entities; venue failures come back as
// *core.VenueError values in the error position.
type Exchange interface {
	// Venue returns the venue identifier.
	Venue() string

	// Version returns the API version in use.
	Version() string

	// FetchTrades performs a single-page fetch of recent trades. An empty
	// symbol means all symbols on venues that support the sentinel.
	FetchTrades(ctx context.Context, symbol string, opts ...Option) ([]core.Trade, error)

	// FetchTradesHistory performs a repeated fetch driven by the from_item
	// cursor; each page's last item becomes the next request's cursor.
	// from_time/to_time options are orthogonal filters, not cursor
	// substitutes.
	FetchTradesHistory(ctx context.Context, symbol string, opts ...Option) ([]core.Trade, error)

	// GetSymbols retrieves the venue's symbol catalog. A nil slice with a
	// nil error is a meaningful result: the venue has no discrete catalog,
	// and omitting the symbol means all symbols.
	GetSymbols(ctx context.Context) ([]string, error)

	// Close releases resources held by the client.
	Close() error
}
