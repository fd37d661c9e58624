// Package client implements the generic REST fetch orchestration: request
// building through a Converter, rate-limit awareness, and cursor paging.
// One implementation drives any venue; nothing venue-specific lives here.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"normex/internal/circuitbreaker"
	"normex/internal/ratelimit"
	"normex/internal/transport"
	"normex/pkg/converter"
	"normex/pkg/core"
	"normex/pkg/exchange"
)

// defaultPageSize bounds history paging when neither the caller nor the
// venue tables provide a limit.
const defaultPageSize = 100

// Transport executes one HTTP exchange. Network-level failures come back
// as errors, distinguishable from HTTP error statuses in the Response.
type Transport interface {
	Do(ctx context.Context, req *core.Request) (*transport.Response, error)
}

// Client executes canonical fetches against one venue through its bound
// Converter. A Client drives one logical session at a time: the pending
// delay and paging cursors are not guarded for concurrent fetches, which
// callers needing parallelism handle with per-call instances.
type Client struct {
	conv       converter.Converter
	transport  Transport
	limiter    *ratelimit.Limiter
	breaker    *circuitbreaker.Breaker
	logger     zerolog.Logger
	version    string
	allSymbols bool

	// delay is the most recently computed wait derived from response
	// headers, honored before the next request in the session.
	delay time.Duration
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithLimiter sets the local request budget applied before every request.
func WithLimiter(l *ratelimit.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithBreaker sets the circuit breaker guarding the venue.
func WithBreaker(b *circuitbreaker.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

// WithVersion pins the venue API version for URL composition; the default
// is the converter's own version.
func WithVersion(version string) Option {
	return func(c *Client) {
		c.version = version
	}
}

// WithAllSymbols declares that the venue treats an absent symbol as "all
// symbols", letting callers omit it instead of getting an error.
func WithAllSymbols() Option {
	return func(c *Client) {
		c.allSymbols = true
	}
}

// New creates a Client bound to a converter and transport.
func New(conv converter.Converter, tr Transport, opts ...Option) *Client {
	c := &Client{
		conv:      conv,
		transport: tr,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ exchange.Exchange = (*Client)(nil)

// Venue returns the bound converter's venue identifier.
func (c *Client) Venue() string {
	return c.conv.Venue()
}

// Version returns the API version in use.
func (c *Client) Version() string {
	if c.version != "" {
		return c.version
	}
	return c.conv.Version()
}

// Close releases the transport when it owns resources.
func (c *Client) Close() error {
	if closer, ok := c.transport.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// FetchTrades performs a single-page fetch of recent trades.
func (c *Client) FetchTrades(ctx context.Context, symbol string, opts ...exchange.Option) ([]core.Trade, error) {
	options := exchange.ApplyOptions(opts...)
	params := options.Params()
	if err := c.applySymbol(params, symbol); err != nil {
		return nil, err
	}
	c.resolveMaxLimit(core.EndpointTrade, params)

	result, err := c.fetch(ctx, core.EndpointTrade, params)
	if err != nil {
		return nil, err
	}

	trades, ok := result.([]core.Trade)
	if !ok {
		return nil, fmt.Errorf("unexpected response type: %T", result)
	}
	return trades, nil
}

// FetchTradesHistory performs a repeated fetch driven by the from_item
// cursor. Each page's last item becomes the next request's cursor; paging
// stops when a page comes back shorter than the requested limit. Errors
// are terminal and returned to the caller, never retried here.
func (c *Client) FetchTradesHistory(ctx context.Context, symbol string, opts ...exchange.Option) ([]core.Trade, error) {
	options := exchange.ApplyOptions(opts...)
	params := options.Params()
	if err := c.applySymbol(params, symbol); err != nil {
		return nil, err
	}

	limit := c.effectiveLimit(core.EndpointTradeHistory, options)
	params[core.ParamLimit] = limit
	delete(params, core.ParamIsUseMaxLimit)

	var all []core.Trade
	cursor := options.FromItem

	for {
		page := params.Clone()
		if cursor != nil {
			page[core.ParamFromItem] = cursor
			// The cursor owns paging from here on. Venues may map the time
			// filters onto the same wire param as the cursor (okex sends all
			// of them as "timestamp"), so a static filter left in the page
			// would race the advancing cursor for the query key.
			delete(page, core.ParamFromTime)
			delete(page, core.ParamToItem)
		}

		result, err := c.fetch(ctx, core.EndpointTradeHistory, page)
		if err != nil {
			return nil, err
		}

		trades, ok := result.([]core.Trade)
		if !ok {
			return nil, fmt.Errorf("unexpected response type: %T", result)
		}

		all = append(all, trades...)
		if len(trades) < limit {
			return all, nil
		}
		cursor = c.conv.NextCursor(&trades[len(trades)-1])
	}
}

// GetSymbols retrieves the venue's symbol catalog. Venues without a
// discrete catalog return (nil, nil): omitting the symbol means all
// symbols there.
func (c *Client) GetSymbols(ctx context.Context) ([]string, error) {
	if !c.conv.HasEndpoint(core.EndpointSymbols) {
		return nil, nil
	}

	result, err := c.fetch(ctx, core.EndpointSymbols, core.Params{})
	if err != nil {
		return nil, err
	}

	symbols, ok := result.([]string)
	if !ok {
		return nil, fmt.Errorf("unexpected response type: %T", result)
	}
	return symbols, nil
}

// fetch executes one request/response cycle: converter-built URL, local
// throttling, transport execution, header-derived delay update, then
// parsing. Transport failures pass through unclassified.
func (c *Client) fetch(ctx context.Context, endpoint core.Endpoint, params core.Params) (any, error) {
	url, query, err := c.conv.MakeURL(endpoint, params, c.version)
	if err != nil {
		return nil, err
	}
	req := core.NewRequest(http.MethodGet, url).SetQueryParams(query)

	if err := c.awaitTurn(ctx); err != nil {
		return nil, err
	}
	if c.breaker != nil && !c.breaker.Allow() {
		return nil, fmt.Errorf("circuit breaker open for venue %s", c.Venue())
	}

	resp, err := c.transport.Do(ctx, req)
	if c.breaker != nil {
		c.breaker.Record(err == nil)
	}
	if err != nil {
		return nil, err
	}

	c.delay = DelayFromHeaders(resp, c.delay, time.Now(), c.logger)

	if !resp.IsSuccess() {
		return nil, core.NewVenueError(
			c.Venue(),
			c.conv.MapHTTPStatus(resp.StatusCode),
			string(resp.Body),
		).WithStatus(resp.StatusCode)
	}

	return c.conv.Parse(endpoint, resp.Body)
}

// awaitTurn honors the local request budget and the most recently computed
// header-derived delay before letting the next request go out.
func (c *Client) awaitTurn(ctx context.Context) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	if c.delay <= 0 {
		return nil
	}
	c.logger.Debug().Dur("delay", c.delay).Msg("honoring venue-imposed delay")

	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) applySymbol(params core.Params, symbol string) error {
	if symbol == "" {
		if !c.allSymbols {
			return core.NewVenueError(c.Venue(), core.ErrCodeWrongSymbol, "symbol is required for this venue")
		}
		// Sentinel passes through unchanged: no symbol param at all.
		return nil
	}
	params[core.ParamSymbol] = symbol
	return nil
}

// resolveMaxLimit turns the use-max-limit request into the venue's actual
// maximum before conversion, so the sentinel never reaches the wire.
func (c *Client) resolveMaxLimit(endpoint core.Endpoint, params core.Params) {
	if use, ok := params[core.ParamIsUseMaxLimit].(bool); ok && use {
		if max := c.conv.MaxLimit(endpoint); max > 0 {
			params[core.ParamLimit] = max
		}
	}
	delete(params, core.ParamIsUseMaxLimit)
}

func (c *Client) effectiveLimit(endpoint core.Endpoint, options *exchange.Options) int {
	if options.UseMaxLimit {
		if max := c.conv.MaxLimit(endpoint); max > 0 {
			return max
		}
	}
	if options.Limit > 0 {
		return options.Limit
	}
	if max := c.conv.MaxLimit(endpoint); max > 0 {
		return max
	}
	return defaultPageSize
}
