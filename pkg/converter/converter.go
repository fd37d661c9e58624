// Package converter defines the contract that translates between the
// canonical trading data model and the REST conventions of one venue.
//
// Every venue difference is expressed either as a static table in a Spec or
// as a narrowly scoped method override on an embedded Base, never as a
// branch inside generic orchestration logic. This keeps the contract
// identical across venues so a single client implementation can drive any
// of them.
package converter

import (
	"time"

	"normex/pkg/core"
)

// Mapping is a tagged optional venue key for a canonical parameter name.
// "Unsupported by this venue" and "not declared" stay distinguishable; a
// bare nil sentinel is never threaded through generic code.
type Mapping struct {
	key string
	ok  bool
}

// To maps a canonical parameter to the given venue key.
func To(key string) Mapping {
	return Mapping{key: key, ok: true}
}

// Unsupported marks a canonical parameter the venue cannot express.
// Such params are silently dropped during conversion.
func Unsupported() Mapping {
	return Mapping{}
}

// Key returns the venue key and whether the mapping is supported.
func (m Mapping) Key() (string, bool) {
	return m.key, m.ok
}

// Spec is the static per-venue lookup table set. It is plain data: a
// converter instance is a Spec plus, where a venue has genuine one-off
// quirks, a small set of method overrides.
type Spec struct {
	// Venue is the venue identifier, e.g. "okex".
	Venue string
	// Version is the default API version.
	Version string
	// BaseURL is the URL template with a {version} placeholder.
	BaseURL string

	// EndpointPaths maps endpoints to path templates. Placeholders such as
	// {symbol} are rendered from canonical params; a placeholder whose
	// param is absent drops its segment (empty symbol means all symbols
	// where the venue allows it). Endpoints absent from the table are not
	// served by the venue.
	EndpointPaths map[core.Endpoint]string

	// ParamNames maps canonical request params to venue query keys.
	// Unsupported() entries are dropped; params not declared at all pass
	// through under their canonical name.
	ParamNames map[core.ParamName]Mapping

	// ParamValues substitutes canonical values before emission, e.g.
	// resolving SortingDefault to the venue's actual default.
	ParamValues map[any]any

	// TradeFields maps raw response keys to canonical names. Raw keys
	// absent from the table are ignored; they never fail parsing.
	TradeFields map[string]core.ParamName

	// ErrorFields lists raw keys whose presence marks an error-shaped
	// payload; the matched value becomes the error message.
	ErrorFields []string

	// Directions normalizes the venue's trade-side vocabulary. Any raw
	// value not in the table maps to DirectionUnknown.
	Directions map[string]core.Direction

	// ErrorCodes maps raw venue error text to canonical codes; unmapped
	// text becomes ErrCodeUnknown.
	ErrorCodes map[string]core.ErrorCode

	// StatusCodes maps HTTP statuses to canonical codes, e.g. 429 to
	// RATE_LIMIT.
	StatusCodes map[int]core.ErrorCode

	// TimestampFields names the canonical fields that carry timestamps and
	// therefore need unit conversion, on both the request and response
	// sides.
	TimestampFields map[core.ParamName]bool

	// TimestampUnit is the duration of one unit in the venue's own
	// timestamp encoding (time.Second, time.Millisecond, ...).
	TimestampUnit time.Duration

	// MaxLimits is the per-endpoint maximum page size.
	MaxLimits map[core.Endpoint]int

	// SortingEnabled reports whether the venue honors a sorting param.
	SortingEnabled bool
}

// Converter is the stateless per-request translation contract between the
// canonical model and one venue's REST conventions. Implementations hold no
// state beyond their static Spec tables and perform no network I/O.
type Converter interface {
	// Venue returns the venue identifier.
	Venue() string

	// Version returns the default API version.
	Version() string

	// PrepareParams renders the endpoint's path template from canonical
	// params and renames the rest to venue query keys. Params consumed by
	// the path are removed; unsupported params are silently dropped.
	PrepareParams(endpoint core.Endpoint, params core.Params) ([]string, map[string]string, error)

	// MakeURL composes the absolute, version-rendered URL and the venue
	// query params for one request.
	MakeURL(endpoint core.Endpoint, params core.Params, version string) (string, map[string]string, error)

	// Parse dispatches on endpoint and converts a raw response payload to
	// canonical entities ([]core.Trade, or []string for a symbols list).
	// A recognized venue error shape is returned as a *core.VenueError;
	// an unrecognized shape is returned as a parse failure.
	Parse(endpoint core.Endpoint, payload []byte) (any, error)

	// ParseItem converts one raw list element into a canonical Trade.
	ParseItem(endpoint core.Endpoint, raw map[string]any) (*core.Trade, error)

	// DenormalizeItem re-serializes a Trade through the same field table,
	// timestamps in the venue's source unit.
	DenormalizeItem(endpoint core.Endpoint, trade *core.Trade) map[string]any

	// NextCursor derives the paging cursor for the request following the
	// page that ended with last.
	NextCursor(last *core.Trade) any

	// MapHTTPStatus classifies a non-success HTTP status.
	MapHTTPStatus(status int) core.ErrorCode

	// MaxLimit returns the venue's maximum page size for the endpoint,
	// or zero when unknown.
	MaxLimit(endpoint core.Endpoint) int

	// HasEndpoint reports whether the venue serves the endpoint.
	HasEndpoint(endpoint core.Endpoint) bool
}
