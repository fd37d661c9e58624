package okex

import (
	"strings"
	"time"

	"normex/pkg/converter"
	"normex/pkg/core"
)

const (
	// VenueName is the registry identifier for this venue.
	VenueName = "okex"
	// DefaultVersion is the API version this converter targets.
	DefaultVersion = "1"

	// resourceSuffix is the fixed filename-style suffix the v1 API expects
	// on every resource ("trades.do").
	resourceSuffix = ".do"
)

// Converter translates between the canonical model and the OKEX v1 REST
// conventions. Everything regular lives in the lookup tables; the overrides
// below cover the genuine v1 quirks.
type Converter struct {
	converter.Base
}

// NewConverter creates the OKEX v1 converter.
func NewConverter() *Converter {
	return &Converter{Base: converter.NewBase(spec())}
}

func spec() converter.Spec {
	return converter.Spec{
		Venue:   VenueName,
		Version: DefaultVersion,
		BaseURL: "https://www.okex.com/api/v{version}/",

		EndpointPaths: map[core.Endpoint]string{
			core.EndpointTrade: "trades/{symbol}",
			// v1 has no separate history resource; paging runs over the
			// same endpoint.
			core.EndpointTradeHistory: "trades/{symbol}",
		},

		ParamNames: map[core.ParamName]converter.Mapping{
			core.ParamLimit:         converter.To("limit_trades"),
			core.ParamFromItem:      converter.To("timestamp"),
			core.ParamToItem:        converter.To("timestamp"),
			core.ParamFromTime:      converter.To("timestamp"),
			core.ParamToTime:        converter.Unsupported(),
			core.ParamSorting:       converter.Unsupported(),
			core.ParamIsUseMaxLimit: converter.Unsupported(),
		},

		ParamValues: map[any]any{
			core.SortingDefault: core.SortingDescending,
		},

		TradeFields: map[string]core.ParamName{
			"tid":       core.ParamItemID,
			"timestamp": core.ParamTimestamp,
			"price":     core.ParamPrice,
			"amount":    core.ParamAmount,
			"type":      core.ParamDirection,
		},

		ErrorFields: []string{"error_code", "message"},

		Directions: map[string]core.Direction{
			"buy":  core.DirectionBuy,
			"sell": core.DirectionSell,
		},

		ErrorCodes: map[string]core.ErrorCode{
			"Unknown symbol": core.ErrCodeWrongSymbol,
		},

		StatusCodes: map[int]core.ErrorCode{
			429: core.ErrCodeRateLimit,
			401: core.ErrCodeUnauthorized,
			403: core.ErrCodeUnauthorized,
		},

		TimestampFields: map[core.ParamName]bool{
			core.ParamTimestamp: true,
			core.ParamFromItem:  true,
			core.ParamToItem:    true,
			core.ParamFromTime:  true,
		},
		// v1 reports trade timestamps in whole seconds.
		TimestampUnit: time.Second,

		MaxLimits: map[core.Endpoint]int{
			core.EndpointTrade:        1000,
			core.EndpointTradeHistory: 1000,
		},

		SortingEnabled: false,
	}
}

// MakeURL composes the v1 URL with its two quirks: the fixed ".do" suffix
// on the resource, and the symbol moved from the rendered path back into
// the query string. Both apply only here; confirm against the live API
// before extending them to other endpoint shapes.
func (c *Converter) MakeURL(endpoint core.Endpoint, params core.Params, version string) (string, map[string]string, error) {
	if version == "" {
		version = c.Base.Version()
	}

	segments, query, err := c.PrepareParams(endpoint, params)
	if err != nil {
		return "", nil, err
	}

	base := strings.Replace(c.Spec.BaseURL, "{version}", version, 1)
	url := base + segments[0] + resourceSuffix

	// Symbol rides in the query string, not the path. An absent symbol is
	// a valid all-symbols request and adds nothing.
	if len(segments) > 1 {
		query["symbol"] = segments[1]
	}

	return url, query, nil
}

// Parse special-cases the symbols list, which v1 reports lowercase and
// this layer normalizes to uppercase. Everything else defers to the
// generic table-driven parsing.
func (c *Converter) Parse(endpoint core.Endpoint, payload []byte) (any, error) {
	result, err := c.Base.Parse(endpoint, payload)
	if err != nil {
		return nil, err
	}

	if endpoint == core.EndpointSymbols {
		if symbols, ok := result.([]string); ok {
			for i := range symbols {
				symbols[i] = strings.ToUpper(symbols[i])
			}
			return symbols, nil
		}
	}

	return result, nil
}

// NextCursor pages by timestamp: from_item maps to the venue's "timestamp"
// param, so the cursor is the last trade's time in source units.
func (c *Converter) NextCursor(last *core.Trade) any {
	return last.Timestamp.Unix()
}
