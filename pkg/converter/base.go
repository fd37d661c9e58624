package converter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"

	"normex/pkg/core"
)

// Base is the generic Converter implementation over a Spec. Venue converters
// embed it and override only the methods covering genuine one-off quirks;
// everything else stays table-driven.
type Base struct {
	Spec Spec
}

// NewBase creates a Base converter over the given spec.
func NewBase(spec Spec) Base {
	return Base{Spec: spec}
}

// Venue returns the venue identifier.
func (b *Base) Venue() string {
	return b.Spec.Venue
}

// Version returns the default API version.
func (b *Base) Version() string {
	return b.Spec.Version
}

// HasEndpoint reports whether the venue serves the endpoint.
func (b *Base) HasEndpoint(endpoint core.Endpoint) bool {
	_, ok := b.Spec.EndpointPaths[endpoint]
	return ok
}

// MaxLimit returns the venue's maximum page size for the endpoint.
func (b *Base) MaxLimit(endpoint core.Endpoint) int {
	return b.Spec.MaxLimits[endpoint]
}

// PrepareParams renders the endpoint's path template and renames the
// remaining canonical params to venue query keys.
//
// A param consumed by a path placeholder is removed from the query set. A
// param mapped to Unsupported() is silently dropped: lossy but safe
// degradation, not an error. A value present in the value table (such as
// SortingDefault) is substituted before emission.
func (b *Base) PrepareParams(endpoint core.Endpoint, params core.Params) ([]string, map[string]string, error) {
	tmpl, ok := b.Spec.EndpointPaths[endpoint]
	if !ok {
		return nil, nil, fmt.Errorf("venue %s does not serve endpoint %s", b.Spec.Venue, endpoint)
	}

	segments := make([]string, 0, 2)
	consumed := make(map[core.ParamName]bool)

	for _, seg := range strings.Split(tmpl, "/") {
		if seg == "" {
			continue
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			name := core.ParamName(seg[1 : len(seg)-1])
			val, present := params[name]
			if !present || val == nil || val == "" {
				// Absent placeholder drops its segment; for venues with
				// the all-symbols knob an empty symbol is a valid request.
				continue
			}
			segments = append(segments, b.formatValue(name, val))
			consumed[name] = true
			continue
		}
		segments = append(segments, seg)
	}

	query := make(map[string]string)
	for name, val := range params {
		if consumed[name] || val == nil {
			continue
		}
		if subst, ok := b.Spec.ParamValues[val]; ok {
			val = subst
		}
		key := string(name)
		if mapping, declared := b.Spec.ParamNames[name]; declared {
			venueKey, supported := mapping.Key()
			if !supported {
				continue
			}
			key = venueKey
		}
		query[key] = b.formatValue(name, val)
	}

	return segments, query, nil
}

// MakeURL composes the versioned base URL with the rendered path. Venue
// URL quirks live in the venue converter's override, not here.
func (b *Base) MakeURL(endpoint core.Endpoint, params core.Params, version string) (string, map[string]string, error) {
	if version == "" {
		version = b.Spec.Version
	}

	segments, query, err := b.PrepareParams(endpoint, params)
	if err != nil {
		return "", nil, err
	}

	url := strings.Replace(b.Spec.BaseURL, "{version}", version, 1)
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return url + strings.Join(segments, "/"), query, nil
}

// Parse converts a raw response payload to canonical entities. A list
// payload is parsed item by item; a recognized error shape becomes a
// *core.VenueError; anything else surfaces as a parse failure.
func (b *Base) Parse(endpoint core.Endpoint, payload []byte) (any, error) {
	var decoded any
	if err := sonic.Unmarshal(payload, &decoded); err != nil {
		return nil, core.NewVenueError(b.Spec.Venue, core.ErrCodeParse, fmt.Sprintf("undecodable payload: %v", err))
	}

	switch data := decoded.(type) {
	case []any:
		if endpoint == core.EndpointSymbols {
			return b.parseSymbolList(data)
		}
		trades := make([]core.Trade, 0, len(data))
		for _, elem := range data {
			raw, ok := elem.(map[string]any)
			if !ok {
				return nil, core.NewVenueError(b.Spec.Venue, core.ErrCodeParse, fmt.Sprintf("unexpected list element %T", elem))
			}
			trade, err := b.ParseItem(endpoint, raw)
			if err != nil {
				return nil, err
			}
			trades = append(trades, *trade)
		}
		return trades, nil

	case map[string]any:
		if venueErr, ok := b.parseErrorShape(data); ok {
			return nil, venueErr
		}
		return nil, core.NewVenueError(b.Spec.Venue, core.ErrCodeParse, "unrecognized response shape")

	default:
		return nil, core.NewVenueError(b.Spec.Venue, core.ErrCodeParse, fmt.Sprintf("unexpected payload type %T", decoded))
	}
}

// ParseItem applies the raw-key field table to one list element. Raw keys
// not present in the table are ignored; unknown fields never fail parsing.
func (b *Base) ParseItem(_ core.Endpoint, raw map[string]any) (*core.Trade, error) {
	trade := &core.Trade{}

	for rawKey, val := range raw {
		name, known := b.Spec.TradeFields[rawKey]
		if !known {
			continue
		}

		switch name {
		case core.ParamItemID:
			trade.ItemID = scalarString(val)

		case core.ParamTimestamp:
			units, err := scalarInt64(val)
			if err != nil {
				return nil, core.NewVenueError(b.Spec.Venue, core.ErrCodeParse, fmt.Sprintf("timestamp field %q: %v", rawKey, err))
			}
			trade.Timestamp = b.toCanonicalTime(units)

		case core.ParamPrice:
			if err := scalarDecimal(&trade.Price, val); err != nil {
				return nil, core.NewVenueError(b.Spec.Venue, core.ErrCodeParse, fmt.Sprintf("price field %q: %v", rawKey, err))
			}

		case core.ParamAmount:
			if err := scalarDecimal(&trade.Amount, val); err != nil {
				return nil, core.NewVenueError(b.Spec.Venue, core.ErrCodeParse, fmt.Sprintf("amount field %q: %v", rawKey, err))
			}

		case core.ParamDirection:
			// Total mapping: anything outside the table is Unknown.
			trade.Direction = b.Spec.Directions[scalarString(val)]
		}
	}

	return trade, nil
}

// DenormalizeItem re-serializes a Trade through the same field table,
// converting the timestamp back to the venue's source unit.
func (b *Base) DenormalizeItem(_ core.Endpoint, trade *core.Trade) map[string]any {
	raw := make(map[string]any, len(b.Spec.TradeFields))

	for rawKey, name := range b.Spec.TradeFields {
		switch name {
		case core.ParamItemID:
			raw[rawKey] = trade.ItemID
		case core.ParamTimestamp:
			raw[rawKey] = b.fromCanonicalTime(trade.Timestamp)
		case core.ParamPrice:
			raw[rawKey] = trade.Price.String()
		case core.ParamAmount:
			raw[rawKey] = trade.Amount.String()
		case core.ParamDirection:
			if key, ok := b.directionKey(trade.Direction); ok {
				raw[rawKey] = key
			}
		}
	}

	return raw
}

// NextCursor derives the next page's from_item from the last returned
// trade. The default cursor is the item id; venues paging by timestamp
// override this.
func (b *Base) NextCursor(last *core.Trade) any {
	return last.ItemID
}

// MapHTTPStatus classifies a non-success HTTP status via the status table,
// falling back to coarse ranges.
func (b *Base) MapHTTPStatus(status int) core.ErrorCode {
	if code, ok := b.Spec.StatusCodes[status]; ok {
		return code
	}
	switch {
	case status >= 500:
		return core.ErrCodeServerError
	case status == 401 || status == 403:
		return core.ErrCodeUnauthorized
	case status == 404:
		return core.ErrCodeNotFound
	case status >= 400:
		return core.ErrCodeBadRequest
	default:
		return core.ErrCodeUnknown
	}
}

// MapErrorText classifies raw venue error text via the error-code table.
func (b *Base) MapErrorText(text string) core.ErrorCode {
	if code, ok := b.Spec.ErrorCodes[text]; ok {
		return code
	}
	return core.ErrCodeUnknown
}

func (b *Base) parseSymbolList(data []any) ([]string, error) {
	symbols := make([]string, 0, len(data))
	for _, elem := range data {
		s, ok := elem.(string)
		if !ok {
			return nil, core.NewVenueError(b.Spec.Venue, core.ErrCodeParse, fmt.Sprintf("unexpected symbol element %T", elem))
		}
		symbols = append(symbols, s)
	}
	return symbols, nil
}

func (b *Base) parseErrorShape(data map[string]any) (*core.VenueError, bool) {
	for _, key := range b.Spec.ErrorFields {
		val, present := data[key]
		if !present {
			continue
		}
		message := scalarString(val)
		return core.NewVenueError(b.Spec.Venue, b.MapErrorText(message), message), true
	}
	return nil, false
}

func (b *Base) directionKey(d core.Direction) (string, bool) {
	for key, dir := range b.Spec.Directions {
		if dir == d {
			return key, true
		}
	}
	return "", false
}

func (b *Base) toCanonicalTime(units int64) time.Time {
	unit := b.Spec.TimestampUnit
	if unit == 0 {
		unit = time.Millisecond
	}
	return time.Unix(0, units*int64(unit)).UTC()
}

func (b *Base) fromCanonicalTime(t time.Time) int64 {
	unit := b.Spec.TimestampUnit
	if unit == 0 {
		unit = time.Millisecond
	}
	return t.UnixNano() / int64(unit)
}

func (b *Base) formatValue(name core.ParamName, val any) string {
	if b.Spec.TimestampFields[name] {
		if t, ok := val.(time.Time); ok {
			return strconv.FormatInt(b.fromCanonicalTime(t), 10)
		}
	}

	switch v := val.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case core.Sorting:
		return strings.ToLower(v.String())
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

func scalarInt64(v any) (int64, error) {
	switch val := v.(type) {
	case float64:
		return int64(val), nil
	case string:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse int: %w", err)
		}
		return n, nil
	case int64:
		return val, nil
	case int:
		return int64(val), nil
	default:
		return 0, fmt.Errorf("unexpected numeric type %T", v)
	}
}

func scalarDecimal(dst *apd.Decimal, v any) error {
	var text string
	switch val := v.(type) {
	case string:
		text = val
	case float64:
		text = strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Errorf("unexpected decimal type %T", v)
	}

	if text == "" {
		*dst = apd.Decimal{}
		return nil
	}
	if _, _, err := apd.BaseContext.SetString(dst, text); err != nil {
		return fmt.Errorf("set decimal from string: %w", err)
	}
	return nil
}
