package core

import "maps"

// ParamName is a canonical request/response field identifier.
// Names are stable across venues; a venue either maps a name to its own key
// or declares it unsupported in the converter tables.
type ParamName string

// Canonical parameter names.
const (
	// ParamLimit caps the number of items returned per page.
	ParamLimit ParamName = "limit"
	// ParamIsUseMaxLimit requests the venue's maximum page size.
	ParamIsUseMaxLimit ParamName = "is_use_max_limit"
	// ParamSorting selects result ordering.
	ParamSorting ParamName = "sorting"
	// ParamFromItem is the paging cursor carried between history pages.
	ParamFromItem ParamName = "from_item"
	// ParamToItem bounds paging from the other end.
	ParamToItem ParamName = "to_item"
	// ParamFromTime filters items newer than a point in time.
	ParamFromTime ParamName = "from_time"
	// ParamToTime filters items older than a point in time.
	ParamToTime ParamName = "to_time"
	// ParamSymbol is the trading pair identifier.
	ParamSymbol ParamName = "symbol"

	// Response field names.
	ParamItemID    ParamName = "item_id"
	ParamTimestamp ParamName = "timestamp"
	ParamPrice     ParamName = "price"
	ParamAmount    ParamName = "amount"
	ParamDirection ParamName = "direction"
)

// Params is a set of canonical parameters keyed by name.
type Params map[ParamName]any

// Clone returns a shallow copy of the params.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	maps.Copy(out, p)
	return out
}

// Set stores a value and returns the params for chaining.
func (p Params) Set(name ParamName, value any) Params {
	p[name] = value
	return p
}
