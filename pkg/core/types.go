package core

import (
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Direction represents the side of a trade (buy or sell).
// Venue payloads encode the side as arbitrary strings; parsing normalizes
// them to this closed set and drops anything unrecognized to
// DirectionUnknown, never guessing.
type Direction int

// Direction constants define the normalized trade side.
const (
	// DirectionUnknown indicates the venue did not report a usable side.
	DirectionUnknown Direction = iota
	// DirectionBuy indicates the taker bought.
	DirectionBuy
	// DirectionSell indicates the taker sold.
	DirectionSell
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	return [...]string{"UNKNOWN", "BUY", "SELL"}[d]
}

// MarshalJSON implements json.Marshaler for Direction.
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Direction.
// It accepts both uppercase and lowercase formats; anything else is Unknown.
func (d *Direction) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"BUY"`, `"buy"`:
		*d = DirectionBuy
	case `"SELL"`, `"sell"`:
		*d = DirectionSell
	default:
		*d = DirectionUnknown
	}
	return nil
}

// Sorting selects the ordering of list results.
type Sorting int

// Sorting constants define result ordering.
const (
	// SortingDefault is a per-venue alias resolved through the converter's
	// value table at conversion time.
	SortingDefault Sorting = iota
	// SortingAscending orders results oldest first.
	SortingAscending
	// SortingDescending orders results newest first.
	SortingDescending
)

// String returns the string representation of the sorting mode.
func (s Sorting) String() string {
	return [...]string{"DEFAULT", "ASCENDING", "DESCENDING"}[s]
}

// Trade represents a single executed public trade in canonical form.
// Timestamps are always normalized to millisecond precision regardless of
// the venue's source unit; each converter declares which of its fields
// carry timestamps and in what unit.
type Trade struct {
	// ItemID is the venue-assigned trade identifier.
	ItemID string `json:"item_id"`
	// Timestamp is when the trade was executed.
	Timestamp time.Time `json:"timestamp"`
	// Price is the execution price.
	Price apd.Decimal `json:"price"`
	// Amount is the executed quantity.
	Amount apd.Decimal `json:"amount"`
	// Direction is the normalized trade side.
	Direction Direction `json:"direction"`
}
