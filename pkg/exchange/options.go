package exchange

import (
	"time"

	"normex/pkg/core"
)

// Option configures a single fetch call.
type Option func(*Options)

// Options holds per-call fetch parameters in canonical form.
type Options struct {
	Limit       int
	UseMaxLimit bool
	FromItem    any
	ToItem      any
	Sorting     core.Sorting
	HasSorting  bool
	StartTime   time.Time
	EndTime     time.Time
}

// WithLimit caps the number of items per page.
func WithLimit(limit int) Option {
	return func(o *Options) {
		o.Limit = limit
	}
}

// WithUseMaxLimit requests the venue's maximum page size instead of an
// explicit limit.
func WithUseMaxLimit() Option {
	return func(o *Options) {
		o.UseMaxLimit = true
	}
}

// WithFromItem sets the initial paging cursor.
func WithFromItem(cursor any) Option {
	return func(o *Options) {
		o.FromItem = cursor
	}
}

// WithToItem bounds paging from the other end.
func WithToItem(cursor any) Option {
	return func(o *Options) {
		o.ToItem = cursor
	}
}

// WithSorting selects result ordering; venues without sorting control drop
// it silently.
func WithSorting(s core.Sorting) Option {
	return func(o *Options) {
		o.Sorting = s
		o.HasSorting = true
	}
}

// WithTimeRange filters trades to the given window. Either bound may be
// zero to leave that end open.
func WithTimeRange(start, end time.Time) Option {
	return func(o *Options) {
		o.StartTime = start
		o.EndTime = end
	}
}

// ApplyOptions folds a list of options into an Options value.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Params converts the options to canonical request params. Zero values are
// omitted so converters only see what the caller actually set.
func (o *Options) Params() core.Params {
	params := make(core.Params)
	if o.Limit > 0 {
		params[core.ParamLimit] = o.Limit
	}
	if o.UseMaxLimit {
		params[core.ParamIsUseMaxLimit] = true
	}
	if o.FromItem != nil {
		params[core.ParamFromItem] = o.FromItem
	}
	if o.ToItem != nil {
		params[core.ParamToItem] = o.ToItem
	}
	if o.HasSorting {
		params[core.ParamSorting] = o.Sorting
	}
	if !o.StartTime.IsZero() {
		params[core.ParamFromTime] = o.StartTime
	}
	if !o.EndTime.IsZero() {
		params[core.ParamToTime] = o.EndTime
	}
	return params
}
