package exchange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"normex/pkg/core"
)

func TestApplyOptions(t *testing.T) {
	start := time.Date(2017, 10, 25, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	o := ApplyOptions(
		WithLimit(50),
		WithFromItem("100"),
		WithToItem("200"),
		WithSorting(core.SortingAscending),
		WithTimeRange(start, end),
	)

	assert.Equal(t, 50, o.Limit)
	assert.Equal(t, "100", o.FromItem)
	assert.Equal(t, "200", o.ToItem)
	assert.Equal(t, core.SortingAscending, o.Sorting)
	assert.True(t, o.HasSorting)
	assert.Equal(t, start, o.StartTime)
	assert.Equal(t, end, o.EndTime)
}

func TestOptions_Params_OmitsZeroValues(t *testing.T) {
	params := ApplyOptions().Params()

	assert.Empty(t, params, "converters only see what the caller actually set")
}

func TestOptions_Params(t *testing.T) {
	params := ApplyOptions(
		WithLimit(25),
		WithUseMaxLimit(),
		WithFromItem("7"),
		WithSorting(core.SortingDefault),
	).Params()

	assert.Equal(t, 25, params[core.ParamLimit])
	assert.Equal(t, true, params[core.ParamIsUseMaxLimit])
	assert.Equal(t, "7", params[core.ParamFromItem])
	assert.Equal(t, core.SortingDefault, params[core.ParamSorting],
		"explicitly requested default sorting still reaches the converter")
	assert.NotContains(t, params, core.ParamToItem)
	assert.NotContains(t, params, core.ParamFromTime)
}
