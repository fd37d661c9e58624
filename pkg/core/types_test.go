package core

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "UNKNOWN", DirectionUnknown.String())
	assert.Equal(t, "BUY", DirectionBuy.String())
	assert.Equal(t, "SELL", DirectionSell.String())
}

func TestDirection_ZeroValueIsUnknown(t *testing.T) {
	var d Direction
	assert.Equal(t, DirectionUnknown, d)
}

func TestDirection_MarshalJSON(t *testing.T) {
	data, err := sonic.Marshal(DirectionBuy)
	require.NoError(t, err)
	assert.Equal(t, `"BUY"`, string(data))
}

func TestDirection_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
	}{
		{`"BUY"`, DirectionBuy},
		{`"buy"`, DirectionBuy},
		{`"SELL"`, DirectionSell},
		{`"sell"`, DirectionSell},
		{`""`, DirectionUnknown},
		{`"hold"`, DirectionUnknown},
	}

	for _, tt := range tests {
		var d Direction
		err := sonic.Unmarshal([]byte(tt.input), &d)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, d, "input %s", tt.input)
	}
}

func TestSorting_String(t *testing.T) {
	assert.Equal(t, "DEFAULT", SortingDefault.String())
	assert.Equal(t, "ASCENDING", SortingAscending.String())
	assert.Equal(t, "DESCENDING", SortingDescending.String())
}

func TestTrade_JSONRoundTrip(t *testing.T) {
	trade := Trade{
		ItemID:    "123456",
		Timestamp: time.UnixMilli(1508923422000).UTC(),
		Direction: DirectionSell,
	}
	_, _, err := apd.BaseContext.SetString(&trade.Price, "5600.5")
	require.NoError(t, err)
	_, _, err = apd.BaseContext.SetString(&trade.Amount, "0.25")
	require.NoError(t, err)

	data, err := sonic.Marshal(trade)
	require.NoError(t, err)

	var decoded Trade
	require.NoError(t, sonic.Unmarshal(data, &decoded))

	assert.Equal(t, "123456", decoded.ItemID)
	assert.Equal(t, DirectionSell, decoded.Direction)
	assert.Equal(t, "5600.5", decoded.Price.String())
	assert.Equal(t, "0.25", decoded.Amount.String())
}

func TestParams_Clone(t *testing.T) {
	params := Params{ParamSymbol: "btc_usd", ParamLimit: 50}

	clone := params.Clone()
	clone[ParamLimit] = 100

	assert.Equal(t, 50, params[ParamLimit])
	assert.Equal(t, 100, clone[ParamLimit])
	assert.Equal(t, "btc_usd", clone[ParamSymbol])
}

func TestParams_Set(t *testing.T) {
	params := make(Params).Set(ParamSymbol, "eth_usd").Set(ParamLimit, 10)

	assert.Equal(t, "eth_usd", params[ParamSymbol])
	assert.Equal(t, 10, params[ParamLimit])
}

func TestEndpoint_String(t *testing.T) {
	assert.Equal(t, "TRADE", EndpointTrade.String())
	assert.Equal(t, "TRADE_HISTORY", EndpointTradeHistory.String())
	assert.Equal(t, "SYMBOLS", EndpointSymbols.String())
	assert.Equal(t, "TICKER", EndpointTicker.String())
}
