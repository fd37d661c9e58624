package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueError_Error(t *testing.T) {
	err := NewVenueError("okex", ErrCodeWrongSymbol, "Unknown symbol")

	assert.Equal(t, "[okex] WRONG_SYMBOL: Unknown symbol", err.Error())
}

func TestVenueError_ErrorWithStatus(t *testing.T) {
	err := NewVenueError("okex", ErrCodeRateLimit, "too many requests").WithStatus(429)

	assert.Equal(t, "[okex] RATE_LIMIT (429): too many requests", err.Error())
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestVenueError_Timestamp(t *testing.T) {
	err := NewVenueError("okex", ErrCodeUnknown, "boom")

	assert.False(t, err.Timestamp.IsZero())
}

func TestIsErrorCode(t *testing.T) {
	err := NewVenueError("okex", ErrCodeRateLimit, "slow down")

	assert.True(t, IsErrorCode(err, ErrCodeRateLimit))
	assert.False(t, IsErrorCode(err, ErrCodeWrongSymbol))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrCodeRateLimit))
}

func TestIsErrorCode_Wrapped(t *testing.T) {
	inner := NewVenueError("okex", ErrCodeUnauthorized, "denied")
	wrapped := fmt.Errorf("fetch trades: %w", inner)

	assert.True(t, IsErrorCode(wrapped, ErrCodeUnauthorized))
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsRateLimitError(NewVenueError("okex", ErrCodeRateLimit, "")))
	assert.True(t, IsWrongSymbolError(NewVenueError("okex", ErrCodeWrongSymbol, "")))
	assert.True(t, IsParseError(NewVenueError("okex", ErrCodeParse, "")))
	assert.False(t, IsRateLimitError(NewVenueError("okex", ErrCodeUnknown, "")))
	assert.False(t, IsRateLimitError(nil))
}

func TestAsVenueError(t *testing.T) {
	inner := NewVenueError("okex", ErrCodeServerError, "oops")
	wrapped := fmt.Errorf("outer: %w", inner)

	got, ok := AsVenueError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeServerError, got.Code)

	_, ok = AsVenueError(errors.New("plain"))
	assert.False(t, ok)
}
