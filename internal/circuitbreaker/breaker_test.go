package circuitbreaker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		FailThreshold:    3,
		SuccessThreshold: 2,
		Timeout:          30 * time.Millisecond,
	}
}

func TestBreaker_OpensAfterFailures(t *testing.T) {
	b := New(testConfig())

	for i := 0; i < 3; i++ {
		require.True(t, b.Allow())
		b.Record(false)
	}

	assert.Equal(t, StateOpen, b.State())
	assert.False(t, b.Allow())
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := New(testConfig())

	b.Record(false)
	b.Record(false)
	b.Record(true)
	b.Record(false)
	b.Record(false)

	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_HalfOpenAfterTimeout(t *testing.T) {
	b := New(testConfig())
	for i := 0; i < 3; i++ {
		b.Record(false)
	}
	require.False(t, b.Allow())

	time.Sleep(40 * time.Millisecond)

	assert.True(t, b.Allow(), "expired timeout lets a probe through")
	assert.Equal(t, StateHalfOpen, b.State())
}

func TestBreaker_ClosesAfterProbeSuccesses(t *testing.T) {
	b := New(testConfig())
	for i := 0; i < 3; i++ {
		b.Record(false)
	}
	time.Sleep(40 * time.Millisecond)
	require.True(t, b.Allow())

	b.Record(true)
	assert.Equal(t, StateHalfOpen, b.State(), "one success is not enough")
	b.Record(true)
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_ProbeFailureReopens(t *testing.T) {
	b := New(testConfig())
	for i := 0; i < 3; i++ {
		b.Record(false)
	}
	time.Sleep(40 * time.Millisecond)
	require.True(t, b.Allow())

	b.Record(false)

	assert.Equal(t, StateOpen, b.State())
	assert.False(t, b.Allow())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "CLOSED", StateClosed.String())
	assert.Equal(t, "OPEN", StateOpen.String())
	assert.Equal(t, "HALF_OPEN", StateHalfOpen.String())
	assert.Equal(t, "UNKNOWN", State(99).String())
}
