package okex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"normex/pkg/core"
	"normex/pkg/exchange"
)

func TestNew(t *testing.T) {
	c, err := New(core.DefaultConfig(VenueName))
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, VenueName, c.Venue())
	assert.Equal(t, DefaultVersion, c.Version())
}

func TestNew_InvalidConfig(t *testing.T) {
	config := core.DefaultConfig(VenueName)
	config.Timeout = 0

	_, err := New(config)

	assert.Error(t, err)
}

func TestNew_VersionPinned(t *testing.T) {
	config := core.DefaultConfig(VenueName).WithVersion("2")

	c, err := New(config)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "2", c.Version())
}

func TestRegister(t *testing.T) {
	registry := exchange.NewRegistry()
	Register(registry)

	require.True(t, registry.Exists(VenueName, DefaultVersion))

	ex, err := registry.New(VenueName, DefaultVersion, core.DefaultConfig(VenueName))
	require.NoError(t, err)
	defer ex.Close()

	assert.Equal(t, VenueName, ex.Venue())
}

func TestNewConverter_ImplementsExchangeContract(t *testing.T) {
	c := NewConverter()

	assert.Equal(t, VenueName, c.Venue())
	assert.Equal(t, DefaultVersion, c.Version())
}
