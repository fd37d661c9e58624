package exchange

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"normex/pkg/core"
)

type stubExchange struct {
	venue   string
	version string
}

func (s *stubExchange) Venue() string   { return s.venue }
func (s *stubExchange) Version() string { return s.version }
func (s *stubExchange) Close() error    { return nil }

func (s *stubExchange) FetchTrades(context.Context, string, ...Option) ([]core.Trade, error) {
	return nil, nil
}

func (s *stubExchange) FetchTradesHistory(context.Context, string, ...Option) ([]core.Trade, error) {
	return nil, nil
}

func (s *stubExchange) GetSymbols(context.Context) ([]string, error) {
	return nil, nil
}

func stubFactory(venue, version string) Factory {
	return func(_ *core.Config) (Exchange, error) {
		return &stubExchange{venue: venue, version: version}, nil
	}
}

func TestRegistry_RegisterAndNew(t *testing.T) {
	r := NewRegistry()
	r.Register("okex", "1", stubFactory("okex", "1"))

	ex, err := r.New("okex", "1", core.DefaultConfig("okex"))
	require.NoError(t, err)

	assert.Equal(t, "okex", ex.Venue())
	assert.Equal(t, "1", ex.Version())
}

func TestRegistry_UnknownVenue(t *testing.T) {
	r := NewRegistry()

	_, err := r.New("nowhere", "1", core.DefaultConfig("nowhere"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nowhere")
}

func TestRegistry_VersionIsPartOfTheKey(t *testing.T) {
	r := NewRegistry()
	r.Register("okex", "1", stubFactory("okex", "1"))
	r.Register("okex", "2", stubFactory("okex", "2"))

	assert.True(t, r.Exists("okex", "1"))
	assert.True(t, r.Exists("okex", "2"))
	assert.False(t, r.Exists("okex", "3"))

	ex, err := r.New("okex", "2", core.DefaultConfig("okex"))
	require.NoError(t, err)
	assert.Equal(t, "2", ex.Version())
}

func TestRegistry_Versions(t *testing.T) {
	r := NewRegistry()
	r.Register("okex", "1", stubFactory("okex", "1"))
	r.Register("okex", "2", stubFactory("okex", "2"))
	r.Register("other", "5", stubFactory("other", "5"))

	versions := r.Versions("okex")

	assert.ElementsMatch(t, []string{"1", "2"}, versions)
	assert.Empty(t, r.Versions("unregistered"))
}
