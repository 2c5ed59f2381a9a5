package engine_test

import (
	"testing"

	"github.com/shopcrawl/shopcrawl"
	"github.com/shopcrawl/shopcrawl/engine"
	"github.com/shopcrawl/shopcrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngineWithStats(t *testing.T) (*engine.Engine, *mock.Stats) {
	t.Helper()
	stats := &mock.Stats{}
	e, err := engine.New(shopcrawl.StrategyNavigation, nil, stats)
	require.NoError(t, err)
	return e, stats
}

func TestAcceptProduct_accepts_probability_at_threshold(t *testing.T) {
	t.Parallel()

	e, stats := newEngineWithStats(t)

	ok := e.AcceptProduct(&shopcrawl.ProductResult{
		URL:         "https://shop.example.com/p/1",
		Probability: floatPtr(0.1),
	})

	assert.True(t, ok)
	assert.Equal(t, int64(0), stats.Count(shopcrawl.StatDroppedLowProbability))
	assert.Equal(t, int64(1), stats.Count(shopcrawl.StatAcceptedProduct))
}

func TestAcceptProduct_drops_probability_below_threshold(t *testing.T) {
	t.Parallel()

	e, stats := newEngineWithStats(t)

	ok := e.AcceptProduct(&shopcrawl.ProductResult{
		URL:         "https://shop.example.com/p/1",
		Probability: floatPtr(0.0999),
	})

	assert.False(t, ok)
	assert.Equal(t, int64(1), stats.Count(shopcrawl.StatDroppedLowProbability))
	assert.Equal(t, int64(0), stats.Count(shopcrawl.StatAcceptedProduct))
}

func TestAcceptProduct_unknown_probability_gets_benefit_of_the_doubt(t *testing.T) {
	t.Parallel()

	e, stats := newEngineWithStats(t)

	ok := e.AcceptProduct(&shopcrawl.ProductResult{URL: "https://shop.example.com/p/1"})

	assert.True(t, ok)
	assert.Equal(t, int64(0), stats.Count(shopcrawl.StatDroppedLowProbability))
}

func TestAcceptProduct_counts_each_drop_once(t *testing.T) {
	t.Parallel()

	e, stats := newEngineWithStats(t)

	for i := 0; i < 3; i++ {
		e.AcceptProduct(&shopcrawl.ProductResult{
			URL:         "https://shop.example.com/p/1",
			Probability: floatPtr(0.01),
		})
	}

	assert.Equal(t, int64(3), stats.Count(shopcrawl.StatDroppedLowProbability))
}
