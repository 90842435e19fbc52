package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSkipsMissingValues(t *testing.T) {
	values := []*float64{f(2), nil, f(4), f(9), nil}

	s, ok := Aggregate(values, func(v *float64) *float64 { return v })
	require.True(t, ok)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 15.0, s.Sum)
	assert.Equal(t, 5.0, s.Mean)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
}

func TestAggregateEmpty(t *testing.T) {
	_, ok := Aggregate([]*float64{nil, nil}, func(v *float64) *float64 { return v })
	assert.False(t, ok)

	_, ok = Aggregate[*float64](nil, func(v *float64) *float64 { return v })
	assert.False(t, ok)

	assert.Zero(t, Sum([]*float64{nil}, func(v *float64) *float64 { return v }))
}

func TestAggregateMeanWithinBounds(t *testing.T) {
	sets := [][]float64{
		{1},
		{1, 1, 1, 10},
		{-3, 0.5, 7.25},
		{100, 0.01, 42, 42, 3},
	}
	for _, set := range sets {
		items := make([]*float64, len(set))
		for i := range set {
			items[i] = f(set[i])
		}
		s, ok := Aggregate(items, func(v *float64) *float64 { return v })
		require.True(t, ok)
		assert.InDelta(t, s.Sum/float64(s.Count), s.Mean, 1e-9)
		assert.LessOrEqual(t, s.Min, s.Mean)
		assert.GreaterOrEqual(t, s.Max, s.Mean)
	}
}
