package driver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OutSquareCapital/rustats/driver"
	"github.com/OutSquareCapital/rustats/internal/calc"
	"github.com/OutSquareCapital/rustats/matrix"
)

func TestAggregate_SpecScenario6_AggMean(t *testing.T) {
	nan := math.NaN()
	in := mustFromRows(t, [][]float64{{1, nan}, {2, 4}, {nan, 6}})
	out, err := matrix.NewNaN(3, 2)
	require.NoError(t, err)

	require.NoError(t, driver.Aggregate(in, out, true, func() calc.Accumulator { return &calc.MeanAcc{} }))

	for r := 0; r < 3; r++ {
		require.InDelta(t, 1.5, out.Value(r, 0), 1e-12)
		require.InDelta(t, 5.0, out.Value(r, 1), 1e-12)
	}
}

func TestAggregate_AllMissingStaysMissing(t *testing.T) {
	nan := math.NaN()
	in := mustFromRows(t, [][]float64{{nan}, {nan}, {nan}})
	out, err := matrix.NewNaN(3, 1)
	require.NoError(t, err)

	require.NoError(t, driver.Aggregate(in, out, false, func() calc.Accumulator { return &calc.SumAcc{} }))

	for r := 0; r < 3; r++ {
		require.True(t, math.IsNaN(out.Value(r, 0)))
	}
}

func TestAggregate_SingleValueBroadcasts(t *testing.T) {
	in := mustFromRows(t, [][]float64{{42}})
	out, err := matrix.NewNaN(1, 1)
	require.NoError(t, err)

	require.NoError(t, driver.Aggregate(in, out, false, func() calc.Accumulator { return &calc.SumAcc{} }))
	require.Equal(t, 42.0, out.Value(0, 0))
}
