package rank_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OutSquareCapital/rustats/internal/calc"
	"github.com/OutSquareCapital/rustats/internal/rank"
)

func accessorFor(xs []float64) rank.Accessor {
	return func(row int) float64 { return xs[row] }
}

func TestTally_SpecScenario5(t *testing.T) {
	// move_rank([[10],[20],[15],[20],[5]], L=4, M=2)
	// row 1: warm-up window is always the prefix [0, row), focal=20
	xs := []float64{10, 20, 15, 20, 5}
	col := accessorFor(xs)

	g, e, v := rank.Tally(col, 0, 1)
	require.Equal(t, 1.0, calc.Rank(g, e, v))

	// row 2: window [0,2) -> {10,20}, focal=15
	g, e, v = rank.Tally(col, 0, 2)
	require.Equal(t, 0.0, calc.Rank(g, e, v))

	// row 3: window [0,3) -> {10,20,15}, focal=20, tie with one, greater than two
	g, e, v = rank.Tally(col, 0, 3)
	require.InDelta(t, 2.0/3.0, calc.Rank(g, e, v), 1e-12)

	// row 4: steady-state window [1,4) -> {20,15,20}, focal=5
	g, e, v = rank.Tally(col, 1, 4)
	require.Equal(t, -1.0, calc.Rank(g, e, v))
}

func TestTally_SkipsMissingInWindow(t *testing.T) {
	xs := []float64{1, nanVal(), 3, 4}
	col := accessorFor(xs)
	g, e, v := rank.Tally(col, 0, 3)
	// window [0,3) -> {1, missing, 3}; missing skipped.
	require.Equal(t, 3.0, v) // self + two valid neighbors
	_ = g
	_ = e
}

func nanVal() float64 {
	var zero float64
	return zero / zero
}
