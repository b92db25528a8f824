package driver

import (
	"math"

	"github.com/OutSquareCapital/rustats/internal/calc"
	"github.com/OutSquareCapital/rustats/internal/rank"
	"github.com/OutSquareCapital/rustats/matrix"
)

// Rank runs the sliding-rank driver (§4.5). Unlike Scalar/Deque/Median,
// rank keeps no incremental state across rows — a value's position
// relative to the current focal point is not stable as the window
// slides — so each eligible row re-tallies its window in O(length).
//
// Warm-up rows compare against the growing prefix [0, row) until the
// window first saturates at row = length; this "growing window until
// saturation" behaviour, and the minLength-1 starting row, follow the
// convention the source's valid_count/equal_count seeding implies
// (see the driver entry in DESIGN.md for this operation's warm-up range).
func Rank(in, out *matrix.Dense, length, minLength int, parallel bool) error {
	rows, cols := in.Rows(), in.Cols()

	return runColumns(cols, parallel, func(c int) error {
		col := func(row int) float64 { return in.Value(row, c) }

		for row := minLength - 1; row < length && row < rows; row++ {
			if math.IsNaN(col(row)) {
				continue
			}
			g, e, v := rank.Tally(col, 0, row)
			if v >= float64(minLength) {
				out.SetValue(row, c, calc.Rank(g, e, v))
			}
		}

		for row := length; row < rows; row++ {
			if math.IsNaN(col(row)) {
				continue
			}
			start := row - length + 1
			g, e, v := rank.Tally(col, start, row)
			if v >= float64(minLength) {
				out.SetValue(row, c, calc.Rank(g, e, v))
			}
		}
		return nil
	})
}
