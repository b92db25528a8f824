package driver

import (
	"math"
	"sort"

	"github.com/OutSquareCapital/rustats/internal/calc"
	"github.com/OutSquareCapital/rustats/matrix"
)

// AggregateMedian computes the column median over all non-missing
// values by sorting once, then broadcasts it across the whole output
// column (including rows that were missing on input) — matching the
// broadcast behaviour of the generic Aggregate driver. Coded directly
// rather than through calc.Accumulator: collecting every value and
// sorting once is the natural shape for a one-shot median, unlike the
// incremental dual-heap protocol moving median needs.
func AggregateMedian(in, out *matrix.Dense, parallel bool) error {
	rows, cols := in.Rows(), in.Cols()

	return runColumns(cols, parallel, func(c int) error {
		values := make([]float64, 0, rows)
		for row := 0; row < rows; row++ {
			v := in.Value(row, c)
			if !math.IsNaN(v) {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			return nil
		}
		sort.Float64s(values)

		n := len(values)
		var median float64
		if n%2 == 0 {
			median = (values[n/2-1] + values[n/2]) / 2
		} else {
			median = values[n/2]
		}
		for row := 0; row < rows; row++ {
			out.SetValue(row, c, median)
		}
		return nil
	})
}

// AggregateRank assigns each non-missing row its column-wide fractional
// mid-rank in [-1, +1]: values are sorted once, tie groups share a
// single rank value via §4.1's rank formula, and the result is
// scattered back to each value's original row. Rows missing on input
// stay missing — unlike every other aggregate, AggregateRank does not
// broadcast a single value across the column.
func AggregateRank(in, out *matrix.Dense, parallel bool) error {
	rows, cols := in.Rows(), in.Cols()

	return runColumns(cols, parallel, func(c int) error {
		type indexed struct {
			value float64
			row   int
		}
		values := make([]indexed, 0, rows)
		for row := 0; row < rows; row++ {
			v := in.Value(row, c)
			if !math.IsNaN(v) {
				values = append(values, indexed{value: v, row: row})
			}
		}
		if len(values) == 0 {
			return nil
		}
		sort.Slice(values, func(i, j int) bool { return values[i].value < values[j].value })

		validCount := float64(len(values))
		for greater := 0; greater < len(values); {
			value := values[greater].value
			j := greater + 1
			for j < len(values) && values[j].value == value {
				j++
			}
			rankValue := calc.Rank(greater, j-greater, validCount)
			for k := greater; k < j; k++ {
				out.SetValue(values[k].row, c, rankValue)
			}
			greater = j
		}
		return nil
	})
}
