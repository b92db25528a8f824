package driver

import (
	"math"

	"github.com/OutSquareCapital/rustats/internal/calc"
	"github.com/OutSquareCapital/rustats/matrix"
)

// Aggregate runs the single-pass aggregate driver: newAcc folds every
// non-missing value in the column once, with no eviction, and the
// finalized value is broadcast across the whole output column. A
// column with no valid observations is left entirely missing.
func Aggregate(in, out *matrix.Dense, parallel bool, newAcc func() calc.Accumulator) error {
	rows, cols := in.Rows(), in.Cols()

	return runColumns(cols, parallel, func(c int) error {
		acc := newAcc()
		observations := 0
		for row := 0; row < rows; row++ {
			v := in.Value(row, c)
			if math.IsNaN(v) {
				continue
			}
			observations++
			acc.Add(v)
		}
		if observations == 0 {
			return nil
		}
		result := acc.Finalize(float64(observations))
		for row := 0; row < rows; row++ {
			out.SetValue(row, c, result)
		}
		return nil
	})
}
