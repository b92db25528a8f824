package driver

import (
	"github.com/OutSquareCapital/rustats/internal/calc"
	"github.com/OutSquareCapital/rustats/internal/window"
	"github.com/OutSquareCapital/rustats/matrix"
)

// Scalar runs the move-scalar driver: warm-up rows [0, length) admit
// only, steady-state rows [length, rows) admit and evict. newAcc is
// called once per column to build a fresh calc.Accumulator; Finalize is
// emitted to the output whenever a column's observation count reaches
// minLength. Bounds (length, minLength against rows) must already be
// validated via ValidateWindow.
func Scalar(in, out *matrix.Dense, length, minLength int, parallel bool, newAcc func() calc.Accumulator) error {
	rows, cols := in.Rows(), in.Cols()

	return runColumns(cols, parallel, func(c int) error {
		acc := newAcc()
		s := window.New()
		col := func(row int) float64 { return in.Value(row, c) }

		for row := 0; row < length && row < rows; row++ {
			s.AdmitOnly(col, row)
			if s.Admits() {
				acc.Add(s.Current)
			}
			s.Step()
			if s.Observations >= minLength {
				out.SetValue(row, c, acc.Finalize(float64(s.Observations)))
			}
		}

		for row := length; row < rows; row++ {
			s.Refresh(col, row, length)
			if s.Admits() {
				acc.Add(s.Current)
			}
			if s.Evicts() {
				acc.Remove(s.Precedent)
			}
			s.Step()
			if s.Observations >= minLength {
				out.SetValue(row, c, acc.Finalize(float64(s.Observations)))
			}
		}
		return nil
	})
}
