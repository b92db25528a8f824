package driver

import (
	"github.com/OutSquareCapital/rustats/internal/deque"
	"github.com/OutSquareCapital/rustats/internal/window"
	"github.com/OutSquareCapital/rustats/matrix"
)

// Deque runs the move-deque driver behind moving min/max: same warm-up
// and steady-state row schedule as Scalar, but backed by a
// deque.Monotonic instead of a calc.Accumulator, so eviction is a front
// check against the row index rather than a Remove call.
func Deque(in, out *matrix.Dense, length, minLength int, isMax, parallel bool) error {
	rows, cols := in.Rows(), in.Cols()

	return runColumns(cols, parallel, func(c int) error {
		var d *deque.Monotonic
		if isMax {
			d = deque.NewMax()
		} else {
			d = deque.NewMin()
		}
		s := window.New()
		col := func(row int) float64 { return in.Value(row, c) }

		for row := 0; row < length && row < rows; row++ {
			s.AdmitOnly(col, row)
			if s.Admits() {
				d.Insert(s.Current, row)
			}
			s.Step()
			if s.Observations >= minLength {
				if v, ok := d.Front(); ok {
					out.SetValue(row, c, v)
				}
			}
		}

		for row := length; row < rows; row++ {
			s.Refresh(col, row, length)
			if s.Admits() {
				d.Insert(s.Current, row)
			}
			if s.Evicts() {
				d.EvictFront(s.PrecedentIdx)
			}
			s.Step()
			if s.Observations >= minLength {
				if v, ok := d.Front(); ok {
					out.SetValue(row, c, v)
				}
			}
		}
		return nil
	})
}
