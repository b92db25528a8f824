package driver

import (
	"github.com/OutSquareCapital/rustats/internal/heap"
	"github.com/OutSquareCapital/rustats/internal/window"
	"github.com/OutSquareCapital/rustats/matrix"
)

// Median runs the move-median driver: §4.4's dual-heap protocol behind
// the same warm-up/steady-state row schedule as Scalar and Deque. Each
// row admits the incoming value (if non-missing) before evicting the
// precedent (if non-missing); both operations rebalance the heaps, so
// by the end of the row 0 <= |low| - |high| <= 1 always holds.
func Median(in, out *matrix.Dense, length, minLength int, parallel bool) error {
	rows, cols := in.Rows(), in.Cols()

	return runColumns(cols, parallel, func(c int) error {
		m := heap.NewMedian(rows)
		s := window.New()
		col := func(row int) float64 { return in.Value(row, c) }

		for row := 0; row < length && row < rows; row++ {
			s.AdmitOnly(col, row)
			if s.Admits() {
				m.Admit(s.Current, row)
			}
			s.Step()
			if s.Observations >= minLength {
				if v, ok := m.Value(); ok {
					out.SetValue(row, c, v)
				}
			}
		}

		for row := length; row < rows; row++ {
			s.Refresh(col, row, length)
			if s.Admits() {
				m.Admit(s.Current, row)
			}
			if s.Evicts() {
				m.Evict(s.PrecedentIdx)
			}
			s.Step()
			if s.Observations >= minLength {
				if v, ok := m.Value(); ok {
					out.SetValue(row, c, v)
				}
			}
		}
		return nil
	})
}
