package rustats

import (
	"github.com/OutSquareCapital/rustats/driver"
	"github.com/OutSquareCapital/rustats/internal/calc"
	"github.com/OutSquareCapital/rustats/matrix"
)

// moveScalar validates (L, M) against in's shape, allocates a same-shape
// NaN output, and runs the move-scalar driver with a fresh accumulator
// per column. Every MoveSum...MoveKurtosis entry point below is this
// call with a different accumulator factory.
func moveScalar(op string, in *matrix.Dense, length, minLength int, parallel bool, newAcc func() calc.Accumulator) (*matrix.Dense, error) {
	if in == nil {
		return nil, opErrorf(op, ErrNilMatrix)
	}
	if err := driver.ValidateWindow(in.Rows(), length, minLength); err != nil {
		return nil, opErrorf(op, err)
	}
	out, err := matrix.NewNaN(in.Rows(), in.Cols())
	if err != nil {
		return nil, opErrorf(op, err)
	}
	if err := driver.Scalar(in, out, length, minLength, parallel, newAcc); err != nil {
		return nil, opErrorf(op, err)
	}
	return out, nil
}

// aggScalar is moveScalar's aggregate counterpart: one pass, no L/M.
func aggScalar(op string, in *matrix.Dense, parallel bool, newAcc func() calc.Accumulator) (*matrix.Dense, error) {
	if in == nil {
		return nil, opErrorf(op, ErrNilMatrix)
	}
	out, err := matrix.NewNaN(in.Rows(), in.Cols())
	if err != nil {
		return nil, opErrorf(op, err)
	}
	if err := driver.Aggregate(in, out, parallel, newAcc); err != nil {
		return nil, opErrorf(op, err)
	}
	return out, nil
}

// MoveSum is the moving-window running sum.
func MoveSum(in *matrix.Dense, length, minLength int, parallel bool) (*matrix.Dense, error) {
	return moveScalar("MoveSum", in, length, minLength, parallel, func() calc.Accumulator { return &calc.SumAcc{} })
}

// MoveMean is the moving-window arithmetic mean.
func MoveMean(in *matrix.Dense, length, minLength int, parallel bool) (*matrix.Dense, error) {
	return moveScalar("MoveMean", in, length, minLength, parallel, func() calc.Accumulator { return &calc.MeanAcc{} })
}

// MoveVar is the moving-window unbiased (Bessel-corrected) sample
// variance. Undefined (NaN) wherever fewer than 2 observations are in
// the window.
func MoveVar(in *matrix.Dense, length, minLength int, parallel bool) (*matrix.Dense, error) {
	return moveScalar("MoveVar", in, length, minLength, parallel, func() calc.Accumulator { return &calc.VarAcc{} })
}

// MoveStdev is the moving-window sample standard deviation.
func MoveStdev(in *matrix.Dense, length, minLength int, parallel bool) (*matrix.Dense, error) {
	return moveScalar("MoveStdev", in, length, minLength, parallel, func() calc.Accumulator { return &calc.StdevAcc{} })
}

// MoveSkew is the moving-window sample skewness (Fisher-Pearson
// corrected). Undefined wherever fewer than 3 observations are present.
func MoveSkew(in *matrix.Dense, length, minLength int, parallel bool) (*matrix.Dense, error) {
	return moveScalar("MoveSkew", in, length, minLength, parallel, func() calc.Accumulator { return &calc.SkewAcc{} })
}

// MoveKurtosis is the moving-window excess sample kurtosis. Undefined
// wherever fewer than 4 observations are present.
func MoveKurtosis(in *matrix.Dense, length, minLength int, parallel bool) (*matrix.Dense, error) {
	return moveScalar("MoveKurtosis", in, length, minLength, parallel, func() calc.Accumulator { return &calc.KurtAcc{} })
}

// MoveMin is the moving-window minimum, backed by a monotonic deque.
func MoveMin(in *matrix.Dense, length, minLength int, parallel bool) (*matrix.Dense, error) {
	if in == nil {
		return nil, opErrorf("MoveMin", ErrNilMatrix)
	}
	if err := driver.ValidateWindow(in.Rows(), length, minLength); err != nil {
		return nil, opErrorf("MoveMin", err)
	}
	out, err := matrix.NewNaN(in.Rows(), in.Cols())
	if err != nil {
		return nil, opErrorf("MoveMin", err)
	}
	if err := driver.Deque(in, out, length, minLength, false, parallel); err != nil {
		return nil, opErrorf("MoveMin", err)
	}
	return out, nil
}

// MoveMax is the moving-window maximum, backed by a monotonic deque.
func MoveMax(in *matrix.Dense, length, minLength int, parallel bool) (*matrix.Dense, error) {
	if in == nil {
		return nil, opErrorf("MoveMax", ErrNilMatrix)
	}
	if err := driver.ValidateWindow(in.Rows(), length, minLength); err != nil {
		return nil, opErrorf("MoveMax", err)
	}
	out, err := matrix.NewNaN(in.Rows(), in.Cols())
	if err != nil {
		return nil, opErrorf("MoveMax", err)
	}
	if err := driver.Deque(in, out, length, minLength, true, parallel); err != nil {
		return nil, opErrorf("MoveMax", err)
	}
	return out, nil
}

// MoveMedian is the moving-window median, backed by the dual indexed-
// heap protocol in internal/heap: a max-heap of the smaller half and a
// min-heap of the larger half, rebalanced every row.
func MoveMedian(in *matrix.Dense, length, minLength int, parallel bool) (*matrix.Dense, error) {
	if in == nil {
		return nil, opErrorf("MoveMedian", ErrNilMatrix)
	}
	if err := driver.ValidateWindow(in.Rows(), length, minLength); err != nil {
		return nil, opErrorf("MoveMedian", err)
	}
	out, err := matrix.NewNaN(in.Rows(), in.Cols())
	if err != nil {
		return nil, opErrorf("MoveMedian", err)
	}
	if err := driver.Median(in, out, length, minLength, parallel); err != nil {
		return nil, opErrorf("MoveMedian", err)
	}
	return out, nil
}

// MoveRank is the sliding fractional mid-rank of the focal value within
// its window, normalised to [-1, +1]. Unlike every other moving
// operation it keeps no incremental state: each eligible row re-tallies
// its window in O(length), since a value's rank relative to a moving
// focal point is not stable under a window slide.
func MoveRank(in *matrix.Dense, length, minLength int, parallel bool) (*matrix.Dense, error) {
	if in == nil {
		return nil, opErrorf("MoveRank", ErrNilMatrix)
	}
	if err := driver.ValidateWindow(in.Rows(), length, minLength); err != nil {
		return nil, opErrorf("MoveRank", err)
	}
	out, err := matrix.NewNaN(in.Rows(), in.Cols())
	if err != nil {
		return nil, opErrorf("MoveRank", err)
	}
	if err := driver.Rank(in, out, length, minLength, parallel); err != nil {
		return nil, opErrorf("MoveRank", err)
	}
	return out, nil
}

// AggSum broadcasts the column's total sum to every row.
func AggSum(in *matrix.Dense, parallel bool) (*matrix.Dense, error) {
	return aggScalar("AggSum", in, parallel, func() calc.Accumulator { return &calc.SumAcc{} })
}

// AggMean broadcasts the column's mean to every row.
func AggMean(in *matrix.Dense, parallel bool) (*matrix.Dense, error) {
	return aggScalar("AggMean", in, parallel, func() calc.Accumulator { return &calc.MeanAcc{} })
}

// AggVar broadcasts the column's sample variance to every row.
func AggVar(in *matrix.Dense, parallel bool) (*matrix.Dense, error) {
	return aggScalar("AggVar", in, parallel, func() calc.Accumulator { return &calc.VarAcc{} })
}

// AggStdev broadcasts the column's sample standard deviation to every row.
func AggStdev(in *matrix.Dense, parallel bool) (*matrix.Dense, error) {
	return aggScalar("AggStdev", in, parallel, func() calc.Accumulator { return &calc.StdevAcc{} })
}

// AggSkew broadcasts the column's sample skewness to every row.
func AggSkew(in *matrix.Dense, parallel bool) (*matrix.Dense, error) {
	return aggScalar("AggSkew", in, parallel, func() calc.Accumulator { return &calc.SkewAcc{} })
}

// AggKurtosis broadcasts the column's excess sample kurtosis to every row.
func AggKurtosis(in *matrix.Dense, parallel bool) (*matrix.Dense, error) {
	return aggScalar("AggKurtosis", in, parallel, func() calc.Accumulator { return &calc.KurtAcc{} })
}

// AggMin broadcasts the column's minimum to every row.
func AggMin(in *matrix.Dense, parallel bool) (*matrix.Dense, error) {
	return aggScalar("AggMin", in, parallel, func() calc.Accumulator { return &calc.MinAcc{} })
}

// AggMax broadcasts the column's maximum to every row.
func AggMax(in *matrix.Dense, parallel bool) (*matrix.Dense, error) {
	return aggScalar("AggMax", in, parallel, func() calc.Accumulator { return &calc.MaxAcc{} })
}

// AggMedian broadcasts the column's median to every row, including rows
// that were missing on input.
func AggMedian(in *matrix.Dense, parallel bool) (*matrix.Dense, error) {
	if in == nil {
		return nil, opErrorf("AggMedian", ErrNilMatrix)
	}
	out, err := matrix.NewNaN(in.Rows(), in.Cols())
	if err != nil {
		return nil, opErrorf("AggMedian", err)
	}
	if err := driver.AggregateMedian(in, out, parallel); err != nil {
		return nil, opErrorf("AggMedian", err)
	}
	return out, nil
}

// AggRank assigns each non-missing row its column-wide fractional
// mid-rank; rows missing on input stay missing (it does not broadcast
// like the other Agg* operations do).
func AggRank(in *matrix.Dense, parallel bool) (*matrix.Dense, error) {
	if in == nil {
		return nil, opErrorf("AggRank", ErrNilMatrix)
	}
	out, err := matrix.NewNaN(in.Rows(), in.Cols())
	if err != nil {
		return nil, opErrorf("AggRank", err)
	}
	if err := driver.AggregateRank(in, out, parallel); err != nil {
		return nil, opErrorf("AggRank", err)
	}
	return out, nil
}
