package calc

import "math"

// Accumulator is the incremental state behind one statistic. Add folds a
// newly admitted value in; Remove undoes a previously added value when
// a window evicts it; Finalize derives the statistic's current value
// from the accumulated state and the live observation count n. Drivers
// that never evict (the aggregate driver) simply never call Remove.
type Accumulator interface {
	Add(x float64)
	Remove(x float64)
	Finalize(n float64) float64
}

// SumAcc tracks a running sum. Finalize ignores n.
type SumAcc struct {
	sum float64
}

func (a *SumAcc) Add(x float64)           { a.sum += x }
func (a *SumAcc) Remove(x float64)        { a.sum -= x }
func (a *SumAcc) Finalize(n float64) float64 { return a.sum }

// MeanAcc tracks a running sum; Finalize divides by n.
type MeanAcc struct {
	sum float64
}

func (a *MeanAcc) Add(x float64)              { a.sum += x }
func (a *MeanAcc) Remove(x float64)           { a.sum -= x }
func (a *MeanAcc) Finalize(n float64) float64 { return Mean(a.sum, n) }

// squared holds the power-sum pair (S1, S2) shared by Variance and Stdev.
// Neither sum is compensated: §4.2 applies compensated summation only to
// the third and fourth power sums, matching the source's own choice.
type squared struct {
	sum1, sum2 float64
}

func (s *squared) add(x float64) {
	s.sum1 += x
	s.sum2 += x * x
}

func (s *squared) remove(x float64) {
	s.sum1 -= x
	s.sum2 -= x * x
}

// VarAcc tracks (S1, S2) and finalizes to the Bessel-corrected variance.
type VarAcc struct {
	squared
}

func (a *VarAcc) Add(x float64)              { a.squared.add(x) }
func (a *VarAcc) Remove(x float64)           { a.squared.remove(x) }
func (a *VarAcc) Finalize(n float64) float64 { return Variance(a.sum1, a.sum2, n) }

// StdevAcc tracks (S1, S2) and finalizes to the sample standard deviation.
type StdevAcc struct {
	squared
}

func (a *StdevAcc) Add(x float64)              { a.squared.add(x) }
func (a *StdevAcc) Remove(x float64)           { a.squared.remove(x) }
func (a *StdevAcc) Finalize(n float64) float64 { return Stdev(a.sum1, a.sum2, n) }

// cubic holds (S1, S2, S3, comp3): the third power sum is compensated.
type cubic struct {
	sum1, sum2, sum3, comp3 float64
}

func (c *cubic) add(x float64) {
	c.sum1 += x
	c.sum2 += x * x
	c.sum3, c.comp3 = CompensatedAdd(c.sum3, c.comp3, x*x*x)
}

func (c *cubic) remove(x float64) {
	c.sum1 -= x
	c.sum2 -= x * x
	c.sum3, c.comp3 = CompensatedAdd(c.sum3, c.comp3, -(x * x * x))
}

// SkewAcc tracks (S1, S2, S3, comp3) and finalizes to the sample skewness.
type SkewAcc struct {
	cubic
}

func (a *SkewAcc) Add(x float64)    { a.cubic.add(x) }
func (a *SkewAcc) Remove(x float64) { a.cubic.remove(x) }
func (a *SkewAcc) Finalize(n float64) float64 {
	return Skewness(a.sum1, a.sum2, a.sum3, n)
}

// quartic holds (S1, S2, S3, comp3, S4, comp4): third and fourth power
// sums are both compensated, each carrying its own compensation term.
type quartic struct {
	cubic
	sum4, comp4 float64
}

func (q *quartic) add(x float64) {
	q.cubic.add(x)
	q.sum4, q.comp4 = CompensatedAdd(q.sum4, q.comp4, x*x*x*x)
}

func (q *quartic) remove(x float64) {
	q.cubic.remove(x)
	q.sum4, q.comp4 = CompensatedAdd(q.sum4, q.comp4, -(x * x * x * x))
}

// KurtAcc tracks (S1, S2, S3, comp3, S4, comp4) and finalizes to the
// excess sample kurtosis.
type KurtAcc struct {
	quartic
}

func (a *KurtAcc) Add(x float64)    { a.quartic.add(x) }
func (a *KurtAcc) Remove(x float64) { a.quartic.remove(x) }
func (a *KurtAcc) Finalize(n float64) float64 {
	return Kurtosis(a.sum1, a.sum2, a.sum3, a.sum4, n)
}

// MinAcc and MaxAcc back the aggregate driver's agg_min/agg_max: a single
// forward pass over non-missing values with no eviction. The moving
// min/max operations do not use this type; they run on the monotonic
// deque (internal/deque), which supports eviction directly.
type MinAcc struct {
	value float64
	seen  bool
}

func (a *MinAcc) Add(x float64) {
	if !a.seen || x < a.value {
		a.value = x
		a.seen = true
	}
}

func (a *MinAcc) Remove(float64) {
	panic("calc: MinAcc does not support Remove; use internal/deque for a moving minimum")
}

func (a *MinAcc) Finalize(float64) float64 {
	if !a.seen {
		return math.NaN()
	}
	return a.value
}

// MaxAcc is the maximum counterpart of MinAcc.
type MaxAcc struct {
	value float64
	seen  bool
}

func (a *MaxAcc) Add(x float64) {
	if !a.seen || x > a.value {
		a.value = x
		a.seen = true
	}
}

func (a *MaxAcc) Remove(float64) {
	panic("calc: MaxAcc does not support Remove; use internal/deque for a moving maximum")
}

func (a *MaxAcc) Finalize(float64) float64 {
	if !a.seen {
		return math.NaN()
	}
	return a.value
}
