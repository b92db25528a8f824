package calc

import "math"

// Mean returns S1/n. Undefined when n < 1, in which case NaN is returned
// (callers gate on observation count before finalizing, so this is a
// defensive fallback, not a path exercised by the drivers).
func Mean(sum1 float64, n float64) float64 {
	if n < 1 {
		return math.NaN()
	}
	return sum1 / n
}

// Variance is the unbiased, Bessel-corrected sample variance:
// (S2/n - mean^2) * n/(n-1). Undefined for n < 2.
func Variance(sum1, sum2, n float64) float64 {
	if n < 2 {
		return math.NaN()
	}
	mean := sum1 / n
	return (sum2/n - mean*mean) * (n / (n - 1))
}

// Stdev is sqrt(Variance). Undefined for n < 2.
func Stdev(sum1, sum2, n float64) float64 {
	return math.Sqrt(Variance(sum1, sum2, n))
}

// Skewness is the Fisher-Pearson sample-skew correction of the third
// standardized moment. Undefined for n < 3.
func Skewness(sum1, sum2, sum3, n float64) float64 {
	if n < 3 {
		return math.NaN()
	}
	mean := sum1 / n
	v := Variance(sum1, sum2, n)
	numerator := sum3/n - mean*mean*mean - 3*mean*v
	std := math.Sqrt(v)
	return (math.Sqrt(n*(n-1)) * numerator) / ((n - 2) * std * std * std)
}

// Kurtosis is the excess sample kurtosis. Undefined for n < 4.
func Kurtosis(sum1, sum2, sum3, sum4, n float64) float64 {
	if n < 4 {
		return math.NaN()
	}
	mean := sum1 / n
	v := Variance(sum1, sum2, n)
	skewNumerator := sum3/n - mean*mean*mean - 3*mean*v
	k := sum4/n - mean*mean*mean*mean - 6*v*mean*mean - 4*skewNumerator*mean
	return (((n*n-1)*k)/(v*v) - 3*(n-1)*(n-1)) / ((n - 2) * (n - 3))
}

// Rank maps a focal observation's tally within its window to [-1, +1].
// greaterCount and equalCount follow the double-increment-on-strict-
// inequality convention documented on rank.Tally: ties contribute
// a fractional mid-rank via the equalCount term. validCount == 1 (the
// focal point alone) returns 0.
func Rank(greaterCount, equalCount int, validCount float64) float64 {
	if validCount <= 1 {
		return 0
	}
	rawRank := float64(greaterCount+equalCount) - 1
	return 2 * ((0.5*rawRank)/(validCount-1) - 0.5)
}

// CompensatedAdd performs one step of two-term (Kahan/Neumaier) compensated
// summation: it folds delta into sum while carrying comp forward so that
// low-order bits lost to a single add are recovered on a later step.
// Pass -x on removal to undo a prior addition of x.
func CompensatedAdd(sum, comp, delta float64) (newSum, newComp float64) {
	t := delta - comp
	u := sum + t
	newComp = (u - sum) - t
	newSum = u
	return newSum, newComp
}
