// Package matrix provides the dense, row-major float64 storage that the
// rest of rustats computes over. A Dense is the Go stand-in for the
// NumPy array the original PyO3 extension received across the Python
// boundary: one flat backing slice, row-major strides, and IEEE-754 NaN
// as the sentinel for a missing observation.
package matrix
