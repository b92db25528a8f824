// Package calc holds the closed-form moment formulae and the streaming
// Accumulator family that every driver in this module folds a value
// into or out of. Formulae take raw power sums (sum, sum of squares,
// sum of cubes, sum of fourth powers) and an observation count; the
// accumulators track those sums incrementally as a window admits and
// evicts rows.
package calc
