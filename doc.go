// Package rustats computes moving-window and column-aggregate
// statistics — sum, mean, variance, standard deviation, skewness,
// kurtosis, minimum, maximum, median, and rank — over a matrix.Dense
// whose missing cells are IEEE-754 NaN. Every operation processes
// columns independently; pass parallel=true to fan columns out across
// goroutines via golang.org/x/sync/errgroup, or false to run them on
// one goroutine. Both forms return bit-identical output.
package rustats
