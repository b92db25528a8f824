package matrix

import "math"

// nan is the sentinel missing-value marker used throughout this package.
var nan = math.NaN()
