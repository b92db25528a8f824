package driver

import (
	"errors"
	"fmt"
)

// ErrZeroLength indicates length (L) was 0.
var ErrZeroLength = errors.New("driver: length must be >= 1")

// ErrZeroMinLength indicates min_length (M) was 0.
var ErrZeroMinLength = errors.New("driver: min_length must be >= 1")

// ErrMinLengthExceedsLength indicates M > L.
var ErrMinLengthExceedsLength = errors.New("driver: min_length must be <= length")

// ErrLengthExceedsRows indicates L > R, the matrix's row count.
var ErrLengthExceedsRows = errors.New("driver: length must be <= row count")

// driverErrorf wraps an underlying error with the calling operation's name.
func driverErrorf(op string, err error) error {
	return fmt.Errorf("driver.%s: %w", op, err)
}

// ValidateWindow rejects a shape/parameter error (spec error kind 1)
// before any column work begins: L=0, M=0, M>L, or L>R.
func ValidateWindow(rows, length, minLength int) error {
	switch {
	case length <= 0:
		return driverErrorf("ValidateWindow", ErrZeroLength)
	case minLength <= 0:
		return driverErrorf("ValidateWindow", ErrZeroMinLength)
	case minLength > length:
		return driverErrorf("ValidateWindow", ErrMinLengthExceedsLength)
	case length > rows:
		return driverErrorf("ValidateWindow", ErrLengthExceedsRows)
	default:
		return nil
	}
}
