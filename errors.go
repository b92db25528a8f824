package rustats

import (
	"errors"
	"fmt"
)

// ErrNilMatrix indicates a nil input matrix was passed to an operation.
var ErrNilMatrix = errors.New("rustats: nil input matrix")

func opErrorf(op string, err error) error {
	return fmt.Errorf("rustats.%s: %w", op, err)
}
