package driver

import (
	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

// columnFunc computes one output column from the corresponding input
// column. Columns are disjoint units of work: a columnFunc never reads
// or writes any column but its own.
type columnFunc func(col int) error

// runColumns dispatches cols calls to fn, either sequentially or fanned
// out one goroutine per column through an errgroup.Group. This is the
// direct analogue of the source's rayon into_par_iter column fan-out:
// tasks do not communicate, and the caller is responsible for ensuring
// each fn(col) touches only column col of its output.
func runColumns(cols int, parallel bool, fn columnFunc) error {
	if !parallel {
		for c := 0; c < cols; c++ {
			if err := fn(c); err != nil {
				return err
			}
		}
		return nil
	}

	glog.V(2).Infof("driver: dispatching %d columns across a work-stealing pool", cols)
	var g errgroup.Group
	for c := 0; c < cols; c++ {
		c := c
		g.Go(func() error {
			return fn(c)
		})
	}
	return g.Wait()
}
