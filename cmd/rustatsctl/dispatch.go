package main

import (
	"fmt"

	"github.com/OutSquareCapital/rustats"
	"github.com/OutSquareCapital/rustats/config"
	"github.com/OutSquareCapital/rustats/matrix"
)

// dispatch runs the operation named by cfg.Operation against in,
// threading the window parameters through for move_* ops and ignoring
// them for agg_* ops.
func dispatch(cfg config.Config, in *matrix.Dense) (*matrix.Dense, error) {
	switch cfg.Operation {
	case "move_sum":
		return rustats.MoveSum(in, cfg.Length, cfg.MinLength, cfg.Parallel)
	case "move_mean":
		return rustats.MoveMean(in, cfg.Length, cfg.MinLength, cfg.Parallel)
	case "move_var":
		return rustats.MoveVar(in, cfg.Length, cfg.MinLength, cfg.Parallel)
	case "move_stdev":
		return rustats.MoveStdev(in, cfg.Length, cfg.MinLength, cfg.Parallel)
	case "move_skew":
		return rustats.MoveSkew(in, cfg.Length, cfg.MinLength, cfg.Parallel)
	case "move_kurtosis":
		return rustats.MoveKurtosis(in, cfg.Length, cfg.MinLength, cfg.Parallel)
	case "move_min":
		return rustats.MoveMin(in, cfg.Length, cfg.MinLength, cfg.Parallel)
	case "move_max":
		return rustats.MoveMax(in, cfg.Length, cfg.MinLength, cfg.Parallel)
	case "move_median":
		return rustats.MoveMedian(in, cfg.Length, cfg.MinLength, cfg.Parallel)
	case "move_rank":
		return rustats.MoveRank(in, cfg.Length, cfg.MinLength, cfg.Parallel)
	case "agg_sum":
		return rustats.AggSum(in, cfg.Parallel)
	case "agg_mean":
		return rustats.AggMean(in, cfg.Parallel)
	case "agg_var":
		return rustats.AggVar(in, cfg.Parallel)
	case "agg_stdev":
		return rustats.AggStdev(in, cfg.Parallel)
	case "agg_skew":
		return rustats.AggSkew(in, cfg.Parallel)
	case "agg_kurtosis":
		return rustats.AggKurtosis(in, cfg.Parallel)
	case "agg_min":
		return rustats.AggMin(in, cfg.Parallel)
	case "agg_max":
		return rustats.AggMax(in, cfg.Parallel)
	case "agg_median":
		return rustats.AggMedian(in, cfg.Parallel)
	case "agg_rank":
		return rustats.AggRank(in, cfg.Parallel)
	default:
		return nil, fmt.Errorf("dispatch: %w: %q", config.ErrUnknownOperation, cfg.Operation)
	}
}
