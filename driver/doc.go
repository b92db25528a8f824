// Package driver walks a matrix.Dense one column at a time, dispatching
// warm-up rows (admit only) and steady-state rows (admit and evict)
// through the internal/calc, internal/deque, internal/heap, and
// internal/rank state machines. Every driver offers a single-threaded
// and a parallel (one goroutine per column, via errgroup) form; both
// forms write disjoint output columns and must produce bit-identical
// results, since no reduction ever crosses a column boundary.
package driver
