// Package heap implements the indexed binary heap that backs the
// sliding median: a heap that, in addition to push/pop/peek, supports
// removing an arbitrary element in O(log n) given the original row it
// was pushed under. A side array of heap positions, kept in lockstep
// with every sift, is what makes that removal possible.
package heap
