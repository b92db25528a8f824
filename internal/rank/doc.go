// Package rank computes the per-row sliding rank tally: for a focal
// value against the other non-missing values in its window, twice the
// count of values it strictly exceeds, the count tied, and the count
// valid. No incremental
// structure backs this — rank relative to a moving focal point is not
// stable under a window slide, so each row re-scans its window in O(L).
package rank
