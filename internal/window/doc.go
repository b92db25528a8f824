// Package window tracks the per-column, per-row bookkeeping shared by
// every driver in this module: the value being admitted, the value (if
// any) evicted this step, the row it was evicted from, and the running
// count of non-missing observations currently inside the window.
package window
