// Package deque implements the monotonic double-ended deque behind the
// sliding minimum and maximum: values at the front stay the current
// window extremum, and insertion discards any back entry the new value
// makes irrelevant, so each element is pushed and popped at most once.
package deque
