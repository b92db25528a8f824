package heap

// Median is the dual-heap sliding median accumulator described in the
// indexed-heap design: a max-heap of the smaller half, a min-heap of
// the larger half, rebalanced to within one element of each other so
// the median is always at one root or the average of both roots.
type Median struct {
	low  *Indexed // max-heap, the smaller half
	high *Indexed // min-heap, the larger half
}

// NewMedian returns a Median ready to track rows in [0, maxRows).
func NewMedian(maxRows int) *Median {
	return &Median{low: NewMax(maxRows), high: NewMin(maxRows)}
}

// Admit inserts a non-missing (value, row) into whichever heap keeps
// the invariant low.peek() <= high.peek(), then rebalances.
func (m *Median) Admit(value float64, row int) {
	if lowVal, _, ok := m.low.Peek(); !ok || value <= lowVal {
		m.low.Push(value, row)
	} else {
		m.high.Push(value, row)
	}
	m.rebalance()
}

// Evict removes the element originally admitted under row, if this
// median instance is holding it (missing rows never reach either heap,
// so Evict is a no-op for them). Always followed by a rebalance.
func (m *Median) Evict(row int) {
	if !m.low.Remove(row) {
		m.high.Remove(row)
	}
	m.rebalance()
}

// rebalance restores 0 <= len(low) - len(high) <= 1.
func (m *Median) rebalance() {
	for m.low.Len() > m.high.Len()+1 {
		v, r, _ := m.low.Pop()
		m.high.Push(v, r)
	}
	for m.high.Len() > m.low.Len() {
		v, r, _ := m.high.Pop()
		m.low.Push(v, r)
	}
}

// Value returns the current median and whether either heap holds data.
func (m *Median) Value() (median float64, ok bool) {
	lowVal, _, lowOK := m.low.Peek()
	if !lowOK {
		return 0, false
	}
	if m.low.Len() > m.high.Len() {
		return lowVal, true
	}
	highVal, _, _ := m.high.Peek()
	return (lowVal + highVal) / 2, true
}

// Len returns the total number of valid observations currently held
// across both heaps.
func (m *Median) Len() int {
	return m.low.Len() + m.high.Len()
}

// HalvesBalance returns len(low) - len(high), exposed for tests that
// assert the rebalance invariant directly.
func (m *Median) HalvesBalance() int {
	return m.low.Len() - m.high.Len()
}
