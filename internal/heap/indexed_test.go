package heap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OutSquareCapital/rustats/internal/heap"
)

func TestIndexed_MaxHeapPeekPop(t *testing.T) {
	h := heap.NewMax(10)
	h.Push(3, 0)
	h.Push(7, 1)
	h.Push(5, 2)

	v, r, ok := h.Peek()
	require.True(t, ok)
	require.Equal(t, 7.0, v)
	require.Equal(t, 1, r)

	v, r, ok = h.Pop()
	require.True(t, ok)
	require.Equal(t, 7.0, v)
	require.Equal(t, 1, r)
	require.Equal(t, 2, h.Len())
}

func TestIndexed_MinHeapOrder(t *testing.T) {
	h := heap.NewMin(10)
	for i, v := range []float64{9, 2, 5, 1, 7} {
		h.Push(v, i)
	}
	var popped []float64
	for h.Len() > 0 {
		v, _, _ := h.Pop()
		popped = append(popped, v)
	}
	require.Equal(t, []float64{1, 2, 5, 7, 9}, popped)
}

func TestIndexed_RemoveArbitraryRow(t *testing.T) {
	h := heap.NewMax(10)
	for i, v := range []float64{9, 2, 5, 1, 7} {
		h.Push(v, i)
	}
	require.True(t, h.Remove(2)) // removes value 5 at row 2
	require.Equal(t, 4, h.Len())

	var popped []float64
	for h.Len() > 0 {
		v, _, _ := h.Pop()
		popped = append(popped, v)
	}
	require.Equal(t, []float64{9, 7, 2, 1}, popped)
}

func TestIndexed_RemoveAbsentRowIsFalse(t *testing.T) {
	h := heap.NewMax(10)
	h.Push(1, 0)
	require.False(t, h.Remove(5))
}

func TestIndexed_PositionsConsistentAfterChurn(t *testing.T) {
	h := heap.NewMin(20)
	for i, v := range []float64{12, 4, 9, 1, 15, 3, 8, 20, 6} {
		h.Push(v, i)
	}
	h.Remove(3)
	h.Push(0.5, 9)
	h.Remove(0)

	var popped []float64
	for h.Len() > 0 {
		v, _, _ := h.Pop()
		popped = append(popped, v)
	}
	for i := 1; i < len(popped); i++ {
		require.LessOrEqual(t, popped[i-1], popped[i], "min-heap must drain in ascending order")
	}
}
