package decor

import "container/heap"

// activeHeap is a min-heap of range decorations currently open during a
// DecoratedSpansInRange sweep, ordered by the position where each one
// closes (heapPos, its end) and then by endBias as a tiebreak.
type activeHeap []Decoration

func (h activeHeap) Len() int { return len(h) }

func (h activeHeap) Less(i, j int) bool {
	if h[i].heapPos() != h[j].heapPos() {
		return h[i].heapPos() < h[j].heapPos()
	}
	return h[i].endBias() < h[j].endBias()
}

func (h activeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *activeHeap) Push(x any) { *h = append(*h, x.(Decoration)) }

func (h *activeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func (h *activeHeap) push(d Decoration) { heap.Push(h, d) }

func (h *activeHeap) pop() Decoration { return heap.Pop(h).(Decoration) }

// peekEnd returns the closing position of the soonest-closing active
// decoration, or -1 if none are active.
func (h *activeHeap) peekEnd() int {
	if len(*h) == 0 {
		return -1
	}
	return (*h)[0].heapPos()
}
