package sorts

import "github.com/san-kum/sortviz/internal/trace"

// Heap builds a max-heap over [left, right], then repeatedly swaps the root
// behind the shrinking heap.
type Heap struct{}

func (Heap) Name() string     { return "heap" }
func (Heap) Kind() trace.Kind { return trace.KindSwap }

func (h Heap) Sort(rec *trace.Recorder, y, left, right int) error {
	n := right - left + 1
	if n < 2 {
		return nil
	}
	for i := n/2 - 1; i >= 0; i-- {
		h.siftDown(rec, y, left, i, n)
	}
	for end := n - 1; end > 0; end-- {
		rec.Swap(y, left+end, left)
		h.siftDown(rec, y, left, 0, end)
	}
	return nil
}

// siftDown restores the heap property below i for a heap of length n
// rooted at offset first.
func (Heap) siftDown(rec *trace.Recorder, y, first, i, n int) {
	row := rec.Row(y)
	for {
		l, r, largest := 2*i+1, 2*i+2, i
		if l < n && rec.Less(row[first+largest], row[first+l]) {
			largest = l
		}
		if r < n && rec.Less(row[first+largest], row[first+r]) {
			largest = r
		}
		if largest == i {
			return
		}
		rec.Swap(y, first+i, first+largest)
		i = largest
	}
}
