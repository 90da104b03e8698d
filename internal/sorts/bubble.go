package sorts

import "github.com/san-kum/sortviz/internal/trace"

// Bubble scans forward from each position and swaps any smaller element
// into it. It behaves like selection sort that swaps eagerly.
type Bubble struct{}

func (Bubble) Name() string     { return "bubble" }
func (Bubble) Kind() trace.Kind { return trace.KindSwap }

func (Bubble) Sort(rec *trace.Recorder, y, left, right int) error {
	row := rec.Row(y)
	for ; left <= right; left++ {
		for x := left; x <= right; x++ {
			if rec.Less(row[x], row[left]) {
				rec.Swap(y, left, x)
			}
		}
	}
	return nil
}
