package sorts

import "github.com/san-kum/sortviz/internal/trace"

// Selection swaps the minimum of the unsorted suffix to its front. The swap
// is recorded even when the minimum is already in place.
type Selection struct{}

func (Selection) Name() string     { return "selection" }
func (Selection) Kind() trace.Kind { return trace.KindSwap }

func (Selection) Sort(rec *trace.Recorder, y, left, right int) error {
	row := rec.Row(y)
	for ; left <= right; left++ {
		minI := left
		for i := left + 1; i <= right; i++ {
			if rec.Less(row[i], row[minI]) {
				minI = i
			}
		}
		rec.Swap(y, left, minI)
	}
	return nil
}
