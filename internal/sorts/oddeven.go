package sorts

import "github.com/san-kum/sortviz/internal/trace"

// OddEven compares odd-indexed then even-indexed neighbour pairs until a
// double pass makes no swap.
type OddEven struct{}

func (OddEven) Name() string     { return "oddeven" }
func (OddEven) Kind() trace.Kind { return trace.KindSwap }

func (OddEven) Sort(rec *trace.Recorder, y, left, right int) error {
	row := rec.Row(y)
	for sorted := false; !sorted; {
		sorted = true
		for i := left + 1; i < right; i += 2 {
			if rec.Less(row[i+1], row[i]) {
				rec.Swap(y, i, i+1)
				sorted = false
			}
		}
		for i := left; i < right; i += 2 {
			if rec.Less(row[i+1], row[i]) {
				rec.Swap(y, i, i+1)
				sorted = false
			}
		}
	}
	return nil
}
