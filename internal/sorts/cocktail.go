package sorts

import "github.com/san-kum/sortviz/internal/trace"

// Cocktail alternates forward and backward bubble passes until a full
// round trip makes no swap.
type Cocktail struct{}

func (Cocktail) Name() string     { return "cocktail" }
func (Cocktail) Kind() trace.Kind { return trace.KindSwap }

func (Cocktail) Sort(rec *trace.Recorder, y, left, right int) error {
	row := rec.Row(y)
	for swapped := true; swapped; {
		swapped = false
		for i := left; i < right; i++ {
			if rec.Less(row[i+1], row[i]) {
				rec.Swap(y, i, i+1)
				swapped = true
			}
		}
		if !swapped {
			break
		}

		swapped = false
		for i := right - 1; i >= left; i-- {
			if rec.Less(row[i+1], row[i]) {
				rec.Swap(y, i, i+1)
				swapped = true
			}
		}
	}
	return nil
}
