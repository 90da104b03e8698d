package sorts

import "github.com/san-kum/sortviz/internal/trace"

// shellGaps is Ciura's gap sequence.
var shellGaps = []int{701, 301, 132, 57, 23, 10, 4, 1}

// Shell runs gapped insertion sort for each gap, moving elements with swaps.
type Shell struct{}

func (Shell) Name() string     { return "shell" }
func (Shell) Kind() trace.Kind { return trace.KindSwap }

func (Shell) Sort(rec *trace.Recorder, y, left, right int) error {
	row := rec.Row(y)
	for _, gap := range shellGaps {
		for i := left + gap; i <= right; i++ {
			for j := i; j >= left+gap && rec.Less(row[j], row[j-gap]); j -= gap {
				rec.Swap(y, j, j-gap)
			}
		}
	}
	return nil
}
