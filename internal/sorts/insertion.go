package sorts

import "github.com/san-kum/sortviz/internal/trace"

type Insertion struct{}

func (Insertion) Name() string     { return "insertion" }
func (Insertion) Kind() trace.Kind { return trace.KindSwap }

func (Insertion) Sort(rec *trace.Recorder, y, left, right int) error {
	row := rec.Row(y)
	for i := left; i <= right; i++ {
		for j := i; j > left && rec.Less(row[j], row[j-1]); j-- {
			rec.Swap(y, j, j-1)
		}
	}
	return nil
}
