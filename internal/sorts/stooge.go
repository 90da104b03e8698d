package sorts

import (
	"math"

	"github.com/san-kum/sortviz/internal/trace"
)

type Stooge struct{}

func (Stooge) Name() string     { return "stooge" }
func (Stooge) Kind() trace.Kind { return trace.KindSwap }

func (s Stooge) Sort(rec *trace.Recorder, y, left, right int) error {
	if left >= right {
		return nil
	}
	row := rec.Row(y)
	if rec.Less(row[right], row[left]) {
		rec.Swap(y, left, right)
	}

	if right-left >= 2 {
		t := int(math.Round(float64(right-left) / 3))
		s.Sort(rec, y, left, right-t)
		s.Sort(rec, y, left+t, right)
		s.Sort(rec, y, left, right-t)
	}
	return nil
}
