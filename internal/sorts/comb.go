package sorts

import (
	"fmt"
	"math"

	"github.com/san-kum/sortviz/internal/trace"
)

// Comb is bubble sort over a gap that shrinks by a constant factor each
// pass until it reaches 1.
type Comb struct {
	shrink float64
}

func NewComb(shrink float64) (Comb, error) {
	if !(shrink > 1) {
		return Comb{}, fmt.Errorf("%w: got %v", ErrShrinkFactor, shrink)
	}
	return Comb{shrink: shrink}, nil
}

func (Comb) Name() string     { return "comb" }
func (Comb) Kind() trace.Kind { return trace.KindSwap }

func (c Comb) Sort(rec *trace.Recorder, y, left, right int) error {
	if left > right {
		return nil
	}
	row := rec.Row(y)
	gap := right - left
	for sorted := false; !sorted; {
		gap = max(int(math.Floor(float64(gap)/c.shrink)), 1)
		sorted = gap == 1

		for i := left; i+gap <= right; i++ {
			if rec.Less(row[i+gap], row[i]) {
				rec.Swap(y, i, i+gap)
				sorted = false
			}
		}
	}
	return nil
}
