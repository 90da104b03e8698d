package sorts

import (
	"fmt"
	"math"

	"github.com/san-kum/sortviz/internal/trace"
)

// Radix is least-significant-digit radix sort in a configurable base. Each
// pass rewrites the range, one cell per write, in stable bucket order.
type Radix struct {
	base int
}

func NewRadix(base int) (Radix, error) {
	if base < 2 {
		return Radix{}, fmt.Errorf("%w: got %d", ErrRadixBase, base)
	}
	return Radix{base: base}, nil
}

func (Radix) Name() string     { return "radix" }
func (Radix) Kind() trace.Kind { return trace.KindWrite }

func (r Radix) Sort(rec *trace.Recorder, y, left, right int) error {
	if left > right {
		return nil
	}
	row := rec.Row(y)
	keys := make([]uint64, right-left+1)
	for i := range keys {
		v := row[left+i]
		if v < 0 || v != math.Trunc(v) || math.IsInf(v, 0) || v > math.MaxInt64 {
			return fmt.Errorf("%w: %v at index %d", ErrRadixValue, v, left+i)
		}
		keys[i] = uint64(v)
	}

	values := append([]float64(nil), row[left:right+1]...)
	for _, order := range lsdPasses(keys, uint64(r.base)) {
		for k, idx := range order {
			rec.Write(y, left+k, values[idx])
		}
	}
	return nil
}

// lsdPasses returns, for every digit pass, the arrangement of the input
// indices after that pass. Buckets keep arrival order, so each pass is stable.
func lsdPasses(keys []uint64, base uint64) [][]int {
	var maxKey uint64
	for _, k := range keys {
		maxKey = max(maxKey, k)
	}

	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}

	var passes [][]int
	buckets := make([][]int, base)
	for place := uint64(1); place <= maxKey; place *= base {
		for d := range buckets {
			buckets[d] = buckets[d][:0]
		}
		for _, idx := range order {
			d := (keys[idx] / place) % base
			buckets[d] = append(buckets[d], idx)
		}

		next := make([]int, 0, len(order))
		for _, b := range buckets {
			next = append(next, b...)
		}
		order = next
		passes = append(passes, order)

		if place > maxKey/base {
			break
		}
	}
	return passes
}
