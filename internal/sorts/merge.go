package sorts

import "github.com/san-kum/sortviz/internal/trace"

// Merge is top-down merge sort. Every merged cell is recorded as its own
// single-value write so replay fills the range one cell per tick.
type Merge struct{}

func (Merge) Name() string     { return "merge" }
func (Merge) Kind() trace.Kind { return trace.KindWrite }

func (m Merge) Sort(rec *trace.Recorder, y, left, right int) error {
	if left >= right {
		return nil
	}
	mid := left + (right-left)/2
	m.Sort(rec, y, left, mid)
	m.Sort(rec, y, mid+1, right)
	m.merge(rec, y, left, mid, right)
	return nil
}

func (Merge) merge(rec *trace.Recorder, y, left, mid, right int) {
	row := rec.Row(y)
	lo := append([]float64(nil), row[left:mid+1]...)
	hi := append([]float64(nil), row[mid+1:right+1]...)

	i, j := 0, 0
	for k := left; k <= right; k++ {
		var v float64
		if j >= len(hi) || (i < len(lo) && !rec.Less(hi[j], lo[i])) {
			v = lo[i]
			i++
		} else {
			v = hi[j]
			j++
		}
		rec.Write(y, k, v)
	}
}
