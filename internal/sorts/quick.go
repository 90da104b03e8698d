package sorts

import (
	"fmt"
	"math"

	"github.com/san-kum/sortviz/internal/random"
	"github.com/san-kum/sortviz/internal/trace"
)

// Quick is Lomuto-partition quick sort with a configurable pivot policy.
type Quick struct {
	pivot PivotPolicy
	rnd   random.Source
}

func NewQuick(pivot PivotPolicy, rnd random.Source) (Quick, error) {
	if _, err := ParsePivot(string(pivot)); err != nil {
		return Quick{}, err
	}
	if pivot == PivotRandom && rnd == nil {
		return Quick{}, ErrNoRandom
	}
	return Quick{pivot: pivot, rnd: rnd}, nil
}

func (Quick) Name() string     { return "quick" }
func (Quick) Kind() trace.Kind { return trace.KindSwap }

func (q Quick) Sort(rec *trace.Recorder, y, left, right int) error {
	if left > right {
		return nil
	}
	p := q.partition(rec, y, q.pivotIndex(left, right), left, right)
	q.Sort(rec, y, left, p-1)
	q.Sort(rec, y, p+1, right)
	return nil
}

// pivotIndex picks the pivot for [left, right]. Random never returns right.
func (q Quick) pivotIndex(left, right int) int {
	switch q.pivot {
	case PivotStart:
		return left
	case PivotRandom:
		return left + int(math.Floor(q.rnd.Float64()*float64(right-left)))
	case PivotMiddle:
		// The midpoint branch has never been reachable: Middle partitions
		// around the last element, exactly like End.
		return right
	}
	return right
}

// partition moves everything less than the pivot value to the front of the
// range and returns the pivot's final index.
func (Quick) partition(rec *trace.Recorder, y, pivot, left, right int) int {
	row := rec.Row(y)
	store, value := left, row[pivot]

	rec.Swap(y, pivot, right)
	for v := left; v < right; v++ {
		if rec.Less(row[v], value) {
			rec.Swap(y, v, store)
			store++
		}
	}
	rec.Swap(y, right, store)

	return store
}

func (q Quick) String() string { return fmt.Sprintf("quick(pivot=%s)", q.pivot) }
