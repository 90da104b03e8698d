package sorts

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/random"
	"github.com/san-kum/sortviz/internal/trace"
)

// Strategy sorts the inclusive range [left, right] of one recorder row.
type Strategy interface {
	Name() string
	// Kind is the op variant the strategy records.
	Kind() trace.Kind
	Sort(rec *trace.Recorder, row, left, right int) error
}

// PivotPolicy selects the partition pivot of quick sort.
type PivotPolicy string

const (
	PivotStart  PivotPolicy = "Start"
	PivotMiddle PivotPolicy = "Middle"
	PivotEnd    PivotPolicy = "End"
	PivotRandom PivotPolicy = "Random"
)

// Pivots lists the accepted pivot policies in menu order.
var Pivots = []PivotPolicy{PivotStart, PivotMiddle, PivotEnd, PivotRandom}

func ParsePivot(s string) (PivotPolicy, error) {
	for _, p := range Pivots {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPivot, s)
}

// Params carries the algorithm-specific knobs of a session.
type Params struct {
	Pivot        PivotPolicy
	ShrinkFactor float64
	Base         int
	Random       random.Source
}

func DefaultParams() Params {
	return Params{
		Pivot:        PivotStart,
		ShrinkFactor: 1.3,
		Base:         10,
	}
}
