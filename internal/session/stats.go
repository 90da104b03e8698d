package session

import (
	"time"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/trace"
)

// Stats summarises one sort pass and its replay.
type Stats struct {
	Algorithm   string        `json:"algorithm"`
	Kind        string        `json:"kind"`
	Rows        int           `json:"rows"`
	Width       int           `json:"width"`
	TotalFrames int           `json:"total_frames"`
	Swaps       int           `json:"swaps"`
	Writes      int           `json:"writes"`
	RowOps      []int         `json:"row_ops"`
	Ticks       int           `json:"ticks"`
	Captures    int           `json:"captures"`
	Completed   bool          `json:"completed"`
	Elapsed     time.Duration `json:"elapsed"`
}

func newStats(strategy sorts.Strategy, cfg config.Config, rec *trace.Recorder) Stats {
	st := Stats{
		Algorithm: strategy.Name(),
		Kind:      strategy.Kind().String(),
		Rows:      rec.Rows(),
		Width:     cfg.Width,
		RowOps:    make([]int, rec.Rows()),
	}
	for y := range st.RowOps {
		t := rec.Trace(y)
		st.RowOps[y] = len(t)
		st.TotalFrames = max(st.TotalFrames, len(t))
		swaps, writes := t.Counts()
		st.Swaps += swaps
		st.Writes += writes
	}
	return st
}

// Ops is the total number of recorded operations over all rows.
func (st Stats) Ops() int { return st.Swaps + st.Writes }

// MeanOps is the average trace length per row.
func (st Stats) MeanOps() float64 {
	if st.Rows == 0 {
		return 0
	}
	return float64(st.Ops()) / float64(st.Rows)
}
