package trace

// PaintFunc receives every cell changed during replay.
type PaintFunc func(row, col int, value float64, rowWidth int)

// Engine replays finished traces over the pristine rows.
type Engine struct {
	rows     [][]float64
	pending  []Trace
	total    int
	tick     int
	finished bool
}

// Rows returns the buffers being replayed.
func (e *Engine) Rows() [][]float64 { return e.rows }

// TotalFrames is the longest trace, i.e. the number of ticks that carry ops.
func (e *Engine) TotalFrames() int { return e.total }

// Tick is the number of Step calls made so far.
func (e *Engine) Tick() int { return e.tick }

func (e *Engine) Finished() bool { return e.finished }

// Pending returns the total number of ops not yet replayed.
func (e *Engine) Pending() int {
	n := 0
	for _, t := range e.pending {
		n += len(t)
	}
	return n
}

// Step pops one op from every row that still has one, applies it and
// paints the changed cells. It reports done on the first tick where no row
// had anything left; later calls return ErrReplayFinished.
func (e *Engine) Step(paint PaintFunc) (bool, error) {
	if e.finished {
		return true, ErrReplayFinished
	}
	e.tick++

	applied := false
	for y, stack := range e.pending {
		if len(stack) == 0 {
			continue
		}
		applied = true

		op := stack[len(stack)-1]
		e.pending[y] = stack[:len(stack)-1]

		row := e.rows[y]
		for _, col := range op.Apply(row) {
			if paint != nil {
				paint(y, col, row[col], len(row))
			}
		}
	}

	if !applied {
		e.finished = true
		return true, nil
	}
	return false, nil
}
