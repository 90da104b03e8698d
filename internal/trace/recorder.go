package trace

// Recorder is the working state of a sort pass. Strategies mutate rows
// exclusively through Swap and Write so that every change lands in the
// row's trace.
type Recorder struct {
	rows     [][]float64
	pristine [][]float64
	traces   []Trace
}

// NewRecorder takes ownership of rows as the working buffers and keeps an
// independent pristine copy of each.
func NewRecorder(rows [][]float64) *Recorder {
	r := &Recorder{
		rows:     rows,
		pristine: make([][]float64, len(rows)),
		traces:   make([]Trace, len(rows)),
	}
	for y, row := range rows {
		r.pristine[y] = cloneRow(row)
	}
	return r
}

func (r *Recorder) Rows() int { return len(r.rows) }

// Row returns the working buffer of row y. Callers must not write to it.
func (r *Recorder) Row(y int) []float64 { return r.rows[y] }

// Pristine returns the untouched pre-sort copy of row y.
func (r *Recorder) Pristine(y int) []float64 { return r.pristine[y] }

func (r *Recorder) Trace(y int) Trace { return r.traces[y] }

// Less is the strict comparator shared by every strategy.
func (r *Recorder) Less(x, y float64) bool { return x < y }

// Swap exchanges cells i and j of row y and records it.
func (r *Recorder) Swap(y, i, j int) {
	row := r.rows[y]
	row[i], row[j] = row[j], row[i]
	r.traces[y] = append(r.traces[y], Swap(i, j))
}

// Write overwrites row y starting at pos and records it.
func (r *Recorder) Write(y, pos int, values ...float64) {
	op := Write(pos, values...)
	copy(r.rows[y][pos:], op.Values)
	r.traces[y] = append(r.traces[y], op)
}

// Finish ends the sort pass. Each trace is reversed into a stack whose tail
// is the first recorded op, and replay switches to the pristine rows.
func (r *Recorder) Finish() *Engine {
	e := &Engine{
		rows:    r.pristine,
		pending: make([]Trace, len(r.traces)),
	}
	for y, t := range r.traces {
		e.pending[y] = t.Reversed()
		if len(t) > e.total {
			e.total = len(t)
		}
	}
	return e
}

func cloneRow(row []float64) []float64 {
	c := make([]float64, len(row))
	copy(c, row)
	return c
}
