package trace

// Trace is the ordered list of ops recorded for one row.
type Trace []Op

// Replay applies every op in chronological order to row.
func (t Trace) Replay(row []float64) {
	for _, op := range t {
		op.Apply(row)
	}
}

// Reversed returns a copy with the last recorded op first.
func (t Trace) Reversed() Trace {
	r := make(Trace, len(t))
	for i, op := range t {
		r[len(t)-1-i] = op
	}
	return r
}

// Counts returns how many swaps and writes the trace holds.
func (t Trace) Counts() (swaps, writes int) {
	for _, op := range t {
		if op.Kind == KindWrite {
			writes++
		} else {
			swaps++
		}
	}
	return swaps, writes
}
