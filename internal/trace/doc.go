// Package trace records the mutations a sorting algorithm makes to its rows
// and replays them one tick at a time.
//
// The package defines the recording and replay primitives:
//
//   - [Op]: a single Swap or Write mutation
//   - [Trace]: the chronological ops of one row
//   - [Recorder]: working rows plus their pristine copies and traces
//   - [Engine]: tick-based replay over the pristine rows
//
// # Example
//
//	rec := trace.NewRecorder(rows)
//	strategy.Sort(rec, 0, 0, len(rows[0])-1)
//	eng := rec.Finish()
//	for done := false; !done; {
//		done, _ = eng.Step(paint)
//	}
//
// # Thread Safety
//
// Recorder and Engine are NOT thread-safe. A session drives both from a
// single goroutine.
package trace
