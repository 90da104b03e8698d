// Package viz draws sorting sessions.
//
// [Surface] is the pixel grid a session paints into: every cell is a
// zoom×zoom block coloured by its value through [Viridis]. The same surface
// renders to the terminal with half-block characters, two rows per line.
//
// [Model] is the Bubble Tea program that drives a session one frame per
// tick.
//
// # Key Bindings
//
//	Space - Start/stop sorting
//	S     - Shuffle
//	a/A   - Next/previous algorithm
//	P     - Cycle pivot policy
//	+/-   - Faster/slower replay
//	T     - Cycle color themes
//	F     - Save filmstrip PNG and capture GIF
//	?     - Show help overlay
package viz
