// Package viz provides the terminal front end for stepping through a binary
// search.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: the Bubble Tea model wrapping a [session.Session]
//   - [ClassOf] and [Pointers]: pure helpers deciding how a cell is drawn
//   - [TraceToSVG]: static storyboard of a whole trace
//   - Theme selection with 5 built-in color schemes
//
// The model only translates key presses into session calls; all search
// state lives in the session.
//
// # Key Bindings
//
//	→ / l / Space - Next step
//	← / h         - Previous step
//	R             - Back to the first step
//	Home / End    - First / last step
//	Tab / S-Tab   - Move the selection caret
//	Enter         - Search for the value under the caret
//	/             - Type a target value
//	T             - Cycle color themes
//	?             - Show all bindings
package viz
