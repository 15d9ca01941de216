// Package viz renders the bouncing-body world in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live view driving the engine one frame per tick
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - Theme selection with built-in color schemes
//
// One canvas sub-pixel corresponds to one world unit, so terminal
// resizes translate directly into viewport resizes and mouse motion
// into pointer positions.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset (respawn bodies)
//	C     - Clear the repulsion pointer
//	T     - Cycle color themes
//	Q     - Quit
//	?     - Show help overlay
package viz
