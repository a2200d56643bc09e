// Package viz renders a running mesh in the terminal.
//
// The package implements a live view using the Bubble Tea framework:
//
//   - [Model]: steps the simulation with real elapsed time and draws it
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reseed and restart
//	+/-   - Playback speed
//	E     - Toggle edges / points only
//	T     - Cycle color themes
//	Q     - Quit
package viz
