// Package viz plays chart animations in the terminal.
//
// [Player] is a Bubble Tea model that shows one frame of a
// [chart.Animation] per tick through the asciigraph renderer, and can
// switch to a braille phase-plane view of the first two series.
//
// # Key Bindings
//
//	Space       - Pause/Resume playback
//	Left/Right  - Step one frame (pauses)
//	Home/End    - Jump to the first/last frame
//	R           - Restart from the first frame
//	P           - Toggle the phase-plane view
//	T           - Cycle color themes
//	?           - Show help
//	Q           - Quit
package viz
