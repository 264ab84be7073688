// Package viz is the terminal front end: a Bubble Tea program that paints
// the character rain across the whole screen and floats the boot log, the
// quiz and the result panel on top of it.
//
//   - [App]: boot screen, quiz and result, driven by key presses
//   - [Grid]: character canvas that fades, implementing rain.Surface
//   - [Theme]: five built-in color schemes, cycled with T
//
// # Key Bindings
//
//	Enter/Space - Start (once booted), select, next
//	1-9         - Answer with option n
//	J/K         - Move the option cursor
//	N           - Next question (after answering)
//	R           - Restart from the result screen
//	T           - Cycle color themes
//	Q           - Quit
package viz
