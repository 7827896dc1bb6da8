// Package viz renders unitlab output for the terminal.
//
// It holds the lipgloss styles shared by the CLI, an asciigraph plot of
// floating-point round-trip error between two units, and an interactive
// Bubble Tea converter:
//
//   - [Table]: aligned, styled columns for unit and plan listings
//   - [PlotRoundTrip]: round-trip error in ulps across a value range
//   - [RunInteractive]: pick a source unit, a target unit, type a value
//
// # Key Bindings
//
//	j/k   - move
//	enter - select
//	esc   - back
//	q     - quit
package viz
