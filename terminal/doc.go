// Package terminal is the tcell-backed host for the simulation.
//
// It translates key events into logical input actions, presents the world
// as glyphs on a character grid, and owns the present mode (frame pacing)
// that the simulation may toggle. Nothing here mutates simulation state.
package terminal
