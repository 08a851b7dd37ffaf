// Package terminal is the cell-level terminal collaborator of the game.
//
// Features:
//   - Single-cell glyph writes addressed by (row, col)
//   - Key reads with a millisecond timeout or blocking, cancellable by context
//   - Resize wake-ups, the caller polls Size to decide what changed
//   - tcell backend; tcell.SimulationScreen drives it in tests
package terminal
