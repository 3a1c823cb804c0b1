// Package puzzle implements the game state of an 8×8 block-filling puzzle:
// pieces are dealt in batches, placed on the board, and every row or column
// they complete is cleared for points. The game ends when no held piece fits.
//
// Renderers drive an Engine with Start, Place and Reset and read back a
// Snapshot after each command. Preview and CanPlace are pure queries meant
// for drag feedback; only Place mutates the session.
package puzzle
