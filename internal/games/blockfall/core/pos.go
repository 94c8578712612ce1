// Package core provides the simulation core of the Blockfall puzzle game:
// the occupancy grid, the active piece, and the per-tick movement, rotation
// and lock/spawn resolution. The package is UI-agnostic and deterministic
// for a given seed and input sequence.
package core

import "fmt"

// Pos is a cell coordinate on the playfield.
// X increases to the right, Y increases upward; row 0 is the floor.
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new Pos offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// AddPos returns the componentwise sum of two positions.
func (p Pos) AddPos(other Pos) Pos {
	return Pos{X: p.X + other.X, Y: p.Y + other.Y}
}
