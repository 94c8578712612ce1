package core

import "time"

// CanMove reports whether all blocks translated by (dx, dy) land on vacant,
// in-bounds cells. CanMove(g, blocks, 0, 0) validates a position in place.
func CanMove(g *Grid, blocks [4]Pos, dx, dy int) bool {
	for _, b := range blocks {
		if !g.Vacant(b.Add(dx, dy)) {
			return false
		}
	}
	return true
}

// Movement describes what the movement resolver did on one tick.
type Movement struct {
	Lateral  Delta // Applied horizontal delta
	Vertical Delta // Applied vertical delta
	HardDrop bool  // Hard drop executed; the piece must lock this tick
	Dropped  int   // Rows descended by the hard drop
}

// Moved reports whether the piece changed position.
func (m Movement) Moved() bool {
	return !m.Lateral.IsNeutral() || !m.Vertical.IsNeutral() || m.Dropped > 0
}

// resolveMovement turns inputs and timers into a validated translation of
// the active piece.
func (s *State) resolveMovement(dt time.Duration, in Inputs) Movement {
	if in.Has(InputHardDropJustPressed) {
		n := 0
		for CanMove(s.grid, s.piece.Blocks, 0, -1) {
			s.piece = s.piece.Translated(0, -1)
			n++
		}
		return Movement{HardDrop: true, Dropped: n}
	}

	lateral := DeltaNeutral
	left, right := in.Has(InputLeftHeld), in.Has(InputRightHeld)
	switch {
	case left && !right:
		lateral = DeltaLeft
	case right && !left:
		lateral = DeltaRight
	}
	vertical := DeltaNeutral
	if in.Has(InputSoftDropHeld) {
		vertical = DeltaDown1
	}

	// Repeat timers run whether or not their key is held.
	if !s.lateralTimer.Tick(dt) {
		lateral = DeltaNeutral
	}
	if !s.softDropTimer.Tick(dt) {
		vertical = DeltaNeutral
	}
	if s.gravityTimer.Tick(dt) {
		vertical = vertical.Lower()
	}

	if !s.fits(lateral) {
		lateral = DeltaNeutral
	}
	s.apply(lateral)

	for !vertical.IsNeutral() && !s.fits(vertical) {
		vertical = vertical.Raise()
	}
	s.apply(vertical)

	return Movement{Lateral: lateral, Vertical: vertical}
}

func (s *State) fits(d Delta) bool {
	dx, dy := d.Offset()
	return CanMove(s.grid, s.piece.Blocks, dx, dy)
}

func (s *State) apply(d Delta) {
	if d.IsNeutral() {
		return
	}
	s.piece = s.piece.Translated(d.Offset())
}
