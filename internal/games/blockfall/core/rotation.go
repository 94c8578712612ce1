package core

// RotationResult describes what the rotation resolver did on one tick.
type RotationResult struct {
	Requested Rotation // RotateNone when no rotation was attempted
	Rotated   bool     // The piece now sits in the new orientation
	Kick      int      // Index of the kick that succeeded, -1 when none was needed
	Reverted  bool     // Every candidate was blocked and the piece was restored
}

// resolveRotation turns the piece a quarter around its pivot, falling back
// to the kick sequence when the plain rotation collides.
func (s *State) resolveRotation(in Inputs) RotationResult {
	res := RotationResult{Kick: -1}
	cw, ccw := in.Has(InputRotateCWJustPressed), in.Has(InputRotateCCWJustPressed)
	switch {
	case cw && !ccw:
		res.Requested = RotateCW
	case ccw && !cw:
		res.Requested = RotateCCW
	default:
		return res
	}

	snapshot := s.piece
	candidate := snapshot.Rotated(res.Requested)
	if !CanMove(s.grid, candidate.Blocks, 0, 0) {
		res.Kick = s.kick(&candidate)
		if res.Kick < 0 {
			s.piece = snapshot
			res.Reverted = true
			return res
		}
	}
	s.piece = candidate
	res.Rotated = true
	return res
}

// kick walks the kick steps cumulatively and returns the index of the first
// legal placement, or -1 if none fits. candidate holds the winning placement
// on success.
func (s *State) kick(candidate *Piece) int {
	p := *candidate
	for i, step := range s.cfg.Kicks {
		p = p.Translated(step.X, step.Y)
		if CanMove(s.grid, p.Blocks, 0, 0) {
			*candidate = p
			return i
		}
	}
	return -1
}
