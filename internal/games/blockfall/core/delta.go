package core

// Delta is a proposed single-axis movement for one tick.
type Delta uint8

const (
	DeltaNeutral Delta = iota
	DeltaLeft
	DeltaRight
	DeltaDown1
	DeltaDown2
)

// String returns a human-readable delta name.
func (d Delta) String() string {
	switch d {
	case DeltaNeutral:
		return "Neutral"
	case DeltaLeft:
		return "Left"
	case DeltaRight:
		return "Right"
	case DeltaDown1:
		return "Down1"
	case DeltaDown2:
		return "Down2"
	default:
		return "Unknown"
	}
}

// Offset returns the (dx, dy) cell offset of the delta.
func (d Delta) Offset() (dx, dy int) {
	switch d {
	case DeltaLeft:
		return -1, 0
	case DeltaRight:
		return 1, 0
	case DeltaDown1:
		return 0, -1
	case DeltaDown2:
		return 0, -2
	default:
		return 0, 0
	}
}

// Lower returns the delta escalated by one more cell of descent.
// Soft drop and gravity firing on the same tick sum to Down2.
func (d Delta) Lower() Delta {
	switch d {
	case DeltaNeutral:
		return DeltaDown1
	case DeltaDown1:
		return DeltaDown2
	default:
		return d
	}
}

// Raise returns the delta stepped back by one cell of descent.
func (d Delta) Raise() Delta {
	switch d {
	case DeltaDown2:
		return DeltaDown1
	case DeltaDown1:
		return DeltaNeutral
	default:
		return d
	}
}

// IsNeutral reports whether the delta moves nothing.
func (d Delta) IsNeutral() bool {
	return d == DeltaNeutral
}
