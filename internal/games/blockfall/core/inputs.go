package core

// Input is a single named action flag.
type Input uint16

const (
	InputLeftHeld Input = 1 << iota
	InputRightHeld
	InputSoftDropHeld
	InputHardDropHeld
	InputHardDropJustPressed
	InputRotateCWHeld
	InputRotateCWJustPressed
	InputRotateCCWHeld
	InputRotateCCWJustPressed
)

// Inputs is the per-tick action snapshot consumed by the resolvers.
// It is decoupled from any concrete key binding.
type Inputs uint16

// Has reports whether the action flag is set.
func (in Inputs) Has(i Input) bool {
	return uint16(in)&uint16(i) != 0
}

// With returns a copy with the action flag set.
func (in Inputs) With(i Input) Inputs {
	return in | Inputs(i)
}

// Without returns a copy with the action flag cleared.
func (in Inputs) Without(i Input) Inputs {
	return in &^ Inputs(i)
}

// Set sets or clears the action flag in place.
func (in *Inputs) Set(i Input, on bool) {
	if on {
		*in = in.With(i)
	} else {
		*in = in.Without(i)
	}
}

// latched pairs each held flag with the just-pressed flag derived from it.
var latched = [...]struct {
	held, pressed Input
}{
	{InputHardDropHeld, InputHardDropJustPressed},
	{InputRotateCWHeld, InputRotateCWJustPressed},
	{InputRotateCCWHeld, InputRotateCCWJustPressed},
}

// Latch derives just-pressed flags from consecutive held snapshots: an action
// is just pressed on the first tick it is held.
type Latch struct {
	prev Inputs
}

// Update takes the held flags for this tick and returns them with the
// just-pressed flags filled in. Just-pressed bits present in held are
// recomputed, not trusted.
func (l *Latch) Update(held Inputs) Inputs {
	out := held
	for _, pair := range latched {
		now := held.Has(pair.held)
		out.Set(pair.pressed, now && !l.prev.Has(pair.held))
	}
	l.prev = held
	return out
}

// Reset forgets the previous snapshot.
func (l *Latch) Reset() {
	l.prev = 0
}
