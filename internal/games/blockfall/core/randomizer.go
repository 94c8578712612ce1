package core

import "math/rand"

// Randomizer supplies the sequence of shapes to spawn.
type Randomizer interface {
	Next() Shape
}

// UniformRandomizer draws every shape independently with equal probability.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer creates a uniform generator from a seed.
func NewUniformRandomizer(seed int64) *UniformRandomizer {
	return &UniformRandomizer{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly random shape.
func (r *UniformRandomizer) Next() Shape {
	return Shape(r.rng.Intn(ShapeCount))
}

// BagRandomizer deals all seven shapes in shuffled order before refilling.
type BagRandomizer struct {
	rng *rand.Rand
	bag []Shape
}

// NewBagRandomizer creates a seven-bag generator from a seed.
func NewBagRandomizer(seed int64) *BagRandomizer {
	return &BagRandomizer{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next shape from the current bag.
func (r *BagRandomizer) Next() Shape {
	if len(r.bag) == 0 {
		r.bag = Shapes()
		r.rng.Shuffle(len(r.bag), func(i, j int) {
			r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
		})
	}
	s := r.bag[0]
	r.bag = r.bag[1:]
	return s
}

// SequenceRandomizer replays a fixed list of shapes in a loop.
type SequenceRandomizer struct {
	shapes []Shape
	i      int
}

// NewSequenceRandomizer creates a generator cycling through shapes.
func NewSequenceRandomizer(shapes ...Shape) *SequenceRandomizer {
	invariant(len(shapes) > 0, "sequence randomizer needs at least one shape")
	return &SequenceRandomizer{shapes: shapes}
}

// Next returns the next shape of the sequence.
func (r *SequenceRandomizer) Next() Shape {
	s := r.shapes[r.i%len(r.shapes)]
	r.i++
	return s
}

// NewRandomizer builds the generator named by kind.
func NewRandomizer(kind RandomizerKind, seed int64) Randomizer {
	if kind == RandomizerBag {
		return NewBagRandomizer(seed)
	}
	return NewUniformRandomizer(seed)
}
