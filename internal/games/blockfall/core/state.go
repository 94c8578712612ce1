package core

import (
	"fmt"
	"time"
)

// LossReason says why a game ended.
type LossReason uint8

const (
	LossNone         LossReason = iota
	LossOverflow                // A locked block reached the top margin
	LossBlockedSpawn            // The new piece overlapped the heap
)

// String returns a human-readable loss reason.
func (r LossReason) String() string {
	switch r {
	case LossOverflow:
		return "overflow"
	case LossBlockedSpawn:
		return "blocked spawn"
	default:
		return "none"
	}
}

// LossHandler is called exactly once when the game is lost.
type LossHandler func(reason LossReason)

// StepReport summarizes one call to Step.
type StepReport struct {
	Tick     uint64
	Movement Movement
	Rotation RotationResult

	Locked       bool   // The active piece was committed to the grid
	LockedBlocks [4]Pos // Positions written on lock
	LockedShape  Shape

	Spawned bool  // A new active piece entered the field
	Spawn   Shape // Shape of the spawned piece

	Loss LossReason // Set only on the tick the game was lost
}

// Block is a renderable cell: either part of the heap or of the active piece.
type Block struct {
	Pos    Pos
	Color  Color
	Active bool
}

// Option customizes a new State.
type Option func(*State)

// WithGrid starts the game on a prepared grid instead of an empty one.
func WithGrid(g *Grid) Option {
	return func(s *State) {
		s.grid = g
	}
}

// WithLossHandler registers a callback fired when the game is lost.
func WithLossHandler(fn LossHandler) Option {
	return func(s *State) {
		s.onLoss = fn
	}
}

// State is the simulation of a single game. It is not safe for concurrent
// use; one goroutine owns it and drives it through Step.
type State struct {
	cfg  Config
	grid *Grid
	rand Randomizer

	piece  Piece
	active bool
	next   Shape

	gravityTimer  Timer
	lateralTimer  Timer
	softDropTimer Timer
	lockTimer     Timer

	tick   uint64
	locks  int
	loss   LossReason
	onLoss LossHandler
}

// NewState validates cfg and spawns the first piece. A blocked first spawn
// is reported as a loss, not an error.
func NewState(cfg Config, r Randomizer, opts ...Option) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("blockfall: invalid config: %w", err)
	}
	if cfg.Kicks == nil {
		cfg.Kicks = DefaultKicks()
	}
	if r == nil {
		return nil, fmt.Errorf("blockfall: randomizer is required")
	}

	s := &State{
		cfg:           cfg,
		rand:          r,
		gravityTimer:  NewTimer(cfg.Gravity),
		lateralTimer:  NewTimer(cfg.LateralRepeat),
		softDropTimer: NewTimer(cfg.SoftDropRepeat),
		lockTimer:     NewTimer(cfg.LockDelay),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.grid == nil {
		s.grid = NewGrid(cfg.Width, cfg.Height)
	} else if s.grid.W != cfg.Width || s.grid.H != cfg.Height {
		return nil, fmt.Errorf("blockfall: grid is %dx%d, config wants %dx%d",
			s.grid.W, s.grid.H, cfg.Width, cfg.Height)
	}

	s.next = s.rand.Next()
	s.spawn(nil)
	return s, nil
}

// Step advances the simulation by dt using the input snapshot for this tick.
// Once the game is lost Step does nothing.
func (s *State) Step(dt time.Duration, in Inputs) StepReport {
	if s.Lost() {
		return StepReport{Tick: s.tick}
	}
	s.tick++
	rep := StepReport{Tick: s.tick, Rotation: RotationResult{Kick: -1}}

	rep.Movement = s.resolveMovement(dt, in)
	if !rep.Movement.HardDrop {
		rep.Rotation = s.resolveRotation(in)
	}
	s.resolveLock(dt, rep.Movement.Moved() || rep.Rotation.Rotated, rep.Movement.HardDrop, &rep)

	s.checkInvariants()
	return rep
}

// resolveLock decides whether the active piece becomes part of the heap.
// reset is true when the piece moved or rotated this tick.
func (s *State) resolveLock(dt time.Duration, reset, hardDrop bool, rep *StepReport) {
	if !hardDrop {
		if !s.Grounded() {
			s.lockTimer.Reset()
			return
		}
		if s.lockTimer.Duration() > 0 {
			if reset {
				s.lockTimer.Reset()
				return
			}
			if !s.lockTimer.Tick(dt) {
				return
			}
		}
	}
	s.lockTimer.Reset()
	s.lock(rep)
}

func (s *State) lock(rep *StepReport) {
	color := s.piece.Color()
	for _, b := range s.piece.Blocks {
		s.grid.Occupy(b, color)
	}
	s.locks++
	s.active = false
	rep.Locked = true
	rep.LockedBlocks = s.piece.Blocks
	rep.LockedShape = s.piece.Shape

	if s.piece.MaxY() >= s.grid.H-s.cfg.LossMargin {
		s.lose(LossOverflow, rep)
		return
	}
	s.spawn(rep)
}

// spawn brings the pre-drawn next shape into play and draws a new one.
func (s *State) spawn(rep *StepReport) {
	shape := s.next
	s.next = s.rand.Next()
	s.piece = s.spawnPiece(shape)
	s.active = true
	s.gravityTimer.Reset()
	s.lockTimer.Reset()
	if rep != nil {
		rep.Spawned = true
		rep.Spawn = shape
	}
	if !CanMove(s.grid, s.piece.Blocks, 0, 0) {
		s.active = false
		s.lose(LossBlockedSpawn, rep)
	}
}

// spawnPiece centers the bounding box horizontally and puts the lowest
// occupied row of the shape on the spawn row.
func (s *State) spawnPiece(shape Shape) Piece {
	spec := Spec(shape)
	origin := P(
		(s.cfg.Width-spec.Size)/2,
		s.cfg.Height-s.cfg.SpawnRowFromTop-spec.LowestRow(),
	)
	return NewPiece(shape, origin)
}

func (s *State) lose(reason LossReason, rep *StepReport) {
	invariant(s.loss == LossNone, "game lost twice (%s after %s)", reason, s.loss)
	s.loss = reason
	if rep != nil {
		rep.Loss = reason
	}
	if s.onLoss != nil {
		s.onLoss(reason)
	}
}

func (s *State) checkInvariants() {
	if !s.active {
		return
	}
	s.piece.validate()
	for _, b := range s.piece.Blocks {
		invariant(s.grid.InBounds(b), "active block %v out of bounds", b)
		invariant(s.grid.Vacant(b), "active block %v overlaps the heap", b)
	}
}

// Grounded reports whether the active piece cannot descend one row.
func (s *State) Grounded() bool {
	return s.active && !CanMove(s.grid, s.piece.Blocks, 0, -1)
}

// Lost reports whether the game has ended.
func (s *State) Lost() bool {
	return s.loss != LossNone
}

// LossReason returns why the game ended, or LossNone.
func (s *State) LossReason() LossReason {
	return s.loss
}

// Active returns the active piece. The boolean is false after a loss.
func (s *State) Active() (Piece, bool) {
	return s.piece, s.active
}

// Next returns the shape that spawns after the active piece locks.
func (s *State) Next() Shape {
	return s.next
}

// Grid returns the heap. Callers must not modify it.
func (s *State) Grid() *Grid {
	return s.grid
}

// Config returns the rules the state runs with.
func (s *State) Config() Config {
	return s.cfg
}

// Tick returns the number of steps simulated.
func (s *State) Tick() uint64 {
	return s.tick
}

// LockedCount returns how many pieces have been committed to the heap.
func (s *State) LockedCount() int {
	return s.locks
}

// LockDelayRemaining returns the time left before a grounded piece locks.
func (s *State) LockDelayRemaining() time.Duration {
	return s.lockTimer.Remaining()
}

// Ghost returns where the active piece would land on a hard drop.
func (s *State) Ghost() (Piece, bool) {
	if !s.active {
		return Piece{}, false
	}
	g := s.piece
	for CanMove(s.grid, g.Blocks, 0, -1) {
		g = g.Translated(0, -1)
	}
	return g, true
}

// Blocks returns every block to draw: the heap in row order followed by the
// active piece.
func (s *State) Blocks() []Block {
	blocks := make([]Block, 0, s.grid.OccupiedCount()+len(s.piece.Blocks))
	s.grid.Each(func(p Pos, c Cell) {
		blocks = append(blocks, Block{Pos: p, Color: c.Color})
	})
	if s.active {
		color := s.piece.Color()
		for _, b := range s.piece.Blocks {
			blocks = append(blocks, Block{Pos: b, Color: color, Active: true})
		}
	}
	return blocks
}
