package core_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

func TestNewStateRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 2
	cfg.Gravity = 0
	_, err := core.NewState(cfg, core.NewUniformRandomizer(1))
	require.Error(t, err)
	assert.ErrorContains(t, err, "width")
	assert.ErrorContains(t, err, "gravity")

	_, err = core.NewState(testConfig(), core.NewUniformRandomizer(1), core.WithGrid(core.NewGrid(8, 8)))
	assert.ErrorContains(t, err, "grid is 8x8")
}

func TestSpawnPlacement(t *testing.T) {
	cfg := testConfig()
	for _, shape := range core.Shapes() {
		t.Run(shape.String(), func(t *testing.T) {
			s := newState(t, cfg, []core.Shape{shape})
			p, ok := s.Active()
			require.True(t, ok)
			assert.Equal(t, cfg.Height-cfg.SpawnRowFromTop, p.MinY())

			spec := core.Spec(shape)
			minX := cfg.Width
			for _, b := range p.Blocks {
				minX = min(minX, b.X)
			}
			boxMinX := spec.Size
			for _, c := range spec.Cells {
				boxMinX = min(boxMinX, c.X)
			}
			assert.Equal(t, (cfg.Width-spec.Size)/2+boxMinX, minX)
		})
	}
}

func TestNextPreview(t *testing.T) {
	s := newState(t, testConfig(), []core.Shape{core.ShapeS, core.ShapeZ, core.ShapeL})
	p, _ := s.Active()
	assert.Equal(t, core.ShapeS, p.Shape)
	assert.Equal(t, core.ShapeZ, s.Next())

	rep := s.Step(dt, held(core.InputHardDropJustPressed))
	assert.Equal(t, core.ShapeZ, rep.Spawn)
	assert.Equal(t, core.ShapeL, s.Next())
}

// landAndLock runs an O piece down under gravity and returns the tick it
// became grounded and the tick it locked.
func landAndLock(t *testing.T, s *core.State, nudgeAfter int) (landed, locked uint64) {
	t.Helper()
	for i := 0; i < 200; i++ {
		var in core.Inputs
		if landed > 0 && nudgeAfter > 0 && s.Tick() == landed+uint64(nudgeAfter)-1 {
			in = held(core.InputLeftHeld)
		}
		rep := s.Step(dt, in)
		if rep.Locked {
			return landed, rep.Tick
		}
		if landed == 0 && s.Grounded() {
			landed = rep.Tick
		}
	}
	t.Fatal("piece never locked")
	return 0, 0
}

func TestLockDelayExact(t *testing.T) {
	cfg := testConfig()
	cfg.Gravity = dt
	cfg.LateralRepeat = time.Hour
	cfg.LockDelay = 5 * dt
	s := newState(t, cfg, []core.Shape{core.ShapeO})

	landed, locked := landAndLock(t, s, 0)
	assert.Equal(t, uint64(20), landed)
	assert.Equal(t, landed+5, locked, "locks after exactly the lock delay")
}

func TestLockDelayResetByMove(t *testing.T) {
	cfg := testConfig()
	cfg.Gravity = dt
	cfg.LockDelay = 5 * dt
	s := newState(t, cfg, []core.Shape{core.ShapeO})

	landed, locked := landAndLock(t, s, 3)
	assert.Equal(t, uint64(20), landed)
	// The move on tick landed+3 resets the timer without ticking it, so the
	// five counted ticks are landed+4 through landed+8.
	assert.Equal(t, landed+3+5, locked, "a move while grounded restarts the countdown")
}

func TestLockDelayResetByRotation(t *testing.T) {
	cfg := testConfig()
	cfg.Gravity = dt
	cfg.LockDelay = 5 * dt
	s := newState(t, cfg, []core.Shape{core.ShapeO})

	stepN(s, 20, 0)
	require.True(t, s.Grounded())
	stepN(s, 4, 0)
	rep := s.Step(dt, held(core.InputRotateCWJustPressed))
	require.True(t, rep.Rotation.Rotated)
	require.False(t, rep.Locked)

	rep = stepN(s, 4, 0)
	assert.False(t, rep.Locked)
	rep = s.Step(dt, 0)
	assert.True(t, rep.Locked)
}

func TestZeroLockDelayLocksOnContact(t *testing.T) {
	cfg := testConfig()
	cfg.Gravity = dt
	cfg.LockDelay = 0
	s := newState(t, cfg, []core.Shape{core.ShapeO})

	for i := 1; i < 20; i++ {
		require.False(t, s.Step(dt, 0).Locked, "tick %d", i)
	}
	rep := s.Step(dt, 0)
	assert.True(t, rep.Locked)
	assert.Equal(t, [4]core.Pos{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 1}}, rep.LockedBlocks)
}

func TestHardDropDeterminism(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(7))
	heap := core.NewGrid(cfg.Width, cfg.Height)
	for y := 0; y < 15; y++ {
		for x := 0; x < cfg.Width; x++ {
			if rng.Intn(10) < 3 {
				heap.Occupy(core.P(x, y), core.ColorRed)
			}
		}
	}

	for _, shape := range core.Shapes() {
		t.Run(shape.String(), func(t *testing.T) {
			immediate := newState(t, cfg, []core.Shape{shape}, core.WithGrid(heap.Clone()))
			delayed := newState(t, cfg, []core.Shape{shape}, core.WithGrid(heap.Clone()))
			start := activeBlocks(t, immediate)

			drop := start[0].Y + 1
			for _, b := range start {
				top := -1
				for y := b.Y - 1; y >= 0; y-- {
					if !heap.Vacant(core.P(b.X, y)) {
						top = y
						break
					}
				}
				drop = min(drop, b.Y-top-1)
			}
			var expected [4]core.Pos
			for i, b := range start {
				expected[i] = b.Add(0, -drop)
			}

			a := immediate.Step(dt, held(core.InputHardDropJustPressed))
			stepN(delayed, 7, 0)
			b := delayed.Step(dt, held(core.InputHardDropJustPressed))

			assert.Equal(t, expected, a.LockedBlocks)
			assert.Equal(t, a.LockedBlocks, b.LockedBlocks)
			assert.True(t, immediate.Grid().Equal(delayed.Grid()))
		})
	}
}

func TestBlockedSpawnAtStart(t *testing.T) {
	cfg := testConfig()
	g := core.NewGrid(cfg.Width, cfg.Height)
	for x := 0; x < cfg.Width; x++ {
		fill(g, x, cfg.Height-cfg.SpawnRowFromTop)
	}
	snapshot := g.Clone()

	var losses []core.LossReason
	s := newState(t, cfg, []core.Shape{core.ShapeT}, core.WithGrid(g), core.WithLossHandler(func(r core.LossReason) {
		losses = append(losses, r)
	}))

	assert.True(t, s.Lost())
	assert.Equal(t, core.LossBlockedSpawn, s.LossReason())
	_, ok := s.Active()
	assert.False(t, ok)

	for _, in := range []core.Inputs{
		held(core.InputHardDropJustPressed),
		held(core.InputLeftHeld, core.InputSoftDropHeld),
		held(core.InputRotateCWJustPressed),
	} {
		rep := s.Step(dt, in)
		assert.False(t, rep.Locked)
		assert.Equal(t, core.LossNone, rep.Loss)
	}
	assert.Equal(t, []core.LossReason{core.LossBlockedSpawn}, losses)
	assert.True(t, snapshot.Equal(s.Grid()), "grid untouched after loss")
	assert.Empty(t, filterActive(s.Blocks()))
}

func TestBlockedSpawnAfterLock(t *testing.T) {
	cfg := testConfig()
	cfg.SpawnRowFromTop = 4
	cfg.LossMargin = 0
	g := core.NewGrid(cfg.Width, cfg.Height)
	fill(g, 4, rows(0, 17)...)
	fill(g, 5, rows(0, 17)...)

	var losses int
	s := newState(t, cfg, []core.Shape{core.ShapeO}, core.WithGrid(g), core.WithLossHandler(func(core.LossReason) {
		losses++
	}))
	require.False(t, s.Lost())

	rep := s.Step(dt, held(core.InputHardDropJustPressed))
	assert.True(t, rep.Locked)
	assert.Equal(t, 0, rep.Movement.Dropped)
	assert.True(t, rep.Spawned)
	assert.Equal(t, core.LossBlockedSpawn, rep.Loss)
	assert.Equal(t, 1, losses)

	after := s.Grid().Clone()
	rep = s.Step(dt, held(core.InputHardDropJustPressed))
	assert.Equal(t, core.LossNone, rep.Loss)
	assert.Equal(t, 1, losses)
	assert.True(t, after.Equal(s.Grid()))
}

func TestOverflowLoss(t *testing.T) {
	cfg := testConfig()
	g := core.NewGrid(cfg.Width, cfg.Height)
	fill(g, 4, rows(0, 17)...)
	fill(g, 5, rows(0, 17)...)
	var losses []core.LossReason
	s := newState(t, cfg, []core.Shape{core.ShapeO}, core.WithGrid(g), core.WithLossHandler(func(r core.LossReason) {
		losses = append(losses, r)
	}))

	rep := s.Step(dt, held(core.InputHardDropJustPressed))
	require.Equal(t, core.LossNone, rep.Loss)
	require.Equal(t, 19, rep.LockedBlocks[3].Y)

	rep = s.Step(dt, held(core.InputHardDropJustPressed))
	assert.True(t, rep.Locked)
	assert.False(t, rep.Spawned)
	assert.Equal(t, core.LossOverflow, rep.Loss)
	assert.Equal(t, []core.LossReason{core.LossOverflow}, losses)
	assert.Equal(t, 2, s.LockedCount())

	tick := s.Tick()
	s.Step(dt, held(core.InputHardDropJustPressed))
	assert.Equal(t, tick, s.Tick(), "no steps after loss")
}

func TestBlocks(t *testing.T) {
	s := newState(t, testConfig(), []core.Shape{core.ShapeI, core.ShapeT})
	s.Step(dt, held(core.InputHardDropJustPressed))

	blocks := s.Blocks()
	require.Len(t, blocks, 8)
	for _, b := range blocks[:4] {
		assert.False(t, b.Active)
		assert.Equal(t, core.ColorCyan, b.Color)
	}
	for _, b := range blocks[4:] {
		assert.True(t, b.Active)
		assert.Equal(t, core.ColorMagenta, b.Color)
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	cfg := testConfig()
	cfg.Gravity = 30 * time.Millisecond
	cfg.LateralRepeat = 20 * time.Millisecond
	cfg.SoftDropRepeat = 20 * time.Millisecond
	cfg.LockDelay = 50 * time.Millisecond
	cfg.Randomizer = core.RandomizerBag

	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s, err := core.NewState(cfg, core.NewRandomizer(cfg.Randomizer, seed))
		require.NoError(t, err)

		var latch core.Latch
		for i := 0; i < 5000 && !s.Lost(); i++ {
			in := latch.Update(core.Inputs(rng.Intn(1 << 9)))
			step := time.Duration(1+rng.Intn(40)) * time.Millisecond
			require.NotPanics(t, func() { s.Step(step, in) })

			p, ok := s.Active()
			if !ok {
				continue
			}
			for _, b := range p.Blocks {
				require.True(t, s.Grid().InBounds(b), "seed %d tick %d: %v out of bounds", seed, i, b)
				require.True(t, s.Grid().Vacant(b), "seed %d tick %d: %v overlaps", seed, i, b)
			}
		}
		assert.LessOrEqual(t, s.Grid().OccupiedCount(), 4*s.LockedCount(), "seed %d", seed)
	}
}

func filterActive(blocks []core.Block) []core.Block {
	var out []core.Block
	for _, b := range blocks {
		if b.Active {
			out = append(out, b)
		}
	}
	return out
}
