package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

// dt is the frame delta used throughout; repeat timers in testConfig fire
// on every tick at this rate.
const dt = 10 * time.Millisecond

// testConfig returns a 10x22 field where gravity and lock delay never fire
// unless a test shortens them.
func testConfig() core.Config {
	cfg := core.DefaultConfig()
	cfg.Gravity = time.Hour
	cfg.LateralRepeat = dt
	cfg.SoftDropRepeat = dt
	cfg.LockDelay = time.Hour
	return cfg
}

func newState(t *testing.T, cfg core.Config, shapes []core.Shape, opts ...core.Option) *core.State {
	t.Helper()
	s, err := core.NewState(cfg, core.NewSequenceRandomizer(shapes...), opts...)
	require.NoError(t, err)
	return s
}

func activeBlocks(t *testing.T, s *core.State) [4]core.Pos {
	t.Helper()
	p, ok := s.Active()
	require.True(t, ok, "expected an active piece")
	return p.Blocks
}

func fill(g *core.Grid, x int, ys ...int) {
	for _, y := range ys {
		g.Occupy(core.P(x, y), core.ColorBlue)
	}
}

func rows(from, to int) []int {
	var out []int
	for y := from; y <= to; y++ {
		out = append(out, y)
	}
	return out
}

func stepN(s *core.State, n int, in core.Inputs) core.StepReport {
	var rep core.StepReport
	for range n {
		rep = s.Step(dt, in)
	}
	return rep
}

func held(inputs ...core.Input) core.Inputs {
	var in core.Inputs
	for _, i := range inputs {
		in = in.With(i)
	}
	return in
}
