// Package blockfall implements the falling-block puzzle on top of the
// simulation in the core subpackage. It owns variant selection, config
// loading, pause handling and drawing; the rules live in core.
package blockfall

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	bfcore "github.com/vovakirdan/blockfall/internal/games/blockfall/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Variant IDs.
const (
	GameID        = "blockfall"
	InstantGameID = "blockfall_instant"
)

// configPath stores the custom config path set via CLI
var configPath string

// logger receives debug records for every game; discarded unless the CLI
// installs one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger installs the logger used by games created afterwards.
// A nil logger discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(GameID, func() registry.Game { return New() })
	registry.Register(InstantGameID, func() registry.Game { return NewInstant() })
}

// Game adapts a bfcore.State to the registry.Game interface.
type Game struct {
	preset   config.Preset
	settings config.BlockfallConfig
	fixed    bool // settings were supplied by the caller; skip file lookup

	runtime core.RuntimeConfig
	state   *bfcore.State
	latch   bfcore.Latch
	dt      time.Duration
	paused  bool

	runID uuid.UUID
	log   *log.Logger

	layout layout
}

// New creates a game with the standard lock delay.
func New() *Game {
	return &Game{preset: config.PresetStandard}
}

// NewInstant creates a game where pieces lock on contact.
func NewInstant() *Game {
	return &Game{preset: config.PresetInstant}
}

// NewWithConfig creates a standard game with explicit settings instead of
// the config file search path.
func NewWithConfig(cfg config.BlockfallConfig) *Game {
	return &Game{preset: config.PresetStandard, settings: cfg, fixed: true}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	if g.preset == config.PresetInstant {
		return InstantGameID
	}
	return GameID
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	if g.preset == config.PresetInstant {
		return "Blockfall (Instant Lock)"
	}
	return "Blockfall"
}

// Reset starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.runID = uuid.New()
	g.log = logger.With("run", g.runID.String(), "variant", g.ID())

	if !g.fixed {
		cfg, err := config.LoadBlockfall(configPath)
		if err != nil {
			g.log.Warn("falling back to default config", "err", err)
		}
		g.settings = cfg
	}
	settings := g.settings
	config.ApplyPreset(&settings, g.preset)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = time.Second / time.Duration(tickRate)
	g.paused = false
	g.latch.Reset()

	rules := settings.ToCore()
	state, err := g.newState(rules, runtime.Seed)
	if err != nil {
		g.log.Error("invalid rules, using defaults", "err", err)
		rules = bfcore.DefaultConfig()
		state, err = g.newState(rules, runtime.Seed)
		if err != nil {
			panic(err)
		}
	}
	g.state = state
	g.layout = newLayout(rules, runtime.ScreenW, runtime.ScreenH)

	p, _ := g.state.Active()
	g.log.Debug("game started", "seed", runtime.Seed, "width", rules.Width, "height", rules.Height,
		"lock_delay", rules.LockDelay, "first", p.Shape, "next", g.state.Next())
}

func (g *Game) newState(rules bfcore.Config, seed int64) (*bfcore.State, error) {
	return bfcore.NewState(rules, bfcore.NewRandomizer(rules.Randomizer, seed),
		bfcore.WithLossHandler(g.onLoss))
}

// onLoss runs inside NewState for a blocked first spawn, so it must not
// touch g.state.
func (g *Game) onLoss(reason bfcore.LossReason) {
	g.log.Info("game over", "reason", reason.String())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.Lost() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.latch.Reset()
	}

	if g.paused || g.layout.tooSmall {
		return core.StepResult{State: g.State()}
	}

	rep := g.state.Step(g.dt, pressedInputs(in, g.latch.Update(heldInputs(in))))

	if rep.Locked {
		g.log.Debug("piece locked", "tick", rep.Tick, "shape", rep.LockedShape.String(),
			"blocks", rep.LockedBlocks, "hard_drop", rep.Movement.HardDrop)
	}
	if rep.Rotation.Kick >= 0 {
		g.log.Debug("wall kick", "tick", rep.Tick, "kick", rep.Rotation.Kick)
	}
	if rep.Spawned && rep.Loss == bfcore.LossNone {
		g.log.Debug("piece spawned", "tick", rep.Tick, "shape", rep.Spawn.String(), "next", g.state.Next().String())
	}

	return core.StepResult{State: g.State()}
}

// heldInputs translates platform actions into the simulation's bitset.
// Just-pressed flags are derived afterwards by the latch.
func heldInputs(in core.InputFrame) bfcore.Inputs {
	var out bfcore.Inputs
	out.Set(bfcore.InputLeftHeld, in.IsHeld(core.ActionLeft))
	out.Set(bfcore.InputRightHeld, in.IsHeld(core.ActionRight))
	out.Set(bfcore.InputSoftDropHeld, in.IsHeld(core.ActionSoftDrop))
	out.Set(bfcore.InputHardDropHeld, in.IsHeld(core.ActionHardDrop))
	out.Set(bfcore.InputRotateCWHeld, in.IsHeld(core.ActionRotateCW))
	out.Set(bfcore.InputRotateCCWHeld, in.IsHeld(core.ActionRotateCCW))
	return out
}

// pressedInputs marks a press for every key event in the frame. Terminals
// send one event per tap and no release, so two quick taps look like one
// hold to the latch.
func pressedInputs(in core.InputFrame, out bfcore.Inputs) bfcore.Inputs {
	out.Set(bfcore.InputHardDropJustPressed,
		out.Has(bfcore.InputHardDropJustPressed) || in.Has(core.ActionHardDrop))
	out.Set(bfcore.InputRotateCWJustPressed,
		out.Has(bfcore.InputRotateCWJustPressed) || in.Has(core.ActionRotateCW))
	out.Set(bfcore.InputRotateCCWJustPressed,
		out.Has(bfcore.InputRotateCCWJustPressed) || in.Has(core.ActionRotateCCW))
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Locked:   g.state.LockedCount(),
		GameOver: g.state.Lost(),
		Paused:   g.paused,
	}
}

// Resize re-centers the board for a new terminal size without restarting.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.state != nil {
		g.layout = newLayout(g.state.Config(), width, height)
	}
}

// HoldWindow reports how long a key counts as held after its last event.
func (g *Game) HoldWindow() time.Duration {
	if g.settings.Input.HoldWindow > 0 {
		return g.settings.Input.HoldWindow.Std()
	}
	return config.DefaultBlockfallConfig().Input.HoldWindow.Std()
}

// RunID identifies the current game in log output.
func (g *Game) RunID() uuid.UUID {
	return g.runID
}
