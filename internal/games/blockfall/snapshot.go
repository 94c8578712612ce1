package blockfall

import bfcore "github.com/vovakirdan/blockfall/internal/games/blockfall/core"

// Snapshot captures the complete game state for determinism testing.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick   uint64
	Locked int
	Loss   int
	Paused bool

	// Active piece: shape and four (x, y) pairs; ActiveShape is -1 when none.
	ActiveShape int
	ActiveData  [8]int
	Next        int

	// Grid cells in row order from the floor: 0 = vacant, else color + 1.
	GridData []int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	grid := g.state.Grid()
	gridData := make([]int, 0, grid.W*grid.H)
	for y := range grid.H {
		for x := range grid.W {
			cell := grid.Get(bfcore.P(x, y))
			if cell.Occupied {
				gridData = append(gridData, int(cell.Color)+1)
			} else {
				gridData = append(gridData, 0)
			}
		}
	}

	snap := Snapshot{
		Tick:        g.state.Tick(),
		Locked:      g.state.LockedCount(),
		Loss:        int(g.state.LossReason()),
		Paused:      g.paused,
		ActiveShape: -1,
		Next:        int(g.state.Next()),
		GridData:    gridData,
	}
	if p, ok := g.state.Active(); ok {
		snap.ActiveShape = int(p.Shape)
		for i, b := range p.Blocks {
			snap.ActiveData[2*i] = b.X
			snap.ActiveData[2*i+1] = b.Y
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Locked)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Loss)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActiveShape+1) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Next)          //#nosec G115 -- hash computation
	for _, v := range snap.ActiveData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.GridData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.Paused {
		h = h*31 + 1
	}
	return h
}
