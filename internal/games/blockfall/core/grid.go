package core

// Cell is a single cell of the occupancy grid.
type Cell struct {
	Occupied bool  // Whether a locked block fills the cell
	Color    Color // Valid only when Occupied is true
}

// Grid is the permanent occupancy field (the heap).
// Cells are stored in row-major order: index = x + y*W.
//
// Only positions with 0 <= x < W and 0 <= y < H are ever used as an index.
// The linear formula maps many out-of-range positions onto valid indices
// (e.g. (W, 0) and (0, 1)), so every accessor bounds-checks x and y first.
type Grid struct {
	W     int
	H     int
	cells []Cell
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	invariant(w > 0 && h > 0, "grid dimensions %dx%d", w, h)
	return &Grid{
		W:     w,
		H:     h,
		cells: make([]Cell, w*h),
	}
}

// InBounds reports whether p lies inside the playfield columns and at or
// above the floor. Rows above H are in bounds but not allocated.
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0
}

// Allocated reports whether p has backing storage in the grid.
func (g *Grid) Allocated(p Pos) bool {
	return g.InBounds(p) && p.Y < g.H
}

func (g *Grid) index(p Pos) int {
	invariant(g.Allocated(p), "grid index out of range at %v in %dx%d", p, g.W, g.H)
	return p.X + p.Y*g.W
}

// Vacant reports whether a block may occupy p.
// Positions outside the columns or below the floor are never vacant.
// Positions above the allocated rows are always vacant.
func (g *Grid) Vacant(p Pos) bool {
	if !g.InBounds(p) {
		return false
	}
	if p.Y >= g.H {
		return true
	}
	return !g.cells[g.index(p)].Occupied
}

// Get returns the cell at p. Unallocated positions read as an empty cell.
func (g *Grid) Get(p Pos) Cell {
	if !g.Allocated(p) {
		return Cell{}
	}
	return g.cells[g.index(p)]
}

// Occupy marks p as filled with the given color.
// Returns false when p is above the allocated rows and nothing was written.
func (g *Grid) Occupy(p Pos, color Color) bool {
	invariant(g.InBounds(p), "occupy out of bounds at %v", p)
	if p.Y >= g.H {
		return false
	}
	i := g.index(p)
	invariant(!g.cells[i].Occupied, "occupy already occupied cell %v", p)
	g.cells[i] = Cell{Occupied: true, Color: color}
	return true
}

// OccupiedCount returns the number of filled cells.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.Occupied {
			count++
		}
	}
	return count
}

// Each calls fn for every occupied cell, ordered by row then column.
func (g *Grid) Each(fn func(p Pos, c Cell)) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := g.cells[x+y*g.W]
			if c.Occupied {
				fn(P(x, y), c)
			}
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
