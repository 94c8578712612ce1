package core

// Pivot is a rotation center in doubled coordinates: the center of cell
// (x, y) sits at (2x, 2y). Odd components put the pivot on a cell corner,
// which is how the I and O shapes turn; even components put it on a cell
// center. Both components always share the same parity.
type Pivot struct {
	X2 int
	Y2 int
}

// PointCentered reports whether the pivot lies between cells.
func (p Pivot) PointCentered() bool {
	return p.X2%2 != 0
}

// Rotation is a requested quarter turn.
type Rotation uint8

const (
	RotateNone Rotation = iota
	RotateCW
	RotateCCW
)

// String returns a human-readable rotation name.
func (r Rotation) String() string {
	switch r {
	case RotateCW:
		return "CW"
	case RotateCCW:
		return "CCW"
	default:
		return "None"
	}
}

// Piece is the active piece under player control.
type Piece struct {
	Shape  Shape
	Blocks [4]Pos
	Pivot  Pivot
}

// NewPiece places a shape in spawn orientation with the lower-left corner of
// its bounding box at origin. The pivot starts at the bounding box center.
func NewPiece(shape Shape, origin Pos) Piece {
	spec := Spec(shape)
	p := Piece{
		Shape: shape,
		Pivot: Pivot{
			X2: 2*origin.X + spec.Size - 1,
			Y2: 2*origin.Y + spec.Size - 1,
		},
	}
	for i, c := range spec.Cells {
		p.Blocks[i] = origin.AddPos(c)
	}
	return p
}

// Color returns the catalog color of the piece.
func (p Piece) Color() Color {
	return Spec(p.Shape).Color
}

// Translated returns the piece moved by (dx, dy), pivot included.
func (p Piece) Translated(dx, dy int) Piece {
	for i := range p.Blocks {
		p.Blocks[i] = p.Blocks[i].Add(dx, dy)
	}
	p.Pivot.X2 += 2 * dx
	p.Pivot.Y2 += 2 * dy
	return p
}

// Rotated returns the piece turned a quarter around its pivot.
// Clockwise maps pivot-relative (x, y) to (y, -x);
// counter-clockwise maps (x, y) to (-y, x).
func (p Piece) Rotated(r Rotation) Piece {
	if r == RotateNone {
		return p
	}
	for i, b := range p.Blocks {
		rx := 2*b.X - p.Pivot.X2
		ry := 2*b.Y - p.Pivot.Y2
		var nx, ny int
		if r == RotateCW {
			nx, ny = ry, -rx
		} else {
			nx, ny = -ry, rx
		}
		nx += p.Pivot.X2
		ny += p.Pivot.Y2
		invariant(nx%2 == 0 && ny%2 == 0, "rotation of %v off the cell lattice (pivot %+v)", b, p.Pivot)
		p.Blocks[i] = P(nx/2, ny/2)
	}
	return p
}

// Contains reports whether one of the piece's blocks sits at pos.
func (p Piece) Contains(pos Pos) bool {
	for _, b := range p.Blocks {
		if b == pos {
			return true
		}
	}
	return false
}

// MinY returns the lowest row touched by the piece.
func (p Piece) MinY() int {
	y := p.Blocks[0].Y
	for _, b := range p.Blocks[1:] {
		y = min(y, b.Y)
	}
	return y
}

// MaxY returns the highest row touched by the piece.
func (p Piece) MaxY() int {
	y := p.Blocks[0].Y
	for _, b := range p.Blocks[1:] {
		y = max(y, b.Y)
	}
	return y
}

// validate panics unless the four blocks are pairwise distinct.
func (p Piece) validate() {
	for i := range p.Blocks {
		for j := i + 1; j < len(p.Blocks); j++ {
			invariant(p.Blocks[i] != p.Blocks[j], "%s piece has overlapping blocks at %v", p.Shape, p.Blocks[i])
		}
	}
}
