package core

// Color identifies the color a block is drawn with.
// The platform layer maps these onto terminal colors.
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorMagenta
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
)

// Shape identifies one of the seven tetromino shapes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of canonical shapes.
const ShapeCount = 7

// String returns the conventional one-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// ShapeSpec is the catalog entry for a shape.
// Cells are offsets inside a Size x Size bounding box whose lower-left
// corner is (0, 0), in spawn orientation.
type ShapeSpec struct {
	Shape Shape
	Size  int
	Cells [4]Pos
	Color Color
}

var catalog = [ShapeCount]ShapeSpec{
	ShapeI: {Shape: ShapeI, Size: 4, Color: ColorCyan,
		Cells: [4]Pos{{0, 2}, {1, 2}, {2, 2}, {3, 2}}},
	ShapeO: {Shape: ShapeO, Size: 2, Color: ColorYellow,
		Cells: [4]Pos{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	ShapeT: {Shape: ShapeT, Size: 3, Color: ColorMagenta,
		Cells: [4]Pos{{0, 1}, {1, 1}, {2, 1}, {1, 2}}},
	ShapeS: {Shape: ShapeS, Size: 3, Color: ColorGreen,
		Cells: [4]Pos{{0, 1}, {1, 1}, {1, 2}, {2, 2}}},
	ShapeZ: {Shape: ShapeZ, Size: 3, Color: ColorRed,
		Cells: [4]Pos{{0, 2}, {1, 2}, {1, 1}, {2, 1}}},
	ShapeJ: {Shape: ShapeJ, Size: 3, Color: ColorBlue,
		Cells: [4]Pos{{0, 2}, {0, 1}, {1, 1}, {2, 1}}},
	ShapeL: {Shape: ShapeL, Size: 3, Color: ColorOrange,
		Cells: [4]Pos{{2, 2}, {0, 1}, {1, 1}, {2, 1}}},
}

// Spec returns the catalog entry for a shape.
func Spec(s Shape) ShapeSpec {
	invariant(s < ShapeCount, "unknown shape %d", s)
	return catalog[s]
}

// Shapes returns all shapes in catalog order.
func Shapes() []Shape {
	return []Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}
}

// LowestRow returns the lowest occupied row inside the bounding box.
func (s ShapeSpec) LowestRow() int {
	lowest := s.Size
	for _, c := range s.Cells {
		lowest = min(lowest, c.Y)
	}
	return lowest
}
