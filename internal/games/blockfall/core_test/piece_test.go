package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

func TestCatalogShapes(t *testing.T) {
	sizes := map[core.Shape]int{
		core.ShapeI: 4, core.ShapeO: 2, core.ShapeT: 3, core.ShapeS: 3,
		core.ShapeZ: 3, core.ShapeJ: 3, core.ShapeL: 3,
	}
	colors := map[core.Color]bool{}
	for _, shape := range core.Shapes() {
		spec := core.Spec(shape)
		assert.Equal(t, sizes[shape], spec.Size, "%s size", shape)
		assert.NotEqual(t, core.ColorNone, spec.Color, "%s color", shape)
		colors[spec.Color] = true

		seen := map[core.Pos]bool{}
		for _, c := range spec.Cells {
			assert.True(t, c.X >= 0 && c.X < spec.Size && c.Y >= 0 && c.Y < spec.Size,
				"%s cell %v outside its box", shape, c)
			assert.False(t, seen[c], "%s repeats cell %v", shape, c)
			seen[c] = true
		}
	}
	assert.Len(t, colors, core.ShapeCount, "every shape has its own color")
}

func TestNewPiecePivot(t *testing.T) {
	tp := core.NewPiece(core.ShapeT, core.P(3, 19))
	assert.Equal(t, [4]core.Pos{{X: 3, Y: 20}, {X: 4, Y: 20}, {X: 5, Y: 20}, {X: 4, Y: 21}}, tp.Blocks)
	assert.Equal(t, core.Pivot{X2: 8, Y2: 40}, tp.Pivot)
	assert.False(t, tp.Pivot.PointCentered())

	ip := core.NewPiece(core.ShapeI, core.P(0, 0))
	assert.True(t, ip.Pivot.PointCentered())
	op := core.NewPiece(core.ShapeO, core.P(0, 0))
	assert.True(t, op.Pivot.PointCentered())
}

func TestRotateT(t *testing.T) {
	p := core.NewPiece(core.ShapeT, core.P(3, 19)).Rotated(core.RotateCW)
	assert.Equal(t, [4]core.Pos{{X: 4, Y: 21}, {X: 4, Y: 20}, {X: 4, Y: 19}, {X: 5, Y: 20}}, p.Blocks)
}

func TestRotateI(t *testing.T) {
	p := core.NewPiece(core.ShapeI, core.P(0, 0)).Rotated(core.RotateCW)
	assert.Equal(t, [4]core.Pos{{X: 2, Y: 3}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0}}, p.Blocks)
}

func TestRotateOKeepsCells(t *testing.T) {
	p := core.NewPiece(core.ShapeO, core.P(4, 20))
	r := p.Rotated(core.RotateCW)
	assert.ElementsMatch(t, p.Blocks[:], r.Blocks[:])
}

func TestRotateInverse(t *testing.T) {
	for _, shape := range core.Shapes() {
		t.Run(shape.String(), func(t *testing.T) {
			p := core.NewPiece(shape, core.P(3, 10))
			for turn := 0; turn < 4; turn++ {
				assert.Equal(t, p, p.Rotated(core.RotateCW).Rotated(core.RotateCCW), "CW then CCW, turn %d", turn)
				assert.Equal(t, p, p.Rotated(core.RotateCCW).Rotated(core.RotateCW), "CCW then CW, turn %d", turn)
				p = p.Rotated(core.RotateCW)
			}
			require.Equal(t, core.NewPiece(shape, core.P(3, 10)), p, "four turns return to spawn orientation")
		})
	}
}

func TestTranslateCommutesWithRotate(t *testing.T) {
	for _, shape := range core.Shapes() {
		p := core.NewPiece(shape, core.P(2, 8))
		a := p.Translated(2, -3).Rotated(core.RotateCW)
		b := p.Rotated(core.RotateCW).Translated(2, -3)
		assert.Equal(t, a, b, "%s", shape)
	}
}

func TestPieceExtent(t *testing.T) {
	p := core.NewPiece(core.ShapeI, core.P(3, 18))
	assert.Equal(t, 20, p.MinY())
	assert.Equal(t, 20, p.MaxY())
	assert.True(t, p.Contains(core.P(6, 20)))
	assert.False(t, p.Contains(core.P(7, 20)))
}

func TestDeltaSteps(t *testing.T) {
	tests := []struct {
		in           core.Delta
		lower, raise core.Delta
	}{
		{core.DeltaNeutral, core.DeltaDown1, core.DeltaNeutral},
		{core.DeltaDown1, core.DeltaDown2, core.DeltaNeutral},
		{core.DeltaDown2, core.DeltaDown2, core.DeltaDown1},
		{core.DeltaLeft, core.DeltaLeft, core.DeltaLeft},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.lower, tc.in.Lower(), "%s.Lower()", tc.in)
		assert.Equal(t, tc.raise, tc.in.Raise(), "%s.Raise()", tc.in)
	}
	dx, dy := core.DeltaDown2.Offset()
	assert.Equal(t, [2]int{0, -2}, [2]int{dx, dy})
}
