package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_DistanceSqToPos(t *testing.T) {
	r := RectFromMinMax(P(0, 0), P(10, 10))
	tests := []struct {
		name string
		pos  Pos
		want float32
	}{
		{"inside", P(5, 5), 0},
		{"on edge", P(10, 3), 0},
		{"on corner", P(0, 0), 0},
		{"left", P(-3, 5), 9},
		{"below", P(5, 14), 16},
		{"diagonal", P(13, 14), 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.DistanceSqToPos(tt.pos))
		})
	}
}

func TestRect_ContainsAgreesWithDistance(t *testing.T) {
	r := RectFromMinSize(P(2, 3), V(4, 5))
	for x := float32(0); x <= 8; x += 0.5 {
		for y := float32(0); y <= 10; y += 0.5 {
			pos := P(x, y)
			assert.Equal(t, r.Contains(pos), r.DistanceSqToPos(pos) == 0, "pos %v", pos)
		}
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := RectFromMinMax(P(0, 0), P(100, 100))
	assert.True(t, outer.ContainsRect(RectFromMinMax(P(10, 10), P(20, 20))))
	assert.True(t, outer.ContainsRect(outer))
	assert.False(t, outer.ContainsRect(RectFromMinMax(P(90, 90), P(110, 100))))
}

func TestNothing(t *testing.T) {
	assert.False(t, Nothing.Contains(P(0, 0)))
	assert.False(t, Nothing.IsPositive())
	assert.True(t, math.IsInf(float64(Nothing.DistanceSqToPos(P(3, 4))), 1))
}

func TestTransform_Inverse(t *testing.T) {
	tr := Transform{Scaling: 2, Translation: V(10, -4)}
	p := P(3, 7)

	moved := tr.Apply(p)
	assert.Equal(t, P(16, 10), moved)
	assert.Equal(t, p, tr.Inverse().Apply(moved))
}

func TestTransform_Then(t *testing.T) {
	a := Translation(V(1, 2))
	b := Transform{Scaling: 3}
	p := P(1, 1)

	assert.Equal(t, b.Apply(a.Apply(p)), a.Then(b).Apply(p))
	assert.Equal(t, p, Identity.Apply(p))
}

func TestFromCells(t *testing.T) {
	r := FromCells(Cells(2, 1, 3, 2))

	assert.Equal(t, RectFromMinMax(P(2, 1), P(4, 2)), r)
	assert.True(t, r.Contains(CellPos(4, 2)))
	assert.False(t, r.Contains(CellPos(5, 2)))
	assert.Equal(t, Cells(2, 1, 3, 2), ToCells(r))
	assert.Equal(t, Nothing, FromCells(Cells(0, 0, 0, 4)))
}

func TestBox_Cuts(t *testing.T) {
	box := NewBox(Cells(0, 0, 20, 10))

	top, rest := box.CutTop(3)
	assert.Equal(t, Cells(0, 0, 20, 3), top.R)
	assert.Equal(t, Cells(0, 3, 20, 7), rest.R)

	left, right := box.CutLeft(50)
	assert.Equal(t, box.R, left.R)
	assert.Equal(t, 0, right.R.Dx())

	assert.Equal(t, Cells(1, 1, 18, 8), box.Inset(1).R)
}
