package layout

import (
	"image"
	"math"

	uv "github.com/charmbracelet/ultraviolet"
)

// Rectangle is an integer rectangle in terminal cells, half-open on its
// maximum edges.
type Rectangle = uv.Rectangle

// Cells builds a cell rectangle from its origin and size.
func Cells(x, y, width, height int) Rectangle {
	return image.Rect(x, y, x+width, y+height)
}

// FromCells converts a cell rectangle to points. One cell is one point and a
// cell is addressed by its top-left corner, so the last covered column and row
// become the inclusive maximum edge.
func FromCells(r Rectangle) Rect {
	if r.Empty() {
		return Nothing
	}
	return Rect{
		Min: Pos{X: float32(r.Min.X), Y: float32(r.Min.Y)},
		Max: Pos{X: float32(r.Max.X - 1), Y: float32(r.Max.Y - 1)},
	}
}

// CellPos converts a cell coordinate to a position.
func CellPos(x, y int) Pos {
	return Pos{X: float32(x), Y: float32(y)}
}

// ToCells rounds a point rectangle outwards to the cells it covers.
func ToCells(r Rect) Rectangle {
	if !r.IsPositive() {
		return Rectangle{}
	}
	return image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X)+1, int(r.Max.Y)+1)
}

// ToCell returns the cell a position falls in.
func ToCell(p Pos) image.Point {
	return image.Pt(int(math.Floor(float64(p.X))), int(math.Floor(float64(p.Y))))
}
