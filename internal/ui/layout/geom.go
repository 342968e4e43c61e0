package layout

import (
	"fmt"
	"math"
)

// Pos is a position in points.
type Pos struct {
	X, Y float32
}

// Vec is a displacement in points.
type Vec struct {
	X, Y float32
}

func P(x, y float32) Pos { return Pos{X: x, Y: y} }
func V(x, y float32) Vec { return Vec{X: x, Y: y} }

func (p Pos) Add(v Vec) Pos { return Pos{X: p.X + v.X, Y: p.Y + v.Y} }
func (p Pos) Sub(o Pos) Vec { return Vec{X: p.X - o.X, Y: p.Y - o.Y} }

// Distance returns the Euclidean distance between p and o.
func (p Pos) Distance(o Pos) float32 { return p.Sub(o).Length() }

func (p Pos) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

func (v Vec) Length() float32   { return float32(math.Sqrt(float64(v.LengthSq()))) }
func (v Vec) LengthSq() float32 { return v.X*v.X + v.Y*v.Y }
func (v Vec) Scale(f float32) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Rect is an axis-aligned rectangle in points. Both edges are inclusive.
type Rect struct {
	Min, Max Pos
}

// Nothing is the empty rectangle. It contains nothing and is infinitely far
// from every position.
var Nothing = Rect{
	Min: Pos{X: float32(math.Inf(1)), Y: float32(math.Inf(1))},
	Max: Pos{X: float32(math.Inf(-1)), Y: float32(math.Inf(-1))},
}

func RectFromMinMax(min, max Pos) Rect { return Rect{Min: min, Max: max} }

func RectFromMinSize(min Pos, size Vec) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }
func (r Rect) Size() Vec       { return Vec{X: r.Width(), Y: r.Height()} }

func (r Rect) Center() Pos {
	return Pos{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// IsPositive reports whether the rectangle has a non-negative size on both axes.
func (r Rect) IsPositive() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

func (r Rect) Contains(p Pos) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X && r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.Contains(o.Min) && r.Contains(o.Max)
}

// DistanceSqToPos is the squared distance from p to the closest point of r,
// zero when r contains p.
func (r Rect) DistanceSqToPos(p Pos) float32 {
	dx := distanceToRange(r.Min.X, r.Max.X, p.X)
	dy := distanceToRange(r.Min.Y, r.Max.Y, p.Y)
	return dx*dx + dy*dy
}

func (r Rect) DistanceToPos(p Pos) float32 {
	return float32(math.Sqrt(float64(r.DistanceSqToPos(p))))
}

func (r Rect) Translate(v Vec) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// Expand grows the rectangle by amount on every side.
func (r Rect) Expand(amount float32) Rect {
	return Rect{
		Min: Pos{X: r.Min.X - amount, Y: r.Min.Y - amount},
		Max: Pos{X: r.Max.X + amount, Y: r.Max.Y + amount},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v - %v]", r.Min, r.Max)
}

func distanceToRange(min, max, v float32) float32 {
	if v < min {
		return min - v
	}
	if v > max {
		return v - max
	}
	return 0
}
