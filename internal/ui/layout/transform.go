package layout

// Transform scales and then translates. It maps a layer's local space to
// screen space.
type Transform struct {
	Scaling     float32
	Translation Vec
}

// Identity leaves positions unchanged.
var Identity = Transform{Scaling: 1}

func Translation(v Vec) Transform {
	return Transform{Scaling: 1, Translation: v}
}

func (t Transform) Apply(p Pos) Pos {
	return Pos{X: p.X*t.Scaling + t.Translation.X, Y: p.Y*t.Scaling + t.Translation.Y}
}

func (t Transform) ApplyRect(r Rect) Rect {
	return Rect{Min: t.Apply(r.Min), Max: t.Apply(r.Max)}
}

// Inverse returns the transform mapping screen space back to local space.
// A zero scaling is treated as identity scaling.
func (t Transform) Inverse() Transform {
	s := t.Scaling
	if s == 0 {
		s = 1
	}
	inv := 1 / s
	return Transform{
		Scaling:     inv,
		Translation: t.Translation.Scale(-inv),
	}
}

// Then returns the transform that applies t and then o.
func (t Transform) Then(o Transform) Transform {
	return Transform{
		Scaling: t.Scaling * o.Scaling,
		Translation: Vec{
			X: t.Translation.X*o.Scaling + o.Translation.X,
			Y: t.Translation.Y*o.Scaling + o.Translation.Y,
		},
	}
}
