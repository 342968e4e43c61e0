package layout

// Box is a cell rectangle handed to a view to lay itself out in.
type Box struct {
	R Rectangle
}

func NewBox(r Rectangle) Box {
	return Box{R: r}
}

// CutTop splits off the first n rows. n is clamped to the box height.
func (b Box) CutTop(n int) (top, rest Box) {
	n = clampInt(n, 0, b.R.Dy())
	top = NewBox(Cells(b.R.Min.X, b.R.Min.Y, b.R.Dx(), n))
	rest = NewBox(Cells(b.R.Min.X, b.R.Min.Y+n, b.R.Dx(), b.R.Dy()-n))
	return top, rest
}

// CutLeft splits off the first n columns. n is clamped to the box width.
func (b Box) CutLeft(n int) (left, rest Box) {
	n = clampInt(n, 0, b.R.Dx())
	left = NewBox(Cells(b.R.Min.X, b.R.Min.Y, n, b.R.Dy()))
	rest = NewBox(Cells(b.R.Min.X+n, b.R.Min.Y, b.R.Dx()-n, b.R.Dy()))
	return left, rest
}

// Inset shrinks the box by n cells on every side.
func (b Box) Inset(n int) Box {
	w := max(0, b.R.Dx()-2*n)
	h := max(0, b.R.Dy()-2*n)
	return NewBox(Cells(b.R.Min.X+n, b.R.Min.Y+n, w, h))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
