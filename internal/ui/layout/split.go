package layout

const (
	minSplitPercent = 10
	maxSplitPercent = 95
)

// Split divides a box into a main part and a secondary part that takes
// Percent of it. The first column (or row when Vertical) of the secondary
// part is the handle the split is dragged by.
type Split struct {
	Percent  float64
	Vertical bool
}

func NewSplit(percent float64, vertical bool) *Split {
	s := &Split{Vertical: vertical}
	s.set(percent)
	return s
}

func (s *Split) set(percent float64) bool {
	percent = min(max(percent, minSplitPercent), maxSplitPercent)
	changed := percent != s.Percent
	s.Percent = percent
	return changed
}

func (s *Split) extent(box Box) int {
	if s.Vertical {
		return box.R.Dy()
	}
	return box.R.Dx()
}

// Apply returns the main box (left or top) and the secondary box.
func (s *Split) Apply(box Box) (main, secondary Box) {
	n := int(float64(s.extent(box)) * (100 - s.Percent) / 100)
	if s.Vertical {
		return box.CutTop(n)
	}
	return box.CutLeft(n)
}

func (s *Split) Handle(box Box) Rectangle {
	_, secondary := s.Apply(box)
	r := secondary.R
	if s.Vertical {
		return Cells(r.Min.X, r.Min.Y, r.Dx(), min(1, r.Dy()))
	}
	return Cells(r.Min.X, r.Min.Y, min(1, r.Dx()), r.Dy())
}

// DragTo moves the handle to the cell under p. It reports whether the
// percentage changed.
func (s *Split) DragTo(box Box, p Pos) bool {
	total := s.extent(box)
	if total <= 0 {
		return false
	}
	cell := ToCell(p)
	remaining := box.R.Max.X - cell.X
	if s.Vertical {
		remaining = box.R.Max.Y - cell.Y
	}
	return s.set(float64(remaining*100) / float64(total))
}

// Resize grows the secondary part by delta percent, or shrinks it when
// delta is negative.
func (s *Split) Resize(delta float64) bool {
	return s.set(s.Percent + delta)
}
