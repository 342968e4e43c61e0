package layer

import (
	"slices"
)

// Stack is a back-to-front sequence of layers for one frame. The last layer
// is the topmost.
type Stack []ID

// Contains reports whether the stack lists layer.
func (s Stack) Contains(l ID) bool {
	return slices.Contains(s, l)
}

// Top returns the topmost layer that allows interaction.
func (s Stack) Top() (ID, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].AllowInteraction() {
			return s[i], true
		}
	}
	return ID{}, false
}

// AreaOrder remembers the relative order of areas within an Order, the way a
// window manager does. Areas are kept back-to-front; the last one is on top.
type AreaOrder struct {
	areas []ID
}

func NewAreaOrder() *AreaOrder {
	return &AreaOrder{}
}

// Add registers an area on top if it is not known yet.
func (a *AreaOrder) Add(l ID) {
	if !slices.Contains(a.areas, l) {
		a.areas = append(a.areas, l)
	}
}

// MoveToTop brings an area in front of every other area.
func (a *AreaOrder) MoveToTop(l ID) {
	if i := slices.Index(a.areas, l); i >= 0 {
		a.areas = slices.Delete(a.areas, i, i+1)
	}
	a.areas = append(a.areas, l)
}

// Remove forgets an area.
func (a *AreaOrder) Remove(l ID) {
	if i := slices.Index(a.areas, l); i >= 0 {
		a.areas = slices.Delete(a.areas, i, i+1)
	}
}

// Index returns the position of l back-to-front, or -1.
func (a *AreaOrder) Index(l ID) int {
	return slices.Index(a.areas, l)
}

// Sort orders layers by Order first and by area order within an Order.
// Areas the AreaOrder does not know about keep their relative input order and
// go behind known ones. The input is not modified.
func (a *AreaOrder) Sort(layers []ID) Stack {
	sorted := slices.Clone(layers)
	slices.SortStableFunc(sorted, func(x, y ID) int {
		if x.Order != y.Order {
			return int(x.Order) - int(y.Order)
		}
		return a.Index(x) - a.Index(y)
	})
	return Stack(sorted)
}
