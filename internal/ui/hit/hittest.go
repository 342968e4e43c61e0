// Package hit answers "what is under the pointer?" for one frame's widgets.
//
// It does not care whether a button is held or whether something is already
// being dragged; that is the job of the interaction package.
package hit

import (
	"math"

	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
	"github.com/idursun/hitkit/internal/ui/widget"
)

// Hits is the result of a hit test.
type Hits struct {
	// ContainsPointer lists the widgets whose interact rect contains the
	// pointer, back-to-front. Once anything is hit, only widgets of the
	// topmost hit layer are kept.
	ContainsPointer []widget.Rect

	// Top is the topmost widget under the pointer, or the closest one.
	Top *widget.Rect
	// Click is what a click started now would click.
	Click *widget.Rect
	// Drag is what a drag started now would drag.
	Drag *widget.Rect
	// ClosestInteractive is the nearer of Click and Drag.
	ClosestInteractive *widget.Rect
}

// Empty reports whether nothing was hit or found close by.
func (h Hits) Empty() bool {
	return len(h.ContainsPointer) == 0 && h.Top == nil && h.Click == nil && h.Drag == nil
}

type candidate struct {
	w      widget.Rect
	distSq float32
}

// Test finds the widgets at or near pos, none farther than radius.
//
// Layers are visited in order, back to front. A transform for a layer maps
// from the layer's local space to screen space; pos is taken back through
// its inverse before measuring. Test never modifies its arguments.
func Test(rects *widget.Rects, order layer.Stack, transforms map[layer.ID]layout.Transform, pos layout.Pos, radius float32) Hits {
	radiusSq := radius * radius

	var nearby []candidate
	for _, layerID := range order {
		if !layerID.AllowInteraction() {
			continue
		}
		local := pos
		if t, ok := transforms[layerID]; ok {
			local = t.Inverse().Apply(pos)
		}
		for _, w := range rects.Layer(layerID) {
			d := w.InteractRect.DistanceSqToPos(local)
			if d > radiusSq {
				continue
			}
			if !w.Enabled {
				w.Sense = w.Sense.Without(widget.SenseClick | widget.SenseDrag)
			}
			nearby = append(nearby, candidate{w: w, distSq: d})
		}
	}
	if len(nearby) == 0 {
		return Hits{}
	}

	topHit := -1
	for i := range nearby {
		if nearby[i].distSq == 0 {
			topHit = i
		}
	}
	if topHit >= 0 {
		top := nearby[topHit].w.Layer
		var kept []candidate
		for _, c := range nearby {
			if c.w.Layer == top {
				kept = append(kept, c)
			}
		}
		nearby = kept
	}

	var hits []widget.Rect
	direct, hitClick, hitDrag := -1, -1, -1
	closest, closestClick, closestDrag := -1, -1, -1
	bestAll, bestClick, bestDrag := inf, inf, inf
	for i, c := range nearby {
		if c.distSq == 0 {
			hits = append(hits, c.w)
			direct = i
			if c.w.Sense.Click() {
				hitClick = i
			}
			if c.w.Sense.Drag() {
				hitDrag = i
			}
		}
		// later wins ties
		if c.distSq <= bestAll {
			bestAll, closest = c.distSq, i
		}
		if c.w.Sense.Click() && c.distSq <= bestClick {
			bestClick, closestClick = c.distSq, i
		}
		if c.w.Sense.Drag() && c.distSq <= bestDrag {
			bestDrag, closestDrag = c.distSq, i
		}
	}

	top := firstOf(direct, closest)
	click := firstOf(hitClick, closestClick)
	drag := firstOf(hitDrag, closestDrag)

	if click >= 0 && drag >= 0 && nearby[click].w.ID != nearby[drag].w.ID {
		clickBoth := nearby[click].w.Sense.ClickAndDrag()
		dragBoth := nearby[drag].w.Sense.ClickAndDrag()
		switch {
		case clickBoth && dragBoth:
			winner := max(click, drag)
			click, drag = winner, winner
		case clickBoth:
			drag = click
		case dragBoth:
			click = drag
		}
	}

	closestInteractive := click
	if click < 0 || (drag >= 0 && nearby[drag].distSq < nearby[click].distSq) {
		closestInteractive = drag
	}

	return Hits{
		ContainsPointer:    hits,
		Top:                at(nearby, top),
		Click:              at(nearby, click),
		Drag:               at(nearby, drag),
		ClosestInteractive: at(nearby, closestInteractive),
	}
}

var inf = float32(math.Inf(1))

func firstOf(i, fallback int) int {
	if i >= 0 {
		return i
	}
	return fallback
}

func at(nearby []candidate, i int) *widget.Rect {
	if i < 0 {
		return nil
	}
	w := nearby[i].w
	return &w
}
