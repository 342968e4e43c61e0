// Package interaction turns hit test results and pointer events into clicks,
// drags and hovers, remembering presses across frames.
package interaction

import (
	"github.com/idursun/hitkit/internal/ui/hit"
	"github.com/idursun/hitkit/internal/ui/id"
	"github.com/idursun/hitkit/internal/ui/input"
	"github.com/idursun/hitkit/internal/ui/layout"
	"github.com/idursun/hitkit/internal/ui/widget"
)

// Pointer is the part of the input state the resolver reads.
type Pointer interface {
	Events() []input.PointerEvent
	IsDecidedlyDragging() bool
	LatestPos() (layout.Pos, bool)
}

// Interact resolves one frame. prev is the snapshot of the previous frame,
// rects the widgets hits was computed from. state is updated in place.
func Interact(prev Snapshot, rects *widget.Rects, hits hit.Hits, pointer Pointer, state *State) Snapshot {
	if state.clickID != id.Null && !rects.Contains(state.clickID) {
		state.clickID = id.Null
	}
	if state.dragID != id.Null && !rects.Contains(state.dragID) {
		state.dragID = id.Null
	}

	var clicked *widget.Rect
	var click *input.Click
	for _, ev := range pointer.Events() {
		switch ev := ev.(type) {
		case input.Pressed:
			if state.clickID == id.Null && hits.Click != nil {
				state.clickID = hits.Click.ID
			}
			if state.dragID == id.Null && hits.Drag != nil {
				state.dragID = hits.Drag.ID
			}
		case input.Released:
			if ev.Click != nil {
				if w, ok := lookup(rects, state.clickID); ok {
					clicked = &w
					c := *ev.Click
					click = &c
				}
			}
			state.Reset()
		}
	}

	var dragged *widget.Rect
	if w, ok := lookup(rects, state.dragID); ok {
		isDragged := true
		if w.Sense.ClickAndDrag() {
			// could still turn out to be a click
			isDragged = pointer.IsDecidedlyDragging()
		}
		if isDragged {
			dragged = &w
		}
	}

	var dragStarted, dragEnded *widget.Rect
	if idOf(dragged) != idOf(prev.Dragged) {
		dragStarted = dragged
		dragEnded = prev.Dragged
	}

	containsPointer := make(map[id.ID]widget.Rect, len(hits.ContainsPointer)+3)
	for _, w := range hits.ContainsPointer {
		containsPointer[w.ID] = w
	}
	for _, w := range []*widget.Rect{hits.Top, hits.Click, hits.Drag} {
		if w != nil {
			containsPointer[w.ID] = *w
		}
	}

	hovered := make(map[id.ID]widget.Rect, 2)
	switch {
	case clicked != nil || dragged != nil:
		addAll(hovered, clicked, dragged)
	case hits.Click != nil || hits.Drag != nil:
		addAll(hovered, hits.Click, hits.Drag)
	case len(hits.ContainsPointer) > 0:
		w := hits.ContainsPointer[len(hits.ContainsPointer)-1]
		hovered[w.ID] = w
	}

	return Snapshot{
		Clicked:         clicked,
		Click:           click,
		DragStarted:     dragStarted,
		Dragged:         dragged,
		DragEnded:       dragEnded,
		Hovered:         hovered,
		ContainsPointer: containsPointer,
	}
}

func lookup(rects *widget.Rects, widgetID id.ID) (widget.Rect, bool) {
	if widgetID == id.Null {
		return widget.Rect{}, false
	}
	return rects.Get(widgetID)
}

func idOf(w *widget.Rect) id.ID {
	if w == nil {
		return id.Null
	}
	return w.ID
}

func addAll(m map[id.ID]widget.Rect, ws ...*widget.Rect) {
	for _, w := range ws {
		if w != nil {
			m[w.ID] = *w
		}
	}
}
