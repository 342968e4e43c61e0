package interaction

import (
	"github.com/idursun/hitkit/internal/ui/id"
	"github.com/idursun/hitkit/internal/ui/input"
	"github.com/idursun/hitkit/internal/ui/widget"
)

// Snapshot is what happened to widgets during one frame. Widget code reads
// it on the next layout pass.
type Snapshot struct {
	// Clicked is set on the frame the button is released over a widget that
	// was pressed on.
	Clicked *widget.Rect
	// Click describes the release that produced Clicked.
	Click *input.Click

	// DragStarted and DragEnded are set for exactly one frame.
	DragStarted *widget.Rect
	Dragged     *widget.Rect
	DragEnded   *widget.Rect

	Hovered         map[id.ID]widget.Rect
	ContainsPointer map[id.ID]widget.Rect
}

func (s Snapshot) IsClicked(widgetID id.ID) bool     { return is(s.Clicked, widgetID) }
func (s Snapshot) IsDragStarted(widgetID id.ID) bool { return is(s.DragStarted, widgetID) }
func (s Snapshot) IsDragged(widgetID id.ID) bool     { return is(s.Dragged, widgetID) }
func (s Snapshot) IsDragEnded(widgetID id.ID) bool   { return is(s.DragEnded, widgetID) }

func (s Snapshot) IsHovered(widgetID id.ID) bool {
	_, ok := s.Hovered[widgetID]
	return ok
}

func (s Snapshot) IsContainsPointer(widgetID id.ID) bool {
	_, ok := s.ContainsPointer[widgetID]
	return ok
}

func is(w *widget.Rect, widgetID id.ID) bool {
	return w != nil && w.ID == widgetID
}

// Response is the view of a snapshot from one widget.
type Response struct {
	ID              id.ID
	Clicked         bool
	DoubleClicked   bool
	TripleClicked   bool
	DragStarted     bool
	Dragged         bool
	DragEnded       bool
	Hovered         bool
	ContainsPointer bool
}

// Response returns what happened to the given widget.
func (s Snapshot) Response(widgetID id.ID) Response {
	r := Response{
		ID:              widgetID,
		Clicked:         s.IsClicked(widgetID),
		DragStarted:     s.IsDragStarted(widgetID),
		Dragged:         s.IsDragged(widgetID),
		DragEnded:       s.IsDragEnded(widgetID),
		Hovered:         s.IsHovered(widgetID),
		ContainsPointer: s.IsContainsPointer(widgetID),
	}
	if r.Clicked && s.Click != nil {
		r.DoubleClicked = s.Click.IsDouble()
		r.TripleClicked = s.Click.IsTriple()
	}
	return r
}
