package input

import (
	"fmt"

	"github.com/idursun/hitkit/internal/ui/layout"
)

// PointerButton is a mouse button or an equivalent touch gesture.
type PointerButton int

const (
	Primary PointerButton = iota
	Secondary
	Middle
	Extra1
	Extra2
)

// NumPointerButtons is the number of distinct buttons tracked.
const NumPointerButtons = 5

func (b PointerButton) String() string {
	switch b {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Middle:
		return "middle"
	case Extra1:
		return "extra1"
	case Extra2:
		return "extra2"
	}
	return fmt.Sprintf("button(%d)", int(b))
}

// Modifiers are the keyboard modifiers held during a pointer event.
type Modifiers struct {
	Alt, Ctrl, Shift bool
}

// Click describes a release that counts as a click.
type Click struct {
	Pos       layout.Pos
	Count     int // 1, 2 or 3
	Modifiers Modifiers
}

func (c Click) IsDouble() bool { return c.Count == 2 }
func (c Click) IsTriple() bool { return c.Count == 3 }

// PointerEvent is one change to the pointer within a frame: Moved, Pressed
// or Released.
type PointerEvent interface {
	isPointerEvent()
}

// Moved carries the new pointer position.
type Moved struct {
	Pos layout.Pos
}

// Pressed is a button going down.
type Pressed struct {
	Pos    layout.Pos
	Button PointerButton
}

// Released is a button going up. Click is set when the press and release
// were close enough in space and time to count as a click.
type Released struct {
	Click  *Click
	Button PointerButton
}

func (Moved) isPointerEvent()    {}
func (Pressed) isPointerEvent()  {}
func (Released) isPointerEvent() {}

// RawEvent is what the platform layer reports: PointerMoved, PointerButton or
// PointerGone.
type RawEvent interface {
	isRawEvent()
}

type PointerMoved struct {
	Pos layout.Pos
}

type PointerButtonEvent struct {
	Pos       layout.Pos
	Button    PointerButton
	Pressed   bool
	Modifiers Modifiers
}

// PointerGone means the pointer left the window.
type PointerGone struct{}

func (PointerMoved) isRawEvent()       {}
func (PointerButtonEvent) isRawEvent() {}
func (PointerGone) isRawEvent()        {}
