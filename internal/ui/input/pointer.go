package input

import (
	"math"

	"github.com/idursun/hitkit/internal/ui/layout"
)

// Options tune how presses turn into clicks and drags.
type Options struct {
	// MaxClickDist is how far the pointer may move between press and
	// release, in points, for the release to still count as a click.
	MaxClickDist float32
	// MaxClickDuration is how long a press may be held, in seconds, for the
	// release to still count as a click.
	MaxClickDuration float64
	// MaxDoubleClickDelay is the largest gap, in seconds, between two clicks
	// for the second to count as a double click.
	MaxDoubleClickDelay float64
}

func DefaultOptions() Options {
	return Options{
		MaxClickDist:        6,
		MaxClickDuration:    0.6,
		MaxDoubleClickDelay: 0.3,
	}
}

// PointerState is the pointer as of the current frame. It is advanced once
// per frame with BeginFrame.
type PointerState struct {
	opts Options
	time float64

	latestPos   layout.Pos
	hasLatest   bool
	interactPos layout.Pos
	hasInteract bool
	delta       layout.Vec

	down [NumPointerButtons]bool

	pressOrigin    layout.Pos
	pressing       bool
	pressStartTime float64

	hasMovedTooMuchForClick bool

	lastClickTime     float64
	lastLastClickTime float64

	events []PointerEvent
}

func NewPointerState(opts Options) *PointerState {
	return &PointerState{
		opts:              opts,
		time:              math.Inf(-1),
		lastClickTime:     math.Inf(-1),
		lastLastClickTime: math.Inf(-1),
	}
}

// BeginFrame consumes the platform events of one frame that happened at time
// (in seconds) and rebuilds the frame's pointer event list.
func (p *PointerState) BeginFrame(time float64, raw []RawEvent) {
	p.time = time
	p.events = p.events[:0]

	oldPos, hadOld := p.latestPos, p.hasLatest
	p.interactPos, p.hasInteract = p.latestPos, p.hasLatest

	for _, ev := range raw {
		switch ev := ev.(type) {
		case PointerMoved:
			p.setPos(ev.Pos)
			if p.pressing && p.pressOrigin.Distance(ev.Pos) > p.opts.MaxClickDist {
				p.hasMovedTooMuchForClick = true
			}
			p.events = append(p.events, Moved{Pos: ev.Pos})
		case PointerButtonEvent:
			p.setPos(ev.Pos)
			if ev.Pressed {
				p.pressOrigin = ev.Pos
				p.pressing = true
				p.pressStartTime = time
				p.hasMovedTooMuchForClick = false
				p.events = append(p.events, Pressed{Pos: ev.Pos, Button: ev.Button})
			} else {
				var click *Click
				if p.CouldAnyButtonBeClick() {
					click = &Click{Pos: ev.Pos, Count: p.clickCount(time), Modifiers: ev.Modifiers}
					p.lastLastClickTime = p.lastClickTime
					p.lastClickTime = time
				}
				p.events = append(p.events, Released{Click: click, Button: ev.Button})
				p.pressing = false
			}
			if int(ev.Button) >= 0 && int(ev.Button) < NumPointerButtons {
				// after CouldAnyButtonBeClick has looked at it
				p.down[ev.Button] = ev.Pressed
			}
		case PointerGone:
			// interactPos survives until the next frame
			p.hasLatest = false
		}
	}

	if hadOld && p.hasLatest {
		p.delta = p.latestPos.Sub(oldPos)
	} else {
		p.delta = layout.Vec{}
	}
}

func (p *PointerState) setPos(pos layout.Pos) {
	p.latestPos, p.hasLatest = pos, true
	p.interactPos, p.hasInteract = pos, true
}

func (p *PointerState) clickCount(time float64) int {
	switch {
	case time-p.lastLastClickTime < 2*p.opts.MaxDoubleClickDelay:
		return 3
	case time-p.lastClickTime < p.opts.MaxDoubleClickDelay:
		return 2
	default:
		return 1
	}
}

// Events returns this frame's pointer events in order.
func (p *PointerState) Events() []PointerEvent {
	return p.events
}

// Time is the time of the current frame, in seconds.
func (p *PointerState) Time() float64 {
	return p.time
}

// LatestPos is the latest reported position. It is unset once the pointer
// leaves the window.
func (p *PointerState) LatestPos() (layout.Pos, bool) {
	return p.latestPos, p.hasLatest
}

// HoverPos is where tooltips should go.
func (p *PointerState) HoverPos() (layout.Pos, bool) {
	return p.LatestPos()
}

// InteractPos is the position to hit test at. Unlike LatestPos it survives a
// PointerGone until the next frame, so a tap on a touch screen still lands.
func (p *PointerState) InteractPos() (layout.Pos, bool) {
	return p.interactPos, p.hasInteract
}

// Delta is how far the pointer moved since the previous frame.
func (p *PointerState) Delta() layout.Vec {
	return p.delta
}

// PressOrigin is where the current press started.
func (p *PointerState) PressOrigin() (layout.Pos, bool) {
	return p.pressOrigin, p.pressing
}

// PressStartTime is when the current press started.
func (p *PointerState) PressStartTime() (float64, bool) {
	return p.pressStartTime, p.pressing
}

func (p *PointerState) ButtonDown(b PointerButton) bool {
	if int(b) < 0 || int(b) >= NumPointerButtons {
		return false
	}
	return p.down[b]
}

func (p *PointerState) PrimaryDown() bool { return p.ButtonDown(Primary) }

func (p *PointerState) AnyDown() bool {
	for _, d := range p.down {
		if d {
			return true
		}
	}
	return false
}

// AnyPressed reports whether a button went down this frame.
func (p *PointerState) AnyPressed() bool {
	for _, ev := range p.events {
		if _, ok := ev.(Pressed); ok {
			return true
		}
	}
	return false
}

// AnyReleased reports whether a button went up this frame.
func (p *PointerState) AnyReleased() bool {
	for _, ev := range p.events {
		if _, ok := ev.(Released); ok {
			return true
		}
	}
	return false
}

// CouldAnyButtonBeClick reports whether releasing the held button now would
// count as a click.
func (p *PointerState) CouldAnyButtonBeClick() bool {
	if !p.AnyDown() {
		return false
	}
	if p.hasMovedTooMuchForClick {
		return false
	}
	if p.pressing && p.time-p.pressStartTime > p.opts.MaxClickDuration {
		return false
	}
	return true
}

// IsDecidedlyDragging reports whether the held button can no longer turn
// into a click: the pointer moved too far, or was held too long.
func (p *PointerState) IsDecidedlyDragging() bool {
	return p.AnyDown() && !p.CouldAnyButtonBeClick()
}
