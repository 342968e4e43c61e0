package widget

import "strings"

// Sense defines what kinds of pointer input a widget responds to.
// Multiple senses can be combined using bitwise OR. A widget with no sense
// still reports hover.
type Sense uint8

const (
	SenseClick Sense = 1 << iota
	SenseDrag
	SenseFocusable
)

const (
	Hover         Sense = 0
	Click               = SenseClick | SenseFocusable
	Drag                = SenseDrag | SenseFocusable
	ClickAndDrag        = SenseClick | SenseDrag | SenseFocusable
	FocusableOnly       = SenseFocusable
)

func (s Sense) Click() bool     { return s&SenseClick != 0 }
func (s Sense) Drag() bool      { return s&SenseDrag != 0 }
func (s Sense) Focusable() bool { return s&SenseFocusable != 0 }

// Interactive reports whether the widget senses clicks or drags.
func (s Sense) Interactive() bool { return s.Click() || s.Drag() }

// ClickAndDrag reports whether the widget senses both.
func (s Sense) ClickAndDrag() bool { return s.Click() && s.Drag() }


// Without removes the click and drag capabilities, keeping the rest.
func (s Sense) Without(o Sense) Sense { return s &^ o }

func (s Sense) String() string {
	var parts []string
	if s.Click() {
		parts = append(parts, "click")
	}
	if s.Drag() {
		parts = append(parts, "drag")
	}
	if s.Focusable() {
		parts = append(parts, "focusable")
	}
	if len(parts) == 0 {
		return "hover"
	}
	return strings.Join(parts, "|")
}
