package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/idursun/hitkit/internal/ui/layout"
)

// FromMouseMsg converts a terminal mouse message into a raw pointer event.
// One terminal cell is one point. Wheel messages are not pointer events.
func FromMouseMsg(msg tea.MouseMsg) (RawEvent, bool) {
	mouse := msg.Mouse()
	pos := layout.CellPos(mouse.X, mouse.Y)
	switch msg.(type) {
	case tea.MouseMotionMsg:
		return PointerMoved{Pos: pos}, true
	case tea.MouseClickMsg, tea.MouseReleaseMsg:
		_, pressed := msg.(tea.MouseClickMsg)
		button, ok := buttonFromTea(mouse.Button)
		if !ok && pressed {
			return nil, false
		}
		if !ok {
			// some encodings do not say which button was released
			button = Primary
		}
		return PointerButtonEvent{
			Pos:       pos,
			Button:    button,
			Pressed:   pressed,
			Modifiers: modifiersFromTea(mouse.Mod),
		}, true
	}
	return nil, false
}

func buttonFromTea(b tea.MouseButton) (PointerButton, bool) {
	switch b {
	case tea.MouseLeft:
		return Primary, true
	case tea.MouseRight:
		return Secondary, true
	case tea.MouseMiddle:
		return Middle, true
	case tea.MouseBackward:
		return Extra1, true
	case tea.MouseForward:
		return Extra2, true
	}
	return 0, false
}

func modifiersFromTea(mod tea.KeyMod) Modifiers {
	return Modifiers{
		Alt:   mod.Contains(tea.ModAlt),
		Ctrl:  mod.Contains(tea.ModCtrl),
		Shift: mod.Contains(tea.ModShift),
	}
}
