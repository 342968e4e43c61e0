package interaction

import "github.com/idursun/hitkit/internal/ui/id"

// State is the press and drag memory carried from frame to frame. Only
// Interact writes it.
type State struct {
	// widget that would be clicked if the held button is released
	clickID id.ID
	// widget that is, or will become, dragged while the button is held
	dragID id.ID
}

// ClickID is the widget pressed on with click sense, if any.
func (s *State) ClickID() (id.ID, bool) {
	return s.clickID, s.clickID != id.Null
}

// DragID is the widget pressed on with drag sense, if any.
func (s *State) DragID() (id.ID, bool) {
	return s.dragID, s.dragID != id.Null
}

// Reset forgets any press in progress.
func (s *State) Reset() {
	s.clickID = id.Null
	s.dragID = id.Null
}
