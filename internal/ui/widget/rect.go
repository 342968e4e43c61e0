package widget

import (
	"fmt"

	"github.com/idursun/hitkit/internal/ui/id"
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
)

// Rect is what the layout pass records about one widget in one frame.
type Rect struct {
	ID    id.ID
	Layer layer.ID
	// Rect is the painted rectangle.
	Rect layout.Rect
	// InteractRect is used for hit testing and may exceed Rect.
	InteractRect layout.Rect
	Sense        Sense
	Enabled      bool
}

func (w Rect) String() string {
	return fmt.Sprintf("%s %s %s %v", w.ID.ShortDebugFormat(), w.Layer.ShortDebugFormat(), w.Sense, w.InteractRect)
}
