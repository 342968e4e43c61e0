package render

import (
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
)

// Draw paints pre-rendered content, usually from lipgloss, into a cell rectangle.
type Draw struct {
	Layer   layer.ID
	Rect    layout.Rectangle
	Content string
	Z       int // within the layer, lower is behind
}
