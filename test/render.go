package test

import (
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
	"github.com/idursun/hitkit/internal/ui/render"
)

// RenderImmediate paints into a fixed-size screen and returns its content.
// Layers are stacked in the order they were first painted on.
func RenderImmediate(paint func(dl *render.List, box layout.Box), width, height int) string {
	dl := render.NewList()
	paint(dl, layout.NewBox(layout.Cells(0, 0, width, height)))
	return dl.RenderToString(width, height, layer.Stack(dl.Layers()))
}
