package test

import (
	"github.com/idursun/hitkit/internal/ui/id"
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
	"github.com/idursun/hitkit/internal/ui/widget"
)

// Layer returns the layer of a named area.
func Layer(name string, order layer.Order) layer.ID {
	return layer.New(order, id.New(name))
}

// Box is a rectangle from its two inclusive corners.
func Box(x0, y0, x1, y1 float32) layout.Rect {
	return layout.RectFromMinMax(layout.P(x0, y0), layout.P(x1, y1))
}

// Widget builds an enabled widget whose id is derived from name.
func Widget(name string, l layer.ID, r layout.Rect, sense widget.Sense) widget.Rect {
	return widget.Rect{
		ID:           id.New(name),
		Layer:        l,
		Rect:         r,
		InteractRect: r,
		Sense:        sense,
		Enabled:      true,
	}
}

// Disabled returns a copy of w that is not enabled.
func Disabled(w widget.Rect) widget.Rect {
	w.Enabled = false
	return w
}

// Rects records the widgets in order into a fresh registry.
func Rects(ws ...widget.Rect) *widget.Rects {
	rects := widget.NewRects()
	for _, w := range ws {
		rects.Record(w)
	}
	return rects
}
