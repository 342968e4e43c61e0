package widget

import (
	"github.com/idursun/hitkit/internal/ui/id"
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
)

// Rects holds every widget recorded during one frame, indexed by id and by
// layer. Layer lists keep draw order, back-to-front. Recording an id twice
// replaces the earlier record in both indexes.
type Rects struct {
	byID    map[id.ID]Rect
	byLayer map[layer.ID][]Rect
	// position of each id within its layer list
	index  map[id.ID]int
	layers []layer.ID
}

// NewRects creates an empty registry.
func NewRects() *Rects {
	return &Rects{
		byID:    make(map[id.ID]Rect, 64),
		byLayer: make(map[layer.ID][]Rect, 8),
		index:   make(map[id.ID]int, 64),
	}
}

// Record adds a widget. If the id was already recorded this frame the new
// record wins.
func (r *Rects) Record(w Rect) {
	if prev, ok := r.byID[w.ID]; ok {
		r.removeFromLayer(prev)
	}
	r.byID[w.ID] = w
	if _, ok := r.byLayer[w.Layer]; !ok {
		r.layers = append(r.layers, w.Layer)
	}
	r.index[w.ID] = len(r.byLayer[w.Layer])
	r.byLayer[w.Layer] = append(r.byLayer[w.Layer], w)
}

// RecordWidget is a convenience for Record.
func (r *Rects) RecordWidget(widgetID id.ID, layerID layer.ID, interactRect layout.Rect, sense Sense, enabled bool) {
	r.Record(Rect{
		ID:           widgetID,
		Layer:        layerID,
		Rect:         interactRect,
		InteractRect: interactRect,
		Sense:        sense,
		Enabled:      enabled,
	})
}

func (r *Rects) removeFromLayer(prev Rect) {
	list := r.byLayer[prev.Layer]
	i := r.index[prev.ID]
	list = append(list[:i], list[i+1:]...)
	for j := i; j < len(list); j++ {
		r.index[list[j].ID] = j
	}
	r.byLayer[prev.Layer] = list
}

// Get returns the widget recorded under widgetID.
func (r *Rects) Get(widgetID id.ID) (Rect, bool) {
	w, ok := r.byID[widgetID]
	return w, ok
}

func (r *Rects) Contains(widgetID id.ID) bool {
	_, ok := r.byID[widgetID]
	return ok
}

// Layer returns the widgets of one layer in draw order. The slice must not
// be modified.
func (r *Rects) Layer(layerID layer.ID) []Rect {
	return r.byLayer[layerID]
}

// LayerIDs returns the layers that have widgets, in first-recorded order.
func (r *Rects) LayerIDs() []layer.ID {
	ids := make([]layer.ID, 0, len(r.layers))
	for _, l := range r.layers {
		if len(r.byLayer[l]) > 0 {
			ids = append(ids, l)
		}
	}
	return ids
}

// Len returns the number of distinct widgets.
func (r *Rects) Len() int {
	return len(r.byID)
}

// Clear removes all widgets.
// Useful for reusing a registry across frames.
func (r *Rects) Clear() {
	clear(r.byID)
	clear(r.index)
	clear(r.byLayer)
	r.layers = r.layers[:0]
}
