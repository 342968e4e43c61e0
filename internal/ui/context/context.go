// Package context drives the interaction engine one frame at a time.
//
// Widgets are hit tested against where they were drawn in the previous
// frame, so a response always lags the layout by one frame.
package context

import (
	"log/slog"

	"github.com/idursun/hitkit/internal/config"
	"github.com/idursun/hitkit/internal/ui/hit"
	"github.com/idursun/hitkit/internal/ui/id"
	"github.com/idursun/hitkit/internal/ui/input"
	"github.com/idursun/hitkit/internal/ui/interaction"
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
	"github.com/idursun/hitkit/internal/ui/widget"
)

type Options struct {
	InteractRadius float32
	Pointer        input.Options
}

func DefaultOptions() Options {
	return Options{InteractRadius: 5, Pointer: input.DefaultOptions()}
}

func OptionsFromConfig(c config.InteractionConfig) Options {
	return Options{
		InteractRadius: c.InteractRadius,
		Pointer: input.Options{
			MaxClickDist:        c.MaxClickDist,
			MaxClickDuration:    c.MaxClickDuration,
			MaxDoubleClickDelay: c.MaxDoubleClickDelay,
		},
	}
}

// Context is not safe for concurrent use.
type Context struct {
	opts   Options
	logger *slog.Logger

	pointer    *input.PointerState
	state      interaction.State
	order      layer.Stack
	transforms map[layer.ID]layout.Transform

	prevRects *widget.Rects
	rects     *widget.Rects

	hits     hit.Hits
	snapshot interaction.Snapshot
	frame    uint64
}

func New(opts Options, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Context{
		opts:       opts,
		logger:     logger,
		pointer:    input.NewPointerState(opts.Pointer),
		transforms: make(map[layer.ID]layout.Transform),
		prevRects:  widget.NewRects(),
		rects:      widget.NewRects(),
	}
}

// BeginFrame starts a frame at time (seconds) with the platform events that
// arrived since the last one. order lists layers back to front.
func (c *Context) BeginFrame(time float64, raw []input.RawEvent, order layer.Stack) {
	c.frame++
	c.order = order
	c.pointer.BeginFrame(time, raw)

	c.hits = hit.Hits{}
	if pos, ok := c.pointer.InteractPos(); ok {
		c.hits = hit.Test(c.prevRects, order, c.transforms, pos, c.opts.InteractRadius)
	}

	prev := c.snapshot
	c.snapshot = interaction.Interact(prev, c.prevRects, c.hits, c.pointer, &c.state)
	c.logTransitions()

	c.rects.Clear()
}

func (c *Context) logTransitions() {
	s := c.snapshot
	if s.DragEnded != nil {
		c.logger.Debug("drag ended", widgetAttrs(s.DragEnded)...)
	}
	if s.DragStarted != nil {
		c.logger.Debug("drag started", widgetAttrs(s.DragStarted)...)
	}
	if s.Clicked != nil {
		attrs := widgetAttrs(s.Clicked)
		if s.Click != nil {
			attrs = append(attrs, "count", s.Click.Count)
		}
		c.logger.Debug("clicked", attrs...)
	}
}

func widgetAttrs(w *widget.Rect) []any {
	return []any{"id", w.ID.ShortDebugFormat(), "layer", w.Layer.ShortDebugFormat()}
}

// Interact records a widget for this frame and returns what happened to it.
func (c *Context) Interact(widgetID id.ID, layerID layer.ID, rect layout.Rect, sense widget.Sense, enabled bool) interaction.Response {
	c.rects.RecordWidget(widgetID, layerID, rect, sense, enabled)
	return c.snapshot.Response(widgetID)
}

// Record is Interact for a widget whose interact rect differs from its
// painted rect.
func (c *Context) Record(w widget.Rect) interaction.Response {
	c.rects.Record(w)
	return c.snapshot.Response(w.ID)
}

// EndFrame makes this frame's widgets the ones the next frame hit tests.
func (c *Context) EndFrame() {
	c.prevRects, c.rects = c.rects, c.prevRects
}

// SetTransform sets how a layer's local space maps to the screen. It stays
// in effect until changed.
func (c *Context) SetTransform(layerID layer.ID, t layout.Transform) {
	c.transforms[layerID] = t
}

func (c *Context) ClearTransform(layerID layer.ID) {
	delete(c.transforms, layerID)
}

func (c *Context) Snapshot() interaction.Snapshot { return c.snapshot }
func (c *Context) Hits() hit.Hits                 { return c.hits }
func (c *Context) Pointer() *input.PointerState   { return c.pointer }
func (c *Context) State() *interaction.State      { return &c.state }
func (c *Context) Order() layer.Stack             { return c.order }
func (c *Context) Frame() uint64                  { return c.frame }

// Widgets returns the widgets recorded so far this frame.
func (c *Context) Widgets() *widget.Rects { return c.rects }

// PreviousWidgets returns the widgets the current frame was hit tested
// against.
func (c *Context) PreviousWidgets() *widget.Rects { return c.prevRects }
