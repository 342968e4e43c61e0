package playground

import (
	"fmt"
	"strings"

	"github.com/idursun/hitkit/internal/config"
	"github.com/idursun/hitkit/internal/ui/id"
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
	"github.com/idursun/hitkit/internal/ui/widget"
)

const knobSteps = 10

// window is a movable area on the Middle order. Its top row is the title bar
// it is dragged by.
type window struct {
	cfg   config.WindowConfig
	id    id.ID
	layer layer.ID
	x, y  int
	// value is the knob position, 0..knobSteps.
	value  int
	clicks int
}

func newWindow(cfg config.WindowConfig) *window {
	wid := id.New("window").With(cfg.Name)
	w := &window{cfg: cfg, id: wid, layer: layer.New(layer.Middle, wid)}
	w.reset()
	return w
}

func (w *window) reset() {
	w.x, w.y = w.cfg.X, w.cfg.Y
	w.value = knobSteps / 2
	w.clicks = 0
}

func (w *window) title() string {
	if w.cfg.Title != "" {
		return w.cfg.Title
	}
	return w.cfg.Name
}

func (w *window) rect() layout.Rectangle {
	return layout.Cells(w.x, w.y, w.cfg.Width, w.cfg.Height)
}

func (w *window) moveBy(d layout.Vec, bounds layout.Rectangle) {
	w.x = clamp(w.x+int(d.X), bounds.Min.X, bounds.Max.X-w.cfg.Width)
	w.y = clamp(w.y+int(d.Y), bounds.Min.Y, bounds.Max.Y-1)
}

type windowParts struct {
	titleBar layout.Rectangle
	body     layout.Rectangle
	label    layout.Rectangle
	track    layout.Rectangle
	status   layout.Rectangle
}

func (w *window) parts() windowParts {
	r := w.rect()
	title, rest := layout.NewBox(r).CutTop(1)
	inner := rest.Inset(1)
	label, after := inner.CutTop(1)
	_, after = after.CutTop(1)
	track, after := after.CutTop(1)
	_, after = after.CutTop(1)
	status, _ := after.CutTop(1)
	return windowParts{
		titleBar: title.R,
		body:     r,
		label:    label.R,
		track:    layout.Cells(track.R.Min.X, track.R.Min.Y, min(track.R.Dx(), knobSteps+3), track.R.Dy()),
		status:   status.R,
	}
}

// showWindow declares the widgets of w and paints them.
func (m *Model) showWindow(w *window, bounds layout.Rectangle) {
	p := w.parts()

	m.interact("window "+w.cfg.Name, w.id.With("body"), w.layer, p.body, widget.Hover, true)

	bar := m.interact(w.cfg.Name+" title", w.id.With("title"), w.layer, p.titleBar, widget.Drag, true)
	if bar.Dragged {
		w.moveBy(m.ctx.Pointer().Delta(), bounds)
		p = w.parts()
	}

	label := m.interact(w.cfg.Name+" label", w.id.With("label"), w.layer, p.label, widget.Hover, true)
	if label.Hovered {
		m.tooltip = "labels only sense hover"
	}

	knob := m.interact(w.cfg.Name+" knob", w.id.With("knob"), w.layer, p.track, widget.ClickAndDrag, true)
	switch {
	case knob.Clicked:
		w.clicks++
		w.value = (w.value + 1) % (knobSteps + 1)
	case knob.Dragged:
		if pos, ok := m.ctx.Pointer().LatestPos(); ok {
			w.value = clamp(int(pos.X)-p.track.Min.X-1, 0, knobSteps)
		}
	}
	if knob.Hovered && !knob.Dragged {
		m.tooltip = "click to step, drag to slide"
	}
	if knob.DragEnded {
		m.logger.Info("knob set", "window", w.cfg.Name, "value", w.value)
	}

	styles := m.styles
	titleStyle := styles.title
	if bar.Dragged {
		titleStyle = styles.titleDragged
	}
	m.dl.AddDraw(w.layer, p.titleBar, titleStyle.Width(p.titleBar.Dx()).Render(" "+w.title()), 1)

	_, bodyBox := layout.NewBox(p.body).CutTop(1)
	inner := bodyBox.Inset(1)
	base := styles.window.Width(inner.R.Dx()).Height(inner.R.Dy()).Render("")
	m.dl.AddDraw(w.layer, bodyBox.R, styles.windowBorder.Render(base), 0)

	labelStyle := styles.label
	if label.Hovered {
		labelStyle = styles.labelHovered
	}
	m.dl.AddDraw(w.layer, p.label, labelStyle.Render("hover me"), 1)

	knobStyle := styles.knob
	if knob.Dragged {
		knobStyle = styles.knobDragged
	}
	m.dl.AddDraw(w.layer, p.track, knobStyle.Render(knobTrack(w.value, p.track.Dx())), 1)
	m.dl.AddDraw(w.layer, p.status, styles.label.Render(fmt.Sprintf("value %d  clicks %d", w.value, w.clicks)), 1)
}

// knobTrack draws "[──●──]" with the knob at value.
func knobTrack(value, width int) string {
	inner := width - 2
	if inner <= 0 {
		return ""
	}
	pos := clamp(value, 0, inner-1)
	return "[" + strings.Repeat("─", pos) + "●" + strings.Repeat("─", inner-pos-1) + "]"
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
