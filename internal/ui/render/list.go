package render

import (
	"slices"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
)

// List collects the paint operations of one frame. Operations are replayed
// sorted by layer, then by z within the layer, then in insertion order, so a
// window raised in the layer stack paints over the ones it covers.
type List struct {
	ops          []op
	orderCounter int
}

type op struct {
	layer  layer.ID
	z      int
	order  int
	draw   Draw
	effect Effect
}

func NewList() *List {
	return &List{ops: make([]op, 0, 32)}
}

func (l *List) nextOrder() int {
	l.orderCounter++
	return l.orderCounter
}

func (l *List) AddDraw(on layer.ID, rect layout.Rectangle, content string, z int) {
	l.ops = append(l.ops, op{
		layer: on,
		z:     z,
		order: l.nextOrder(),
		draw:  Draw{Layer: on, Rect: rect, Content: content, Z: z},
	})
}

// AddFill fills a rectangle with ch in the given style.
func (l *List) AddFill(on layer.ID, rect layout.Rectangle, ch rune, style lipgloss.Style, z int) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	l.AddEffect(on, FillEffect{Rect: rect, Char: ch, Style: lipglossToStyle(style), Z: z})
}

// AddEffect queues an effect over whatever was painted before it.
func (l *List) AddEffect(on layer.ID, e Effect) {
	l.ops = append(l.ops, op{
		layer:  on,
		z:      e.GetZ(),
		order:  l.nextOrder(),
		effect: e,
	})
}

func (l *List) AddReverse(on layer.ID, rect layout.Rectangle, z int) {
	l.AddEffect(on, AttrEffect{Rect: rect, Reverse: true, Z: z})
}

func (l *List) AddBold(on layer.ID, rect layout.Rectangle, z int) {
	l.AddEffect(on, AttrEffect{Rect: rect, Bold: true, Z: z})
}

func (l *List) AddDim(on layer.ID, rect layout.Rectangle, z int) {
	l.AddEffect(on, AttrEffect{Rect: rect, Faint: true, Z: z})
}

func (l *List) AddUnderline(on layer.ID, rect layout.Rectangle, z int) {
	l.AddEffect(on, AttrEffect{Rect: rect, Underline: true, Z: z})
}

// AddHighlight sets the background of cells that have none.
func (l *List) AddHighlight(on layer.ID, rect layout.Rectangle, style lipgloss.Style, z int) {
	l.AddEffect(on, HighlightEffect{Rect: rect, Style: style, Z: z})
}

// AddPaint is AddHighlight that also overrides existing backgrounds.
func (l *List) AddPaint(on layer.ID, rect layout.Rectangle, style lipgloss.Style, z int) {
	l.AddEffect(on, HighlightEffect{Rect: rect, Style: style, Z: z, Force: true})
}

// Layers returns the distinct layers painted on, in first use order.
func (l *List) Layers() []layer.ID {
	var layers []layer.ID
	for _, o := range l.ops {
		if !slices.Contains(layers, o.layer) {
			layers = append(layers, o.layer)
		}
	}
	return layers
}

// Clear drops every operation so the list can be reused for the next frame.
func (l *List) Clear() {
	l.ops = l.ops[:0]
	l.orderCounter = 0
}

func (l *List) Len() int {
	return len(l.ops)
}

// Draws returns the draw operations in insertion order.
func (l *List) Draws() []Draw {
	var draws []Draw
	for _, o := range l.ops {
		if o.effect == nil {
			draws = append(draws, o.draw)
		}
	}
	return draws
}

// Render replays the list onto buf. Layers are ranked by their position in
// stack; a layer missing from stack paints after the listed layers of the
// same or lower Order.
func (l *List) Render(buf uv.Screen, stack layer.Stack) {
	if len(l.ops) == 0 {
		return
	}
	ops := slices.Clone(l.ops)
	slices.SortStableFunc(ops, func(a, b op) int {
		if ra, rb := rank(stack, a.layer), rank(stack, b.layer); ra != rb {
			return ra - rb
		}
		if a.z != b.z {
			return a.z - b.z
		}
		return a.order - b.order
	})
	for _, o := range ops {
		if o.effect != nil {
			o.effect.Apply(buf)
			continue
		}
		uv.NewStyledString(o.draw.Content).Draw(buf, o.draw.Rect)
	}
}

// RenderToString renders into a fresh buffer of the given size.
func (l *List) RenderToString(width, height int, stack layer.Stack) string {
	buf := uv.NewScreenBuffer(width, height)
	l.Render(buf, stack)
	return buf.Render()
}

func rank(stack layer.Stack, on layer.ID) int {
	if i := slices.Index(stack, on); i >= 0 {
		return 2*i + 1
	}
	k := 0
	for _, s := range stack {
		if s.Order <= on.Order {
			k++
		}
	}
	return 2 * k
}
