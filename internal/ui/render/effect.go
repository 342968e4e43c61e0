package render

import (
	"image/color"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/idursun/hitkit/internal/ui/layout"
)

// Effect post-processes cells that were already painted.
type Effect interface {
	Apply(buf uv.Screen)
	GetZ() int
	GetRect() layout.Rectangle
}

// AttrEffect adds text attributes to every cell in Rect.
type AttrEffect struct {
	Rect      layout.Rectangle
	Bold      bool
	Faint     bool
	Reverse   bool
	Underline bool
	Z         int
}

func (e AttrEffect) Apply(buf uv.Screen) {
	iterateCells(buf, e.Rect, func(cell *uv.Cell) *uv.Cell {
		c := cell.Clone()
		if e.Bold {
			c.Style.Attrs |= uv.AttrBold
		}
		if e.Faint {
			c.Style.Attrs |= uv.AttrFaint
		}
		if e.Reverse {
			c.Style.Attrs |= uv.AttrReverse
		}
		if e.Underline {
			c.Style.Underline = uv.UnderlineSingle
		}
		return c
	})
}

func (e AttrEffect) GetZ() int                 { return e.Z }
func (e AttrEffect) GetRect() layout.Rectangle { return e.Rect }

// HighlightEffect changes the background of cells to the background of Style.
// Cells that already carry a background keep it unless Force is set.
type HighlightEffect struct {
	Rect  layout.Rectangle
	Style lipgloss.Style
	Z     int
	Force bool
}

func (e HighlightEffect) Apply(buf uv.Screen) {
	bg := toAnsiColor(e.Style.GetBackground())
	iterateCells(buf, e.Rect, func(cell *uv.Cell) *uv.Cell {
		if !e.Force && cell.Style.Bg != nil {
			return nil
		}
		c := cell.Clone()
		c.Style.Bg = bg
		return c
	})
}

func (e HighlightEffect) GetZ() int                 { return e.Z }
func (e HighlightEffect) GetRect() layout.Rectangle { return e.Rect }

// FillEffect overwrites every cell in Rect with Char.
type FillEffect struct {
	Rect  layout.Rectangle
	Char  rune
	Style uv.Style
	Z     int
}

func (e FillEffect) Apply(buf uv.Screen) {
	cell := &uv.Cell{Content: string(e.Char), Width: 1, Style: e.Style}
	bounds := buf.Bounds().Intersect(e.Rect)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			buf.SetCell(x, y, cell)
		}
	}
}

func (e FillEffect) GetZ() int                 { return e.Z }
func (e FillEffect) GetRect() layout.Rectangle { return e.Rect }

// toAnsiColor keeps palette colors as palette colors instead of widening them
// to 24-bit RGB.
func toAnsiColor(c color.Color) ansi.Color {
	switch c := c.(type) {
	case ansi.BasicColor:
		return c
	case ansi.IndexedColor:
		return c
	}
	if ac, ok := c.(ansi.Color); ok {
		return ac
	}
	return nil
}

func lipglossToStyle(ls lipgloss.Style) uv.Style {
	var cs uv.Style
	if _, none := ls.GetForeground().(lipgloss.NoColor); !none {
		cs.Fg = toAnsiColor(ls.GetForeground())
	}
	if _, none := ls.GetBackground().(lipgloss.NoColor); !none {
		cs.Bg = toAnsiColor(ls.GetBackground())
	}
	if ls.GetBold() {
		cs.Attrs |= uv.AttrBold
	}
	if ls.GetFaint() {
		cs.Attrs |= uv.AttrFaint
	}
	if ls.GetUnderline() {
		cs.Underline = uv.UnderlineSingle
	}
	if ls.GetReverse() {
		cs.Attrs |= uv.AttrReverse
	}
	return cs
}

// iterateCells hands every leading cell in rect to transform and writes back
// whatever it returns. A nil return leaves the cell alone.
func iterateCells(buf uv.Screen, rect layout.Rectangle, transform func(*uv.Cell) *uv.Cell) {
	rect = rect.Intersect(buf.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; {
			cell := buf.CellAt(x, y)
			// Zero width cells trail a wide grapheme; writing them blanks it.
			if cell == nil || cell.Width == 0 {
				x++
				continue
			}
			if c := transform(cell); c != nil {
				buf.SetCell(x, y, c)
			}
			x += max(1, cell.Width)
		}
	}
}
