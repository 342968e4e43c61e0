// Package theme turns the configured colours into lipgloss styles.
package theme

import (
	"image/color"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/idursun/hitkit/internal/config"
)

// Palette resolves space separated selectors such as "button hovered".
// A selector inherits from each of its shorter prefixes and suffixes, so
// "button hovered" falls back to "button" for anything it does not set.
type Palette struct {
	root  *node
	cache map[string]lipgloss.Style
}

type node struct {
	style    lipgloss.Style
	children map[string]*node
}

func New(colors map[string]config.Color) *Palette {
	p := &Palette{cache: make(map[string]lipgloss.Style)}
	p.Update(colors)
	return p
}

func (p *Palette) Update(colors map[string]config.Color) {
	for key, c := range colors {
		p.add(key, styleFrom(c))
	}
	clear(p.cache)
}

func (p *Palette) add(key string, style lipgloss.Style) {
	if p.root == nil {
		p.root = &node{children: make(map[string]*node)}
	}
	current := p.root
	for _, field := range strings.Fields(key) {
		child, ok := current.children[field]
		if !ok {
			child = &node{children: make(map[string]*node)}
			current.children[field] = child
		}
		current = child
	}
	current.style = style
}

func (p *Palette) get(fields ...string) lipgloss.Style {
	if p.root == nil {
		return lipgloss.NewStyle()
	}
	current := p.root
	for _, field := range fields {
		child, ok := current.children[field]
		if !ok {
			return lipgloss.NewStyle()
		}
		current = child
	}
	return current.style
}

func (p *Palette) Get(selector string) lipgloss.Style {
	if style, ok := p.cache[selector]; ok {
		return style
	}
	fields := strings.Fields(selector)
	style := lipgloss.NewStyle()
	// "a b c" inherits from "a b c", "a b", "a", then "b c", "b", then "c".
	for start := range fields {
		for end := len(fields); end > start; end-- {
			style = style.Inherit(p.get(fields[start:end]...))
		}
	}
	p.cache[selector] = style
	return style
}

// GetBorder is Get applied to a border of the given shape.
func (p *Palette) GetBorder(selector string, border lipgloss.Border) lipgloss.Style {
	style := p.Get(selector)
	return lipgloss.NewStyle().
		Border(border).
		Foreground(style.GetForeground()).
		Background(style.GetBackground()).
		BorderForeground(style.GetForeground()).
		BorderBackground(style.GetBackground())
}

func styleFrom(c config.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Fg != "" {
		style = style.Foreground(parseColor(c.Fg))
	}
	if c.Bg != "" {
		style = style.Background(parseColor(c.Bg))
	}
	if c.Bold != nil {
		style = style.Bold(*c.Bold)
	}
	if c.Underline != nil {
		style = style.Underline(*c.Underline)
	}
	if c.Reverse != nil {
		style = style.Reverse(*c.Reverse)
	}
	return style
}

var namedColors = map[string]string{
	"black": "0", "red": "1", "green": "2", "yellow": "3",
	"blue": "4", "magenta": "5", "cyan": "6", "white": "7",
	"bright black": "8", "bright red": "9", "bright green": "10", "bright yellow": "11",
	"bright blue": "12", "bright magenta": "13", "bright cyan": "14", "bright white": "15",
}

// parseColor accepts "#rrggbb", an ANSI 256 index, "ansi-color-N" or one of
// the sixteen named colours. Anything else is no colour.
func parseColor(c string) color.Color {
	if len(c) == 7 && c[0] == '#' {
		return lipgloss.Color(c)
	}
	code := strings.TrimPrefix(c, "ansi-color-")
	if v, err := strconv.Atoi(code); err == nil && v >= 0 && v <= 255 {
		return lipgloss.Color(code)
	}
	if code, ok := namedColors[c]; ok {
		return lipgloss.Color(code)
	}
	return lipgloss.NoColor{}
}
