package playground

import (
	"charm.land/lipgloss/v2"
	"github.com/idursun/hitkit/internal/ui/theme"
)

type styles struct {
	background     lipgloss.Style
	canvas         lipgloss.Style
	button         lipgloss.Style
	buttonHovered  lipgloss.Style
	buttonClicked  lipgloss.Style
	window         lipgloss.Style
	windowBorder   lipgloss.Style
	title          lipgloss.Style
	titleDragged   lipgloss.Style
	knob           lipgloss.Style
	knobDragged    lipgloss.Style
	label          lipgloss.Style
	labelHovered   lipgloss.Style
	split          lipgloss.Style
	splitDragged   lipgloss.Style
	tooltip        lipgloss.Style
	inspector      lipgloss.Style
	inspectorTitle lipgloss.Style
	inspectorMatch lipgloss.Style
	flash          lipgloss.Style
}

func newStyles(p *theme.Palette) styles {
	return styles{
		background:     p.Get("background"),
		canvas:         p.Get("canvas"),
		button:         p.Get("button"),
		buttonHovered:  p.Get("button hovered"),
		buttonClicked:  p.Get("button clicked"),
		window:         p.Get("window"),
		windowBorder:   p.GetBorder("window border", lipgloss.RoundedBorder()),
		title:          p.Get("title"),
		titleDragged:   p.Get("title dragged"),
		knob:           p.Get("knob"),
		knobDragged:    p.Get("knob dragged"),
		label:          p.Get("label"),
		labelHovered:   p.Get("label hovered"),
		split:          p.Get("split"),
		splitDragged:   p.Get("split dragged"),
		tooltip:        p.Get("tooltip"),
		inspector:      p.Get("inspector"),
		inspectorTitle: p.Get("inspector title"),
		inspectorMatch: p.Get("inspector match"),
		flash:          p.Get("flash"),
	}
}
