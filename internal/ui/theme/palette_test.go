package theme

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/idursun/hitkit/internal/config"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestPalette_Inherits(t *testing.T) {
	p := New(map[string]config.Color{
		"button":         {Fg: "15", Bg: "4"},
		"button hovered": {Bg: "12", Bold: boolPtr(true)},
	})

	hovered := p.Get("button hovered")
	assert.Equal(t, lipgloss.Color("15"), hovered.GetForeground())
	assert.Equal(t, lipgloss.Color("12"), hovered.GetBackground())
	assert.True(t, hovered.GetBold())

	plain := p.Get("button")
	assert.Equal(t, lipgloss.Color("4"), plain.GetBackground())
	assert.False(t, plain.GetBold())
}

func TestPalette_UnknownSelector(t *testing.T) {
	p := New(nil)
	style := p.Get("nothing here")
	assert.Equal(t, lipgloss.NoColor{}, style.GetForeground())
	assert.False(t, style.GetBold())
}

func TestPalette_UpdateInvalidatesCache(t *testing.T) {
	p := New(map[string]config.Color{"label": {Fg: "7"}})
	assert.Equal(t, lipgloss.Color("7"), p.Get("label").GetForeground())

	p.Update(map[string]config.Color{"label": {Fg: "9"}})
	assert.Equal(t, lipgloss.Color("9"), p.Get("label").GetForeground())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"#ff0000", lipgloss.Color("#ff0000")},
		{"12", lipgloss.Color("12")},
		{"ansi-color-200", lipgloss.Color("200")},
		{"bright cyan", lipgloss.Color("14")},
		{"red", lipgloss.Color("1")},
		{"256", lipgloss.NoColor{}},
		{"chartreuse", lipgloss.NoColor{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseColor(tt.in))
		})
	}
}
