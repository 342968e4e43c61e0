package playground

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sahilm/fuzzy"
)

// filter narrows the inspector's widget list with a fuzzy query.
type filter struct {
	input textinput.Model
}

func newFilter(prompt lipgloss.Style) *filter {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter widgets..."
	ti.CharLimit = 64
	ti.SetWidth(20)
	is := ti.Styles()
	is.Focused.Prompt = prompt
	is.Blurred.Prompt = prompt
	ti.SetStyles(is)
	return &filter{input: ti}
}

func (f *filter) Focused() bool {
	return f.input.Focused()
}

func (f *filter) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur stops editing. The query stays in effect.
func (f *filter) Blur() {
	f.input.Blur()
}

func (f *filter) Reset() {
	f.input.Reset()
	f.input.Blur()
}

func (f *filter) Value() string {
	return f.input.Value()
}

func (f *filter) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// Match returns the names matching the query, best first. An empty query
// matches everything in input order.
func (f *filter) Match(names []string) fuzzy.Matches {
	if f.Value() == "" {
		matches := make(fuzzy.Matches, len(names))
		for i, name := range names {
			matches[i] = fuzzy.Match{Str: name, Index: i}
		}
		return matches
	}
	return fuzzy.Find(f.Value(), names)
}

func (f *filter) View(width int) string {
	f.input.SetWidth(max(width-2, 1))
	return f.input.View()
}
