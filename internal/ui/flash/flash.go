// Package flash shows short lived notices in the bottom right corner.
package flash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
	"github.com/idursun/hitkit/internal/ui/render"
)

const (
	DefaultTimeout = 2 * time.Second
	// Limit caps how many notices are visible at once.
	Limit = 5
)

type expireMessageMsg struct {
	id uint64
}

type message struct {
	text string
	id   uint64
}

type Model struct {
	messages  []message
	style     lipgloss.Style
	timeout   time.Duration
	currentId uint64
}

func New(style lipgloss.Style, timeout time.Duration) *Model {
	return &Model{style: style, timeout: timeout}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(expireMessageMsg); ok {
		m.remove(msg.id)
	}
	return nil
}

// Add queues a notice and returns the command that expires it. Blank text
// is ignored.
func (m *Model) Add(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	m.currentId++
	id := m.currentId
	m.messages = append(m.messages, message{text: text, id: id})
	if len(m.messages) > Limit {
		m.DeleteOldest()
	}
	if m.timeout <= 0 {
		return nil
	}
	return tea.Tick(m.timeout, func(time.Time) tea.Msg {
		return expireMessageMsg{id: id}
	})
}

func (m *Model) remove(id uint64) bool {
	for i, msg := range m.messages {
		if msg.id == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Model) Any() bool {
	return len(m.messages) > 0
}

func (m *Model) LiveMessagesCount() int {
	return len(m.messages)
}

func (m *Model) DeleteOldest() {
	if len(m.messages) > 0 {
		m.messages = m.messages[1:]
	}
}

// ViewRect stacks notices upwards from the bottom right corner of box, the
// newest at the bottom.
func (m *Model) ViewRect(dl *render.List, on layer.ID, box layout.Box) {
	area := box.R
	maxWidth := area.Dx() - 4
	if maxWidth <= 0 {
		return
	}
	y := area.Max.Y
	for i := len(m.messages) - 1; i >= 0; i-- {
		content := m.render(m.messages[i].text, maxWidth)
		w, h := lipgloss.Size(content)
		y -= h
		if y < area.Min.Y {
			return
		}
		dl.AddDraw(on, layout.Cells(area.Max.X-w, y, w, h), content, 0)
	}
}

func (m *Model) render(text string, maxWidth int) string {
	if w, _ := lipgloss.Size(text); w > maxWidth {
		text = lipgloss.NewStyle().Width(maxWidth).Render(text)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		PaddingLeft(1).
		PaddingRight(1).
		BorderForeground(m.style.GetBackground()).
		Render(m.style.Render(text))
}
