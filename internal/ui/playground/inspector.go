package playground

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/idursun/hitkit/internal/ui/id"
	"github.com/idursun/hitkit/internal/ui/layout"
	"github.com/idursun/hitkit/internal/ui/widget"
	"github.com/sahilm/fuzzy"
)

// logLines is how many log records the inspector keeps room for.
const logLines = 6

// showInspector lists what the engine decided this frame. The first column
// of side belongs to the split handle.
func (m *Model) showInspector(side layout.Box) {
	_, content := side.CutLeft(1)
	width, height := content.R.Dx(), content.R.Dy()
	if width <= 2 || height <= 0 {
		return
	}

	var lines []string
	add := func(s string) { lines = append(lines, s) }

	add(m.styles.inspectorTitle.Render("Inspector"))
	add(m.filter.View(width))
	for _, l := range m.snapshotLines() {
		add(m.styles.inspector.Render(l))
	}

	add("")
	add(m.styles.inspectorTitle.Render("Widgets"))
	names, rects := m.previousWidgets()
	matches := m.filter.Match(names)
	room := height - len(lines) - 2
	if m.ring != nil {
		room -= logLines + 2
	}
	for i, match := range matches {
		if i >= room {
			add(m.styles.inspector.Render(fmt.Sprintf("… %d more", len(matches)-i)))
			break
		}
		add(m.widgetLine(match, rects[match.Index]))
	}

	if m.ring != nil {
		add("")
		add(m.styles.inspectorTitle.Render("Log"))
		for _, e := range m.ring.Recent(logLines) {
			add(m.styles.inspector.Render(e.Time.Format("15:04:05") + " " + e.Message + formatAttrs(e.Attrs)))
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	m.dl.AddDraw(backgroundLayer, content.R, strings.Join(lines, "\n"), 2)
}

func (m *Model) snapshotLines() []string {
	snap := m.ctx.Snapshot()
	hits := m.ctx.Hits()

	pointer := "gone"
	if pos, ok := m.ctx.Pointer().LatestPos(); ok {
		pointer = pos.String()
	}
	press := "-"
	if origin, ok := m.ctx.Pointer().PressOrigin(); ok {
		start, _ := m.ctx.Pointer().PressStartTime()
		press = fmt.Sprintf("%s at %.2fs", origin, start)
	}
	clicked := m.widgetName(snap.Clicked)
	if snap.Clicked != nil && snap.Click != nil {
		clicked = fmt.Sprintf("%s x%d", clicked, snap.Click.Count)
	}
	return []string{
		fmt.Sprintf("frame %d  pointer %s", m.ctx.Frame(), pointer),
		"press    " + press,
		"top      " + m.widgetName(hits.Top),
		"click    " + m.widgetName(hits.Click),
		"drag     " + m.widgetName(hits.Drag),
		"closest  " + m.widgetName(hits.ClosestInteractive),
		"clicked  " + clicked,
		"started  " + m.widgetName(snap.DragStarted),
		"dragged  " + m.widgetName(snap.Dragged),
		"ended    " + m.widgetName(snap.DragEnded),
		"hovered  " + strings.Join(m.nameSet(snap.Hovered), ", "),
		"contains " + strings.Join(m.nameSet(snap.ContainsPointer), ", "),
	}
}

// previousWidgets returns the widgets this frame was hit tested against,
// back to front.
func (m *Model) previousWidgets() ([]string, []widget.Rect) {
	prev := m.ctx.PreviousWidgets()
	var names []string
	var rects []widget.Rect
	for _, l := range m.areas.Sort(prev.LayerIDs()) {
		for _, w := range prev.Layer(l) {
			names = append(names, m.name(w.ID))
			rects = append(rects, w)
		}
	}
	return names, rects
}

func (m *Model) widgetLine(match fuzzy.Match, w widget.Rect) string {
	var b strings.Builder
	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(m.styles.inspectorMatch.Render(string(r)))
		} else {
			b.WriteString(m.styles.inspector.Render(string(r)))
		}
	}
	snap := m.ctx.Snapshot()
	var flags []string
	if snap.IsHovered(w.ID) {
		flags = append(flags, "hovered")
	}
	if snap.IsDragged(w.ID) {
		flags = append(flags, "dragged")
	}
	if !w.Enabled {
		flags = append(flags, "disabled")
	}
	if !w.Sense.Interactive() {
		flags = append(flags, "inert")
	}
	tail := fmt.Sprintf(" %s %s", w.Layer.Order, w.Sense)
	if len(flags) > 0 {
		tail += " " + strings.Join(flags, " ")
	}
	return b.String() + m.styles.inspector.Render(tail)
}

func (m *Model) name(widgetID id.ID) string {
	if n, ok := m.names[widgetID]; ok {
		return n
	}
	return widgetID.ShortDebugFormat()
}

func (m *Model) widgetName(w *widget.Rect) string {
	if w == nil {
		return "-"
	}
	return m.name(w.ID)
}

func (m *Model) nameSet(set map[id.ID]widget.Rect) []string {
	out := make([]string, 0, len(set))
	for widgetID := range set {
		out = append(out, m.name(widgetID))
	}
	slices.Sort(out)
	return out
}

func formatAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, attrs[k])
	}
	return b.String()
}
