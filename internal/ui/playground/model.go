// Package playground is a terminal demo that drives the interaction engine
// with real mouse input: a pannable canvas, buttons, movable windows, a
// resizable inspector and a tooltip.
package playground

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/idursun/hitkit/internal/config"
	"github.com/idursun/hitkit/internal/logging"
	hctx "github.com/idursun/hitkit/internal/ui/context"
	"github.com/idursun/hitkit/internal/ui/flash"
	"github.com/idursun/hitkit/internal/ui/id"
	"github.com/idursun/hitkit/internal/ui/input"
	"github.com/idursun/hitkit/internal/ui/interaction"
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
	"github.com/idursun/hitkit/internal/ui/render"
	"github.com/idursun/hitkit/internal/ui/theme"
	"github.com/idursun/hitkit/internal/ui/widget"
	"github.com/rivo/uniseg"
)

var (
	backgroundLayer = layer.BackgroundID()
	splitLayer      = layer.New(layer.PanelResizeLine, id.New("inspector split"))
	flashLayer      = layer.New(layer.Foreground, id.New("flash"))
	tooltipLayer    = layer.New(layer.Tooltip, id.New("tooltip"))
)

type button struct {
	name    string
	enabled bool
}

var buttons = []button{
	{name: "Button one", enabled: true},
	{name: "Button two", enabled: true},
	{name: "Disabled", enabled: false},
}

type Option func(*Model)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.clock = now }
}

// WithRing shows the records kept by ring in the inspector.
func WithRing(ring *logging.Ring) Option {
	return func(m *Model) { m.ring = ring }
}

type Model struct {
	ctx     *hctx.Context
	logger  *slog.Logger
	ring    *logging.Ring
	styles  styles
	areas   *layer.AreaOrder
	windows []*window
	split   *layout.Split
	filter  *filter
	flash   *flash.Model
	dl      *render.List
	// names are the debug names of every widget declared so far.
	names map[id.ID]string

	clock  func() time.Time
	start  time.Time
	width  int
	height int

	defaultPercent float64
	pan            layout.Vec
	clicks         map[string]int
	tooltip        string
	cmds           []tea.Cmd
}

func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Model {
	if logger == nil {
		logger = logging.Discard()
	}
	palette := theme.New(cfg.UI.Colors)
	st := newStyles(palette)
	m := &Model{
		ctx:            hctx.New(hctx.OptionsFromConfig(cfg.Interaction), logger),
		logger:         logger,
		styles:         st,
		areas:          layer.NewAreaOrder(),
		split:          layout.NewSplit(cfg.Playground.InspectorPercent, false),
		filter:         newFilter(st.inspectorTitle),
		flash:          flash.New(st.flash, flash.DefaultTimeout),
		dl:             render.NewList(),
		names:          make(map[id.ID]string),
		clock:          time.Now,
		defaultPercent: cfg.Playground.InspectorPercent,
		clicks:         make(map[string]int),
	}
	for _, wc := range cfg.Playground.Windows {
		w := newWindow(wc)
		m.windows = append(m.windows, w)
		m.areas.Add(w.layer)
	}
	for _, opt := range opts {
		opt(m)
	}
	m.start = m.clock()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var raw []input.RawEvent

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.MouseMsg:
		if ev, ok := input.FromMouseMsg(msg); ok {
			raw = append(raw, ev)
		}
	case tea.BlurMsg:
		raw = append(raw, input.PointerGone{})
	case tea.KeyPressMsg:
		if m.filter.Focused() {
			switch msg.String() {
			case "esc":
				m.filter.Reset()
			case "enter":
				m.filter.Blur()
			default:
				cmds = append(cmds, m.filter.Update(msg))
			}
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return tea.Quit
		case "/":
			cmds = append(cmds, m.filter.Focus())
		case "[":
			m.split.Resize(-5)
		case "]":
			m.split.Resize(5)
		case "r":
			m.reset()
		}
	default:
		cmds = append(cmds, m.flash.Update(msg))
	}

	cmds = append(cmds, m.runFrame(raw))
	return tea.Batch(cmds...)
}

func (m *Model) reset() {
	for _, w := range m.windows {
		w.reset()
	}
	m.pan = layout.Vec{}
	m.split.Percent = m.defaultPercent
	clear(m.clicks)
	m.logger.Info("playground reset")
}

func (m *Model) elapsed() float64 {
	return m.clock().Sub(m.start).Seconds()
}

// runFrame runs one pass of the engine: hit test the previous frame, then
// declare and paint every widget again.
func (m *Model) runFrame(raw []input.RawEvent) tea.Cmd {
	if m.width <= 0 || m.height <= 0 {
		return nil
	}
	order := m.areas.Sort(m.ctx.PreviousWidgets().LayerIDs())
	m.ctx.BeginFrame(m.elapsed(), raw, order)
	m.raiseOnPress()

	m.dl.Clear()
	m.tooltip = ""
	m.cmds = nil
	m.layout(layout.NewBox(layout.Cells(0, 0, m.width, m.height)))
	m.ctx.EndFrame()

	return tea.Batch(m.cmds...)
}

// raiseOnPress brings a window to the front when it is pressed anywhere.
func (m *Model) raiseOnPress() {
	if !m.ctx.Pointer().AnyPressed() {
		return
	}
	top := m.ctx.Hits().Top
	if top == nil || top.Layer.Order != layer.Middle {
		return
	}
	if m.areas.Index(top.Layer) != len(m.windows)-1 {
		m.logger.Debug("raised", "area", top.Layer.ShortDebugFormat())
	}
	m.areas.MoveToTop(top.Layer)
}

func (m *Model) layout(box layout.Box) {
	m.showSplit(box)
	main, side := m.split.Apply(box)

	m.showCanvas(main)
	m.showButtons(main)
	for _, w := range m.windows {
		m.showWindow(w, main.R)
	}
	m.showInspector(side)
	m.showTooltip(box)
	m.flash.ViewRect(m.dl, flashLayer, main)
}

func (m *Model) interact(name string, widgetID id.ID, on layer.ID, r layout.Rectangle, sense widget.Sense, enabled bool) interaction.Response {
	m.names[widgetID] = name
	return m.ctx.Interact(widgetID, on, layout.FromCells(r), sense, enabled)
}

func (m *Model) showSplit(box layout.Box) {
	splitID := id.New("inspector split")
	resp := m.interact("split", splitID, splitLayer, m.split.Handle(box), widget.Drag, true)
	if resp.Dragged {
		if pos, ok := m.ctx.Pointer().LatestPos(); ok {
			m.split.DragTo(box, pos)
		}
	}
	if resp.DragEnded {
		m.logger.Info("inspector resized", "percent", m.split.Percent)
	}
	if resp.Hovered && !resp.Dragged {
		m.tooltip = "drag to resize"
	}

	style := m.styles.split
	if resp.Dragged {
		style = m.styles.splitDragged
	}
	handle := m.split.Handle(box)
	if handle.Dy() > 0 {
		line := strings.TrimSuffix(strings.Repeat("│\n", handle.Dy()), "\n")
		m.dl.AddDraw(splitLayer, handle, style.Render(line), 0)
	}
}

func (m *Model) showCanvas(main layout.Box) {
	resp := m.interact("canvas", id.New("canvas"), backgroundLayer, main.R, widget.Drag, true)
	if resp.Dragged {
		d := m.ctx.Pointer().Delta()
		m.pan = layout.V(m.pan.X+d.X, m.pan.Y+d.Y)
	}
	if resp.DragEnded {
		m.logger.Info("canvas panned", "x", m.pan.X, "y", m.pan.Y)
	}

	r := main.R
	var b strings.Builder
	for y := r.Min.Y; y < r.Max.Y; y++ {
		if y > r.Min.Y {
			b.WriteByte('\n')
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			if mod(x-int(m.pan.X), 6) == 0 && mod(y-int(m.pan.Y), 3) == 0 {
				b.WriteString("·")
			} else {
				b.WriteByte(' ')
			}
		}
	}
	m.dl.AddDraw(backgroundLayer, r, m.styles.canvas.Render(b.String()), 0)

	status := fmt.Sprintf(" pan %g,%g ", m.pan.X, m.pan.Y)
	if r.Dy() > 0 {
		m.dl.AddDraw(backgroundLayer, layout.Cells(r.Min.X, r.Max.Y-1, uniseg.StringWidth(status), 1), m.styles.background.Render(status), 1)
	}
}

func (m *Model) showButtons(main layout.Box) {
	x, y := main.R.Min.X+2, main.R.Min.Y+1
	for _, b := range buttons {
		label := "[ " + b.name + " ]"
		w := uniseg.StringWidth(label)
		if x+w > main.R.Max.X || y >= main.R.Max.Y {
			return
		}
		rect := layout.Cells(x, y, w, 1)
		x += w + 1

		resp := m.interact(b.name, id.New("button").With(b.name), backgroundLayer, rect, widget.Click, b.enabled)
		if resp.Clicked {
			m.clicks[b.name]++
			m.cmds = append(m.cmds, m.flash.Add(clickText(b.name, resp)))
			m.logger.Info("button clicked", "button", b.name, "total", m.clicks[b.name])
		}

		style := m.styles.button
		switch {
		case resp.ContainsPointer && m.ctx.Pointer().PrimaryDown() && b.enabled:
			style = m.styles.buttonClicked
		case resp.Hovered && b.enabled:
			style = m.styles.buttonHovered
		}
		m.dl.AddDraw(backgroundLayer, rect, style.Render(label), 1)
		if !b.enabled {
			m.dl.AddDim(backgroundLayer, rect, 2)
		}

		switch {
		case resp.Hovered && b.enabled:
			m.tooltip = fmt.Sprintf("clicked %d times", m.clicks[b.name])
		case resp.ContainsPointer && !b.enabled:
			m.tooltip = "disabled widgets never click"
		}
	}
}

func clickText(name string, resp interaction.Response) string {
	switch {
	case resp.TripleClicked:
		return name + " triple clicked"
	case resp.DoubleClicked:
		return name + " double clicked"
	}
	return name + " clicked"
}

// showTooltip paints the tooltip next to the pointer. It is recorded like
// any widget, but the tooltip layer never takes part in hit testing.
func (m *Model) showTooltip(box layout.Box) {
	if m.tooltip == "" {
		return
	}
	pos, ok := m.ctx.Pointer().HoverPos()
	if !ok {
		return
	}
	content := m.styles.tooltip.Render(" " + m.tooltip + " ")
	w := uniseg.StringWidth(m.tooltip) + 2
	x := clamp(int(pos.X)+1, box.R.Min.X, box.R.Max.X-w)
	y := int(pos.Y) + 1
	if y >= box.R.Max.Y {
		y = int(pos.Y) - 1
	}
	rect := layout.Cells(x, y, w, 1)
	m.interact("tooltip", id.New("tooltip"), tooltipLayer, rect, widget.Hover, true)
	m.dl.AddDraw(tooltipLayer, rect, content, 0)
}

// View paints the display list of the last frame.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	buf := uv.NewScreenBuffer(m.width, m.height)
	m.dl.Render(buf, m.areas.Sort(m.dl.Layers()))
	return strings.ReplaceAll(buf.Render(), "\r", "")
}

func (m *Model) Context() *hctx.Context { return m.ctx }

func mod(a, b int) int {
	return ((a % b) + b) % b
}

type (
	frameTickMsg struct{}
	// program throttles painting to one View per tick. Every message still
	// runs a frame of the engine.
	program struct {
		ui                 *Model
		scheduledNextFrame bool
		render             bool
		cachedFrame        string
	}
)

func (p *program) Init() tea.Cmd {
	return p.ui.Init()
}

func (p *program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(frameTickMsg); ok {
		p.render = true
		p.scheduledNextFrame = false
		return p, nil
	}
	cmd := p.ui.Update(msg)
	if !p.scheduledNextFrame {
		p.scheduledNextFrame = true
		return p, tea.Batch(cmd, tea.Tick(8*time.Millisecond, func(time.Time) tea.Msg {
			return frameTickMsg{}
		}))
	}
	return p, cmd
}

func (p *program) View() tea.View {
	if p.render {
		p.cachedFrame = p.ui.View()
		p.render = false
	}
	v := tea.NewView(p.cachedFrame)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	v.ReportFocus = true
	return v
}

// NewProgram wraps m for tea.NewProgram.
func NewProgram(m *Model) tea.Model {
	return &program{ui: m, render: true}
}
