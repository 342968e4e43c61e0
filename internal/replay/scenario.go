// Package replay runs scripted frames of widgets and pointer events through
// the interaction engine and reports what each frame produced.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idursun/hitkit/internal/suggest"
	"github.com/idursun/hitkit/internal/ui/id"
	"github.com/idursun/hitkit/internal/ui/input"
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
	"github.com/idursun/hitkit/internal/ui/widget"
)

// ErrScenario is wrapped by every error about scenario content.
var ErrScenario = errors.New("invalid scenario")

type Scenario struct {
	// InteractRadius overrides the configured radius when set.
	InteractRadius *float32 `toml:"interact_radius"`
	Frames         []Frame  `toml:"frames"`
}

// Frame is one pass. Widgets left out entirely repeat the previous frame's
// widgets; an empty list draws nothing.
type Frame struct {
	Time    float64  `toml:"time"`
	Raise   string   `toml:"raise"`
	Widgets []Widget `toml:"widgets"`
	Events  []Event  `toml:"events"`
	Expect  []string `toml:"expect"`
}

type Widget struct {
	ID string `toml:"id"`
	// Layer names the area. It defaults to the background area.
	Layer   string     `toml:"layer"`
	Order   string     `toml:"order"`
	Rect    [4]float32 `toml:"rect"`
	Expand  float32    `toml:"expand"`
	Sense   []string   `toml:"sense"`
	Enabled *bool      `toml:"enabled"`
}

type Event struct {
	Kind   string     `toml:"kind"`
	Pos    [2]float32 `toml:"pos"`
	Button string     `toml:"button"`
	Shift  bool       `toml:"shift"`
	Ctrl   bool       `toml:"ctrl"`
	Alt    bool       `toml:"alt"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading scenario %q: %w", path, err)
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading scenario %q: %w", path, err)
	}
	return s, nil
}

// Decode parses and checks a scenario.
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrScenario, strings.Join(keys, ", "))
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if len(s.Frames) == 0 {
		return fmt.Errorf("%w: no frames", ErrScenario)
	}
	var errs []error
	last := -1.0
	for i, f := range s.Frames {
		if f.Time < last {
			errs = append(errs, fmt.Errorf("%w: frames[%d].time goes backwards", ErrScenario, i))
		}
		last = f.Time
		for j, w := range f.Widgets {
			if _, err := w.toRect(); err != nil {
				errs = append(errs, fmt.Errorf("%w: frames[%d].widgets[%d]: %w", ErrScenario, i, j, err))
			}
		}
		for j, e := range f.Events {
			if _, err := e.toRaw(); err != nil {
				errs = append(errs, fmt.Errorf("%w: frames[%d].events[%d]: %w", ErrScenario, i, j, err))
			}
		}
	}
	return errors.Join(errs...)
}

var (
	senseNames  = []string{"click", "drag", "focusable"}
	kindNames   = []string{"move", "press", "release", "gone"}
	buttonNames = []string{"primary", "secondary", "middle", "extra1", "extra2"}
)

func orderNames() []string {
	names := make([]string, len(layer.Orders))
	for i, o := range layer.Orders {
		names[i] = o.String()
	}
	return names
}

func (w Widget) layerID() (layer.ID, error) {
	order := layer.Background
	if w.Order != "" {
		o, err := layer.ParseOrder(w.Order)
		if err != nil {
			return layer.ID{}, suggest.Unknown("order", w.Order, orderNames())
		}
		order = o
	}
	if w.Layer == "" {
		if order == layer.Background {
			return layer.BackgroundID(), nil
		}
		return layer.New(order, id.New(order.String())), nil
	}
	return layer.New(order, areaID(w.Layer)), nil
}

func areaID(name string) id.ID {
	return id.New("area").With(name)
}

func (w Widget) toRect() (widget.Rect, error) {
	if w.ID == "" {
		return widget.Rect{}, errors.New("id must be set")
	}
	layerID, err := w.layerID()
	if err != nil {
		return widget.Rect{}, err
	}
	var sense widget.Sense
	for _, name := range w.Sense {
		switch name {
		case "click":
			sense |= widget.SenseClick
		case "drag":
			sense |= widget.SenseDrag
		case "focusable":
			sense |= widget.SenseFocusable
		default:
			return widget.Rect{}, suggest.Unknown("sense", name, senseNames)
		}
	}
	r := layout.RectFromMinMax(layout.P(w.Rect[0], w.Rect[1]), layout.P(w.Rect[2], w.Rect[3]))
	if !r.IsPositive() {
		return widget.Rect{}, fmt.Errorf("rect %v has a negative size", w.Rect)
	}
	return widget.Rect{
		ID:           id.New(w.ID),
		Layer:        layerID,
		Rect:         r,
		InteractRect: r.Expand(w.Expand),
		Sense:        sense,
		Enabled:      w.Enabled == nil || *w.Enabled,
	}, nil
}

func parseButton(name string) (input.PointerButton, error) {
	if name == "" {
		return input.Primary, nil
	}
	for i, n := range buttonNames {
		if n == name {
			return input.PointerButton(i), nil
		}
	}
	return 0, suggest.Unknown("button", name, buttonNames)
}

func (e Event) toRaw() (input.RawEvent, error) {
	pos := layout.P(e.Pos[0], e.Pos[1])
	switch e.Kind {
	case "move":
		return input.PointerMoved{Pos: pos}, nil
	case "press", "release":
		button, err := parseButton(e.Button)
		if err != nil {
			return nil, err
		}
		return input.PointerButtonEvent{
			Pos:       pos,
			Button:    button,
			Pressed:   e.Kind == "press",
			Modifiers: input.Modifiers{Alt: e.Alt, Ctrl: e.Ctrl, Shift: e.Shift},
		}, nil
	case "gone":
		return input.PointerGone{}, nil
	}
	return nil, suggest.Unknown("event kind", e.Kind, kindNames)
}
