package replay

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/idursun/hitkit/internal/suggest"
	hctx "github.com/idursun/hitkit/internal/ui/context"
	"github.com/idursun/hitkit/internal/ui/id"
	"github.com/idursun/hitkit/internal/ui/input"
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/widget"
)

// Result summarises one frame. Widgets are named by their scenario ids.
type Result struct {
	Frame           int      `json:"frame" expr:"frame"`
	Time            float64  `json:"time" expr:"time"`
	Top             string   `json:"top" expr:"top"`
	HitClick        string   `json:"hit_click" expr:"hit_click"`
	HitDrag         string   `json:"hit_drag" expr:"hit_drag"`
	Hovered         []string `json:"hovered" expr:"hovered"`
	ContainsPointer []string `json:"contains_pointer" expr:"contains_pointer"`
	Clicked         string   `json:"clicked" expr:"clicked"`
	ClickCount      int      `json:"click_count" expr:"click_count"`
	DragStarted     string   `json:"drag_started" expr:"drag_started"`
	Dragged         string   `json:"dragged" expr:"dragged"`
	DragEnded       string   `json:"drag_ended" expr:"drag_ended"`
	Failures        []string `json:"failures,omitempty"`
}

// Failed counts the expectations that did not hold.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		n += len(r.Failures)
	}
	return n
}

type runner struct {
	ctx   *hctx.Context
	areas *layer.AreaOrder
	names map[id.ID]string
	// area name by area id
	areaNames map[id.ID]string
	widgets   []widget.Rect
}

// Run plays every frame of s through a fresh context.
func Run(s *Scenario, opts hctx.Options, logger *slog.Logger) ([]Result, error) {
	if s.InteractRadius != nil {
		opts.InteractRadius = *s.InteractRadius
	}
	r := &runner{
		ctx:       hctx.New(opts, logger),
		areas:     layer.NewAreaOrder(),
		names:     make(map[id.ID]string),
		areaNames: make(map[id.ID]string),
	}
	results := make([]Result, 0, len(s.Frames))
	for i, f := range s.Frames {
		res, err := r.frame(i, f)
		if err != nil {
			return results, fmt.Errorf("frame %d: %w", i+1, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *runner) frame(i int, f Frame) (Result, error) {
	if f.Raise != "" {
		if err := r.raise(f.Raise); err != nil {
			return Result{}, err
		}
	}
	raw := make([]input.RawEvent, 0, len(f.Events))
	for _, e := range f.Events {
		ev, err := e.toRaw()
		if err != nil {
			return Result{}, err
		}
		raw = append(raw, ev)
	}

	order := r.areas.Sort(r.ctx.PreviousWidgets().LayerIDs())
	r.ctx.BeginFrame(f.Time, raw, order)

	if f.Widgets != nil {
		r.widgets = r.widgets[:0]
		for _, w := range f.Widgets {
			rect, err := w.toRect()
			if err != nil {
				return Result{}, err
			}
			r.names[rect.ID] = w.ID
			if w.Layer != "" {
				r.areaNames[rect.Layer.Area] = w.Layer
			}
			r.widgets = append(r.widgets, rect)
		}
	}
	for _, w := range r.widgets {
		r.areas.Add(w.Layer)
		r.ctx.Record(w)
	}
	r.ctx.EndFrame()

	res := r.summarize(i+1, f.Time)
	failures, err := check(f.Expect, res)
	if err != nil {
		return Result{}, err
	}
	res.Failures = failures
	return res, nil
}

func (r *runner) raise(area string) error {
	target := areaID(area)
	found := false
	for _, l := range r.ctx.PreviousWidgets().LayerIDs() {
		if l.Area == target {
			r.areas.MoveToTop(l)
			found = true
		}
	}
	if !found {
		known := make([]string, 0, len(r.areaNames))
		for _, name := range r.areaNames {
			known = append(known, name)
		}
		slices.Sort(known)
		return suggest.Unknown("area", area, known)
	}
	return nil
}

func (r *runner) name(w *widget.Rect) string {
	if w == nil {
		return ""
	}
	if n, ok := r.names[w.ID]; ok {
		return n
	}
	return w.ID.ShortDebugFormat()
}

func (r *runner) nameSet(m map[id.ID]widget.Rect) []string {
	out := make([]string, 0, len(m))
	for _, w := range m {
		out = append(out, r.name(&w))
	}
	slices.Sort(out)
	return out
}

func (r *runner) summarize(frame int, time float64) Result {
	snap := r.ctx.Snapshot()
	hits := r.ctx.Hits()
	res := Result{
		Frame:           frame,
		Time:            time,
		Top:             r.name(hits.Top),
		HitClick:        r.name(hits.Click),
		HitDrag:         r.name(hits.Drag),
		Hovered:         r.nameSet(snap.Hovered),
		ContainsPointer: r.nameSet(snap.ContainsPointer),
		Clicked:         r.name(snap.Clicked),
		DragStarted:     r.name(snap.DragStarted),
		Dragged:         r.name(snap.Dragged),
		DragEnded:       r.name(snap.DragEnded),
	}
	if snap.Click != nil && snap.Clicked != nil {
		res.ClickCount = snap.Click.Count
	}
	return res
}
