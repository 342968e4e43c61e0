package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idursun/hitkit/internal/ui/hit"
	"github.com/idursun/hitkit/internal/ui/id"
	"github.com/idursun/hitkit/internal/ui/input"
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
	"github.com/idursun/hitkit/internal/ui/widget"
	"github.com/idursun/hitkit/test"
)

type fakePointer struct {
	events   []input.PointerEvent
	dragging bool
}

func (f fakePointer) Events() []input.PointerEvent  { return f.events }
func (f fakePointer) IsDecidedlyDragging() bool     { return f.dragging }
func (f fakePointer) LatestPos() (layout.Pos, bool) { return layout.Pos{}, false }

var (
	middle = test.Layer("window", layer.Middle)
	order  = layer.Stack{middle}
	at     = layout.P(5, 5)
)

func pressed() input.PointerEvent {
	return input.Pressed{Pos: at, Button: input.Primary}
}

func releasedWithClick(count int) input.PointerEvent {
	return input.Released{Click: &input.Click{Pos: at, Count: count}, Button: input.Primary}
}

func releasedNoClick() input.PointerEvent {
	return input.Released{Button: input.Primary}
}

type frame struct {
	rects *widget.Rects
	state State
	prev  Snapshot
}

func (f *frame) step(p fakePointer) Snapshot {
	hits := hit.Test(f.rects, order, nil, at, 5)
	f.prev = Interact(f.prev, f.rects, hits, p, &f.state)
	return f.prev
}

func TestInteract_PressReleaseClicks(t *testing.T) {
	button := test.Widget("button", middle, test.Box(0, 0, 10, 10), widget.Click)
	f := &frame{rects: test.Rects(button)}

	snap := f.step(fakePointer{events: []input.PointerEvent{pressed()}})
	assert.Nil(t, snap.Clicked)
	clickID, ok := f.state.ClickID()
	require.True(t, ok)
	assert.Equal(t, button.ID, clickID)

	snap = f.step(fakePointer{events: []input.PointerEvent{releasedWithClick(1)}})
	require.NotNil(t, snap.Clicked)
	assert.Equal(t, button.ID, snap.Clicked.ID)
	assert.True(t, snap.Response(button.ID).Clicked)
	_, ok = f.state.ClickID()
	assert.False(t, ok, "release clears the press")

	snap = f.step(fakePointer{})
	assert.Nil(t, snap.Clicked, "clicked lasts one frame")
}

func TestInteract_ReleaseWithoutClick(t *testing.T) {
	button := test.Widget("button", middle, test.Box(0, 0, 10, 10), widget.Click)
	f := &frame{rects: test.Rects(button)}

	f.step(fakePointer{events: []input.PointerEvent{pressed()}})
	snap := f.step(fakePointer{events: []input.PointerEvent{releasedNoClick()}})
	assert.Nil(t, snap.Clicked)
	_, ok := f.state.ClickID()
	assert.False(t, ok)
}

func TestInteract_DragIsEdgeTriggered(t *testing.T) {
	handle := test.Widget("handle", middle, test.Box(0, 0, 10, 10), widget.Drag)
	f := &frame{rects: test.Rects(handle)}

	snap := f.step(fakePointer{events: []input.PointerEvent{pressed()}})
	require.NotNil(t, snap.DragStarted)
	assert.Equal(t, handle.ID, snap.DragStarted.ID)
	assert.True(t, snap.IsDragged(handle.ID))

	snap = f.step(fakePointer{})
	assert.Nil(t, snap.DragStarted)
	assert.Nil(t, snap.DragEnded)
	assert.True(t, snap.IsDragged(handle.ID))

	snap = f.step(fakePointer{events: []input.PointerEvent{releasedNoClick()}})
	assert.Nil(t, snap.Dragged)
	require.NotNil(t, snap.DragEnded)
	assert.Equal(t, handle.ID, snap.DragEnded.ID)

	snap = f.step(fakePointer{})
	assert.Nil(t, snap.DragEnded, "drag ended lasts one frame")
}

func TestInteract_DisappearanceEndsDrag(t *testing.T) {
	handle := test.Widget("handle", middle, test.Box(0, 0, 10, 10), widget.Drag)
	f := &frame{rects: test.Rects(handle)}
	f.step(fakePointer{events: []input.PointerEvent{pressed()}})

	f.rects = widget.NewRects()
	snap := f.step(fakePointer{})
	assert.Nil(t, snap.Dragged)
	assert.True(t, snap.IsDragEnded(handle.ID))
	_, ok := f.state.DragID()
	assert.False(t, ok, "stale drag id is cleared")
}

func TestInteract_DualSenseWaitsForDrag(t *testing.T) {
	knob := test.Widget("knob", middle, test.Box(0, 0, 10, 10), widget.ClickAndDrag)
	f := &frame{rects: test.Rects(knob)}

	var started, ended int
	count := func(s Snapshot) {
		if s.IsDragStarted(knob.ID) {
			started++
		}
		if s.IsDragEnded(knob.ID) {
			ended++
		}
		assert.Nil(t, s.Clicked)
	}

	snap := f.step(fakePointer{events: []input.PointerEvent{pressed()}})
	assert.Nil(t, snap.Dragged, "could still be a click")
	count(snap)

	for range 3 {
		count(f.step(fakePointer{dragging: true}))
	}
	assert.True(t, f.prev.IsDragged(knob.ID))

	count(f.step(fakePointer{events: []input.PointerEvent{releasedNoClick()}}))
	assert.Equal(t, 1, started)
	assert.Equal(t, 1, ended)
}

func TestInteract_DualSenseClick(t *testing.T) {
	knob := test.Widget("knob", middle, test.Box(0, 0, 10, 10), widget.ClickAndDrag)
	f := &frame{rects: test.Rects(knob)}

	f.step(fakePointer{events: []input.PointerEvent{pressed()}})
	snap := f.step(fakePointer{events: []input.PointerEvent{releasedWithClick(2)}})
	assert.True(t, snap.IsClicked(knob.ID))
	assert.Nil(t, snap.DragStarted)
	assert.Nil(t, snap.DragEnded)

	r := snap.Response(knob.ID)
	assert.True(t, r.DoubleClicked)
	assert.False(t, r.TripleClicked)
}

func TestInteract_StaleClickIDCleared(t *testing.T) {
	button := test.Widget("button", middle, test.Box(0, 0, 10, 10), widget.Click)
	f := &frame{rects: test.Rects(button)}
	f.step(fakePointer{events: []input.PointerEvent{pressed()}})

	f.rects = widget.NewRects()
	f.step(fakePointer{})
	_, ok := f.state.ClickID()
	assert.False(t, ok)

	f.rects = test.Rects(button)
	snap := f.step(fakePointer{events: []input.PointerEvent{releasedWithClick(1)}})
	assert.Nil(t, snap.Clicked, "the press was forgotten")
}

func TestInteract_Hovered(t *testing.T) {
	label := test.Widget("label", middle, test.Box(0, 0, 20, 20), widget.Hover)
	button := test.Widget("button", middle, test.Box(0, 0, 10, 10), widget.Click)
	handle := test.Widget("handle", middle, test.Box(30, 30, 40, 40), widget.Drag)
	canvas := test.Widget("canvas", middle, test.Box(0, 0, 50, 50), widget.Drag)
	other := test.Widget("other", middle, test.Box(2, 2, 8, 8), widget.Click)

	tests := []struct {
		name    string
		rects   *widget.Rects
		hits    hit.Hits
		state   State
		want    []id.ID
		pointer fakePointer
	}{
		{
			name:  "topmost contained when nothing is interactive",
			rects: test.Rects(label),
			hits:  hit.Hits{ContainsPointer: []widget.Rect{label}, Top: &label},
			want:  []id.ID{label.ID},
		},
		{
			name:  "click candidate",
			rects: test.Rects(label, button),
			hits:  hit.Hits{ContainsPointer: []widget.Rect{label, button}, Top: &button, Click: &button},
			want:  []id.ID{button.ID},
		},
		{
			name:  "click and drag candidates are both hovered",
			rects: test.Rects(canvas, button),
			hits:  hit.Hits{ContainsPointer: []widget.Rect{canvas, button}, Top: &button, Click: &button, Drag: &canvas},
			want:  []id.ID{canvas.ID, button.ID},
		},
		{
			name:    "clicked widget hides the candidates",
			rects:   test.Rects(button, other),
			hits:    hit.Hits{ContainsPointer: []widget.Rect{button, other}, Top: &other, Click: &other},
			state:   State{clickID: button.ID},
			pointer: fakePointer{events: []input.PointerEvent{releasedWithClick(1)}},
			want:    []id.ID{button.ID},
		},
		{
			name:  "dragged widget wins over what is under the pointer",
			rects: test.Rects(label, button, handle),
			hits:  hit.Hits{ContainsPointer: []widget.Rect{label, button}, Top: &button, Click: &button},
			state: State{dragID: handle.ID},
			want:  []id.ID{handle.ID},
		},
		{
			name:  "nothing",
			rects: test.Rects(label),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.state
			snap := Interact(Snapshot{}, tt.rects, tt.hits, tt.pointer, &state)
			var got []id.ID
			for k := range snap.Hovered {
				got = append(got, k)
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestInteract_ContainsPointerIncludesCandidates(t *testing.T) {
	label := test.Widget("label", middle, test.Box(0, 0, 20, 20), widget.Hover)
	button := test.Widget("button", middle, test.Box(30, 0, 40, 10), widget.Click)
	hits := hit.Hits{ContainsPointer: []widget.Rect{label}, Top: &label, Click: &button}

	var state State
	snap := Interact(Snapshot{}, test.Rects(label, button), hits, fakePointer{}, &state)
	assert.True(t, snap.IsContainsPointer(label.ID))
	assert.True(t, snap.IsContainsPointer(button.ID))
	assert.Len(t, snap.ContainsPointer, 2)
}
