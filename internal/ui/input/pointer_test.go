package input

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idursun/hitkit/internal/ui/layout"
)

func press(x, y float32) PointerButtonEvent {
	return PointerButtonEvent{Pos: layout.P(x, y), Button: Primary, Pressed: true}
}

func release(x, y float32) PointerButtonEvent {
	return PointerButtonEvent{Pos: layout.P(x, y), Button: Primary}
}

func releasedClick(t *testing.T, p *PointerState) *Click {
	t.Helper()
	for _, ev := range p.Events() {
		if r, ok := ev.(Released); ok {
			return r.Click
		}
	}
	require.Fail(t, "no release this frame")
	return nil
}

func TestPointerState_ClickInPlace(t *testing.T) {
	p := NewPointerState(DefaultOptions())
	p.BeginFrame(0, []RawEvent{press(5, 5)})

	assert.True(t, p.PrimaryDown())
	assert.True(t, p.AnyPressed())
	assert.True(t, p.CouldAnyButtonBeClick())
	assert.False(t, p.IsDecidedlyDragging())

	p.BeginFrame(0.1, []RawEvent{release(5, 5)})
	click := releasedClick(t, p)
	require.NotNil(t, click)
	assert.Equal(t, 1, click.Count)
	assert.False(t, p.AnyDown())
	assert.True(t, p.AnyReleased())
}

func TestPointerState_MovedTooFarIsDrag(t *testing.T) {
	p := NewPointerState(DefaultOptions())
	p.BeginFrame(0, []RawEvent{press(0, 0)})
	p.BeginFrame(0.05, []RawEvent{PointerMoved{Pos: layout.P(3, 0)}})
	assert.False(t, p.IsDecidedlyDragging(), "within click distance")

	p.BeginFrame(0.1, []RawEvent{PointerMoved{Pos: layout.P(10, 0)}})
	assert.True(t, p.IsDecidedlyDragging())
	assert.Equal(t, layout.V(7, 0), p.Delta())

	p.BeginFrame(0.15, []RawEvent{release(10, 0)})
	assert.Nil(t, releasedClick(t, p))
	assert.False(t, p.IsDecidedlyDragging())
}

func TestPointerState_LongPressIsDrag(t *testing.T) {
	p := NewPointerState(DefaultOptions())
	p.BeginFrame(0, []RawEvent{press(1, 1)})
	p.BeginFrame(0.5, nil)
	assert.False(t, p.IsDecidedlyDragging())

	p.BeginFrame(0.7, nil)
	assert.True(t, p.IsDecidedlyDragging())
}

func TestPointerState_ClickCount(t *testing.T) {
	p := NewPointerState(DefaultOptions())
	var counts []int
	for _, at := range []float64{0, 0.1, 0.2, 2} {
		p.BeginFrame(at, []RawEvent{press(2, 2), release(2, 2)})
		click := releasedClick(t, p)
		require.NotNil(t, click)
		counts = append(counts, click.Count)
	}
	assert.Equal(t, []int{1, 2, 3, 1}, counts)
}

func TestPointerState_Gone(t *testing.T) {
	p := NewPointerState(DefaultOptions())
	p.BeginFrame(0, []RawEvent{PointerMoved{Pos: layout.P(4, 4)}, PointerGone{}})

	_, ok := p.LatestPos()
	assert.False(t, ok)
	pos, ok := p.InteractPos()
	assert.True(t, ok, "interact position survives the frame")
	assert.Equal(t, layout.P(4, 4), pos)

	p.BeginFrame(0.1, nil)
	_, ok = p.InteractPos()
	assert.False(t, ok)
}

func TestPointerState_EventOrder(t *testing.T) {
	p := NewPointerState(DefaultOptions())
	p.BeginFrame(0, []RawEvent{PointerMoved{Pos: layout.P(1, 1)}, press(1, 1), release(1, 1)})

	require.Len(t, p.Events(), 3)
	assert.IsType(t, Moved{}, p.Events()[0])
	assert.IsType(t, Pressed{}, p.Events()[1])
	assert.IsType(t, Released{}, p.Events()[2])
}

func TestFromMouseMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want RawEvent
		ok   bool
	}{
		{
			name: "left click",
			msg:  tea.MouseClickMsg{X: 3, Y: 4, Button: tea.MouseLeft, Mod: tea.ModShift},
			want: PointerButtonEvent{Pos: layout.P(3, 4), Button: Primary, Pressed: true, Modifiers: Modifiers{Shift: true}},
			ok:   true,
		},
		{
			name: "right release",
			msg:  tea.MouseReleaseMsg{X: 1, Y: 2, Button: tea.MouseRight},
			want: PointerButtonEvent{Pos: layout.P(1, 2), Button: Secondary},
			ok:   true,
		},
		{
			name: "motion",
			msg:  tea.MouseMotionMsg{X: 7, Y: 0},
			want: PointerMoved{Pos: layout.P(7, 0)},
			ok:   true,
		},
		{
			name: "wheel",
			msg:  tea.MouseWheelMsg{X: 7, Y: 0, Button: tea.MouseWheelUp},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromMouseMsg(tt.msg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
