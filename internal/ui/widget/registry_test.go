package widget

import (
	"testing"

	"github.com/idursun/hitkit/internal/ui/id"
	"github.com/idursun/hitkit/internal/ui/layer"
	"github.com/idursun/hitkit/internal/ui/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(x0, y0, x1, y1 float32) layout.Rect {
	return layout.RectFromMinMax(layout.P(x0, y0), layout.P(x1, y1))
}

func TestRects_RecordKeepsDrawOrder(t *testing.T) {
	middle := layer.New(layer.Middle, id.New("window"))
	r := NewRects()
	r.RecordWidget(id.New("a"), middle, rect(0, 0, 10, 10), Click, true)
	r.RecordWidget(id.New("b"), middle, rect(5, 5, 15, 15), Click, true)
	r.RecordWidget(id.New("bg"), layer.BackgroundID(), rect(0, 0, 100, 100), Drag, true)

	list := r.Layer(middle)
	require.Len(t, list, 2)
	assert.Equal(t, id.New("a"), list[0].ID)
	assert.Equal(t, id.New("b"), list[1].ID)
	assert.Equal(t, []layer.ID{middle, layer.BackgroundID()}, r.LayerIDs())
	assert.Equal(t, 3, r.Len())
}

func TestRects_DuplicateIDLastWriteWins(t *testing.T) {
	middle := layer.New(layer.Middle, id.New("window"))
	r := NewRects()
	r.RecordWidget(id.New("a"), middle, rect(0, 0, 10, 10), Click, true)
	r.RecordWidget(id.New("b"), middle, rect(0, 0, 10, 10), Click, true)
	r.RecordWidget(id.New("a"), middle, rect(20, 20, 30, 30), Drag, false)

	got, ok := r.Get(id.New("a"))
	require.True(t, ok)
	assert.Equal(t, rect(20, 20, 30, 30), got.InteractRect)
	assert.Equal(t, Drag, got.Sense)
	assert.False(t, got.Enabled)

	list := r.Layer(middle)
	require.Len(t, list, 2)
	assert.Equal(t, id.New("b"), list[0].ID)
	assert.Equal(t, id.New("a"), list[1].ID)
	assert.Equal(t, 2, r.Len())
}

func TestRects_DuplicateIDMovesLayer(t *testing.T) {
	win := layer.New(layer.Middle, id.New("window"))
	popup := layer.New(layer.Foreground, id.New("popup"))
	r := NewRects()
	r.RecordWidget(id.New("a"), win, rect(0, 0, 1, 1), Click, true)
	r.RecordWidget(id.New("a"), popup, rect(0, 0, 1, 1), Click, true)

	assert.Empty(t, r.Layer(win))
	assert.Len(t, r.Layer(popup), 1)
	assert.Equal(t, []layer.ID{popup}, r.LayerIDs())
}

func TestRects_Clear(t *testing.T) {
	r := NewRects()
	r.RecordWidget(id.New("a"), layer.BackgroundID(), rect(0, 0, 1, 1), Click, true)
	r.Clear()

	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Contains(id.New("a")))
	assert.Empty(t, r.Layer(layer.BackgroundID()))
	assert.Empty(t, r.LayerIDs())
}

func TestSense(t *testing.T) {
	tests := []struct {
		sense       Sense
		click, drag bool
		str         string
	}{
		{Hover, false, false, "hover"},
		{Click, true, false, "click|focusable"},
		{Drag, false, true, "drag|focusable"},
		{ClickAndDrag, true, true, "click|drag|focusable"},
		{SenseClick | SenseDrag, true, true, "click|drag"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.click, tt.sense.Click())
			assert.Equal(t, tt.drag, tt.sense.Drag())
			assert.Equal(t, tt.click && tt.drag, tt.sense.ClickAndDrag())
			assert.Equal(t, tt.str, tt.sense.String())
		})
	}
	assert.Equal(t, FocusableOnly, ClickAndDrag.Without(SenseClick|SenseDrag))
}
