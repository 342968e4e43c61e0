package layer

import (
	"fmt"

	"github.com/idursun/hitkit/internal/ui/id"
)

// Order is the coarse paint and interaction category of a layer.
// Layers of a lower Order are always behind layers of a higher one.
type Order int

const (
	// Background is painted behind all floating windows.
	Background Order = iota
	// PanelResizeLine sits between panels and windows.
	PanelResizeLine
	// Middle holds normal movable windows, reordered by interaction.
	Middle
	// Foreground holds popups and menus, always above windows.
	Foreground
	// Tooltip floats above everything else and never receives interaction.
	Tooltip
	// Debug is painted last.
	Debug
)

// Orders lists every Order back-to-front.
var Orders = []Order{Background, PanelResizeLine, Middle, Foreground, Tooltip, Debug}

// AllowInteraction reports whether widgets on layers of this order can be
// hovered, clicked or dragged.
func (o Order) AllowInteraction() bool {
	return o != Tooltip
}

func (o Order) String() string {
	switch o {
	case Background:
		return "background"
	case PanelResizeLine:
		return "panel_resize_line"
	case Middle:
		return "middle"
	case Foreground:
		return "foreground"
	case Tooltip:
		return "tooltip"
	case Debug:
		return "debug"
	}
	return fmt.Sprintf("order(%d)", int(o))
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(s string) (Order, error) {
	for _, o := range Orders {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown layer order %q", s)
}

// ID identifies a layer: an area on a given order.
type ID struct {
	Order Order
	Area  id.ID
}

func New(order Order, area id.ID) ID {
	return ID{Order: order, Area: area}
}

// BackgroundID is the layer of the background area.
func BackgroundID() ID {
	return ID{Order: Background, Area: id.Background}
}

// DebugID is the layer debug overlays paint on.
func DebugID() ID {
	return ID{Order: Debug, Area: id.New("debug")}
}

func (l ID) AllowInteraction() bool {
	return l.Order.AllowInteraction()
}

func (l ID) ShortDebugFormat() string {
	return fmt.Sprintf("%s %s", l.Order, l.Area.ShortDebugFormat())
}
