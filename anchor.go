package plot

import "slices"

// PositionType defines how a Position interprets its coordinates.
type PositionType int

const (
	// PosAbsolute interprets coordinates as absolute pixels from the
	// viewport top-left corner.
	PosAbsolute PositionType = iota
	// PosViewportRatio interprets coordinates as fractions of the
	// viewport size: (0,0) is the top-left corner, (1,1) the bottom-right.
	PosViewportRatio
	// PosAxisRectRatio interprets coordinates as fractions of the axis
	// rect size.
	PosAxisRectRatio
	// PosPlotCoords interprets coordinates in the plot coordinate system
	// of a key and a value axis.
	PosPlotCoords
)

// Anchor is a named point on an item that other items' positions can
// attach to. Plain anchors are read-only: their pixel point is computed
// by the owning item from its positions. Position embeds Anchor and adds
// the writable side.
type Anchor struct {
	name     string
	plot     *Plot
	item     anchorOwner
	anchorID int
	children []*Position

	// asPosition is non-nil when this anchor is the embedded part of a
	// Position, which the parent cycle walk needs to know.
	asPosition *Position
}

// anchorOwner computes pixel points for the plain anchors of an item.
type anchorOwner interface {
	anchorPixelPoint(anchorID int) Point
}

func newAnchor(p *Plot, owner anchorOwner, name string, anchorID int) *Anchor {
	return &Anchor{name: name, plot: p, item: owner, anchorID: anchorID}
}

// Name returns the anchor's name, unique within its item.
func (an *Anchor) Name() string { return an.name }

// PixelPoint returns the anchor's position in absolute pixels.
func (an *Anchor) PixelPoint() Point {
	if an.asPosition != nil {
		return an.asPosition.PixelPoint()
	}
	return an.item.anchorPixelPoint(an.anchorID)
}

func (an *Anchor) addChild(pos *Position) {
	if !slices.Contains(an.children, pos) {
		an.children = append(an.children, pos)
	}
}

func (an *Anchor) removeChild(pos *Position) {
	if i := slices.Index(an.children, pos); i >= 0 {
		an.children = slices.Delete(an.children, i, i+1)
	}
}

// detachChildren resets the parent anchor of all attached positions to
// nil, keeping each one at its current pixel point. Called when the
// owning item is removed from the plot.
func (an *Anchor) detachChildren() {
	for _, child := range slices.Clone(an.children) {
		child.SetParentAnchor(nil, true)
	}
}

// Position is a writable anchor: it defines a point of an item (a line
// endpoint, a rect corner, a text location) in one of several coordinate
// systems, optionally relative to a parent anchor of another item.
// Changing the type or parent keeps the current pixel point, so items
// never jump when re-anchored.
type Position struct {
	Anchor

	ptype        PositionType
	parentAnchor *Anchor
	key, value   float64
	keyAxis      *Axis
	valueAxis    *Axis
}

func newPosition(p *Plot, owner anchorOwner, name string) *Position {
	pos := &Position{
		Anchor: Anchor{name: name, plot: p, item: owner, anchorID: -1},
		ptype:  PosPlotCoords,
	}
	pos.asPosition = pos
	if p != nil {
		pos.keyAxis = p.XAxis()
		pos.valueAxis = p.YAxis()
	}
	return pos
}

// Type returns how the position interprets its coordinates.
func (pos *Position) Type() PositionType { return pos.ptype }

// SetType changes the coordinate system of the position. The pixel point
// is preserved: the stored coordinates are rewritten so the position
// stays put.
func (pos *Position) SetType(t PositionType) {
	if pos.ptype == t {
		return
	}
	pixel := pos.PixelPoint()
	pos.ptype = t
	pos.SetPixelPoint(pixel)
}

// ParentAnchor returns the anchor this position is relative to, or nil.
func (pos *Position) ParentAnchor() *Anchor { return pos.parentAnchor }

// SetParentAnchor makes the position relative to the given anchor (nil
// detaches it). Self-attachment, attachment across plots and attachment
// cycles are rejected. If keepPixelPosition is set the coordinates are
// rewritten so the pixel point is unchanged; otherwise the coordinates
// are reset to zero, placing the position onto its new parent.
func (pos *Position) SetParentAnchor(anchor *Anchor, keepPixelPosition bool) bool {
	if anchor == &pos.Anchor {
		Logger().Warn("plot: cannot set position as its own parent anchor", "position", pos.name)
		return false
	}
	// walk the parent chain to rule out cycles
	for current := anchor; current != nil; {
		if current.asPosition != nil {
			if current.asPosition == pos {
				Logger().Warn("plot: circular parent anchor chain", "position", pos.name)
				return false
			}
			current = current.asPosition.parentAnchor
			continue
		}
		// current is a plain anchor; its pixel point depends on the
		// positions of its item, so attaching to an anchor of the
		// position's own item would also be circular
		if current.item == pos.item {
			Logger().Warn("plot: circular parent anchor chain through item", "position", pos.name)
			return false
		}
		break
	}

	// a position that never had a parent anchor keeps plot coordinates
	// by default; relative positioning needs pixel-based types
	if pos.parentAnchor == nil && anchor != nil && pos.ptype == PosPlotCoords {
		pos.SetType(PosAbsolute)
	}

	var oldPixel Point
	if keepPixelPosition {
		oldPixel = pos.PixelPoint()
	}
	if pos.parentAnchor != nil {
		pos.parentAnchor.removeChild(pos)
	}
	pos.parentAnchor = anchor
	if anchor != nil {
		anchor.addChild(pos)
	}
	if keepPixelPosition {
		pos.SetPixelPoint(oldPixel)
	} else {
		pos.SetCoords(0, 0)
	}
	return true
}

// Key returns the first stored coordinate.
func (pos *Position) Key() float64 { return pos.key }

// Value returns the second stored coordinate.
func (pos *Position) Value() float64 { return pos.value }

// SetCoords sets the stored coordinates, interpreted according to the
// position type and parent anchor.
func (pos *Position) SetCoords(key, value float64) {
	pos.key = key
	pos.value = value
}

// SetCoordsPoint is SetCoords with a Point.
func (pos *Position) SetCoordsPoint(pt Point) { pos.SetCoords(pt.X, pt.Y) }

// KeyAxis returns the axis used for the key coordinate in PosPlotCoords.
func (pos *Position) KeyAxis() *Axis { return pos.keyAxis }

// ValueAxis returns the axis used for the value coordinate in
// PosPlotCoords.
func (pos *Position) ValueAxis() *Axis { return pos.valueAxis }

// SetAxes sets the axes that define the plot coordinate system used when
// the position type is PosPlotCoords.
func (pos *Position) SetAxes(key, value *Axis) {
	pos.keyAxis = key
	pos.valueAxis = value
}

// PixelPoint returns the position in absolute pixels, resolving the
// coordinate system and parent anchor chain.
func (pos *Position) PixelPoint() Point {
	switch pos.ptype {
	case PosAbsolute:
		if pos.parentAnchor != nil {
			return pos.parentAnchor.PixelPoint().Add(Pt(pos.key, pos.value))
		}
		return Pt(pos.key, pos.value)

	case PosViewportRatio:
		vp := pos.plot.Viewport()
		if pos.parentAnchor != nil {
			return pos.parentAnchor.PixelPoint().Add(Pt(pos.key*vp.W, pos.value*vp.H))
		}
		return Pt(pos.key*vp.W+vp.Left(), pos.value*vp.H+vp.Top())

	case PosAxisRectRatio:
		ar := pos.plot.AxisRect()
		if pos.parentAnchor != nil {
			return pos.parentAnchor.PixelPoint().Add(Pt(pos.key*ar.W, pos.value*ar.H))
		}
		return Pt(pos.key*ar.W+ar.Left(), pos.value*ar.H+ar.Top())

	default: // PosPlotCoords
		// A missing axis leaves its coordinate as a raw pixel value.
		var x, y float64
		switch {
		case pos.keyAxis != nil && pos.valueAxis != nil:
			if pos.keyAxis.Orientation() == Horizontal {
				x = pos.keyAxis.CoordToPixel(pos.key)
				y = pos.valueAxis.CoordToPixel(pos.value)
			} else {
				y = pos.keyAxis.CoordToPixel(pos.key)
				x = pos.valueAxis.CoordToPixel(pos.value)
			}
		case pos.keyAxis != nil:
			if pos.keyAxis.Orientation() == Horizontal {
				x = pos.keyAxis.CoordToPixel(pos.key)
				y = pos.value
			} else {
				y = pos.keyAxis.CoordToPixel(pos.key)
				x = pos.value
			}
		case pos.valueAxis != nil:
			if pos.valueAxis.Orientation() == Horizontal {
				x = pos.valueAxis.CoordToPixel(pos.value)
				y = pos.key
			} else {
				y = pos.valueAxis.CoordToPixel(pos.value)
				x = pos.key
			}
		default:
			x = pos.key
			y = pos.value
		}
		return Pt(x, y)
	}
}

// SetPixelPoint sets the stored coordinates such that PixelPoint returns
// the given absolute pixel point, the exact inverse of PixelPoint for
// the current type, parent anchor and axes.
func (pos *Position) SetPixelPoint(pixel Point) {
	switch pos.ptype {
	case PosAbsolute:
		if pos.parentAnchor != nil {
			pixel = pixel.Sub(pos.parentAnchor.PixelPoint())
		}
		pos.SetCoords(pixel.X, pixel.Y)

	case PosViewportRatio:
		vp := pos.plot.Viewport()
		if pos.parentAnchor != nil {
			pixel = pixel.Sub(pos.parentAnchor.PixelPoint())
			pos.SetCoords(pixel.X/vp.W, pixel.Y/vp.H)
			return
		}
		pos.SetCoords((pixel.X-vp.Left())/vp.W, (pixel.Y-vp.Top())/vp.H)

	case PosAxisRectRatio:
		ar := pos.plot.AxisRect()
		if pos.parentAnchor != nil {
			pixel = pixel.Sub(pos.parentAnchor.PixelPoint())
			pos.SetCoords(pixel.X/ar.W, pixel.Y/ar.H)
			return
		}
		pos.SetCoords((pixel.X-ar.Left())/ar.W, (pixel.Y-ar.Top())/ar.H)

	default: // PosPlotCoords
		// Inverse of PixelPoint, including the raw-pixel fallback for a
		// missing axis.
		var key, value float64
		switch {
		case pos.keyAxis != nil && pos.valueAxis != nil:
			if pos.keyAxis.Orientation() == Horizontal {
				key = pos.keyAxis.PixelToCoord(pixel.X)
				value = pos.valueAxis.PixelToCoord(pixel.Y)
			} else {
				key = pos.keyAxis.PixelToCoord(pixel.Y)
				value = pos.valueAxis.PixelToCoord(pixel.X)
			}
		case pos.keyAxis != nil:
			if pos.keyAxis.Orientation() == Horizontal {
				key = pos.keyAxis.PixelToCoord(pixel.X)
				value = pixel.Y
			} else {
				key = pos.keyAxis.PixelToCoord(pixel.Y)
				value = pixel.X
			}
		case pos.valueAxis != nil:
			if pos.valueAxis.Orientation() == Horizontal {
				value = pos.valueAxis.PixelToCoord(pixel.X)
				key = pixel.Y
			} else {
				value = pos.valueAxis.PixelToCoord(pixel.Y)
				key = pixel.X
			}
		default:
			key = pixel.X
			value = pixel.Y
		}
		pos.SetCoords(key, value)
	}
}
