package plot

// Item is a decoration positioned via the anchor system: lines, rects,
// text labels, brackets and tracers. Unlike plottables, items carry no
// data; their geometry is defined entirely by their positions.
type Item interface {
	Layerable

	// SelectTest returns the shortest pixel distance from pos to the
	// item, or a negative value if the item cannot be hit at pos.
	SelectTest(pos Point) float64
	// Positions returns the writable anchors defining the item geometry.
	Positions() []*Position
	// Anchors returns all anchors of the item, including the positions.
	Anchors() []*Anchor
	// AnchorByName returns the anchor with the given name, or nil.
	AnchorByName(name string) *Anchor

	itemBase() *ItemBase
}

// ItemBase carries the state shared by all items: the position and
// anchor registries, clipping and selection state. Concrete items embed
// it and call initItem before creating their positions.
type ItemBase struct {
	LayerableBase

	owner          anchorOwner
	clipToAxisRect bool
	selectable     bool
	selected       bool
	positions      []*Position
	anchors        []*Anchor
}

// initItem wires the embedding item to its plot. self must be the
// embedding item itself so it can serve both the layer system and the
// anchor pixel computations.
func (ib *ItemBase) initItem(self Item, p *Plot) {
	ib.initLayerable(self, p)
	if o, ok := self.(anchorOwner); ok {
		ib.owner = o
	}
	ib.clipToAxisRect = true
	ib.selectable = true
}

func (ib *ItemBase) itemBase() *ItemBase { return ib }

// createPosition registers a new position under the given name. Called
// by concrete items during construction.
func (ib *ItemBase) createPosition(name string) *Position {
	pos := newPosition(ib.plot, ib.owner, name)
	ib.positions = append(ib.positions, pos)
	ib.anchors = append(ib.anchors, &pos.Anchor)
	return pos
}

// createAnchor registers a new read-only anchor under the given name.
// The anchorID is passed back to the item's anchorPixelPoint.
func (ib *ItemBase) createAnchor(name string, anchorID int) *Anchor {
	an := newAnchor(ib.plot, ib.owner, name, anchorID)
	ib.anchors = append(ib.anchors, an)
	return an
}

// Positions returns the writable anchors defining the item geometry.
func (ib *ItemBase) Positions() []*Position { return ib.positions }

// Anchors returns all anchors of the item, including the positions.
func (ib *ItemBase) Anchors() []*Anchor { return ib.anchors }

// AnchorByName returns the anchor with the given name, or nil.
func (ib *ItemBase) AnchorByName(name string) *Anchor {
	for _, an := range ib.anchors {
		if an.name == name {
			return an
		}
	}
	return nil
}

// ClipToAxisRect reports whether drawing is clipped to the axis rect.
func (ib *ItemBase) ClipToAxisRect() bool { return ib.clipToAxisRect }

// SetClipToAxisRect sets whether the item is clipped to the axis rect
// or may draw anywhere in the viewport.
func (ib *ItemBase) SetClipToAxisRect(clip bool) { ib.clipToAxisRect = clip }

// ClipRect returns the axis rect or the whole viewport, depending on
// SetClipToAxisRect.
func (ib *ItemBase) ClipRect() Rect {
	if ib.plot == nil {
		return Rect{}
	}
	if ib.clipToAxisRect {
		return ib.plot.AxisRect()
	}
	return ib.plot.Viewport()
}

// Selectable reports whether the user may select the item.
func (ib *ItemBase) Selectable() bool { return ib.selectable }

// SetSelectable sets whether the user may select the item.
func (ib *ItemBase) SetSelectable(on bool) { ib.selectable = on }

// Selected reports whether the item is currently selected.
func (ib *ItemBase) Selected() bool { return ib.selected }

// SetSelected sets the selection state.
func (ib *ItemBase) SetSelected(on bool) { ib.selected = on }

// ApplyDefaultAntialiasingHint applies the item antialiasing policy to
// the canvas.
func (ib *ItemBase) ApplyDefaultAntialiasingHint(c Canvas) {
	ib.applyAntialiasingHint(c, ib.Antialiased(), AEItems)
}

// anchorPixelPoint is the fallback for items without plain anchors.
func (ib *ItemBase) anchorPixelPoint(anchorID int) Point {
	Logger().Warn("plot: item has no anchor with given id", "id", anchorID)
	return Point{}
}

// detachAnchors resets the parent anchor of every position attached to
// one of this item's anchors, so removing the item leaves no dangling
// references. Detached positions keep their pixel points.
func (ib *ItemBase) detachAnchors() {
	for _, an := range ib.anchors {
		an.detachChildren()
	}
}

// rectSelectTest returns the distance from pos to the rectangle outline.
// For a filled rect, positions inside hit with a distance just below the
// selection tolerance, so outline hits from other elements win.
func rectSelectTest(rect Rect, pos Point, filledRect, selectable bool, tolerance float64) float64 {
	if !selectable {
		return -1
	}
	if filledRect && rect.Contains(pos) {
		return tolerance * 0.99
	}
	return rectBorderDistance(rect, pos)
}
