package plot

import "math"

// Interactions is a bit set of the user interactions a plot responds to.
type Interactions uint8

const (
	// InteractRangeDrag enables dragging axis ranges with the mouse.
	InteractRangeDrag Interactions = 1 << iota
	// InteractRangeZoom enables zooming axis ranges with the mouse wheel.
	InteractRangeZoom
	// InteractSelectPlottables enables clicking plottables to select them.
	InteractSelectPlottables
	// InteractSelectAxes enables clicking axis parts to select them.
	InteractSelectAxes
	// InteractSelectItems enables clicking items to select them.
	InteractSelectItems
	// InteractSelectLegend enables clicking the legend to select it.
	InteractSelectLegend
)

// MouseButton identifies which button a mouse event carries.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// MouseEvent is a mouse press, move or release delivered to the plot.
type MouseEvent struct {
	// Pos is the event position in absolute pixels.
	Pos Point
	// Button is the pressed button.
	Button MouseButton
	// Additive marks multi-select modifier presses: clicked elements
	// toggle instead of replacing the selection.
	Additive bool
}

// WheelEvent is a mouse wheel turn delivered to the plot.
type WheelEvent struct {
	// Pos is the cursor position in absolute pixels.
	Pos Point
	// Delta is the wheel rotation in eighths of a degree; one standard
	// notch is 120.
	Delta float64
}

// clickDistance is the maximal press-to-release distance for a release
// to still count as a click.
const clickDistance = 5

// interactState carries the transient state of an ongoing mouse drag.
type interactState struct {
	dragging           bool
	mousePressPos      Point
	dragStartHorzRange Range
	dragStartVertRange Range
	aaBackup           AntialiasedElements
	notAABackup        AntialiasedElements
}

// SetInteractions sets which user interactions the plot responds to.
func (p *Plot) SetInteractions(i Interactions) { p.interactions = i }

// Interactions returns the enabled user interactions.
func (p *Plot) Interactions() Interactions { return p.interactions }

// SetRangeDrag sets along which orientations dragging moves the axis
// ranges.
func (p *Plot) SetRangeDrag(horizontal, vertical bool) {
	p.rangeDragHorz = horizontal
	p.rangeDragVert = vertical
}

// SetRangeZoom sets along which orientations the wheel zooms the axis
// ranges.
func (p *Plot) SetRangeZoom(horizontal, vertical bool) {
	p.rangeZoomHorz = horizontal
	p.rangeZoomVert = vertical
}

// SetRangeDragAxes sets which axes are dragged horizontally and
// vertically.
func (p *Plot) SetRangeDragAxes(horizontal, vertical *Axis) {
	p.rangeDragAxisHorz = horizontal
	p.rangeDragAxisVert = vertical
}

// SetRangeZoomAxes sets which axes are zoomed horizontally and
// vertically.
func (p *Plot) SetRangeZoomAxes(horizontal, vertical *Axis) {
	p.rangeZoomAxisHorz = horizontal
	p.rangeZoomAxisVert = vertical
}

// SetRangeZoomFactor sets the zoom factor applied per wheel notch when
// zooming in. Factors below one zoom in on forward wheel turns, the
// usual direction.
func (p *Plot) SetRangeZoomFactor(horizontal, vertical float64) {
	p.rangeZoomFactorHorz = horizontal
	p.rangeZoomFactorVert = vertical
}

// SetNoAntialiasingOnDrag sets whether all antialiasing is disabled
// while an axis range drag is in flight, trading looks for speed.
func (p *Plot) SetNoAntialiasingOnDrag(on bool) { p.noAntialiasingOnDrag = on }

// OnSelectionChanged registers a handler invoked after a click changed
// any selection state.
func (p *Plot) OnSelectionChanged(handler func()) {
	p.selectionChanged = append(p.selectionChanged, handler)
}

// MousePress starts an axis range drag when enabled and the press is
// inside the axis rect.
func (p *Plot) MousePress(ev MouseEvent) {
	p.interact.mousePressPos = ev.Pos
	if p.interactions&InteractRangeDrag == 0 || ev.Button != MouseLeft {
		return
	}
	if !p.axisRect.Contains(ev.Pos) {
		return
	}
	p.interact.dragging = true
	if p.rangeDragAxisHorz != nil {
		p.interact.dragStartHorzRange = p.rangeDragAxisHorz.Range()
	}
	if p.rangeDragAxisVert != nil {
		p.interact.dragStartVertRange = p.rangeDragAxisVert.Range()
	}
	if p.noAntialiasingOnDrag {
		p.interact.aaBackup = p.antialiasedElements
		p.interact.notAABackup = p.notAntialiasedElements
		p.antialiasedElements = AENone
		p.notAntialiasedElements = AEAll
	}
}

// MouseMove moves the dragged axis ranges. Linear axes shift by the
// dragged coordinate distance; logarithmic axes scale by the dragged
// coordinate ratio, so the drag feels uniform across decades.
func (p *Plot) MouseMove(ev MouseEvent) {
	if !p.interact.dragging {
		return
	}
	if p.rangeDragHorz && p.rangeDragAxisHorz != nil {
		p.dragAxis(p.rangeDragAxisHorz, p.interact.dragStartHorzRange, p.interact.mousePressPos, ev.Pos)
	}
	if p.rangeDragVert && p.rangeDragAxisVert != nil {
		p.dragAxis(p.rangeDragAxisVert, p.interact.dragStartVertRange, p.interact.mousePressPos, ev.Pos)
	}
	p.Replot()
}

// dragAxis applies one drag motion to one axis, relative to the range at
// drag start.
func (p *Plot) dragAxis(a *Axis, startRange Range, pressPos, pos Point) {
	press, cur := pressPos.X, pos.X
	if a.Orientation() == Vertical {
		press, cur = pressPos.Y, pos.Y
	}
	if a.ScaleType() == ScaleLinear {
		diff := a.PixelToCoord(press) - a.PixelToCoord(cur)
		a.SetRange(Range{Lower: startRange.Lower + diff, Upper: startRange.Upper + diff})
		return
	}
	cc := a.PixelToCoord(cur)
	if cc == 0 {
		return
	}
	factor := a.PixelToCoord(press) / cc
	a.SetRange(Range{Lower: startRange.Lower * factor, Upper: startRange.Upper * factor})
}

// MouseRelease ends a drag; releases close to the press position count
// as clicks and run the selection pass.
func (p *Plot) MouseRelease(ev MouseEvent) {
	wasDragging := p.interact.dragging
	p.interact.dragging = false
	if wasDragging && p.noAntialiasingOnDrag {
		p.antialiasedElements = p.interact.aaBackup
		p.notAntialiasedElements = p.interact.notAABackup
		p.Replot()
	}
	if ev.Pos.Distance(p.interact.mousePressPos) <= clickDistance {
		p.handleClick(ev)
	}
}

// Wheel zooms the zoom axes about the coordinate under the cursor, so
// that coordinate stays put while the range contracts or expands around
// it. The factor is exponentiated with the number of wheel notches, and
// turning the wheel back by the same amount exactly undoes a zoom.
func (p *Plot) Wheel(ev WheelEvent) {
	if p.interactions&InteractRangeZoom == 0 {
		return
	}
	if !p.axisRect.Contains(ev.Pos) {
		return
	}
	wheelSteps := ev.Delta / 120
	if p.rangeZoomHorz && p.rangeZoomAxisHorz != nil {
		factor := math.Pow(p.rangeZoomFactorHorz, wheelSteps)
		a := p.rangeZoomAxisHorz
		center := ev.Pos.X
		if a.Orientation() == Vertical {
			center = ev.Pos.Y
		}
		a.ScaleRange(factor, a.PixelToCoord(center))
	}
	if p.rangeZoomVert && p.rangeZoomAxisVert != nil {
		factor := math.Pow(p.rangeZoomFactorVert, wheelSteps)
		a := p.rangeZoomAxisVert
		center := ev.Pos.Y
		if a.Orientation() == Horizontal {
			center = ev.Pos.X
		}
		a.ScaleRange(factor, a.PixelToCoord(center))
	}
	p.Replot()
}

// handleClick runs the selection pass for a click: the topmost hit among
// legend entries, legend box, axis parts, plottables and items gets
// selected. Without the additive modifier all other selections clear;
// with it the hit element's selection toggles.
func (p *Plot) handleClick(ev MouseEvent) {
	changed := false

	var hitLegendItem *PlottableLegendItem
	hitLegendBox := false
	if p.interactions&InteractSelectLegend != 0 {
		hitLegendItem = p.legend.SelectTestItem(ev.Pos)
		hitLegendBox = hitLegendItem == nil && p.legend.SelectTestBox(ev.Pos)
	}
	var hitAxis *Axis
	var hitAxisPart AxisParts
	if hitLegendItem == nil && !hitLegendBox && p.interactions&InteractSelectAxes != 0 {
		for _, a := range p.axes() {
			if part := a.SelectTest(ev.Pos); part != PartNone && a.selectableParts&part != 0 {
				hitAxis, hitAxisPart = a, part
				break
			}
		}
	}
	var hitPlottable Plottable
	if hitLegendItem == nil && !hitLegendBox && hitAxis == nil && p.interactions&InteractSelectPlottables != 0 {
		hitPlottable = p.PlottableAtPos(ev.Pos)
	}
	var hitItem Item
	if hitLegendItem == nil && !hitLegendBox && hitAxis == nil && hitPlottable == nil &&
		p.interactions&InteractSelectItems != 0 {
		hitItem = p.ItemAtPos(ev.Pos)
	}

	if !ev.Additive {
		changed = p.clearSelectionExcept(hitLegendItem, hitAxis, hitPlottable, hitItem) || changed
	}

	switch {
	case hitLegendItem != nil:
		hitLegendItem.SetSelected(!ev.Additive || !hitLegendItem.Selected())
		changed = true
	case hitLegendBox:
		sel := p.legend.selectedParts&LegendPartBox != 0
		if !ev.Additive || !sel {
			p.legend.selectedParts |= LegendPartBox
		} else {
			p.legend.selectedParts &^= LegendPartBox
		}
		changed = true
	case hitAxis != nil:
		if ev.Additive && hitAxis.selectedParts&hitAxisPart != 0 {
			hitAxis.selectedParts &^= hitAxisPart
		} else if ev.Additive {
			hitAxis.selectedParts |= hitAxisPart
		} else {
			hitAxis.selectedParts = hitAxisPart
		}
		changed = true
	case hitPlottable != nil:
		hitPlottable.plottableBase().SetSelected(!ev.Additive || !hitPlottable.plottableBase().Selected())
		changed = true
	case hitItem != nil:
		hitItem.itemBase().SetSelected(!ev.Additive || !hitItem.itemBase().Selected())
		changed = true
	}

	if changed {
		for _, h := range p.selectionChanged {
			h()
		}
		p.Replot()
	}
}

// clearSelectionExcept deselects every selectable element except the
// given hits and reports whether anything was selected before.
func (p *Plot) clearSelectionExcept(li *PlottableLegendItem, ax *Axis, pl Plottable, it Item) bool {
	changed := false
	for _, a := range p.axes() {
		if a != ax && a.selectedParts != PartNone {
			a.selectedParts = PartNone
			changed = true
		}
	}
	for _, cand := range p.plottables {
		if cand != pl && cand.plottableBase().Selected() {
			cand.plottableBase().SetSelected(false)
			changed = true
		}
	}
	for _, cand := range p.items {
		if cand != it && cand.itemBase().Selected() {
			cand.itemBase().SetSelected(false)
			changed = true
		}
	}
	for _, cand := range p.legend.items {
		if cand != li && cand.selected {
			cand.selected = false
			changed = true
		}
	}
	if p.legend.selectedParts&LegendPartBox != 0 {
		p.legend.selectedParts = LegendPartNone
		changed = true
	}
	return changed
}
