package plot

import (
	"image/color"
	"math"
	"slices"
)

// LegendPosition defines where the legend sits inside the axis rect.
type LegendPosition int

const (
	// LegendManual places the legend at the position set with
	// Legend.SetPosition.
	LegendManual LegendPosition = iota
	// LegendTopLeft places the legend in the top-left corner.
	LegendTopLeft
	// LegendTop centers the legend at the top edge.
	LegendTop
	// LegendTopRight places the legend in the top-right corner.
	LegendTopRight
	// LegendRight centers the legend at the right edge.
	LegendRight
	// LegendBottomRight places the legend in the bottom-right corner.
	LegendBottomRight
	// LegendBottom centers the legend at the bottom edge.
	LegendBottom
	// LegendBottomLeft places the legend in the bottom-left corner.
	LegendBottomLeft
	// LegendLeft centers the legend at the left edge.
	LegendLeft
)

// LegendParts is a bit set of the selectable regions of the legend.
type LegendParts uint8

const (
	// LegendPartNone selects no part.
	LegendPartNone LegendParts = 0
	// LegendPartBox is the legend border box.
	LegendPartBox LegendParts = 1 << iota
	// LegendPartItems are the individual legend entries.
	LegendPartItems
)

// PlottableLegendItem is one legend entry: the icon and name of a
// plottable.
type PlottableLegendItem struct {
	plottable  Plottable
	selectable bool
	selected   bool

	// rect is the pixel box of the entry, valid after the last draw.
	rect Rect
}

// Plottable returns the plottable this entry represents.
func (li *PlottableLegendItem) Plottable() Plottable { return li.plottable }

// Selectable reports whether the user may select the entry.
func (li *PlottableLegendItem) Selectable() bool { return li.selectable }

// SetSelectable sets whether the user may select the entry.
func (li *PlottableLegendItem) SetSelectable(on bool) { li.selectable = on }

// Selected reports whether the entry is currently selected.
func (li *PlottableLegendItem) Selected() bool { return li.selected }

// SetSelected sets the selection state.
func (li *PlottableLegendItem) SetSelected(on bool) { li.selected = on }

// Legend lists the plottables of its plot, one entry per plottable with
// an icon and the plottable name. It is a layerable on the "legend"
// layer and hidden by default.
type Legend struct {
	LayerableBase

	items    []*PlottableLegendItem
	position LegendPosition
	manual   Point

	borderPen         Pen
	brush             Brush
	font              Font
	textColor         color.Color
	selectedFont      Font
	selectedColor     color.Color
	selectedBorderPen Pen

	iconSize        Point
	iconTextPadding float64
	padding         float64
	margin          float64

	selectableParts LegendParts
	selectedParts   LegendParts

	// box is the legend's pixel rect, valid after the last draw.
	box Rect
}

func newLegend(p *Plot) *Legend {
	l := &Legend{
		position:        LegendTopRight,
		borderPen:       SolidPen(color.Black),
		brush:           SolidBrush(color.White),
		font:            DefaultFont,
		textColor:       color.Black,
		selectedFont:    Font{Size: DefaultFont.Size, Bold: true},
		selectedColor:   color.RGBA{B: 255, A: 255},
		selectedBorderPen: Pen{Color: color.RGBA{B: 255, A: 255}, Width: 2, Style: PenSolid},
		iconSize:        Pt(32, 18),
		iconTextPadding: 7,
		padding:         5,
		margin:          12,
		selectableParts: LegendPartBox | LegendPartItems,
	}
	l.initLayerable(l, p)
	l.SetVisible(false)
	return l
}

// ItemCount returns the number of legend entries.
func (l *Legend) ItemCount() int { return len(l.items) }

// Item returns the legend entry at the given index, or nil.
func (l *Legend) Item(index int) *PlottableLegendItem {
	if index < 0 || index >= len(l.items) {
		return nil
	}
	return l.items[index]
}

// ItemWithPlottable returns the legend entry of the given plottable, or
// nil when the plottable has no entry.
func (l *Legend) ItemWithPlottable(p Plottable) *PlottableLegendItem {
	for _, li := range l.items {
		if li.plottable == p {
			return li
		}
	}
	return nil
}

// AddItem appends a legend entry for the plottable. A plottable gets at
// most one entry.
func (l *Legend) AddItem(p Plottable) *PlottableLegendItem {
	if existing := l.ItemWithPlottable(p); existing != nil {
		return existing
	}
	li := &PlottableLegendItem{plottable: p, selectable: true}
	l.items = append(l.items, li)
	return li
}

// RemoveItem removes the legend entry of the plottable. Returns false
// when the plottable has no entry.
func (l *Legend) RemoveItem(p Plottable) bool {
	for i, li := range l.items {
		if li.plottable == p {
			l.items = slices.Delete(l.items, i, i+1)
			return true
		}
	}
	return false
}

// ClearItems removes all legend entries.
func (l *Legend) ClearItems() { l.items = nil }

// SetPositionStyle sets where the legend sits inside the axis rect.
func (l *Legend) SetPositionStyle(pos LegendPosition) { l.position = pos }

// SetPosition sets the manual legend position (top-left corner, in
// pixels) and switches to manual positioning.
func (l *Legend) SetPosition(p Point) {
	l.manual = p
	l.position = LegendManual
}

// SetBorderPen sets the pen of the legend box border.
func (l *Legend) SetBorderPen(pen Pen) { l.borderPen = pen }

// SetBrush sets the brush filling the legend box.
func (l *Legend) SetBrush(brush Brush) { l.brush = brush }

// SetFont sets the font of the entry names.
func (l *Legend) SetFont(f Font) { l.font = f }

// SetTextColor sets the color of the entry names.
func (l *Legend) SetTextColor(c color.Color) { l.textColor = c }

// SetIconSize sets the entry icon size in pixels.
func (l *Legend) SetIconSize(w, h float64) { l.iconSize = Pt(w, h) }

// SetSelectableParts sets which legend parts the user may select.
func (l *Legend) SetSelectableParts(parts LegendParts) { l.selectableParts = parts }

// SelectedParts returns the currently selected legend parts. An entry
// selection also reports LegendPartItems.
func (l *Legend) SelectedParts() LegendParts {
	parts := l.selectedParts
	for _, li := range l.items {
		if li.selected {
			parts |= LegendPartItems
			break
		}
	}
	return parts
}

// SetSelectedParts sets the selection state of the legend box. Clearing
// LegendPartItems deselects all entries.
func (l *Legend) SetSelectedParts(parts LegendParts) {
	l.selectedParts = parts & ^LegendPartItems
	if parts&LegendPartItems == 0 {
		for _, li := range l.items {
			li.selected = false
		}
	}
}

// SelectTestItem returns the legend entry at pos, or nil. Based on the
// entry boxes of the last draw.
func (l *Legend) SelectTestItem(pos Point) *PlottableLegendItem {
	if !l.Visible() {
		return nil
	}
	for _, li := range l.items {
		if li.selectable && li.rect.Contains(pos) {
			return li
		}
	}
	return nil
}

// SelectTestBox reports whether pos hits the legend box (excluding
// entries).
func (l *Legend) SelectTestBox(pos Point) bool {
	return l.Visible() && l.box.Contains(pos) && l.SelectTestItem(pos) == nil
}

// size computes the legend extent from its entries.
func (l *Legend) size(c Canvas) Point {
	w, h := 0.0, 0.0
	for _, li := range l.items {
		tw, th := c.MeasureText(li.plottable.Name(), l.font)
		w = math.Max(w, l.iconSize.X+l.iconTextPadding+tw)
		h += math.Max(l.iconSize.Y, th) + l.padding
	}
	if len(l.items) > 0 {
		h -= l.padding
	}
	return Pt(w+2*l.padding, h+2*l.padding)
}

// layoutBox computes the legend box rect for the current position style.
func (l *Legend) layoutBox(c Canvas) Rect {
	sz := l.size(c)
	if l.position == LegendManual {
		return R(l.manual.X, l.manual.Y, sz.X, sz.Y)
	}
	ar := l.plot.AxisRect()
	x, y := ar.Left()+l.margin, ar.Top()+l.margin
	switch l.position {
	case LegendTop, LegendBottom:
		x = ar.Center().X - sz.X/2
	case LegendTopRight, LegendRight, LegendBottomRight:
		x = ar.Right() - l.margin - sz.X
	}
	switch l.position {
	case LegendLeft, LegendRight:
		y = ar.Center().Y - sz.Y/2
	case LegendBottomLeft, LegendBottom, LegendBottomRight:
		y = ar.Bottom() - l.margin - sz.Y
	}
	return R(x, y, sz.X, sz.Y)
}

// ApplyDefaultAntialiasingHint applies the legend antialiasing policy to
// the canvas.
func (l *Legend) ApplyDefaultAntialiasingHint(c Canvas) {
	l.applyAntialiasingHint(c, l.Antialiased(), AELegend)
}

// Draw paints box and entries and records their hit rects.
func (l *Legend) Draw(c Canvas) {
	l.box = l.layoutBox(c)

	l.ApplyDefaultAntialiasingHint(c)
	if l.selectedParts&LegendPartBox != 0 {
		c.SetPen(l.selectedBorderPen)
	} else {
		c.SetPen(l.borderPen)
	}
	c.SetBrush(l.brush)
	c.DrawRect(l.box)

	y := l.box.Top() + l.padding
	for _, li := range l.items {
		font, textColor := l.font, l.textColor
		if li.selected {
			font, textColor = l.selectedFont, l.selectedColor
		}
		tw, th := c.MeasureText(li.plottable.Name(), font)
		rowH := math.Max(l.iconSize.Y, th)
		li.rect = R(l.box.Left()+l.padding, y, l.iconSize.X+l.iconTextPadding+tw, rowH)

		iconRect := R(l.box.Left()+l.padding, y+(rowH-l.iconSize.Y)/2, l.iconSize.X, l.iconSize.Y)
		l.applyAntialiasingHint(c, l.Antialiased(), AELegendItems)
		li.plottable.DrawLegendIcon(c, iconRect)

		c.SetPen(SolidPen(textColor))
		c.DrawText(Pt(iconRect.Right()+l.iconTextPadding, y+rowH/2), li.plottable.Name(), font, AlignCenterLeft, 0)
		y += rowH + l.padding
	}
}
