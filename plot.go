package plot

import (
	"image/color"
	"math"
	"slices"
	"strconv"
)

// Plot owns the axes, layers, plottables, items and the legend, and
// orchestrates the replot pipeline: layout, tick preparation and the
// layered draw pass onto the canvas.
//
// A Plot is not safe for concurrent use; drive it from one goroutine.
type Plot struct {
	canvas   Canvas
	viewport Rect
	axisRect Rect

	autoMargin              bool
	marginLeft, marginRight float64
	marginTop, marginBottom float64

	xAxis, yAxis, xAxis2, yAxis2 *Axis

	layers       []*Layer
	currentLayer *Layer

	plottables []Plottable
	graphs     []*Graph
	items      []Item
	legend     *Legend

	title      string
	titleFont  Font
	titleColor color.Color

	selectionTolerance       float64
	autoAddPlottableToLegend bool
	antialiasedElements      AntialiasedElements
	notAntialiasedElements   AntialiasedElements

	interactions         Interactions
	rangeDragHorz        bool
	rangeDragVert        bool
	rangeZoomHorz        bool
	rangeZoomVert        bool
	rangeDragAxisHorz    *Axis
	rangeDragAxisVert    *Axis
	rangeZoomAxisHorz    *Axis
	rangeZoomAxisVert    *Axis
	rangeZoomFactorHorz  float64
	rangeZoomFactorVert  float64
	noAntialiasingOnDrag bool
	selectionChanged     []func()
	interact             interactState

	replotting bool
}

// Option configures a Plot created with New.
type Option func(*Plot)

// WithCanvas sets the canvas the plot draws onto.
func WithCanvas(c Canvas) Option {
	return func(p *Plot) { p.canvas = c }
}

// WithViewport sets the outer pixel rectangle of the plot.
func WithViewport(r Rect) Option {
	return func(p *Plot) { p.SetViewport(r) }
}

// WithSelectionTolerance sets the pixel distance up to which clicks
// still count as hits on plot elements.
func WithSelectionTolerance(tol float64) Option {
	return func(p *Plot) { p.selectionTolerance = tol }
}

// WithAutoMargin sets whether the axis rect margins are derived from the
// axis label extents on every replot. Disabled, the margins set with
// SetMargins apply.
func WithAutoMargin(on bool) Option {
	return func(p *Plot) { p.autoMargin = on }
}

// WithTitle sets the plot title drawn centered above the axis rect.
func WithTitle(title string) Option {
	return func(p *Plot) { p.title = title }
}

// New creates a plot with the default layer stack (grid, main, axes,
// legend), four axes and a hidden legend.
func New(opts ...Option) *Plot {
	p := &Plot{
		viewport:                 R(0, 0, 640, 480),
		autoMargin:               true,
		selectionTolerance:       8,
		autoAddPlottableToLegend: true,
		titleFont:                Font{Size: 14, Bold: true},
		titleColor:               color.Black,
	}
	for _, name := range [4]string{"grid", "main", "axes", "legend"} {
		p.layers = append(p.layers, newLayer(p, name))
	}
	p.currentLayer = p.LayerByName("main")

	p.xAxis = newAxis(p, SideBottom)
	p.yAxis = newAxis(p, SideLeft)
	p.xAxis2 = newAxis(p, SideTop)
	p.yAxis2 = newAxis(p, SideRight)
	p.xAxis2.SetVisible(false)
	p.yAxis2.SetVisible(false)
	for _, a := range p.axes() {
		a.SetLayerByName("axes")
		a.grid.SetLayerByName("grid")
		a.grid.SetVisible(a == p.xAxis || a == p.yAxis)
	}

	p.legend = newLegend(p)
	p.legend.SetLayerByName("legend")

	p.rangeDragHorz, p.rangeDragVert = true, true
	p.rangeZoomHorz, p.rangeZoomVert = true, true
	p.rangeDragAxisHorz, p.rangeDragAxisVert = p.xAxis, p.yAxis
	p.rangeZoomAxisHorz, p.rangeZoomAxisVert = p.xAxis, p.yAxis
	p.rangeZoomFactorHorz, p.rangeZoomFactorVert = 0.85, 0.85

	for _, opt := range opts {
		opt(p)
	}
	p.updateAxisRect()
	return p
}

// XAxis returns the bottom axis.
func (p *Plot) XAxis() *Axis { return p.xAxis }

// YAxis returns the left axis.
func (p *Plot) YAxis() *Axis { return p.yAxis }

// XAxis2 returns the top axis. It is hidden by default.
func (p *Plot) XAxis2() *Axis { return p.xAxis2 }

// YAxis2 returns the right axis. It is hidden by default.
func (p *Plot) YAxis2() *Axis { return p.yAxis2 }

func (p *Plot) axes() [4]*Axis {
	return [4]*Axis{p.xAxis, p.yAxis, p.xAxis2, p.yAxis2}
}

// axisAt returns the axis attached to the given side.
func (p *Plot) axisAt(side AxisSide) *Axis {
	switch side {
	case SideBottom:
		return p.xAxis
	case SideLeft:
		return p.yAxis
	case SideTop:
		return p.xAxis2
	default:
		return p.yAxis2
	}
}

// Legend returns the plot legend.
func (p *Plot) Legend() *Legend { return p.legend }

// Canvas returns the canvas the plot draws onto.
func (p *Plot) Canvas() Canvas { return p.canvas }

// SetCanvas sets the canvas the plot draws onto.
func (p *Plot) SetCanvas(c Canvas) { p.canvas = c }

// Viewport returns the outer pixel rectangle of the plot.
func (p *Plot) Viewport() Rect { return p.viewport }

// SetViewport sets the outer pixel rectangle of the plot.
func (p *Plot) SetViewport(r Rect) {
	p.viewport = r
	p.updateAxisRect()
}

// AxisRect returns the inner rectangle framed by the axes.
func (p *Plot) AxisRect() Rect { return p.axisRect }

// SetTitle sets the plot title drawn centered above the axis rect.
func (p *Plot) SetTitle(title string) { p.title = title }

// Title returns the plot title.
func (p *Plot) Title() string { return p.title }

// SetTitleFont sets the title font.
func (p *Plot) SetTitleFont(f Font) { p.titleFont = f }

// SetMargins sets fixed axis rect margins, used when auto margins are
// disabled.
func (p *Plot) SetMargins(left, right, top, bottom float64) {
	p.marginLeft, p.marginRight = left, right
	p.marginTop, p.marginBottom = top, bottom
	p.updateAxisRect()
}

// SetAutoMargin sets whether the margins are derived from the axis
// label extents on every replot.
func (p *Plot) SetAutoMargin(on bool) { p.autoMargin = on }

// SelectionTolerance returns the pixel distance up to which clicks still
// count as hits.
func (p *Plot) SelectionTolerance() float64 { return p.selectionTolerance }

// SetSelectionTolerance sets the pixel distance up to which clicks still
// count as hits.
func (p *Plot) SetSelectionTolerance(tol float64) { p.selectionTolerance = tol }

// SetAntialiasedElements forces antialiasing on for the given element
// categories, overriding the per-element flags.
func (p *Plot) SetAntialiasedElements(elems AntialiasedElements) {
	p.antialiasedElements = elems
}

// SetNotAntialiasedElements forces antialiasing off for the given
// element categories. Takes precedence over SetAntialiasedElements.
func (p *Plot) SetNotAntialiasedElements(elems AntialiasedElements) {
	p.notAntialiasedElements = elems
}

// SetAutoAddPlottableToLegend sets whether newly added plottables
// automatically get a legend entry.
func (p *Plot) SetAutoAddPlottableToLegend(on bool) { p.autoAddPlottableToLegend = on }

// AddGraph creates a graph on the given axes (default: bottom key axis,
// left value axis), registers it and returns it.
func (p *Plot) AddGraph(axes ...*Axis) *Graph {
	keyAxis, valueAxis := p.xAxis, p.yAxis
	if len(axes) > 0 && axes[0] != nil {
		keyAxis = axes[0]
	}
	if len(axes) > 1 && axes[1] != nil {
		valueAxis = axes[1]
	}
	g := NewGraph(keyAxis, valueAxis)
	g.SetName("Graph " + strconv.Itoa(len(p.graphs)))
	p.graphs = append(p.graphs, g)
	p.registerPlottable(g)
	return g
}

// AddCurve creates a parametric curve on the given axes, registers it
// and returns it.
func (p *Plot) AddCurve(axes ...*Axis) *Curve {
	keyAxis, valueAxis := p.xAxis, p.yAxis
	if len(axes) > 0 && axes[0] != nil {
		keyAxis = axes[0]
	}
	if len(axes) > 1 && axes[1] != nil {
		valueAxis = axes[1]
	}
	cv := NewCurve(keyAxis, valueAxis)
	p.registerPlottable(cv)
	return cv
}

// AddBars creates a bar chart on the given axes, registers it and
// returns it.
func (p *Plot) AddBars(axes ...*Axis) *Bars {
	keyAxis, valueAxis := p.xAxis, p.yAxis
	if len(axes) > 0 && axes[0] != nil {
		keyAxis = axes[0]
	}
	if len(axes) > 1 && axes[1] != nil {
		valueAxis = axes[1]
	}
	b := NewBars(keyAxis, valueAxis)
	p.registerPlottable(b)
	return b
}

// AddStatisticalBox creates a statistical box on the given axes,
// registers it and returns it.
func (p *Plot) AddStatisticalBox(axes ...*Axis) *StatisticalBox {
	keyAxis, valueAxis := p.xAxis, p.yAxis
	if len(axes) > 0 && axes[0] != nil {
		keyAxis = axes[0]
	}
	if len(axes) > 1 && axes[1] != nil {
		valueAxis = axes[1]
	}
	s := NewStatisticalBox(keyAxis, valueAxis)
	p.registerPlottable(s)
	return s
}

// AddPlottable registers an externally created plottable. Its axes must
// belong to this plot.
func (p *Plot) AddPlottable(pl Plottable) bool {
	if pl.KeyAxis().plot != p || pl.ValueAxis().plot != p {
		Logger().Warn("plot: plottable axes belong to a different plot", "name", pl.Name())
		return false
	}
	if slices.Contains(p.plottables, pl) {
		return false
	}
	p.registerPlottable(pl)
	return true
}

func (p *Plot) registerPlottable(pl Plottable) {
	if !slices.Contains(p.plottables, pl) {
		p.plottables = append(p.plottables, pl)
	}
	if pl.Layer() == nil {
		pl.base().SetLayer(p.currentLayer)
	}
	if p.autoAddPlottableToLegend {
		p.legend.AddItem(pl)
	}
}

// RemovePlottable removes the plottable from the plot, its layer and the
// legend.
func (p *Plot) RemovePlottable(pl Plottable) bool {
	i := slices.Index(p.plottables, pl)
	if i < 0 {
		return false
	}
	p.plottables = slices.Delete(p.plottables, i, i+1)
	if g, ok := pl.(*Graph); ok {
		if j := slices.Index(p.graphs, g); j >= 0 {
			p.graphs = slices.Delete(p.graphs, j, j+1)
		}
		for _, it := range p.items {
			if t, ok := it.(*ItemTracer); ok && t.graph == g {
				t.graph = nil
			}
		}
	}
	p.legend.RemoveItem(pl)
	pl.base().moveToLayer(nil, false)
	return true
}

// ClearPlottables removes all plottables.
func (p *Plot) ClearPlottables() int {
	n := len(p.plottables)
	for i := n - 1; i >= 0; i-- {
		p.RemovePlottable(p.plottables[i])
	}
	return n
}

// PlottableCount returns the number of registered plottables.
func (p *Plot) PlottableCount() int { return len(p.plottables) }

// PlottableAt returns the plottable at the given index, or nil.
func (p *Plot) PlottableAt(index int) Plottable {
	if index < 0 || index >= len(p.plottables) {
		return nil
	}
	return p.plottables[index]
}

// GraphCount returns the number of registered graphs.
func (p *Plot) GraphCount() int { return len(p.graphs) }

// GraphAt returns the graph at the given index, or nil.
func (p *Plot) GraphAt(index int) *Graph {
	if index < 0 || index >= len(p.graphs) {
		return nil
	}
	return p.graphs[index]
}

// addItem registers an item created by one of the NewItem constructors.
func (p *Plot) addItem(it Item) {
	p.items = append(p.items, it)
	if it.Layer() == nil {
		it.base().SetLayer(p.currentLayer)
	}
}

// RemoveItem removes the item from the plot and detaches all positions
// anchored to it.
func (p *Plot) RemoveItem(it Item) bool {
	i := slices.Index(p.items, it)
	if i < 0 {
		return false
	}
	it.itemBase().detachAnchors()
	p.items = slices.Delete(p.items, i, i+1)
	it.base().moveToLayer(nil, false)
	return true
}

// ClearItems removes all items.
func (p *Plot) ClearItems() int {
	n := len(p.items)
	for i := n - 1; i >= 0; i-- {
		p.RemoveItem(p.items[i])
	}
	return n
}

// ItemCount returns the number of registered items.
func (p *Plot) ItemCount() int { return len(p.items) }

// ItemAt returns the item at the given index, or nil.
func (p *Plot) ItemAt(index int) Item {
	if index < 0 || index >= len(p.items) {
		return nil
	}
	return p.items[index]
}

// PlottableAtPos returns the plottable closest to pos within the
// selection tolerance, preferring ones higher in the drawing order, or
// nil.
func (p *Plot) PlottableAtPos(pos Point) Plottable {
	var best Plottable
	bestDist := p.selectionTolerance
	// iterate in drawing order; later hits of equal distance win so the
	// topmost plottable is preferred
	for _, pl := range p.plottables {
		if !pl.Visible() {
			continue
		}
		if d := pl.SelectTest(pos); d >= 0 && d <= bestDist {
			best = pl
			bestDist = d
		}
	}
	return best
}

// ItemAtPos returns the item closest to pos within the selection
// tolerance, or nil.
func (p *Plot) ItemAtPos(pos Point) Item {
	var best Item
	bestDist := p.selectionTolerance
	for _, it := range p.items {
		if !it.Visible() {
			continue
		}
		if d := it.SelectTest(pos); d >= 0 && d <= bestDist {
			best = it
			bestDist = d
		}
	}
	return best
}

// SelectedPlottables returns all currently selected plottables in
// registration order.
func (p *Plot) SelectedPlottables() []Plottable {
	var sel []Plottable
	for _, pl := range p.plottables {
		if pl.plottableBase().Selected() {
			sel = append(sel, pl)
		}
	}
	return sel
}

// SelectedItems returns all currently selected items in registration
// order.
func (p *Plot) SelectedItems() []Item {
	var sel []Item
	for _, it := range p.items {
		if it.itemBase().Selected() {
			sel = append(sel, it)
		}
	}
	return sel
}

// SelectedAxes returns all axes with at least one selected part.
func (p *Plot) SelectedAxes() []*Axis {
	var sel []*Axis
	for _, a := range p.axes() {
		if a.SelectedParts() != PartNone {
			sel = append(sel, a)
		}
	}
	return sel
}

// RescaleAxes adjusts all axes so that the whole data of all visible
// plottables is visible. The first plottable sets the ranges, the rest
// only enlarge them.
func (p *Plot) RescaleAxes() {
	first := true
	for _, pl := range p.plottables {
		if !pl.Visible() {
			continue
		}
		pl.plottableBase().RescaleAxes(!first)
		first = false
	}
}

// SetupFullAxesBox shows all four axes, mirrors range and tick setup of
// the bottom and left axes onto the top and right axes, and hides the
// mirrored tick labels so the data stays framed without duplicated
// numbering.
func (p *Plot) SetupFullAxesBox() {
	for _, pair := range [2][2]*Axis{{p.xAxis, p.xAxis2}, {p.yAxis, p.yAxis2}} {
		src, dst := pair[0], pair[1]
		dst.SetVisible(true)
		dst.SetTickLabels(false)
		dst.SetAutoTickCount(src.autoTickCount)
		dst.SetScaleType(src.scaleType)
		dst.SetScaleLogBase(src.scaleLogBase)
		dst.SetRange(src.rng)
	}
}

// Replot runs the full pipeline: margin layout, tick vector setup,
// tracer updates and the layered draw pass. Reentrant calls (from a
// range change handler firing during the draw, for instance) are
// ignored.
func (p *Plot) Replot() {
	if p.replotting || p.canvas == nil {
		return
	}
	p.replotting = true
	defer func() { p.replotting = false }()

	for _, a := range p.axes() {
		a.setupTickVectors()
	}
	p.updateAxisRect()
	for _, it := range p.items {
		if t, ok := it.(*ItemTracer); ok {
			t.UpdatePosition()
		}
	}
	p.draw(p.canvas)
}

// updateAxisRect recomputes the axis rect from the viewport and the
// margins.
func (p *Plot) updateAxisRect() {
	left, right := p.marginLeft, p.marginRight
	top, bottom := p.marginTop, p.marginBottom
	if p.autoMargin && p.canvas != nil {
		left = p.yAxis.CalculateMargin(p.canvas)
		right = p.yAxis2.CalculateMargin(p.canvas)
		top = p.xAxis2.CalculateMargin(p.canvas)
		bottom = p.xAxis.CalculateMargin(p.canvas)
	}
	if p.title != "" && p.canvas != nil {
		_, th := p.canvas.MeasureText(p.title, p.titleFont)
		top += th + 10
	}
	p.axisRect = R(
		p.viewport.Left()+left,
		p.viewport.Top()+top,
		math.Max(0, p.viewport.W-left-right),
		math.Max(0, p.viewport.H-top-bottom),
	)
	for _, a := range p.axes() {
		a.setAxisRect(p.axisRect)
	}
}

// draw paints the title and all layers bottom to top, each layerable
// clipped to its clip rect.
func (p *Plot) draw(c Canvas) {
	if p.title != "" {
		c.SetPen(SolidPen(p.titleColor))
		c.DrawText(Pt(p.axisRect.Center().X, p.viewport.Top()+5), p.title, p.titleFont, AlignTopCenter, 0)
	}
	for _, layer := range p.layers {
		for _, child := range layer.children {
			if !child.Visible() {
				continue
			}
			c.SetClipRect(child.ClipRect())
			child.ApplyDefaultAntialiasingHint(c)
			child.Draw(c)
		}
	}
	c.ClearClip()
}
