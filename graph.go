package plot

import (
	"math"
	"slices"
)

// LineStyle defines how the data points of a graph are connected.
type LineStyle int

const (
	// LineNone draws no connecting line, only scatter symbols.
	LineNone LineStyle = iota
	// LineDirect connects points with straight lines.
	LineDirect
	// LineStepLeft draws steps where the step height is taken from the
	// left data point.
	LineStepLeft
	// LineStepRight draws steps where the step height is taken from the
	// right data point.
	LineStepRight
	// LineStepCenter draws steps that change halfway between points.
	LineStepCenter
	// LineImpulse draws a vertical line from zero to each data point.
	LineImpulse
)

// ScatterStyle defines the symbol drawn at each data point.
type ScatterStyle int

const (
	// ScatterNone draws no symbol.
	ScatterNone ScatterStyle = iota
	// ScatterDot draws a single point.
	ScatterDot
	// ScatterCross draws an X.
	ScatterCross
	// ScatterPlus draws a +.
	ScatterPlus
	// ScatterCircle draws an unfilled circle.
	ScatterCircle
	// ScatterDisc draws a filled circle.
	ScatterDisc
	// ScatterSquare draws an unfilled square.
	ScatterSquare
	// ScatterDiamond draws an unfilled diamond.
	ScatterDiamond
	// ScatterTriangle draws an upward triangle.
	ScatterTriangle
	// ScatterTriangleInverted draws a downward triangle.
	ScatterTriangleInverted
)

// ErrorType defines which error bars a graph draws.
type ErrorType int

const (
	// ErrorNone draws no error bars.
	ErrorNone ErrorType = iota
	// ErrorKey draws error bars along the key dimension.
	ErrorKey
	// ErrorValue draws error bars along the value dimension.
	ErrorValue
	// ErrorBoth draws error bars along both dimensions.
	ErrorBoth
)

// GraphData is one data point of a graph, with optional asymmetric
// errors in both dimensions.
type GraphData struct {
	Key, Value float64

	KeyErrorMinus, KeyErrorPlus     float64
	ValueErrorMinus, ValueErrorPlus float64
}

// Graph plots a sequence of key-sorted data points as a line with
// optional scatter symbols, error bars and a fill between the line and
// the zero value line or another graph (channel fill).
type Graph struct {
	PlottableBase

	data []GraphData

	lineStyle    LineStyle
	scatterStyle ScatterStyle
	scatterSize  float64
	errorType    ErrorType
	errorPen     Pen
	errorBarSize float64
	channelFill  *Graph
}

// NewGraph creates a graph bound to the given axes and registers it with
// their plot. Most callers use Plot.AddGraph instead.
func NewGraph(keyAxis, valueAxis *Axis) *Graph {
	g := &Graph{
		lineStyle:    LineDirect,
		scatterSize:  6,
		errorPen:     SolidPen(nil),
		errorBarSize: 6,
	}
	g.initPlottable(g, keyAxis, valueAxis)
	g.errorPen = SolidPen(g.pen.Color)
	return g
}

// Data returns the graph's data points in key order.
// The returned slice must not be modified.
func (g *Graph) Data() []GraphData { return g.data }

// SetData replaces the graph data. The points are copied and sorted by
// key; of duplicate keys the last inserted point wins.
func (g *Graph) SetData(data []GraphData) {
	g.data = slices.Clone(data)
	slices.SortStableFunc(g.data, func(a, b GraphData) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		default:
			return 0
		}
	})
	// The stable sort keeps duplicates in insertion order, so the last
	// one of each run replaces its predecessors.
	out := g.data[:0]
	for _, d := range g.data {
		if n := len(out); n > 0 && out[n-1].Key == d.Key {
			out[n-1] = d
		} else {
			out = append(out, d)
		}
	}
	g.data = out
}

// SetDataKeyValue replaces the graph data with parallel key and value
// slices. Excess entries of the longer slice are ignored.
func (g *Graph) SetDataKeyValue(keys, values []float64) {
	n := min(len(keys), len(values))
	data := make([]GraphData, n)
	for i := 0; i < n; i++ {
		data[i] = GraphData{Key: keys[i], Value: values[i]}
	}
	g.SetData(data)
}

// AddData appends data points, keeping the key order.
func (g *Graph) AddData(data ...GraphData) {
	g.data = append(g.data, data...)
	g.SetData(g.data)
}

// ClearData removes all data points.
func (g *Graph) ClearData() { g.data = nil }

// SetLineStyle sets how data points are connected.
func (g *Graph) SetLineStyle(style LineStyle) { g.lineStyle = style }

// LineStyle returns how data points are connected.
func (g *Graph) LineStyle() LineStyle { return g.lineStyle }

// SetScatterStyle sets the symbol drawn at each data point.
func (g *Graph) SetScatterStyle(style ScatterStyle) { g.scatterStyle = style }

// SetScatterSize sets the scatter symbol size in pixels.
func (g *Graph) SetScatterSize(size float64) { g.scatterSize = size }

// SetErrorType sets which error bars are drawn.
func (g *Graph) SetErrorType(t ErrorType) { g.errorType = t }

// SetErrorPen sets the pen for error bars.
func (g *Graph) SetErrorPen(pen Pen) { g.errorPen = pen }

// SetErrorBarSize sets the length of the error bar handles in pixels.
func (g *Graph) SetErrorBarSize(size float64) { g.errorBarSize = size }

// SetChannelFillGraph fills the area between this graph and other with
// the graph brush. A nil graph reverts to filling towards the zero
// value line. The other graph must be bound to the same axes.
func (g *Graph) SetChannelFillGraph(other *Graph) {
	if other != nil && (other.keyAxis != g.keyAxis || other.valueAxis != g.valueAxis) {
		Logger().Warn("plot: channel fill graph not bound to same axes", "graph", g.name)
		return
	}
	g.channelFill = other
}

// KeyRange returns the span of the data keys including key errors.
func (g *Graph) KeyRange(domain SignDomain) (Range, bool) {
	rng := Range{Lower: math.Inf(1), Upper: math.Inf(-1)}
	found := false
	for _, d := range g.data {
		for _, k := range [3]float64{d.Key, d.Key - d.KeyErrorMinus, d.Key + d.KeyErrorPlus} {
			if !domain.inSignDomain(k) {
				continue
			}
			rng.Lower = math.Min(rng.Lower, k)
			rng.Upper = math.Max(rng.Upper, k)
			found = true
		}
	}
	return rng, found
}

// ValueRange returns the span of the data values including value errors.
func (g *Graph) ValueRange(domain SignDomain) (Range, bool) {
	rng := Range{Lower: math.Inf(1), Upper: math.Inf(-1)}
	found := false
	for _, d := range g.data {
		for _, v := range [3]float64{d.Value, d.Value - d.ValueErrorMinus, d.Value + d.ValueErrorPlus} {
			if !domain.inSignDomain(v) {
				continue
			}
			rng.Lower = math.Min(rng.Lower, v)
			rng.Upper = math.Max(rng.Upper, v)
			found = true
		}
	}
	return rng, found
}

// SelectTest returns the distance from pos to the graph: to the line
// representation if one is drawn, otherwise to the nearest data point.
func (g *Graph) SelectTest(pos Point) float64 {
	if !g.selectable || len(g.data) == 0 {
		return -1
	}
	if g.lineStyle == LineNone && g.scatterStyle == ScatterNone {
		return -1
	}

	if g.lineStyle == LineNone {
		// scatter only: distance to the closest data point
		minDistSqr := math.Inf(1)
		for _, d := range g.data {
			p := g.coordsToPixels(d.Key, d.Value)
			minDistSqr = math.Min(minDistSqr, p.Sub(pos).LengthSquared())
		}
		return math.Sqrt(minDistSqr)
	}

	lineData := g.lineData()
	minDistSqr := math.Inf(1)
	if g.lineStyle == LineImpulse {
		// impulse line data is a sequence of disjoint segments
		for i := 0; i+1 < len(lineData); i += 2 {
			minDistSqr = math.Min(minDistSqr, distSqrToLine(lineData[i], lineData[i+1], pos))
		}
	} else {
		for i := 0; i+1 < len(lineData); i++ {
			minDistSqr = math.Min(minDistSqr, distSqrToLine(lineData[i], lineData[i+1], pos))
		}
	}
	return math.Sqrt(minDistSqr)
}

// lineData converts the data points to the pixel polyline of the current
// line style.
func (g *Graph) lineData() []Point {
	pts := make([]Point, 0, len(g.data)*2)
	switch g.lineStyle {
	case LineStepLeft:
		var last Point
		for i, d := range g.data {
			p := g.coordsToPixels(d.Key, d.Value)
			if i > 0 {
				if g.keyAxis.Orientation() == Horizontal {
					pts = append(pts, Pt(p.X, last.Y))
				} else {
					pts = append(pts, Pt(last.X, p.Y))
				}
			}
			pts = append(pts, p)
			last = p
		}
	case LineStepRight:
		var last Point
		for i, d := range g.data {
			p := g.coordsToPixels(d.Key, d.Value)
			if i > 0 {
				if g.keyAxis.Orientation() == Horizontal {
					pts = append(pts, Pt(last.X, p.Y))
				} else {
					pts = append(pts, Pt(p.X, last.Y))
				}
			}
			pts = append(pts, p)
			last = p
		}
	case LineStepCenter:
		var last Point
		for i, d := range g.data {
			p := g.coordsToPixels(d.Key, d.Value)
			if i > 0 {
				if g.keyAxis.Orientation() == Horizontal {
					mid := (last.X + p.X) / 2
					pts = append(pts, Pt(mid, last.Y), Pt(mid, p.Y))
				} else {
					mid := (last.Y + p.Y) / 2
					pts = append(pts, Pt(last.X, mid), Pt(p.X, mid))
				}
			}
			pts = append(pts, p)
			last = p
		}
	case LineImpulse:
		zero := g.valueAxis.CoordToPixel(0)
		for _, d := range g.data {
			p := g.coordsToPixels(d.Key, d.Value)
			if g.keyAxis.Orientation() == Horizontal {
				pts = append(pts, Pt(p.X, zero), p)
			} else {
				pts = append(pts, Pt(zero, p.Y), p)
			}
		}
	default:
		for _, d := range g.data {
			pts = append(pts, g.coordsToPixels(d.Key, d.Value))
		}
	}
	return pts
}

// Draw paints the fill, the line, the error bars and the scatter
// symbols, in that order.
func (g *Graph) Draw(c Canvas) {
	if len(g.data) == 0 {
		return
	}
	lineData := g.lineData()

	if g.mainBrush().Visible() && g.lineStyle != LineNone && g.lineStyle != LineImpulse {
		g.applyFillAntialiasingHint(c)
		c.SetBrush(g.mainBrush())
		c.SetPen(Pen{})
		c.DrawPolygon(g.fillPolygon(lineData))
	}

	if g.lineStyle != LineNone {
		g.ApplyDefaultAntialiasingHint(c)
		c.SetPen(g.mainPen())
		c.SetBrush(Brush{})
		if g.lineStyle == LineImpulse {
			for i := 0; i+1 < len(lineData); i += 2 {
				c.DrawLine(lineData[i], lineData[i+1])
			}
		} else {
			c.DrawPolyline(lineData)
		}
	}

	if g.errorType != ErrorNone {
		g.applyErrorBarsAntialiasingHint(c)
		c.SetPen(g.errorPen)
		for _, d := range g.data {
			g.drawErrorBars(c, d)
		}
	}

	if g.scatterStyle != ScatterNone {
		g.applyScattersAntialiasingHint(c)
		c.SetPen(g.mainPen())
		for _, d := range g.data {
			drawScatter(c, g.coordsToPixels(d.Key, d.Value), g.scatterStyle, g.scatterSize, g.mainPen())
		}
	}
}

// fillPolygon closes the line polyline towards the zero value line, or
// towards the channel fill graph's line when one is set.
func (g *Graph) fillPolygon(lineData []Point) []Point {
	if g.channelFill != nil {
		otherData := g.channelFill.lineData()
		poly := make([]Point, 0, len(lineData)+len(otherData))
		poly = append(poly, lineData...)
		for i := len(otherData) - 1; i >= 0; i-- {
			poly = append(poly, otherData[i])
		}
		return poly
	}
	zero := g.valueAxis.CoordToPixel(0)
	poly := make([]Point, 0, len(lineData)+2)
	poly = append(poly, lineData...)
	first, last := lineData[0], lineData[len(lineData)-1]
	if g.keyAxis.Orientation() == Horizontal {
		poly = append(poly, Pt(last.X, zero), Pt(first.X, zero))
	} else {
		poly = append(poly, Pt(zero, last.Y), Pt(zero, first.Y))
	}
	return poly
}

// drawErrorBars draws the error bars of one data point.
func (g *Graph) drawErrorBars(c Canvas, d GraphData) {
	center := g.coordsToPixels(d.Key, d.Value)
	handle := g.errorBarSize / 2
	if g.errorType == ErrorKey || g.errorType == ErrorBoth {
		lo := g.coordsToPixels(d.Key-d.KeyErrorMinus, d.Value)
		hi := g.coordsToPixels(d.Key+d.KeyErrorPlus, d.Value)
		c.DrawLine(lo, hi)
		if g.keyAxis.Orientation() == Horizontal {
			c.DrawLine(Pt(lo.X, center.Y-handle), Pt(lo.X, center.Y+handle))
			c.DrawLine(Pt(hi.X, center.Y-handle), Pt(hi.X, center.Y+handle))
		} else {
			c.DrawLine(Pt(center.X-handle, lo.Y), Pt(center.X+handle, lo.Y))
			c.DrawLine(Pt(center.X-handle, hi.Y), Pt(center.X+handle, hi.Y))
		}
	}
	if g.errorType == ErrorValue || g.errorType == ErrorBoth {
		lo := g.coordsToPixels(d.Key, d.Value-d.ValueErrorMinus)
		hi := g.coordsToPixels(d.Key, d.Value+d.ValueErrorPlus)
		c.DrawLine(lo, hi)
		if g.valueAxis.Orientation() == Vertical {
			c.DrawLine(Pt(center.X-handle, lo.Y), Pt(center.X+handle, lo.Y))
			c.DrawLine(Pt(center.X-handle, hi.Y), Pt(center.X+handle, hi.Y))
		} else {
			c.DrawLine(Pt(lo.X, center.Y-handle), Pt(lo.X, center.Y+handle))
			c.DrawLine(Pt(hi.X, center.Y-handle), Pt(hi.X, center.Y+handle))
		}
	}
}

// DrawLegendIcon paints a short line segment with the scatter symbol in
// the middle.
func (g *Graph) DrawLegendIcon(c Canvas, rect Rect) {
	if g.mainBrush().Visible() {
		c.SetBrush(g.mainBrush())
		c.SetPen(Pen{})
		c.DrawRect(R(rect.Left(), rect.Top()+rect.H/2, rect.W, rect.H/3))
	}
	if g.lineStyle != LineNone {
		c.SetPen(g.mainPen())
		c.DrawLine(Pt(rect.Left(), rect.Center().Y), Pt(rect.Right(), rect.Center().Y))
	}
	if g.scatterStyle != ScatterNone {
		c.SetPen(g.mainPen())
		drawScatter(c, rect.Center(), g.scatterStyle, g.scatterSize, g.mainPen())
	}
}

// drawScatter draws one scatter symbol centered on p. Shared by graphs
// and the tracer item.
func drawScatter(c Canvas, p Point, style ScatterStyle, size float64, pen Pen) {
	w := size / 2
	switch style {
	case ScatterDot:
		c.DrawLine(p, p)
	case ScatterCross:
		c.DrawLine(Pt(p.X-w, p.Y-w), Pt(p.X+w, p.Y+w))
		c.DrawLine(Pt(p.X-w, p.Y+w), Pt(p.X+w, p.Y-w))
	case ScatterPlus:
		c.DrawLine(Pt(p.X-w, p.Y), Pt(p.X+w, p.Y))
		c.DrawLine(Pt(p.X, p.Y-w), Pt(p.X, p.Y+w))
	case ScatterCircle:
		c.SetBrush(Brush{})
		c.DrawEllipse(p, w, w)
	case ScatterDisc:
		c.SetBrush(SolidBrush(pen.Color))
		c.DrawEllipse(p, w, w)
	case ScatterSquare:
		c.SetBrush(Brush{})
		c.DrawRect(R(p.X-w, p.Y-w, size, size))
	case ScatterDiamond:
		c.SetBrush(Brush{})
		c.DrawPolygon([]Point{
			Pt(p.X-w, p.Y), Pt(p.X, p.Y-w), Pt(p.X+w, p.Y), Pt(p.X, p.Y+w),
		})
	case ScatterTriangle:
		c.SetBrush(Brush{})
		c.DrawPolygon([]Point{
			Pt(p.X-w, p.Y+0.755*w), Pt(p.X+w, p.Y+0.755*w), Pt(p.X, p.Y-0.977*w),
		})
	case ScatterTriangleInverted:
		c.SetBrush(Brush{})
		c.DrawPolygon([]Point{
			Pt(p.X-w, p.Y-0.755*w), Pt(p.X+w, p.Y-0.755*w), Pt(p.X, p.Y+0.977*w),
		})
	}
}
