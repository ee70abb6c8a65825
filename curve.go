package plot

import (
	"math"
	"slices"
)

// CurveLineStyle defines how the data points of a curve are connected.
type CurveLineStyle int

const (
	// CurveLineNone draws no connecting line, only scatter symbols.
	CurveLineNone CurveLineStyle = iota
	// CurveLineDirect connects points with straight lines in t order.
	CurveLineDirect
)

// CurveData is one data point of a curve. T orders the points along the
// curve independently of the key, so curves may loop and self-intersect.
type CurveData struct {
	T, Key, Value float64
}

// Curve plots a sequence of t-sorted points as a parametric curve. Unlike
// a graph it is not a function of the key axis: sorted by t, the curve
// may fold back on itself.
type Curve struct {
	PlottableBase

	data []CurveData

	lineStyle    CurveLineStyle
	scatterStyle ScatterStyle
	scatterSize  float64
}

// NewCurve creates a curve bound to the given axes and registers it with
// their plot. Most callers use Plot.AddCurve instead.
func NewCurve(keyAxis, valueAxis *Axis) *Curve {
	cv := &Curve{
		lineStyle:   CurveLineDirect,
		scatterSize: 6,
	}
	cv.initPlottable(cv, keyAxis, valueAxis)
	return cv
}

// Data returns the curve's data points in t order.
// The returned slice must not be modified.
func (cv *Curve) Data() []CurveData { return cv.data }

// SetData replaces the curve data. The points are copied and sorted by
// t; points sharing a t keep their insertion order.
func (cv *Curve) SetData(data []CurveData) {
	cv.data = slices.Clone(data)
	slices.SortStableFunc(cv.data, func(a, b CurveData) int {
		switch {
		case a.T < b.T:
			return -1
		case a.T > b.T:
			return 1
		default:
			return 0
		}
	})
}

// SetDataKeyValue replaces the curve data with parallel key and value
// slices; t is the slice index. Excess entries of the longer slice are
// ignored.
func (cv *Curve) SetDataKeyValue(keys, values []float64) {
	n := min(len(keys), len(values))
	data := make([]CurveData, n)
	for i := 0; i < n; i++ {
		data[i] = CurveData{T: float64(i), Key: keys[i], Value: values[i]}
	}
	cv.SetData(data)
}

// AddData appends data points, keeping the t order.
func (cv *Curve) AddData(data ...CurveData) {
	cv.SetData(append(cv.data, data...))
}

// AddPoint appends a key/value pair with t set to the last point's t
// plus one (zero for the first point).
func (cv *Curve) AddPoint(key, value float64) {
	t := 0.0
	if n := len(cv.data); n > 0 {
		t = cv.data[n-1].T + 1
	}
	cv.data = append(cv.data, CurveData{T: t, Key: key, Value: value})
}

// ClearData removes all data points.
func (cv *Curve) ClearData() { cv.data = nil }

// SetLineStyle sets how data points are connected.
func (cv *Curve) SetLineStyle(style CurveLineStyle) { cv.lineStyle = style }

// LineStyle returns how data points are connected.
func (cv *Curve) LineStyle() CurveLineStyle { return cv.lineStyle }

// SetScatterStyle sets the symbol drawn at each data point.
func (cv *Curve) SetScatterStyle(style ScatterStyle) { cv.scatterStyle = style }

// SetScatterSize sets the scatter symbol size in pixels.
func (cv *Curve) SetScatterSize(size float64) { cv.scatterSize = size }

// KeyRange returns the span of the data keys.
func (cv *Curve) KeyRange(domain SignDomain) (Range, bool) {
	rng := Range{Lower: math.Inf(1), Upper: math.Inf(-1)}
	found := false
	for _, d := range cv.data {
		if !domain.inSignDomain(d.Key) {
			continue
		}
		rng.Lower = math.Min(rng.Lower, d.Key)
		rng.Upper = math.Max(rng.Upper, d.Key)
		found = true
	}
	return rng, found
}

// ValueRange returns the span of the data values.
func (cv *Curve) ValueRange(domain SignDomain) (Range, bool) {
	rng := Range{Lower: math.Inf(1), Upper: math.Inf(-1)}
	found := false
	for _, d := range cv.data {
		if !domain.inSignDomain(d.Value) {
			continue
		}
		rng.Lower = math.Min(rng.Lower, d.Value)
		rng.Upper = math.Max(rng.Upper, d.Value)
		found = true
	}
	return rng, found
}

// SelectTest returns the distance from pos to the curve: to the line
// representation if one is drawn, otherwise to the nearest data point.
func (cv *Curve) SelectTest(pos Point) float64 {
	if !cv.selectable || len(cv.data) == 0 {
		return -1
	}
	if cv.lineStyle == CurveLineNone && cv.scatterStyle == ScatterNone {
		return -1
	}

	if cv.lineStyle == CurveLineNone || len(cv.data) == 1 {
		minDistSqr := math.Inf(1)
		for _, d := range cv.data {
			p := cv.coordsToPixels(d.Key, d.Value)
			minDistSqr = math.Min(minDistSqr, p.Sub(pos).LengthSquared())
		}
		return math.Sqrt(minDistSqr)
	}

	lineData := cv.curveData()
	minDistSqr := math.Inf(1)
	for i := 0; i+1 < len(lineData); i++ {
		minDistSqr = math.Min(minDistSqr, distSqrToLine(lineData[i], lineData[i+1], pos))
	}
	return math.Sqrt(minDistSqr)
}

// curveRegion returns the region index of a coordinate relative to the
// visible key/value ranges. The extended sides of the visible rect R
// divide the plane into nine regions:
//
//	1 | 4 | 7
//	2 | R | 8
//	3 | 6 | 9
//
// R itself is region 5.
func (cv *Curve) curveRegion(key, value float64) int {
	kr, vr := cv.keyAxis.Range(), cv.valueAxis.Range()
	switch {
	case key < kr.Lower:
		switch {
		case value > vr.Upper:
			return 1
		case value < vr.Lower:
			return 3
		default:
			return 2
		}
	case key > kr.Upper:
		switch {
		case value > vr.Upper:
			return 7
		case value < vr.Lower:
			return 9
		default:
			return 8
		}
	default:
		switch {
		case value > vr.Upper:
			return 4
		case value < vr.Lower:
			return 6
		default:
			return 5
		}
	}
}

// outsidePixels maps an off-rect coordinate to a pixel point placed just
// outside the axis rect on the side of the given region, keeping only
// the coordinate parallel to the crossed rect border. This collapses
// long invisible excursions of the curve to short segments hugging the
// rect without changing what is visible inside it.
func (cv *Curve) outsidePixels(key, value float64, region int) Point {
	const margin = 10
	ar := cv.keyAxis.AxisRect()
	p := cv.coordsToPixels(key, value)
	switch region {
	case 2:
		p.X = ar.Left() - margin
	case 8:
		p.X = ar.Right() + margin
	case 4:
		p.Y = ar.Top() - margin
	case 6:
		p.Y = ar.Bottom() + margin
	case 1:
		p.X, p.Y = ar.Left()-margin, ar.Top()-margin
	case 7:
		p.X, p.Y = ar.Right()+margin, ar.Top()-margin
	case 9:
		p.X, p.Y = ar.Right()+margin, ar.Bottom()+margin
	case 3:
		p.X, p.Y = ar.Left()-margin, ar.Bottom()+margin
	}
	return p
}

// skipsCorner reports whether a segment between two edge regions passes
// diagonally over a corner region, in which case it may still cross the
// visible rect and must not be simplified.
func skipsCorner(a, b int) bool {
	switch {
	case a == 2 && b == 4, a == 4 && b == 2:
		return true
	case a == 4 && b == 8, a == 8 && b == 4:
		return true
	case a == 8 && b == 6, a == 6 && b == 8:
		return true
	case a == 6 && b == 2, a == 2 && b == 6:
		return true
	}
	return false
}

// curveData converts the data points to the pixel polyline of the curve.
// Runs of points that stay inside one off-rect region collapse to their
// boundary-crossing endpoints so the polyline length tracks the visible
// part of the curve, not the data size.
func (cv *Curve) curveData() []Point {
	pts := make([]Point, 0, len(cv.data))
	lastRegion := 5
	addedLast := true
	filled := cv.mainBrush().Visible()
	for i, d := range cv.data {
		region := cv.curveRegion(d.Key, d.Value)
		switch {
		case region == 5 || (i == 0 && filled):
			if !addedLast {
				prev := cv.data[i-1]
				pts = append(pts, cv.coordsToPixels(prev.Key, prev.Value))
			} else if lastRegion != 5 && i > 0 {
				// the previous point was placed at an optimized position;
				// restore it so the entry angle into the rect is right
				prev := cv.data[i-1]
				pts[len(pts)-1] = cv.coordsToPixels(prev.Key, prev.Value)
			}
			pts = append(pts, cv.coordsToPixels(d.Key, d.Value))
			addedLast = true
		case region != lastRegion:
			if lastRegion == 5 || skipsCorner(lastRegion, region) {
				if !addedLast {
					prev := cv.data[i-1]
					pts = append(pts, cv.coordsToPixels(prev.Key, prev.Value))
				}
				pts = append(pts, cv.coordsToPixels(d.Key, d.Value))
			} else {
				if !addedLast {
					prev := cv.data[i-1]
					pts = append(pts, cv.outsidePixels(prev.Key, prev.Value, region))
				}
				pts = append(pts, cv.outsidePixels(d.Key, d.Value, region))
			}
			addedLast = true
		default:
			addedLast = false
		}
		lastRegion = region
	}
	// close the fill correctly when the curve ends outside the rect
	if lastRegion != 5 && filled && len(cv.data) > 0 {
		last := cv.data[len(cv.data)-1]
		pts = append(pts, cv.coordsToPixels(last.Key, last.Value))
	}
	return pts
}

// Draw paints the curve fill, line and scatter symbols.
func (cv *Curve) Draw(c Canvas) {
	if len(cv.data) == 0 {
		return
	}
	lineData := cv.curveData()

	if cv.mainBrush().Visible() && len(lineData) >= 3 {
		cv.applyFillAntialiasingHint(c)
		c.SetBrush(cv.mainBrush())
		c.SetPen(Pen{})
		c.DrawPolygon(lineData)
	}

	if cv.lineStyle != CurveLineNone {
		cv.ApplyDefaultAntialiasingHint(c)
		c.SetPen(cv.mainPen())
		c.SetBrush(Brush{})
		c.DrawPolyline(lineData)
	}

	if cv.scatterStyle != ScatterNone {
		cv.applyScattersAntialiasingHint(c)
		c.SetPen(cv.mainPen())
		for _, d := range cv.data {
			drawScatter(c, cv.coordsToPixels(d.Key, d.Value), cv.scatterStyle, cv.scatterSize, cv.mainPen())
		}
	}
}

// DrawLegendIcon paints a short line segment with the scatter symbol in
// the middle.
func (cv *Curve) DrawLegendIcon(c Canvas, rect Rect) {
	if cv.mainBrush().Visible() {
		c.SetBrush(cv.mainBrush())
		c.SetPen(Pen{})
		c.DrawRect(R(rect.Left(), rect.Top()+rect.H/2, rect.W, rect.H/3))
	}
	if cv.lineStyle != CurveLineNone {
		c.SetPen(cv.mainPen())
		c.DrawLine(Pt(rect.Left(), rect.Center().Y), Pt(rect.Right(), rect.Center().Y))
	}
	if cv.scatterStyle != ScatterNone {
		c.SetPen(cv.mainPen())
		drawScatter(c, rect.Center(), cv.scatterStyle, cv.scatterSize, cv.mainPen())
	}
}
