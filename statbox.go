package plot

import (
	"math"
	"slices"
)

// StatisticalBox plots a single box-and-whisker summary of a sample:
// minimum, lower quartile, median, upper quartile, maximum, plus
// optional outliers.
type StatisticalBox struct {
	PlottableBase

	key           float64
	minimum       float64
	lowerQuartile float64
	median        float64
	upperQuartile float64
	maximum       float64
	outliers      []float64

	width        float64
	whiskerWidth float64
	whiskerPen   Pen
	whiskerBar   Pen
	medianPen    Pen
	outlierStyle ScatterStyle
	outlierSize  float64
	outlierPen   Pen
}

// NewStatisticalBox creates a statistical box bound to the given axes.
// Most callers use Plot.AddStatisticalBox instead.
func NewStatisticalBox(keyAxis, valueAxis *Axis) *StatisticalBox {
	s := &StatisticalBox{
		width:        0.5,
		whiskerWidth: 0.2,
		outlierStyle: ScatterCircle,
		outlierSize:  5,
	}
	s.initPlottable(s, keyAxis, valueAxis)
	s.whiskerPen = Pen{Color: s.pen.Color, Width: 1, Style: PenDash}
	s.whiskerBar = SolidPen(s.pen.Color)
	s.medianPen = Pen{Color: s.pen.Color, Width: 3, Style: PenSolid}
	s.outlierPen = SolidPen(s.pen.Color)
	return s
}

// SetKey sets the key coordinate of the box.
func (s *StatisticalBox) SetKey(key float64) { s.key = key }

// SetData sets the five-number summary. The quantiles should be ordered;
// unordered values are drawn as given.
func (s *StatisticalBox) SetData(minimum, lowerQuartile, median, upperQuartile, maximum float64) {
	s.minimum = minimum
	s.lowerQuartile = lowerQuartile
	s.median = median
	s.upperQuartile = upperQuartile
	s.maximum = maximum
}

// SetOutliers sets the outlier values drawn as scatter symbols beyond
// the whiskers. The slice is copied.
func (s *StatisticalBox) SetOutliers(outliers []float64) {
	s.outliers = slices.Clone(outliers)
}

// SetWidth sets the box width in key coordinates.
func (s *StatisticalBox) SetWidth(width float64) { s.width = width }

// SetWhiskerWidth sets the whisker bar width in key coordinates.
func (s *StatisticalBox) SetWhiskerWidth(width float64) { s.whiskerWidth = width }

// SetWhiskerPen sets the pen of the whisker lines.
func (s *StatisticalBox) SetWhiskerPen(pen Pen) { s.whiskerPen = pen }

// SetMedianPen sets the pen of the median line.
func (s *StatisticalBox) SetMedianPen(pen Pen) { s.medianPen = pen }

// SetOutlierStyle sets the scatter symbol used for outliers.
func (s *StatisticalBox) SetOutlierStyle(style ScatterStyle) { s.outlierStyle = style }

// KeyRange returns the key span covered by box and whisker bars.
func (s *StatisticalBox) KeyRange(domain SignDomain) (Range, bool) {
	if !domain.inSignDomain(s.key) {
		return Range{}, false
	}
	halfWidth := math.Max(s.width, s.whiskerWidth) / 2
	return Range{Lower: s.key - halfWidth, Upper: s.key + halfWidth}, true
}

// ValueRange returns the value span from minimum to maximum, extended by
// any outliers.
func (s *StatisticalBox) ValueRange(domain SignDomain) (Range, bool) {
	rng := Range{Lower: math.Inf(1), Upper: math.Inf(-1)}
	found := false
	for _, v := range [5]float64{s.minimum, s.lowerQuartile, s.median, s.upperQuartile, s.maximum} {
		if !domain.inSignDomain(v) {
			continue
		}
		rng.Lower = math.Min(rng.Lower, v)
		rng.Upper = math.Max(rng.Upper, v)
		found = true
	}
	for _, v := range s.outliers {
		if !domain.inSignDomain(v) {
			continue
		}
		rng.Lower = math.Min(rng.Lower, v)
		rng.Upper = math.Max(rng.Upper, v)
		found = true
	}
	return rng, found
}

// boxRect returns the pixel rectangle of the quartile box.
func (s *StatisticalBox) boxRect() Rect {
	p1 := s.coordsToPixels(s.key-s.width/2, s.lowerQuartile)
	p2 := s.coordsToPixels(s.key+s.width/2, s.upperQuartile)
	return RectFromPoints(p1, p2)
}

// SelectTest returns the distance to the quartile box; the interior hits
// with a distance just below the selection tolerance.
func (s *StatisticalBox) SelectTest(pos Point) float64 {
	if !s.selectable {
		return -1
	}
	tol := 8.0
	if s.plot != nil {
		tol = s.plot.selectionTolerance
	}
	return rectSelectTest(s.boxRect(), pos, true, true, tol)
}

// Draw paints the quartile box, the median line, the whiskers and the
// outlier symbols.
func (s *StatisticalBox) Draw(c Canvas) {
	s.ApplyDefaultAntialiasingHint(c)

	// quartile box:
	c.SetPen(s.mainPen())
	c.SetBrush(s.mainBrush())
	c.DrawRect(s.boxRect())

	// median line:
	c.SetPen(s.medianPen)
	c.DrawLine(s.coordsToPixels(s.key-s.width/2, s.median), s.coordsToPixels(s.key+s.width/2, s.median))

	// whiskers:
	c.SetPen(s.whiskerPen)
	c.DrawLine(s.coordsToPixels(s.key, s.lowerQuartile), s.coordsToPixels(s.key, s.minimum))
	c.DrawLine(s.coordsToPixels(s.key, s.upperQuartile), s.coordsToPixels(s.key, s.maximum))
	c.SetPen(s.whiskerBar)
	c.DrawLine(s.coordsToPixels(s.key-s.whiskerWidth/2, s.minimum), s.coordsToPixels(s.key+s.whiskerWidth/2, s.minimum))
	c.DrawLine(s.coordsToPixels(s.key-s.whiskerWidth/2, s.maximum), s.coordsToPixels(s.key+s.whiskerWidth/2, s.maximum))

	// outliers:
	if s.outlierStyle != ScatterNone {
		s.applyScattersAntialiasingHint(c)
		c.SetPen(s.outlierPen)
		for _, v := range s.outliers {
			drawScatter(c, s.coordsToPixels(s.key, v), s.outlierStyle, s.outlierSize, s.outlierPen)
		}
	}
}

// DrawLegendIcon paints a miniature box with whisker stubs.
func (s *StatisticalBox) DrawLegendIcon(c Canvas, rect Rect) {
	c.SetPen(s.mainPen())
	c.SetBrush(s.mainBrush())
	box := rect.Adjusted(rect.W/4, rect.H/4, -rect.W/4, -rect.H/4)
	c.DrawRect(box)
	c.DrawLine(Pt(box.Center().X, rect.Top()), Pt(box.Center().X, box.Top()))
	c.DrawLine(Pt(box.Center().X, box.Bottom()), Pt(box.Center().X, rect.Bottom()))
}
