package plot

import (
	"image/color"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Orientation distinguishes horizontal from vertical axes.
type Orientation int

const (
	// Horizontal orientation (bottom and top axes).
	Horizontal Orientation = iota
	// Vertical orientation (left and right axes).
	Vertical
)

// AxisSide defines at which side of the axis rect an axis appears. It
// also determines on which side ticks and labels are drawn, and the
// axis orientation.
type AxisSide int

const (
	// SideLeft places the axis left of the axis rect (vertical).
	SideLeft AxisSide = iota
	// SideRight places the axis right of the axis rect (vertical).
	SideRight
	// SideTop places the axis above the axis rect (horizontal).
	SideTop
	// SideBottom places the axis below the axis rect (horizontal).
	SideBottom
)

// Orientation returns the orientation implied by the side.
func (s AxisSide) Orientation() Orientation {
	if s == SideLeft || s == SideRight {
		return Vertical
	}
	return Horizontal
}

// ScaleType defines the coordinate transform of an axis.
type ScaleType int

const (
	// ScaleLinear maps coordinates to pixels linearly.
	ScaleLinear ScaleType = iota
	// ScaleLogarithmic maps coordinates to pixels logarithmically with a
	// configurable base. The axis range must not straddle zero.
	ScaleLogarithmic
)

// AxisParts is a bit set of the selectable regions of an axis.
type AxisParts uint8

const (
	// PartNone selects no part.
	PartNone AxisParts = 0
	// PartAxisLine is the axis baseline with its ticks.
	PartAxisLine AxisParts = 1 << iota
	// PartTickLabels is the band of tick labels.
	PartTickLabels
	// PartAxisLabel is the axis label.
	PartAxisLabel
)

// labelCacheCapacity bounds the per-axis tick label cache.
const labelCacheCapacity = 16

// cachedLabel holds the measured extent of one tick label text. Keyed by
// the label text only; rotation changes clear the whole cache instead of
// keying per angle.
type cachedLabel struct {
	w, h float64
}

// Axis manages a single plot axis: its range, scale type, tick
// generation, coordinate transform, label layout and the grid drawn at
// its tick positions. Axes are created by Plot and drawn as layerables
// on the "axes" layer.
type Axis struct {
	LayerableBase

	side          AxisSide
	scaleType     ScaleType
	scaleLogBase  float64
	logBaseLookup float64 // 1/ln(scaleLogBase)
	rng           Range
	rangeReversed bool
	axisRect      Rect
	grid          *Grid

	// tick configuration
	ticks          bool
	tickLabels     bool
	autoTicks      bool
	autoTickCount  int
	autoTickLabels bool
	autoTickStep   bool
	autoSubTicks   bool
	tickStep       float64
	subTickCount   int
	tickLengthIn   float64
	tickLengthOut  float64
	subTickLenIn   float64
	subTickLenOut  float64

	// generated per draw pass
	tickVector         []float64
	tickVectorLabels   []string
	subTickVector      []float64
	lowestVisibleTick  int
	highestVisibleTick int

	// label style
	tickLabelPadding  float64
	tickLabelRotation float64
	tickLabelFont     Font
	tickLabelColor    color.Color
	numberFormat      byte
	numberPrecision   int
	label             string
	labelFont         Font
	labelColor        color.Color
	labelPadding      float64
	padding           float64

	// pens
	basePen    Pen
	tickPen    Pen
	subTickPen Pen

	// selection
	selectableParts        AxisParts
	selectedParts          AxisParts
	selectedTickLabelFont  Font
	selectedLabelFont      Font
	selectedTickLabelColor color.Color
	selectedLabelColor     color.Color
	selectedBasePen        Pen
	selectedTickPen        Pen
	selectedSubTickPen     Pen

	// selection hit boxes, recomputed every draw
	axisSelectionBox       Rect
	tickLabelsSelectionBox Rect
	labelSelectionBox      Rect

	labelCache   *lru.Cache[string, cachedLabel]
	rangeChanged []func(Range)
}

// newAxis creates an axis for the given side with default styling and
// registers it on the plot's axes layer.
func newAxis(p *Plot, side AxisSide) *Axis {
	a := &Axis{
		side:           side,
		scaleLogBase:   10,
		logBaseLookup:  1 / math.Ln10,
		rng:            Range{Lower: 0, Upper: 5},
		ticks:          true,
		tickLabels:     true,
		autoTicks:      true,
		autoTickCount:  6,
		autoTickLabels: true,
		autoTickStep:   true,
		autoSubTicks:   true,
		tickStep:       1,
		subTickCount:   4,
		tickLengthIn:   5,
		tickLengthOut:  0,
		subTickLenIn:   2,
		subTickLenOut:  0,

		tickLabelFont:   DefaultFont,
		tickLabelColor:  color.Black,
		numberFormat:    'g',
		numberPrecision: 6,
		labelFont:       DefaultFont,
		labelColor:      color.Black,
		padding:         5,

		basePen:    SolidPen(color.Black),
		tickPen:    SolidPen(color.Black),
		subTickPen: SolidPen(color.Black),

		selectableParts:        PartAxisLine | PartTickLabels | PartAxisLabel,
		selectedTickLabelFont:  Font{Size: DefaultFont.Size, Bold: true},
		selectedLabelFont:      Font{Size: DefaultFont.Size, Bold: true},
		selectedTickLabelColor: color.RGBA{B: 255, A: 255},
		selectedLabelColor:     color.RGBA{B: 255, A: 255},
		selectedBasePen:        Pen{Color: color.RGBA{B: 255, A: 255}, Width: 2, Style: PenSolid},
		selectedTickPen:        Pen{Color: color.RGBA{B: 255, A: 255}, Width: 2, Style: PenSolid},
		selectedSubTickPen:     Pen{Color: color.RGBA{B: 255, A: 255}, Width: 2, Style: PenSolid},

		lowestVisibleTick:  0,
		highestVisibleTick: -1,
	}
	// lru.New errors only for a non-positive size.
	a.labelCache, _ = lru.New[string, cachedLabel](labelCacheCapacity)
	switch side {
	case SideTop:
		a.tickLabelPadding, a.labelPadding = 3, 6
	case SideRight:
		a.tickLabelPadding, a.labelPadding = 7, 12
	case SideBottom:
		a.tickLabelPadding, a.labelPadding = 3, 3
	case SideLeft:
		a.tickLabelPadding, a.labelPadding = 5, 10
	}
	a.initLayerable(a, p)
	a.SetAntialiased(false)
	a.grid = newGrid(a)
	return a
}

// Side returns the side of the axis rect the axis is attached to.
func (a *Axis) Side() AxisSide { return a.side }

// Orientation returns whether the axis is horizontal or vertical.
func (a *Axis) Orientation() Orientation { return a.side.Orientation() }

// Grid returns the grid drawn at this axis's tick positions.
func (a *Axis) Grid() *Grid { return a.grid }

// Range returns the current axis range.
func (a *Axis) Range() Range { return a.rng }

// ScaleType returns the current scale type.
func (a *Axis) ScaleType() ScaleType { return a.scaleType }

// SetScaleType sets whether the axis maps coordinates linearly or
// logarithmically. Switching to logarithmic immediately re-sanitizes the
// current range for sign-domain validity.
func (a *Axis) SetScaleType(t ScaleType) {
	a.scaleType = t
	if a.scaleType == ScaleLogarithmic {
		a.rng = a.rng.SanitizedForLogScale()
	}
}

// ScaleLogBase returns the logarithm base used on logarithmic scales.
func (a *Axis) ScaleLogBase() float64 { return a.scaleLogBase }

// SetScaleLogBase sets the logarithm base used on logarithmic scales.
// A base not greater than 1 is rejected with a diagnostic.
func (a *Axis) SetScaleLogBase(base float64) {
	if base <= 1 {
		Logger().Warn("plot: invalid logarithmic scale base", "base", base)
		return
	}
	a.scaleLogBase = base
	a.logBaseLookup = 1 / math.Log(base)
}

// baseLog computes the logarithm of value to the scale log base.
func (a *Axis) baseLog(value float64) float64 {
	return math.Log(value) * a.logBaseLookup
}

// basePow raises the scale log base to the given power.
func (a *Axis) basePow(value float64) float64 {
	return math.Pow(a.scaleLogBase, value)
}

// SetRange sets the axis range. Invalid ranges (NaN/Inf bounds, bounds
// out of magnitude, degenerate span) are silently ignored and the prior
// range is kept. Setting a range equal to the current one is a no-op and
// notifies nobody; this short-circuit is what terminates range-changed
// cascades between mutually linked axes.
func (a *Axis) SetRange(r Range) {
	if r.Lower == a.rng.Lower && r.Upper == a.rng.Upper {
		return
	}
	if !ValidRange(r) {
		return
	}
	if a.scaleType == ScaleLogarithmic {
		a.rng = r.SanitizedForLogScale()
	} else {
		a.rng = r.SanitizedForLinScale()
	}
	a.notifyRangeChanged()
}

// SetRangeBounds is SetRange on raw bounds.
func (a *Axis) SetRangeBounds(lower, upper float64) {
	a.SetRange(Range{Lower: lower, Upper: upper})
}

// SetRangeLower moves only the lower bound of the axis range.
func (a *Axis) SetRangeLower(lower float64) {
	if lower == a.rng.Lower {
		return
	}
	a.rng.Lower = lower
	if a.scaleType == ScaleLogarithmic {
		a.rng = a.rng.SanitizedForLogScale()
	} else {
		a.rng = a.rng.SanitizedForLinScale()
	}
	a.notifyRangeChanged()
}

// SetRangeUpper moves only the upper bound of the axis range.
func (a *Axis) SetRangeUpper(upper float64) {
	if upper == a.rng.Upper {
		return
	}
	a.rng.Upper = upper
	if a.scaleType == ScaleLogarithmic {
		a.rng = a.rng.SanitizedForLogScale()
	} else {
		a.rng = a.rng.SanitizedForLinScale()
	}
	a.notifyRangeChanged()
}

// RangeReversed reports whether the axis direction is inverted.
func (a *Axis) RangeReversed() bool { return a.rangeReversed }

// SetRangeReversed inverts the direction of the axis: the upper bound is
// drawn where the lower bound normally sits. The range stays normalized,
// only the visual direction flips.
func (a *Axis) SetRangeReversed(reversed bool) { a.rangeReversed = reversed }

// OnRangeChanged registers a handler invoked synchronously whenever the
// axis range changes. Linking two axes is a matter of subscribing each
// one's SetRange to the other's notification; the equal-range
// short-circuit in SetRange stops the cascade after one round-trip.
func (a *Axis) OnRangeChanged(handler func(Range)) {
	a.rangeChanged = append(a.rangeChanged, handler)
}

func (a *Axis) notifyRangeChanged() {
	for _, h := range a.rangeChanged {
		h(a.rng)
	}
}

// ScaleRange scales the range by factor around center. On logarithmic
// scales the scaling is multiplicative and center must lie in the same
// sign domain as the range; a mismatch leaves the range unchanged and
// emits a diagnostic.
func (a *Axis) ScaleRange(factor, center float64) {
	if a.scaleType == ScaleLinear {
		newRange := Range{
			Lower: (a.rng.Lower-center)*factor + center,
			Upper: (a.rng.Upper-center)*factor + center,
		}
		if ValidRange(newRange) {
			a.rng = newRange.SanitizedForLinScale()
			a.notifyRangeChanged()
		}
		return
	}
	if (a.rng.Upper < 0 && center < 0) || (a.rng.Upper > 0 && center > 0) {
		newRange := Range{
			Lower: math.Pow(a.rng.Lower/center, factor) * center,
			Upper: math.Pow(a.rng.Upper/center, factor) * center,
		}
		if ValidRange(newRange) {
			a.rng = newRange.SanitizedForLogScale()
			a.notifyRangeChanged()
		}
		return
	}
	Logger().Warn("plot: scale center not in same logarithmic sign domain as range", "center", center)
}

// SetScaleRatio adjusts this axis's range so that one plot coordinate
// unit corresponds to ratio units of other, measured in pixels. Useful
// to enforce a 1:1 aspect between two axes for the current layout.
func (a *Axis) SetScaleRatio(other *Axis, ratio float64) {
	ownPixelSize := a.axisRect.H
	if a.Orientation() == Horizontal {
		ownPixelSize = a.axisRect.W
	}
	otherPixelSize := other.axisRect.H
	if other.Orientation() == Horizontal {
		otherPixelSize = other.axisRect.W
	}
	if otherPixelSize == 0 {
		return
	}
	newRangeSize := ratio * other.rng.Size() * ownPixelSize / otherPixelSize
	center := a.rng.Center()
	a.SetRange(Range{Lower: center - newRangeSize/2, Upper: center + newRangeSize/2})
}

// PixelToCoord transforms a pixel position on the axis's orientation
// direction to a plot coordinate. Exact inverse of CoordToPixel up to
// floating point rounding.
func (a *Axis) PixelToCoord(value float64) float64 {
	if a.Orientation() == Horizontal {
		if a.scaleType == ScaleLinear {
			if !a.rangeReversed {
				return (value-a.axisRect.Left())/a.axisRect.W*a.rng.Size() + a.rng.Lower
			}
			return -(value-a.axisRect.Left())/a.axisRect.W*a.rng.Size() + a.rng.Upper
		}
		if !a.rangeReversed {
			return math.Pow(a.rng.Upper/a.rng.Lower, (value-a.axisRect.Left())/a.axisRect.W) * a.rng.Lower
		}
		return math.Pow(a.rng.Upper/a.rng.Lower, (a.axisRect.Left()-value)/a.axisRect.W) * a.rng.Upper
	}
	if a.scaleType == ScaleLinear {
		if !a.rangeReversed {
			return (a.axisRect.Bottom()-value)/a.axisRect.H*a.rng.Size() + a.rng.Lower
		}
		return -(a.axisRect.Bottom()-value)/a.axisRect.H*a.rng.Size() + a.rng.Upper
	}
	if !a.rangeReversed {
		return math.Pow(a.rng.Upper/a.rng.Lower, (a.axisRect.Bottom()-value)/a.axisRect.H) * a.rng.Lower
	}
	return math.Pow(a.rng.Upper/a.rng.Lower, (value-a.axisRect.Bottom())/a.axisRect.H) * a.rng.Upper
}

// CoordToPixel transforms a plot coordinate to a pixel position along
// the axis's orientation direction. On logarithmic scales, values whose
// sign is incompatible with the range are pushed far outside the visible
// pixel span instead of producing an error.
func (a *Axis) CoordToPixel(value float64) float64 {
	if a.Orientation() == Horizontal {
		if a.scaleType == ScaleLinear {
			if !a.rangeReversed {
				return (value-a.rng.Lower)/a.rng.Size()*a.axisRect.W + a.axisRect.Left()
			}
			return (a.rng.Upper-value)/a.rng.Size()*a.axisRect.W + a.axisRect.Left()
		}
		switch {
		case value >= 0 && a.rng.Upper < 0:
			if !a.rangeReversed {
				return a.axisRect.Right() + 200
			}
			return a.axisRect.Left() - 200
		case value <= 0 && a.rng.Upper > 0:
			if !a.rangeReversed {
				return a.axisRect.Left() - 200
			}
			return a.axisRect.Right() + 200
		}
		if !a.rangeReversed {
			return a.baseLog(value/a.rng.Lower)/a.baseLog(a.rng.Upper/a.rng.Lower)*a.axisRect.W + a.axisRect.Left()
		}
		return a.baseLog(a.rng.Upper/value)/a.baseLog(a.rng.Upper/a.rng.Lower)*a.axisRect.W + a.axisRect.Left()
	}
	if a.scaleType == ScaleLinear {
		if !a.rangeReversed {
			return a.axisRect.Bottom() - (value-a.rng.Lower)/a.rng.Size()*a.axisRect.H
		}
		return a.axisRect.Bottom() - (a.rng.Upper-value)/a.rng.Size()*a.axisRect.H
	}
	switch {
	case value >= 0 && a.rng.Upper < 0:
		if !a.rangeReversed {
			return a.axisRect.Top() - 200
		}
		return a.axisRect.Bottom() + 200
	case value <= 0 && a.rng.Upper > 0:
		if !a.rangeReversed {
			return a.axisRect.Bottom() + 200
		}
		return a.axisRect.Top() - 200
	}
	if !a.rangeReversed {
		return a.axisRect.Bottom() - a.baseLog(value/a.rng.Lower)/a.baseLog(a.rng.Upper/a.rng.Lower)*a.axisRect.H
	}
	return a.axisRect.Bottom() - a.baseLog(a.rng.Upper/value)/a.baseLog(a.rng.Upper/a.rng.Lower)*a.axisRect.H
}

// AxisRect returns the pixel rectangle the axis frames.
func (a *Axis) AxisRect() Rect { return a.axisRect }

// setAxisRect is called by the plot layout pass.
func (a *Axis) setAxisRect(r Rect) { a.axisRect = r }

// SetTicks sets whether tick marks are drawn.
func (a *Axis) SetTicks(show bool) { a.ticks = show }

// SetTickLabels sets whether tick labels are drawn.
func (a *Axis) SetTickLabels(show bool) { a.tickLabels = show }

// TickLabels reports whether tick labels are drawn.
func (a *Axis) TickLabels() bool { return a.tickLabels }

// SetAutoTicks sets whether tick positions are generated automatically.
// When disabled, provide positions with SetTickVector.
func (a *Axis) SetAutoTicks(on bool) { a.autoTicks = on }

// SetAutoTickCount sets approximately how many ticks an automatically
// ticked axis aims for. Values below one are rejected with a diagnostic.
func (a *Axis) SetAutoTickCount(count int) {
	if count < 1 {
		Logger().Warn("plot: illegal auto tick count", "count", count)
		return
	}
	a.autoTickCount = count
}

// SetAutoTickLabels sets whether tick labels are generated from the tick
// positions. When disabled, provide labels with SetTickVectorLabels.
func (a *Axis) SetAutoTickLabels(on bool) { a.autoTickLabels = on }

// SetAutoTickStep sets whether the tick step is chosen automatically.
// When disabled, the step set with SetTickStep is used.
func (a *Axis) SetAutoTickStep(on bool) { a.autoTickStep = on }

// SetAutoSubTicks sets whether the sub-tick count is derived from the
// tick step. When disabled, the count set with SetSubTickCount is used.
func (a *Axis) SetAutoSubTicks(on bool) { a.autoSubTicks = on }

// SetTickStep sets the coordinate distance between ticks used when the
// automatic tick step is disabled.
func (a *Axis) SetTickStep(step float64) {
	if step <= 0 {
		Logger().Warn("plot: illegal tick step", "step", step)
		return
	}
	a.tickStep = step
}

// TickStep returns the current tick step.
func (a *Axis) TickStep() float64 { return a.tickStep }

// SetTickVector sets explicit tick positions, ascending, used when auto
// ticks are disabled. The slice is copied.
func (a *Axis) SetTickVector(ticks []float64) {
	a.tickVector = append(a.tickVector[:0], ticks...)
}

// TickVector returns the current tick positions. Valid after the last
// replot (or call to setupTickVectors).
func (a *Axis) TickVector() []float64 { return a.tickVector }

// SetTickVectorLabels sets explicit tick labels, parallel to the tick
// vector, used when auto tick labels are disabled. The slice is copied.
func (a *Axis) SetTickVectorLabels(labels []string) {
	a.tickVectorLabels = append(a.tickVectorLabels[:0], labels...)
}

// TickVectorLabels returns the current tick labels.
func (a *Axis) TickVectorLabels() []string { return a.tickVectorLabels }

// SubTickVector returns the current sub-tick positions.
func (a *Axis) SubTickVector() []float64 { return a.subTickVector }

// VisibleTickBounds returns the indices of the first and last tick that
// lie inside the current range. When no tick is inside the range,
// lowIndex is greater than highIndex.
func (a *Axis) VisibleTickBounds() (lowIndex, highIndex int) {
	return a.visibleTickBounds()
}

// SetSubTickCount sets the number of sub-ticks between ticks used when
// automatic sub-ticks are disabled (and as fallback for tick steps with
// no table entry).
func (a *Axis) SetSubTickCount(count int) { a.subTickCount = count }

// SubTickCount returns the current sub-tick count.
func (a *Axis) SubTickCount() int { return a.subTickCount }

// SetTickLength sets the lengths of tick marks inside and outside the
// axis rect, in pixels.
func (a *Axis) SetTickLength(inside, outside float64) {
	a.tickLengthIn = inside
	a.tickLengthOut = outside
}

// SetSubTickLength sets the lengths of sub-tick marks inside and outside
// the axis rect, in pixels.
func (a *Axis) SetSubTickLength(inside, outside float64) {
	a.subTickLenIn = inside
	a.subTickLenOut = outside
}

// SetTickLabelPadding sets the distance between tick marks and labels.
func (a *Axis) SetTickLabelPadding(padding float64) { a.tickLabelPadding = padding }

// SetTickLabelRotation sets the tick label rotation in degrees. The
// label cache is cleared because cached extents are rotation dependent.
func (a *Axis) SetTickLabelRotation(degrees float64) {
	a.tickLabelRotation = math.Max(-90, math.Min(90, degrees))
	a.labelCache.Purge()
}

// SetTickLabelFont sets the tick label font and clears the label cache.
func (a *Axis) SetTickLabelFont(f Font) {
	a.tickLabelFont = f
	a.labelCache.Purge()
}

// SetTickLabelColor sets the tick label color and clears the label cache.
func (a *Axis) SetTickLabelColor(c color.Color) {
	a.tickLabelColor = c
	a.labelCache.Purge()
}

// SetNumberFormat sets the format verb used for automatic tick labels:
// 'f', 'e' or 'g' as understood by strconv.FormatFloat.
func (a *Axis) SetNumberFormat(format byte) {
	switch format {
	case 'f', 'e', 'E', 'g', 'G':
		a.numberFormat = format
	default:
		Logger().Warn("plot: invalid number format", "format", string(format))
	}
}

// SetNumberPrecision sets the precision used for automatic tick labels.
func (a *Axis) SetNumberPrecision(precision int) { a.numberPrecision = precision }

// SetLabel sets the axis label drawn beyond the tick labels.
func (a *Axis) SetLabel(label string) { a.label = label }

// Label returns the axis label.
func (a *Axis) Label() string { return a.label }

// SetLabelFont sets the axis label font.
func (a *Axis) SetLabelFont(f Font) { a.labelFont = f }

// SetLabelColor sets the axis label color.
func (a *Axis) SetLabelColor(c color.Color) { a.labelColor = c }

// SetLabelPadding sets the distance between tick labels and axis label.
func (a *Axis) SetLabelPadding(padding float64) { a.labelPadding = padding }

// SetPadding sets the outer padding between the axis's outermost text
// and the viewport border.
func (a *Axis) SetPadding(padding float64) { a.padding = padding }

// SetBasePen sets the pen of the axis baseline.
func (a *Axis) SetBasePen(pen Pen) { a.basePen = pen }

// SetTickPen sets the pen of the tick marks.
func (a *Axis) SetTickPen(pen Pen) { a.tickPen = pen }

// SetSubTickPen sets the pen of the sub-tick marks.
func (a *Axis) SetSubTickPen(pen Pen) { a.subTickPen = pen }

// SetSelectableParts sets which axis parts the user may select.
func (a *Axis) SetSelectableParts(parts AxisParts) { a.selectableParts = parts }

// SelectableParts returns which axis parts the user may select.
func (a *Axis) SelectableParts() AxisParts { return a.selectableParts }

// SetSelectedParts sets the current selection state of the axis parts.
func (a *Axis) SetSelectedParts(parts AxisParts) { a.selectedParts = parts }

// SelectedParts returns the currently selected axis parts.
func (a *Axis) SelectedParts() AxisParts { return a.selectedParts }

// SelectTest returns the axis part containing pos, based on the
// rectangular hit boxes computed during the last draw. Invisible axes
// report PartNone.
func (a *Axis) SelectTest(pos Point) AxisParts {
	if !a.Visible() {
		return PartNone
	}
	switch {
	case a.axisSelectionBox.Contains(pos):
		return PartAxisLine
	case a.tickLabelsSelectionBox.Contains(pos):
		return PartTickLabels
	case a.labelSelectionBox.Contains(pos):
		return PartAxisLabel
	default:
		return PartNone
	}
}

// labelSize measures a tick label, caching the result keyed by text.
func (a *Axis) labelSize(c Canvas, text string) (w, h float64) {
	if l, ok := a.labelCache.Get(text); ok {
		return l.w, l.h
	}
	mw, mh := c.MeasureText(text, a.tickLabelFont)
	a.labelCache.Add(text, cachedLabel{w: mw, h: mh})
	return mw, mh
}

// rotatedLabelSize returns the bounding box of a tick label after
// applying the tick label rotation.
func (a *Axis) rotatedLabelSize(c Canvas, text string) (w, h float64) {
	w, h = a.labelSize(c, text)
	if a.tickLabelRotation != 0 {
		rad := a.tickLabelRotation * math.Pi / 180
		sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
		w, h = w*cos+h*sin, w*sin+h*cos
	}
	return w, h
}

// CalculateMargin returns the pixel margin this axis needs between the
// viewport border and the axis rect so its ticks and labels fit: the
// outward tick length, the largest tick label extent plus tick label
// padding, the axis label height plus label padding, plus the outer
// padding. A bare axis still reserves a minimum of 15 pixels.
func (a *Axis) CalculateMargin(c Canvas) float64 {
	margin := 0.0
	if a.Visible() {
		margin += math.Max(0, math.Max(a.tickLengthOut, a.subTickLenOut))
		if a.tickLabels {
			maxW, maxH := 0.0, 0.0
			low, high := a.visibleTickBounds()
			for i := low; i <= high && i < len(a.tickVectorLabels); i++ {
				w, h := a.rotatedLabelSize(c, a.tickVectorLabels[i])
				maxW = math.Max(maxW, w)
				maxH = math.Max(maxH, h)
			}
			if a.Orientation() == Horizontal {
				margin += maxH + a.tickLabelPadding
			} else {
				margin += maxW + a.tickLabelPadding
			}
		}
		if a.label != "" {
			_, h := c.MeasureText(a.label, a.labelFont)
			margin += h + a.labelPadding
		}
	}
	margin += a.padding
	// a bit of margin even if no axis text is shown at all
	return math.Max(margin, 15)
}

// ApplyDefaultAntialiasingHint applies the axis element antialiasing
// policy to the canvas.
func (a *Axis) ApplyDefaultAntialiasingHint(c Canvas) {
	a.applyAntialiasingHint(c, a.Antialiased(), AEAxes)
}

// getBasePen returns the pen for the baseline, honoring selection state.
func (a *Axis) getBasePen() Pen {
	if a.selectedParts&PartAxisLine != 0 {
		return a.selectedBasePen
	}
	return a.basePen
}

func (a *Axis) getTickPen() Pen {
	if a.selectedParts&PartAxisLine != 0 {
		return a.selectedTickPen
	}
	return a.tickPen
}

func (a *Axis) getSubTickPen() Pen {
	if a.selectedParts&PartAxisLine != 0 {
		return a.selectedSubTickPen
	}
	return a.subTickPen
}

func (a *Axis) getTickLabelFont() Font {
	if a.selectedParts&PartTickLabels != 0 {
		return a.selectedTickLabelFont
	}
	return a.tickLabelFont
}

func (a *Axis) getTickLabelColor() color.Color {
	if a.selectedParts&PartTickLabels != 0 {
		return a.selectedTickLabelColor
	}
	return a.tickLabelColor
}

func (a *Axis) getLabelFont() Font {
	if a.selectedParts&PartAxisLabel != 0 {
		return a.selectedLabelFont
	}
	return a.labelFont
}

func (a *Axis) getLabelColor() color.Color {
	if a.selectedParts&PartAxisLabel != 0 {
		return a.selectedLabelColor
	}
	return a.labelColor
}

// Draw paints baseline, ticks, sub-ticks, tick labels and the axis
// label, and recomputes the selection hit boxes.
func (a *Axis) Draw(c Canvas) {
	var origin Point
	switch a.side {
	case SideLeft:
		origin = a.axisRect.BottomLeft()
	case SideRight:
		origin = a.axisRect.BottomRight()
	case SideTop:
		origin = a.axisRect.TopLeft()
	case SideBottom:
		origin = a.axisRect.BottomLeft()
	}

	margin := 0.0
	lowTick, highTick := a.lowestVisibleTick, a.highestVisibleTick

	// baseline:
	c.SetPen(a.getBasePen())
	if a.Orientation() == Horizontal {
		c.DrawLine(origin, origin.Add(Pt(a.axisRect.W, 0)))
	} else {
		c.DrawLine(origin, origin.Add(Pt(0, -a.axisRect.H)))
	}

	// tick direction: "inward" is right for the left axis, left for the
	// right axis, analogous vertically
	tickDir := 1.0
	if a.side == SideBottom || a.side == SideRight {
		tickDir = -1.0
	}

	if a.ticks {
		c.SetPen(a.getTickPen())
		for i := lowTick; i <= highTick && i < len(a.tickVector); i++ {
			t := a.CoordToPixel(a.tickVector[i])
			if a.Orientation() == Horizontal {
				c.DrawLine(Pt(t, origin.Y-a.tickLengthOut*tickDir), Pt(t, origin.Y+a.tickLengthIn*tickDir))
			} else {
				c.DrawLine(Pt(origin.X-a.tickLengthOut*tickDir, t), Pt(origin.X+a.tickLengthIn*tickDir, t))
			}
		}
	}

	if a.ticks && a.subTickCount > 0 {
		c.SetPen(a.getSubTickPen())
		// subticks are only generated inside the current range, no
		// bounds check needed
		for _, st := range a.subTickVector {
			t := a.CoordToPixel(st)
			if a.Orientation() == Horizontal {
				c.DrawLine(Pt(t, origin.Y-a.subTickLenOut*tickDir), Pt(t, origin.Y+a.subTickLenIn*tickDir))
			} else {
				c.DrawLine(Pt(origin.X-a.subTickLenOut*tickDir, t), Pt(origin.X+a.subTickLenIn*tickDir, t))
			}
		}
	}
	margin += math.Max(0, math.Max(a.tickLengthOut, a.subTickLenOut))

	// tick labels:
	maxLabelW, maxLabelH := 0.0, 0.0
	if a.tickLabels {
		margin += a.tickLabelPadding
		for i := lowTick; i <= highTick && i < len(a.tickVector) && i < len(a.tickVectorLabels); i++ {
			t := a.CoordToPixel(a.tickVector[i])
			a.placeTickLabel(c, t, margin, a.tickVectorLabels[i])
			w, h := a.rotatedLabelSize(c, a.tickVectorLabels[i])
			maxLabelW = math.Max(maxLabelW, w)
			maxLabelH = math.Max(maxLabelH, h)
		}
	}
	if a.Orientation() == Horizontal {
		margin += maxLabelH
	} else {
		margin += maxLabelW
	}

	// axis label:
	labelH := 0.0
	if a.label != "" {
		margin += a.labelPadding
		_, labelH = c.MeasureText(a.label, a.getLabelFont())
		c.SetPen(SolidPen(a.getLabelColor()))
		switch a.side {
		case SideLeft:
			c.DrawText(Pt(origin.X-margin-labelH/2, a.axisRect.Center().Y), a.label, a.getLabelFont(), AlignCenter, -90)
		case SideRight:
			c.DrawText(Pt(origin.X+margin+labelH/2, a.axisRect.Center().Y), a.label, a.getLabelFont(), AlignCenter, 90)
		case SideTop:
			c.DrawText(Pt(a.axisRect.Center().X, origin.Y-margin-labelH/2), a.label, a.getLabelFont(), AlignCenter, 0)
		case SideBottom:
			c.DrawText(Pt(a.axisRect.Center().X, origin.Y+margin+labelH/2), a.label, a.getLabelFont(), AlignCenter, 0)
		}
	}

	a.updateSelectionBoxes(maxLabelW, maxLabelH, labelH)
}

// placeTickLabel draws one tick label at the given pixel position along
// the axis, offset from the axis rect by distanceToAxis.
func (a *Axis) placeTickLabel(c Canvas, position, distanceToAxis float64, text string) {
	c.SetPen(SolidPen(a.getTickLabelColor()))
	font := a.getTickLabelFont()
	switch a.side {
	case SideLeft:
		c.DrawText(Pt(a.axisRect.Left()-distanceToAxis, position), text, font, AlignCenterRight, a.tickLabelRotation)
	case SideRight:
		c.DrawText(Pt(a.axisRect.Right()+distanceToAxis, position), text, font, AlignCenterLeft, a.tickLabelRotation)
	case SideTop:
		c.DrawText(Pt(position, a.axisRect.Top()-distanceToAxis), text, font, AlignBottomCenter, a.tickLabelRotation)
	case SideBottom:
		c.DrawText(Pt(position, a.axisRect.Bottom()+distanceToAxis), text, font, AlignTopCenter, a.tickLabelRotation)
	}
}

// updateSelectionBoxes recomputes the rectangular hit boxes used by
// SelectTest, from the same offsets the draw pass used.
func (a *Axis) updateSelectionBoxes(maxLabelW, maxLabelH, labelH float64) {
	tol := 8.0
	if a.plot != nil {
		tol = a.plot.selectionTolerance
	}
	outSize := math.Max(math.Max(a.tickLengthOut, a.subTickLenOut), tol)
	inSize := tol
	tickLabelSize := maxLabelH
	if a.Orientation() == Vertical {
		tickLabelSize = maxLabelW
	}
	tickLabelOffset := math.Max(a.tickLengthOut, a.subTickLenOut) + a.tickLabelPadding
	labelOffset := tickLabelOffset + tickLabelSize + a.labelPadding

	r := a.axisRect
	switch a.side {
	case SideLeft:
		a.axisSelectionBox = RectFromPoints(Pt(r.Left()-outSize, r.Top()), Pt(r.Left()+inSize, r.Bottom()))
		a.tickLabelsSelectionBox = RectFromPoints(Pt(r.Left()-tickLabelOffset-tickLabelSize, r.Top()), Pt(r.Left()-tickLabelOffset, r.Bottom()))
		a.labelSelectionBox = RectFromPoints(Pt(r.Left()-labelOffset-labelH, r.Top()), Pt(r.Left()-labelOffset, r.Bottom()))
	case SideRight:
		a.axisSelectionBox = RectFromPoints(Pt(r.Right()-inSize, r.Top()), Pt(r.Right()+outSize, r.Bottom()))
		a.tickLabelsSelectionBox = RectFromPoints(Pt(r.Right()+tickLabelOffset, r.Top()), Pt(r.Right()+tickLabelOffset+tickLabelSize, r.Bottom()))
		a.labelSelectionBox = RectFromPoints(Pt(r.Right()+labelOffset, r.Top()), Pt(r.Right()+labelOffset+labelH, r.Bottom()))
	case SideTop:
		a.axisSelectionBox = RectFromPoints(Pt(r.Left(), r.Top()-outSize), Pt(r.Right(), r.Top()+inSize))
		a.tickLabelsSelectionBox = RectFromPoints(Pt(r.Left(), r.Top()-tickLabelOffset-tickLabelSize), Pt(r.Right(), r.Top()-tickLabelOffset))
		a.labelSelectionBox = RectFromPoints(Pt(r.Left(), r.Top()-labelOffset-labelH), Pt(r.Right(), r.Top()-labelOffset))
	case SideBottom:
		a.axisSelectionBox = RectFromPoints(Pt(r.Left(), r.Bottom()-inSize), Pt(r.Right(), r.Bottom()+outSize))
		a.tickLabelsSelectionBox = RectFromPoints(Pt(r.Left(), r.Bottom()+tickLabelOffset), Pt(r.Right(), r.Bottom()+tickLabelOffset+tickLabelSize))
		a.labelSelectionBox = RectFromPoints(Pt(r.Left(), r.Bottom()+labelOffset), Pt(r.Right(), r.Bottom()+labelOffset+labelH))
	}
}
