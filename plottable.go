package plot

import (
	"image/color"
	"math"
)

// SignDomain restricts which data points contribute to a data range
// query. Logarithmic axes only rescale over the sign domain their
// current range occupies.
type SignDomain int

const (
	// SignNegative considers only data points with negative coordinates.
	SignNegative SignDomain = iota - 1
	// SignBoth considers all data points.
	SignBoth
	// SignPositive considers only data points with positive coordinates.
	SignPositive
)

// inSignDomain reports whether value belongs to the domain.
func (d SignDomain) inSignDomain(value float64) bool {
	switch d {
	case SignNegative:
		return value < 0
	case SignPositive:
		return value > 0
	default:
		return true
	}
}

// Plottable is a data representation inside the plot: graphs, bar
// charts, statistical boxes. Every plottable is bound to a key axis and
// a value axis that define its coordinate system.
type Plottable interface {
	Layerable

	// Name returns the name shown in the legend.
	Name() string
	// KeyAxis returns the axis the data keys are plotted against.
	KeyAxis() *Axis
	// ValueAxis returns the axis the data values are plotted against.
	ValueAxis() *Axis
	// SelectTest returns the shortest pixel distance from pos to the
	// plottable's data representation, or a negative value if it cannot
	// be hit at pos.
	SelectTest(pos Point) float64
	// KeyRange returns the span of the data keys in the given sign
	// domain; ok is false when no data point qualifies.
	KeyRange(domain SignDomain) (rng Range, ok bool)
	// ValueRange returns the span of the data values in the given sign
	// domain; ok is false when no data point qualifies.
	ValueRange(domain SignDomain) (rng Range, ok bool)
	// DrawLegendIcon paints the plottable's representation icon into the
	// given legend icon rect.
	DrawLegendIcon(c Canvas, rect Rect)

	plottableBase() *PlottableBase
}

// PlottableBase carries the state shared by all plottables: name, axis
// binding, pens, brushes and selection state. Concrete plottables embed
// it and call initPlottable.
type PlottableBase struct {
	LayerableBase

	name       string
	keyAxis    *Axis
	valueAxis  *Axis
	selectable bool
	selected   bool

	pen           Pen
	selectedPen   Pen
	brush         Brush
	selectedBrush Brush

	antialiasedFill     bool
	antialiasedScatters bool
	antialiasedErrors   bool
}

func (pb *PlottableBase) initPlottable(self Plottable, keyAxis, valueAxis *Axis) {
	pb.initLayerable(self, keyAxis.plot)
	pb.keyAxis = keyAxis
	pb.valueAxis = valueAxis
	pb.selectable = true
	pb.pen = SolidPen(color.Black)
	pb.selectedPen = Pen{Color: color.RGBA{R: 255, G: 50, B: 10, A: 255}, Width: 2.5, Style: PenSolid}
	pb.brush = Brush{}
	pb.selectedBrush = Brush{}
	pb.antialiasedFill = true
	pb.antialiasedScatters = true
	pb.antialiasedErrors = false
}

func (pb *PlottableBase) plottableBase() *PlottableBase { return pb }

// Name returns the name shown in the legend.
func (pb *PlottableBase) Name() string { return pb.name }

// SetName sets the name shown in the legend.
func (pb *PlottableBase) SetName(name string) { pb.name = name }

// KeyAxis returns the axis the data keys are plotted against.
func (pb *PlottableBase) KeyAxis() *Axis { return pb.keyAxis }

// ValueAxis returns the axis the data values are plotted against.
func (pb *PlottableBase) ValueAxis() *Axis { return pb.valueAxis }

// SetAxes rebinds the plottable to a different key and value axis pair.
func (pb *PlottableBase) SetAxes(keyAxis, valueAxis *Axis) {
	pb.keyAxis = keyAxis
	pb.valueAxis = valueAxis
}

// Selectable reports whether the user may select the plottable.
func (pb *PlottableBase) Selectable() bool { return pb.selectable }

// SetSelectable sets whether the user may select the plottable.
func (pb *PlottableBase) SetSelectable(on bool) { pb.selectable = on }

// Selected reports whether the plottable is currently selected.
func (pb *PlottableBase) Selected() bool { return pb.selected }

// SetSelected sets the selection state.
func (pb *PlottableBase) SetSelected(on bool) { pb.selected = on }

// Pen returns the pen used to draw the plottable.
func (pb *PlottableBase) Pen() Pen { return pb.pen }

// SetPen sets the pen used to draw the plottable.
func (pb *PlottableBase) SetPen(pen Pen) { pb.pen = pen }

// SetSelectedPen sets the pen used while the plottable is selected.
func (pb *PlottableBase) SetSelectedPen(pen Pen) { pb.selectedPen = pen }

// Brush returns the brush used to fill the plottable.
func (pb *PlottableBase) Brush() Brush { return pb.brush }

// SetBrush sets the brush used to fill the plottable.
func (pb *PlottableBase) SetBrush(brush Brush) { pb.brush = brush }

// SetSelectedBrush sets the brush used while the plottable is selected.
func (pb *PlottableBase) SetSelectedBrush(brush Brush) { pb.selectedBrush = brush }

// SetAntialiasedFill sets whether fills are antialiased.
func (pb *PlottableBase) SetAntialiasedFill(on bool) { pb.antialiasedFill = on }

// SetAntialiasedScatters sets whether scatter symbols are antialiased.
func (pb *PlottableBase) SetAntialiasedScatters(on bool) { pb.antialiasedScatters = on }

// SetAntialiasedErrorBars sets whether error bars are antialiased.
func (pb *PlottableBase) SetAntialiasedErrorBars(on bool) { pb.antialiasedErrors = on }

// mainPen returns the pen honoring the selection state.
func (pb *PlottableBase) mainPen() Pen {
	if pb.selected {
		return pb.selectedPen
	}
	return pb.pen
}

// mainBrush returns the brush honoring the selection state.
func (pb *PlottableBase) mainBrush() Brush {
	if pb.selected {
		return pb.selectedBrush
	}
	return pb.brush
}

// ClipRect clips plottables to the axis rect.
func (pb *PlottableBase) ClipRect() Rect {
	if pb.plot == nil {
		return Rect{}
	}
	return pb.plot.AxisRect()
}

// ApplyDefaultAntialiasingHint applies the plottable antialiasing policy
// to the canvas.
func (pb *PlottableBase) ApplyDefaultAntialiasingHint(c Canvas) {
	pb.applyAntialiasingHint(c, pb.Antialiased(), AEPlottables)
}

func (pb *PlottableBase) applyFillAntialiasingHint(c Canvas) {
	pb.applyAntialiasingHint(c, pb.antialiasedFill, AEFills)
}

func (pb *PlottableBase) applyScattersAntialiasingHint(c Canvas) {
	pb.applyAntialiasingHint(c, pb.antialiasedScatters, AEScatters)
}

func (pb *PlottableBase) applyErrorBarsAntialiasingHint(c Canvas) {
	pb.applyAntialiasingHint(c, pb.antialiasedErrors, AEErrorBars)
}

// coordsToPixels converts a key/value coordinate pair to a pixel point,
// honoring the orientation of the bound axes.
func (pb *PlottableBase) coordsToPixels(key, value float64) Point {
	if pb.keyAxis.Orientation() == Horizontal {
		return Pt(pb.keyAxis.CoordToPixel(key), pb.valueAxis.CoordToPixel(value))
	}
	return Pt(pb.valueAxis.CoordToPixel(value), pb.keyAxis.CoordToPixel(key))
}

// pixelsToCoords converts a pixel point to a key/value coordinate pair.
func (pb *PlottableBase) pixelsToCoords(p Point) (key, value float64) {
	if pb.keyAxis.Orientation() == Horizontal {
		return pb.keyAxis.PixelToCoord(p.X), pb.valueAxis.PixelToCoord(p.Y)
	}
	return pb.keyAxis.PixelToCoord(p.Y), pb.valueAxis.PixelToCoord(p.X)
}

// RescaleAxes adjusts both bound axes so the plottable's whole data is
// visible. With onlyEnlarge the axis ranges only ever grow.
func (pb *PlottableBase) RescaleAxes(onlyEnlarge bool) {
	pb.RescaleKeyAxis(onlyEnlarge)
	pb.RescaleValueAxis(onlyEnlarge)
}

// RescaleKeyAxis adjusts the key axis to the data key range. On a
// logarithmic key axis only data in the axis range's sign domain
// contributes.
func (pb *PlottableBase) RescaleKeyAxis(onlyEnlarge bool) {
	self := pb.self.(Plottable)
	domain := SignBoth
	if pb.keyAxis.ScaleType() == ScaleLogarithmic {
		domain = SignPositive
		if pb.keyAxis.Range().Upper < 0 {
			domain = SignNegative
		}
	}
	newRange, ok := self.KeyRange(domain)
	if !ok {
		return
	}
	pb.rescaleAxis(pb.keyAxis, newRange, onlyEnlarge)
}

// RescaleValueAxis adjusts the value axis to the data value range.
func (pb *PlottableBase) RescaleValueAxis(onlyEnlarge bool) {
	self := pb.self.(Plottable)
	domain := SignBoth
	if pb.valueAxis.ScaleType() == ScaleLogarithmic {
		domain = SignPositive
		if pb.valueAxis.Range().Upper < 0 {
			domain = SignNegative
		}
	}
	newRange, ok := self.ValueRange(domain)
	if !ok {
		return
	}
	pb.rescaleAxis(pb.valueAxis, newRange, onlyEnlarge)
}

// rescaleAxis applies a data range to an axis. A degenerate data range
// (all points share one coordinate) keeps the axis's current span,
// centered on the data.
func (pb *PlottableBase) rescaleAxis(axis *Axis, newRange Range, onlyEnlarge bool) {
	if math.Abs(newRange.Upper-newRange.Lower) <= MinRange {
		center := newRange.Center()
		if axis.ScaleType() == ScaleLinear {
			half := axis.Range().Size() / 2
			newRange = Range{Lower: center - half, Upper: center + half}
		} else {
			ratio := math.Sqrt(axis.Range().Upper / axis.Range().Lower)
			newRange = Range{Lower: center / ratio, Upper: center * ratio}
		}
	}
	if onlyEnlarge {
		newRange = newRange.Expanded(axis.Range())
	}
	axis.SetRange(newRange)
}
