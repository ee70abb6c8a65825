package plot

import (
	"image/color"
	"math"
)

// TracerStyle defines the visual appearance of an ItemTracer.
type TracerStyle int

const (
	// TracerNone draws nothing; the tracer still works as an anchor.
	TracerNone TracerStyle = iota
	// TracerPlus draws a plus sign.
	TracerPlus
	// TracerCrosshair draws a crosshair spanning the whole axis rect.
	TracerCrosshair
	// TracerCircle draws a circle.
	TracerCircle
	// TracerSquare draws a square.
	TracerSquare
)

// ItemTracer is a marker that can attach itself to a graph and follow
// its data: given a key, the tracer places itself on the graph at that
// key, optionally interpolating between the neighboring data points.
// Other items can anchor to its position to track the graph with it.
type ItemTracer struct {
	ItemBase

	// Pos places the tracer when it is not attached to a graph; while
	// attached, UpdatePosition overwrites it.
	Pos *Position

	graph         *Graph
	graphKey      float64
	interpolate   bool
	style         TracerStyle
	size          float64
	pen           Pen
	selectedPen   Pen
	brush         Brush
	selectedBrush Brush
}

// NewItemTracer creates a tracer item and registers it with the plot.
func NewItemTracer(p *Plot) *ItemTracer {
	t := &ItemTracer{
		style:       TracerCrosshair,
		size:        6,
		pen:         SolidPen(color.Black),
		selectedPen: Pen{Color: color.RGBA{B: 255, A: 255}, Width: 2, Style: PenSolid},
	}
	t.initItem(t, p)
	t.Pos = t.createPosition("position")
	p.addItem(t)
	return t
}

// SetGraph attaches the tracer to a graph; nil detaches it. The graph
// must belong to the same plot.
func (t *ItemTracer) SetGraph(g *Graph) {
	if g != nil && g.plot != t.plot {
		Logger().Warn("plot: tracer graph belongs to a different plot")
		return
	}
	t.graph = g
	t.UpdatePosition()
}

// Graph returns the graph the tracer is attached to, or nil.
func (t *ItemTracer) Graph() *Graph { return t.graph }

// SetGraphKey sets the key at which the tracer follows its graph.
func (t *ItemTracer) SetGraphKey(key float64) {
	t.graphKey = key
	t.UpdatePosition()
}

// GraphKey returns the key at which the tracer follows its graph.
func (t *ItemTracer) GraphKey() float64 { return t.graphKey }

// SetInterpolating sets whether the tracer interpolates linearly between
// the data points around the graph key, instead of snapping to the
// closest data point at or below it.
func (t *ItemTracer) SetInterpolating(on bool) {
	t.interpolate = on
	t.UpdatePosition()
}

// SetStyle sets the tracer appearance.
func (t *ItemTracer) SetStyle(style TracerStyle) { t.style = style }

// SetSize sets the tracer symbol size in pixels.
func (t *ItemTracer) SetSize(size float64) { t.size = size }

// SetPen sets the tracer pen.
func (t *ItemTracer) SetPen(pen Pen) { t.pen = pen }

// SetSelectedPen sets the pen used while the item is selected.
func (t *ItemTracer) SetSelectedPen(pen Pen) { t.selectedPen = pen }

// SetBrush sets the brush filling circle and square tracers.
func (t *ItemTracer) SetBrush(brush Brush) { t.brush = brush }

func (t *ItemTracer) mainPen() Pen {
	if t.selected {
		return t.selectedPen
	}
	return t.pen
}

func (t *ItemTracer) mainBrush() Brush {
	if t.selected {
		return t.selectedBrush
	}
	return t.brush
}

// UpdatePosition moves Pos onto the attached graph at the graph key.
// Keys outside the graph's data span clamp to the first or last data
// point. Called automatically on replot; call it manually after changing
// graph data to reposition the tracer immediately.
func (t *ItemTracer) UpdatePosition() {
	if t.graph == nil || len(t.graph.data) == 0 {
		return
	}
	t.Pos.SetType(PosPlotCoords)
	t.Pos.SetAxes(t.graph.keyAxis, t.graph.valueAxis)

	data := t.graph.data
	if t.graphKey <= data[0].Key {
		t.Pos.SetCoords(data[0].Key, data[0].Value)
		return
	}
	if t.graphKey >= data[len(data)-1].Key {
		last := data[len(data)-1]
		t.Pos.SetCoords(last.Key, last.Value)
		return
	}
	// find the first point above the key
	hi := 1
	for hi < len(data) && data[hi].Key < t.graphKey {
		hi++
	}
	lo := hi - 1
	if t.interpolate {
		slope := 0.0
		if data[hi].Key != data[lo].Key {
			slope = (data[hi].Value - data[lo].Value) / (data[hi].Key - data[lo].Key)
		}
		t.Pos.SetCoords(t.graphKey, data[lo].Value+slope*(t.graphKey-data[lo].Key))
		return
	}
	// snap to the closer of the two neighbors
	if t.graphKey-data[lo].Key < data[hi].Key-t.graphKey {
		t.Pos.SetCoords(data[lo].Key, data[lo].Value)
	} else {
		t.Pos.SetCoords(data[hi].Key, data[hi].Value)
	}
}

// SelectTest returns the distance to the tracer symbol center, or to the
// crosshair lines for crosshair tracers.
func (t *ItemTracer) SelectTest(pos Point) float64 {
	if !t.selectable || t.style == TracerNone {
		return -1
	}
	center := t.Pos.PixelPoint()
	if t.style == TracerCrosshair {
		clip := t.ClipRect()
		dh := distSqrToLine(Pt(clip.Left(), center.Y), Pt(clip.Right(), center.Y), pos)
		dv := distSqrToLine(Pt(center.X, clip.Top()), Pt(center.X, clip.Bottom()), pos)
		return math.Sqrt(math.Min(dh, dv))
	}
	return math.Max(0, center.Distance(pos)-t.size/2)
}

// Draw paints the tracer symbol.
func (t *ItemTracer) Draw(c Canvas) {
	if t.style == TracerNone {
		return
	}
	t.ApplyDefaultAntialiasingHint(c)
	c.SetPen(t.mainPen())
	center := t.Pos.PixelPoint()
	w := t.size / 2
	switch t.style {
	case TracerPlus:
		c.DrawLine(Pt(center.X-w, center.Y), Pt(center.X+w, center.Y))
		c.DrawLine(Pt(center.X, center.Y-w), Pt(center.X, center.Y+w))
	case TracerCrosshair:
		clip := t.ClipRect()
		c.DrawLine(Pt(clip.Left(), center.Y), Pt(clip.Right(), center.Y))
		c.DrawLine(Pt(center.X, clip.Top()), Pt(center.X, clip.Bottom()))
	case TracerCircle:
		c.SetBrush(t.mainBrush())
		c.DrawEllipse(center, w, w)
	case TracerSquare:
		c.SetBrush(t.mainBrush())
		c.DrawRect(R(center.X-w, center.Y-w, t.size, t.size))
	}
}
