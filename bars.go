package plot

import (
	"math"
	"slices"
)

// BarData is one bar of a bar chart.
type BarData struct {
	Key, Value float64
}

// Bars plots data as a bar chart. Multiple bar charts on the same axes
// can be stacked with MoveAbove/MoveBelow: bars of the upper chart then
// start where the bars of the lower chart end.
type Bars struct {
	PlottableBase

	data  []BarData
	width float64

	barBelow *Bars
	barAbove *Bars
}

// NewBars creates a bar chart bound to the given axes. Most callers use
// Plot.AddBars instead.
func NewBars(keyAxis, valueAxis *Axis) *Bars {
	b := &Bars{width: 0.75}
	b.initPlottable(b, keyAxis, valueAxis)
	return b
}

// Data returns the bar data in key order.
// The returned slice must not be modified.
func (b *Bars) Data() []BarData { return b.data }

// SetData replaces the bar data. The bars are copied and sorted by key;
// of duplicate keys the last inserted bar wins.
func (b *Bars) SetData(data []BarData) {
	b.data = slices.Clone(data)
	slices.SortStableFunc(b.data, func(a, c BarData) int {
		switch {
		case a.Key < c.Key:
			return -1
		case a.Key > c.Key:
			return 1
		default:
			return 0
		}
	})
	out := b.data[:0]
	for _, d := range b.data {
		if n := len(out); n > 0 && out[n-1].Key == d.Key {
			out[n-1] = d
		} else {
			out = append(out, d)
		}
	}
	b.data = out
}

// AddData appends bars, keeping the key order.
func (b *Bars) AddData(data ...BarData) {
	b.SetData(append(b.data, data...))
}

// ClearData removes all bars.
func (b *Bars) ClearData() { b.data = nil }

// SetWidth sets the bar width in key coordinates.
func (b *Bars) SetWidth(width float64) { b.width = width }

// Width returns the bar width in key coordinates.
func (b *Bars) Width() float64 { return b.width }

// BarBelow returns the bar chart this one is stacked on, or nil.
func (b *Bars) BarBelow() *Bars { return b.barBelow }

// BarAbove returns the bar chart stacked on this one, or nil.
func (b *Bars) BarAbove() *Bars { return b.barAbove }

// MoveAbove stacks this bar chart on top of other. Passing nil removes
// this chart from its stack. Both charts must be bound to the same axes.
func (b *Bars) MoveAbove(other *Bars) {
	if other == b {
		return
	}
	if other != nil && (other.keyAxis != b.keyAxis || other.valueAxis != b.valueAxis) {
		Logger().Warn("plot: bars not bound to same axes", "bars", b.name)
		return
	}
	b.disconnectStack()
	if other != nil {
		if other.barAbove != nil {
			other.barAbove.barBelow = b
		}
		b.barAbove = other.barAbove
		b.barBelow = other
		other.barAbove = b
	}
}

// MoveBelow stacks this bar chart below other. Passing nil removes this
// chart from its stack. Both charts must be bound to the same axes.
func (b *Bars) MoveBelow(other *Bars) {
	if other == b {
		return
	}
	if other != nil && (other.keyAxis != b.keyAxis || other.valueAxis != b.valueAxis) {
		Logger().Warn("plot: bars not bound to same axes", "bars", b.name)
		return
	}
	b.disconnectStack()
	if other != nil {
		if other.barBelow != nil {
			other.barBelow.barAbove = b
		}
		b.barBelow = other.barBelow
		b.barAbove = other
		other.barBelow = b
	}
}

// disconnectStack removes the chart from its stack, reconnecting its
// former neighbors to each other.
func (b *Bars) disconnectStack() {
	if b.barBelow != nil {
		b.barBelow.barAbove = b.barAbove
	}
	if b.barAbove != nil {
		b.barAbove.barBelow = b.barBelow
	}
	b.barBelow = nil
	b.barAbove = nil
}

// baseValue returns the value a bar at the given key starts at: zero for
// unstacked bars, the stacked sum of the charts below otherwise.
func (b *Bars) baseValue(key float64, positive bool) float64 {
	if b.barBelow == nil {
		return 0
	}
	base := b.barBelow.baseValue(key, positive)
	for _, d := range b.barBelow.data {
		if d.Key != key {
			continue
		}
		// only stack values growing in the same direction
		if (positive && d.Value > 0) || (!positive && d.Value < 0) {
			base += d.Value
		}
		break
	}
	return base
}

// barRect returns the pixel rectangle of one bar.
func (b *Bars) barRect(d BarData) Rect {
	base := b.baseValue(d.Key, d.Value >= 0)
	p1 := b.coordsToPixels(d.Key-b.width/2, base)
	p2 := b.coordsToPixels(d.Key+b.width/2, base+d.Value)
	return RectFromPoints(p1, p2)
}

// KeyRange returns the span of the bar keys including the bar width.
func (b *Bars) KeyRange(domain SignDomain) (Range, bool) {
	rng := Range{Lower: math.Inf(1), Upper: math.Inf(-1)}
	found := false
	for _, d := range b.data {
		if !domain.inSignDomain(d.Key) {
			continue
		}
		rng.Lower = math.Min(rng.Lower, d.Key-b.width/2)
		rng.Upper = math.Max(rng.Upper, d.Key+b.width/2)
		found = true
	}
	return rng, found
}

// ValueRange returns the span of the stacked bar values. The base line
// (zero) is always included so bars are never clipped at their root.
func (b *Bars) ValueRange(domain SignDomain) (Range, bool) {
	rng := Range{Lower: math.Inf(1), Upper: math.Inf(-1)}
	found := false
	for _, d := range b.data {
		v := b.baseValue(d.Key, d.Value >= 0) + d.Value
		if !domain.inSignDomain(v) {
			continue
		}
		rng.Lower = math.Min(rng.Lower, v)
		rng.Upper = math.Max(rng.Upper, v)
		found = true
	}
	if found && domain == SignBoth {
		rng.Lower = math.Min(rng.Lower, 0)
		rng.Upper = math.Max(rng.Upper, 0)
	}
	return rng, found
}

// SelectTest returns the distance to the nearest bar: bar interiors hit
// with a distance just below the selection tolerance.
func (b *Bars) SelectTest(pos Point) float64 {
	if !b.selectable || len(b.data) == 0 {
		return -1
	}
	tol := 8.0
	if b.plot != nil {
		tol = b.plot.selectionTolerance
	}
	minDist := math.Inf(1)
	for _, d := range b.data {
		dist := rectSelectTest(b.barRect(d), pos, true, true, tol)
		minDist = math.Min(minDist, dist)
	}
	return minDist
}

// Draw paints the bars bottom-of-stack first.
func (b *Bars) Draw(c Canvas) {
	if len(b.data) == 0 {
		return
	}
	b.ApplyDefaultAntialiasingHint(c)
	c.SetPen(b.mainPen())
	c.SetBrush(b.mainBrush())
	for _, d := range b.data {
		c.DrawRect(b.barRect(d))
	}
}

// DrawLegendIcon paints a filled rectangle in the bar style.
func (b *Bars) DrawLegendIcon(c Canvas, rect Rect) {
	c.SetPen(b.mainPen())
	c.SetBrush(b.mainBrush())
	c.DrawRect(rect.Adjusted(rect.W/4, rect.H/4, -rect.W/4, -rect.H/4))
}
