package plot

import (
	"math"
	"testing"
)

func TestCoordPixelRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		side     AxisSide
		scale    ScaleType
		reversed bool
		rng      Range
	}{
		{"bottom linear", SideBottom, ScaleLinear, false, Range{-10, 10}},
		{"bottom linear reversed", SideBottom, ScaleLinear, true, Range{-10, 10}},
		{"left linear", SideLeft, ScaleLinear, false, Range{0, 100}},
		{"left linear reversed", SideLeft, ScaleLinear, true, Range{0, 100}},
		{"top linear", SideTop, ScaleLinear, false, Range{2, 8}},
		{"right linear", SideRight, ScaleLinear, false, Range{-5, -1}},
		{"bottom log", SideBottom, ScaleLogarithmic, false, Range{1, 1000}},
		{"bottom log reversed", SideBottom, ScaleLogarithmic, true, Range{1, 1000}},
		{"left log", SideLeft, ScaleLogarithmic, false, Range{0.01, 100}},
		{"left log negative", SideLeft, ScaleLogarithmic, false, Range{-1000, -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlot(t)
			a := p.axisAt(tc.side)
			a.SetScaleType(tc.scale)
			a.SetRangeReversed(tc.reversed)
			a.SetRange(tc.rng)
			a.setAxisRect(R(40, 30, 400, 300))

			coords := []float64{tc.rng.Lower, tc.rng.Center(), tc.rng.Upper,
				tc.rng.Lower + tc.rng.Size()*0.137}
			if tc.scale == ScaleLogarithmic {
				coords = []float64{tc.rng.Lower, tc.rng.Upper,
					math.Sqrt(tc.rng.Lower * tc.rng.Upper)}
				if tc.rng.Lower < 0 {
					coords[2] = -coords[2]
				}
			}
			for _, coord := range coords {
				px := a.CoordToPixel(coord)
				back := a.PixelToCoord(px)
				if math.Abs(back-coord) > math.Abs(coord)*1e-9+1e-9 {
					t.Errorf("round trip %g -> %g -> %g", coord, px, back)
				}
			}
		})
	}
}

func TestCoordToPixelEndpoints(t *testing.T) {
	p := newTestPlot(t)
	x := p.XAxis()
	x.SetRange(Range{0, 10})
	x.setAxisRect(R(40, 30, 400, 300))
	if got := x.CoordToPixel(0); got != 40 {
		t.Errorf("lower bound: got pixel %g, want 40", got)
	}
	if got := x.CoordToPixel(10); got != 440 {
		t.Errorf("upper bound: got pixel %g, want 440", got)
	}

	y := p.YAxis()
	y.SetRange(Range{0, 10})
	y.setAxisRect(R(40, 30, 400, 300))
	// vertical axes grow upward: the lower bound sits at the rect bottom
	if got := y.CoordToPixel(0); got != 330 {
		t.Errorf("lower bound: got pixel %g, want 330", got)
	}
	if got := y.CoordToPixel(10); got != 30 {
		t.Errorf("upper bound: got pixel %g, want 30", got)
	}
}

// Log-scale coordinates whose sign does not match the range must map far
// outside the axis rect instead of NaN.
func TestCoordToPixelLogSignMismatch(t *testing.T) {
	p := newTestPlot(t)
	x := p.XAxis()
	x.SetScaleType(ScaleLogarithmic)
	x.SetRange(Range{1, 1000})
	x.setAxisRect(R(40, 30, 400, 300))

	if got := x.CoordToPixel(-5); got >= 40 {
		t.Errorf("negative coord on positive log axis: pixel %g not left of rect", got)
	}
	if got := x.CoordToPixel(0); got >= 40 {
		t.Errorf("zero coord on positive log axis: pixel %g not left of rect", got)
	}
	x.SetRange(Range{-1000, -1})
	if got := x.CoordToPixel(5); got <= 440 {
		t.Errorf("positive coord on negative log axis: pixel %g not right of rect", got)
	}
}

func TestSetRange(t *testing.T) {
	p := newTestPlot(t)
	a := p.XAxis()

	a.SetRange(Range{2, 8})
	if got := a.Range(); got != (Range{2, 8}) {
		t.Fatalf("got range %v, want {2 8}", got)
	}

	// invalid ranges keep the previous range
	a.SetRange(Range{math.NaN(), 5})
	a.SetRange(Range{3, 3})
	a.SetRange(Range{5, 2})
	if got := a.Range(); got != (Range{2, 8}) {
		t.Errorf("invalid range accepted: got %v, want {2 8}", got)
	}

	// notification fires on change, not on equal re-set
	var calls int
	a.OnRangeChanged(func(Range) { calls++ })
	a.SetRange(Range{0, 10})
	a.SetRange(Range{0, 10})
	if calls != 1 {
		t.Errorf("got %d range change notifications, want 1", calls)
	}
}

// Mutually linked axes must settle after one round trip instead of
// notifying each other forever.
func TestLinkedAxesTerminate(t *testing.T) {
	p := newTestPlot(t)
	x, x2 := p.XAxis(), p.XAxis2()
	x.OnRangeChanged(func(r Range) { x2.SetRange(r) })
	x2.OnRangeChanged(func(r Range) { x.SetRange(r) })

	var xCalls, x2Calls int
	x.OnRangeChanged(func(Range) { xCalls++ })
	x2.OnRangeChanged(func(Range) { x2Calls++ })

	x.SetRange(Range{2, 8})
	if x2.Range() != (Range{2, 8}) {
		t.Errorf("linked axis range %v, want {2 8}", x2.Range())
	}
	if xCalls != 1 || x2Calls != 1 {
		t.Errorf("got %d/%d notifications, want exactly one each", xCalls, x2Calls)
	}
}

func TestScaleRangeLinear(t *testing.T) {
	p := newTestPlot(t)
	a := p.XAxis()
	a.SetRange(Range{0, 10})
	a.ScaleRange(2, 5)
	if got := a.Range(); got != (Range{-5, 15}) {
		t.Errorf("zoom out: got %v, want {-5 15}", got)
	}
	a.ScaleRange(0.5, 5)
	if got := a.Range(); got != (Range{0, 10}) {
		t.Errorf("zoom back in: got %v, want {0 10}", got)
	}
}

func TestScaleRangeLog(t *testing.T) {
	p := newTestPlot(t)
	a := p.XAxis()
	a.SetScaleType(ScaleLogarithmic)
	a.SetRange(Range{1, 100})

	// center in the wrong sign domain leaves the range alone
	a.ScaleRange(2, -10)
	if got := a.Range(); got != (Range{1, 100}) {
		t.Fatalf("wrong domain center changed range to %v", got)
	}

	a.ScaleRange(2, 10)
	got := a.Range()
	if math.Abs(got.Lower-0.1) > 1e-9 || math.Abs(got.Upper-1000) > 1e-6 {
		t.Errorf("log zoom out: got %v, want {0.1 1000}", got)
	}
}

func TestSetScaleTypeSanitizesRange(t *testing.T) {
	p := newTestPlot(t)
	a := p.XAxis()
	a.SetRange(Range{-5, 100})
	a.SetScaleType(ScaleLogarithmic)
	r := a.Range()
	if r.Lower <= 0 {
		t.Errorf("range %v still straddles zero after switch to log scale", r)
	}
	if r.Upper != 100 {
		t.Errorf("upper bound changed to %g, want 100", r.Upper)
	}
}

func TestCalculateMargin(t *testing.T) {
	p := newTestPlot(t)
	c := &recordingCanvas{}
	a := p.XAxis()
	a.SetRange(Range{0, 5})
	a.setAxisRect(R(40, 30, 400, 300))
	a.setupTickVectors()

	// single digit labels, 11px font: tick length 5 + label height 11 +
	// tick label padding 3
	if got := a.CalculateMargin(c); got != 19 {
		t.Errorf("got margin %g, want 19", got)
	}

	a.SetLabel("time [s]")
	// plus label height 11 + label padding 3
	if got := a.CalculateMargin(c); got != 33 {
		t.Errorf("labeled: got margin %g, want 33", got)
	}

	// margin never drops below 15 even with everything hidden
	a.SetLabel("")
	a.SetTickLabels(false)
	a.SetTicks(false)
	if got := a.CalculateMargin(c); got != 15 {
		t.Errorf("bare: got margin %g, want 15", got)
	}

	a.SetVisible(false)
	if got := a.CalculateMargin(c); got != 15 {
		t.Errorf("invisible: got margin %g, want 15", got)
	}
}

func TestAxisSelectTest(t *testing.T) {
	p := newTestPlot(t)
	c := &recordingCanvas{}
	a := p.XAxis()
	a.SetRange(Range{0, 5})
	a.SetLabel("bottom axis")
	a.setAxisRect(R(40, 30, 400, 300))
	a.setupTickVectors()
	a.Draw(c)

	// just below the baseline
	if got := a.SelectTest(Pt(200, 332)); got != PartAxisLine {
		t.Errorf("baseline hit: got %v, want PartAxisLine", got)
	}
	// inside the tick label band: past tick length 5 + padding 3
	if got := a.SelectTest(Pt(200, 330+5+3+5)); got != PartTickLabels {
		t.Errorf("tick label hit: got %v, want PartTickLabels", got)
	}
	// inside the axis label band
	if got := a.SelectTest(Pt(200, 330+5+3+11+3+5)); got != PartAxisLabel {
		t.Errorf("axis label hit: got %v, want PartAxisLabel", got)
	}
	// far away
	if got := a.SelectTest(Pt(200, 100)); got != PartNone {
		t.Errorf("miss: got %v, want PartNone", got)
	}

	a.SetVisible(false)
	if got := a.SelectTest(Pt(200, 332)); got != PartNone {
		t.Errorf("invisible axis: got %v, want PartNone", got)
	}
}

func TestAxisDrawTickMarks(t *testing.T) {
	p := newTestPlot(t)
	c := &recordingCanvas{}
	a := p.XAxis()
	a.SetRange(Range{0, 5})
	a.setAxisRect(R(0, 0, 500, 300))
	a.setupTickVectors()
	a.Draw(c)

	// baseline + 6 ticks + 20 subticks
	if got, want := len(c.lines), 1+6+20; got != want {
		t.Errorf("got %d line draws, want %d", got, want)
	}
	// 6 tick labels
	if got := len(c.texts); got != 6 {
		t.Errorf("got %d text draws, want 6", got)
	}
	// bottom axis ticks extend upward from the baseline into the rect
	tick := c.lines[1]
	if tick[1].Y >= tick[0].Y {
		t.Errorf("tick from %v to %v does not point into the rect", tick[0], tick[1])
	}
}

type countingCanvas struct {
	recordingCanvas
	measures int
}

func (cc *countingCanvas) MeasureText(text string, font Font) (w, h float64) {
	cc.measures++
	return cc.recordingCanvas.MeasureText(text, font)
}

func TestTickLabelCache(t *testing.T) {
	p := newTestPlot(t)
	a := p.XAxis()
	c := &countingCanvas{}

	a.labelSize(c, "42")
	a.labelSize(c, "42")
	if c.measures != 1 {
		t.Errorf("measured %d times, want 1 (cached)", c.measures)
	}

	// a font change invalidates the cached extents
	a.SetTickLabelFont(Font{Size: 13})
	a.labelSize(c, "42")
	if c.measures != 2 {
		t.Errorf("measured %d times after font change, want 2", c.measures)
	}
}
