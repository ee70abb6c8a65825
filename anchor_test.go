package plot

import (
	"math"
	"testing"
)

// newGeometryPlot returns a plot with a fixed 400x300 axis rect at
// (40,30) inside a 500x400 viewport and both primary axes on [0,10].
func newGeometryPlot(t *testing.T) *Plot {
	t.Helper()
	p := New(
		WithCanvas(&recordingCanvas{}),
		WithViewport(R(0, 0, 500, 400)),
		WithAutoMargin(false),
	)
	p.SetMargins(40, 60, 30, 70)
	p.XAxis().SetRange(Range{0, 10})
	p.YAxis().SetRange(Range{0, 10})
	return p
}

func approxPt(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestPositionPixelPointTypes(t *testing.T) {
	p := newGeometryPlot(t)
	pos := NewItemLine(p).Start

	tests := []struct {
		name       string
		ptype      PositionType
		key, value float64
		want       Point
	}{
		{"absolute", PosAbsolute, 100, 50, Pt(100, 50)},
		{"viewport ratio center", PosViewportRatio, 0.5, 0.5, Pt(250, 200)},
		{"axis rect ratio origin", PosAxisRectRatio, 0, 0, Pt(40, 30)},
		{"axis rect ratio corner", PosAxisRectRatio, 1, 1, Pt(440, 330)},
		{"plot coords origin", PosPlotCoords, 0, 0, Pt(40, 330)},
		{"plot coords max", PosPlotCoords, 10, 10, Pt(440, 30)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos.ptype = tc.ptype
			pos.SetCoords(tc.key, tc.value)
			if got := pos.PixelPoint(); !approxPt(got, tc.want) {
				t.Errorf("PixelPoint() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPositionPlotCoordsPartialAxes(t *testing.T) {
	p := newGeometryPlot(t)

	tests := []struct {
		name       string
		key, value *Axis
		coords     Point
		want       Point
	}{
		{"only horizontal key axis", p.XAxis(), nil, Pt(2, 150), Pt(120, 150)},
		{"only vertical key axis", p.YAxis(), nil, Pt(2, 150), Pt(150, 270)},
		{"only vertical value axis", nil, p.YAxis(), Pt(150, 2), Pt(150, 270)},
		{"only horizontal value axis", nil, p.XAxis(), Pt(150, 2), Pt(120, 150)},
		{"no axes", nil, nil, Pt(123, 45), Pt(123, 45)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := NewItemLine(p).Start
			pos.SetAxes(tc.key, tc.value)
			pos.SetCoords(tc.coords.X, tc.coords.Y)
			if got := pos.PixelPoint(); !approxPt(got, tc.want) {
				t.Errorf("PixelPoint() = %v, want %v", got, tc.want)
			}

			// SetPixelPoint is the exact inverse for every axis binding.
			pos.SetPixelPoint(Pt(80, 240))
			if got := pos.PixelPoint(); !approxPt(got, Pt(80, 240)) {
				t.Errorf("round trip gave %v, want (80, 240)", got)
			}

			// Retyping keeps the resolved pixel point.
			before := pos.PixelPoint()
			pos.SetType(PosAbsolute)
			if got := pos.PixelPoint(); !approxPt(got, before) {
				t.Errorf("pixel point moved from %v to %v on type change", before, got)
			}
		})
	}
}

func TestPositionSetPixelPointRoundTrip(t *testing.T) {
	p := newGeometryPlot(t)
	pos := NewItemLine(p).Start

	for _, ptype := range []PositionType{PosAbsolute, PosViewportRatio, PosAxisRectRatio, PosPlotCoords} {
		pos.ptype = ptype
		target := Pt(123, 234)
		pos.SetPixelPoint(target)
		if got := pos.PixelPoint(); !approxPt(got, target) {
			t.Errorf("type %d: round trip gave %v, want %v", ptype, got, target)
		}
	}
}

func TestPositionSetTypeKeepsPixelPoint(t *testing.T) {
	p := newGeometryPlot(t)
	pos := NewItemLine(p).Start
	pos.SetCoords(5, 5)

	before := pos.PixelPoint()
	pos.SetType(PosAbsolute)
	if got := pos.PixelPoint(); !approxPt(got, before) {
		t.Errorf("pixel point moved from %v to %v on type change", before, got)
	}
	if pos.Key() != before.X || pos.Value() != before.Y {
		t.Errorf("absolute coords = (%g, %g), want %v", pos.Key(), pos.Value(), before)
	}
}

func TestSetParentAnchor(t *testing.T) {
	p := newGeometryPlot(t)
	parent := NewItemLine(p)
	child := NewItemLine(p)
	child.Start.SetCoords(2, 2)

	before := child.Start.PixelPoint()
	if !child.Start.SetParentAnchor(&parent.End.Anchor, true) {
		t.Fatal("SetParentAnchor failed")
	}
	// plot coords do not compose with a parent offset, so attaching
	// switches the position to absolute pixels
	if child.Start.Type() != PosAbsolute {
		t.Errorf("type after attach = %d, want PosAbsolute", child.Start.Type())
	}
	if got := child.Start.PixelPoint(); !approxPt(got, before) {
		t.Errorf("pixel point moved from %v to %v on attach", before, got)
	}

	// the parent dragging its end drags the child along
	parent.End.SetPixelPoint(parent.End.PixelPoint().Add(Pt(10, -5)))
	want := before.Add(Pt(10, -5))
	if got := child.Start.PixelPoint(); !approxPt(got, want) {
		t.Errorf("pixel point after parent move = %v, want %v", got, want)
	}

	// without keepPixelPosition the position snaps onto the parent
	child.End.SetParentAnchor(&parent.End.Anchor, false)
	if got := child.End.PixelPoint(); !approxPt(got, parent.End.PixelPoint()) {
		t.Errorf("pixel point = %v, want parent point %v", got, parent.End.PixelPoint())
	}
}

func TestSetParentAnchorRejectsSelf(t *testing.T) {
	p := newGeometryPlot(t)
	l := NewItemLine(p)
	if l.Start.SetParentAnchor(&l.Start.Anchor, false) {
		t.Error("attaching a position to itself succeeded")
	}
}

func TestSetParentAnchorRejectsCycle(t *testing.T) {
	p := newGeometryPlot(t)
	a := NewItemLine(p)
	b := NewItemLine(p)

	if !a.Start.SetParentAnchor(&b.Start.Anchor, true) {
		t.Fatal("first attach failed")
	}
	if b.Start.SetParentAnchor(&a.Start.Anchor, true) {
		t.Error("direct cycle accepted")
	}

	// longer chain: c -> a -> b, then closing b -> c must fail
	c := NewItemLine(p)
	if !c.Start.SetParentAnchor(&a.Start.Anchor, true) {
		t.Fatal("chain attach failed")
	}
	if b.Start.SetParentAnchor(&c.Start.Anchor, true) {
		t.Error("indirect cycle accepted")
	}
}

func TestSetParentAnchorRejectsOwnItemAnchor(t *testing.T) {
	p := newGeometryPlot(t)
	r := NewItemRect(p)
	// the plain anchors derive from TopLeft/BottomRight, so anchoring a
	// defining position to one of them would be circular
	if r.TopLeft.SetParentAnchor(r.AnchorByName("top"), true) {
		t.Error("attach to plain anchor of the same item accepted")
	}
}

func TestRemoveItemDetachesAnchors(t *testing.T) {
	p := newGeometryPlot(t)
	parent := NewItemLine(p)
	child := NewItemLine(p)
	child.Start.SetParentAnchor(&parent.End.Anchor, true)

	before := child.Start.PixelPoint()
	if !p.RemoveItem(parent) {
		t.Fatal("RemoveItem failed")
	}
	if child.Start.ParentAnchor() != nil {
		t.Error("parent anchor still set after item removal")
	}
	if got := child.Start.PixelPoint(); !approxPt(got, before) {
		t.Errorf("pixel point moved from %v to %v on detach", before, got)
	}
}

func TestItemRectAnchors(t *testing.T) {
	p := newGeometryPlot(t)
	r := NewItemRect(p)
	r.TopLeft.SetType(PosAbsolute)
	r.TopLeft.SetCoords(100, 50)
	r.BottomRight.SetType(PosAbsolute)
	r.BottomRight.SetCoords(200, 150)

	tests := []struct {
		name string
		want Point
	}{
		{"top", Pt(150, 50)},
		{"topRight", Pt(200, 50)},
		{"right", Pt(200, 100)},
		{"bottomRightCorner", Pt(200, 150)},
		{"bottom", Pt(150, 150)},
		{"bottomLeft", Pt(100, 150)},
		{"left", Pt(100, 100)},
	}
	for _, tc := range tests {
		an := r.AnchorByName(tc.name)
		if an == nil {
			t.Fatalf("anchor %q missing", tc.name)
		}
		if got := an.PixelPoint(); !approxPt(got, tc.want) {
			t.Errorf("anchor %q = %v, want %v", tc.name, got, tc.want)
		}
	}
}
