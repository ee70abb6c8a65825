package plot

import (
	"math"
	"testing"
)

func TestStatisticalBoxRanges(t *testing.T) {
	p := newGeometryPlot(t)
	s := p.AddStatisticalBox()
	s.SetKey(4)
	s.SetWidth(1)
	s.SetWhiskerWidth(0.5)
	s.SetData(1, 2, 3, 5, 7)

	kr, ok := s.KeyRange(SignBoth)
	if !ok || kr != (Range{3.5, 4.5}) {
		t.Errorf("KeyRange = %+v, %v; want {3.5 4.5}, true", kr, ok)
	}
	vr, ok := s.ValueRange(SignBoth)
	if !ok || vr != (Range{1, 7}) {
		t.Errorf("ValueRange = %+v, %v; want {1 7}, true", vr, ok)
	}

	// outliers widen the value span
	s.SetOutliers([]float64{-2, 9})
	vr, ok = s.ValueRange(SignBoth)
	if !ok || vr != (Range{-2, 9}) {
		t.Errorf("ValueRange with outliers = %+v, %v; want {-2 9}, true", vr, ok)
	}
	vr, ok = s.ValueRange(SignPositive)
	if !ok || vr != (Range{1, 9}) {
		t.Errorf("positive ValueRange = %+v, %v; want {1 9}, true", vr, ok)
	}
}

func TestStatisticalBoxSelectTest(t *testing.T) {
	p := newGeometryPlot(t)
	s := p.AddStatisticalBox()
	s.SetKey(5)
	s.SetWidth(2)
	s.SetData(1, 3, 4, 6, 9)

	// the quartile box spans keys 4..6 and values 3..6:
	// pixels x 200..280, y 150..240
	want := p.SelectionTolerance() * 0.99
	if d := s.SelectTest(Pt(240, 200)); math.Abs(d-want) > 1e-9 {
		t.Errorf("interior distance = %g, want %g", d, want)
	}
	if d := s.SelectTest(Pt(240, 140)); math.Abs(d-10) > 1e-9 {
		t.Errorf("distance above box = %g, want 10", d)
	}
}

func TestStatisticalBoxDraw(t *testing.T) {
	p := newGeometryPlot(t)
	s := p.AddStatisticalBox()
	s.SetKey(5)
	s.SetData(1, 3, 4, 6, 9)
	s.SetOutliers([]float64{0.5})

	c := &recordingCanvas{}
	s.Draw(c)

	// one rect for the quartile box
	if len(c.rects) != 1 {
		t.Fatalf("drew %d rects, want 1", len(c.rects))
	}
	// median line, two whiskers, two whisker bars
	if len(c.lines) != 5 {
		t.Errorf("drew %d lines, want 5", len(c.lines))
	}
}
