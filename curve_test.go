package plot

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCurveSetDataSortsByT(t *testing.T) {
	p := newGeometryPlot(t)
	cv := p.AddCurve()
	cv.SetData([]CurveData{
		{T: 2, Key: 8, Value: 2},
		{T: 0, Key: 2, Value: 2},
		{T: 1, Key: 8, Value: 8},
	})

	want := []CurveData{{T: 0, Key: 2, Value: 2}, {T: 1, Key: 8, Value: 8}, {T: 2, Key: 8, Value: 2}}
	if diff := cmp.Diff(want, cv.Data()); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestCurveAddPointAssignsT(t *testing.T) {
	p := newGeometryPlot(t)
	cv := p.AddCurve()
	cv.AddPoint(3, 4)
	cv.AddPoint(5, 6)
	cv.AddData(CurveData{T: 10, Key: 7, Value: 8})
	cv.AddPoint(9, 10)

	ts := make([]float64, 0, 4)
	for _, d := range cv.Data() {
		ts = append(ts, d.T)
	}
	if diff := cmp.Diff([]float64{0, 1, 10, 11}, ts); diff != "" {
		t.Errorf("t values mismatch (-want +got):\n%s", diff)
	}
}

func TestCurveRanges(t *testing.T) {
	p := newGeometryPlot(t)
	cv := p.AddCurve()
	cv.SetData([]CurveData{
		{T: 0, Key: -2, Value: 5},
		{T: 1, Key: 4, Value: -3},
		{T: 2, Key: 9, Value: 7},
	})

	if kr, ok := cv.KeyRange(SignBoth); !ok || kr != (Range{-2, 9}) {
		t.Errorf("KeyRange(SignBoth) = %v, %v", kr, ok)
	}
	if kr, ok := cv.KeyRange(SignPositive); !ok || kr != (Range{4, 9}) {
		t.Errorf("KeyRange(SignPositive) = %v, %v", kr, ok)
	}
	if vr, ok := cv.ValueRange(SignBoth); !ok || vr != (Range{-3, 7}) {
		t.Errorf("ValueRange(SignBoth) = %v, %v", vr, ok)
	}
	if vr, ok := cv.ValueRange(SignNegative); !ok || vr != (Range{-3, -3}) {
		t.Errorf("ValueRange(SignNegative) = %v, %v", vr, ok)
	}

	cv.ClearData()
	if _, ok := cv.KeyRange(SignBoth); ok {
		t.Error("KeyRange on empty curve reported ok")
	}
}

func TestCurveSelectTest(t *testing.T) {
	p := newGeometryPlot(t)
	cv := p.AddCurve()
	// a curve folding back over itself: not a function of the key
	cv.SetData([]CurveData{
		{T: 0, Key: 2, Value: 2},
		{T: 1, Key: 8, Value: 2},
		{T: 2, Key: 8, Value: 8},
		{T: 3, Key: 2, Value: 8},
	})

	// first segment runs from (120,270) to (360,270)
	if got := cv.SelectTest(Pt(240, 280)); math.Abs(got-10) > 1e-9 {
		t.Errorf("SelectTest near segment = %g, want 10", got)
	}
	if got := cv.SelectTest(Pt(240, 270)); got != 0 {
		t.Errorf("SelectTest on segment = %g, want 0", got)
	}

	cv.SetLineStyle(CurveLineNone)
	cv.SetScatterStyle(ScatterCircle)
	// nearest data point is (2,8) at pixel (120,90)
	if got := cv.SelectTest(Pt(120, 95)); math.Abs(got-5) > 1e-9 {
		t.Errorf("SelectTest scatter only = %g, want 5", got)
	}

	cv.SetScatterStyle(ScatterNone)
	if got := cv.SelectTest(Pt(240, 270)); got >= 0 {
		t.Errorf("SelectTest with nothing drawn = %g, want negative", got)
	}

	cv.SetLineStyle(CurveLineDirect)
	cv.SetSelectable(false)
	if got := cv.SelectTest(Pt(240, 270)); got >= 0 {
		t.Errorf("SelectTest on unselectable curve = %g, want negative", got)
	}
}

func TestCurveDataSimplifiesOutsideRect(t *testing.T) {
	p := newGeometryPlot(t)
	cv := p.AddCurve()
	// an excursion far right of the visible key range [0,10]
	cv.SetData([]CurveData{
		{T: 0, Key: 5, Value: 5},
		{T: 1, Key: 20, Value: 5},
		{T: 2, Key: 30, Value: 5},
		{T: 3, Key: 40, Value: 5},
		{T: 4, Key: 5, Value: 6},
	})

	pts := cv.curveData()
	want := []Point{
		cv.coordsToPixels(5, 5),
		cv.coordsToPixels(20, 5),  // region entry keeps the real position
		cv.coordsToPixels(40, 5),  // interior excursion points are dropped
		cv.coordsToPixels(5, 6),
	}
	if diff := cmp.Diff(want, pts); diff != "" {
		t.Errorf("polyline mismatch (-want +got):\n%s", diff)
	}
}

func TestCurveDraw(t *testing.T) {
	p := newGeometryPlot(t)
	rc := p.Canvas().(*recordingCanvas)
	cv := p.AddCurve()
	cv.SetData([]CurveData{
		{T: 0, Key: 2, Value: 2},
		{T: 1, Key: 8, Value: 2},
		{T: 2, Key: 8, Value: 8},
	})
	cv.SetScatterStyle(ScatterPlus)

	p.Replot()
	if len(rc.polylines) == 0 {
		t.Fatal("curve line was not drawn")
	}
	// one plus symbol is two lines per data point
	scatterLines := 0
	for _, l := range rc.lines {
		for _, d := range cv.Data() {
			c := cv.coordsToPixels(d.Key, d.Value)
			if l[0].Y == c.Y && l[1].Y == c.Y || l[0].X == c.X && l[1].X == c.X {
				scatterLines++
				break
			}
		}
	}
	if scatterLines < 6 {
		t.Errorf("got %d scatter strokes, want at least 6", scatterLines)
	}
}
