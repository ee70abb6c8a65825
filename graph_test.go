package plot

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGraphSetDataSortsAndDedups(t *testing.T) {
	p := newGeometryPlot(t)
	g := p.AddGraph()
	g.SetData([]GraphData{
		{Key: 3, Value: 30},
		{Key: 1, Value: 10},
		{Key: 2, Value: 20},
		{Key: 1, Value: 99},
	})

	want := []GraphData{{Key: 1, Value: 99}, {Key: 2, Value: 20}, {Key: 3, Value: 30}}
	if diff := cmp.Diff(want, g.Data()); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestGraphAddDataReplacesExistingKey(t *testing.T) {
	p := newGeometryPlot(t)
	g := p.AddGraph()
	g.AddData(GraphData{Key: 1, Value: 10})
	g.AddData(GraphData{Key: 1, Value: 20})

	want := []GraphData{{Key: 1, Value: 20}}
	if diff := cmp.Diff(want, g.Data()); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestGraphAddDataKeepsOrder(t *testing.T) {
	p := newGeometryPlot(t)
	g := p.AddGraph()
	g.SetDataKeyValue([]float64{1, 3}, []float64{10, 30})
	g.AddData(GraphData{Key: 2, Value: 20})

	keys := make([]float64, 0, 3)
	for _, d := range g.Data() {
		keys = append(keys, d.Key)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestGraphRangesIncludeErrors(t *testing.T) {
	p := newGeometryPlot(t)
	g := p.AddGraph()
	g.SetData([]GraphData{
		{Key: 2, Value: 5, KeyErrorMinus: 1, KeyErrorPlus: 0.5, ValueErrorMinus: 2, ValueErrorPlus: 3},
		{Key: 6, Value: -1, KeyErrorPlus: 1},
	})

	kr, ok := g.KeyRange(SignBoth)
	if !ok || kr != (Range{1, 7}) {
		t.Errorf("KeyRange = %+v, %v; want {1 7}, true", kr, ok)
	}
	vr, ok := g.ValueRange(SignBoth)
	if !ok || vr != (Range{-1, 8}) {
		t.Errorf("ValueRange = %+v, %v; want {-1 8}, true", vr, ok)
	}
	// the negative value and the zero error bound fall outside the
	// positive sign domain
	vr, ok = g.ValueRange(SignPositive)
	if !ok || vr != (Range{3, 8}) {
		t.Errorf("ValueRange positive = %+v, %v; want {3 8}, true", vr, ok)
	}
}

func TestGraphRangeEmpty(t *testing.T) {
	p := newGeometryPlot(t)
	g := p.AddGraph()
	if _, ok := g.KeyRange(SignBoth); ok {
		t.Error("KeyRange of empty graph reported data")
	}
	g.SetData([]GraphData{{Key: -2, Value: 1}})
	if _, ok := g.KeyRange(SignPositive); ok {
		t.Error("KeyRange found data outside the sign domain")
	}
}

func TestGraphSelectTestLine(t *testing.T) {
	p := newGeometryPlot(t)
	g := p.AddGraph()
	// horizontal line at value 5: pixels (40,180) to (440,180)
	g.SetDataKeyValue([]float64{0, 10}, []float64{5, 5})

	if d := g.SelectTest(Pt(240, 190)); math.Abs(d-10) > 1e-9 {
		t.Errorf("distance to line = %g, want 10", d)
	}
	if d := g.SelectTest(Pt(240, 180)); math.Abs(d) > 1e-9 {
		t.Errorf("distance on line = %g, want 0", d)
	}

	g.SetSelectable(false)
	if d := g.SelectTest(Pt(240, 180)); d >= 0 {
		t.Errorf("unselectable graph hit with distance %g", d)
	}
}

func TestGraphSelectTestScatterOnly(t *testing.T) {
	p := newGeometryPlot(t)
	g := p.AddGraph()
	g.SetLineStyle(LineNone)
	g.SetScatterStyle(ScatterDisc)
	// points at pixels (80,300) and (400,60)
	g.SetDataKeyValue([]float64{1, 9}, []float64{1, 9})

	if d := g.SelectTest(Pt(80, 294)); math.Abs(d-6) > 1e-9 {
		t.Errorf("distance to nearest point = %g, want 6", d)
	}

	g.SetScatterStyle(ScatterNone)
	if d := g.SelectTest(Pt(80, 300)); d >= 0 {
		t.Errorf("invisible graph hit with distance %g", d)
	}
}

func TestGraphSelectTestImpulse(t *testing.T) {
	p := newGeometryPlot(t)
	g := p.AddGraph()
	g.SetLineStyle(LineImpulse)
	g.SetDataKeyValue([]float64{2, 8}, []float64{5, 5})

	// impulse of key 2 runs from the zero line (120,330) up to (120,180)
	if d := g.SelectTest(Pt(120, 250)); math.Abs(d) > 1e-9 {
		t.Errorf("distance on impulse = %g, want 0", d)
	}
	// between the impulses there is no connecting segment
	if d := g.SelectTest(Pt(240, 250)); d < 100 {
		t.Errorf("distance between impulses = %g, want >= 100", d)
	}
}

func TestGraphRescaleAxes(t *testing.T) {
	p := newGeometryPlot(t)
	g := p.AddGraph()
	g.SetDataKeyValue([]float64{1, 9}, []float64{2, 8})

	g.RescaleAxes(false)
	if got := p.XAxis().Range(); got != (Range{1, 9}) {
		t.Errorf("key range = %+v, want {1 9}", got)
	}
	if got := p.YAxis().Range(); got != (Range{2, 8}) {
		t.Errorf("value range = %+v, want {2 8}", got)
	}

	// enlarging must never shrink an axis
	p.XAxis().SetRange(Range{-5, 20})
	g.RescaleKeyAxis(true)
	if got := p.XAxis().Range(); got != (Range{-5, 20}) {
		t.Errorf("key range after enlarge = %+v, want {-5 20}", got)
	}
	p.XAxis().SetRange(Range{4, 6})
	g.RescaleKeyAxis(true)
	if got := p.XAxis().Range(); got != (Range{1, 9}) {
		t.Errorf("key range after enlarge = %+v, want {1 9}", got)
	}
}

func TestGraphRescaleSinglePointKeepsSpan(t *testing.T) {
	p := newGeometryPlot(t)
	g := p.AddGraph()
	g.SetDataKeyValue([]float64{4}, []float64{4})

	g.RescaleKeyAxis(false)
	if got := p.XAxis().Range(); got != (Range{-1, 9}) {
		t.Errorf("key range = %+v, want {-1 9}", got)
	}
}

func TestGraphRescaleLogIgnoresWrongSign(t *testing.T) {
	p := newGeometryPlot(t)
	p.YAxis().SetScaleType(ScaleLogarithmic)
	p.YAxis().SetRange(Range{1, 100})

	g := p.AddGraph()
	g.SetDataKeyValue([]float64{1, 2, 3}, []float64{-5, 10, 1000})
	g.RescaleValueAxis(false)

	if got := p.YAxis().Range(); got != (Range{10, 1000}) {
		t.Errorf("value range = %+v, want {10 1000}", got)
	}
}

func TestGraphChannelFillRequiresSameAxes(t *testing.T) {
	p := newGeometryPlot(t)
	g := p.AddGraph()
	other := p.AddGraph(p.XAxis(), p.YAxis2())
	g.SetChannelFillGraph(other)
	if g.channelFill != nil {
		t.Error("channel fill accepted a graph on different axes")
	}

	same := p.AddGraph()
	g.SetChannelFillGraph(same)
	if g.channelFill != same {
		t.Error("channel fill rejected a graph on the same axes")
	}
}
