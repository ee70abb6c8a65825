package plot

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func newTestPlot(t *testing.T) *Plot {
	t.Helper()
	p := New(WithCanvas(&recordingCanvas{}), WithViewport(R(0, 0, 500, 400)))
	return p
}

func TestGenerateAutoTicksLinear(t *testing.T) {
	tests := []struct {
		name      string
		rng       Range
		tickCount int
		want      []float64
	}{
		{
			name:      "zero to five",
			rng:       Range{0, 5},
			tickCount: 6,
			want:      []float64{0, 1, 2, 3, 4, 5},
		},
		{
			name:      "symmetric around zero",
			rng:       Range{-4, 4},
			tickCount: 6,
			want:      []float64{-4.5, -3, -1.5, 0, 1.5, 3, 4.5},
		},
		{
			name:      "sub unit range",
			rng:       Range{0, 0.5},
			tickCount: 6,
			want:      []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5},
		},
		{
			name:      "large range",
			rng:       Range{0, 5000},
			tickCount: 6,
			want:      []float64{0, 1000, 2000, 3000, 4000, 5000},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlot(t)
			a := p.XAxis()
			a.SetRange(tc.rng)
			a.SetAutoTickCount(tc.tickCount)
			a.generateAutoTicks()
			if diff := cmp.Diff(tc.want, a.TickVector(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("tick vector mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Generated ticks enclose the range: the first tick is at or below the
// lower bound, the last at or above the upper bound.
func TestGenerateAutoTicksEncloseRange(t *testing.T) {
	p := newTestPlot(t)
	a := p.XAxis()
	ranges := []Range{
		{0.3, 7.2}, {-123.4, 81.9}, {1e-6, 3e-6}, {-5e8, -2e8},
	}
	for _, rng := range ranges {
		a.SetRange(rng)
		a.generateAutoTicks()
		ticks := a.TickVector()
		if len(ticks) < 2 {
			t.Fatalf("range %v: got %d ticks, want at least 2", rng, len(ticks))
		}
		if ticks[0] > rng.Lower {
			t.Errorf("range %v: first tick %g above lower bound", rng, ticks[0])
		}
		if ticks[len(ticks)-1] < rng.Upper {
			t.Errorf("range %v: last tick %g below upper bound", rng, ticks[len(ticks)-1])
		}
	}
}

// Regenerating ticks for an unchanged range must be idempotent.
func TestGenerateAutoTicksIdempotent(t *testing.T) {
	p := newTestPlot(t)
	a := p.XAxis()
	a.SetRange(Range{Lower: 0.37, Upper: 912.6})
	a.generateAutoTicks()
	first := append([]float64(nil), a.TickVector()...)
	a.generateAutoTicks()
	if diff := cmp.Diff(first, a.TickVector()); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
}

func TestGenerateAutoTicksLog(t *testing.T) {
	tests := []struct {
		name string
		rng  Range
		base float64
		want []float64
	}{
		{
			name: "decades",
			rng:  Range{1, 1000},
			base: 10,
			want: []float64{1, 10, 100, 1000},
		},
		{
			name: "partial decades",
			rng:  Range{5, 500},
			base: 10,
			want: []float64{1, 10, 100, 1000},
		},
		{
			name: "negative domain",
			rng:  Range{-1000, -1},
			base: 10,
			want: []float64{-1000, -100, -10, -1},
		},
		{
			name: "base two",
			rng:  Range{1, 8},
			base: 2,
			want: []float64{1, 2, 4, 8},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlot(t)
			a := p.XAxis()
			a.SetScaleType(ScaleLogarithmic)
			a.SetScaleLogBase(tc.base)
			a.SetRange(tc.rng)
			a.generateAutoTicks()
			if diff := cmp.Diff(tc.want, a.TickVector(), cmpopts.EquateApprox(1e-9, 0)); diff != "" {
				t.Errorf("tick vector mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAutoSubTickCount(t *testing.T) {
	tests := []struct {
		step float64
		want int
	}{
		{1.0, 4},
		{2.0, 3},
		{3.0, 2},
		{5.0, 4},
		{0.5, 4},  // mantissa 5
		{25, 4},   // mantissa 2.5
		{1.5, 2},
		{3.5, 4},
		{100, 4},  // mantissa 1
		{0.02, 3}, // mantissa 2
	}
	for _, tc := range tests {
		if got := autoSubTickCount(tc.step, 4); got != tc.want {
			t.Errorf("autoSubTickCount(%g) = %d, want %d", tc.step, got, tc.want)
		}
	}
	// a mantissa that is neither integer nor half-integer keeps the fallback
	if got := autoSubTickCount(1.7, 9); got != 9 {
		t.Errorf("autoSubTickCount(1.7) = %d, want fallback 9", got)
	}
}

func TestSetupTickVectors(t *testing.T) {
	p := newTestPlot(t)
	a := p.XAxis()
	a.SetRange(Range{0, 5})
	a.setupTickVectors()

	if diff := cmp.Diff([]float64{0, 1, 2, 3, 4, 5}, a.TickVector(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("tick vector mismatch (-want +got):\n%s", diff)
	}
	wantLabels := []string{"0", "1", "2", "3", "4", "5"}
	if diff := cmp.Diff(wantLabels, a.TickVectorLabels()); diff != "" {
		t.Errorf("label vector mismatch (-want +got):\n%s", diff)
	}
	// step 1 gives 4 subticks per interval, all inside the range
	sub := a.SubTickVector()
	if want := 5 * 4; len(sub) != want {
		t.Fatalf("got %d subticks, want %d", len(sub), want)
	}
	for _, st := range sub {
		if st < a.Range().Lower || st > a.Range().Upper {
			t.Errorf("subtick %g outside range %v", st, a.Range())
		}
		if _, frac := math.Modf(st); math.Abs(frac-0.2) > 1e-9 && math.Abs(frac-0.4) > 1e-9 &&
			math.Abs(frac-0.6) > 1e-9 && math.Abs(frac-0.8) > 1e-9 {
			t.Errorf("subtick %g not on a fifth of the interval", st)
		}
	}
}

func TestSetupTickVectorsManual(t *testing.T) {
	p := newTestPlot(t)
	a := p.XAxis()
	a.SetAutoTicks(false)
	a.SetAutoTickLabels(false)
	a.SetTickVector([]float64{1, 2.5, 4})
	a.SetTickVectorLabels([]string{"low"})
	a.SetRange(Range{0, 5})
	a.setupTickVectors()

	if diff := cmp.Diff([]float64{1, 2.5, 4}, a.TickVector()); diff != "" {
		t.Errorf("manual ticks were modified (-want +got):\n%s", diff)
	}
	// provided label vector is padded to tick count
	if got := len(a.TickVectorLabels()); got != 3 {
		t.Errorf("got %d labels, want 3", got)
	}
}

func TestVisibleTickBounds(t *testing.T) {
	p := newTestPlot(t)
	a := p.XAxis()
	a.SetAutoTicks(false)
	a.SetTickVector([]float64{-2, -1, 0, 1, 2, 3})
	a.SetRange(Range{-0.5, 2.5})
	low, high := a.visibleTickBounds()
	if low != 2 || high != 4 {
		t.Errorf("visibleTickBounds = (%d, %d), want (2, 4)", low, high)
	}
	if lo, hi := a.VisibleTickBounds(); lo != low || hi != high {
		t.Errorf("VisibleTickBounds = (%d, %d), want (%d, %d)", lo, hi, low, high)
	}

	a.SetTickVector([]float64{10, 20})
	low, high = a.visibleTickBounds()
	if low <= high {
		t.Errorf("no visible ticks, got low %d <= high %d", low, high)
	}
}

func TestFormatTickValue(t *testing.T) {
	p := newTestPlot(t)
	a := p.XAxis()
	if got := a.formatTickValue(0.25); got != "0.25" {
		t.Errorf("default format: got %q, want %q", got, "0.25")
	}
	a.SetNumberFormat('f')
	a.SetNumberPrecision(2)
	if got := a.formatTickValue(3.14159); got != "3.14" {
		t.Errorf("fixed format: got %q, want %q", got, "3.14")
	}
	a.SetNumberFormat('e')
	a.SetNumberPrecision(1)
	if got := a.formatTickValue(1500.0); got != "1.5e+03" {
		t.Errorf("exponent format: got %q, want %q", got, "1.5e+03")
	}
}
