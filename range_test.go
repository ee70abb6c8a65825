package plot

import (
	"math"
	"testing"
)

func TestValidRange(t *testing.T) {
	tests := []struct {
		name         string
		lower, upper float64
		want         bool
	}{
		{"simple", 0, 5, true},
		{"negative", -10, -2, true},
		{"straddles zero", -1, 1, true},
		{"tiny but valid", 0, 1e-270, true},
		{"equal bounds", 3, 3, false},
		{"inverted", 5, 0, false},
		{"nan lower", math.NaN(), 1, false},
		{"nan upper", 0, math.NaN(), false},
		{"inf lower", math.Inf(-1), 0, false},
		{"inf upper", 0, math.Inf(1), false},
		{"lower too large", -2e280, 0, false},
		{"upper too large", 0, 2e280, false},
		{"span too small", 1, 1 + 1e-290, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidRangeBounds(tt.lower, tt.upper)
			if got != tt.want {
				t.Errorf("ValidRangeBounds(%g, %g) = %v, want %v", tt.lower, tt.upper, got, tt.want)
			}
			if got2 := ValidRange(Range{tt.lower, tt.upper}); got2 != got {
				t.Errorf("ValidRange disagrees with ValidRangeBounds for (%g, %g)", tt.lower, tt.upper)
			}
		})
	}
}

func TestRangeSizeCenterContains(t *testing.T) {
	r := Range{Lower: -2, Upper: 6}
	if got := r.Size(); got != 8 {
		t.Errorf("Size() = %g, want 8", got)
	}
	if got := r.Center(); got != 2 {
		t.Errorf("Center() = %g, want 2", got)
	}
	for _, tt := range []struct {
		v    float64
		want bool
	}{
		{-2, true}, {0, true}, {6, true}, {-2.0001, false}, {6.0001, false},
	} {
		if got := r.Contains(tt.v); got != tt.want {
			t.Errorf("Contains(%g) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestSanitizedForLinScale(t *testing.T) {
	t.Run("zero span expands", func(t *testing.T) {
		s := Range{Lower: 4, Upper: 4}.SanitizedForLinScale()
		if !(s.Lower < 4 && s.Upper > 4) {
			t.Errorf("zero-size range not expanded: %+v", s)
		}
		if s.Size() <= 0 {
			t.Errorf("sanitized range still degenerate: %+v", s)
		}
	})
	t.Run("inverted normalizes", func(t *testing.T) {
		s := Range{Lower: 7, Upper: 3}.SanitizedForLinScale()
		if s.Lower != 3 || s.Upper != 7 {
			t.Errorf("got %+v, want {3 7}", s)
		}
	})
	t.Run("valid range untouched", func(t *testing.T) {
		s := Range{Lower: 1, Upper: 2}.SanitizedForLinScale()
		if s != (Range{Lower: 1, Upper: 2}) {
			t.Errorf("valid range changed: %+v", s)
		}
	})
}

func TestSanitizedForLogScale(t *testing.T) {
	tests := []struct {
		name string
		in   Range
		// expectations are on the sign domain and bound preservation:
		check func(t *testing.T, s Range)
	}{
		{
			"positive stays", Range{1, 100},
			func(t *testing.T, s Range) {
				if s != (Range{1, 100}) {
					t.Errorf("got %+v, want {1 100}", s)
				}
			},
		},
		{
			"negative stays", Range{-100, -1},
			func(t *testing.T, s Range) {
				if s != (Range{-100, -1}) {
					t.Errorf("got %+v, want {-100 -1}", s)
				}
			},
		},
		{
			"zero lower clamped positive", Range{0, 10},
			func(t *testing.T, s Range) {
				if s.Lower <= 0 || s.Upper != 10 {
					t.Errorf("got %+v, want positive lower and upper 10", s)
				}
			},
		},
		{
			"zero upper clamped negative", Range{-10, 0},
			func(t *testing.T, s Range) {
				if s.Upper >= 0 || s.Lower != -10 {
					t.Errorf("got %+v, want negative upper and lower -10", s)
				}
			},
		},
		{
			"straddling keeps dominant positive side", Range{-1, 1000},
			func(t *testing.T, s Range) {
				if s.Lower <= 0 || s.Upper != 1000 {
					t.Errorf("got %+v, want positive range keeping upper 1000", s)
				}
			},
		},
		{
			"straddling keeps dominant negative side", Range{-1000, 1},
			func(t *testing.T, s Range) {
				if s.Upper >= 0 || s.Lower != -1000 {
					t.Errorf("got %+v, want negative range keeping lower -1000", s)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.in.SanitizedForLogScale())
		})
	}
}
