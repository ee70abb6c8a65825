package plot

import "math"

// Range bounds on magnitude and span. Ranges whose bounds exceed
// MaxRange in magnitude, or whose span falls below MinRange, are invalid.
const (
	MinRange = 1e-280
	MaxRange = 1e280
)

// rangeFac bounds how close the zero-side bound of a log-sanitized range
// may come to zero, relative to the far bound.
const rangeFac = 1e-3

// linEpsilon is the nudge applied to zero-size ranges on linear scales.
const linEpsilon = 1e-10

// Range represents an interval of plot coordinates on one axis.
// A well-formed Range has Lower < Upper; use ValidRange to check
// whether a range is acceptable as an axis range.
type Range struct {
	Lower, Upper float64
}

// NewRange creates a normalized Range from two bounds given in any order.
func NewRange(lower, upper float64) Range {
	return Range{Lower: lower, Upper: upper}.Normalized()
}

// Size returns Upper-Lower.
func (r Range) Size() float64 {
	return r.Upper - r.Lower
}

// Center returns the midpoint of the range.
func (r Range) Center() float64 {
	return (r.Lower + r.Upper) / 2
}

// Contains reports whether value lies inside the range, bounds included.
func (r Range) Contains(value float64) bool {
	return value >= r.Lower && value <= r.Upper
}

// Expanded returns the smallest range containing both r and other.
func (r Range) Expanded(other Range) Range {
	if other.Lower < r.Lower {
		r.Lower = other.Lower
	}
	if other.Upper > r.Upper {
		r.Upper = other.Upper
	}
	return r
}

// Normalized returns the range with Lower <= Upper, swapping the bounds
// if necessary.
func (r Range) Normalized() Range {
	if r.Lower > r.Upper {
		r.Lower, r.Upper = r.Upper, r.Lower
	}
	return r
}

// SanitizedForLinScale returns a copy of the range that can be used as an
// axis range on a linear scale. The bounds are normalized; a zero-size
// range is expanded symmetrically by a tiny epsilon so it regains a
// nonzero span.
func (r Range) SanitizedForLinScale() Range {
	s := r.Normalized()
	if s.Lower == s.Upper {
		s.Lower -= linEpsilon
		s.Upper += linEpsilon
	}
	return s
}

// SanitizedForLogScale returns a copy of the range that can be used as an
// axis range on a logarithmic scale. A range that touches or straddles
// zero is clamped to a minimal span on the side of zero that holds the
// larger part of the range; the sign domain of the range is never
// flipped. The distance of the nearer-to-zero bound is bounded below by
// rangeFac relative to the far bound.
func (r Range) SanitizedForLogScale() Range {
	s := r.Normalized()
	// can't have a range spanning negative and positive values in a
	// log plot, so clamp the smaller portion to the side of zero:
	switch {
	case s.Lower == 0 && s.Upper != 0:
		if rangeFac < s.Upper*rangeFac {
			s.Lower = rangeFac
		} else {
			s.Lower = s.Upper * rangeFac
		}
	case s.Lower != 0 && s.Upper == 0:
		if -rangeFac > s.Lower*rangeFac {
			s.Upper = -rangeFac
		} else {
			s.Upper = s.Lower * rangeFac
		}
	case s.Lower < 0 && s.Upper > 0:
		if -s.Lower > s.Upper {
			// negative portion dominates, compress the positive side:
			if -rangeFac > s.Lower*rangeFac {
				s.Upper = -rangeFac
			} else {
				s.Upper = s.Lower * rangeFac
			}
		} else {
			// positive portion dominates, compress the negative side:
			if rangeFac < s.Upper*rangeFac {
				s.Lower = rangeFac
			} else {
				s.Lower = s.Upper * rangeFac
			}
		}
	}
	return s
}

// ValidRange reports whether the range may be used as an axis range:
// both bounds finite and below MaxRange in magnitude, and the span
// neither degenerate nor smaller than MinRange relative to the bounds.
func ValidRange(r Range) bool {
	return ValidRangeBounds(r.Lower, r.Upper)
}

// ValidRangeBounds is ValidRange on raw bounds.
func ValidRangeBounds(lower, upper float64) bool {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return false
	}
	if math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return false
	}
	return lower > -MaxRange && upper < MaxRange &&
		math.Abs(lower-upper) > MinRange &&
		lower < upper
}
