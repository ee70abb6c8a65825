package plot

import "math"

// Rect represents an axis-aligned pixel rectangle.
// X and Y are the top-left corner; W and H are non-negative extents.
type Rect struct {
	X, Y, W, H float64
}

// R is a convenience function to create a Rect from its top-left corner
// and extents.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromPoints creates the smallest Rect containing both points.
func RectFromPoints(p, q Point) Rect {
	r := Rect{X: p.X, Y: p.Y, W: q.X - p.X, H: q.Y - p.Y}
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Left returns the minimum x coordinate.
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum x coordinate.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the minimum y coordinate.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the maximum y coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Y} }

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point { return Point{X: r.X + r.W, Y: r.Y} }

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point { return Point{X: r.X, Y: r.Y + r.H} }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point { return Point{X: r.X + r.W, Y: r.Y + r.H} }

// Center returns the center point.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Contains reports whether p lies inside the rectangle (borders included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Empty reports whether the rectangle has zero or negative extent.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Translated returns the rectangle moved by dx, dy.
func (r Rect) Translated(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Adjusted returns the rectangle with its edges moved by the given deltas.
// Positive dx1/dy1 move the left/top edge inward; positive dx2/dy2 move
// the right/bottom edge outward.
func (r Rect) Adjusted(dx1, dy1, dx2, dy2 float64) Rect {
	return Rect{X: r.X + dx1, Y: r.Y + dy1, W: r.W - dx1 + dx2, H: r.H - dy1 + dy2}
}

// Expanded returns the rectangle grown by d on every side.
func (r Rect) Expanded(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// United returns the smallest rectangle containing both r and s.
// An empty rectangle does not contribute.
func (r Rect) United(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x := min(r.X, s.X)
	y := min(r.Y, s.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.Right(), s.Right()) - x,
		H: max(r.Bottom(), s.Bottom()) - y,
	}
}

// rectBorderDistance returns the distance of pos to the nearest border
// segment of rect. Interior hits on filled shapes are handled by the
// callers (see rectSelectTest).
func rectBorderDistance(rect Rect, pos Point) float64 {
	segs := [4][2]Point{
		{rect.TopLeft(), rect.TopRight()},
		{rect.BottomLeft(), rect.BottomRight()},
		{rect.TopLeft(), rect.BottomLeft()},
		{rect.TopRight(), rect.BottomRight()},
	}
	minDistSqr := distSqrToLine(segs[0][0], segs[0][1], pos)
	for _, s := range segs[1:] {
		if d := distSqrToLine(s[0], s[1], pos); d < minDistSqr {
			minDistSqr = d
		}
	}
	return math.Sqrt(minDistSqr)
}
