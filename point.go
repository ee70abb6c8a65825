package plot

import "math"

// Point represents a 2D pixel point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// distSqrToLine returns the squared distance of point to the line segment
// from start to end. Degenerate segments fall back to point distance.
// Shared by the item and plottable hit tests.
func distSqrToLine(start, end, point Point) float64 {
	v := end.Sub(start)
	vLengthSqr := v.LengthSquared()
	if vLengthSqr < 1e-12 {
		return start.Sub(point).LengthSquared()
	}
	mu := point.Sub(start).Dot(v) / vLengthSqr
	switch {
	case mu < 0:
		return start.Sub(point).LengthSquared()
	case mu > 1:
		return end.Sub(point).LengthSquared()
	default:
		return start.Add(v.Mul(mu)).Sub(point).LengthSquared()
	}
}
