package pathstroke

import "math"

// scalarNearlyZero is the tolerance below which scalars are treated as
// zero: 1/2^12, about half a subpixel at 64x antialiasing.
const scalarNearlyZero = 1.0 / (1 << 12)

// Point represents a 2D point or vector.
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

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Neg returns the negated point.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Normalize returns the unit vector in the direction of p, or the zero
// point if p has zero length. Internal code that must distinguish the
// degenerate case uses normalized instead.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// RotateCCW returns the vector rotated 90 degrees counter-clockwise.
// With y growing downward this maps (1,0) to (0,-1).
func (p Point) RotateCCW() Point {
	return Point{X: p.Y, Y: -p.X}
}

// RotateCW returns the vector rotated 90 degrees clockwise.
func (p Point) RotateCW() Point {
	return Point{X: -p.Y, Y: p.X}
}

// IsFinite reports whether both coordinates are finite (no NaN/Inf).
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// equalsWithinTolerance reports whether p and q differ by at most tol in
// each coordinate.
func equalsWithinTolerance(p, q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

// normalized returns the unit vector for (dx, dy). It reports false when the
// vector has no usable direction: zero length, or a length that is not
// finite. Callers decide the fallback.
func normalized(dx, dy float64) (Point, bool) {
	mag := math.Sqrt(dx*dx + dy*dy)
	ux := dx / mag
	uy := dy / mag
	if !isFinite(ux) || !isFinite(uy) || (ux == 0 && uy == 0) {
		return Point{}, false
	}
	return Point{X: ux, Y: uy}, true
}

// setLength returns p rescaled to the given length, or the zero point if p
// has no usable direction.
func setLength(p Point, length float64) Point {
	u, ok := normalized(p.X, p.Y)
	if !ok {
		return Point{}
	}
	return u.Mul(length)
}

// computeNormals computes the radius-scaled normal and the unit normal of
// the segment from -> to. The direction is scaled by the resolution scale
// before normalization, so segments below the resolution-dependent epsilon
// report false (degenerate). Pure function, no side effects.
func computeNormals(from, to Point, scale, radius float64) (normal, unitNormal Point, ok bool) {
	u, ok := normalized((to.X-from.X)*scale, (to.Y-from.Y)*scale)
	if !ok {
		return Point{}, Point{}, false
	}
	unitNormal = u.RotateCCW()
	normal = unitNormal.Mul(radius)
	return normal, unitNormal, true
}
