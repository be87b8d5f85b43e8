package pathstroke

import "math"

// root2Over2 is sqrt(2)/2, the conic weight of an exact quarter-circle.
const root2Over2 = math.Sqrt2 / 2

// oneOverSqrt2 equals root2Over2; kept as a separate name where it is used
// as a miter-limit threshold rather than a conic weight.
const oneOverSqrt2 = root2Over2

// conic is a rational quadratic segment: start, control, end plus weight.
type conic struct {
	pts    [3]Point
	weight float64
}

// eval evaluates the conic at parameter t in [0, 1].
func (c conic) eval(t float64) Point {
	// Rational Bezier: ((1-t)^2 p0 + 2t(1-t) w p1 + t^2 p2) / denom
	mt := 1 - t
	a := mt * mt
	b := 2 * mt * t * c.weight
	d := t * t
	denom := a + b + d
	return Point{
		X: (a*c.pts[0].X + b*c.pts[1].X + d*c.pts[2].X) / denom,
		Y: (a*c.pts[0].Y + b*c.pts[1].Y + d*c.pts[2].Y) / denom,
	}
}

// chop splits the conic at t=0.5 into two conics with equal weights.
func (c conic) chop() (conic, conic) {
	scale := 1 / (1 + c.weight)
	newW := math.Sqrt(0.5 + c.weight*0.5)
	wp1 := c.pts[1].Mul(c.weight)
	mid := c.pts[0].Add(wp1.Mul(2)).Add(c.pts[2]).Mul(scale * 0.5)
	left := conic{
		pts:    [3]Point{c.pts[0], c.pts[0].Add(wp1).Mul(scale), mid},
		weight: newW,
	}
	right := conic{
		pts:    [3]Point{mid, wp1.Add(c.pts[2]).Mul(scale), c.pts[2]},
		weight: newW,
	}
	return left, right
}

// maxConicsForArc is the most conic segments a unit arc can need:
// four full quadrants plus a partial remainder.
const maxConicsForArc = 5

// buildUnitArc constructs the arc sweeping from unit vector uStart to unit
// vector uStop around the origin, one conic per quadrant plus a partial
// conic for the remainder, then maps the result through m. clockwise picks
// the rotation direction. Returns no conics when the vectors are
// effectively coincident in the requested direction.
func buildUnitArc(uStart, uStop Point, clockwise bool, m Matrix) []conic {
	x := uStart.Dot(uStop)
	y := uStart.Cross(uStop)
	absY := math.Abs(y)

	// Nearly coincident vectors: the angle is either ~0 or ~180; the dot
	// product distinguishes them. A ~0 sweep in the requested direction
	// produces nothing.
	if absY <= scalarNearlyZero && x > 0 &&
		((y >= 0 && clockwise) || (y <= 0 && !clockwise)) {
		return nil
	}

	if !clockwise {
		y = -y
	}

	// One conic per quadrant of a circle. Which quadrant does (x, y) lie in?
	//	0 == [0  .. 90)
	//	1 == [90 ..180)
	//	2 == [180..270)
	//	3 == [270..360)
	quadrant := 0
	if y == 0 {
		quadrant = 2 // 180 degrees
	} else if x == 0 {
		if y > 0 {
			quadrant = 1
		} else {
			quadrant = 3
		}
	} else {
		if y < 0 {
			quadrant += 2
		}
		if (x < 0) != (y < 0) {
			quadrant++
		}
	}

	quadrantPts := [8]Point{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}

	var dst [maxConicsForArc]conic
	count := quadrant
	for i := 0; i < count; i++ {
		dst[i] = conic{
			pts: [3]Point{
				quadrantPts[i*2%8],
				quadrantPts[(i*2+1)%8],
				quadrantPts[(i*2+2)%8],
			},
			weight: root2Over2,
		}
	}

	// Remaining sub-90-degree arc from the last quadrant point to (x, y).
	finalP := Point{X: x, Y: y}
	lastQ := quadrantPts[quadrant*2%8]
	dot := lastQ.Dot(finalP)

	if dot < 1 {
		offCurve := Point{X: lastQ.X + x, Y: lastQ.Y + y}
		// The off-curve point lies on the bisector, rescaled so the conic
		// with weight cos(theta/2) passes through the arc.
		cosThetaOver2 := math.Sqrt((1 + dot) / 2)
		offCurve = setLength(offCurve, 1/cosThetaOver2)
		if !equalsWithinTolerance(lastQ, offCurve, scalarNearlyZero) {
			dst[count] = conic{
				pts:    [3]Point{lastQ, offCurve, finalP},
				weight: cosThetaOver2,
			}
			count++
		}
	}

	// Rotate the whole arc so it starts at uStart, flip for counter-clockwise,
	// then apply the caller's matrix.
	xform := rotateSinCos(uStart.Y, uStart.X)
	if !clockwise {
		xform = xform.Multiply(Scale(1, -1))
	}
	xform = m.Multiply(xform)

	out := make([]conic, count)
	for i := 0; i < count; i++ {
		out[i] = conic{
			pts: [3]Point{
				xform.TransformPoint(dst[i].pts[0]),
				xform.TransformPoint(dst[i].pts[1]),
				xform.TransformPoint(dst[i].pts[2]),
			},
			weight: dst[i].weight,
		}
	}
	return out
}
