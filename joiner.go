package pathstroke

import "math"

// The join strategy connects the offset segment ending at pivot (with
// beforeUnit normal) to the one starting at pivot (with afterUnit normal).
// Geometry is emitted on both accumulators: the outer contour receives the
// join proper, the inner contour the mirror-image fill-in. The strategy set
// is closed; dispatch is a switch on the join style captured at stroker
// construction.

type angleKind int

const (
	angleNearly180 angleKind = iota // unit normals nearly opposite
	angleSharp                      // obtuse turn
	angleShallow                    // acute turn
	angleNearlyLine                 // unit normals nearly identical
)

// dotToAngleKind classifies the angle between two unit normals by their
// dot product.
func dotToAngleKind(dot float64) angleKind {
	if dot >= 0 {
		if math.Abs(1-dot) <= scalarNearlyZero {
			return angleNearlyLine
		}
		return angleShallow
	}
	if math.Abs(1+dot) <= scalarNearlyZero {
		return angleNearly180
	}
	return angleSharp
}

// isClockwise reports whether rotating from before to after sweeps
// clockwise (in y-down device space).
func isClockwise(before, after Point) bool {
	return before.X*after.Y > before.Y*after.X
}

// handleInnerJoin fills the inner contour across a join. Going through the
// pivot keeps an oversized stroke radius from cutting a diagonal across the
// contour; there is no cheap test for when the extra point is unnecessary.
func handleInnerJoin(inner *Path, pivot, after Point) {
	inner.lineToPoint(pivot)
	inner.lineToPoint(pivot.Sub(after))
}

func (s *stroker) join(beforeUnit Point, pivot Point, afterUnit Point,
	radius float64, prevIsLine, currIsLine bool) {
	switch s.joinStyle {
	case LineJoinBevel:
		bevelJoin(&s.outer, &s.inner, beforeUnit, pivot, afterUnit, radius)
	case LineJoinRound:
		roundJoin(&s.outer, &s.inner, beforeUnit, pivot, afterUnit, radius)
	case LineJoinMiter:
		miterJoin(&s.outer, &s.inner, beforeUnit, pivot, afterUnit,
			radius, s.invMiterLimit, prevIsLine, currIsLine)
	}
}

func bevelJoin(outer, inner *Path, beforeUnit, pivot, afterUnit Point, radius float64) {
	after := afterUnit.Mul(radius)

	if !isClockwise(beforeUnit, afterUnit) {
		outer, inner = inner, outer
		after = after.Neg()
	}

	outer.lineToPoint(pivot.Add(after))
	handleInnerJoin(inner, pivot, after)
}

func roundJoin(outer, inner *Path, beforeUnit, pivot, afterUnit Point, radius float64) {
	dot := beforeUnit.Dot(afterUnit)
	if dotToAngleKind(dot) == angleNearlyLine {
		return
	}

	before := beforeUnit
	after := afterUnit
	clockwise := true

	if !isClockwise(before, after) {
		outer, inner = inner, outer
		before = before.Neg()
		after = after.Neg()
		clockwise = false
	}

	m := Translate(pivot.X, pivot.Y).Multiply(Scale(radius, radius))
	arcs := buildUnitArc(before, after, clockwise, m)
	if len(arcs) == 0 {
		return
	}
	for _, a := range arcs {
		outer.conicToPoint(a.pts[1], a.pts[2], a.weight)
	}
	handleInnerJoin(inner, pivot, after.Mul(radius))
}

func miterJoin(outer, inner *Path, beforeUnit, pivot, afterUnit Point,
	radius, invMiterLimit float64, prevIsLine, currIsLine bool) {
	dot := beforeUnit.Dot(afterUnit)
	kind := dotToAngleKind(dot)
	if kind == angleNearlyLine {
		return
	}

	before := beforeUnit
	after := afterUnit
	var mid Point
	doMiter := false
	ccw := false

	if kind == angleNearly180 {
		// the miter tip would be at infinity; fall through to the blunt edge
		currIsLine = false
	} else {
		ccw = !isClockwise(before, after)
		if ccw {
			outer, inner = inner, outer
			before = before.Neg()
			after = after.Neg()
		}

		// An upright right angle (common when stroking rectangles) has an
		// exact miter without square roots, provided the limit allows it.
		if dot == 0 && invMiterLimit <= oneOverSqrt2 {
			mid = before.Add(after).Mul(radius)
			doMiter = true
		} else {
			// midLength = radius / sinHalfAngle; the miter survives when
			// 1/sinHalfAngle <= miterLimit. The dot product is between
			// normals rather than tangents, hence 1+dot in the half-angle
			// formula instead of 1-dot.
			sinHalfAngle := math.Sqrt((1 + dot) / 2)
			if sinHalfAngle < invMiterLimit {
				currIsLine = false
			} else {
				// form the initial mid-vector the most accurate way for
				// this angle class
				if kind == angleSharp {
					mid = Point{X: after.Y - before.Y, Y: before.X - after.X}
					if ccw {
						mid = mid.Neg()
					}
				} else {
					mid = before.Add(after)
				}
				mid = setLength(mid, radius/sinHalfAngle)
				doMiter = true
			}
		}
	}

	if doMiter {
		if prevIsLine {
			outer.setLastPoint(pivot.Add(mid))
		} else {
			outer.lineToPoint(pivot.Add(mid))
		}
	}

	after = after.Mul(radius)
	if !currIsLine {
		outer.lineToPoint(pivot.Add(after))
	}
	handleInnerJoin(inner, pivot, after)
}
