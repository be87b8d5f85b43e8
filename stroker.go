package pathstroke

// stroker is the contour offset builder: a state machine that walks a
// sequence of (optionally pressure-weighted) centerline points, maintaining
// outer and inner offset contours and invoking the join/cap strategies at
// segment boundaries. One stroker serves one stroke invocation; it holds no
// state across invocations.
//
// segmentCount tracks the contour state: -1 no contour open, 0 contour
// started (moveTo seen), >0 that many segments added.
type stroker struct {
	radius        float64
	invMiterLimit float64
	resScale      float64
	invResScale   float64

	firstNormal, prevNormal         Point // radius-scaled
	firstUnitNormal, prevUnitNormal Point
	firstPt, prevPt                 StylusPoint // on the original centerline
	firstOuterPt                    Point
	segmentCount                    int
	prevIsLine                      bool
	joinCompleted                   bool
	canIgnoreCenter                 bool

	capStyle  LineCap
	joinStyle LineJoin

	// outer is the working answer; inner is per-contour scratch, rewound
	// after each contour.
	inner, outer Path
}

// newStroker builds a stroker for one pass. reserve is an estimate of the
// input point count, used to presize the accumulators: the result holds
// roughly inner + outer + join geometry, the scratch one contour.
func newStroker(radius, miterLimit float64, capStyle LineCap, joinStyle LineJoin,
	resScale float64, canIgnoreCenter bool, reserve int) *stroker {
	if joinStyle == LineJoinMiter {
		if miterLimit <= 1 {
			joinStyle = LineJoinBevel
		}
	}
	s := &stroker{
		radius:          radius,
		resScale:        resScale,
		canIgnoreCenter: canIgnoreCenter,
		capStyle:        capStyle,
		joinStyle:       joinStyle,
		segmentCount:    -1,
		outer:           newPathWithCapacity(reserve * 3),
		inner:           newPathWithCapacity(reserve),
	}
	if joinStyle == LineJoinMiter {
		s.invMiterLimit = 1 / miterLimit
	}
	// The '4' matches the fill scan converter's error term.
	s.invResScale = 1 / (resScale * 4)
	return s
}

func (s *stroker) moveTo(pt StylusPoint) {
	if s.segmentCount > 0 {
		s.finishContour(false, false)
	}
	s.segmentCount = 0
	s.firstPt = pt
	s.prevPt = pt
	s.joinCompleted = false
}

func (s *stroker) lineTo(curr StylusPoint) {
	teeny := equalsWithinTolerance(s.prevPt.Point, curr.Point,
		scalarNearlyZero*s.invResScale)
	if teeny && s.capStyle == LineCapButt {
		return
	}
	if teeny && (s.joinCompleted || !s.prevPt.Equal(curr)) {
		return
	}

	_, unitNormal, ok := s.preJoinTo(curr, true)
	if !ok {
		return
	}

	// offset by the current point's pressure-weighted radius
	curNormal := unitNormal.Mul(s.radius * curr.Pressure)
	s.outer.lineToPoint(curr.Point.Add(curNormal))
	s.inner.lineToPoint(curr.Point.Sub(curNormal))

	s.postJoinTo(curr, curNormal, unitNormal)
}

func (s *stroker) close(isLine bool) {
	s.finishContour(true, isLine)
}

// done finishes any open contour and moves the accumulated result into dst,
// consuming the stroker's output.
func (s *stroker) done(dst *Path, isLine bool) {
	s.finishContour(false, isLine)
	dst.Swap(&s.outer)
}

// preJoinTo computes the normals of the segment prevPt -> curr and either
// seeds a fresh contour (first segment) or emits the join against the
// previous segment. Reports false only when the segment is degenerate and
// the butt cap policy drops it.
func (s *stroker) preJoinTo(curr StylusPoint, currIsLine bool) (normal, unitNormal Point, ok bool) {
	prev := s.prevPt.Point
	prevRadius := s.radius * s.prevPt.Pressure

	normal, unitNormal, ok = computeNormals(prev, curr.Point, s.resScale, prevRadius)
	if !ok {
		if s.capStyle == LineCapButt {
			return Point{}, Point{}, false
		}
		// Square and round caps draw even for zero-length segments. The
		// segment has no direction, so default to an upright orientation.
		normal = Point{X: prevRadius}
		unitNormal = Point{X: 1}
	}

	if s.segmentCount == 0 {
		s.firstNormal = normal
		s.firstUnitNormal = unitNormal
		s.firstOuterPt = prev.Add(normal)

		s.outer.moveToPoint(s.firstOuterPt)
		s.inner.moveToPoint(prev.Sub(normal))
	} else {
		s.join(s.prevUnitNormal, prev, unitNormal, prevRadius, s.prevIsLine, currIsLine)
	}
	s.prevIsLine = currIsLine
	return normal, unitNormal, true
}

func (s *stroker) postJoinTo(curr StylusPoint, normal, unitNormal Point) {
	s.joinCompleted = true
	s.prevPt = curr
	s.prevUnitNormal = unitNormal
	s.prevNormal = normal
	s.segmentCount++
}

func (s *stroker) finishContour(closeContour, currIsLine bool) {
	if s.segmentCount > 0 {
		if closeContour {
			s.join(s.prevUnitNormal, s.prevPt.Point, s.firstUnitNormal,
				s.radius, s.prevIsLine, currIsLine)
			s.outer.Close()

			if s.canIgnoreCenter {
				// Keep whichever of the two contours is larger and drop
				// the other. Bounds containment is a proxy for area
				// containment; it can misfire on concave shapes.
				if s.inner.Bounds().ContainsRect(s.outer.Bounds()) {
					s.inner.Swap(&s.outer)
				}
			} else {
				// add the inner contour reversed as its own sub-contour
				if pt, ok := s.inner.LastPoint(); ok {
					s.outer.moveToPoint(pt)
				}
				s.inner.reverseAppendTo(&s.outer)
				s.outer.Close()
			}
		} else { // cap the start and end
			pt, _ := s.inner.LastPoint()
			var capInto *Path
			if currIsLine {
				capInto = &s.inner
			}
			s.capEnd(&s.outer, s.prevPt.Point, s.prevNormal, pt, capInto)
			s.inner.reverseAppendTo(&s.outer)

			capInto = nil
			if s.prevIsLine {
				capInto = &s.inner
			}
			s.capEnd(&s.outer, s.firstPt.Point, s.firstNormal.Neg(), s.firstOuterPt, capInto)
			s.outer.Close()
		}
	}
	// rewind rather than reallocate: the scratch is reused by the next contour
	s.inner.Clear()
	s.segmentCount = -1
}
