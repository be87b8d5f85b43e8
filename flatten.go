package pathstroke

import "math"

// defaultFlattenTolerance is the maximum chord distance for curve
// flattening at resolution scale 1.
const defaultFlattenTolerance = 0.25

// maxFlattenDepth bounds curve subdivision. Splitting 2^16 times exhausts
// float64 precision long before it exhausts this budget under sane input;
// the budget exists so numerically degenerate curves (NaN creep, enormous
// coordinates) terminate with a chord approximation instead of looping.
const maxFlattenDepth = 16

type quadWork struct {
	p0, p1, p2 Point
	depth      int
}

type conicWork struct {
	c     conic
	depth int
}

type cubicWork struct {
	p0, p1, p2, p3 Point
	depth          int
}

// appendFlattenedQuad appends the polyline for the quadratic (p0, p1, p2)
// to out, excluding p0. Subdivision uses an explicit stack rather than
// recursion; exhausting the depth budget falls back to the chord.
func appendFlattenedQuad(out []Point, p0, p1, p2 Point, tol float64) []Point {
	stack := make([]quadWork, 1, 2*maxFlattenDepth)
	stack[0] = quadWork{p0, p1, p2, 0}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if w.depth >= maxFlattenDepth || distanceToLine(w.p1, w.p0, w.p2) < tol {
			out = append(out, w.p2)
			continue
		}

		q0 := w.p0.Lerp(w.p1, 0.5)
		q1 := w.p1.Lerp(w.p2, 0.5)
		mid := q0.Lerp(q1, 0.5)
		// push right first so the left half is processed first
		stack = append(stack,
			quadWork{mid, q1, w.p2, w.depth + 1},
			quadWork{w.p0, q0, mid, w.depth + 1})
	}
	return out
}

// appendFlattenedConic appends the polyline for a conic segment to out,
// excluding its start point. The flatness test treats the control polygon
// like a quadratic's, which is conservative for all positive weights.
func appendFlattenedConic(out []Point, c conic, tol float64) []Point {
	stack := make([]conicWork, 1, 2*maxFlattenDepth)
	stack[0] = conicWork{c, 0}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if w.depth >= maxFlattenDepth ||
			distanceToLine(w.c.pts[1], w.c.pts[0], w.c.pts[2]) < tol {
			out = append(out, w.c.pts[2])
			continue
		}

		left, right := w.c.chop()
		stack = append(stack,
			conicWork{right, w.depth + 1},
			conicWork{left, w.depth + 1})
	}
	return out
}

// appendFlattenedCubic appends the polyline for the cubic (p0..p3) to out,
// excluding p0.
func appendFlattenedCubic(out []Point, p0, p1, p2, p3 Point, tol float64) []Point {
	stack := make([]cubicWork, 1, 2*maxFlattenDepth)
	stack[0] = cubicWork{p0, p1, p2, p3, 0}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d1 := distanceToLine(w.p1, w.p0, w.p3)
		d2 := distanceToLine(w.p2, w.p0, w.p3)
		if w.depth >= maxFlattenDepth || math.Max(d1, d2) < tol {
			out = append(out, w.p3)
			continue
		}

		// de Casteljau subdivision at t=0.5
		q0 := w.p0.Lerp(w.p1, 0.5)
		q1 := w.p1.Lerp(w.p2, 0.5)
		q2 := w.p2.Lerp(w.p3, 0.5)
		r0 := q0.Lerp(q1, 0.5)
		r1 := q1.Lerp(q2, 0.5)
		s := r0.Lerp(r1, 0.5)
		stack = append(stack,
			cubicWork{s, r1, q2, w.p3, w.depth + 1},
			cubicWork{w.p0, q0, r0, s, w.depth + 1})
	}
	return out
}

// Flattened returns a copy of the path with every curved segment
// approximated by line segments within the given tolerance. Useful for
// feeding the result into rasterizers that only understand lines and
// Beziers without conic support. Tolerance values <= 0 use the default.
func (p *Path) Flattened(tolerance float64) *Path {
	if tolerance <= 0 {
		tolerance = defaultFlattenTolerance
	}
	result := NewPath()
	var cur Point
	var scratch []Point

	emit := func(pts []Point) {
		for _, pt := range pts {
			result.lineToPoint(pt)
		}
	}

	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			result.moveToPoint(e.Point)
			cur = e.Point
		case LineTo:
			result.lineToPoint(e.Point)
			cur = e.Point
		case QuadTo:
			scratch = appendFlattenedQuad(scratch[:0], cur, e.Control, e.Point, tolerance)
			emit(scratch)
			cur = e.Point
		case ConicTo:
			c := conic{pts: [3]Point{cur, e.Control, e.Point}, weight: e.Weight}
			scratch = appendFlattenedConic(scratch[:0], c, tolerance)
			emit(scratch)
			cur = e.Point
		case CubicTo:
			scratch = appendFlattenedCubic(scratch[:0], cur, e.Control1, e.Control2, e.Point, tolerance)
			emit(scratch)
			cur = e.Point
		case Close:
			result.Close()
		}
	}
	return result
}

// distanceToLine calculates the perpendicular distance from point p to line
// segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLenSq := ab.LengthSquared()

	if abLenSq < 1e-20 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / abLenSq
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}
