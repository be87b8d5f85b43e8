package pathstroke

// StrokePath strokes src with the given style, returning the outline as a
// new path. The boolean reports whether a stroke was applied:
//
//   - non-finite src: empty path, false
//   - style.Width < 0 (fill): copy of src, true
//   - style.Width == 0 (hairline): copy of src, false
//   - style.Width > 0: stroked outline, true; a non-finite result
//     (overflow on near-antiparallel tangents) yields an empty path
//     and false
//
// The result is always a freshly built path, so callers may assign it over
// src without aliasing hazards. Curved segments are flattened to polylines
// at a tolerance derived from the resolution scale before stroking.
func StrokePath(src *Path, style Stroke, opts ...StrokeOption) (*Path, bool) {
	dst := NewPath()
	if !src.IsFinite() {
		Logger().Warn("stroke rejected: non-finite source path")
		return dst, false
	}

	o := applyStrokeOptions(opts)

	if style.Width <= 0 {
		// hairline or fill: the source is the result
		dst = src.Clone()
		return dst, style.Width < 0
	}

	if o.cullRect != nil && !src.IsEmpty() {
		// grow by the worst-case outset: half width scaled by the miter limit
		// for sharp joins
		outset := style.Width / 2
		if style.Join == LineJoinMiter && style.MiterLimit > 1 {
			outset *= style.MiterLimit
		}
		if !o.cullRect.growBy(outset).Intersects(src.Bounds()) {
			return dst, true
		}
	}

	if style.IsDashed() {
		src = ApplyDash(src, style.Dash, defaultFlattenTolerance/o.resScale)
	}

	s := newStroker(style.Width/2, style.MiterLimit, style.Cap, style.Join,
		o.resScale, o.ignoreCenter, src.CountPoints())

	walkPath(s, src, o.resScale)

	s.done(dst, lastVerbIsLine(src))

	if !dst.IsFinite() {
		Logger().Warn("stroke rejected: non-finite result",
			"elements", len(dst.elements))
		dst.Clear()
		return dst, false
	}
	Logger().Debug("stroke complete",
		"contours", dst.CountContours(), "elements", len(dst.elements))
	return dst, true
}

// walkPath feeds src's verbs through the stroker. Curves are flattened and
// stroked as joined line sub-segments; the join strategy runs between the
// sub-segments exactly as it does between explicit line verbs.
func walkPath(s *stroker, src *Path, resScale float64) {
	tol := defaultFlattenTolerance / resScale
	var cur, contourStart Point
	started := false
	var scratch []Point

	ensureStarted := func() {
		// a leading line/curve verb gets an implicit contour start
		if !started {
			s.moveTo(StylusPoint{Point: cur, Pressure: 1})
			contourStart = cur
			started = true
		}
	}
	feed := func(pts []Point) {
		for _, pt := range pts {
			s.lineTo(StylusPoint{Point: pt, Pressure: 1})
		}
	}

	for _, el := range src.elements {
		switch e := el.(type) {
		case MoveTo:
			cur = e.Point
			contourStart = e.Point
			started = true
			s.moveTo(StylusPoint{Point: cur, Pressure: 1})
		case LineTo:
			ensureStarted()
			s.lineTo(StylusPoint{Point: e.Point, Pressure: 1})
			cur = e.Point
		case QuadTo:
			ensureStarted()
			scratch = appendFlattenedQuad(scratch[:0], cur, e.Control, e.Point, tol)
			feed(scratch)
			cur = e.Point
		case ConicTo:
			ensureStarted()
			c := conic{pts: [3]Point{cur, e.Control, e.Point}, weight: e.Weight}
			scratch = appendFlattenedConic(scratch[:0], c, tol)
			feed(scratch)
			cur = e.Point
		case CubicTo:
			ensureStarted()
			scratch = appendFlattenedCubic(scratch[:0], cur, e.Control1, e.Control2, e.Point, tol)
			feed(scratch)
			cur = e.Point
		case Close:
			if started {
				// close the centerline back to the contour start before
				// closing the offset contours
				s.lineTo(StylusPoint{Point: contourStart, Pressure: 1})
				s.close(true)
				cur = contourStart
				started = false
			}
		}
	}
}

// lastVerbIsLine reports whether the final drawing verb of the path is a
// straight segment. Governs whether the end cap may collapse onto the last
// offset point.
func lastVerbIsLine(p *Path) bool {
	for i := len(p.elements) - 1; i >= 0; i-- {
		switch p.elements[i].(type) {
		case LineTo, Close:
			return true
		case QuadTo, ConicTo, CubicTo:
			return false
		case MoveTo:
			return false
		}
	}
	return false
}
