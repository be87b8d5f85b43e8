package pathstroke

// StrokeInk strokes a stylus point stream into a filled outline path.
// This is the ink-capture variant: input is line segments only, and each
// point's pressure scales the local stroke radius (radius = width/2, so a
// pressure of 0.5 halves the local thickness).
//
// The endpoint type picks the finishing style: EndpointCircle uses round
// joins and round caps, EndpointSquare uses bevel joins and square caps.
// Cap and join settings on the style are ignored.
//
// Reports false, with an empty result, when the input is empty, the width
// is not positive, or the computed outline came out non-finite.
func StrokeInk(points []StylusPoint, endpoint EndpointType, style Stroke,
	opts ...StrokeOption) (*Path, bool) {
	dst := NewPath()
	if len(points) == 0 {
		return dst, false
	}

	radius := style.Width / 2
	if radius <= 0 {
		// ink strokes require real thickness; there is no hairline variant
		return dst, false
	}

	o := applyStrokeOptions(opts)

	joinStyle, capStyle := endpointStyles(endpoint)

	// The stroke interior always matters for ink: a self-crossing pen
	// stroke must stay fully filled.
	s := newStroker(radius, style.MiterLimit, capStyle, joinStyle,
		o.resScale, false, len(points))

	for i, sp := range points {
		if sp.Pressure <= 0 {
			sp.Pressure = 1
		}
		if i == 0 {
			s.moveTo(sp)
		} else {
			s.lineTo(sp)
		}
	}
	s.done(dst, len(points) > 1)

	if !dst.IsFinite() {
		Logger().Warn("ink stroke rejected: non-finite result",
			"points", len(points))
		dst.Clear()
		return dst, false
	}
	Logger().Debug("ink stroke complete",
		"points", len(points), "elements", len(dst.elements))
	return dst, true
}

// endpointStyles maps the ink endpoint type to the join and cap styles.
func endpointStyles(endpoint EndpointType) (LineJoin, LineCap) {
	if endpoint == EndpointSquare {
		return LineJoinBevel, LineCapSquare
	}
	return LineJoinRound, LineCapRound
}
