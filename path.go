package pathstroke

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// ConicTo draws a conic (rational quadratic) curve. Weight controls how
// strongly the curve is pulled toward the control point; weight 1/sqrt(2)
// yields an exact quarter-circle arc.
type ConicTo struct {
	Control Point
	Point   Point
	Weight  float64
}

func (ConicTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// newPathWithCapacity creates an empty path with room for n elements,
// used by the stroker to avoid repeated growth of its accumulators.
func newPathWithCapacity(n int) Path {
	if n < 16 {
		n = 16
	}
	return Path{elements: make([]PathElement, 0, n)}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	p.moveToPoint(Pt(x, y))
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	p.lineToPoint(Pt(x, y))
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.quadToPoint(Pt(cx, cy), Pt(x, y))
}

// ConicTo draws a conic curve with the given weight.
func (p *Path) ConicTo(cx, cy, x, y, weight float64) {
	p.conicToPoint(Pt(cx, cy), Pt(x, y), weight)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.cubicToPoint(Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

func (p *Path) moveToPoint(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

func (p *Path) lineToPoint(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

func (p *Path) quadToPoint(ctrl, pt Point) {
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

func (p *Path) conicToPoint(ctrl, pt Point, weight float64) {
	p.elements = append(p.elements, ConicTo{Control: ctrl, Point: pt, Weight: weight})
	p.current = pt
}

func (p *Path) cubicToPoint(c1, c2, pt Point) {
	p.elements = append(p.elements, CubicTo{Control1: c1, Control2: c2, Point: pt})
	p.current = pt
}

// Clear removes all elements from the path, keeping allocated capacity.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Swap exchanges the contents of two paths without copying elements.
func (p *Path) Swap(other *Path) {
	*p, *other = *other, *p
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// LastPoint returns the endpoint of the last drawing element.
// It reports false for an empty path or a path ending in Close with no
// preceding point.
func (p *Path) LastPoint() (Point, bool) {
	for i := len(p.elements) - 1; i >= 0; i-- {
		if pt, ok := elementEndPoint(p.elements[i]); ok {
			return pt, true
		}
	}
	return Point{}, false
}

// setLastPoint replaces the endpoint of the last drawing element.
// No-op on an empty path.
func (p *Path) setLastPoint(pt Point) {
	for i := len(p.elements) - 1; i >= 0; i-- {
		switch e := p.elements[i].(type) {
		case MoveTo:
			e.Point = pt
			p.elements[i] = e
		case LineTo:
			e.Point = pt
			p.elements[i] = e
		case QuadTo:
			e.Point = pt
			p.elements[i] = e
		case ConicTo:
			e.Point = pt
			p.elements[i] = e
		case CubicTo:
			e.Point = pt
			p.elements[i] = e
		case Close:
			continue
		}
		p.current = pt
		return
	}
}

// CountPoints returns the number of points stored in the path, counting
// control points.
func (p *Path) CountPoints() int {
	n := 0
	for _, el := range p.elements {
		n += len(elementPoints(el))
	}
	return n
}

// CountContours returns the number of sub-contours (MoveTo elements).
func (p *Path) CountContours() int {
	n := 0
	for _, el := range p.elements {
		if _, ok := el.(MoveTo); ok {
			n++
		}
	}
	return n
}

// Bounds returns the bounding box of all points in the path, including
// curve control points. Returns the zero Rect for an empty path.
func (p *Path) Bounds() Rect {
	first := true
	var r Rect
	for _, el := range p.elements {
		for _, pt := range elementPoints(el) {
			if first {
				r = Rect{Min: pt, Max: pt}
				first = false
				continue
			}
			if pt.X < r.Min.X {
				r.Min.X = pt.X
			}
			if pt.Y < r.Min.Y {
				r.Min.Y = pt.Y
			}
			if pt.X > r.Max.X {
				r.Max.X = pt.X
			}
			if pt.Y > r.Max.Y {
				r.Max.Y = pt.Y
			}
		}
	}
	return r
}

// IsFinite reports whether every coordinate in the path is finite.
func (p *Path) IsFinite() bool {
	for _, el := range p.elements {
		for _, pt := range elementPoints(el) {
			if !pt.IsFinite() {
				return false
			}
		}
		if c, ok := el.(ConicTo); ok && !isFinite(c.Weight) {
			return false
		}
	}
	return true
}

// Transform returns a copy of the path with the matrix applied to all points.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			result.moveToPoint(m.TransformPoint(e.Point))
		case LineTo:
			result.lineToPoint(m.TransformPoint(e.Point))
		case QuadTo:
			result.quadToPoint(m.TransformPoint(e.Control), m.TransformPoint(e.Point))
		case ConicTo:
			result.conicToPoint(m.TransformPoint(e.Control), m.TransformPoint(e.Point), e.Weight)
		case CubicTo:
			result.cubicToPoint(m.TransformPoint(e.Control1), m.TransformPoint(e.Control2), m.TransformPoint(e.Point))
		case Close:
			result.Close()
		}
	}
	return result
}

// appendPath appends all elements of other to p.
func (p *Path) appendPath(other *Path) {
	p.elements = append(p.elements, other.elements...)
	if pt, ok := other.LastPoint(); ok {
		p.current = pt
	}
}

// reverseAppendTo re-emits the last contour of p onto dst in reverse point
// order: lines stay lines, quads and conics keep their control point, cubics
// swap their control points, conic weights are consumed in reverse. The
// caller must already have positioned dst at p's last point. Stops at the
// contour's MoveTo, so only the final contour of a multi-contour path is
// reversed.
func (p *Path) reverseAppendTo(dst *Path) {
	if p.IsEmpty() {
		return
	}
	els := p.elements
	for i := len(els) - 1; i >= 0; i-- {
		// The reversed endpoint of element i is the endpoint of the
		// element before it.
		var prevEnd Point
		if i > 0 {
			prevEnd, _ = elementEndPoint(els[i-1])
		}
		switch e := els[i].(type) {
		case MoveTo:
			// reversing stops at the start of the last contour
			return
		case LineTo:
			dst.lineToPoint(prevEnd)
		case QuadTo:
			dst.quadToPoint(e.Control, prevEnd)
		case ConicTo:
			dst.conicToPoint(e.Control, prevEnd, e.Weight)
		case CubicTo:
			dst.cubicToPoint(e.Control2, e.Control1, prevEnd)
		case Close:
			// nothing to emit
		}
	}
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a circle to the path as four conic quarter-arcs.
func (p *Path) Circle(cx, cy, r float64) {
	const w = root2Over2
	p.MoveTo(cx+r, cy)
	p.ConicTo(cx+r, cy+r, cx, cy+r, w)
	p.ConicTo(cx-r, cy+r, cx-r, cy, w)
	p.ConicTo(cx-r, cy-r, cx, cy-r, w)
	p.ConicTo(cx+r, cy-r, cx+r, cy, w)
	p.Close()
}

// Arc adds a circular arc centered at (cx, cy) with radius r, sweeping
// clockwise from angle1 to angle2 (radians). If the path is empty the arc
// starts a new contour, otherwise a line connects the current point to the
// arc start. Each span of at most a quarter turn becomes one conic.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}

	start := Point{X: cx + r*math.Cos(angle1), Y: cy + r*math.Sin(angle1)}
	if p.IsEmpty() {
		p.moveToPoint(start)
	} else {
		p.lineToPoint(start)
	}

	for a := angle1; a < angle2; {
		next := math.Min(a+math.Pi/2, angle2)
		half := (next - a) / 2
		mid := a + half
		w := math.Cos(half)
		ctrl := Point{X: cx + (r/w)*math.Cos(mid), Y: cy + (r/w)*math.Sin(mid)}
		end := Point{X: cx + r*math.Cos(next), Y: cy + r*math.Sin(next)}
		p.conicToPoint(ctrl, end, w)
		a = next
	}
}

// elementEndPoint returns the endpoint of a path element. Close has none.
func elementEndPoint(el PathElement) (Point, bool) {
	switch e := el.(type) {
	case MoveTo:
		return e.Point, true
	case LineTo:
		return e.Point, true
	case QuadTo:
		return e.Point, true
	case ConicTo:
		return e.Point, true
	case CubicTo:
		return e.Point, true
	default:
		return Point{}, false
	}
}

// elementPoints returns all points carried by a path element, control
// points included.
func elementPoints(el PathElement) []Point {
	switch e := el.(type) {
	case MoveTo:
		return []Point{e.Point}
	case LineTo:
		return []Point{e.Point}
	case QuadTo:
		return []Point{e.Control, e.Point}
	case ConicTo:
		return []Point{e.Control, e.Point}
	case CubicTo:
		return []Point{e.Control1, e.Control2, e.Point}
	default:
		return nil
	}
}
