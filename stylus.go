package pathstroke

// StylusPoint is a centerline point with an associated pen pressure, as
// reported by a stylus digitizer. Pressure scales the local stroke radius;
// 1.0 is the full radius.
type StylusPoint struct {
	Point    Point
	Pressure float64
}

// Sp is a convenience function to create a StylusPoint.
func Sp(x, y, pressure float64) StylusPoint {
	return StylusPoint{Point: Pt(x, y), Pressure: pressure}
}

// Equal reports whether two stylus points share the same position.
// Pressure is ignored: coincident points are degenerate for stroking
// purposes regardless of how hard the pen pressed.
func (s StylusPoint) Equal(other StylusPoint) bool {
	return s.Point == other.Point
}

// EndpointType selects the ink stroke finishing style.
type EndpointType int

const (
	// EndpointCircle rounds the stroke: round joins and round caps.
	EndpointCircle EndpointType = iota
	// EndpointSquare squares the stroke off: bevel joins and square caps.
	EndpointSquare
)

// String returns the endpoint type name.
func (e EndpointType) String() string {
	switch e {
	case EndpointCircle:
		return "circle"
	case EndpointSquare:
		return "square"
	default:
		return "unknown"
	}
}
