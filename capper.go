package pathstroke

// The cap strategy terminates an open contour end, connecting the outer
// offset point through the cap geometry to stop (the matching inner offset
// point). other is non-nil when the capped segment was a line, allowing the
// square cap to replace the last point instead of stacking a doubled edge.

func (s *stroker) capEnd(path *Path, pivot, normal, stop Point, other *Path) {
	switch s.capStyle {
	case LineCapButt:
		buttCap(path, stop)
	case LineCapRound:
		roundCap(path, pivot, normal, stop)
	case LineCapSquare:
		squareCap(path, pivot, normal, stop, other)
	}
}

func buttCap(path *Path, stop Point) {
	path.lineToPoint(stop)
}

// roundCap emits a half-circle as two quarter-circle conics around pivot,
// starting at pivot+normal and ending at stop.
func roundCap(path *Path, pivot, normal, stop Point) {
	parallel := normal.RotateCW()
	projected := pivot.Add(parallel)
	path.conicToPoint(projected.Add(normal), projected, root2Over2)
	path.conicToPoint(projected.Sub(normal), stop, root2Over2)
}

// squareCap extends the stroke half a width past the endpoint with two
// perpendicular edges. When the capped segment was a line (other != nil)
// the first corner replaces the path's last point.
func squareCap(path *Path, pivot, normal, stop Point, other *Path) {
	parallel := normal.RotateCW()

	if other != nil {
		path.setLastPoint(Point{
			X: pivot.X + normal.X + parallel.X,
			Y: pivot.Y + normal.Y + parallel.Y,
		})
		path.lineToPoint(Point{
			X: pivot.X - normal.X + parallel.X,
			Y: pivot.Y - normal.Y + parallel.Y,
		})
	} else {
		path.lineToPoint(Point{
			X: pivot.X + normal.X + parallel.X,
			Y: pivot.Y + normal.Y + parallel.Y,
		})
		path.lineToPoint(Point{
			X: pivot.X - normal.X + parallel.X,
			Y: pivot.Y - normal.Y + parallel.Y,
		})
		path.lineToPoint(stop)
	}
}
