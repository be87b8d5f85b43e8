// Package pathstroke converts stroked centerlines into filled outline paths.
//
// # Overview
//
// pathstroke is a Pure Go path stroking engine for the GoGPU ecosystem.
// Given a vector path (or a stream of pressure-weighted stylus points) and a
// stroke style, it produces a new path whose fill is the stroked shape:
// two offset contours displaced by +/- width/2 along local normals, connected
// by joins at the segment boundaries and caps at the open ends.
//
// It does not rasterize, shade, or touch the GPU; the output path is plain
// geometry for a downstream renderer to fill.
//
// # Quick Start
//
//	import "github.com/gogpu/pathstroke"
//
//	src := pathstroke.NewPath()
//	src.MoveTo(10, 10)
//	src.LineTo(90, 10)
//	src.LineTo(90, 90)
//
//	style := pathstroke.DefaultStroke().WithWidth(8).WithJoin(pathstroke.LineJoinRound)
//	dst, ok := pathstroke.StrokePath(src, style)
//	if !ok {
//	    // src was non-finite, or the stroke degenerated; dst is empty
//	}
//
// For stylus/ink input with per-point pressure:
//
//	pts := []pathstroke.StylusPoint{
//	    pathstroke.Sp(0, 0, 1.0),
//	    pathstroke.Sp(40, 0, 0.5),
//	    pathstroke.Sp(80, 0, 1.0),
//	}
//	dst, ok := pathstroke.StrokeInk(pts, pathstroke.EndpointCircle, style)
//
// # Algorithm
//
// The stroker walks the path one segment at a time, maintaining an outer and
// an inner offset contour. At each interior vertex it emits join geometry
// (miter, round, or bevel) on both contours; when a contour ends open it
// emits cap geometry (butt, round, or square) and appends the inner contour
// reversed, producing a single closed fillable outline. Closed contours emit
// the inner contour as a second sub-contour with opposite winding.
//
// Curved segments (quadratic, conic, cubic) are flattened to polylines before
// stroking; round joins and caps are emitted as conic arcs so the output
// stays resolution independent.
//
// # Failure Model
//
// The stroker itself never fails: degenerate segments fall back to a default
// orientation and over-sharp miters degrade to bevels. The entry points gate
// validity instead: non-finite input, or a non-finite result, yields an empty
// path and ok == false.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package pathstroke

// Version is the current version of the library.
const Version = "0.1.0"
