package pathstroke

// StrokeOption configures a stroke operation.
// Use functional options to customize StrokePath and StrokeInk behavior.
//
// Example:
//
//	// Default stroking
//	dst, ok := pathstroke.StrokePath(src, style)
//
//	// Stroking for a 2x zoomed viewport
//	dst, ok := pathstroke.StrokePath(src, style,
//	    pathstroke.WithResolutionScale(2))
type StrokeOption func(*strokeOptions)

// strokeOptions holds optional configuration for one stroke operation.
type strokeOptions struct {
	resScale     float64
	cullRect     *Rect
	ignoreCenter bool
}

// defaultStrokeOptions returns the default stroke options.
func defaultStrokeOptions() strokeOptions {
	return strokeOptions{
		resScale: 1,
	}
}

func applyStrokeOptions(opts []StrokeOption) strokeOptions {
	o := defaultStrokeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithResolutionScale sets the resolution scale the path will be drawn at.
// It scales the tolerance used for degenerate-segment detection and curve
// flattening: stroking for a magnified viewport needs finer geometry.
// Values <= 0 are ignored.
func WithResolutionScale(rs float64) StrokeOption {
	return func(o *strokeOptions) {
		if rs > 0 && isFinite(rs) {
			o.resScale = rs
		}
	}
}

// WithCullRect declares the visible region of the destination surface.
// A source path whose bounds fall entirely outside the rectangle, grown by
// the worst-case stroke outset, strokes to an empty outline. Paths that
// overlap the rectangle are stroked in full.
func WithCullRect(r Rect) StrokeOption {
	return func(o *strokeOptions) {
		o.cullRect = &r
	}
}

// WithIgnoreCenter allows the stroker to drop the smaller of the two offset
// contours of a closed contour when the larger one's bounds contain it,
// keeping a single sub-contour. The bounds test is an approximation of area
// containment and can misfire on concave shapes; enable it only when the
// stroke interior is known not to matter (e.g. stroke-and-fill rendering).
func WithIgnoreCenter(ignore bool) StrokeOption {
	return func(o *strokeOptions) {
		o.ignoreCenter = ignore
	}
}
