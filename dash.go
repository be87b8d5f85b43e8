package pathstroke

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	// The stroke begins at this point in the pattern cycle.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// If an odd number of elements is provided, the pattern is conceptually
// duplicated to create an even-length pattern.
//
// Examples:
//
//	NewDash(5, 3)        // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//	NewDash(5)           // equivalent to [5, 5]
//
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	allZeroOrNeg := true
	for _, l := range lengths {
		if l > 0 {
			allZeroOrNeg = false
			break
		}
	}
	if allZeroOrNeg {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}

	return &Dash{
		Array:  normalized,
		Offset: 0,
	}
}

// WithOffset returns a new Dash with the given offset.
// The offset determines where in the pattern the stroke begins.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{
		Array:  d.Array,
		Offset: offset,
	}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}

	var total float64
	for _, l := range d.Array {
		total += l
	}

	if len(d.Array)%2 != 0 {
		total *= 2
	}

	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
// Returns false for nil Dash or empty/all-zero arrays.
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}

	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Scale returns a new Dash with all lengths and the offset multiplied by the
// given factor. Dash lengths live in user-space units, so they scale along
// with any coordinate transform applied to the path. Factors <= 0 are
// ignored.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}

	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}

	return &Dash{
		Array:  scaled,
		Offset: d.Offset * factor,
	}
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}

	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)

	return &Dash{
		Array:  arrayCopy,
		Offset: d.Offset,
	}
}

// NormalizedOffset returns the offset normalized to be within one pattern
// cycle.
func (d *Dash) NormalizedOffset() float64 {
	if d == nil {
		return 0
	}

	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}

	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}

	if len(d.Array)%2 == 0 {
		return d.Array
	}

	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// ApplyDash splits each contour of src into dash runs, returning a new path
// of open polyline contours (one per dash). Curves are flattened at the
// given tolerance first, so the result is line segments only. Closed
// contours are dashed across their closing segment; the result contours are
// open and pick up caps when stroked.
//
// A nil or solid pattern returns src unchanged.
func ApplyDash(src *Path, d *Dash, tolerance float64) *Path {
	if !d.IsDashed() {
		return src
	}
	if tolerance <= 0 {
		tolerance = defaultFlattenTolerance
	}

	pattern := d.effectiveArray()
	dst := NewPath()

	var poly []Point
	var cur, contourStart Point

	flush := func() {
		if len(poly) >= 2 {
			dashPolyline(dst, poly, pattern, d.NormalizedOffset())
		}
		poly = poly[:0]
	}

	for _, el := range src.elements {
		switch e := el.(type) {
		case MoveTo:
			flush()
			cur = e.Point
			contourStart = e.Point
			poly = append(poly, cur)
		case LineTo:
			poly = append(poly, e.Point)
			cur = e.Point
		case QuadTo:
			poly = appendFlattenedQuad(poly, cur, e.Control, e.Point, tolerance)
			cur = e.Point
		case ConicTo:
			c := conic{pts: [3]Point{cur, e.Control, e.Point}, weight: e.Weight}
			poly = appendFlattenedConic(poly, c, tolerance)
			cur = e.Point
		case CubicTo:
			poly = appendFlattenedCubic(poly, cur, e.Control1, e.Control2, e.Point, tolerance)
			cur = e.Point
		case Close:
			if len(poly) > 0 && cur != contourStart {
				poly = append(poly, contourStart)
			}
			cur = contourStart
			flush()
		}
	}
	flush()

	return dst
}

// dashPolyline walks one polyline and emits its dash runs onto dst.
func dashPolyline(dst *Path, poly []Point, pattern []float64, startOffset float64) {
	// position within the pattern cycle
	idx := 0
	remaining := pattern[0]
	on := true

	// advance to the starting offset
	for offset := startOffset; offset > 0; {
		if offset < remaining {
			remaining -= offset
			break
		}
		offset -= remaining
		idx = (idx + 1) % len(pattern)
		remaining = pattern[idx]
		on = !on
	}

	penDown := false
	for i := 1; i < len(poly); i++ {
		a := poly[i-1]
		b := poly[i]
		segLen := a.Distance(b)
		if segLen == 0 {
			continue
		}
		pos := 0.0
		for pos < segLen {
			step := math.Min(remaining, segLen-pos)
			start := a.Lerp(b, pos/segLen)
			end := a.Lerp(b, (pos+step)/segLen)

			if on {
				if !penDown {
					dst.moveToPoint(start)
					penDown = true
				}
				dst.lineToPoint(end)
			} else {
				penDown = false
			}

			pos += step
			remaining -= step
			if remaining <= 0 {
				idx = (idx + 1) % len(pattern)
				remaining = pattern[idx]
				on = !on
				penDown = penDown && on
			}
		}
	}
}
