package pathstroke

import (
	"math"
	"testing"
)

func TestStrokeInk_RejectsBadInput(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		dst, ok := StrokeInk(nil, EndpointCircle, DefaultStroke().WithWidth(4))
		if ok {
			t.Error("empty input should report failure")
		}
		if !dst.IsEmpty() {
			t.Error("empty input should yield an empty path")
		}
	})

	t.Run("zero width", func(t *testing.T) {
		pts := []StylusPoint{Sp(0, 0, 1), Sp(10, 0, 1)}
		if _, ok := StrokeInk(pts, EndpointCircle, DefaultStroke().WithWidth(0)); ok {
			t.Error("zero width should report failure")
		}
	})

	t.Run("negative width", func(t *testing.T) {
		pts := []StylusPoint{Sp(0, 0, 1), Sp(10, 0, 1)}
		if _, ok := StrokeInk(pts, EndpointCircle, DefaultStroke().WithWidth(-2)); ok {
			t.Error("negative width should report failure")
		}
	})
}

func TestStrokeInk_PressureScalesRadius(t *testing.T) {
	pts := []StylusPoint{
		Sp(0, 0, 1.0),
		Sp(10, 0, 0.5),
		Sp(20, 0, 1.0),
	}
	dst, ok := StrokeInk(pts, EndpointCircle, DefaultStroke().WithWidth(4))
	if !ok {
		t.Fatal("ink stroke failed")
	}

	// full radius is 2; at the middle point the halved pressure pinches the
	// outline to one unit on each side
	foundUpper, foundLower := false, false
	for _, el := range dst.Elements() {
		if pt, ok := elementEndPoint(el); ok {
			if pt.Distance(Pt(10, -1)) < 1e-9 {
				foundUpper = true
			}
			if pt.Distance(Pt(10, 1)) < 1e-9 {
				foundLower = true
			}
		}
	}
	if !foundUpper || !foundLower {
		t.Error("outline does not pinch to half thickness at the low-pressure point")
	}

	b := dst.Bounds()
	if !approxEq(b.Min.Y, -2, 1e-9) || !approxEq(b.Max.Y, 2, 1e-9) {
		t.Errorf("bounds %+v, want full thickness (+-2) at the ends", b)
	}
}

func TestStrokeInk_DegeneratePairSquare(t *testing.T) {
	// Two coincident points with square finishing: a width-by-width square
	// centered on the point.
	pts := []StylusPoint{Sp(5, 5, 1), Sp(5, 5, 1)}
	dst, ok := StrokeInk(pts, EndpointSquare, DefaultStroke().WithWidth(4))
	if !ok {
		t.Fatal("ink stroke failed")
	}
	b := dst.Bounds()
	if !approxEq(b.Min.X, 3, 1e-9) || !approxEq(b.Max.X, 7, 1e-9) ||
		!approxEq(b.Min.Y, 3, 1e-9) || !approxEq(b.Max.Y, 7, 1e-9) {
		t.Errorf("bounds %+v, want the 4x4 square (3,3)-(7,7)", b)
	}
}

func TestStrokeInk_DegeneratePairCircle(t *testing.T) {
	pts := []StylusPoint{Sp(5, 5, 1), Sp(5, 5, 1)}
	dst, ok := StrokeInk(pts, EndpointCircle, DefaultStroke().WithWidth(4))
	if !ok {
		t.Fatal("ink stroke failed")
	}
	b := dst.Bounds()
	if !approxEq(b.Min.X, 3, 1e-9) || !approxEq(b.Max.X, 7, 1e-9) ||
		!approxEq(b.Min.Y, 3, 1e-9) || !approxEq(b.Max.Y, 7, 1e-9) {
		t.Errorf("bounds %+v, want the dot bounds (3,3)-(7,7)", b)
	}
}

func TestStrokeInk_EndpointMapping(t *testing.T) {
	pts := []StylusPoint{Sp(0, 0, 1), Sp(10, 0, 1), Sp(10, 10, 1)}
	style := DefaultStroke().WithWidth(4)

	circle, ok := StrokeInk(pts, EndpointCircle, style)
	if !ok {
		t.Fatal("circle stroke failed")
	}
	square, ok := StrokeInk(pts, EndpointSquare, style)
	if !ok {
		t.Fatal("square stroke failed")
	}

	countConics := func(p *Path) int {
		n := 0
		for _, el := range p.Elements() {
			if _, ok := el.(ConicTo); ok {
				n++
			}
		}
		return n
	}

	// circle finishing: round caps and a round join, all conic arcs
	if countConics(circle) == 0 {
		t.Error("EndpointCircle produced no arcs")
	}
	// square finishing: bevel join and square caps, straight edges only
	if got := countConics(square); got != 0 {
		t.Errorf("EndpointSquare produced %d arcs, want 0", got)
	}

	// square caps extend past the start point, butt never applies to ink
	if got := square.Bounds().Min.X; !approxEq(got, -2, 1e-9) {
		t.Errorf("square cap Min.X = %v, want -2", got)
	}
}

func TestStrokeInk_ZeroPressureDefaults(t *testing.T) {
	pts := []StylusPoint{Sp(0, 0, 0), Sp(10, 0, 0)}
	dst, ok := StrokeInk(pts, EndpointSquare, DefaultStroke().WithWidth(2))
	if !ok {
		t.Fatal("ink stroke failed")
	}
	b := dst.Bounds()
	// pressure 0 means uncalibrated input; treat as full pressure
	if !approxEq(b.Min.Y, -1, 1e-9) || !approxEq(b.Max.Y, 1, 1e-9) {
		t.Errorf("bounds %+v, want full thickness (+-1)", b)
	}
	if !approxEq(b.Min.X, -1, 1e-9) || !approxEq(b.Max.X, 11, 1e-9) {
		t.Errorf("bounds %+v, want square caps (-1 and 11)", b)
	}
}

func TestStrokeInk_SinglePoint(t *testing.T) {
	// One point has no segments; nothing to outline.
	dst, ok := StrokeInk([]StylusPoint{Sp(5, 5, 1)}, EndpointCircle,
		DefaultStroke().WithWidth(4))
	if !ok {
		t.Fatal("single point reported failure")
	}
	if !dst.IsEmpty() {
		t.Errorf("single point produced %d elements, want none", len(dst.Elements()))
	}
}

func TestStrokeInk_ResultIsFinite(t *testing.T) {
	// a long wavy stroke with varying pressure
	var pts []StylusPoint
	for i := 0; i < 200; i++ {
		u := float64(i) / 199
		pts = append(pts, Sp(u*500, 40*math.Sin(u*20), 0.2+0.8*u))
	}
	dst, ok := StrokeInk(pts, EndpointCircle, DefaultStroke().WithWidth(6))
	if !ok {
		t.Fatal("ink stroke failed")
	}
	if !dst.IsFinite() {
		t.Error("outline has non-finite coordinates")
	}
	if dst.CountContours() != 1 {
		t.Errorf("CountContours = %d, want 1", dst.CountContours())
	}
}

func BenchmarkStrokeInk(b *testing.B) {
	var pts []StylusPoint
	for i := 0; i < 100; i++ {
		u := float64(i) / 99
		pts = append(pts, Sp(u*500, 40*math.Sin(u*20), 0.2+0.8*u))
	}
	style := DefaultStroke().WithWidth(6)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		StrokeInk(pts, EndpointCircle, style)
	}
}
