package pathstroke

import (
	"math"
	"testing"
)

func TestPath_Build(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(15, 5, 10, 10)
	p.ConicTo(5, 15, 0, 10, root2Over2)
	p.CubicTo(-5, 5, -5, 0, 0, 0)
	p.Close()

	if got := len(p.Elements()); got != 6 {
		t.Fatalf("len(Elements()) = %d, want 6", got)
	}
	if p.IsEmpty() {
		t.Error("IsEmpty() = true after building")
	}
	if got := p.CountContours(); got != 1 {
		t.Errorf("CountContours() = %d, want 1", got)
	}
	// 1 + 1 + 2 + 2 + 3 points
	if got := p.CountPoints(); got != 9 {
		t.Errorf("CountPoints() = %d, want 9", got)
	}
}

func TestPath_Bounds(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(5, -3)
	p.QuadraticTo(10, 8, 4, 4)

	b := p.Bounds()
	// control points count toward the bounds
	if b.Min != Pt(1, -3) || b.Max != Pt(10, 8) {
		t.Errorf("Bounds = %+v, want (1,-3)-(10,8)", b)
	}

	if got := NewPath().Bounds(); got != (Rect{}) {
		t.Errorf("empty path Bounds = %+v, want zero", got)
	}
}

func TestPath_LastPoint(t *testing.T) {
	p := NewPath()
	if _, ok := p.LastPoint(); ok {
		t.Error("LastPoint on empty path reported ok")
	}

	p.MoveTo(1, 1)
	p.LineTo(5, 5)
	p.Close()
	// Close carries no point; the line endpoint is still the last
	pt, ok := p.LastPoint()
	if !ok || pt != Pt(5, 5) {
		t.Errorf("LastPoint = %v, %v, want (5,5), true", pt, ok)
	}
}

func TestPath_SetLastPoint(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.setLastPoint(Pt(8, 1))

	pt, _ := p.LastPoint()
	if pt != Pt(8, 1) {
		t.Errorf("after setLastPoint, LastPoint = %v, want (8,1)", pt)
	}

	// a trailing Close is skipped over
	p.Close()
	p.setLastPoint(Pt(7, 2))
	pt, _ = p.LastPoint()
	if pt != Pt(7, 2) {
		t.Errorf("setLastPoint through Close: LastPoint = %v, want (7,2)", pt)
	}
}

func TestPath_Clone_Independent(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 10)

	c := p.Clone()
	c.LineTo(20, 20)

	if got := len(p.Elements()); got != 2 {
		t.Errorf("original grew to %d elements after mutating clone", got)
	}
	if got := len(c.Elements()); got != 3 {
		t.Errorf("clone has %d elements, want 3", got)
	}
}

func TestPath_Swap(t *testing.T) {
	a := NewPath()
	a.MoveTo(0, 0)
	a.LineTo(1, 1)
	b := NewPath()
	b.MoveTo(5, 5)

	a.Swap(b)
	if got := len(a.Elements()); got != 1 {
		t.Errorf("after swap len(a) = %d, want 1", got)
	}
	if got := len(b.Elements()); got != 2 {
		t.Errorf("after swap len(b) = %d, want 2", got)
	}
}

func TestPath_Clear_KeepsCapacity(t *testing.T) {
	p := NewPath()
	for i := 0; i < 100; i++ {
		p.LineTo(float64(i), 0)
	}
	before := cap(p.elements)
	p.Clear()
	if !p.IsEmpty() {
		t.Error("Clear left elements behind")
	}
	if cap(p.elements) != before {
		t.Errorf("Clear changed capacity: %d -> %d", before, cap(p.elements))
	}
}

func TestPath_AppendPath(t *testing.T) {
	a := NewPath()
	a.MoveTo(0, 0)
	a.LineTo(1, 0)
	b := NewPath()
	b.MoveTo(5, 5)
	b.LineTo(6, 5)

	a.appendPath(b)
	if got := len(a.Elements()); got != 4 {
		t.Fatalf("len after append = %d, want 4", got)
	}
	if got := a.CurrentPoint(); got != Pt(6, 5) {
		t.Errorf("CurrentPoint after append = %v, want (6,5)", got)
	}
}

func TestPath_ReverseAppendTo(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(15, 5, 10, 10)
	p.CubicTo(8, 14, 2, 14, 0, 10)

	dst := NewPath()
	dst.MoveTo(0, 10) // positioned at p's last point
	p.reverseAppendTo(dst)

	els := dst.Elements()
	if len(els) != 4 {
		t.Fatalf("len(dst) = %d, want 4", len(els))
	}
	cubic, ok := els[1].(CubicTo)
	if !ok {
		t.Fatalf("els[1] = %T, want CubicTo", els[1])
	}
	// reversed cubic swaps its control points and ends at the quad's endpoint
	if cubic.Control1 != Pt(2, 14) || cubic.Control2 != Pt(8, 14) || cubic.Point != Pt(10, 10) {
		t.Errorf("reversed cubic = %+v", cubic)
	}
	quad, ok := els[2].(QuadTo)
	if !ok {
		t.Fatalf("els[2] = %T, want QuadTo", els[2])
	}
	if quad.Control != Pt(15, 5) || quad.Point != Pt(10, 0) {
		t.Errorf("reversed quad = %+v", quad)
	}
	line, ok := els[3].(LineTo)
	if !ok {
		t.Fatalf("els[3] = %T, want LineTo", els[3])
	}
	if line.Point != Pt(0, 0) {
		t.Errorf("reversed line endpoint = %v, want (0,0)", line.Point)
	}
}

func TestPath_ReverseAppendTo_StopsAtContour(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.MoveTo(10, 10)
	p.LineTo(11, 10)
	p.LineTo(11, 11)

	dst := NewPath()
	dst.MoveTo(11, 11)
	p.reverseAppendTo(dst)

	// only the second contour is reversed
	if got := len(dst.Elements()); got != 3 {
		t.Errorf("len(dst) = %d, want 3", got)
	}
	pt, _ := dst.LastPoint()
	if pt != Pt(10, 10) {
		t.Errorf("reversal ended at %v, want (10,10)", pt)
	}
}

func TestPath_Transform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.ConicTo(3, 1, 4, 2, 0.5)

	got := p.Transform(Translate(10, 0))
	pt, _ := got.LastPoint()
	if pt != Pt(14, 2) {
		t.Errorf("transformed last point = %v, want (14,2)", pt)
	}
	c, ok := got.Elements()[2].(ConicTo)
	if !ok || c.Weight != 0.5 {
		t.Errorf("transform should preserve conic weight, got %+v", got.Elements()[2])
	}
	// the original is untouched
	pt, _ = p.LastPoint()
	if pt != Pt(4, 2) {
		t.Errorf("original mutated by Transform: last point %v", pt)
	}
}

func TestPath_IsFinite(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1e308, 0)
	if !p.IsFinite() {
		t.Error("finite path reported non-finite")
	}

	q := NewPath()
	q.MoveTo(0, 0)
	q.LineTo(math.Inf(1), 0)
	if q.IsFinite() {
		t.Error("infinite coordinate not detected")
	}
}

func TestPath_Rectangle(t *testing.T) {
	p := NewPath()
	p.Rectangle(1, 2, 10, 5)

	b := p.Bounds()
	if b.Min != Pt(1, 2) || b.Max != Pt(11, 7) {
		t.Errorf("Rectangle bounds = %+v, want (1,2)-(11,7)", b)
	}
	if _, ok := p.Elements()[len(p.Elements())-1].(Close); !ok {
		t.Error("Rectangle should end with Close")
	}
}

func TestPath_Circle(t *testing.T) {
	p := NewPath()
	p.Circle(0, 0, 10)

	// the four quarter-arc endpoints lie exactly on the circle
	want := []Point{{0, 10}, {-10, 0}, {0, -10}, {10, 0}}
	idx := 0
	for _, el := range p.Elements() {
		c, ok := el.(ConicTo)
		if !ok {
			continue
		}
		if c.Weight != root2Over2 {
			t.Errorf("conic weight = %v, want %v", c.Weight, root2Over2)
		}
		if c.Point.Distance(want[idx]) > 1e-12 {
			t.Errorf("arc %d endpoint = %v, want %v", idx, c.Point, want[idx])
		}
		idx++
	}
	if idx != 4 {
		t.Errorf("Circle emitted %d conics, want 4", idx)
	}
}

func TestPath_Arc(t *testing.T) {
	t.Run("quarter turn on empty path", func(t *testing.T) {
		p := NewPath()
		p.Arc(0, 0, 10, 0, math.Pi/2)

		els := p.Elements()
		if len(els) != 2 {
			t.Fatalf("element count = %d, want 2", len(els))
		}
		m, ok := els[0].(MoveTo)
		if !ok {
			t.Fatal("empty path should start the arc with MoveTo")
		}
		if m.Point.Distance(Point{10, 0}) > 1e-12 {
			t.Errorf("arc start = %v, want (10, 0)", m.Point)
		}
		c, ok := els[1].(ConicTo)
		if !ok {
			t.Fatal("quarter arc should be a single conic")
		}
		if math.Abs(c.Weight-root2Over2) > 1e-12 {
			t.Errorf("weight = %v, want %v", c.Weight, root2Over2)
		}
		if c.Point.Distance(Point{0, 10}) > 1e-12 {
			t.Errorf("arc end = %v, want (0, 10)", c.Point)
		}
	})

	t.Run("connects with line on non-empty path", func(t *testing.T) {
		p := NewPath()
		p.MoveTo(0, 0)
		p.Arc(0, 0, 5, 0, math.Pi/2)

		if _, ok := p.Elements()[1].(LineTo); !ok {
			t.Error("arc on a non-empty path should begin with LineTo")
		}
	})

	t.Run("three quarter sweep splits per quadrant", func(t *testing.T) {
		p := NewPath()
		p.Arc(0, 0, 4, 0, 3*math.Pi/2)

		conics := 0
		for _, el := range p.Elements() {
			c, ok := el.(ConicTo)
			if !ok {
				continue
			}
			conics++
			if c.Point.Distance(Point{}) < 4-1e-9 || c.Point.Distance(Point{}) > 4+1e-9 {
				t.Errorf("segment endpoint %v is off the circle", c.Point)
			}
		}
		if conics != 3 {
			t.Errorf("conic count = %d, want 3", conics)
		}
		end, _ := p.LastPoint()
		if end.Distance(Point{0, -4}) > 1e-9 {
			t.Errorf("arc end = %v, want (0, -4)", end)
		}
	})

	t.Run("partial segment weight matches half angle", func(t *testing.T) {
		p := NewPath()
		p.Arc(0, 0, 1, 0, math.Pi/3)

		c, ok := p.Elements()[1].(ConicTo)
		if !ok {
			t.Fatal("expected a conic segment")
		}
		if math.Abs(c.Weight-math.Cos(math.Pi/6)) > 1e-12 {
			t.Errorf("weight = %v, want cos(pi/6)", c.Weight)
		}
	})

	t.Run("reversed angles wrap forward", func(t *testing.T) {
		p := NewPath()
		p.Arc(0, 0, 2, math.Pi/2, 0)

		// angle2 wraps to 2pi, giving a three quarter sweep
		conics := 0
		for _, el := range p.Elements() {
			if _, ok := el.(ConicTo); ok {
				conics++
			}
		}
		if conics != 3 {
			t.Errorf("conic count = %d, want 3", conics)
		}
	})
}
