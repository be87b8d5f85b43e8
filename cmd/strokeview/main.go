// Command strokeview previews stroked outlines produced by pathstroke.
//
// It builds a demo path or ink stroke, runs it through the stroker, fills
// the resulting outline with golang.org/x/image/vector, and writes a PNG.
// Handy for eyeballing join/cap behavior while tuning a style file.
//
// Usage:
//
//	strokeview -demo ink -style style.yaml -output out.png
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/pathstroke"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "stroke.png", "output file")
		style  = flag.String("style", "", "YAML stroke style file (optional)")
		demo   = flag.String("demo", "path", "demo to render: path, ink, dash")
	)
	flag.Parse()

	st := pathstroke.DefaultStroke().WithWidth(12)
	if *style != "" {
		loaded, err := pathstroke.LoadStyleFile(*style)
		if err != nil {
			log.Fatalf("Failed to load style: %v", err)
		}
		st = loaded
	}

	outline, ok := buildDemo(*demo, st)
	if !ok {
		log.Fatalf("Stroking failed for demo %q", *demo)
	}

	img := render(outline, *width, *height)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	log.Printf("Preview saved to %s (%dx%d)\n", *output, *width, *height)
}

func buildDemo(name string, st pathstroke.Stroke) (*pathstroke.Path, bool) {
	switch name {
	case "ink":
		return pathstroke.StrokeInk(inkDemoPoints(), pathstroke.EndpointCircle, st)
	case "dash":
		if !st.IsDashed() {
			st = st.WithDashPattern(24, 12)
		}
		return pathstroke.StrokePath(pathDemo(), st)
	default:
		return pathstroke.StrokePath(pathDemo(), st)
	}
}

// pathDemo builds a path exercising lines, curves, and a closed contour.
func pathDemo() *pathstroke.Path {
	p := pathstroke.NewPath()
	p.MoveTo(60, 80)
	p.LineTo(220, 40)
	p.QuadraticTo(320, 160, 220, 240)
	p.CubicTo(140, 300, 400, 320, 460, 220)
	p.MoveTo(540, 80)
	p.LineTo(700, 80)
	p.LineTo(620, 220)
	p.Close()
	p.Circle(620, 420, 90)
	p.MoveTo(200, 420)
	p.Arc(200, 420, 80, math.Pi/4, math.Pi)
	return p
}

// inkDemoPoints builds a wavy pen stroke with pressure swelling toward the
// middle.
func inkDemoPoints() []pathstroke.StylusPoint {
	const n = 48
	pts := make([]pathstroke.StylusPoint, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / (n - 1)
		x := 80 + t*640
		y := 300 + 120*math.Sin(t*3*math.Pi)
		pressure := 0.3 + 0.7*math.Sin(t*math.Pi)
		pts = append(pts, pathstroke.Sp(x, y, pressure))
	}
	return pts
}

// render fits the outline to the canvas and fills it.
func render(outline *pathstroke.Path, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff // white background
	}

	bounds := outline.Bounds()
	if bounds.IsEmpty() {
		return img
	}

	// fit with a margin, preserving aspect ratio
	const margin = 20
	sx := (float64(w) - 2*margin) / bounds.Width()
	sy := (float64(h) - 2*margin) / bounds.Height()
	scale := math.Min(sx, sy)
	m := pathstroke.Translate(margin-bounds.Min.X*scale, margin-bounds.Min.Y*scale).
		Multiply(pathstroke.Scale(scale, scale))

	// x/image/vector has no conic op; flatten first
	flat := outline.Transform(m).Flattened(0.1)

	r := vector.NewRasterizer(w, h)
	for _, el := range flat.Elements() {
		switch e := el.(type) {
		case pathstroke.MoveTo:
			r.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case pathstroke.LineTo:
			r.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case pathstroke.Close:
			r.ClosePath()
		}
	}
	r.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{A: 0xff, R: 0x20, G: 0x40, B: 0x90}), image.Point{})
	return img
}
