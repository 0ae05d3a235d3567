// Command shapegallery renders every preset shape in the catalog to one
// image file per shape, as PNG or SVG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/vector"

	drawml "github.com/VantageDataChat/GoDrawML"
)

func main() {
	out := flag.String("out", "gallery", "output directory")
	size := flag.String("size", "256", "image size (square): pixels, or a length like 2in, 36pt, 5cm, 120mm")
	dpi := flag.Float64("dpi", 96, "resolution for physical sizes")
	format := flag.String("format", "png", "output format: png or svg")
	flag.Parse()

	if *format != "png" && *format != "svg" {
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(1)
	}
	px, err := parseSize(*size, *dpi)
	if err != nil {
		fmt.Fprintf(os.Stderr, "size: %v\n", err)
		os.Exit(1)
	}
	if px < 16 {
		fmt.Fprintf(os.Stderr, "size %d is too small\n", px)
		os.Exit(1)
	}
	if err := os.MkdirAll(*out, 0750); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}

	names := drawml.PresetNames()
	margin := float64(px) / 16
	side := float64(px) - 2*margin

	for _, name := range names {
		rg, err := drawml.ResolvePreset(name, side, side, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "resolve %s: %v\n", name, err)
			os.Exit(1)
		}

		path := filepath.Join(*out, string(name)+"."+*format)
		if *format == "svg" {
			err = os.WriteFile(path, []byte(rg.SVGDocument()), 0644)
		} else {
			err = writePNG(path, rg, px, margin)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Rendered %d shapes to %s\n", len(names), *out)
}

var sizeUnits = []struct {
	suffix string
	toEMU  func(float64) int64
}{
	{"in", drawml.Inch},
	{"pt", drawml.Point},
	{"cm", drawml.Centimeter},
	{"mm", drawml.Millimeter},
}

// parseSize interprets a size argument: a bare integer is pixels, a number
// with an in, pt, cm or mm suffix is a physical length rendered at dpi.
func parseSize(s string, dpi float64) (int, error) {
	for _, u := range sizeUnits {
		num, ok := strings.CutSuffix(s, u.suffix)
		if !ok || num == "" {
			continue
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil || v <= 0 {
			return 0, fmt.Errorf("bad length %q", s)
		}
		return int(math.Round(drawml.EMUToInch(u.toEMU(v)) * dpi)), nil
	}
	px, err := strconv.Atoi(s)
	if err != nil || px <= 0 {
		return 0, fmt.Errorf("bad size %q", s)
	}
	return px, nil
}

// fillShade maps the declarative fill modes to gallery shades. The second
// result is false for unfilled paths.
func fillShade(m drawml.FillMode) (color.RGBA, bool) {
	switch m {
	case drawml.FillNone:
		return color.RGBA{}, false
	case drawml.FillLighten:
		return color.RGBA{R: 230, G: 230, B: 230, A: 255}, true
	case drawml.FillLightenLess:
		return color.RGBA{R: 212, G: 212, B: 212, A: 255}, true
	case drawml.FillDarken:
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}, true
	case drawml.FillDarkenLess:
		return color.RGBA{R: 153, G: 153, B: 153, A: 255}, true
	default:
		return color.RGBA{R: 192, G: 192, B: 192, A: 255}, true
	}
}

func writePNG(path string, rg *drawml.ResolvedGeometry, size int, margin float64) error {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i := range rg.Paths {
		p := &rg.Paths[i]
		if shade, ok := fillShade(p.Fill); ok {
			ras := vector.NewRasterizer(size, size)
			fillPath(ras, p.Ops, float32(margin))
			ras.Draw(img, img.Bounds(), image.NewUniform(shade), image.Point{})
		}
		if p.Stroke {
			ras := vector.NewRasterizer(size, size)
			strokePath(ras, p.Ops, float32(margin), strokeWidth(size))
			ras.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func strokeWidth(size int) float32 {
	w := float32(size) / 160
	if w < 1 {
		w = 1
	}
	return w
}

// fillPath feeds the path operations into the rasterizer, closing every
// contour so the winding fill is well defined.
func fillPath(ras *vector.Rasterizer, ops []drawml.PathOp, off float32) {
	open := false
	for _, op := range ops {
		switch o := op.(type) {
		case drawml.MoveTo:
			if open {
				ras.ClosePath()
			}
			ras.MoveTo(off+float32(o.X), off+float32(o.Y))
			open = true
		case drawml.LineTo:
			ras.LineTo(off+float32(o.X), off+float32(o.Y))
		case drawml.QuadTo:
			ras.QuadTo(off+float32(o.X1), off+float32(o.Y1), off+float32(o.X2), off+float32(o.Y2))
		case drawml.CubicTo:
			ras.CubeTo(off+float32(o.X1), off+float32(o.Y1), off+float32(o.X2), off+float32(o.Y2), off+float32(o.X3), off+float32(o.Y3))
		case drawml.Close:
			if open {
				ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		ras.ClosePath()
	}
}

type vec2 struct{ x, y float32 }

// strokePath stamps each flattened segment as a thin quad. Gallery grade:
// no joins or caps.
func strokePath(ras *vector.Rasterizer, ops []drawml.PathOp, off, width float32) {
	for _, line := range flatten(ops, off) {
		for i := 0; i+1 < len(line); i++ {
			stampSegment(ras, line[i], line[i+1], width)
		}
	}
}

const curveSteps = 24

// flatten converts the operations into per-contour polylines, subdividing
// curves into fixed steps.
func flatten(ops []drawml.PathOp, off float32) [][]vec2 {
	var lines [][]vec2
	var cur []vec2
	var start vec2
	var pen vec2
	flush := func() {
		if len(cur) > 1 {
			lines = append(lines, cur)
		}
		cur = nil
	}
	for _, op := range ops {
		switch o := op.(type) {
		case drawml.MoveTo:
			flush()
			pen = vec2{off + float32(o.X), off + float32(o.Y)}
			start = pen
			cur = []vec2{pen}
		case drawml.LineTo:
			pen = vec2{off + float32(o.X), off + float32(o.Y)}
			cur = append(cur, pen)
		case drawml.QuadTo:
			c := vec2{off + float32(o.X1), off + float32(o.Y1)}
			end := vec2{off + float32(o.X2), off + float32(o.Y2)}
			p0 := pen
			for i := 1; i <= curveSteps; i++ {
				t := float32(i) / curveSteps
				u := 1 - t
				cur = append(cur, vec2{
					u*u*p0.x + 2*u*t*c.x + t*t*end.x,
					u*u*p0.y + 2*u*t*c.y + t*t*end.y,
				})
			}
			pen = end
		case drawml.CubicTo:
			c1 := vec2{off + float32(o.X1), off + float32(o.Y1)}
			c2 := vec2{off + float32(o.X2), off + float32(o.Y2)}
			end := vec2{off + float32(o.X3), off + float32(o.Y3)}
			p0 := pen
			for i := 1; i <= curveSteps; i++ {
				t := float32(i) / curveSteps
				u := 1 - t
				cur = append(cur, vec2{
					u*u*u*p0.x + 3*u*u*t*c1.x + 3*u*t*t*c2.x + t*t*t*end.x,
					u*u*u*p0.y + 3*u*u*t*c1.y + 3*u*t*t*c2.y + t*t*t*end.y,
				})
			}
			pen = end
		case drawml.Close:
			if len(cur) > 0 {
				cur = append(cur, start)
				pen = start
			}
		}
	}
	flush()
	return lines
}

// stampSegment appends a width-wide quad covering the segment a-b.
func stampSegment(ras *vector.Rasterizer, a, b vec2, width float32) {
	dx, dy := b.x-a.x, b.y-a.y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx := -dy / length * width / 2
	ny := dx / length * width / 2
	ras.MoveTo(a.x+nx, a.y+ny)
	ras.LineTo(b.x+nx, b.y+ny)
	ras.LineTo(b.x-nx, b.y-ny)
	ras.LineTo(a.x-nx, a.y-ny)
	ras.ClosePath()
}
