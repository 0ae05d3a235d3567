package drawml

import (
	"strconv"
	"strings"
)

// SVGPathData renders the path's operations as SVG path data ("M", "L",
// "Q", "C", "Z" commands). Numbers are written in their shortest
// round-trip decimal form.
func (p *ResolvedPath) SVGPathData() string {
	var sb strings.Builder
	for i, op := range p.Ops {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch o := op.(type) {
		case MoveTo:
			sb.WriteString("M ")
			writeCoord(&sb, o.X, o.Y)
		case LineTo:
			sb.WriteString("L ")
			writeCoord(&sb, o.X, o.Y)
		case QuadTo:
			sb.WriteString("Q ")
			writeCoord(&sb, o.X1, o.Y1)
			sb.WriteByte(' ')
			writeCoord(&sb, o.X2, o.Y2)
		case CubicTo:
			sb.WriteString("C ")
			writeCoord(&sb, o.X1, o.Y1)
			sb.WriteByte(' ')
			writeCoord(&sb, o.X2, o.Y2)
			sb.WriteByte(' ')
			writeCoord(&sb, o.X3, o.Y3)
		case Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func writeCoord(sb *strings.Builder, x, y float64) {
	sb.WriteString(fmtFloat(x))
	sb.WriteByte(' ')
	sb.WriteString(fmtFloat(y))
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// svgFills holds grayscale stand-ins for the theme-relative fill modes; the
// engine carries no color context.
var svgFills = map[FillMode]string{
	FillNorm:        "#c0c0c0",
	FillNone:        "none",
	FillLighten:     "#e6e6e6",
	FillLightenLess: "#d4d4d4",
	FillDarken:      "#808080",
	FillDarkenLess:  "#999999",
}

// SVGDocument renders the resolved geometry as a standalone SVG document,
// one <path> element per subpath. Fill modes map to fixed grayscale shades
// and strokes are hairline black; this output is meant for previews and
// golden-file tests, not production rendering.
func (rg *ResolvedGeometry) SVGDocument() string {
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="`)
	sb.WriteString(fmtFloat(rg.Width))
	sb.WriteString(`" height="`)
	sb.WriteString(fmtFloat(rg.Height))
	sb.WriteString(`" viewBox="0 0 `)
	sb.WriteString(fmtFloat(rg.Width))
	sb.WriteByte(' ')
	sb.WriteString(fmtFloat(rg.Height))
	sb.WriteString("\">\n")
	for i := range rg.Paths {
		p := &rg.Paths[i]
		fill := svgFills[p.Fill]
		if fill == "" {
			fill = svgFills[FillNorm]
		}
		stroke := "none"
		if p.Stroke {
			stroke = "#000000"
		}
		sb.WriteString(`  <path d="`)
		sb.WriteString(p.SVGPathData())
		sb.WriteString(`" fill="`)
		sb.WriteString(fill)
		sb.WriteString(`" stroke="`)
		sb.WriteString(stroke)
		sb.WriteString("\"/>\n")
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}
