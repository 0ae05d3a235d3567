package drawml

import (
	"fmt"
	"math"
)

// pathBuilder walks one subpath program, resolving operands through the
// environment and emitting concrete operations in the subpath's local
// units. Rescaling to shape units happens afterwards in scaleOps.
type pathBuilder struct {
	env            *environment
	ops            []PathOp
	penX, penY     float64
	startX, startY float64
	started        bool
}

// buildPath resolves the commands of one subpath program.
func buildPath(env *environment, spec *PathSpec) ([]PathOp, *GeometryError) {
	b := &pathBuilder{env: env}
	for i := range spec.Commands {
		if err := b.command(&spec.Commands[i]); err != nil {
			if err.Guide == "" {
				err.Guide = fmt.Sprintf("path command %d (%s)", i, spec.Commands[i].Type)
			}
			return nil, err
		}
	}
	return b.ops, nil
}

func (b *pathBuilder) command(cmd *PathCommand) *GeometryError {
	switch cmd.Type {
	case CmdMoveTo:
		x, y, err := b.point(cmd, 0)
		if err != nil {
			return err
		}
		b.ops = append(b.ops, MoveTo{x, y})
		b.penX, b.penY = x, y
		b.startX, b.startY = x, y
		b.started = true
	case CmdLnTo:
		x, y, err := b.point(cmd, 0)
		if err != nil {
			return err
		}
		b.ensureStarted()
		b.ops = append(b.ops, LineTo{x, y})
		b.penX, b.penY = x, y
	case CmdQuadBezTo:
		x1, y1, err := b.point(cmd, 0)
		if err != nil {
			return err
		}
		x2, y2, err := b.point(cmd, 1)
		if err != nil {
			return err
		}
		b.ensureStarted()
		b.ops = append(b.ops, QuadTo{x1, y1, x2, y2})
		b.penX, b.penY = x2, y2
	case CmdCubicBezTo:
		x1, y1, err := b.point(cmd, 0)
		if err != nil {
			return err
		}
		x2, y2, err := b.point(cmd, 1)
		if err != nil {
			return err
		}
		x3, y3, err := b.point(cmd, 2)
		if err != nil {
			return err
		}
		b.ensureStarted()
		b.ops = append(b.ops, CubicTo{x1, y1, x2, y2, x3, y3})
		b.penX, b.penY = x3, y3
	case CmdArcTo:
		return b.arcTo(cmd)
	case CmdClose:
		b.ops = append(b.ops, Close{})
		b.penX, b.penY = b.startX, b.startY
	default:
		return geomErrf(KindUnknownOperator, "path command %q", cmd.Type)
	}
	return nil
}

// point resolves the i-th coordinate pair of a command.
func (b *pathBuilder) point(cmd *PathCommand, i int) (float64, float64, *GeometryError) {
	if i >= len(cmd.Pts) {
		return 0, 0, geomErrf(KindUnknownOperator, "%s needs %d point(s), got %d", cmd.Type, i+1, len(cmd.Pts))
	}
	x, err := b.env.resolve(cmd.Pts[i].X)
	if err != nil {
		return 0, 0, err
	}
	y, err := b.env.resolve(cmd.Pts[i].Y)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// ensureStarted opens an implicit subpath at the origin for programs whose
// first drawing command is not a moveTo. The preset catalog never does
// this, but document-authored geometry may.
func (b *pathBuilder) ensureStarted() {
	if b.started {
		return
	}
	b.ops = append(b.ops, MoveTo{0, 0})
	b.started = true
}

// arcTo converts an elliptical arc description into cubic Bézier segments.
//
// The ellipse center is derived from the current pen position and the start
// angle: center = pen - (wR*cos(st), hR*sin(st)), so the arc begins at the
// pen. The sweep is split into segments of at most 90 degrees (a single
// cubic cannot accurately cover more) and each segment is approximated with
// the standard construction k = 4/3*tan(seg/4), tangents scaled per axis by
// the radii. Negative sweeps run counter-clockwise through the same math.
func (b *pathBuilder) arcTo(cmd *PathCommand) *GeometryError {
	wR, err := b.env.resolve(cmd.WR)
	if err != nil {
		return err
	}
	hR, err := b.env.resolve(cmd.HR)
	if err != nil {
		return err
	}
	stAng, err := b.env.resolve(cmd.StAng)
	if err != nil {
		return err
	}
	swAng, err := b.env.resolve(cmd.SwAng)
	if err != nil {
		return err
	}
	if wR <= 0 || hR <= 0 {
		return geomErrf(KindMalformedArc, "radii %g x %g", wR, hR)
	}

	b.ensureStarted()
	st := AngleToRadians(stAng)
	sw := AngleToRadians(swAng)
	cx := b.penX - wR*math.Cos(st)
	cy := b.penY - hR*math.Sin(st)

	// Bridge any gap between the pen and the arc's start point.
	sx := cx + wR*math.Cos(st)
	sy := cy + hR*math.Sin(st)
	tol := 1e-9 * math.Max(1, math.Max(wR, hR))
	if math.Abs(sx-b.penX) > tol || math.Abs(sy-b.penY) > tol {
		b.ops = append(b.ops, LineTo{sx, sy})
		b.penX, b.penY = sx, sy
	}

	// Segment count comes from the angle units, which are exact for the
	// integer arithmetic guides produce; the radian sweep is not.
	n := int(math.Ceil(math.Abs(swAng) / AngleQuarterCircle))
	if n < 1 {
		n = 1
	}
	seg := sw / float64(n)
	k := 4.0 / 3.0 * math.Tan(seg/4)
	t := st
	for i := 0; i < n; i++ {
		x0 := cx + wR*math.Cos(t)
		y0 := cy + hR*math.Sin(t)
		t2 := t + seg
		x3 := cx + wR*math.Cos(t2)
		y3 := cy + hR*math.Sin(t2)
		b.ops = append(b.ops, CubicTo{
			x0 - k*wR*math.Sin(t), y0 + k*hR*math.Cos(t),
			x3 + k*wR*math.Sin(t2), y3 - k*hR*math.Cos(t2),
			x3, y3,
		})
		b.penX, b.penY = x3, y3
		t = t2
	}
	return nil
}

// scaleOps rescales operations from a subpath's local grid to the shape's
// real bounds. Factors of exactly (1,1) pass the slice through untouched.
func scaleOps(ops []PathOp, sx, sy float64) []PathOp {
	if sx == 1 && sy == 1 {
		return ops
	}
	out := make([]PathOp, len(ops))
	for i, op := range ops {
		switch o := op.(type) {
		case MoveTo:
			out[i] = MoveTo{o.X * sx, o.Y * sy}
		case LineTo:
			out[i] = LineTo{o.X * sx, o.Y * sy}
		case QuadTo:
			out[i] = QuadTo{o.X1 * sx, o.Y1 * sy, o.X2 * sx, o.Y2 * sy}
		case CubicTo:
			out[i] = CubicTo{o.X1 * sx, o.Y1 * sy, o.X2 * sx, o.Y2 * sy, o.X3 * sx, o.Y3 * sy}
		default:
			out[i] = op
		}
	}
	return out
}
