// Package drawml provides a pure Go engine for resolving DrawingML shape
// geometry following the Office Open XML (OOXML) standard. A Geometry holds
// the declarative form of a preset or custom shape (adjust values, guide
// formulas, path programs, connection sites, text rectangle); Resolve
// evaluates it against concrete bounds into renderer-agnostic paths. The
// engine does no drawing itself: fill shading, stroking, placement, rotation
// and flipping stay with the caller.
package drawml

import (
	"fmt"
	"sort"
)

// Geometry is one declarative shape definition.
type Geometry struct {
	// Name identifies the shape, e.g. "roundRect". Used in error messages.
	Name string `yaml:"name"`
	// AvLst declares the adjustable guides with their default formulas,
	// evaluated first and overridable per resolution.
	AvLst []Guide `yaml:"avLst,omitempty"`
	// GdLst declares derived guides, evaluated in order after AvLst.
	GdLst []Guide `yaml:"gdLst,omitempty"`
	// PathLst holds the subpath programs that outline the shape.
	PathLst []PathSpec `yaml:"pathLst"`
	// CxnLst holds the connector attachment sites.
	CxnLst []ConnectionSite `yaml:"cxnLst,omitempty"`
	// Rect bounds the text area. Nil means the full shape box.
	Rect *RectRef `yaml:"rect,omitempty"`
}

// ResolveOptions configure one geometry resolution.
type ResolveOptions struct {
	// Adjustments overrides adjust value defaults by name, replacing the
	// evaluated AvLst value before derived guides run. Names matching no
	// AvLst entry are bound but inert.
	Adjustments map[string]float64
}

// DefaultResolveOptions returns options with no adjustment overrides.
func DefaultResolveOptions() *ResolveOptions {
	return &ResolveOptions{}
}

// Resolve evaluates the geometry against the given shape bounds and returns
// concrete paths, connection sites and the text rectangle, all in the same
// unit as width and height with the origin at the shape's top-left corner.
//
// Resolution is atomic: on any error no partial result is returned. The
// receiver is never mutated, so one Geometry may be resolved concurrently
// from multiple goroutines.
func (g *Geometry) Resolve(width, height float64, opts *ResolveOptions) (*ResolvedGeometry, error) {
	if opts == nil {
		opts = DefaultResolveOptions()
	}

	env := newEnvironment(width, height)
	if err := env.evalGuideList(g.AvLst); err != nil {
		return nil, g.fail(err)
	}
	if len(opts.Adjustments) > 0 {
		names := make([]string, 0, len(opts.Adjustments))
		for name := range opts.Adjustments {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := env.bind(name, opts.Adjustments[name]); err != nil {
				err.Guide = name
				return nil, g.fail(err)
			}
		}
	}
	if err := env.evalGuideList(g.GdLst); err != nil {
		return nil, g.fail(err)
	}

	paths := make([]ResolvedPath, 0, len(g.PathLst))
	for i := range g.PathLst {
		spec := &g.PathLst[i]
		ops, err := buildPath(env, spec)
		if err != nil {
			return nil, g.fail(err)
		}
		sx, sy := 1.0, 1.0
		if spec.W > 0 {
			sx = width / float64(spec.W)
		}
		if spec.H > 0 {
			sy = height / float64(spec.H)
		}
		paths = append(paths, ResolvedPath{
			Fill:   spec.fillMode(),
			Stroke: spec.strokeOn(),
			Ops:    scaleOps(ops, sx, sy),
		})
	}

	sites := make([]ConnectionPoint, 0, len(g.CxnLst))
	for i := range g.CxnLst {
		site, err := resolveSite(env, &g.CxnLst[i])
		if err != nil {
			err.Guide = fmt.Sprintf("cxn %d", i)
			return nil, g.fail(err)
		}
		sites = append(sites, site)
	}

	rect := Rect{Left: 0, Top: 0, Right: width, Bottom: height}
	if g.Rect != nil {
		r, err := resolveRect(env, g.Rect)
		if err != nil {
			err.Guide = "rect"
			return nil, g.fail(err)
		}
		rect = r
	}

	return &ResolvedGeometry{
		Width:           width,
		Height:          height,
		Paths:           paths,
		ConnectionSites: sites,
		TextRect:        rect,
	}, nil
}

// resolveSite evaluates one connection site. The angle is consumer metadata
// and passes through in angle units, unconverted.
func resolveSite(env *environment, cs *ConnectionSite) (ConnectionPoint, *GeometryError) {
	ang, err := env.resolve(cs.Ang)
	if err != nil {
		return ConnectionPoint{}, err
	}
	x, err := env.resolve(cs.X)
	if err != nil {
		return ConnectionPoint{}, err
	}
	y, err := env.resolve(cs.Y)
	if err != nil {
		return ConnectionPoint{}, err
	}
	return ConnectionPoint{Angle: ang, X: x, Y: y}, nil
}

// resolveRect evaluates the text rectangle bounds.
func resolveRect(env *environment, rr *RectRef) (Rect, *GeometryError) {
	l, err := env.resolve(rr.L)
	if err != nil {
		return Rect{}, err
	}
	t, err := env.resolve(rr.T)
	if err != nil {
		return Rect{}, err
	}
	r, err := env.resolve(rr.R)
	if err != nil {
		return Rect{}, err
	}
	b, err := env.resolve(rr.B)
	if err != nil {
		return Rect{}, err
	}
	return Rect{Left: l, Top: t, Right: r, Bottom: b}, nil
}

// fail stamps the shape name onto a resolution error.
func (g *Geometry) fail(err *GeometryError) error {
	if err.Shape == "" {
		err.Shape = g.Name
	}
	return err
}
