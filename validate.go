package drawml

import (
	"fmt"
	"strings"
)

// Validate checks the geometry definition for structural issues and returns
// an error describing all problems found, or nil if the definition is valid.
// It inspects the definition without evaluating it, so defects that depend
// on concrete sizes or adjust values (zero denominators, collapsed arc
// radii) are still only caught by Resolve.
func (g *Geometry) Validate() error {
	var errs []string

	errs = append(errs, validateGuides(g.AvLst, "avLst")...)
	errs = append(errs, validateGuides(g.GdLst, "gdLst")...)

	if len(g.PathLst) == 0 {
		errs = append(errs, "pathLst has no subpaths")
	}
	for i := range g.PathLst {
		prefix := fmt.Sprintf("path %d", i+1)
		for _, e := range validatePath(&g.PathLst[i]) {
			errs = append(errs, prefix+": "+e)
		}
	}

	for i, site := range g.CxnLst {
		if site.Ang == "" || site.X == "" || site.Y == "" {
			errs = append(errs, fmt.Sprintf("cxn %d is missing an angle or coordinate reference", i+1))
		}
	}

	if g.Rect != nil {
		if g.Rect.L == "" || g.Rect.T == "" || g.Rect.R == "" || g.Rect.B == "" {
			errs = append(errs, "rect is missing a side reference")
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("geometry %q is invalid:\n  %s", g.Name, strings.Join(errs, "\n  "))
}

func validateGuides(guides []Guide, list string) []string {
	var errs []string
	seen := make(map[string]bool, len(guides))
	for i := range guides {
		gd := &guides[i]
		prefix := fmt.Sprintf("%s guide %d", list, i+1)
		if gd.Name == "" {
			errs = append(errs, prefix+": empty name")
		} else {
			if reservedNames[gd.Name] {
				errs = append(errs, fmt.Sprintf("%s: %q shadows a built-in", prefix, gd.Name))
			}
			if seen[gd.Name] {
				errs = append(errs, fmt.Sprintf("%s: %q declared twice", prefix, gd.Name))
			}
			seen[gd.Name] = true
		}
		errs = append(errs, validateFormula(gd.Fmla, prefix)...)
	}
	return errs
}

func validateFormula(fmla, prefix string) []string {
	tokens := strings.Fields(fmla)
	if len(tokens) == 0 {
		return []string{prefix + ": empty formula"}
	}
	arity, ok := operatorArity[tokens[0]]
	if !ok {
		return []string{fmt.Sprintf("%s: unknown operator %q", prefix, tokens[0])}
	}
	if len(tokens)-1 != arity {
		return []string{fmt.Sprintf("%s: %q takes %d operands, got %d", prefix, tokens[0], arity, len(tokens)-1)}
	}
	return nil
}

// pointCounts maps the point-list commands to their required point count.
var pointCounts = map[string]int{
	CmdMoveTo:     1,
	CmdLnTo:       1,
	CmdQuadBezTo:  2,
	CmdCubicBezTo: 3,
}

func validatePath(spec *PathSpec) []string {
	var errs []string
	if spec.W < 0 || spec.H < 0 {
		errs = append(errs, fmt.Sprintf("local grid %d x %d is negative", spec.W, spec.H))
	}
	switch spec.Fill {
	case "", FillNorm, FillNone, FillLighten, FillLightenLess, FillDarken, FillDarkenLess:
	default:
		errs = append(errs, fmt.Sprintf("unknown fill mode %q", spec.Fill))
	}
	if len(spec.Commands) == 0 {
		errs = append(errs, "no commands")
	}
	for i := range spec.Commands {
		cmd := &spec.Commands[i]
		switch cmd.Type {
		case CmdMoveTo, CmdLnTo, CmdQuadBezTo, CmdCubicBezTo:
			if want := pointCounts[cmd.Type]; len(cmd.Pts) != want {
				errs = append(errs, fmt.Sprintf("command %d: %s needs %d point(s), got %d", i+1, cmd.Type, want, len(cmd.Pts)))
			}
		case CmdArcTo:
			if cmd.WR == "" || cmd.HR == "" || cmd.StAng == "" || cmd.SwAng == "" {
				errs = append(errs, fmt.Sprintf("command %d: arcTo is missing a radius or angle reference", i+1))
			}
		case CmdClose:
		default:
			errs = append(errs, fmt.Sprintf("command %d: unknown command %q", i+1, cmd.Type))
		}
	}
	return errs
}
