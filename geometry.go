package drawml

// Guide is one named formula of a shape definition: an avLst entry (an
// adjust-value default) or a gdLst entry (a computed guide). Fmla holds the
// raw formula, e.g. "*/ ss a 100000": the first token is the operator, the
// rest are operand references or decimal literals.
type Guide struct {
	Name string `yaml:"name"`
	Fmla string `yaml:"fmla"`
}

// FillMode is the declarative fill hint a subpath carries. It is passed
// through to the consumer untouched; this library never applies fills.
type FillMode string

// Fill modes defined by DrawingML path elements.
const (
	FillNorm        FillMode = "norm"
	FillNone        FillMode = "none"
	FillLighten     FillMode = "lighten"
	FillLightenLess FillMode = "lightenLess"
	FillDarken      FillMode = "darken"
	FillDarkenLess  FillMode = "darkenLess"
)

// Path command types, as named by DrawingML path elements.
const (
	CmdMoveTo     = "moveTo"
	CmdLnTo       = "lnTo"
	CmdArcTo      = "arcTo"
	CmdCubicBezTo = "cubicBezTo"
	CmdQuadBezTo  = "quadBezTo"
	CmdClose      = "close"
)

// PathPoint is one coordinate pair of a path command. X and Y are operand
// references (guide names, built-ins, or decimal literals) denominated in
// the subpath's coordinate units.
type PathPoint struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

// PathCommand is a single declarative path command. Pts carries one point
// for moveTo/lnTo, two for quadBezTo, three for cubicBezTo, none otherwise.
type PathCommand struct {
	Type string      `yaml:"cmd"` // "moveTo", "lnTo", "close", "cubicBezTo", "quadBezTo", "arcTo"
	Pts  []PathPoint `yaml:"pts,omitempty"`
	// Arc parameters (only for arcTo): radii in path coordinate units,
	// angles in OOXML 60000ths of a degree. Operand references like Pts.
	WR    string `yaml:"wR,omitempty"`
	HR    string `yaml:"hR,omitempty"`
	StAng string `yaml:"stAng,omitempty"`
	SwAng string `yaml:"swAng,omitempty"`
}

// PathSpec is one subpath program of a geometry. W and H, when positive,
// declare a local coordinate grid that is rescaled to the shape's real
// bounds; zero means coordinates are already in shape units. Subpaths of
// one geometry may declare different grids and normalize independently.
type PathSpec struct {
	W        int64         `yaml:"w,omitempty"`
	H        int64         `yaml:"h,omitempty"`
	Fill     FillMode      `yaml:"fill,omitempty"`   // empty means norm
	Stroke   *bool         `yaml:"stroke,omitempty"` // nil means true
	Commands []PathCommand `yaml:"commands"`
}

// fillMode returns the effective fill hint.
func (p *PathSpec) fillMode() FillMode {
	if p.Fill == "" {
		return FillNorm
	}
	return p.Fill
}

// strokeOn returns the effective stroke flag.
func (p *PathSpec) strokeOn() bool {
	return p.Stroke == nil || *p.Stroke
}

// ConnectionSite is a declarative connector anchor: a boundary point plus
// the approach angle. All three fields are operand references; Ang stays in
// 60000ths of a degree and is consumer metadata, never used geometrically.
type ConnectionSite struct {
	Ang string `yaml:"ang"`
	X   string `yaml:"x"`
	Y   string `yaml:"y"`
}

// RectRef is the declarative text rectangle: four operand references in
// shape coordinates.
type RectRef struct {
	L string `yaml:"l"`
	T string `yaml:"t"`
	R string `yaml:"r"`
	B string `yaml:"b"`
}
