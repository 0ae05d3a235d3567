package drawml

// PathOp is one concrete drawing operation of a resolved path. The set of
// concrete types is closed: MoveTo, LineTo, QuadTo, CubicTo, and Close.
// Consumers can switch over these exhaustively.
type PathOp interface {
	isPathOp()
}

// MoveTo starts a new subpath at (X, Y).
type MoveTo struct {
	X, Y float64
}

// LineTo draws a straight line from the current point to (X, Y).
type LineTo struct {
	X, Y float64
}

// QuadTo draws a quadratic Bézier with control point (X1, Y1) ending at
// (X2, Y2).
type QuadTo struct {
	X1, Y1 float64
	X2, Y2 float64
}

// CubicTo draws a cubic Bézier with control points (X1, Y1), (X2, Y2)
// ending at (X3, Y3).
type CubicTo struct {
	X1, Y1 float64
	X2, Y2 float64
	X3, Y3 float64
}

// Close closes the current subpath back to its starting point.
type Close struct{}

func (MoveTo) isPathOp()  {}
func (LineTo) isPathOp()  {}
func (QuadTo) isPathOp()  {}
func (CubicTo) isPathOp() {}
func (Close) isPathOp()   {}

// ResolvedPath is one subpath after resolution: concrete operations in
// shape coordinates plus the declarative fill and stroke hints carried over
// from the definition.
type ResolvedPath struct {
	Fill   FillMode
	Stroke bool
	Ops    []PathOp
}

// ConnectionPoint is a resolved connection site. Angle remains in 60000ths
// of a degree, exactly as declared.
type ConnectionPoint struct {
	Angle float64
	X, Y  float64
}

// Rect is a resolved rectangle in shape coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the rectangle width.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the rectangle height.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// ResolvedGeometry is the complete result of resolving a geometry at one
// size. All coordinates are concrete and relative to the shape's own
// origin; translation, rotation, flip, and fill/stroke application are the
// caller's responsibility. The value is independent of the Geometry it came
// from and owned by the caller.
type ResolvedGeometry struct {
	Width, Height   float64
	Paths           []ResolvedPath
	ConnectionSites []ConnectionPoint
	TextRect        Rect
}
