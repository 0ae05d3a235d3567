package drawml

import "fmt"

// ErrorKind classifies why a geometry failed to resolve.
type ErrorKind int

const (
	// KindUnknownOperator reports a formula operator that is not part of the
	// guide grammar, or a known operator given the wrong number of operands.
	KindUnknownOperator ErrorKind = iota
	// KindUnknownReference reports an operand that names no built-in, adjust
	// value, or previously evaluated guide (forward references included).
	KindUnknownReference
	// KindDuplicateGuide reports two entries sharing one name within a
	// single guide list.
	KindDuplicateGuide
	// KindBuiltinOverride reports an adjust value or guide that shadows a
	// reserved built-in name.
	KindBuiltinOverride
	// KindZeroDivision reports a zero denominator or any arithmetic step
	// whose result would not be a finite number.
	KindZeroDivision
	// KindMalformedArc reports an arcTo whose radii resolve to zero or below.
	KindMalformedArc
)

// String returns a short description of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindUnknownOperator:
		return "unknown operator"
	case KindUnknownReference:
		return "unknown reference"
	case KindDuplicateGuide:
		return "duplicate guide name"
	case KindBuiltinOverride:
		return "built-in override"
	case KindZeroDivision:
		return "zero division"
	case KindMalformedArc:
		return "malformed arc"
	default:
		return fmt.Sprintf("error kind %d", int(k))
	}
}

// GeometryError describes a geometry resolution failure. Shape holds the
// preset name when the geometry has one, Guide the name of the offending
// guide or path command. Resolution is atomic: when a GeometryError is
// returned no partial result is produced.
type GeometryError struct {
	Kind   ErrorKind
	Shape  string // preset name, empty for anonymous custom geometry
	Guide  string // guide name or command context, may be empty
	Detail string
}

// Error implements the error interface.
func (e *GeometryError) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Guide != "" {
		msg = fmt.Sprintf("guide %q: %s", e.Guide, msg)
	}
	if e.Shape != "" {
		msg = fmt.Sprintf("shape %q: %s", e.Shape, msg)
	}
	return msg
}

// geomErrf builds a GeometryError with a formatted detail message.
// Shape and guide context are filled in by the callers that know them.
func geomErrf(kind ErrorKind, format string, args ...interface{}) *GeometryError {
	return &GeometryError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
