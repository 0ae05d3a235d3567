package drawml

import (
	"math"
	"strconv"
)

// environment holds every name a guide formula can reference during one
// resolution: built-ins derived from the shape size, bound adjust values,
// and previously evaluated guide results. Each resolve call owns exactly
// one environment; it is never shared or reused.
type environment struct {
	vals map[string]float64
}

// newEnvironment seeds the built-in bindings for a shape of the given size.
// Sizes are unit-agnostic (EMU, pixels, anything) as long as width and
// height share one unit. Angle built-ins are in 60000ths of a degree.
func newEnvironment(width, height float64) *environment {
	ss := math.Min(width, height)
	vals := map[string]float64{
		"w":  width,
		"h":  height,
		"l":  0,
		"t":  0,
		"r":  width,
		"b":  height,
		"hc": width / 2,
		"vc": height / 2,
		"ss": ss,
		"ls": math.Max(width, height),

		"cd2":  AngleHalfCircle,
		"cd4":  AngleQuarterCircle,
		"cd8":  AngleEighthCircle,
		"3cd4": 3 * AngleQuarterCircle,
		"3cd8": 3 * AngleEighthCircle,
		"5cd8": 5 * AngleEighthCircle,
		"7cd8": 7 * AngleEighthCircle,

		"ssd2":  ss / 2,
		"ssd4":  ss / 4,
		"ssd6":  ss / 6,
		"ssd8":  ss / 8,
		"ssd16": ss / 16,
		"ssd32": ss / 32,
	}
	// Halves through twelfths of each axis: wd2..wd12, hd2..hd12.
	for d := 2; d <= 12; d++ {
		vals["wd"+strconv.Itoa(d)] = width / float64(d)
		vals["hd"+strconv.Itoa(d)] = height / float64(d)
	}
	return &environment{vals: vals}
}

// reservedNames is the set of built-in names that bind refuses to replace.
var reservedNames = func() map[string]bool {
	names := make(map[string]bool)
	for name := range newEnvironment(1, 1).vals {
		names[name] = true
	}
	return names
}()

// bind adds or replaces a binding. Built-in names are reserved.
func (e *environment) bind(name string, v float64) *GeometryError {
	if reservedNames[name] {
		return geomErrf(KindBuiltinOverride, "%q is a reserved built-in", name)
	}
	e.vals[name] = v
	return nil
}

// resolve returns the numeric value of a formula operand: decimal literals
// parse directly, anything else must be a bound name. ParseFloat alone is
// too permissive, it accepts spellings like "NaN", "Inf" and hex floats
// that the guide grammar does not; those fall through to the name lookup.
func (e *environment) resolve(token string) (float64, *GeometryError) {
	if isDecimalLiteral(token) {
		if v, err := strconv.ParseFloat(token, 64); err == nil {
			return v, nil
		}
	}
	if v, ok := e.vals[token]; ok {
		return v, nil
	}
	return 0, geomErrf(KindUnknownReference, "%q is not a literal or a bound name", token)
}

// isDecimalLiteral reports whether the token is a plain decimal number: an
// optional sign, digits, and at most one decimal point.
func isDecimalLiteral(token string) bool {
	i := 0
	if len(token) > 0 && (token[0] == '+' || token[0] == '-') {
		i++
	}
	digits, dot := false, false
	for ; i < len(token); i++ {
		switch {
		case token[i] >= '0' && token[i] <= '9':
			digits = true
		case token[i] == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits
}
