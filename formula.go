package drawml

import (
	"math"
	"strings"
)

// operatorArity maps every guide-formula operator to its operand count.
// The grammar is fixed by the OOXML standard; there are no variadic forms.
var operatorArity = map[string]int{
	"val": 1, "abs": 1, "sqrt": 1,
	"at2": 2, "cos": 2, "sin": 2, "tan": 2, "max": 2, "min": 2,
	"*/": 3, "+-": 3, "+/": 3, "?:": 3, "mod": 3, "pin": 3, "cat2": 3, "sat2": 3,
}

// evalFormula tokenizes and evaluates one formula string against the
// environment. Formulas are whitespace-separated: the first token is the
// operator, the rest are operand references or decimal literals, e.g.
// "*/ ss a 100000". Angle operands are in 60000ths of a degree.
func (e *environment) evalFormula(fmla string) (float64, *GeometryError) {
	tokens := strings.Fields(fmla)
	if len(tokens) == 0 {
		return 0, geomErrf(KindUnknownOperator, "empty formula")
	}
	op := tokens[0]
	arity, ok := operatorArity[op]
	if !ok {
		return 0, geomErrf(KindUnknownOperator, "%q", op)
	}
	if len(tokens)-1 != arity {
		return 0, geomErrf(KindUnknownOperator, "%q takes %d operands, got %d", op, arity, len(tokens)-1)
	}
	a := make([]float64, arity)
	for i := range a {
		v, err := e.resolve(tokens[i+1])
		if err != nil {
			return 0, err
		}
		a[i] = v
	}

	var res float64
	switch op {
	case "val":
		res = a[0]
	case "abs":
		res = math.Abs(a[0])
	case "sqrt":
		res = math.Sqrt(a[0])
	case "at2":
		res = NormalizeAngle(RadiansToAngle(math.Atan2(a[1], a[0])))
	case "cos":
		res = a[0] * math.Cos(AngleToRadians(a[1]))
	case "sin":
		res = a[0] * math.Sin(AngleToRadians(a[1]))
	case "tan":
		res = a[0] * math.Tan(AngleToRadians(a[1]))
	case "max":
		res = math.Max(a[0], a[1])
	case "min":
		res = math.Min(a[0], a[1])
	case "*/":
		if a[2] == 0 {
			return 0, geomErrf(KindZeroDivision, "%q with zero denominator", op)
		}
		res = a[0] * a[1] / a[2]
	case "+-":
		res = a[0] + a[1] - a[2]
	case "+/":
		if a[2] == 0 {
			return 0, geomErrf(KindZeroDivision, "%q with zero denominator", op)
		}
		res = (a[0] + a[1]) / a[2]
	case "?:":
		if a[0] > 0 {
			res = a[1]
		} else {
			res = a[2]
		}
	case "mod":
		res = math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
	case "pin":
		// Clamp the middle operand into [a, c].
		switch {
		case a[1] < a[0]:
			res = a[0]
		case a[1] > a[2]:
			res = a[2]
		default:
			res = a[1]
		}
	case "cat2":
		res = a[0] * math.Cos(math.Atan2(a[2], a[1]))
	case "sat2":
		res = a[0] * math.Sin(math.Atan2(a[2], a[1]))
	}
	// sqrt of a negative operand lands here too.
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, geomErrf(KindZeroDivision, "%q produced a non-finite result", op)
	}
	return res, nil
}

// evalGuideList evaluates a guide list strictly in declaration order,
// binding exactly one result per entry. Later entries may reference earlier
// ones; names must be unique within the list.
func (e *environment) evalGuideList(guides []Guide) *GeometryError {
	seen := make(map[string]bool, len(guides))
	for i := range guides {
		g := &guides[i]
		if seen[g.Name] {
			return &GeometryError{Kind: KindDuplicateGuide, Guide: g.Name, Detail: "declared twice in one list"}
		}
		seen[g.Name] = true
		v, err := e.evalFormula(g.Fmla)
		if err != nil {
			err.Guide = g.Name
			return err
		}
		if err := e.bind(g.Name, v); err != nil {
			err.Guide = g.Name
			return err
		}
	}
	return nil
}
