package oracle

import (
	"math"

	"github.com/roach88/lanegen/internal/literal"
)

// Precision selects the IEEE-754 width an operation executes at.
type Precision int

const (
	// Single rounds operands to 32-bit floats before the operation and the
	// result after it, modeling hardware single-precision execution. This
	// is not the same as computing in double and truncating once; the
	// difference shows in the last bit near precision boundaries.
	Single Precision = iota + 1
	// Double computes directly at 64-bit precision.
	Double
)

// Config carries the per-lane-type constants as explicit inputs, so the
// oracle stays a pure function rather than a family of subtypes.
type Config struct {
	Precision Precision

	// MaxFinite is the largest finite magnitude the lane type represents.
	// Any computed magnitude beyond it renders as signed infinity
	// (overflow-to-infinity), after every operation.
	MaxFinite float64
}

// F32 is the configuration for 32-bit lanes.
func F32() Config {
	return Config{Precision: Single, MaxFinite: 0x1.fffffep+127}
}

// F64 is the configuration for 64-bit lanes.
func F64() Config {
	return Config{Precision: Double, MaxFinite: math.MaxFloat64}
}

// Oracle answers expected-result queries for one lane type.
type Oracle struct {
	cfg Config
}

// New validates the configuration and returns an Oracle.
func New(cfg Config) (*Oracle, error) {
	if cfg.Precision != Single && cfg.Precision != Double {
		return nil, &ConfigError{Message: "precision must be Single or Double"}
	}
	if !(cfg.MaxFinite > 0) || math.IsInf(cfg.MaxFinite, 0) {
		return nil, &ConfigError{Message: "max finite magnitude must be a positive finite value"}
	}
	return &Oracle{cfg: cfg}, nil
}

// BinaryOp computes the expected result of a two-operand operation:
// add, sub, mul, div, min, max, or a comparison.
func (o *Oracle) BinaryOp(op Op, a, b literal.Literal) (Result, error) {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return o.arith(op, a, b), nil
	case OpMin, OpMax:
		return o.minmax(op, a, b), nil
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return o.compare(op, a, b), nil
	default:
		return nil, &UnknownOpError{Op: op, Arity: 2}
	}
}

// UnaryOp computes the expected result of a one-operand operation:
// neg, sqrt, or abs.
func (o *Oracle) UnaryOp(op Op, v literal.Literal) (Result, error) {
	switch op {
	case OpNeg:
		return o.neg(v), nil
	case OpSqrt:
		return o.sqrt(v), nil
	case OpAbs:
		return o.abs(v), nil
	default:
		return nil, &UnknownOpError{Op: op, Arity: 1}
	}
}

// arith handles add/sub/mul/div: NaN propagation, then the op's
// special-case table, then ordinary rounded arithmetic with the
// overflow clamp. The table sees operands already rounded to the
// configured precision, so a magnitude that flushes to zero (or
// overflows to infinity) at single precision takes the zero (or
// infinity) row.
func (o *Oracle) arith(op Op, a, b literal.Literal) Result {
	if r, ok := propagateNaN(a, b); ok {
		return r
	}

	fa, fb := o.round(value(a)), o.round(value(b))
	infA, infB := math.IsInf(fa, 0), math.IsInf(fb, 0)

	switch op {
	case OpAdd:
		// Opposite-signed infinities have no sum.
		if infA && infB && a.Negative() != b.Negative() {
			return ArithmeticNaN{}
		}
	case OpSub:
		// Same-signed infinities have no difference.
		if infA && infB && a.Negative() == b.Negative() {
			return ArithmeticNaN{}
		}
	case OpMul:
		if (fa == 0 && infB) || (infA && fb == 0) {
			return ArithmeticNaN{}
		}
	case OpDiv:
		if fa == 0 && fb == 0 {
			return ArithmeticNaN{}
		}
		if infA && infB {
			return ArithmeticNaN{}
		}
		if fb == 0 {
			// Nonzero dividend over zero: signed infinity, sign from the
			// XOR of the operand sign bits.
			return Concrete{Lit: literal.Infinity{Neg: a.Negative() != b.Negative()}}
		}
	}

	var r float64
	if o.cfg.Precision == Single {
		x, y := float32(fa), float32(fb)
		var z float32
		switch op {
		case OpAdd:
			z = x + y
		case OpSub:
			z = x - y
		case OpMul:
			z = x * y
		case OpDiv:
			z = x / y
		}
		r = float64(z)
	} else {
		switch op {
		case OpAdd:
			r = fa + fb
		case OpSub:
			r = fa - fb
		case OpMul:
			r = fa * fb
		case OpDiv:
			r = fa / fb
		}
	}
	return Concrete{Lit: o.clamp(r, dialectOf(a, b))}
}

// neg flips the sign bit unconditionally, on every literal shape.
func (o *Oracle) neg(v literal.Literal) Result {
	switch l := v.(type) {
	case literal.NaN:
		l.Neg = !l.Neg
		return Concrete{Lit: l}
	case literal.Infinity:
		l.Neg = !l.Neg
		return Concrete{Lit: l}
	case literal.Finite:
		return Concrete{Lit: literal.FromFloat(-l.Float(), dialectOf(v))}
	}
	panic("oracle: unknown literal shape")
}

// sqrt rounds the operand to the configured precision, returns negative
// zero for a rounded negative zero, classifies any other negative input
// as arithmetic NaN, and then takes the rounded real root.
func (o *Oracle) sqrt(v literal.Literal) Result {
	if r, ok := propagateNaN(v); ok {
		return r
	}

	f := o.round(value(v))
	if f == 0 && math.Signbit(f) {
		if fin, ok := v.(literal.Finite); ok && fin.IsZero() {
			// An exact negative zero keeps its written spelling.
			return Concrete{Lit: v}
		}
		return Concrete{Lit: literal.FromFloat(f, dialectOf(v))}
	}
	if math.Signbit(f) {
		return ArithmeticNaN{}
	}

	r := o.round(math.Sqrt(f))
	return Concrete{Lit: o.clamp(r, dialectOf(v))}
}

// abs forces the sign positive and keeps everything else, including NaN
// payloads.
func (o *Oracle) abs(v literal.Literal) Result {
	switch l := v.(type) {
	case literal.NaN:
		l.Neg = false
		return Concrete{Lit: l}
	case literal.Infinity:
		return Concrete{Lit: literal.Infinity{}}
	case literal.Finite:
		return Concrete{Lit: literal.FromFloat(l.Magnitude, dialectOf(v))}
	}
	panic("oracle: unknown literal shape")
}

// minmax applies the canonical-NaN-dominates policy, then the
// signed-zero-aware ordered selection.
func (o *Oracle) minmax(op Op, a, b literal.Literal) Result {
	anyNaN, anyCanonical := false, false
	for _, l := range []literal.Literal{a, b} {
		if n, ok := l.(literal.NaN); ok {
			anyNaN = true
			if !n.HasPayload {
				anyCanonical = true
			}
		}
	}
	if anyNaN {
		// Opposite of the arithmetic family: the canonical NaN wins.
		if anyCanonical {
			return CanonicalNaN{}
		}
		return ArithmeticNaN{}
	}

	fa, fb := o.round(value(a)), o.round(value(b))
	var r float64
	if op == OpMin {
		r = orderedMin(fa, fb)
	} else {
		r = orderedMax(fa, fb)
	}
	return Concrete{Lit: o.clamp(r, dialectOf(a, b))}
}

// compare evaluates an ordered comparison. Any NaN operand makes ne true
// and every other comparison false.
func (o *Oracle) compare(op Op, a, b literal.Literal) Result {
	if isNaN(a) || isNaN(b) {
		return Concrete{Lit: literal.Mask(op == OpNe)}
	}

	fa, fb := o.round(value(a)), o.round(value(b))
	var truth bool
	switch op {
	case OpEq:
		truth = fa == fb
	case OpNe:
		truth = fa != fb
	case OpLt:
		truth = fa < fb
	case OpLe:
		truth = fa <= fb
	case OpGt:
		truth = fa > fb
	case OpGe:
		truth = fa >= fb
	}
	return Concrete{Lit: literal.Mask(truth)}
}

// clamp applies overflow-to-infinity against the configured maximum finite
// magnitude, then builds the result literal in the given dialect.
func (o *Oracle) clamp(v float64, d literal.Dialect) literal.Literal {
	if v > o.cfg.MaxFinite {
		return literal.Infinity{}
	}
	if v < -o.cfg.MaxFinite {
		return literal.Infinity{Neg: true}
	}
	return literal.FromFloat(v, d)
}

// round rounds v to the configured precision.
func (o *Oracle) round(v float64) float64 {
	if o.cfg.Precision == Single {
		return float64(float32(v))
	}
	return v
}

// propagateNaN implements the arithmetic-family propagation rule: any
// payload-bearing operand forces an arithmetic NaN; otherwise any NaN
// operand yields a canonical NaN.
func propagateNaN(operands ...literal.Literal) (Result, bool) {
	found, payload := false, false
	for _, l := range operands {
		if n, ok := l.(literal.NaN); ok {
			found = true
			if n.HasPayload {
				payload = true
			}
		}
	}
	if !found {
		return nil, false
	}
	if payload {
		return ArithmeticNaN{}, true
	}
	return CanonicalNaN{}, true
}

// value returns the signed float for a non-NaN literal.
func value(l literal.Literal) float64 {
	switch v := l.(type) {
	case literal.Finite:
		return v.Float()
	case literal.Infinity:
		return v.Float()
	}
	panic("oracle: value of NaN literal")
}

// dialectOf picks the result dialect: hex if any finite operand was
// written in hex, decimal otherwise.
func dialectOf(operands ...literal.Literal) literal.Dialect {
	for _, l := range operands {
		if f, ok := l.(literal.Finite); ok && f.Dialect == literal.Hex {
			return literal.Hex
		}
	}
	return literal.Decimal
}

func isNaN(l literal.Literal) bool {
	_, ok := l.(literal.NaN)
	return ok
}
