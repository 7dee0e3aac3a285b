package oracle

import "github.com/roach88/lanegen/internal/literal"

// Result is a sealed interface classifying one oracle outcome.
// Only Concrete, CanonicalNaN, and ArithmeticNaN implement it.
type Result interface {
	result() // Sealed - only these types implement it
}

// Concrete is an exact expected value, including signed zeros, signed
// infinities, and the sign/payload-preserving NaN results of neg and abs.
type Concrete struct {
	Lit literal.Literal
}

func (Concrete) result() {}

// CanonicalNaN means any quiet NaN with the designated don't-care payload
// satisfies the assertion.
type CanonicalNaN struct{}

func (CanonicalNaN) result() {}

// ArithmeticNaN means the result NaN must trace its payload to an operand
// NaN per the propagation rules; a bare canonical pattern is not enough to
// pin it down, so the assertion only requires some arithmetic NaN.
type ArithmeticNaN struct{}

func (ArithmeticNaN) result() {}

// String renders the classification the way fixture text refers to it.
func String(r Result) string {
	switch v := r.(type) {
	case Concrete:
		return v.Lit.String()
	case CanonicalNaN:
		return "canonical-nan"
	case ArithmeticNaN:
		return "arithmetic-nan"
	default:
		return "<nil>"
	}
}
