package literal

import (
	"fmt"
	"math"
)

// Dialect records the notation family a literal was written in.
// Computed results are rendered in the dialect of the operands that
// produced them.
type Dialect int

const (
	// Decimal is plain decimal notation, e.g. "1.125" or "123e-4".
	Decimal Dialect = iota
	// Hex is hexadecimal-float notation, e.g. "0x1.fffffep+127".
	Hex
)

// String returns the dialect name for diagnostics.
func (d Dialect) String() string {
	if d == Hex {
		return "hex"
	}
	return "decimal"
}

// Literal is a sealed interface representing one fixture operand or result.
// Only Finite, Infinity, and NaN implement it.
type Literal interface {
	literal() // Sealed - only these types implement it

	// Negative reports the sign bit. It is meaningful for every shape,
	// including zeros and NaNs.
	Negative() bool

	// String renders the literal in fixture notation. A literal that came
	// from Parse and was not modified renders as its original spelling.
	String() string
}

// Finite is a finite floating-point value. The magnitude is always
// non-negative; the sign lives in Neg so that negative zero survives.
type Finite struct {
	Neg       bool
	Magnitude float64 // >= 0
	Dialect   Dialect

	// Source is the exact input spelling, set by Parse. Empty for
	// computed values, which render in normalized form instead.
	Source string
}

func (Finite) literal() {}

// Negative reports the sign bit, which is independent of the magnitude.
func (f Finite) Negative() bool { return f.Neg }

// Float returns the signed value, preserving the sign of zero.
func (f Finite) Float() float64 {
	if f.Neg {
		return -f.Magnitude
	}
	return f.Magnitude
}

// IsZero reports whether the magnitude is zero, of either sign.
func (f Finite) IsZero() bool { return f.Magnitude == 0 }

func (f Finite) String() string {
	if f.Source != "" {
		return f.Source
	}
	if f.Dialect == Hex {
		return formatHex(f.Float())
	}
	return formatDecimal(f.Float())
}

// Infinity is a signed infinity.
type Infinity struct {
	Neg bool
}

func (Infinity) literal() {}

// Negative reports the sign bit.
func (i Infinity) Negative() bool { return i.Neg }

// Float returns the signed IEEE-754 infinity.
func (i Infinity) Float() float64 {
	if i.Neg {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func (i Infinity) String() string {
	if i.Neg {
		return "-inf"
	}
	return "inf"
}

// NaN is a signed not-a-number. HasPayload distinguishes the canonical
// quiet NaN (any payload acceptable) from an arithmetic NaN that carries
// specific payload bits.
type NaN struct {
	Neg        bool
	HasPayload bool
	Payload    uint64 // meaningful only when HasPayload
}

func (NaN) literal() {}

// Negative reports the sign bit. It matters for neg, which flips it, even
// though payload classification ignores it.
func (n NaN) Negative() bool { return n.Neg }

func (n NaN) String() string {
	s := "nan"
	if n.Neg {
		s = "-nan"
	}
	if n.HasPayload {
		s += fmt.Sprintf(":0x%x", n.Payload)
	}
	return s
}

// FromFloat builds a literal for a computed value. Infinities map to
// Infinity; everything else becomes a Finite with no source spelling, so
// it renders in the normalized form of the given dialect.
//
// v must not be a NaN: NaN outcomes are classification decisions, not
// values, and are never rendered from bits. Passing one is a caller bug.
func FromFloat(v float64, d Dialect) Literal {
	if math.IsNaN(v) {
		panic("literal: FromFloat called with NaN")
	}
	if math.IsInf(v, 0) {
		return Infinity{Neg: math.Signbit(v)}
	}
	return Finite{
		Neg:       math.Signbit(v),
		Magnitude: math.Abs(v),
		Dialect:   d,
	}
}

// Mask returns the lane-mask literal for a comparison outcome: "-1" for
// true, "0" for false, per the target system's boolean-as-integer
// convention.
func Mask(truth bool) Literal {
	if truth {
		return Finite{Neg: true, Magnitude: 1, Dialect: Decimal, Source: "-1"}
	}
	return Finite{Magnitude: 0, Dialect: Decimal, Source: "0"}
}
