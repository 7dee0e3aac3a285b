// Package literal models the floating-point literals that appear in SIMD
// conformance fixtures.
//
// A literal is one of three shapes: a finite value with an explicit sign and
// non-negative magnitude (so +0.0 and -0.0 stay distinct), a signed infinity,
// or a signed NaN that either accepts any quiet payload (canonical) or
// carries specific payload bits (arithmetic).
//
// Literals remember the notation dialect they were written in (hex float vs
// decimal) because the generator must answer in the same dialect the
// surrounding fixture uses. A parsed literal also keeps its exact source
// spelling: rendering an unmodified literal reproduces the input byte for
// byte, while computed values are rendered in the normalized forms the
// existing fixture corpus uses.
//
// NaN classification happens once, at parse time. Callers never inspect
// literal strings for "nan:" substrings; they switch on the Literal type.
package literal
