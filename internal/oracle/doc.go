// Package oracle computes expected results for lane-wise floating-point
// instructions.
//
// The oracle is the single authority on numeric semantics: every inf/inf,
// 0*inf, and -x - -x corner is an explicit policy decided here, never an
// accident of host arithmetic. Its primary output is a classification, not
// a raw float: a query yields either a concrete literal, "any canonical
// quiet NaN is acceptable", or "the NaN payload must trace to an operand"
// (arithmetic NaN). Downstream fixture emission picks the assertion form
// from that classification.
//
// Two NaN-dominance policies coexist on purpose. In the arithmetic family
// (add, sub, mul, div, sqrt) a payload-bearing NaN operand forces an
// arithmetic-NaN result; in the min/max family a canonical NaN operand wins
// over a payload-bearing one. The two families classify differently and
// must not be unified.
//
// Every query is a pure function of its inputs and the explicit Config.
// There is no shared state, no I/O, and no ordering dependency between
// calls.
package oracle
