// Package wast renders fixture suites into WebAssembly script text.
//
// The emitter walks a suite's operand tables, asks the oracle for the
// expected outcome of every case, and turns each classification into the
// matching assertion form: assert_return with a concrete v128 expectation,
// or the canonical/arithmetic NaN assertion with no expected value. It
// decides layout only; all numeric semantics live in the oracle.
package wast
