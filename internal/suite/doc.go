// Package suite loads the declarative fixture-suite definitions.
//
// A suite describes one generated fixture file: the lane shape, the
// operation family, and the operand tables the enumerator walks. Suites are
// authored in CUE and embedded in the binary; the loader compiles each file
// with the CUE SDK's Go API and validates every table entry at load time,
// so a typo in an operand spelling fails the run before any fixture text is
// produced.
package suite
