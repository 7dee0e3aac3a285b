// Package harness runs YAML conformance scenarios against the lane
// oracle.
//
// A scenario is a named list of oracle queries with expected outcomes.
// The runner executes each query, records a trace, and checks the
// expectations. Traces serialize to canonical JSON so golden comparisons
// are byte-stable across runs.
//
// Scenarios complement the generated fixture files: fixtures enumerate
// the full operand tables, scenarios pin down individual results a
// human has verified by hand.
package harness
