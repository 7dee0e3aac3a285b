package harness

import (
	"fmt"

	"github.com/roach88/lanegen/internal/literal"
	"github.com/roach88/lanegen/internal/oracle"
)

// TraceEvent records one executed case and its observed outcome.
type TraceEvent struct {
	Seq     int      `json:"seq"`
	Op      string   `json:"op"`
	Args    []string `json:"args"`
	Outcome string   `json:"outcome"`
	Value   string   `json:"value,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expect clause matched.
	Pass bool `json:"pass"`

	// Trace lists all executed cases in order.
	Trace []TraceEvent `json:"trace"`

	// Errors holds expectation mismatches. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates an empty passing result.
func NewResult() *Result {
	return &Result{Pass: true, Trace: []TraceEvent{}, Errors: []string{}}
}

// AddError records an expectation mismatch and marks the result failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Run executes every case of the scenario against the oracle. A returned
// error means the scenario itself is unusable (bad lane, unparseable
// operand, unknown operation). Expectation mismatches do not error, they
// fail the result.
func Run(scenario *Scenario) (*Result, error) {
	orc, err := laneOracle(scenario.Lane)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	for i, c := range scenario.Cases {
		args := make([]literal.Literal, len(c.Args))
		for j, a := range c.Args {
			lit, err := literal.Parse(a)
			if err != nil {
				return nil, fmt.Errorf("cases[%d].args[%d]: %w", i, j, err)
			}
			args[j] = lit
		}

		var res oracle.Result
		if len(args) == 1 {
			res, err = orc.UnaryOp(oracle.Op(c.Op), args[0])
		} else {
			res, err = orc.BinaryOp(oracle.Op(c.Op), args[0], args[1])
		}
		if err != nil {
			return nil, fmt.Errorf("cases[%d]: %w", i, err)
		}

		outcome, value := observe(res)
		result.Trace = append(result.Trace, TraceEvent{
			Seq:     i + 1,
			Op:      c.Op,
			Args:    c.Args,
			Outcome: outcome,
			Value:   value,
		})

		if c.Expect != nil {
			checkExpect(result, i, c, outcome, value)
		}
	}
	return result, nil
}

// laneOracle builds the oracle for a lane shape.
func laneOracle(lane string) (*oracle.Oracle, error) {
	switch lane {
	case "f32x4":
		return oracle.New(oracle.F32())
	case "f64x2":
		return oracle.New(oracle.F64())
	}
	return nil, fmt.Errorf("unknown lane %q", lane)
}

// observe maps an oracle result to its trace outcome and value.
func observe(r oracle.Result) (outcome, value string) {
	switch v := r.(type) {
	case oracle.Concrete:
		return ExpectValue, v.Lit.String()
	case oracle.CanonicalNaN:
		return ExpectCanonicalNaN, ""
	case oracle.ArithmeticNaN:
		return ExpectArithmeticNaN, ""
	}
	panic("harness: unknown oracle result")
}

func checkExpect(result *Result, i int, c Case, outcome, value string) {
	want := c.Expect.kind()
	if outcome != want {
		result.AddError(fmt.Sprintf("cases[%d] %s: expected outcome %s, got %s",
			i, c.Op, want, outcome))
		return
	}
	if want == ExpectValue && value != c.Expect.Value {
		result.AddError(fmt.Sprintf("cases[%d] %s: expected value %s, got %s",
			i, c.Op, c.Expect.Value, value))
	}
}
