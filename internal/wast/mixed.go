package wast

import (
	"fmt"
	"strings"

	"github.com/roach88/lanegen/internal/literal"
	"github.com/roach88/lanegen/internal/oracle"
)

// Mixed-lane square root cases. These assert per lane via extract_lane, so
// NaN classification can be checked on a vector whose other lanes hold
// ordinary values.
var mixedVectors4 = []struct {
	kind  string
	lanes []string
}{
	{"arith", []string{"nan:0x200000", "-nan:0x200000", "16.0", "25.0"}},
	{"canon", []string{"nan", "-nan", "4.0", "9.0"}},
	{"mixed", []string{"nan", "nan:0x200000", "36.0", "49.0"}},
}

var mixedVectors2 = []struct {
	kind  string
	lanes []string
}{
	{"arith", []string{"nan:0x4000000000000", "16.0"}},
	{"canon", []string{"nan", "4.0"}},
	{"mixed", []string{"nan", "nan:0x4000000000000"}},
}

func (e *emitter) mixedNaNCases() {
	vectors := mixedVectors4
	if e.sp.LaneCount() == 2 {
		vectors = mixedVectors2
	}
	lane := e.sp.Lane
	scalar := e.sp.Scalar()

	e.line(fmt.Sprintf(";; Mixed %s tests when some lanes are NaNs", lane))
	e.line("(module")
	for _, v := range vectors {
		e.line(fmt.Sprintf("  (func $%s_sqrt_%s (result v128)", lane, v.kind))
		e.line(fmt.Sprintf("    (%s.sqrt (v128.const %s %s)))", lane, lane, strings.Join(v.lanes, " ")))
		for i := range v.lanes {
			export := fmt.Sprintf("%s_extract_lane_%s_%d", lane, v.kind, i)
			e.line(fmt.Sprintf("  (func (export %q) (result %s)", export, scalar))
			e.line(fmt.Sprintf("    (%s.extract_lane %d (call $%s_sqrt_%s)))", lane, i, lane, v.kind))
		}
	}
	e.line(")")
	e.line("")

	for _, v := range vectors {
		for i, p := range v.lanes {
			r, err := e.orc.UnaryOp(oracle.OpSqrt, literal.MustParse(p))
			if err != nil {
				panic(err)
			}
			export := fmt.Sprintf("%s_extract_lane_%s_%d", lane, v.kind, i)
			switch res := r.(type) {
			case oracle.Concrete:
				e.line(fmt.Sprintf("(assert_return (invoke %q) (%s.const %s))", export, scalar, res.Lit.String()))
			case oracle.CanonicalNaN:
				e.line(fmt.Sprintf("(assert_return_canonical_nan (invoke %q))", export))
			case oracle.ArithmeticNaN:
				e.line(fmt.Sprintf("(assert_return_arithmetic_nan (invoke %q))", export))
			}
			e.cases++
		}
		e.line("")
	}
}
