package wast

import (
	"fmt"
	"strings"

	"github.com/roach88/lanegen/internal/literal"
	"github.com/roach88/lanegen/internal/oracle"
	"github.com/roach88/lanegen/internal/suite"
)

// File is one rendered fixture.
type File struct {
	Name    string // suite name, also the fixture basename
	Content []byte
	Cases   int // number of assertions emitted
}

// Render produces the fixture text for one suite.
func Render(sp suite.Spec) (*File, error) {
	cfg, err := sp.OracleConfig()
	if err != nil {
		return nil, err
	}
	orc, err := oracle.New(cfg)
	if err != nil {
		return nil, err
	}

	e := &emitter{sp: sp, orc: orc}
	e.header()
	e.modulePreamble()
	switch sp.Family {
	case suite.FamilyArith:
		e.binaryCases()
		e.unaryCases()
		e.combineCases()
		e.mixedNaNCases()
	case suite.FamilySimple:
		e.binaryCases()
		e.unaryCases()
	case suite.FamilyCmp:
		e.binaryCases()
	}

	return &File{Name: sp.Name, Content: []byte(e.buf.String()), Cases: e.cases}, nil
}

type emitter struct {
	sp    suite.Spec
	orc   *oracle.Oracle
	buf   strings.Builder
	cases int
}

func (e *emitter) line(s string) {
	e.buf.WriteString(s)
	e.buf.WriteByte('\n')
}

func (e *emitter) header() {
	var what string
	switch e.sp.Family {
	case suite.FamilyArith:
		what = "arithmetic"
	case suite.FamilySimple:
		what = "abs, min, and max"
	case suite.FamilyCmp:
		what = "comparison"
	}
	e.line(fmt.Sprintf(";; Tests for %s %s operations on major boundary values and all special values.", e.sp.Lane, what))
	e.line("")
}

// modulePreamble exports one function per operation under test.
func (e *emitter) modulePreamble() {
	e.line("(module")
	for _, op := range e.sp.UnaryOps {
		name := e.fullOp(op)
		e.line(fmt.Sprintf("  (func (export %q) (param v128) (result v128) (%s (local.get 0)))", name, name))
	}
	for _, op := range e.sp.BinaryOps {
		name := e.fullOp(op)
		e.line(fmt.Sprintf("  (func (export %q) (param v128 v128) (result v128) (%s (local.get 0) (local.get 1)))", name, name))
	}
	e.line(")")
	e.line("")
}

func (e *emitter) fullOp(op string) string {
	return e.sp.Lane + "." + op
}

// vconst splats value across every lane of the given shape.
func vconst(lane, value string) string {
	n := 4
	if strings.HasSuffix(lane, "x2") {
		n = 2
	}
	lanes := make([]string, n)
	for i := range lanes {
		lanes[i] = value
	}
	return fmt.Sprintf("(v128.const %s %s)", lane, strings.Join(lanes, " "))
}

// resultLane is the shape expected values land in: the mask shape for
// comparisons, the float shape for everything else.
func (e *emitter) resultLane(op string) string {
	if oracle.Op(op).IsComparison() {
		return e.sp.MaskLane()
	}
	return e.sp.Lane
}

// classify maps an oracle outcome to the assertion keyword and, for
// concrete results, the expected lane value.
func (e *emitter) classify(r oracle.Result) (assertType string, expected string, concrete bool) {
	switch v := r.(type) {
	case oracle.Concrete:
		return "assert_return", v.Lit.String(), true
	case oracle.CanonicalNaN:
		return "assert_return_canonical_nan_" + e.sp.Lane, "", false
	case oracle.ArithmeticNaN:
		return "assert_return_arithmetic_nan_" + e.sp.Lane, "", false
	}
	panic("wast: unknown oracle result")
}

// emitBinary renders one two-operand assertion in the aligned multi-line
// layout: the head line carries the first operand, continuation lines are
// padded to the head's width.
func (e *emitter) emitBinary(op, p1, p2 string) {
	r, err := e.orc.BinaryOp(oracle.Op(op), literal.MustParse(p1), literal.MustParse(p2))
	if err != nil {
		panic(err) // enumeration only uses the closed op set
	}
	assertType, expected, concrete := e.classify(r)

	head := fmt.Sprintf("(%s (invoke %q ", assertType, e.fullOp(op))
	pad := strings.Repeat(" ", len(head))
	e.line(head + vconst(e.sp.Lane, p1))
	if concrete {
		e.line(pad + vconst(e.sp.Lane, p2) + ")")
		e.line(pad + vconst(e.resultLane(op), expected) + ")")
	} else {
		e.line(pad + vconst(e.sp.Lane, p2) + "))")
	}
	e.cases++
}

// emitUnary renders one single-operand assertion.
func (e *emitter) emitUnary(op, p string) {
	r, err := e.orc.UnaryOp(oracle.Op(op), literal.MustParse(p))
	if err != nil {
		panic(err)
	}
	assertType, expected, concrete := e.classify(r)

	head := fmt.Sprintf("(%s (invoke %q ", assertType, e.fullOp(op))
	if concrete {
		pad := strings.Repeat(" ", len(head))
		e.line(head + vconst(e.sp.Lane, p) + ")")
		e.line(pad + vconst(e.resultLane(op), expected) + ")")
	} else {
		e.line(head + vconst(e.sp.Lane, p) + "))")
	}
	e.cases++
}

// binaryCases walks every binary operation over the float table pairwise,
// then the NaN forms against floats in both operand orders (operand order
// is a distinct case), then NaN against NaN, and finally the literal
// spelling edge cases as self-pairs.
func (e *emitter) binaryCases() {
	for _, op := range e.sp.BinaryOps {
		for _, p1 := range e.sp.Floats {
			for _, p2 := range e.sp.Floats {
				e.emitBinary(op, p1, p2)
			}
		}
		for _, p1 := range e.sp.NaNs {
			for _, p2 := range e.sp.Floats {
				e.emitBinary(op, p1, p2)
				e.emitBinary(op, p2, p1)
			}
			for _, p2 := range e.sp.NaNs {
				e.emitBinary(op, p1, p2)
			}
		}
		for _, p := range e.sp.Literals {
			e.emitBinary(op, p, p)
		}
		e.line("")
	}
}

// unaryCases walks every unary operation over all operand tables.
func (e *emitter) unaryCases() {
	for _, op := range e.sp.UnaryOps {
		for _, tbl := range [][]string{e.sp.Floats, e.sp.NaNs, e.sp.Literals} {
			for _, p := range tbl {
				e.emitUnary(op, p)
			}
		}
		e.line("")
	}
}
