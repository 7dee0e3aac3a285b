package wast

import (
	"fmt"
	"strings"

	"github.com/roach88/lanegen/internal/literal"
	"github.com/roach88/lanegen/internal/oracle"
)

// Combination cases chain two operations and assert on the composed
// result, exercising result-of-result flow through the lanes. The expected
// vectors are computed by running the oracle twice, never precomputed by
// hand.

// ternaryCombine is outer(inner(x, y), z).
var ternaryCombine = []struct {
	outer, inner string
	x, y, z      string
}{
	{"add", "sub", "1.125", "0.25", "0.125"},
	{"sub", "add", "1.125", "0.25", "0.125"},
	{"mul", "add", "1.25", "0.25", "0.25"},
	{"mul", "sub", "1.125", "0.125", "0.25"},
	{"div", "add", "1.125", "0.125", "0.25"},
	{"div", "sub", "1.125", "0.125", "0.25"},
	{"mul", "div", "1.125", "0.125", "0.25"},
	{"div", "mul", "1.125", "4", "0.25"},
}

// binaryCombine is outer(inner(x), y) with a unary inner operation.
var binaryCombine = []struct {
	outer, inner string
	x, y         string
}{
	{"add", "neg", "1.125", "0.125"},
	{"sub", "neg", "1.125", "0.125"},
	{"mul", "neg", "1.5", "0.25"},
	{"div", "neg", "1.5", "0.25"},
	{"add", "sqrt", "2.25", "0.25"},
	{"sub", "sqrt", "2.25", "0.25"},
	{"mul", "sqrt", "2.25", "0.25"},
	{"div", "sqrt", "2.25", "0.25"},
}

func (e *emitter) combineCases() {
	e.line(";; Combination operations")
	e.line("")
	e.line("(module")
	lane := e.sp.Lane
	for _, c := range ternaryCombine {
		name := c.outer + "-" + c.inner
		e.line(fmt.Sprintf("  (func (export %q) (param v128 v128 v128) (result v128)", name))
		e.line(fmt.Sprintf("    (%s.%s (%s.%s (local.get 0) (local.get 1)) (local.get 2)))", lane, c.outer, lane, c.inner))
	}
	for _, c := range binaryCombine {
		name := c.outer + "-" + c.inner
		e.line(fmt.Sprintf("  (func (export %q) (param v128 v128) (result v128)", name))
		e.line(fmt.Sprintf("    (%s.%s (%s.%s (local.get 0)) (local.get 1)))", lane, c.outer, lane, c.inner))
	}
	e.line(")")
	e.line("")

	for _, c := range ternaryCombine {
		inner := e.mustBinary(c.inner, literal.MustParse(c.x), literal.MustParse(c.y))
		expected := e.mustBinary(c.outer, inner, literal.MustParse(c.z))
		e.emitInvoke(c.outer+"-"+c.inner, []string{c.x, c.y, c.z}, expected.String())
	}
	for _, c := range binaryCombine {
		inner := e.mustUnary(c.inner, literal.MustParse(c.x))
		expected := e.mustBinary(c.outer, inner, literal.MustParse(c.y))
		e.emitInvoke(c.outer+"-"+c.inner, []string{c.x, c.y}, expected.String())
	}
	e.line("")
}

// mustBinary runs a binary op whose operands are known finite values, so
// the outcome is always concrete.
func (e *emitter) mustBinary(op string, a, b literal.Literal) literal.Literal {
	r, err := e.orc.BinaryOp(oracle.Op(op), a, b)
	if err != nil {
		panic(err)
	}
	return r.(oracle.Concrete).Lit
}

func (e *emitter) mustUnary(op string, v literal.Literal) literal.Literal {
	r, err := e.orc.UnaryOp(oracle.Op(op), v)
	if err != nil {
		panic(err)
	}
	return r.(oracle.Concrete).Lit
}

// emitInvoke renders an assert_return over an exported combination
// function with splatted arguments.
func (e *emitter) emitInvoke(name string, args []string, expected string) {
	head := fmt.Sprintf("(assert_return (invoke %q ", name)
	pad := strings.Repeat(" ", len(head))
	for i, a := range args {
		s := vconst(e.sp.Lane, a)
		switch {
		case i == 0:
			e.line(head + s)
		case i == len(args)-1:
			e.line(pad + s + ")")
		default:
			e.line(pad + s)
		}
	}
	e.line(pad + vconst(e.sp.Lane, expected) + ")")
	e.cases++
}
