package oracle

// Op names one lane-wise operation. The operation set is fixed and closed;
// an Op outside it is a programming error, reported as UnknownOpError.
type Op string

// Unary operations.
const (
	OpNeg  Op = "neg"
	OpSqrt Op = "sqrt"
	OpAbs  Op = "abs"
)

// Binary arithmetic operations.
const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
)

// Binary min/max operations. These follow the canonical-NaN-dominates
// policy, not the arithmetic one.
const (
	OpMin Op = "min"
	OpMax Op = "max"
)

// Comparison operations. Results are lane-mask integers: -1 for true,
// 0 for false.
const (
	OpEq Op = "eq"
	OpNe Op = "ne"
	OpLt Op = "lt"
	OpLe Op = "le"
	OpGt Op = "gt"
	OpGe Op = "ge"
)

// IsComparison reports whether op yields a lane mask rather than a float.
func (op Op) IsComparison() bool {
	switch op {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return true
	}
	return false
}
