package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lanegen/internal/literal"
)

func newF32(t *testing.T) *Oracle {
	t.Helper()
	o, err := New(F32())
	require.NoError(t, err)
	return o
}

func newF64(t *testing.T) *Oracle {
	t.Helper()
	o, err := New(F64())
	require.NoError(t, err)
	return o
}

// binf32 runs a binary op on the f32 oracle over parsed literals.
func binf32(t *testing.T, op Op, a, b string) Result {
	t.Helper()
	r, err := newF32(t).BinaryOp(op, literal.MustParse(a), literal.MustParse(b))
	require.NoError(t, err)
	return r
}

func requireConcrete(t *testing.T, r Result, want string) {
	t.Helper()
	c, ok := r.(Concrete)
	require.True(t, ok, "expected Concrete, got %T", r)
	require.Equal(t, want, c.Lit.String())
}

func TestArith_InfinitySpecialCases(t *testing.T) {
	tests := []struct {
		name   string
		op     Op
		a, b   string
		result Result
	}{
		{"add opposite infinities", OpAdd, "inf", "-inf", ArithmeticNaN{}},
		{"add opposite infinities reversed", OpAdd, "-inf", "inf", ArithmeticNaN{}},
		{"add same infinities", OpAdd, "inf", "inf", Concrete{Lit: literal.Infinity{}}},
		{"add negative infinities", OpAdd, "-inf", "-inf", Concrete{Lit: literal.Infinity{Neg: true}}},
		{"sub same infinities", OpSub, "inf", "inf", ArithmeticNaN{}},
		{"sub negative infinities", OpSub, "-inf", "-inf", ArithmeticNaN{}},
		{"sub opposite infinities", OpSub, "inf", "-inf", Concrete{Lit: literal.Infinity{}}},
		{"sub opposite infinities reversed", OpSub, "-inf", "inf", Concrete{Lit: literal.Infinity{Neg: true}}},
		{"mul zero by infinity", OpMul, "0x0p+0", "inf", ArithmeticNaN{}},
		{"mul negative zero by infinity", OpMul, "-0x0p+0", "inf", ArithmeticNaN{}},
		{"mul infinity by zero", OpMul, "-inf", "0x0p+0", ArithmeticNaN{}},
		{"mul infinities", OpMul, "inf", "inf", Concrete{Lit: literal.Infinity{}}},
		{"mul opposite infinities", OpMul, "inf", "-inf", Concrete{Lit: literal.Infinity{Neg: true}}},
		{"div zero by zero", OpDiv, "0x0p+0", "0x0p+0", ArithmeticNaN{}},
		{"div signed zeros", OpDiv, "-0x0p+0", "0x0p+0", ArithmeticNaN{}},
		{"div decimal zeros", OpDiv, "0.0", "-0.0", ArithmeticNaN{}},
		{"div infinities", OpDiv, "inf", "inf", ArithmeticNaN{}},
		{"div opposite infinities", OpDiv, "-inf", "inf", ArithmeticNaN{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.result, binf32(t, tt.op, tt.a, tt.b))
		})
	}
}

func TestArith_DivideByZeroSign(t *testing.T) {
	// Nonzero dividend over zero: signed infinity, sign = XOR of the
	// parsed sign fields.
	tests := []struct {
		a, b, want string
	}{
		{"1.0", "0.0", "inf"},
		{"-1.0", "0.0", "-inf"},
		{"1.0", "-0.0", "-inf"},
		{"-1.0", "-0.0", "inf"},
		{"0x1p-149", "-0x0p+0", "-inf"},
		{"inf", "0.0", "inf"},
		{"-inf", "0.0", "-inf"},
		{"inf", "-0.0", "-inf"},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			requireConcrete(t, binf32(t, OpDiv, tt.a, tt.b), tt.want)
		})
	}
}

func TestArith_NaNPropagation(t *testing.T) {
	tests := []struct {
		name   string
		op     Op
		a, b   string
		result Result
	}{
		{"canonical left", OpAdd, "nan", "1.0", CanonicalNaN{}},
		{"canonical right", OpSub, "1.0", "-nan", CanonicalNaN{}},
		{"canonical with infinity", OpMul, "-nan", "-inf", CanonicalNaN{}},
		{"payload left", OpAdd, "nan:0x200000", "1.0", ArithmeticNaN{}},
		{"payload right", OpDiv, "1.0", "-nan:0x200000", ArithmeticNaN{}},
		{"payload dominates canonical", OpAdd, "nan", "nan:0x200000", ArithmeticNaN{}},
		{"payload dominates reversed", OpAdd, "nan:0x200000", "nan", ArithmeticNaN{}},
		{"both canonical", OpMul, "nan", "-nan", CanonicalNaN{}},
		{"both payload", OpDiv, "nan:0x200000", "-nan:0x200000", ArithmeticNaN{}},
		{"NaN beats zero-times-infinity table", OpMul, "nan", "inf", CanonicalNaN{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.result, binf32(t, tt.op, tt.a, tt.b))
		})
	}
}

func TestArith_OrdinaryResults(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		a, b string
		want string
	}{
		{"decimal add", OpAdd, "1.125", "0.25", "1.375"},
		{"hex add renders hex", OpAdd, "0x1p-1", "0x1p-1", "0x1.0000000000000p+0"},
		{"mixed dialect renders hex", OpAdd, "0x1p-1", "0.5", "0x1.0000000000000p+0"},
		{"sub to zero is positive", OpSub, "1.0", "1.0", "0.0"},
		{"sub signed zero", OpSub, "0.0", "0.0", "0.0"},
		{"mul", OpMul, "1.5", "0.25", "0.375"},
		{"div", OpDiv, "1.125", "0.25", "4.5"},
		{"div by infinity", OpDiv, "1.0", "inf", "0.0"},
		{"div by negative infinity", OpDiv, "1.0", "-inf", "-0.0"},
		{"finite plus infinity", OpAdd, "1.0", "-inf", "-inf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireConcrete(t, binf32(t, tt.op, tt.a, tt.b), tt.want)
		})
	}
}

func TestArith_SinglePrecisionRoundsOperands(t *testing.T) {
	// 123456789.0123456789 is not representable in 32 bits; it rounds to
	// 123456792 before the add, so the single-precision sum is 246913584,
	// not the double sum 246913578.024... truncated afterwards.
	requireConcrete(t,
		binf32(t, OpAdd, "0123456789.0123456789", "0123456789.0123456789"),
		"246913584.0")

	// The same query at double precision keeps the extra digits.
	r, err := newF64(t).BinaryOp(OpAdd,
		literal.MustParse("0123456789.0123456789"),
		literal.MustParse("0123456789.0123456789"))
	require.NoError(t, err)
	c, ok := r.(Concrete)
	require.True(t, ok)
	assert.Equal(t, 2*123456789.0123456789, c.Lit.(literal.Finite).Float())
}

func TestArith_TinyOperandsFlushToZeroAtSingle(t *testing.T) {
	// 1e-50 is far below the smallest single-precision subnormal, so the
	// operand rounds to zero before the operation and the zero rows of
	// the special-case tables apply.
	tests := []struct {
		name   string
		op     Op
		a, b   string
		result Result
	}{
		{"flushed zero times infinity", OpMul, "1e-50", "inf", ArithmeticNaN{}},
		{"infinity times flushed zero", OpMul, "-inf", "1e-50", ArithmeticNaN{}},
		{"flushed zero over flushed zero", OpDiv, "1e-50", "1e-50", ArithmeticNaN{}},
		{"flushed zero over exact zero", OpDiv, "1e-50", "0.0", ArithmeticNaN{}},
		{"overflowed operand plus opposite infinity", OpAdd, "1e40", "-inf", ArithmeticNaN{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.result, binf32(t, tt.op, tt.a, tt.b))
		})
	}

	t.Run("nonzero over flushed zero is signed infinity", func(t *testing.T) {
		requireConcrete(t, binf32(t, OpDiv, "1.0", "1e-50"), "inf")
		requireConcrete(t, binf32(t, OpDiv, "-1.0", "1e-50"), "-inf")
		requireConcrete(t, binf32(t, OpDiv, "1.0", "-1e-50"), "-inf")
	})

	t.Run("same operands stay ordinary at double precision", func(t *testing.T) {
		o := newF64(t)

		r, err := o.BinaryOp(OpMul,
			literal.MustParse("1e-50"), literal.MustParse("inf"))
		require.NoError(t, err)
		requireConcrete(t, r, "inf")

		r, err = o.BinaryOp(OpDiv,
			literal.MustParse("1e-50"), literal.MustParse("1e-50"))
		require.NoError(t, err)
		requireConcrete(t, r, "1.0")
	})
}

func TestArith_OverflowSaturatesToInfinity(t *testing.T) {
	t.Run("single precision overflow", func(t *testing.T) {
		requireConcrete(t, binf32(t, OpMul, "0x1.fffffep+127", "0x1.fffffep+127"), "inf")
		requireConcrete(t, binf32(t, OpMul, "-0x1.fffffep+127", "0x1.fffffep+127"), "-inf")
		requireConcrete(t, binf32(t, OpAdd, "0x1.fffffep+127", "0x1.fffffep+127"), "inf")
	})

	t.Run("clamp against a narrower max at double precision", func(t *testing.T) {
		// A 64-bit computation over a 32-bit lane maximum: the product is a
		// perfectly finite double, but past the lane's range, so it must
		// render as signed infinity.
		o, err := New(Config{Precision: Double, MaxFinite: 0x1.fffffep+127})
		require.NoError(t, err)

		r, err := o.BinaryOp(OpMul,
			literal.MustParse("0x1.fffffep+127"), literal.MustParse("0x1p+1"))
		require.NoError(t, err)
		requireConcrete(t, r, "inf")

		r, err = o.BinaryOp(OpMul,
			literal.MustParse("0x1.fffffep+127"), literal.MustParse("-0x1p+1"))
		require.NoError(t, err)
		requireConcrete(t, r, "-inf")
	})

	t.Run("max finite itself is not clamped", func(t *testing.T) {
		requireConcrete(t, binf32(t, OpAdd, "0x1.fffffep+127", "0x0p+0"),
			"0x1.fffffe0000000p+127")
	})
}
