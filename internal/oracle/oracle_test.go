package oracle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lanegen/internal/literal"
)

func TestNew_ValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero value", Config{}},
		{"missing precision", Config{MaxFinite: 1}},
		{"zero max", Config{Precision: Single}},
		{"negative max", Config{Precision: Double, MaxFinite: -1}},
		{"infinite max", Config{Precision: Double, MaxFinite: math.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.Error(t, err)

			var ce *ConfigError
			assert.ErrorAs(t, err, &ce)
		})
	}

	_, err := New(F32())
	require.NoError(t, err)
	_, err = New(F64())
	require.NoError(t, err)
}

func TestUnknownOperations(t *testing.T) {
	o := newF32(t)
	one := literal.MustParse("1.0")

	_, err := o.BinaryOp("frobnicate", one, one)
	require.Error(t, err)
	require.True(t, IsUnknownOp(err))

	var ue *UnknownOpError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 2, ue.Arity)

	// A real operation at the wrong arity is just as much a caller bug.
	_, err = o.UnaryOp(OpAdd, one)
	require.True(t, IsUnknownOp(err))
	_, err = o.BinaryOp(OpNeg, one, one)
	require.True(t, IsUnknownOp(err))
}

func TestOracle_IsDeterministic(t *testing.T) {
	// Identical queries return identical classifications, every call.
	o := newF32(t)
	a := literal.MustParse("0x1.921fb6p+2")
	b := literal.MustParse("0x1p-149")

	first, err := o.BinaryOp(OpDiv, a, b)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := o.BinaryOp(OpDiv, a, b)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestOpIsComparison(t *testing.T) {
	for _, op := range []Op{OpEq, OpNe, OpLt, OpLe, OpGt, OpGe} {
		assert.True(t, op.IsComparison(), string(op))
	}
	for _, op := range []Op{OpNeg, OpSqrt, OpAbs, OpAdd, OpSub, OpMul, OpDiv, OpMin, OpMax} {
		assert.False(t, op.IsComparison(), string(op))
	}
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "canonical-nan", String(CanonicalNaN{}))
	assert.Equal(t, "arithmetic-nan", String(ArithmeticNaN{}))
	assert.Equal(t, "1.5", String(Concrete{Lit: literal.MustParse("1.5")}))
}
