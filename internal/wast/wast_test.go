package wast

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lanegen/internal/suite"
)

func tinyCmpSpec() suite.Spec {
	return suite.Spec{
		Name:      "tiny_cmp",
		Lane:      "f32x4",
		Family:    suite.FamilyCmp,
		MaxFinite: "0x1.fffffep+127",
		BinaryOps: []string{"eq"},
		Floats:    []string{"0.0"},
	}
}

func TestRenderGolden(t *testing.T) {
	f, err := Render(tinyCmpSpec())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "f32x4_eq_zero", f.Content)
}

func TestRenderCmpLayout(t *testing.T) {
	sp := tinyCmpSpec()
	sp.BinaryOps = []string{"eq", "ne"}
	sp.Floats = []string{"0.0", "1.0"}
	sp.NaNs = []string{"nan"}

	f, err := Render(sp)
	require.NoError(t, err)
	content := string(f.Content)

	// 2x2 float pairs, 1 NaN against 2 floats in both orders, NaN vs NaN.
	assert.Equal(t, 2*(4+4+1), f.Cases)

	assert.Contains(t, content,
		`  (func (export "f32x4.eq") (param v128 v128) (result v128) (f32x4.eq (local.get 0) (local.get 1)))`)

	// Comparison results land in the integer mask shape.
	assert.Contains(t, content, "(v128.const i32x4 -1 -1 -1 -1))")
	assert.Contains(t, content, "(v128.const i32x4 0 0 0 0))")

	// NaN operands compare unequal, so ne is the only op returning all-ones.
	eqNaN := `(assert_return (invoke "f32x4.eq" (v128.const f32x4 nan nan nan nan)
                                  (v128.const f32x4 0.0 0.0 0.0 0.0))
                                  (v128.const i32x4 0 0 0 0))`
	assert.Contains(t, content, eqNaN)
	neNaN := `(assert_return (invoke "f32x4.ne" (v128.const f32x4 nan nan nan nan)
                                  (v128.const f32x4 0.0 0.0 0.0 0.0))
                                  (v128.const i32x4 -1 -1 -1 -1))`
	assert.Contains(t, content, neNaN)
}

func TestRenderArithSpecials(t *testing.T) {
	sp := suite.Spec{
		Name:      "tiny_arith",
		Lane:      "f32x4",
		Family:    suite.FamilyArith,
		MaxFinite: "0x1.fffffep+127",
		UnaryOps:  []string{"neg", "sqrt"},
		BinaryOps: []string{"add", "sub", "mul", "div"},
		Floats:    []string{"0x0p+0", "-0x0p+0", "inf", "-inf"},
		NaNs:      []string{"nan", "nan:0x200000"},
	}
	f, err := Render(sp)
	require.NoError(t, err)
	content := string(f.Content)

	// Opposite-signed infinities cancel into an arithmetic NaN.
	assert.Contains(t, content,
		`(assert_return_arithmetic_nan_f32x4 (invoke "f32x4.add" (v128.const f32x4 inf inf inf inf)
                                                        (v128.const f32x4 -inf -inf -inf -inf)))`)

	// A quiet NaN operand yields the canonical form, a payload NaN keeps
	// the arithmetic classification.
	assert.Contains(t, content,
		`(assert_return_canonical_nan_f32x4 (invoke "f32x4.add" (v128.const f32x4 nan nan nan nan)`)
	assert.Contains(t, content,
		`(assert_return_arithmetic_nan_f32x4 (invoke "f32x4.add" (v128.const f32x4 nan:0x200000 nan:0x200000 nan:0x200000 nan:0x200000)`)

	// Square root of a negative value is an arithmetic NaN.
	assert.Contains(t, content,
		`(assert_return_arithmetic_nan_f32x4 (invoke "f32x4.sqrt" (v128.const f32x4 -inf -inf -inf -inf)))`)
}

func TestRenderCombines(t *testing.T) {
	sp := suite.Spec{
		Name:      "tiny_arith",
		Lane:      "f32x4",
		Family:    suite.FamilyArith,
		MaxFinite: "0x1.fffffep+127",
		BinaryOps: []string{"add"},
		Floats:    []string{"1.0"},
	}
	f, err := Render(sp)
	require.NoError(t, err)
	content := string(f.Content)

	assert.Contains(t, content,
		`  (func (export "add-sub") (param v128 v128 v128) (result v128)`)
	assert.Contains(t, content,
		`    (f32x4.add (f32x4.sub (local.get 0) (local.get 1)) (local.get 2)))`)
	assert.Contains(t, content,
		`  (func (export "add-neg") (param v128 v128) (result v128)`)
	assert.Contains(t, content,
		`    (f32x4.add (f32x4.neg (local.get 0)) (local.get 1)))`)

	// add(sub(1.125, 0.25), 0.125) composes to 1.0 through the oracle.
	assert.Contains(t, content, `(assert_return (invoke "add-sub" (v128.const f32x4 1.125 1.125 1.125 1.125)
                                 (v128.const f32x4 0.25 0.25 0.25 0.25)
                                 (v128.const f32x4 0.125 0.125 0.125 0.125))
                                 (v128.const f32x4 1.0 1.0 1.0 1.0))`)

	// add(neg(1.125), 0.125) is -1.0.
	assert.Contains(t, content, `(assert_return (invoke "add-neg" (v128.const f32x4 1.125 1.125 1.125 1.125)
                                 (v128.const f32x4 0.125 0.125 0.125 0.125))
                                 (v128.const f32x4 -1.0 -1.0 -1.0 -1.0))`)
}

func TestRenderMixedNaNLanes(t *testing.T) {
	sp := suite.Spec{
		Name:      "tiny_arith",
		Lane:      "f32x4",
		Family:    suite.FamilyArith,
		MaxFinite: "0x1.fffffep+127",
		BinaryOps: []string{"add"},
		Floats:    []string{"1.0"},
	}
	f, err := Render(sp)
	require.NoError(t, err)
	content := string(f.Content)

	assert.Contains(t, content, ";; Mixed f32x4 tests when some lanes are NaNs")
	assert.Contains(t, content, `  (func $f32x4_sqrt_canon (result v128)
    (f32x4.sqrt (v128.const f32x4 nan -nan 4.0 9.0)))`)
	assert.Contains(t, content, `  (func (export "f32x4_extract_lane_canon_0") (result f32)
    (f32x4.extract_lane 0 (call $f32x4_sqrt_canon)))`)

	assert.Contains(t, content, `(assert_return_canonical_nan (invoke "f32x4_extract_lane_canon_0"))`)
	assert.Contains(t, content, `(assert_return (invoke "f32x4_extract_lane_canon_2") (f32.const 2.0))`)
	assert.Contains(t, content, `(assert_return_arithmetic_nan (invoke "f32x4_extract_lane_arith_1"))`)
	assert.Contains(t, content, `(assert_return (invoke "f32x4_extract_lane_arith_3") (f32.const 5.0))`)
	assert.Contains(t, content, `(assert_return_canonical_nan (invoke "f32x4_extract_lane_mixed_0"))`)
	assert.Contains(t, content, `(assert_return_arithmetic_nan (invoke "f32x4_extract_lane_mixed_1"))`)
}

func TestRenderF64x2Shapes(t *testing.T) {
	sp := suite.Spec{
		Name:      "tiny_f64",
		Lane:      "f64x2",
		Family:    suite.FamilyArith,
		MaxFinite: "0x1.fffffffffffffp+1023",
		BinaryOps: []string{"add"},
		Floats:    []string{"1.0"},
	}
	f, err := Render(sp)
	require.NoError(t, err)
	content := string(f.Content)

	// Two lanes per vector, f64 scalar extracts.
	assert.Contains(t, content, "(v128.const f64x2 1.0 1.0)")
	assert.Contains(t, content, `  (func (export "f64x2_extract_lane_canon_1") (result f64)`)
	assert.Contains(t, content, `(assert_return (invoke "f64x2_extract_lane_arith_1") (f64.const 4.0))`)
	assert.NotContains(t, content, "f32x4")
}

func TestRenderBuiltinSuites(t *testing.T) {
	specs, err := suite.Builtin()
	require.NoError(t, err)
	require.NotEmpty(t, specs)

	for _, sp := range specs {
		f, err := Render(sp)
		require.NoError(t, err, sp.Name)
		assert.Equal(t, sp.Name, f.Name)
		assert.Greater(t, f.Cases, 0, sp.Name)
		assert.True(t, strings.HasPrefix(string(f.Content), ";; Tests for "), sp.Name)
	}
}
