package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalValue(t *testing.T) {
	stdout, _, err := execute(t, "eval", "--lane", "f32x4", "add", "1.0", "2.0")
	require.NoError(t, err)
	assert.Equal(t, "3.0\n", stdout)
}

func TestEvalDoublePrecision(t *testing.T) {
	stdout, _, err := execute(t, "eval", "--lane", "f64x2", "div", "1.0", "3.0")
	require.NoError(t, err)
	assert.Equal(t, "0.3333333333333333\n", stdout)
}

func TestEvalNaNOutcomes(t *testing.T) {
	stdout, _, err := execute(t, "eval", "sqrt", "--", "-1.0")
	require.NoError(t, err)
	assert.Equal(t, "arithmetic-nan\n", stdout)

	stdout, _, err = execute(t, "eval", "add", "nan", "1.0")
	require.NoError(t, err)
	assert.Equal(t, "canonical-nan\n", stdout)
}

func TestEvalJSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "eval", "mul", "0x1p+127", "2.0")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "value", data["outcome"])
	assert.Equal(t, "inf", data["value"])
}

func TestEvalErrors(t *testing.T) {
	_, _, err := execute(t, "eval", "--lane", "f16x8", "add", "1.0", "2.0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "eval", "frob", "1.0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "eval", "add", "wat", "1.0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
