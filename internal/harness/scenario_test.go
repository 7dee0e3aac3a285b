package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "f32x4_smoke.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "f32x4_smoke", s.Name)
	assert.Equal(t, "f32x4", s.Lane)
	require.Len(t, s.Cases, 3)

	assert.Equal(t, "add", s.Cases[0].Op)
	assert.Equal(t, []string{"1.0", "2.0"}, s.Cases[0].Args)
	require.NotNil(t, s.Cases[0].Expect)
	assert.Equal(t, "3.0", s.Cases[0].Expect.Value)
	assert.Equal(t, ExpectCanonicalNaN, s.Cases[1].Expect.Kind)
	assert.Equal(t, ExpectArithmeticNaN, s.Cases[2].Expect.Kind)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join("testdata", "does_not_exist.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenarioErrors(t *testing.T) {
	valid := `
name: s
description: d
lane: f32x4
cases:
  - op: add
    args: ["1.0", "2.0"]
`
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "valid",
			yaml:    valid,
			wantErr: "",
		},
		{
			name: "missing name",
			yaml: `
description: d
lane: f32x4
cases:
  - op: add
    args: ["1.0", "2.0"]
`,
			wantErr: "name is required",
		},
		{
			name: "bad lane",
			yaml: `
name: s
description: d
lane: f16x8
cases:
  - op: add
    args: ["1.0", "2.0"]
`,
			wantErr: "lane must be f32x4 or f64x2",
		},
		{
			name: "empty cases",
			yaml: `
name: s
description: d
lane: f32x4
cases: []
`,
			wantErr: "cases list is required",
		},
		{
			name: "missing op",
			yaml: `
name: s
description: d
lane: f32x4
cases:
  - args: ["1.0"]
`,
			wantErr: "cases[0]: op is required",
		},
		{
			name: "too many args",
			yaml: `
name: s
description: d
lane: f32x4
cases:
  - op: add
    args: ["1.0", "2.0", "3.0"]
`,
			wantErr: "one or two operands",
		},
		{
			name: "unknown expect kind",
			yaml: `
name: s
description: d
lane: f32x4
cases:
  - op: add
    args: ["1.0", "2.0"]
    expect:
      kind: quiet-nan
`,
			wantErr: `unknown kind "quiet-nan"`,
		},
		{
			name: "value with nan kind",
			yaml: `
name: s
description: d
lane: f32x4
cases:
  - op: add
    args: ["nan", "1.0"]
    expect:
      kind: canonical-nan
      value: "1.0"
`,
			wantErr: "value is not allowed",
		},
		{
			name: "unknown field typo",
			yaml: `
name: s
description: d
lane: f32x4
case:
  - op: add
    args: ["1.0", "2.0"]
`,
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
