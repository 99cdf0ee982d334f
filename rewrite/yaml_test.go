package rewrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantRules   []RuleSpec
		wantErr     bool
	}{
		{
			name: "valid rules",
			yamlContent: `
rules:
  - name: swap
    rule: "swap(pair(a, b)) => pair(b, a)"
    description: exchange the components of a pair
  - rule: "fst(pair(a, b)) => a"
`,
			wantRules: []RuleSpec{
				{
					Name:        "swap",
					Rule:        "swap(pair(a, b)) => pair(b, a)",
					Description: "exchange the components of a pair",
				},
				{
					Rule: "fst(pair(a, b)) => a",
				},
			},
			wantErr: false,
		},
		{
			name: "invalid yaml",
			yamlContent: `
rules:
  - name: missing colon
    rule "swap(a) => a"
`,
			wantRules: nil,
			wantErr:   true,
		},
		{
			name:        "no rules",
			yamlContent: "name: empty\n",
			wantRules:   nil,
			wantErr:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "rules.yaml")
			require.NoError(t, os.WriteFile(tmpFile, []byte(tt.yamlContent), 0o644))

			rules, err := LoadRules(tmpFile)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRules, rules)
		})
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLibrary(t *testing.T) {
	t.Parallel()
	lib, err := NewLibrary([]RuleSpec{
		{Name: "swap", Rule: "swap(pair(a, b)) => pair(b, a)"},
		{Rule: "fst(pair(a, b)) => a"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"swap", "fst"}, lib.Names())
	assert.Equal(t, 2, lib.Len())

	swap, ok := lib.Lookup("swap")
	require.True(t, ok)
	assert.Equal(t, "swap(pair(a, b)) => pair(b, a)", swap.String())

	_, ok = lib.Lookup("snd")
	assert.False(t, ok)
}

func TestNewLibraryErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		specs   []RuleSpec
		wantErr string
	}{
		{
			name:    "not a rule",
			specs:   []RuleSpec{{Rule: "pair(a, b)"}},
			wantErr: `rule #1: "pair(a, b)" is not a rule (expected name(pattern) => template)`,
		},
		{
			name:    "syntax error",
			specs:   []RuleSpec{{Rule: "swap(pair(a, b) => pair(b, a)"}},
			wantErr: `rule #1: parsing "swap(pair(a, b) => pair(b, a)": line 1 col 17: unexpected '=>' inside argument list`,
		},
		{
			name:    "name mismatch",
			specs:   []RuleSpec{{Name: "flip", Rule: "swap(pair(a, b)) => pair(b, a)"}},
			wantErr: `rule #1: rule declared as "flip" is named "swap" in its text`,
		},
		{
			name: "duplicate",
			specs: []RuleSpec{
				{Rule: "swap(pair(a, b)) => pair(b, a)"},
				{Rule: "swap(pair(a, b)) => pair(a, b)"},
			},
			wantErr: `duplicate rule "swap"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lib, err := NewLibrary(tt.specs)
			assert.Nil(t, lib)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestNilLibrary(t *testing.T) {
	t.Parallel()
	var lib *Library
	_, ok := lib.Lookup("swap")
	assert.False(t, ok)
	assert.Equal(t, 0, lib.Len())
	assert.Nil(t, lib.Names())
}
