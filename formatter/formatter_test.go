package formatter

import (
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnolang/gym/internal/types"
	"github.com/gnolang/gym/rewrite"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestFormatResults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		results []tt.Result
		want    string
	}{
		{
			name: "rewritten",
			results: []tt.Result{
				{
					Filename: "pairs.gym",
					Line:     1,
					Status:   tt.StatusRewritten,
					Rule:     "swap",
					Input:    "pair(x, y)",
					Output:   "pair(y, x)",
					Trace:    []string{"pair(y, x)"},
				},
			},
			want: `rewrite: swap
 --> pairs.gym:1
  |
1 | pair(x, y)
  = pair(y, x)

`,
		},
		{
			name: "several steps",
			results: []tt.Result{
				{
					Filename: "pairs.gym",
					Line:     12,
					Status:   tt.StatusRewritten,
					Rule:     "swap",
					Input:    "pair(x, y)",
					Output:   "pair(x, y)",
					Trace:    []string{"pair(y, x)", "pair(x, y)"},
				},
			},
			want: `rewrite: swap
  --> pairs.gym:12
   |
12 | pair(x, y)
   = pair(y, x)
   = pair(x, y)

`,
		},
		{
			name: "no match",
			results: []tt.Result{
				{
					Filename: "pairs.gym",
					Line:     5,
					Status:   tt.StatusNoMatch,
					Rule:     "fst",
					Input:    "triple(x, y, z)",
				},
			},
			want: `warning: no-match
 --> pairs.gym:5
  |
5 | triple(x, y, z)
  = does not match rule fst

`,
		},
		{
			name: "parse error",
			results: []tt.Result{
				{
					Filename: "pairs.gym",
					Line:     1,
					Column:   5,
					Status:   tt.StatusError,
					Input:    "pair(x, y",
					Error:    "unbalanced '(': missing ')'",
				},
			},
			want: `error: parse-error
 --> pairs.gym:1:5
  |
1 | pair(x, y
  |     ^
  = unbalanced '(': missing ')'

`,
		},
		{
			name: "parse error after tab",
			results: []tt.Result{
				{
					Line:   2,
					Column: 2,
					Status: tt.StatusError,
					Input:  "\t)",
					Error:  "unbalanced ')'",
				},
			},
			want: "error: parse-error\n" +
				" --> <input>:2:2\n" +
				"  |\n" +
				"2 |         )\n" +
				"  |         ^\n" +
				"  = unbalanced ')'\n\n",
		},
		{
			name: "rewrite error without column",
			results: []tt.Result{
				{
					Filename: "pairs.gym",
					Line:     3,
					Status:   tt.StatusError,
					Input:    "pair(x, y)",
					Error:    "no rule in effect; define one in the file or select one with --rule",
				},
			},
			want: `error: rewrite-error
 --> pairs.gym:3
  |
3 | pair(x, y)
  = no rule in effect; define one in the file or select one with --rule

`,
		},
		{
			name:    "nothing",
			results: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatResults(tt.results))
		})
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	source := "swap(pair(a, b)) => pair(b, a)\npair(x, ?)"
	_, err := rewrite.Parse(source)
	require.Error(t, err)

	want := `error: parse-error
 --> <input>:2:9
  |
2 | pair(x, ?)
  |         ^
  = unexpected character '?'

`
	assert.Equal(t, want, FormatError(source, err))

	_, err = rewrite.Parse("pair(x, y")
	require.Error(t, err)
	assert.Equal(t, `error: parse-error
 --> <input>:1:5
  |
1 | pair(x, y
  |     ^
  = unbalanced '(': missing ')'

`, FormatError("pair(x, y", err))

	assert.Equal(t, "error: boom\n", FormatError("", errors.New("boom")))
}

func TestSummary(t *testing.T) {
	t.Parallel()
	results := []tt.Result{
		{Status: tt.StatusRewritten},
		{Status: tt.StatusRewritten},
		{Status: tt.StatusNoMatch},
		{Status: tt.StatusError},
	}
	assert.Equal(t, "2 rewritten, 1 no-match, 1 errors", Summary(results))
	assert.Equal(t, "0 rewritten, 0 no-match, 0 errors", Summary(nil))
}

func TestCalculateVisualColumn(t *testing.T) {
	t.Parallel()
	tests := []struct {
		line   string
		column int
		want   int
	}{
		{"pair(x)", 1, 0},
		{"pair(x)", 5, 4},
		{"\tx", 2, 8},
		{"ab\tx", 4, 8},
		{"ζ(x)", 2, 1},
		{"x", 0, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, calculateVisualColumn(tc.line, tc.column), "%q col %d", tc.line, tc.column)
	}
}
