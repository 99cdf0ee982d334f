package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplete(t *testing.T) {
	t.Parallel()

	tr := New()
	for _, w := range []string{"pair", "pairs", "swap", "snd", "fst", "pair", "triple", "ζeta"} {
		tr.Insert(w)
	}

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{name: "shared prefix", prefix: "pa", want: []string{"pair", "pairs"}},
		{name: "exact word is included", prefix: "pair", want: []string{"pair", "pairs"}},
		{name: "single branch", prefix: "sw", want: []string{"swap"}},
		{name: "siblings are sorted", prefix: "s", want: []string{"snd", "swap"}},
		{name: "unknown prefix", prefix: "q", want: nil},
		{name: "longer than any word", prefix: "pairsx", want: nil},
		{name: "unicode", prefix: "ζ", want: []string{"ζeta"}},
		{
			name:   "empty prefix lists everything",
			prefix: "",
			want:   []string{"fst", "pair", "pairs", "snd", "swap", "triple", "ζeta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.Complete(tt.prefix))
		})
	}
}

func TestInsertCountsDistinctWords(t *testing.T) {
	t.Parallel()

	tr := New()
	assert.Equal(t, 0, tr.Len())

	tr.Insert("pair")
	tr.Insert("pair")
	tr.Insert("pa")
	tr.Insert("")

	assert.Equal(t, 2, tr.Len())
	assert.True(t, tr.Contains("pa"))
	assert.True(t, tr.Contains("pair"))
	assert.False(t, tr.Contains("pai"))
	assert.False(t, tr.Contains(""))
}
