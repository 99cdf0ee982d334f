package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{name: "symbol", expr: Symbol("x"), want: "x"},
		{name: "named", expr: Named("pair", Symbol("a"), Symbol("b")), want: "pair(a, b)"},
		{
			name: "nested",
			expr: Named("f", Named("g", Symbol("a")), Symbol("b"), Named("h", Symbol("c"))),
			want: "f(g(a), b, h(c))",
		},
		{
			name: "rule",
			expr: NewRule("swap",
				Named("pair", Symbol("a"), Symbol("b")),
				Named("pair", Symbol("b"), Symbol("a")),
			),
			want: "swap(pair(a, b)) => pair(b, a)",
		},
		{name: "nil", expr: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Render(tt.expr))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	exprs := []Expr{
		Symbol("x"),
		Symbol("CamelCase"),
		Named("pair", Symbol("x"), Symbol("y")),
		Named("f", Named("g", Named("h", Symbol("a"))), Symbol("b")),
		Named("list", Symbol("a"), Symbol("a"), Symbol("a"), Symbol("a")),
		NewRule("swap",
			Named("pair", Symbol("a"), Symbol("b")),
			Named("pair", Symbol("b"), Symbol("a")),
		),
		NewRule("id", Symbol("x"), Symbol("x")),
	}

	for _, e := range exprs {
		e := e
		t.Run(Render(e), func(t *testing.T) {
			t.Parallel()
			parsed, err := Parse(Render(e))
			require.NoError(t, err)
			assert.True(t, Equal(e, parsed), "round trip of %s produced %s", e, parsed)
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()
	swap := NewRule("swap", Named("pair", Symbol("a"), Symbol("b")), Named("pair", Symbol("b"), Symbol("a")))

	tests := []struct {
		name string
		a, b Expr
		want bool
	}{
		{name: "same symbol", a: Symbol("a"), b: Symbol("a"), want: true},
		{name: "different symbol", a: Symbol("a"), b: Symbol("b"), want: false},
		{name: "symbol vs named", a: Symbol("f"), b: Named("f", Symbol("a")), want: false},
		{name: "same named", a: Named("f", Symbol("a")), b: Named("f", Symbol("a")), want: true},
		{name: "different name", a: Named("f", Symbol("a")), b: Named("g", Symbol("a")), want: false},
		{name: "different arity", a: Named("f", Symbol("a")), b: Named("f", Symbol("a"), Symbol("b")), want: false},
		{name: "argument order matters", a: Named("f", Symbol("a"), Symbol("b")), b: Named("f", Symbol("b"), Symbol("a")), want: false},
		{name: "same rule", a: swap, b: Clone(swap), want: true},
		{name: "rule with other name", a: swap, b: NewRule("flip", swap.Head, swap.Body), want: false},
		{name: "rule with other body", a: swap, b: NewRule("swap", swap.Head, swap.Head), want: false},
		{name: "rule vs its head", a: swap, b: swap.Head, want: false},
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "nil vs symbol", a: nil, b: Symbol("a"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestCloneSharesNoStorage(t *testing.T) {
	t.Parallel()
	orig := Named("f", Named("g", Symbol("a")), Symbol("b"))

	copied := Clone(orig).(*NamedExpr)
	require.True(t, Equal(orig, copied))

	copied.Args[0].(*NamedExpr).Args[0] = Symbol("z")
	copied.Args[1] = Symbol("y")

	assert.Equal(t, "f(g(a), b)", orig.String())
	assert.Equal(t, "f(g(z), y)", copied.String())
}

func TestNamedCopiesArguments(t *testing.T) {
	t.Parallel()
	args := []Expr{Symbol("a"), Symbol("b")}
	n := Named("pair", args...)
	args[0] = Symbol("z")

	assert.Equal(t, "pair(a, b)", n.String())
	assert.Equal(t, 2, n.Arity())
}

func TestUnboundSymbols(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		rule string
		want []string
	}{
		{name: "all bound", rule: "swap(pair(a, b)) => pair(b, a)", want: nil},
		{name: "literal in body", rule: "wrap(a) => box(a, lid)", want: []string{"lid"}},
		{name: "ordered and unique", rule: "f(x) => g(q, x, p, q)", want: []string{"q", "p"}},
		{name: "symbol body", rule: "drop(pair(a, b)) => nothing", want: []string{"nothing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rule := MustParse(tt.rule).(*Rule)
			assert.Equal(t, tt.want, rule.UnboundSymbols())
		})
	}
}
