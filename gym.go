// Package gym is a minimal term rewriter.
//
// Expressions are written in prefix form: a bare word is a symbol,
// name(a, b) is a named expression and name(pattern) => template is a
// rewrite rule. Matching a rule against a candidate binds the symbols
// of its pattern; applying those bindings to the template builds the
// rewritten expression.
//
//	rule, _ := gym.Parse("swap(pair(a, b)) => pair(b, a)")
//	input, _ := gym.Parse("pair(x, y)")
//	b, ok := gym.Match(rule, input)
//	out, _ := gym.Apply(rule.(*rewrite.Rule).Body, b)
//	gym.Render(out) // pair(y, x)
package gym

import "github.com/gnolang/gym/rewrite"

// Parse reads a single expression from text.
func Parse(text string) (rewrite.Expr, error) {
	return rewrite.Parse(text)
}

// Match checks candidate against pattern. When pattern is a rule, its
// head is used.
func Match(pattern, candidate rewrite.Expr) (*rewrite.Bindings, bool) {
	return rewrite.Match(pattern, candidate)
}

// Apply substitutes b into template.
func Apply(template rewrite.Expr, b *rewrite.Bindings) (rewrite.Expr, error) {
	return rewrite.Apply(template, b)
}

// Render returns the canonical text of e.
func Render(e rewrite.Expr) string {
	return rewrite.Render(e)
}
