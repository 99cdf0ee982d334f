/*
Package rewrite implements a small term-rewriting engine over prefix-style
expressions.

# Syntax

Three kinds of expressions exist:

  - Symbol: a run of letters, e.g. x
  - NamedExpr: a name applied to one or more arguments, e.g. pair(a, b)
  - Rule: a named rewrite rule, e.g. swap(pair(a, b)) => pair(b, a)

A rule is written name(pattern) => template. Whether a name( ... ) group
starts a rule is decided by looking at the token after its matching
closing parenthesis, so pair(a, b) is an expression while
swap(pair(a, b)) => pair(b, a) is a rule named swap.

# Matching and substitution

Symbols in a rule's head are pattern variables. Match binds each variable
the first time it is seen and requires later occurrences to be equal:

	rule := rewrite.MustParse("swap(pair(a, b)) => pair(b, a)").(*rewrite.Rule)
	b, ok := rewrite.Match(rule, rewrite.MustParse("pair(x, y)"))
	// ok == true, b == {a: x, b: y}

Apply rebuilds the rule's body with the bindings substituted:

	out, err := rewrite.Apply(rule.Body, b)
	// out == pair(y, x)

Rewrite combines both steps and Iterate feeds the output back in.
*/
package rewrite
