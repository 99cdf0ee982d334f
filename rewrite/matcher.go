package rewrite

import "fmt"

// Match checks whether candidate has the shape of pattern. On success it
// returns the bindings for every pattern variable; on failure it returns
// nil and false.
//
// Matching a *Rule means matching its head.
func Match(pattern, candidate Expr) (*Bindings, bool) {
	b := NewBindings()
	if !MatchInto(pattern, candidate, b) {
		return nil, false
	}
	return b, true
}

// MatchInto matches pattern against candidate, recording bindings in b.
//
// A symbol binds on its first occurrence; later occurrences must be
// structurally equal to the first binding. Named expressions are matched
// argument by argument, left to right, stopping at the first mismatch.
// Bindings made before a failure stay in b, so after a false result b
// does not describe a match.
func MatchInto(pattern, candidate Expr, b *Bindings) bool {
	switch p := pattern.(type) {
	case Symbol:
		name := string(p)
		if bound, ok := b.Lookup(name); ok {
			return Equal(bound, candidate)
		}
		b.bind(name, candidate)
		return true

	case *NamedExpr:
		c, ok := candidate.(*NamedExpr)
		if !ok || c.Name != p.Name || len(c.Args) != len(p.Args) {
			return false
		}
		for i := range p.Args {
			if !MatchInto(p.Args[i], c.Args[i], b) {
				return false
			}
		}
		return true

	case *Rule:
		return MatchInto(p.Head, candidate, b)

	default:
		panic(fmt.Sprintf("rewrite: unexpected pattern type %T", pattern))
	}
}
