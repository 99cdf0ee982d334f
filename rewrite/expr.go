package rewrite

import "strings"

// Expr is an expression tree node. It is one of Symbol, *NamedExpr or *Rule.
//
// Expressions are never mutated after construction; substitution
// always builds a new tree.
type Expr interface {
	String() string
	exprNode()
}

var (
	_ Expr = Symbol("")
	_ Expr = (*NamedExpr)(nil)
	_ Expr = (*Rule)(nil)
)

// Symbol is an atomic name. Inside a rule head it acts as a pattern
// variable, everywhere else it is an opaque literal.
type Symbol string

func (s Symbol) String() string { return string(s) }
func (Symbol) exprNode()        {}

// NamedExpr applies a name to a fixed number of arguments, e.g. pair(a, b).
type NamedExpr struct {
	Name string
	Args []Expr
}

// Named builds a NamedExpr. The argument slice is copied.
func Named(name string, args ...Expr) *NamedExpr {
	return &NamedExpr{Name: name, Args: append([]Expr(nil), args...)}
}

func (n *NamedExpr) String() string {
	var sb strings.Builder
	sb.WriteString(n.Name)
	sb.WriteByte('(')
	for i, arg := range n.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (*NamedExpr) exprNode() {}

// Arity returns the number of arguments.
func (n *NamedExpr) Arity() int { return len(n.Args) }

// Rule is a named rewrite rule (a functor): Head is the pattern a
// candidate is matched against and Body is the template the bindings
// are substituted into.
type Rule struct {
	Name string
	Head Expr
	Body Expr
}

// NewRule builds a Rule.
func NewRule(name string, head, body Expr) *Rule {
	return &Rule{Name: name, Head: head, Body: body}
}

// String renders the rule as name(head) => body, the form Parse accepts.
func (r *Rule) String() string {
	return r.Name + "(" + r.Head.String() + ") => " + r.Body.String()
}

func (*Rule) exprNode() {}

// UnboundSymbols lists, in order of first appearance, the symbols used
// in the body that never occur in the head. Such symbols pass through
// substitution unchanged.
func (r *Rule) UnboundSymbols() []string {
	head := make(map[string]struct{})
	collectSymbols(r.Head, func(s Symbol) { head[string(s)] = struct{}{} })

	var unbound []string
	seen := make(map[string]struct{})
	collectSymbols(r.Body, func(s Symbol) {
		name := string(s)
		if _, ok := head[name]; ok {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		unbound = append(unbound, name)
	})
	return unbound
}

func collectSymbols(e Expr, visit func(Symbol)) {
	switch v := e.(type) {
	case Symbol:
		visit(v)
	case *NamedExpr:
		for _, arg := range v.Args {
			collectSymbols(arg, visit)
		}
	case *Rule:
		collectSymbols(v.Head, visit)
		collectSymbols(v.Body, visit)
	}
}

// Render returns the canonical textual form of e.
func Render(e Expr) string {
	if e == nil {
		return ""
	}
	return e.String()
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case *NamedExpr:
		y, ok := b.(*NamedExpr)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *Rule:
		y, ok := b.(*Rule)
		return ok && x.Name == y.Name && Equal(x.Head, y.Head) && Equal(x.Body, y.Body)
	default:
		return a == nil && b == nil
	}
}

// Clone returns a deep copy of e that shares no storage with it.
func Clone(e Expr) Expr {
	switch v := e.(type) {
	case Symbol:
		return v
	case *NamedExpr:
		args := make([]Expr, len(v.Args))
		for i, arg := range v.Args {
			args[i] = Clone(arg)
		}
		return &NamedExpr{Name: v.Name, Args: args}
	case *Rule:
		return &Rule{Name: v.Name, Head: Clone(v.Head), Body: Clone(v.Body)}
	default:
		return e
	}
}
