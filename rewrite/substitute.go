package rewrite

import "fmt"

// Apply builds a new expression from template by replacing every bound
// symbol with a copy of its binding. Unbound symbols are kept as they are.
// Neither template nor b is modified, and the result shares no storage
// with either.
//
// A *Rule anywhere in the template yields an *UnsupportedConstructError.
func Apply(template Expr, b *Bindings) (Expr, error) {
	switch t := template.(type) {
	case Symbol:
		if bound, ok := b.Lookup(string(t)); ok {
			return Clone(bound), nil
		}
		return t, nil

	case *NamedExpr:
		args := make([]Expr, len(t.Args))
		for i, arg := range t.Args {
			sub, err := Apply(arg, b)
			if err != nil {
				return nil, err
			}
			args[i] = sub
		}
		return &NamedExpr{Name: t.Name, Args: args}, nil

	case *Rule:
		return nil, &UnsupportedConstructError{Construct: "rule", Expr: t}

	default:
		return nil, fmt.Errorf("cannot substitute into %T", template)
	}
}
