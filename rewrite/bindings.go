package rewrite

import "strings"

// Bindings maps pattern variables to the expressions they matched,
// remembering insertion order. A Bindings value lives for one
// match/apply cycle.
type Bindings struct {
	names  []string
	values map[string]Expr
}

// NewBindings returns an empty environment.
func NewBindings() *Bindings {
	return &Bindings{values: make(map[string]Expr)}
}

// Lookup returns the expression bound to name.
func (b *Bindings) Lookup(name string) (Expr, bool) {
	if b == nil {
		return nil, false
	}
	e, ok := b.values[name]
	return e, ok
}

// bind records name -> e unless name is already bound. It reports
// whether a new binding was made.
func (b *Bindings) bind(name string, e Expr) bool {
	if _, ok := b.values[name]; ok {
		return false
	}
	b.names = append(b.names, name)
	b.values[name] = e
	return true
}

// Len returns the number of bindings.
func (b *Bindings) Len() int {
	if b == nil {
		return 0
	}
	return len(b.names)
}

// Names returns the bound names in insertion order.
func (b *Bindings) Names() []string {
	if b == nil {
		return nil
	}
	return append([]string(nil), b.names...)
}

// Each calls fn for every binding in insertion order.
func (b *Bindings) Each(fn func(name string, e Expr)) {
	if b == nil {
		return
	}
	for _, name := range b.names {
		fn(name, b.values[name])
	}
}

// Map returns the bindings keyed by name, with values rendered.
func (b *Bindings) Map() map[string]string {
	m := make(map[string]string, b.Len())
	b.Each(func(name string, e Expr) {
		m[name] = e.String()
	})
	return m
}

// String renders the bindings as {a: x, b: y}.
func (b *Bindings) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	b.Each(func(name string, e Expr) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(e.String())
		i++
	})
	sb.WriteByte('}')
	return sb.String()
}
