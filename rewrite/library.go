package rewrite

import "fmt"

// Library is a set of rules addressable by name, kept in declaration order.
type Library struct {
	order []string
	rules map[string]*Rule
}

// NewLibrary parses every spec and collects the resulting rules.
func NewLibrary(specs []RuleSpec) (*Library, error) {
	lib := &Library{rules: make(map[string]*Rule)}
	for i, spec := range specs {
		rule, err := spec.Compile()
		if err != nil {
			return nil, fmt.Errorf("rule #%d: %w", i+1, err)
		}
		if err := lib.Add(rule); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// Add registers rule. Names must be unique.
func (l *Library) Add(rule *Rule) error {
	if l.rules == nil {
		l.rules = make(map[string]*Rule)
	}
	if _, exists := l.rules[rule.Name]; exists {
		return fmt.Errorf("duplicate rule %q", rule.Name)
	}
	l.order = append(l.order, rule.Name)
	l.rules[rule.Name] = rule
	return nil
}

// Lookup returns the rule with the given name.
func (l *Library) Lookup(name string) (*Rule, bool) {
	if l == nil {
		return nil, false
	}
	r, ok := l.rules[name]
	return r, ok
}

// Names returns rule names in declaration order.
func (l *Library) Names() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.order...)
}

// Len returns the number of rules.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.order)
}
