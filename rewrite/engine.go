package rewrite

import (
	"fmt"
	"strings"
)

// Rewrite applies rule to input once. When input does not match the
// rule's head, input is returned unchanged with ok set to false.
func Rewrite(rule *Rule, input Expr) (result Expr, ok bool, err error) {
	b, matched := Match(rule, input)
	if !matched {
		return input, false, nil
	}
	result, err = Apply(rule.Body, b)
	if err != nil {
		return nil, false, fmt.Errorf("applying rule %q: %w", rule.Name, err)
	}
	return result, true, nil
}

// Trace records the expressions produced by repeatedly applying a rule.
// Steps[0] is the original input.
type Trace struct {
	Rule  string
	Steps []Expr
}

// Result returns the last expression of the trace.
func (t Trace) Result() Expr {
	if len(t.Steps) == 0 {
		return nil
	}
	return t.Steps[len(t.Steps)-1]
}

// Applied returns how many times the rule fired.
func (t Trace) Applied() int {
	if len(t.Steps) == 0 {
		return 0
	}
	return len(t.Steps) - 1
}

// Strings renders every step.
func (t Trace) Strings() []string {
	out := make([]string, len(t.Steps))
	for i, e := range t.Steps {
		out[i] = e.String()
	}
	return out
}

func (t Trace) String() string {
	return strings.Join(t.Strings(), " -> ")
}

// Iterate feeds each result of rule back in as the next input, at most
// steps times. It stops early as soon as the rule no longer matches.
func Iterate(rule *Rule, input Expr, steps int) (Trace, error) {
	trace := Trace{Rule: rule.Name, Steps: []Expr{input}}
	current := input
	for i := 0; i < steps; i++ {
		next, ok, err := Rewrite(rule, current)
		if err != nil {
			return trace, err
		}
		if !ok {
			break
		}
		trace.Steps = append(trace.Steps, next)
		current = next
	}
	return trace, nil
}
