package rewrite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleSpec is one entry of a rule file.
type RuleSpec struct {
	Name        string `yaml:"name,omitempty"`
	Rule        string `yaml:"rule"`
	Description string `yaml:"description,omitempty"`
}

// RulesConfig is the document layout of a rule file.
type RulesConfig struct {
	Rules []RuleSpec `yaml:"rules"`
}

// LoadRules reads the rule specs from a YAML file.
func LoadRules(path string) ([]RuleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRules(data)
}

// ParseRules decodes rule specs from YAML.
func ParseRules(data []byte) ([]RuleSpec, error) {
	var cfg RulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg.Rules, nil
}

// Compile parses the rule text. A declared name must agree with the
// name in the rule text.
func (s RuleSpec) Compile() (*Rule, error) {
	e, err := Parse(s.Rule)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", s.Rule, err)
	}
	rule, ok := e.(*Rule)
	if !ok {
		return nil, fmt.Errorf("%q is not a rule (expected name(pattern) => template)", s.Rule)
	}
	if s.Name != "" && s.Name != rule.Name {
		return nil, fmt.Errorf("rule declared as %q is named %q in its text", s.Name, rule.Name)
	}
	return rule, nil
}
