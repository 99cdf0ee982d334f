package runner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnolang/gym/rewrite"
)

// DefaultConfigPath is the configuration file looked up by the CLI.
const DefaultConfigPath = ".gym.yaml"

// Config represents the overall configuration: a name, the number of
// rewrite steps per input and the rule library.
type Config struct {
	Name  string             `yaml:"name"`
	Steps int                `yaml:"steps,omitempty"`
	Rules []rewrite.RuleSpec `yaml:"rules"`
}

// DefaultConfig is the configuration written by `gym init`.
func DefaultConfig() Config {
	return Config{
		Name:  "gym",
		Steps: 1,
		Rules: []rewrite.RuleSpec{
			{
				Name:        "swap",
				Rule:        "swap(pair(a, b)) => pair(b, a)",
				Description: "exchange the components of a pair",
			},
			{
				Name:        "fst",
				Rule:        "fst(pair(a, b)) => a",
				Description: "first component of a pair",
			},
			{
				Name:        "snd",
				Rule:        "snd(pair(a, b)) => b",
				Description: "second component of a pair",
			},
			{
				Name:        "rot",
				Rule:        "rot(triple(a, b, c)) => triple(b, c, a)",
				Description: "rotate a triple to the left",
			},
		},
	}
}

// LoadConfig reads a configuration file.
func LoadConfig(path string) (Config, error) {
	var config Config

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("error parsing %s: %w", path, err)
	}
	if config.Steps < 0 {
		return config, fmt.Errorf("error parsing %s: steps must not be negative, got %d", path, config.Steps)
	}

	return config, nil
}

// WriteConfig stores config at path, replacing any existing file.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
