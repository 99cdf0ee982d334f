package types

import "fmt"

// Status classifies the outcome of one input line.
type Status int

const (
	StatusRewritten Status = iota // the rule fired at least once
	StatusNoMatch                 // the rule did not match the input
	StatusError                   // the line could not be parsed or rewritten
)

func (s Status) String() string {
	switch s {
	case StatusRewritten:
		return "rewritten"
	case StatusNoMatch:
		return "no-match"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText makes Status readable in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "rewritten":
		*s = StatusRewritten
	case "no-match":
		*s = StatusNoMatch
	case "error":
		*s = StatusError
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// Result is the outcome of processing one input line of a .gym file.
type Result struct {
	Filename string   `json:"filename"`
	Line     int      `json:"line"`
	Column   int      `json:"column,omitempty"` // 1-based column of Error within Input
	Status   Status   `json:"status"`
	Rule     string   `json:"rule,omitempty"`
	Input    string   `json:"input"`
	Output   string   `json:"output,omitempty"`
	Trace    []string `json:"trace,omitempty"` // every step after Input
	Error    string   `json:"error,omitempty"`
}

// Failed reports whether the line produced an error.
func (r Result) Failed() bool {
	return r.Status == StatusError
}
