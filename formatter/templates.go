package formatter

// RewrittenFormatter shows every step the rule produced.
type RewrittenFormatter struct{}

func (f *RewrittenFormatter) ResultTemplate() string {
	return `{{header .Kind .Status .MaxLineNumWidth .Filename .Line .Column}}
{{snippet .Input .Line .MaxLineNumWidth .Padding -}}
{{steps .Trace .Padding}}
`
}

type NoMatchFormatter struct{}

func (f *NoMatchFormatter) ResultTemplate() string {
	return `{{header .Kind .Status .MaxLineNumWidth .Filename .Line .Column}}
{{snippet .Input .Line .MaxLineNumWidth .Padding -}}
{{message (printf "does not match rule %s" .Rule) .Padding}}
`
}

// ErrorFormatter points at the offending column when one is known.
type ErrorFormatter struct{}

func (f *ErrorFormatter) ResultTemplate() string {
	return `{{header .Kind .Status .MaxLineNumWidth .Filename .Line .Column}}
{{snippet .Input .Line .MaxLineNumWidth .Padding -}}
{{caret .Input .Column .Padding -}}
{{message .Message .Padding}}
`
}
