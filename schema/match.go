package schema

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matcher decides whether a flag token written in a field definition
// stands for the given option code.
type Matcher interface {
	Matches(pattern, candidate string) bool
}

// MatcherFunc adapts a function to Matcher
type MatcherFunc func(pattern, candidate string) bool

// Matches calls f(pattern, candidate)
func (f MatcherFunc) Matches(pattern, candidate string) bool {
	return f(pattern, candidate)
}

// FastMatches compares pattern and candidate ignoring case and
// surrounding whitespace.
func FastMatches(pattern, candidate string) bool {
	pattern = strings.TrimSpace(pattern)
	candidate = strings.TrimSpace(candidate)
	if len(candidate) == 0 {
		return len(pattern) == 0
	}
	fold := cases.Fold()
	return fold.String(pattern) == fold.String(candidate)
}

// SplitFlags breaks an option list such as "PF,TE" or "TF; TE" into tokens.
// A blank list gives no tokens.
func SplitFlags(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
