// Package pattern compiles close-tab patterns into AppleScript conditions.
//
// Three forms are supported:
//
//	example.com            matches anywhere in the URL
//	^http://example.com    matches at the start of the URL
//	example.com/$          matches at the end of the URL
package pattern

import (
	"fmt"
	"strings"
)

type Kind int

const (
	Contains Kind = iota
	StartsWith
	EndsWith
)

func (k Kind) String() string {
	switch k {
	case StartsWith:
		return "starts with"
	case EndsWith:
		return "ends with"
	default:
		return "contains"
	}
}

// Condition is one compiled pattern. Text is passed through unescaped.
type Condition struct {
	Kind Kind
	Text string
}

// String renders the condition as the right-hand side of an AppleScript
// comparison, e.g. `starts with "facebook.com"`.
func (c Condition) String() string {
	return fmt.Sprintf("%s \"%s\"", c.Kind, c.Text)
}

// Matches evaluates the condition against url the way Safari would.
func (c Condition) Matches(url string) bool {
	switch c.Kind {
	case StartsWith:
		return strings.HasPrefix(url, c.Text)
	case EndsWith:
		return strings.HasSuffix(url, c.Text)
	default:
		return strings.Contains(url, c.Text)
	}
}

func Parse(p string) Condition {
	if rest, ok := strings.CutPrefix(p, "^"); ok {
		return Condition{Kind: StartsWith, Text: rest}
	}
	if rest, ok := strings.CutSuffix(p, "$"); ok {
		return Condition{Kind: EndsWith, Text: rest}
	}
	return Condition{Kind: Contains, Text: p}
}

// Compile parses each pattern independently. A URL is selected when any
// condition holds.
func Compile(patterns []string) []Condition {
	conditions := make([]Condition, 0, len(patterns))
	for _, p := range patterns {
		conditions = append(conditions, Parse(p))
	}
	return conditions
}

// MatchAny reports whether url satisfies at least one condition.
func MatchAny(conditions []Condition, url string) bool {
	for _, c := range conditions {
		if c.Matches(url) {
			return true
		}
	}
	return false
}
