package urlparts

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var ErrParse = errors.New("not an absolute URL")

// ParseError reports the input that could not be split into a scheme and host.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// URL holds the pieces of scheme://host[/path][?query][#fragment].
//
// Query and Fragment are nil when absent. They are kept raw: the query is
// only decoded when a rule needs to look at its parameters.
type URL struct {
	Scheme   string
	Host     string
	Path     string
	Query    *string
	Fragment *string
}

// Parse splits raw into its components without unescaping anything, so that
// String on an untouched URL gives back the same bytes.
func Parse(raw string) (*URL, error) {
	idx := strings.Index(raw, "://")
	if idx < 0 {
		return nil, &ParseError{Input: raw, Reason: "missing scheme separator"}
	}
	scheme := raw[:idx]
	if !validScheme(scheme) {
		return nil, &ParseError{Input: raw, Reason: "missing or invalid scheme"}
	}
	rest := raw[idx+3:]

	u := &URL{Scheme: scheme}

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		frag := rest[i+1:]
		u.Fragment = &frag
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		query := rest[i+1:]
		u.Query = &query
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		u.Host = rest[:i]
		u.Path = rest[i:]
	} else {
		u.Host = rest
	}

	if u.Host == "" {
		return nil, &ParseError{Input: raw, Reason: "missing host"}
	}
	return u, nil
}

func validScheme(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// String reassembles the URL. An empty query or fragment is dropped together
// with its '?' or '#'.
func (u *URL) String() string {
	var b strings.Builder
	b.Grow(len(u.Scheme) + 3 + len(u.Host) + len(u.Path) + 32)
	b.WriteString(u.Scheme)
	b.WriteString("://")
	b.WriteString(u.Host)
	b.WriteString(u.Path)
	if u.Query != nil && *u.Query != "" {
		b.WriteByte('?')
		b.WriteString(*u.Query)
	}
	if u.Fragment != nil && *u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(*u.Fragment)
	}
	return b.String()
}

// FragmentValue returns the fragment, or "" when there is none.
func (u *URL) FragmentValue() string {
	if u.Fragment == nil {
		return ""
	}
	return *u.Fragment
}

// SetFragment sets the fragment; an empty value removes it.
func (u *URL) SetFragment(fragment string) {
	if fragment == "" {
		u.Fragment = nil
		return
	}
	u.Fragment = &fragment
}

// SetQuery sets the raw query; an empty value removes it.
func (u *URL) SetQuery(query string) {
	if query == "" {
		u.Query = nil
		return
	}
	u.Query = &query
}

// Params decodes the query. ok is false when the URL has no query at all.
func (u *URL) Params() (params *Query, ok bool) {
	if u.Query == nil {
		return nil, false
	}
	return ParseQuery(*u.Query), true
}

// SetParams re-encodes params into the query, removing it when nothing is left.
func (u *URL) SetParams(params *Query) {
	u.Query = params.Encode()
}

func (u *URL) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("scheme", u.Scheme),
		slog.String("host", u.Host),
		slog.String("path", u.Path),
		slog.Bool("query", u.Query != nil),
		slog.Bool("fragment", u.Fragment != nil),
	)
}
