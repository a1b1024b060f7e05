package urlparts

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		scheme   string
		host     string
		path     string
		query    *string
		fragment *string
	}{
		{"https://example.com", "https", "example.com", "", nil, nil},
		{"https://example.com/", "https", "example.com", "/", nil, nil},
		{"https://example.com?utm_medium=social", "https", "example.com", "", strPtr("utm_medium=social"), nil},
		{"http://example.com/a/b?x=1#frag", "http", "example.com", "/a/b", strPtr("x=1"), strPtr("frag")},
		{"http://example.com/a#frag?notquery", "http", "example.com", "/a", nil, strPtr("frag?notquery")},
		{"http://example.com/a?", "http", "example.com", "/a", strPtr(""), nil},
		{"http://example.com/a#", "http", "example.com", "/a", nil, strPtr("")},
		{"http://user@example.com:8080/x", "http", "user@example.com:8080", "/x", nil, nil},
		{"git+ssh://host/repo", "git+ssh", "host", "/repo", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			u, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if u.Scheme != tt.scheme {
				t.Errorf("scheme: got %q, want %q", u.Scheme, tt.scheme)
			}
			if u.Host != tt.host {
				t.Errorf("host: got %q, want %q", u.Host, tt.host)
			}
			if u.Path != tt.path {
				t.Errorf("path: got %q, want %q", u.Path, tt.path)
			}
			if !equalPtr(u.Query, tt.query) {
				t.Errorf("query: got %v, want %v", deref(u.Query), deref(tt.query))
			}
			if !equalPtr(u.Fragment, tt.fragment) {
				t.Errorf("fragment: got %v, want %v", deref(u.Fragment), deref(tt.fragment))
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"example.com",
		"://missing value",
		"favorites://",
		"1http://example.com",
		"https:///path-only",
		"mailto:someone@example.com",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("expected error for %q, got none", input)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error %v does not wrap ErrParse", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) || pe.Input != input {
				t.Errorf("expected *ParseError carrying the input, got %#v", err)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, input := range []string{
		"https://example.com",
		"https://www.youtube.com/watch?v=zB4I68XVPzQ",
		"http://stackoverflow.com/questions/tagged/html+regex",
		"https://docs.python.org/3.5/library/subprocess.html#subprocess.run",
		"https://medium.com/@anildash/forget-why-c49ac5f0da20#.sjyskxdsz",
		"https://example.com/a%20b?q=%E2%9C%93#x",
	} {
		t.Run(input, func(t *testing.T) {
			u, err := Parse(input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := u.String(); got != input {
				t.Errorf("got %q, want %q", got, input)
			}
		})
	}
}

func TestStringOmitsEmptyParts(t *testing.T) {
	u, err := Parse("https://example.com/page?#")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := u.String(); got != "https://example.com/page" {
		t.Errorf("got %q", got)
	}

	u.SetQuery("a=1")
	u.SetFragment("top")
	if got := u.String(); got != "https://example.com/page?a=1#top" {
		t.Errorf("got %q", got)
	}

	u.SetQuery("")
	u.SetFragment("")
	if u.Query != nil || u.Fragment != nil {
		t.Errorf("expected query and fragment to be absent, got %v %v", u.Query, u.Fragment)
	}
}

func TestSetParamsClearsQuery(t *testing.T) {
	u, err := Parse("https://example.com/?utm_source=x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	params, ok := u.Params()
	if !ok {
		t.Fatal("expected query params")
	}
	params.Remove("utm_source")
	u.SetParams(params)
	if u.Query != nil {
		t.Errorf("query: got %q, want absent", *u.Query)
	}
	if got := u.String(); got != "https://example.com/" {
		t.Errorf("got %q", got)
	}
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
