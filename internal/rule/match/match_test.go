package match

import (
	"testing"

	"github.com/tabtidy/tabtidy/internal/rule/action"
	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

func mustParse(t *testing.T, raw string) *urlparts.URL {
	t.Helper()
	u, err := urlparts.Parse(raw)
	if err != nil {
		t.Fatalf("urlparts.Parse(%q): %v", raw, err)
	}
	return u
}

func TestMatch(t *testing.T) {
	regex, err := NewURLRegex(`^https://[^/]+/watch\?`, action.ClearFragmentAction)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		rule  common.Rule
		input string
		want  bool
	}{
		{"domain exact", NewDomain("medium.com", action.ClearFragmentAction), "https://medium.com/@a/post", true},
		{"domain not subdomain", NewDomain("medium.com", action.ClearFragmentAction), "https://blog.medium.com/post", false},
		{"domain not prefix", NewDomain("medium.com", action.ClearFragmentAction), "https://medium.com.evil.org/", false},
		{"suffix subdomain", NewDomainSuffix("youtube.com", action.ClearQueryAction), "https://m.youtube.com/watch?v=1", true},
		{"suffix exact", NewDomainSuffix("youtube.com", action.ClearQueryAction), "https://youtube.com/", true},
		{"suffix other", NewDomainSuffix("youtube.com", action.ClearQueryAction), "https://vimeo.com/", false},
		{"keyword", NewDomainKeyword("amazon", action.ClearQueryAction), "https://smile.amazon.co.uk/dp/1", true},
		{"keyword path ignored", NewDomainKeyword("amazon", action.ClearQueryAction), "https://example.com/amazon", false},
		{"final", NewFinal(action.ClearQueryAction), "https://anything.example/", true},
		{"regex", regex, "https://www.youtube.com/watch?v=1", true},
		{"regex no match", regex, "https://www.youtube.com/channel/x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Match(mustParse(t, tt.input)); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewURLRegexInvalid(t *testing.T) {
	if _, err := NewURLRegex(`(unclosed`, action.ClearQueryAction); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

// regexp2 supports lookarounds, which user rules rely on.
func TestURLRegexLookahead(t *testing.T) {
	r, err := NewURLRegex(`^https://news\.example\.org/(?!live/)`, action.ClearQueryAction)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Match(mustParse(t, "https://news.example.org/world/1?x=1")) {
		t.Error("expected match for /world/")
	}
	if r.Match(mustParse(t, "https://news.example.org/live/1?x=1")) {
		t.Error("unexpected match for /live/")
	}
}
