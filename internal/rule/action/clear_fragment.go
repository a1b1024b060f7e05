package action

import (
	"log/slog"
	"strings"

	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

type ClearFragment struct{}

func (c *ClearFragment) Type() common.ActionType {
	return common.ActionClearFragment
}

func (c *ClearFragment) Execute(u *urlparts.URL) {
	u.Fragment = nil
}

func (c *ClearFragment) LogValue() slog.Value {
	return slog.GroupValue(slog.String("type", string(c.Type())))
}

func NewClearFragment() *ClearFragment {
	return &ClearFragment{}
}

// FragmentPredicate decides whether a fragment is junk.
type FragmentPredicate struct {
	value  string
	prefix bool
}

// FragmentEquals matches a fragment that is exactly value.
func FragmentEquals(value string) FragmentPredicate {
	return FragmentPredicate{value: value}
}

// FragmentHasPrefix matches any fragment starting with prefix.
func FragmentHasPrefix(prefix string) FragmentPredicate {
	return FragmentPredicate{value: prefix, prefix: true}
}

// ParseFragmentPredicate reads "value" as equality and "value*" as a prefix.
func ParseFragmentPredicate(s string) FragmentPredicate {
	if p, ok := strings.CutSuffix(s, "*"); ok {
		return FragmentHasPrefix(p)
	}
	return FragmentEquals(s)
}

func (p FragmentPredicate) Match(fragment string) bool {
	if p.prefix {
		return strings.HasPrefix(fragment, p.value)
	}
	return fragment == p.value
}

func (p FragmentPredicate) String() string {
	if p.prefix {
		return p.value + "*"
	}
	return p.value
}

// ClearFragmentIf clears the fragment only when the predicate holds; other
// fragments are real anchors.
type ClearFragmentIf struct {
	predicate FragmentPredicate
}

func (c *ClearFragmentIf) Type() common.ActionType {
	return common.ActionClearFragmentIf
}

func (c *ClearFragmentIf) Execute(u *urlparts.URL) {
	if u.Fragment != nil && c.predicate.Match(*u.Fragment) {
		u.Fragment = nil
	}
}

func (c *ClearFragmentIf) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(c.Type())),
		slog.String("fragment", c.predicate.String()),
	)
}

func NewClearFragmentIf(predicate FragmentPredicate) *ClearFragmentIf {
	return &ClearFragmentIf{predicate: predicate}
}
