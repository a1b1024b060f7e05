package match

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

const regexTimeout = 100 * time.Millisecond

// URLRegex matches the serialized URL as it stands when the rule runs.
type URLRegex struct {
	action common.Action
	regex  *regexp2.Regexp
}

func (h *URLRegex) Type() common.RuleType {
	return common.RuleTypeURLRegex
}

func (h *URLRegex) Match(u *urlparts.URL) bool {
	match, err := h.regex.MatchString(u.String())
	if err != nil {
		slog.Debug("regexp2.MatchString", slog.String("regex", h.regex.String()), slog.Any("error", err))
		return false
	}
	return match
}

func (h *URLRegex) Action() common.Action {
	return h.action
}

func (h *URLRegex) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(h.Type())),
		slog.String("url_regex", h.regex.String()),
		slog.Any("action", h.action),
	)
}

func NewURLRegex(pattern string, action common.Action) (*URLRegex, error) {
	regex, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("regexp2.Compile: %w", err)
	}
	regex.MatchTimeout = regexTimeout

	return &URLRegex{
		action: action,
		regex:  regex,
	}, nil
}
