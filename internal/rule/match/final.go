package match

import (
	"log/slog"

	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

// Final matches every URL.
type Final struct {
	action common.Action
}

func (f *Final) Type() common.RuleType {
	return common.RuleTypeFinal
}

func (f *Final) Match(*urlparts.URL) bool {
	return true
}

func (f *Final) Action() common.Action {
	return f.action
}

func (f *Final) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(f.Type())),
		slog.Any("action", f.action),
	)
}

func NewFinal(action common.Action) *Final {
	return &Final{action: action}
}
