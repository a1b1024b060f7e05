package action

import (
	"strings"

	"github.com/tabtidy/tabtidy/internal/config"
	"github.com/tabtidy/tabtidy/internal/rule/common"
)

var (
	ClearQueryAction    = NewClearQuery()
	ClearFragmentAction = NewClearFragment()
)

// NewAction builds the action of a user rule. Multi-valued actions take a
// comma-separated list in Value.
func NewAction(rule *config.Rule) common.Action {
	switch common.ActionType(rule.Action) {
	case common.ActionRenameHost:
		return NewRenameHost(rule.Value)
	case common.ActionClearQuery:
		return ClearQueryAction
	case common.ActionClearFragment:
		return ClearFragmentAction
	case common.ActionClearFragmentIf:
		return NewClearFragmentIf(ParseFragmentPredicate(rule.Value))
	case common.ActionRemoveParam:
		return NewRemoveParam(splitList(rule.Value)...)
	case common.ActionRemoveParamPrefix:
		return NewRemoveParamPrefix(splitList(rule.Value)...)
	case common.ActionTruncatePath:
		return NewTruncatePath(rule.Value)
	case common.ActionStripPathSuffix:
		return NewStripPathSuffix(rule.Value)
	default:
		return nil
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
