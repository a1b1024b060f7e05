package match

import (
	"log/slog"
	"strings"

	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

type DomainKeyword struct {
	action  common.Action
	keyword string
}

func (d *DomainKeyword) Type() common.RuleType {
	return common.RuleTypeDomainKeyword
}

func (d *DomainKeyword) Match(u *urlparts.URL) bool {
	return strings.Contains(u.Host, d.keyword)
}

func (d *DomainKeyword) Action() common.Action {
	return d.action
}

func (d *DomainKeyword) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(d.Type())),
		slog.String("domain_keyword", d.keyword),
		slog.Any("action", d.action),
	)
}

func NewDomainKeyword(keyword string, action common.Action) *DomainKeyword {
	return &DomainKeyword{
		action:  action,
		keyword: keyword,
	}
}
