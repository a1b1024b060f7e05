package match

import (
	"log/slog"

	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

type Domain struct {
	action common.Action
	domain string
}

func (d *Domain) Type() common.RuleType {
	return common.RuleTypeDomain
}

func (d *Domain) Match(u *urlparts.URL) bool {
	return u.Host == d.domain
}

func (d *Domain) Action() common.Action {
	return d.action
}

func (d *Domain) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(d.Type())),
		slog.String("domain", d.domain),
		slog.Any("action", d.action),
	)
}

func NewDomain(domain string, action common.Action) *Domain {
	return &Domain{
		action: action,
		domain: domain,
	}
}
