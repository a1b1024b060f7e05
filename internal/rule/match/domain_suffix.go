package match

import (
	"log/slog"
	"strings"

	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

// DomainSuffix is a plain string suffix test on the host, so "tumblr.com"
// matches "azurelunatic.tumblr.com" and "tumblr.com" alike.
type DomainSuffix struct {
	action       common.Action
	domainSuffix string
}

func (d *DomainSuffix) Type() common.RuleType {
	return common.RuleTypeDomainSuffix
}

func (d *DomainSuffix) Match(u *urlparts.URL) bool {
	return strings.HasSuffix(u.Host, d.domainSuffix)
}

func (d *DomainSuffix) Action() common.Action {
	return d.action
}

func (d *DomainSuffix) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(d.Type())),
		slog.String("domain_suffix", d.domainSuffix),
		slog.Any("action", d.action),
	)
}

func NewDomainSuffix(domainSuffix string, action common.Action) *DomainSuffix {
	return &DomainSuffix{
		action:       action,
		domainSuffix: domainSuffix,
	}
}
