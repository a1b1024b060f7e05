package rule

import (
	"fmt"
	"log/slog"

	"github.com/tabtidy/tabtidy/internal/config"
	"github.com/tabtidy/tabtidy/internal/rule/action"
	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/rule/match"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

// Engine is an ordered rule table. It is read-only once built and safe for
// concurrent use.
type Engine struct {
	rules []common.Rule
}

// NewEngine returns an engine running builtin first and then every valid
// entry of ruleSet. Invalid user rules are logged and skipped.
func NewEngine(builtin []common.Rule, ruleSet []config.Rule) *Engine {
	rules := make([]common.Rule, 0, len(builtin)+len(ruleSet))
	rules = append(rules, builtin...)

	for i := range ruleSet {
		r, err := NewRule(&ruleSet[i])
		if err != nil {
			slog.Warn("Invalid rule", slog.Any("rule", ruleSet[i]), slog.Any("error", err))
			continue
		}
		rules = append(rules, r)
	}

	return &Engine{rules: rules}
}

// NewRule validates a user rule and builds its matcher and action.
func NewRule(rule *config.Rule) (common.Rule, error) {
	if err := config.ValidateRule(rule); err != nil {
		return nil, err
	}

	a := action.NewAction(rule)
	if a == nil {
		return nil, fmt.Errorf("unsupported action %q", rule.Action)
	}

	switch common.RuleType(rule.Type) {
	case common.RuleTypeDomain:
		return match.NewDomain(rule.MatchValue, a), nil
	case common.RuleTypeDomainSuffix:
		return match.NewDomainSuffix(rule.MatchValue, a), nil
	case common.RuleTypeDomainKeyword:
		return match.NewDomainKeyword(rule.MatchValue, a), nil
	case common.RuleTypeURLRegex:
		r, err := match.NewURLRegex(rule.MatchValue, a)
		if err != nil {
			return nil, err
		}
		return r, nil
	case common.RuleTypeFinal:
		return match.NewFinal(a), nil
	default:
		return nil, fmt.Errorf("unsupported rule type %q", rule.Type)
	}
}

// Apply runs the action of every matching rule, in table order. Later rules
// see the changes made by earlier ones.
func (e *Engine) Apply(u *urlparts.URL) {
	for _, rule := range e.rules {
		if !rule.Match(u) {
			continue
		}
		slog.Debug("Rule matched", slog.Any("rule", rule), slog.Any("url", u))
		rule.Action().Execute(u)
	}
}

func (e *Engine) HasRules() bool {
	return len(e.rules) > 0
}

func (e *Engine) GetRules() []common.Rule {
	return e.rules
}
