package common

import "github.com/tabtidy/tabtidy/internal/urlparts"

type RuleType string

const (
	RuleTypeDomain        RuleType = "DOMAIN"
	RuleTypeDomainSuffix  RuleType = "DOMAIN-SUFFIX"
	RuleTypeDomainKeyword RuleType = "DOMAIN-KEYWORD"
	RuleTypeURLRegex      RuleType = "URL-REGEX"
	RuleTypeFinal         RuleType = "FINAL"
)

// Rule pairs a host condition with the action to run when it holds.
type Rule interface {
	Type() RuleType
	Match(u *urlparts.URL) bool
	Action() Action
}
