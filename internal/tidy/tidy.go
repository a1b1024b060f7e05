package tidy

import (
	"github.com/tabtidy/tabtidy/internal/config"
	"github.com/tabtidy/tabtidy/internal/referral"
	"github.com/tabtidy/tabtidy/internal/rule"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

// Tidier strips tracking junk from URLs. It holds no mutable state and may
// be shared between goroutines.
type Tidier struct {
	engine    *rule.Engine
	referrals referral.Table
}

var defaultTidier = &Tidier{
	engine:    rule.NewEngine(BuiltinRules, nil),
	referrals: referral.DefaultTargets,
}

// New builds a Tidier from the built-in tables plus the user rules and
// referral targets of cfg.
func New(cfg *config.Config) *Tidier {
	if cfg == nil {
		return defaultTidier
	}

	overrides := make([]referral.Target, 0, len(cfg.ReferralTargets))
	for _, t := range cfg.ReferralTargets {
		overrides = append(overrides, referral.Target{Hostname: t.Hostname, Identifier: t.Identifier})
	}

	return &Tidier{
		engine:    rule.NewEngine(BuiltinRules, cfg.TidyRules),
		referrals: referral.DefaultTargets.With(overrides...),
	}
}

func Default() *Tidier {
	return defaultTidier
}

// Tidy parses raw, runs the rule table and then the referral rewrite, and
// serializes the result. The only error is a *urlparts.ParseError for input
// without a scheme or host; callers choose whether to pass such input
// through.
func (t *Tidier) Tidy(raw string) (string, error) {
	u, err := urlparts.Parse(raw)
	if err != nil {
		return "", err
	}
	t.engine.Apply(u)
	t.referrals.Apply(u)
	return u.String(), nil
}

// TidyOrKeep returns raw unchanged when it cannot be parsed.
func (t *Tidier) TidyOrKeep(raw string) string {
	tidied, err := t.Tidy(raw)
	if err != nil {
		return raw
	}
	return tidied
}

// TidyURL tidies raw with the built-in tables.
func TidyURL(raw string) (string, error) {
	return defaultTidier.Tidy(raw)
}

// RewriteStackExchangeReferral applies the referral rewrite for a single
// site to u.
func RewriteStackExchangeReferral(u *urlparts.URL, hostname, identifier string) *urlparts.URL {
	referral.Rewrite(u, hostname, identifier)
	return u
}
