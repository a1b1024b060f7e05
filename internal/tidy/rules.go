package tidy

import (
	"github.com/tabtidy/tabtidy/internal/rule/action"
	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/rule/match"
)

// BuiltinRules is the rule table, in the order it runs. Later groups see
// what earlier groups did, e.g. a renamed mobile host picks up the rules of
// its desktop host.
var BuiltinRules = []common.Rule{
	// Desktop hosts for mobile variants.
	match.NewDomain("mobile.twitter.com", action.NewRenameHost("twitter.com")),
	match.NewDomain("mobile.nytimes.com", action.NewRenameHost("nytimes.com")),

	// Amazon product links carry their referral junk in the path too.
	match.NewDomain("www.amazon.co.uk", action.ClearQueryAction),
	match.NewDomain("www.amazon.co.uk", action.NewTruncatePath("ref=")),
	match.NewDomain("smile.amazon.co.uk", action.ClearQueryAction),
	match.NewDomain("smile.amazon.co.uk", action.NewTruncatePath("ref=")),
	match.NewDomain("www.tiktok.com", action.ClearQueryAction),

	// Fragments.
	match.NewDomain("medium.com", action.ClearFragmentAction),
	match.NewDomain("www.buzzfeed.com", action.ClearFragmentAction),
	match.NewDomain("mashable.com", action.ClearFragmentAction),
	match.NewDomainSuffix("tumblr.com", action.NewClearFragmentIf(action.FragmentEquals("notes"))),
	match.NewDomain("docs.python.org", action.NewClearFragmentIf(action.FragmentHasPrefix("module-"))),

	// Feature flags.
	match.NewDomainSuffix("youtube.com", action.NewRemoveParam("feature", "app")),
	match.NewDomainSuffix("blogspot.com", action.NewRemoveParam("m")),

	// Tracking parameters on every URL.
	match.NewFinal(action.NewRemoveParamPrefix("utm_", "__cf")),
	match.NewFinal(action.NewRemoveParam("_ga")),

	// Per-service tracking parameters.
	match.NewDomain("docs.python.org", action.NewRemoveParam("highlight")),
	match.NewDomain("www.telegraph.co.uk", action.NewRemoveParam("WT.mc_id")),
	match.NewDomain("www.etsy.com", action.NewRemoveParam("awc", "frs", "source", "pro")),
	match.NewDomain("www.etsy.com", action.NewRemoveParamPrefix("ga_", "ref", "organic_search_click")),
	match.NewDomain("www.redbubble.com", action.NewRemoveParam("ref", "asc")),
	match.NewDomain("stacks.wellcomecollection.org", action.NewRemoveParam("source")),
	match.NewDomain("wordery.com", action.NewRemoveParam("cTrk")),
	match.NewDomain("twitter.com", action.NewRemoveParam("s")),

	// A pull request's files tab links back to the pull request.
	match.NewDomain("github.com", action.NewStripPathSuffix("/files")),
}
