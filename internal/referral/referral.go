package referral

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tabtidy/tabtidy/internal/urlparts"
)

// A question URL looks like
//
//	https://stackoverflow.com/questions/:question_id/:title[#:answer_id]
//
// and is shortened to /q/:question_id/:user or /a/:answer_id/:user.
const questionPrefix = "/questions/"

var errPathSegmentNotNumeric = errors.New("path segment is not a positive integer")

type Target struct {
	Hostname   string
	Identifier string
}

// Table is an ordered list of referral targets.
type Table []Target

// Apply rewrites u with the first target whose hostname equals u's host.
func (t Table) Apply(u *urlparts.URL) bool {
	for _, target := range t {
		if target.Hostname != u.Host {
			continue
		}
		return Rewrite(u, target.Hostname, target.Identifier)
	}
	return false
}

func (t Table) Lookup(hostname string) (string, bool) {
	for _, target := range t {
		if target.Hostname == hostname {
			return target.Identifier, true
		}
	}
	return "", false
}

// With returns a copy of t where each override replaces the identifier of
// the entry with the same hostname, or is appended when there is none.
func (t Table) With(overrides ...Target) Table {
	out := append(Table(nil), t...)
	for _, o := range overrides {
		replaced := false
		for i := range out {
			if out[i].Hostname == o.Hostname {
				out[i].Identifier = o.Identifier
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}

// Rewrite turns a question URL on hostname into a referral link crediting
// identifier. A numeric fragment is taken as an answer id; any other
// fragment is kept. It reports whether u was changed.
func Rewrite(u *urlparts.URL, hostname, identifier string) bool {
	if u.Host != hostname {
		return false
	}
	rest, ok := strings.CutPrefix(u.Path, questionPrefix)
	if !ok {
		return false
	}
	segment, _, _ := strings.Cut(rest, "/")
	questionID, err := parseID(segment)
	if err != nil {
		slog.Debug("Not a question URL", slog.String("segment", segment), slog.Any("error", err))
		return false
	}

	if answerID, err := parseID(u.FragmentValue()); err == nil {
		u.Path = "/a/" + strconv.FormatUint(answerID, 10) + "/" + identifier
		u.Fragment = nil
		return true
	}
	u.Path = "/q/" + strconv.FormatUint(questionID, 10) + "/" + identifier
	return true
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errPathSegmentNotNumeric
	}
	return id, nil
}
