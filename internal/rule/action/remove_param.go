package action

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

// RemoveParam drops query parameters by exact name.
type RemoveParam struct {
	names []string
}

func (r *RemoveParam) Type() common.ActionType {
	return common.ActionRemoveParam
}

func (r *RemoveParam) Execute(u *urlparts.URL) {
	removeParams(u, func(key string) bool {
		return slices.Contains(r.names, key)
	})
}

func (r *RemoveParam) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(r.Type())),
		slog.String("names", strings.Join(r.names, ",")),
	)
}

func NewRemoveParam(names ...string) *RemoveParam {
	return &RemoveParam{names: names}
}

// RemoveParamPrefix drops every query parameter whose name starts with one
// of the prefixes.
type RemoveParamPrefix struct {
	prefixes []string
}

func (r *RemoveParamPrefix) Type() common.ActionType {
	return common.ActionRemoveParamPrefix
}

func (r *RemoveParamPrefix) Execute(u *urlparts.URL) {
	removeParams(u, func(key string) bool {
		for _, p := range r.prefixes {
			if strings.HasPrefix(key, p) {
				return true
			}
		}
		return false
	})
}

func (r *RemoveParamPrefix) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(r.Type())),
		slog.String("prefixes", strings.Join(r.prefixes, ",")),
	)
}

func NewRemoveParamPrefix(prefixes ...string) *RemoveParamPrefix {
	return &RemoveParamPrefix{prefixes: prefixes}
}

// removeParams rewrites the query through the codec whenever one is present,
// so surviving values come out in canonical encoding.
func removeParams(u *urlparts.URL, drop func(key string) bool) {
	params, ok := u.Params()
	if !ok {
		return
	}
	params.RemoveFunc(drop)
	u.SetParams(params)
}
