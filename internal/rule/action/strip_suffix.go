package action

import (
	"log/slog"
	"strings"

	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

type StripPathSuffix struct {
	suffix string
}

func (s *StripPathSuffix) Type() common.ActionType {
	return common.ActionStripPathSuffix
}

// Execute strips the suffix until the path no longer ends with it, so a
// second pass never finds more to remove.
func (s *StripPathSuffix) Execute(u *urlparts.URL) {
	if s.suffix == "" {
		return
	}
	for strings.HasSuffix(u.Path, s.suffix) {
		u.Path = strings.TrimSuffix(u.Path, s.suffix)
	}
}

func (s *StripPathSuffix) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(s.Type())),
		slog.String("suffix", s.suffix),
	)
}

func NewStripPathSuffix(suffix string) *StripPathSuffix {
	return &StripPathSuffix{suffix: suffix}
}
