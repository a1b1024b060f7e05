package action

import (
	"log/slog"
	"strings"

	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

// TruncatePath cuts the path at the first occurrence of marker.
type TruncatePath struct {
	marker string
}

func (t *TruncatePath) Type() common.ActionType {
	return common.ActionTruncatePath
}

func (t *TruncatePath) Execute(u *urlparts.URL) {
	if t.marker == "" {
		return
	}
	if i := strings.Index(u.Path, t.marker); i >= 0 {
		u.Path = u.Path[:i]
	}
}

func (t *TruncatePath) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(t.Type())),
		slog.String("marker", t.marker),
	)
}

func NewTruncatePath(marker string) *TruncatePath {
	return &TruncatePath{marker: marker}
}
