package action

import (
	"log/slog"

	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

type RenameHost struct {
	host string
}

func (r *RenameHost) Type() common.ActionType {
	return common.ActionRenameHost
}

func (r *RenameHost) Execute(u *urlparts.URL) {
	u.Host = r.host
}

func (r *RenameHost) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(r.Type())),
		slog.String("host", r.host),
	)
}

func NewRenameHost(host string) *RenameHost {
	return &RenameHost{host: host}
}
