package action

import (
	"log/slog"

	"github.com/tabtidy/tabtidy/internal/rule/common"
	"github.com/tabtidy/tabtidy/internal/urlparts"
)

type ClearQuery struct{}

func (c *ClearQuery) Type() common.ActionType {
	return common.ActionClearQuery
}

func (c *ClearQuery) Execute(u *urlparts.URL) {
	u.Query = nil
}

func (c *ClearQuery) LogValue() slog.Value {
	return slog.GroupValue(slog.String("type", string(c.Type())))
}

func NewClearQuery() *ClearQuery {
	return &ClearQuery{}
}
