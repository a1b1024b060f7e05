package common

import "github.com/tabtidy/tabtidy/internal/urlparts"

type ActionType string

const (
	ActionRenameHost        ActionType = "RENAME-HOST"
	ActionClearQuery        ActionType = "CLEAR-QUERY"
	ActionClearFragment     ActionType = "CLEAR-FRAGMENT"
	ActionClearFragmentIf   ActionType = "CLEAR-FRAGMENT-IF"
	ActionRemoveParam       ActionType = "REMOVE-PARAM"
	ActionRemoveParamPrefix ActionType = "REMOVE-PARAM-PREFIX"
	ActionTruncatePath      ActionType = "TRUNCATE-PATH"
	ActionStripPathSuffix   ActionType = "STRIP-PATH-SUFFIX"
)

// Action mutates the fields of u it owns and leaves the rest alone.
type Action interface {
	Type() ActionType
	Execute(u *urlparts.URL)
}
