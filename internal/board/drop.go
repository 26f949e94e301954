package board

import (
	"taskboard/internal/domain"
)

// DropEvent is the structured payload of a completed drag gesture. The drag
// layer reports semantic statuses directly instead of encoding them inside
// container identifiers.
//
// An empty To means the item was dropped outside any valid target. A
// negative ToIndex means the drop position is unspecified, which within the
// same column reads as "position unchanged".
type DropEvent struct {
	TaskID  string
	From    domain.Status
	To      domain.Status
	ToIndex int
}

// IsNoDestination reports whether the gesture ended outside every column.
func (e DropEvent) IsNoDestination() bool {
	return e.To == ""
}
