package domain

// ActionKind is the kind of interaction an actor performed on a content item.
type ActionKind string

const (
	ActionView    ActionKind = "view"
	ActionLike    ActionKind = "like"
	ActionComment ActionKind = "comment"
)

// ValidActionKind reports whether k is a known action kind.
func ValidActionKind(k ActionKind) bool {
	switch k {
	case ActionView, ActionLike, ActionComment:
		return true
	}
	return false
}

// InteractionEvent is one discrete interaction: an actor acting on another
// actor's content. Ephemeral - consumed once, produces a point value, then
// discarded. The point value is summed into the content's counters, not
// stored as a separate entity.
type InteractionEvent struct {
	Actor   Actor       `json:"actor"`
	Owner   Actor       `json:"owner"`
	Content ContentItem `json:"content"`
	Action  ActionKind  `json:"action"`
}
