package outline

import "github.com/google/uuid"

// newItemID returns item-<uuid>. Random v4 UUIDs make collisions a non-issue
// without any coordination between sessions.
func newItemID() string {
	return "item-" + uuid.NewString()
}
