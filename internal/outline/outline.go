// Package outline owns the ordered Main/Sub item sequence, its collapse state
// and the one-shot pending focus request.
//
// Grouping is positional: a Sub belongs to the nearest preceding Main. Nothing
// stores parent pointers; run boundaries are recomputed by scanning from a
// reference index.
package outline

import (
	"fmt"

	"design-timeline/internal/model"
)

type Outline struct {
	items     []model.Item
	collapsed map[string]bool
	// pendingFocus is written by insertions and cleared by ConsumeFocus.
	pendingFocus string

	newID func() string
}

type Option func(*Outline)

// WithIDFunc overrides item id generation (tests use deterministic ids).
func WithIDFunc(fn func() string) Option {
	return func(o *Outline) {
		if fn != nil {
			o.newID = fn
		}
	}
}

func New(opts ...Option) *Outline {
	o := &Outline{
		collapsed: map[string]bool{},
		newID:     newItemID,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Items returns a copy of the sequence.
func (o *Outline) Items() []model.Item {
	out := make([]model.Item, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Outline) Len() int { return len(o.items) }

func (o *Outline) Find(id string) (model.Item, bool) {
	i := o.indexOf(id)
	if i < 0 {
		return model.Item{}, false
	}
	return o.items[i], true
}

// IndexOf returns the position of id, or -1.
func (o *Outline) IndexOf(id string) int { return o.indexOf(id) }

func (o *Outline) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range o.items {
		if o.items[i].ID == id {
			return i
		}
	}
	return -1
}

// runEnd returns the index just past the Sub block that follows idx.
// For a Main this is the end of its run; for a Sub, the end of the run containing it.
func (o *Outline) runEnd(idx int) int {
	j := idx + 1
	for j < len(o.items) && o.items[j].Kind == model.KindSub {
		j++
	}
	return j
}

// ownerIndex returns the index of the Main owning idx (idx itself for a Main), or -1.
func (o *Outline) ownerIndex(idx int) int {
	for j := idx; j >= 0; j-- {
		if o.items[j].Kind == model.KindMain {
			return j
		}
	}
	return -1
}

// Owner returns the id of the Main whose run contains id.
func (o *Outline) Owner(id string) (string, bool) {
	i := o.indexOf(id)
	if i < 0 {
		return "", false
	}
	oi := o.ownerIndex(i)
	if oi < 0 {
		return "", false
	}
	return o.items[oi].ID, true
}

// Children returns the ids of mainID's trailing Sub run.
func (o *Outline) Children(mainID string) []string {
	i := o.indexOf(mainID)
	if i < 0 || o.items[i].Kind != model.KindMain {
		return nil
	}
	end := o.runEnd(i)
	out := make([]string, 0, end-i-1)
	for _, it := range o.items[i+1 : end] {
		out = append(out, it.ID)
	}
	return out
}

func (o *Outline) HasChildren(mainID string) bool {
	i := o.indexOf(mainID)
	if i < 0 || o.items[i].Kind != model.KindMain {
		return false
	}
	return i+1 < len(o.items) && o.items[i+1].Kind == model.KindSub
}

// Reset drops every item, collapse entry and the pending focus.
func (o *Outline) Reset() {
	o.items = nil
	o.collapsed = map[string]bool{}
	o.pendingFocus = ""
}

// State is a value snapshot of the outline and its collapse map.
type State struct {
	Items     []model.Item    `json:"items" yaml:"items"`
	Collapsed map[string]bool `json:"collapsed" yaml:"collapsed"`
}

func (o *Outline) State() State {
	return State{Items: o.Items(), Collapsed: o.Collapsed()}
}

type InvariantError struct {
	Index int
	ID    string
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("sub item %s at position %d has no owning main", e.ID, e.Index)
}

// Check verifies the grouping invariant: no Sub before the first Main, and only known kinds.
func (o *Outline) Check() error {
	return checkItems(o.items)
}

func checkItems(items []model.Item) error {
	seenMain := false
	for i, it := range items {
		switch it.Kind {
		case model.KindMain:
			seenMain = true
		case model.KindSub:
			if !seenMain {
				return InvariantError{Index: i, ID: it.ID}
			}
		default:
			return fmt.Errorf("item %s at position %d has unknown kind %q", it.ID, i, it.Kind)
		}
	}
	return nil
}
