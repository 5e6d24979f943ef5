package outline

import (
	"design-timeline/internal/model"
)

// Every mutation builds the next sequence before assigning it, so a call
// either applies completely or leaves the outline untouched.

// InsertMain appends a new Main at the end of the sequence.
func (o *Outline) InsertMain() string {
	it := model.NewMain(o.newID())
	o.items = append(o.Items(), it)
	return it.ID
}

// InsertSubUnder appends a new Sub at the end of mainID's run and expands mainID.
// It is a no-op (ok=false) unless mainID names an existing Main.
func (o *Outline) InsertSubUnder(mainID string) (string, bool) {
	i := o.indexOf(mainID)
	if i < 0 || o.items[i].Kind != model.KindMain {
		return "", false
	}
	it := model.NewSub(o.newID())
	o.items = insertAt(o.items, o.runEnd(i), it)
	o.collapsed[mainID] = false
	o.pendingFocus = it.ID
	return it.ID, true
}

// InsertSubAfter inserts a new Sub directly after the Sub subID and expands the owning Main.
func (o *Outline) InsertSubAfter(subID string) (string, bool) {
	i := o.indexOf(subID)
	if i < 0 || o.items[i].Kind != model.KindSub {
		return "", false
	}
	owner := o.ownerIndex(i)
	if owner < 0 {
		return "", false
	}
	it := model.NewSub(o.newID())
	mainID := o.items[owner].ID
	o.items = insertAt(o.items, i+1, it)
	o.collapsed[mainID] = false
	o.pendingFocus = it.ID
	return it.ID, true
}

// InsertMainAfterGroup inserts a new Main right after the run containing anyID.
func (o *Outline) InsertMainAfterGroup(anyID string) (string, bool) {
	i := o.indexOf(anyID)
	if i < 0 {
		return "", false
	}
	it := model.NewMain(o.newID())
	o.items = insertAt(o.items, o.runEnd(i), it)
	o.pendingFocus = it.ID
	return it.ID, true
}

// Update merges patch into the item with id. Kind and id are never changed.
func (o *Outline) Update(id string, patch model.ItemPatch) bool {
	i := o.indexOf(id)
	if i < 0 {
		return false
	}
	next := o.Items()
	next[i] = patch.Apply(next[i])
	o.items = next
	return true
}

// Remove deletes id. A Main takes its whole trailing Sub run with it; a Sub goes alone.
// It returns the removed ids in sequence order (nil when id is unknown).
func (o *Outline) Remove(id string) []string {
	i := o.indexOf(id)
	if i < 0 {
		return nil
	}
	end := i + 1
	if o.items[i].Kind == model.KindMain {
		end = o.runEnd(i)
	}
	removed := make([]string, 0, end-i)
	for _, it := range o.items[i:end] {
		removed = append(removed, it.ID)
	}
	next := make([]model.Item, 0, len(o.items)-(end-i))
	next = append(next, o.items[:i]...)
	next = append(next, o.items[end:]...)

	o.items = next
	for _, rid := range removed {
		delete(o.collapsed, rid)
	}
	if o.pendingFocus != "" && o.indexOf(o.pendingFocus) < 0 {
		o.pendingFocus = ""
	}
	return removed
}

func insertAt(items []model.Item, at int, it model.Item) []model.Item {
	next := make([]model.Item, 0, len(items)+1)
	next = append(next, items[:at]...)
	next = append(next, it)
	next = append(next, items[at:]...)
	return next
}
