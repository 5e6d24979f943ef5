package outline

import "design-timeline/internal/model"

// Toggle flips mainID's collapsed flag (absent means expanded). Unknown ids and
// Sub ids are ignored. It returns the new flag.
func (o *Outline) Toggle(mainID string) bool {
	i := o.indexOf(mainID)
	if i < 0 || o.items[i].Kind != model.KindMain {
		return false
	}
	next := !o.collapsed[mainID]
	o.collapsed[mainID] = next
	return next
}

// IsCollapsed defaults to false for ids without an entry.
func (o *Outline) IsCollapsed(mainID string) bool {
	return o.collapsed[mainID]
}

// SetCollapsed forces mainID's flag. Unknown ids and Sub ids are ignored.
func (o *Outline) SetCollapsed(mainID string, collapsed bool) bool {
	i := o.indexOf(mainID)
	if i < 0 || o.items[i].Kind != model.KindMain {
		return false
	}
	o.collapsed[mainID] = collapsed
	return true
}

// SetAllCollapsed collapses or expands every Main that has children.
func (o *Outline) SetAllCollapsed(collapsed bool) {
	for i, it := range o.items {
		if it.Kind != model.KindMain {
			continue
		}
		if i+1 < len(o.items) && o.items[i+1].Kind == model.KindSub {
			o.collapsed[it.ID] = collapsed
		}
	}
}

// Collapsed returns a copy of the collapse map.
func (o *Outline) Collapsed() map[string]bool {
	out := make(map[string]bool, len(o.collapsed))
	for k, v := range o.collapsed {
		out[k] = v
	}
	return out
}

// Prune drops collapse entries whose id is no longer a Main in the outline.
func (o *Outline) Prune() int {
	mains := map[string]bool{}
	for _, it := range o.items {
		if it.Kind == model.KindMain {
			mains[it.ID] = true
		}
	}
	n := 0
	for id := range o.collapsed {
		if !mains[id] {
			delete(o.collapsed, id)
			n++
		}
	}
	return n
}

// expandOwner clears the collapsed flag on the Main owning id, if any.
func (o *Outline) expandOwner(id string) {
	i := o.indexOf(id)
	if i < 0 {
		return
	}
	if oi := o.ownerIndex(i); oi >= 0 {
		o.collapsed[o.items[oi].ID] = false
	}
}
