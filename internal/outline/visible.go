package outline

import "design-timeline/internal/model"

// Row is one rendered line of the outline.
type Row struct {
	Item model.Item
	// Index is the item's position in the full sequence.
	Index int
	// OwnerID is the owning Main (the item itself for a Main).
	OwnerID     string
	HasChildren bool
	Collapsed   bool
}

// Visible projects items and collapsed into the rows to render: every Main,
// and a Sub only when its owning Main is expanded. It never mutates its inputs.
func Visible(items []model.Item, collapsed map[string]bool) []Row {
	out := make([]Row, 0, len(items))
	hidden := false
	owner := ""
	for i, it := range items {
		if it.Kind == model.KindMain {
			owner = it.ID
			hidden = collapsed[it.ID]
			out = append(out, Row{
				Item:        it,
				Index:       i,
				OwnerID:     it.ID,
				HasChildren: i+1 < len(items) && items[i+1].Kind == model.KindSub,
				Collapsed:   hidden,
			})
			continue
		}
		if hidden {
			continue
		}
		out = append(out, Row{Item: it, Index: i, OwnerID: owner})
	}
	return out
}

func (o *Outline) Visible() []Row {
	return Visible(o.items, o.collapsed)
}

// IsVisible reports whether id would be rendered.
func (o *Outline) IsVisible(id string) bool {
	i := o.indexOf(id)
	if i < 0 {
		return false
	}
	if o.items[i].Kind == model.KindMain {
		return true
	}
	oi := o.ownerIndex(i)
	return oi >= 0 && !o.collapsed[o.items[oi].ID]
}
