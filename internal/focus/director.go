// Package focus maps authoring keystrokes onto outline operations and decides
// which item receives input focus next.
package focus

import (
	"design-timeline/internal/model"
	"design-timeline/internal/outline"
)

// Field is the input that held focus when a key was pressed.
type Field int

const (
	FieldName Field = iota
	FieldScreens
	FieldComplexity
	// FieldProject is the project-name input above the outline (no item).
	FieldProject
	// FieldAddMain is the "add Main" control.
	FieldAddMain
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldScreens:
		return "screens"
	case FieldComplexity:
		return "complexity"
	case FieldProject:
		return "project"
	case FieldAddMain:
		return "add-main"
	default:
		return "unknown"
	}
}

// itemField reports whether f belongs to an outline row.
func (f Field) itemField() bool {
	return f == FieldName || f == FieldScreens || f == FieldComplexity
}

type Key int

const (
	KeyEnter Key = iota + 1
	KeyDelete
	KeyBackspace
	KeyTab
)

type Stroke struct {
	Key   Key
	Shift bool
}

type Event struct {
	Stroke Stroke
	Field  Field
	ItemID string
}

type Action int

const (
	ActionNone Action = iota
	ActionInsertSubUnder
	ActionInsertSubAfter
	ActionInsertMainAfterGroup
	ActionDeleteSub
	ActionFocusAddMain
	ActionInsertMain
)

func (a Action) String() string {
	switch a {
	case ActionInsertSubUnder:
		return "insert-sub-under"
	case ActionInsertSubAfter:
		return "insert-sub-after"
	case ActionInsertMainAfterGroup:
		return "insert-main-after-group"
	case ActionDeleteSub:
		return "delete-sub"
	case ActionFocusAddMain:
		return "focus-add-main"
	case ActionInsertMain:
		return "insert-main"
	default:
		return "none"
	}
}

// Result tells the collaborator what happened. When Handled is true the
// collaborator must swallow the key. Item focus targets are also written to
// the outline's pending focus request; ActionFocusAddMain moves focus to the
// add-Main control instead.
type Result struct {
	Handled bool
	Action  Action
	// NewItemID is set for insertions.
	NewItemID string
	// FocusID is the requested item focus target ("" for none).
	FocusID string
}

type Director struct {
	outline *outline.Outline
}

func NewDirector(o *outline.Outline) *Director {
	return &Director{outline: o}
}

// Handle applies the authoring rules for one keystroke.
func (d *Director) Handle(ev Event) Result {
	if ev.Field == FieldProject {
		if ev.Stroke.Key == KeyTab && !ev.Stroke.Shift {
			return Result{Handled: true, Action: ActionFocusAddMain}
		}
		return Result{}
	}
	if ev.Field == FieldAddMain {
		if ev.Stroke.Key == KeyEnter {
			return d.insertMain()
		}
		return Result{}
	}
	if !ev.Field.itemField() {
		return Result{}
	}

	it, ok := d.outline.Find(ev.ItemID)
	if !ok {
		return Result{}
	}

	switch ev.Stroke.Key {
	case KeyEnter:
		return d.enter(it, ev.Stroke.Shift)
	case KeyDelete, KeyBackspace:
		// Only the name field owns the delete rule; numeric/selection fields keep their
		// own editing semantics for Delete/Backspace.
		if ev.Stroke.Shift && ev.Field == FieldName && it.Kind == model.KindSub {
			return d.deleteSub(it.ID)
		}
	}
	return Result{}
}

func (d *Director) enter(it model.Item, shift bool) Result {
	if it.Kind == model.KindMain {
		// Shift has no special meaning on a Main.
		id, ok := d.outline.InsertSubUnder(it.ID)
		if !ok {
			return Result{Handled: true}
		}
		return Result{Handled: true, Action: ActionInsertSubUnder, NewItemID: id, FocusID: id}
	}
	if shift {
		id, ok := d.outline.InsertMainAfterGroup(it.ID)
		if !ok {
			return Result{Handled: true}
		}
		return Result{Handled: true, Action: ActionInsertMainAfterGroup, NewItemID: id, FocusID: id}
	}
	id, ok := d.outline.InsertSubAfter(it.ID)
	if !ok {
		return Result{Handled: true}
	}
	return Result{Handled: true, Action: ActionInsertSubAfter, NewItemID: id, FocusID: id}
}

func (d *Director) insertMain() Result {
	id := d.outline.InsertMain()
	d.outline.RequestFocus(id)
	return Result{Handled: true, Action: ActionInsertMain, NewItemID: id, FocusID: id}
}

// deleteSub removes subID and moves focus to the nearest preceding Sub (in this or an
// earlier run), else the nearest preceding Main, else whatever shifted into the
// vacated slot.
func (d *Director) deleteSub(subID string) Result {
	items := d.outline.Items()
	idx := d.outline.IndexOf(subID)
	target := FallbackTarget(items, idx)

	d.outline.Remove(subID)
	if target != "" {
		d.outline.RequestFocus(target)
	} else {
		d.outline.ClearFocus()
	}
	return Result{Handled: true, Action: ActionDeleteSub, FocusID: target}
}

// FallbackTarget computes the Shift+Delete focus target for the item at idx,
// using the sequence as it was before the delete.
func FallbackTarget(items []model.Item, idx int) string {
	if idx < 0 || idx >= len(items) {
		return ""
	}
	for j := idx - 1; j >= 0; j-- {
		if items[j].Kind == model.KindSub {
			return items[j].ID
		}
	}
	for j := idx - 1; j >= 0; j-- {
		if items[j].Kind == model.KindMain {
			return items[j].ID
		}
	}
	if idx+1 < len(items) {
		return items[idx+1].ID
	}
	return ""
}
