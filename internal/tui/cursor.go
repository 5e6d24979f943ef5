package tui

import (
	"fmt"

	"design-timeline/internal/focus"
	"design-timeline/internal/model"
	"design-timeline/internal/outline"
	"design-timeline/internal/report"
)

var itemFields = []focus.Field{focus.FieldName, focus.FieldScreens, focus.FieldComplexity}

func isItemField(f focus.Field) bool {
	return f == focus.FieldName || f == focus.FieldScreens || f == focus.FieldComplexity
}

func isTextField(f focus.Field) bool {
	return f == focus.FieldProject || f == focus.FieldName || f == focus.FieldScreens
}

// focusLocation moves input focus and loads the field's current value into
// the edit buffer. Unknown items fall back to the add-main button.
func (m *appModel) focusLocation(loc location) {
	if isItemField(loc.field) {
		if _, ok := m.sess.Find(loc.itemID); !ok {
			loc = location{field: focus.FieldAddMain}
		}
	}
	m.cur = loc
	m.input.Blur()
	m.input.Placeholder = ""

	switch loc.field {
	case focus.FieldProject:
		m.input.SetValue(m.sess.ProjectName())
		m.input.Placeholder = "Project name"
	case focus.FieldName:
		it, _ := m.sess.Find(loc.itemID)
		m.input.SetValue(it.Name)
		m.input.Placeholder = it.Kind.Label()
	case focus.FieldScreens:
		it, _ := m.sess.Find(loc.itemID)
		m.input.SetValue(formatNumber(it.EstimatedScreens))
		m.input.Placeholder = "0"
	}
	if isTextField(loc.field) {
		m.input.Focus()
		m.input.CursorEnd()
	}
	m.resizeInput()
	m.scrollToCursor()
}

// commitInput writes the edit buffer back to the session after every keystroke
// so the estimates stay current.
func (m *appModel) commitInput() {
	v := m.input.Value()
	switch m.cur.field {
	case focus.FieldProject:
		m.sess.SetProjectName(v)
	case focus.FieldName:
		m.sess.UpdateItem(m.cur.itemID, model.NamePatch(v))
	case focus.FieldScreens:
		m.sess.UpdateItem(m.cur.itemID, model.ScreensPatch(model.ParseScreens(v)))
	}
}

// locations lists the focusable fields in tab order.
func (m appModel) locations() []location {
	rows := m.sess.Visible()
	out := make([]location, 0, len(rows)*len(itemFields)+2)
	out = append(out, location{field: focus.FieldProject})
	for _, r := range rows {
		for _, f := range itemFields {
			out = append(out, location{field: f, itemID: r.Item.ID})
		}
	}
	return append(out, location{field: focus.FieldAddMain})
}

func (m *appModel) moveField(delta int) {
	locs := m.locations()
	i := 0
	for j, l := range locs {
		if l == m.cur {
			i = j
			break
		}
	}
	i = (i + delta + len(locs)) % len(locs)
	m.focusLocation(locs[i])
}

// rowPosition is 0 for the project field, 1..n for outline rows and n+1 for
// the add-main button.
func (m appModel) rowPosition(rows []outline.Row) int {
	switch m.cur.field {
	case focus.FieldProject:
		return 0
	case focus.FieldAddMain:
		return len(rows) + 1
	}
	for i, r := range rows {
		if r.Item.ID == m.cur.itemID {
			return i + 1
		}
	}
	return 0
}

func (m *appModel) moveRow(delta int) {
	rows := m.sess.Visible()
	pos := m.rowPosition(rows) + delta
	if pos < 0 {
		pos = 0
	}
	if pos > len(rows)+1 {
		pos = len(rows) + 1
	}
	switch {
	case pos == 0:
		m.focusLocation(location{field: focus.FieldProject})
	case pos == len(rows)+1:
		m.focusLocation(location{field: focus.FieldAddMain})
	default:
		field := m.cur.field
		if !isItemField(field) {
			field = focus.FieldName
		}
		m.focusLocation(location{field: field, itemID: rows[pos-1].Item.ID})
	}
}

func (m appModel) currentRow() (outline.Row, int, bool) {
	if !isItemField(m.cur.field) {
		return outline.Row{}, -1, false
	}
	for i, r := range m.sess.Visible() {
		if r.Item.ID == m.cur.itemID {
			return r, i, true
		}
	}
	return outline.Row{}, -1, false
}

// ensureCursor repairs focus after the focused item disappeared or was hidden.
func (m *appModel) ensureCursor() {
	if !isItemField(m.cur.field) {
		return
	}
	if _, _, ok := m.currentRow(); ok {
		return
	}
	if _, ok := m.sess.Find(m.cur.itemID); ok {
		// Hidden under a collapsed Main: focus the Main.
		owner, _ := m.sess.Owner(m.cur.itemID)
		m.focusLocation(location{field: focus.FieldName, itemID: owner})
		return
	}
	m.focusLocation(location{field: focus.FieldAddMain})
}

func (m *appModel) toggleCollapse() {
	row, _, ok := m.currentRow()
	if !ok {
		return
	}
	owner := row.OwnerID
	main, _ := m.sess.Find(owner)
	if !m.sess.HasChildren(owner) {
		m.setStatus("Nothing to collapse under "+displayName(main), false)
		return
	}
	if m.sess.Toggle(owner) {
		m.setStatus("Collapsed "+displayName(main), false)
		if row.Item.ID != owner {
			m.focusLocation(location{field: focus.FieldName, itemID: owner})
		}
	} else {
		m.setStatus("Expanded "+displayName(main), false)
	}
	// The hidden-count suffix changes the name column's room for the input.
	m.resizeInput()
	m.scrollToCursor()
}

// deleteCurrent removes the focused row (a Main takes its group with it) and
// keeps focus on the row that moved into its place.
func (m *appModel) deleteCurrent() {
	row, pos, ok := m.currentRow()
	if !ok {
		return
	}
	removed := m.sess.RemoveItem(row.Item.ID)
	m.debugLogf("delete id=%s removed=%d", row.Item.ID, len(removed))
	if len(removed) == 1 {
		m.setStatus("Deleted "+displayName(row.Item), false)
	} else {
		m.setStatus(fmt.Sprintf("Deleted %s and %d sub pages", displayName(row.Item), len(removed)-1), false)
	}

	rows := m.sess.Visible()
	if len(rows) == 0 {
		m.focusLocation(location{field: focus.FieldAddMain})
		return
	}
	if pos >= len(rows) {
		pos = len(rows) - 1
	}
	m.focusLocation(location{field: m.cur.field, itemID: rows[pos].Item.ID})
}

func (m *appModel) cycleComplexity(delta int) {
	it, ok := m.sess.Find(m.cur.itemID)
	if !ok {
		return
	}
	next := it.Complexity.Next()
	if delta < 0 {
		next = it.Complexity.Prev()
	}
	m.sess.UpdateItem(it.ID, model.ComplexityPatch(next))
}

func displayName(it model.Item) string {
	if it.Name == "" {
		return it.Kind.Label()
	}
	return it.Name
}

func formatNumber(v float64) string {
	return report.FormatFixed(v, -1)
}
