package tui

import (
	"strconv"
	"strings"

	"design-timeline/internal/focus"
	"design-timeline/internal/model"
	"design-timeline/internal/outline"
	"design-timeline/internal/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	colMarker     = 2
	colType       = 5
	colScreens    = 8
	colComplexity = 12
	colDays       = 8
	colGap        = 1
	subIndent     = "↳ "

	// Lines around the outline rows: title, project, header, add button,
	// summary, status, help and the blank separators.
	chromeLines = 11
)

const helpLine = "enter: add sub   shift+enter: add main   shift+del: delete sub   ctrl+t: collapse   ctrl+x: delete   ctrl+s: settings   ctrl+p: report   ctrl+r: reset   ctrl+q: quit"

func (m appModel) View() string {
	switch m.modal {
	case modalSettings:
		return m.place(m.viewSettings())
	case modalConfirmReset:
		return m.place(renderConfirmModal(m.width, "Reset outline",
			"Remove every page and the project name? Settings are kept.",
			"Reset", "Cancel", m.confirmFocus))
	case modalPreview:
		return m.place(m.viewPreview())
	}
	return m.viewOutline()
}

func (m appModel) place(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m appModel) nameWidth() int {
	w := m.width - (colMarker + colType + colScreens + colComplexity + colDays + 5*colGap)
	if w < 12 {
		w = 12
	}
	return w
}

// visibleRowCount is how many outline rows fit on screen.
func (m appModel) visibleRowCount() int {
	n := m.height - chromeLines
	if n < 3 {
		n = 3
	}
	return n
}

func (m *appModel) resizeInput() {
	switch m.cur.field {
	case focus.FieldName:
		w := m.nameWidth() - 1
		if it, ok := m.sess.Find(m.cur.itemID); ok && it.Kind == model.KindSub {
			w -= ansi.StringWidth(subIndent)
		}
		w -= ansi.StringWidth(m.hiddenSuffix(m.cur.itemID))
		if w < 1 {
			w = 1
		}
		m.input.Width = w
	case focus.FieldScreens:
		m.input.Width = colScreens - 1
	case focus.FieldProject:
		m.input.Width = m.width - len("Project  ") - 1
	}
}

// scrollToCursor keeps the focused row inside the rendered window.
func (m *appModel) scrollToCursor() {
	rows := m.sess.Visible()
	n := m.visibleRowCount()
	pos := m.rowPosition(rows) - 1
	switch {
	case m.cur.field == focus.FieldProject:
		m.offset = 0
	case m.cur.field == focus.FieldAddMain:
		m.offset = len(rows) - n
	case pos < m.offset:
		m.offset = pos
	case pos >= m.offset+n:
		m.offset = pos - n + 1
	}
	if m.offset > len(rows)-n {
		m.offset = len(rows) - n
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m appModel) viewOutline() string {
	snap := m.sess.Snapshot()
	days := snap.Estimates.Index()

	var b strings.Builder
	b.WriteString(styleTitle().Render(report.Title(snap.ProjectName)))
	b.WriteString("\n\n")

	project := snap.ProjectName
	if m.cur.field == focus.FieldProject {
		project = styleInput().Render(m.input.View())
	} else if strings.TrimSpace(project) == "" {
		project = styleMuted().Render("Project name")
	}
	b.WriteString(styleHeader().Render("Project  ") + project)
	b.WriteString("\n\n")

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	rows := snap.Visible
	if len(rows) == 0 {
		b.WriteString(styleMuted().Render("  No pages yet. Press tab to reach the add button, then enter."))
		b.WriteString("\n")
	}
	n := m.visibleRowCount()
	end := m.offset + n
	if end > len(rows) {
		end = len(rows)
	}
	if m.offset > 0 {
		b.WriteString(styleMuted().Render("  ↑ more"))
		b.WriteString("\n")
	}
	for _, r := range rows[m.offset:end] {
		b.WriteString(m.renderRow(r, days[r.Item.ID]))
		b.WriteString("\n")
	}
	if end < len(rows) {
		b.WriteString(styleMuted().Render("  ↓ more"))
		b.WriteString("\n")
	}

	b.WriteString(styleButton(m.cur.field == focus.FieldAddMain).Render("+ Add main page"))
	b.WriteString("\n\n")

	b.WriteString(m.renderSummary(snap.Estimates.HoursPerPage, snap.Config.RoleLabel(), snap.Estimates.TotalHours, snap.Estimates.TotalDays))
	b.WriteString("\n")
	b.WriteString(styleStatus(m.statusIsError).Render(ansi.Truncate(m.status, m.width, "…")))
	b.WriteString("\n")
	b.WriteString(styleMuted().Render(ansi.Truncate(helpLine, m.width, "…")))
	return b.String()
}

// hiddenSuffix is " (+N)" for a collapsed Main with N Sub pages, else "".
func (m appModel) hiddenSuffix(id string) string {
	if !m.sess.IsCollapsed(id) {
		return ""
	}
	n := len(m.sess.Children(id))
	if n == 0 {
		return ""
	}
	return " (+" + strconv.Itoa(n) + ")"
}

func (m appModel) renderHeader() string {
	cells := []string{
		padRight("", colMarker),
		padRight("Type", colType),
		padRight("Name", m.nameWidth()),
		padLeft("Screens", colScreens),
		padRight("Complexity", colComplexity),
		padLeft("Days", colDays),
	}
	return styleHeader().Render(strings.Join(cells, " "))
}

func (m appModel) renderRow(r outline.Row, days float64) string {
	it := r.Item
	isMain := it.Kind == model.KindMain
	focused := func(f focus.Field) bool { return m.cur.itemID == it.ID && m.cur.field == f }
	base := styleSubRow()
	if isMain {
		base = styleMainRow()
	}

	marker := ""
	if isMain && r.HasChildren {
		marker = "▾"
		if r.Collapsed {
			marker = "▸"
		}
	}

	typ := "Main"
	if !isMain {
		typ = "Sub"
	}

	nameW := m.nameWidth()
	indent := ""
	if !isMain {
		indent = subIndent
	}
	var name string
	if focused(focus.FieldName) {
		name = indent + styleFocusedCell().Render(m.input.View()) + base.Render(m.hiddenSuffix(it.ID))
	} else {
		label := it.Name
		if label == "" {
			label = it.Kind.Label()
		}
		name = base.Render(ansi.Truncate(indent+label+m.hiddenSuffix(it.ID), nameW, "…"))
	}

	var screens string
	if focused(focus.FieldScreens) {
		screens = styleFocusedCell().Render(m.input.View())
	} else {
		screens = base.Render(formatNumber(it.EstimatedScreens))
	}

	complexity := it.Complexity.Label()
	if focused(focus.FieldComplexity) {
		complexity = styleFocusedCell().Render("‹ " + complexity + " ›")
	} else {
		complexity = base.Render(complexity)
	}

	cells := []string{
		padRight(marker, colMarker),
		padRight(base.Render(typ), colType),
		padRight(name, nameW),
		padLeft(screens, colScreens),
		padRight(complexity, colComplexity),
		padLeft(base.Render(report.FormatFixed(days, 2)), colDays),
	}
	return strings.Join(cells, " ")
}

func (m appModel) renderSummary(hoursPerPage float64, role string, totalHours, totalDays float64) string {
	label := styleMuted()
	value := styleSummaryValue()
	parts := []string{
		label.Render("Est. page time ") + value.Render(report.FormatFixed(hoursPerPage, 1)+" h/page"),
		label.Render("Role ") + value.Render(role),
		label.Render("Total ") + value.Render(report.FormatFixed(totalHours, 2)+" h") +
			label.Render(" / ") + value.Render(report.FormatFixed(totalDays, 2)+" d"),
	}
	return strings.Join(parts, "   ")
}

// padRight pads s (which may contain ANSI styling) to w cells, truncating if needed.
func padRight(s string, w int) string {
	sw := ansi.StringWidth(s)
	if sw > w {
		return ansi.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", w-sw)
}

func padLeft(s string, w int) string {
	sw := ansi.StringWidth(s)
	if sw > w {
		return ansi.Truncate(s, w, "…")
	}
	return strings.Repeat(" ", w-sw) + s
}
