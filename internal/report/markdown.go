package report

import (
	"bytes"
	"strconv"
	"strings"

	"design-timeline/internal/model"
)

// RenderMarkdown renders r as a GFM document: a heading, the item table and a
// summary table.
func RenderMarkdown(r Report) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + baseTitle)
	if r.ProjectName != "" {
		writeLn("")
		writeLn("**" + escapeCell(r.ProjectName) + "**")
	}
	writeLn("")

	writeLn("| Type | Name | Est. Screen | Complexity | Est. Duration (Days) |")
	writeLn("| --- | --- | ---: | --- | ---: |")
	if len(r.Rows) == 0 {
		writeLn("| | _No pages yet_ | | | |")
	}
	for _, row := range r.Rows {
		name := escapeCell(row.Name)
		if row.Kind != model.KindMain {
			// Indent Sub rows under their Main.
			name = "↳ " + name
		}
		writeLn("| " + strings.Join([]string{
			string(row.Kind),
			name,
			formatNumber(row.Screens),
			escapeCell(row.Complexity),
			FormatFixed(row.Days, 2),
		}, " | ") + " |")
	}

	writeLn("")
	writeLn("## Summary")
	writeLn("")
	writeLn("| Est. Page Time | Your Role | Total hours | Total days |")
	writeLn("| --- | --- | --- | --- |")
	writeLn("| " + strings.Join([]string{
		FormatFixed(r.Summary.HoursPerPage, 1) + " Hour / Page",
		escapeCell(r.Summary.RoleLabel),
		FormatFixed(r.Summary.TotalHours, 2) + " h",
		FormatFixed(r.Summary.TotalDays, 2) + " d",
	}, " | ") + " |")

	return buf.String()
}

var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	// Entities and emoji shortcodes would otherwise be decoded by the renderers.
	"&", "&amp;",
	":", "&#58;",
	"\r\n", " ",
	"\n", " ",
)

// escapeCell keeps user text literal inside a table cell.
func escapeCell(s string) string {
	return cellEscaper.Replace(strings.TrimSpace(s))
}

// FormatFixed formats v with exactly prec decimals.
func FormatFixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
