package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode"

	"design-timeline/internal/report"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const previewHelp = "e: export html   m: export markdown   E/M: overwrite   y: copy markdown   esc: close"

func (m *appModel) openPreview() {
	m.modal = modalPreview
	m.preview = viewport.New(0, 0)
	m.refreshPreview()
}

func (m appModel) previewSize() (int, int) {
	w := m.width - 6
	if w < 20 {
		w = 20
	}
	// Border, header bar, blank lines and the help line.
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	return w, h
}

func (m *appModel) refreshPreview() {
	w, h := m.previewSize()
	m.preview.Width = w
	m.preview.Height = h
	m.preview.SetContent(renderReport(m.sess.Report(), w))
}

func (m appModel) updatePreview(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch km.String() {
	case "esc", "q":
		m.modal = modalNone
		return m, nil
	case "e":
		m.export(".html", false)
		return m, nil
	case "E":
		m.export(".html", true)
		return m, nil
	case "m":
		m.export(".md", false)
		return m, nil
	case "M":
		m.export(".md", true)
		return m, nil
	case "y":
		if err := copyToClipboard(report.RenderMarkdown(m.sess.Report())); err != nil {
			m.setStatus("Copy failed: "+err.Error(), true)
		} else {
			m.setStatus("Copied report as Markdown", false)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(km)
	return m, cmd
}

func (m appModel) exportPath(ext string) string {
	return filepath.Join(m.outDir, slug(m.sess.ProjectName())+"design-timeline"+ext)
}

func (m *appModel) export(ext string, overwrite bool) {
	path := m.exportPath(ext)
	err := report.WriteFile(path, m.sess.Report(), overwrite)
	m.debugLogf("export path=%s overwrite=%v err=%v", path, overwrite, err)
	switch {
	case errors.Is(err, report.ErrFileExists):
		key := "E"
		if ext == ".md" {
			key = "M"
		}
		m.setStatus(path+" exists; press "+key+" to overwrite", true)
	case err != nil:
		m.setStatus("Export failed: "+err.Error(), true)
	default:
		m.setStatus("Exported "+path, false)
	}
}

// slug turns a project name into a file name prefix ("Acme Site" -> "acme-site-").
// An empty name yields "".
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return ""
	}
	return s + "-"
}

func (m appModel) viewPreview() string {
	w, _ := m.previewSize()
	status := ""
	if m.status != "" {
		status = "\n" + styleStatus(m.statusIsError).Render(m.status)
	}
	help := styleMuted().Width(w).Render(previewHelp)
	body := lipgloss.NewStyle().Width(w).Render(m.preview.View())
	return previewBox(w, report.Title(m.sess.ProjectName()), body+"\n\n"+help+status)
}

// previewBox is renderModalBox without the modal width cap: the report wants
// the whole screen.
func previewBox(width int, title, content string) string {
	header := lipgloss.NewStyle().
		Width(width).
		Bold(true).
		Foreground(colorModalHeadFg).
		Background(colorModalHeadBg).
		Padding(0, 1).
		Render(title)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorModalBorder).
		Padding(0, 1).
		Render(header + "\n\n" + content)
}
