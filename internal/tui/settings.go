package tui

import (
	"fmt"
	"strings"

	"design-timeline/internal/config"
	"design-timeline/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type settingsField int

const (
	settingsRole settingsField = iota
	settingsPageTime
	settingsHoursPerDay
	settingsMultNormal
	settingsMultMedium
	settingsMultHard
	settingsFieldCount
)

func (f settingsField) label() string {
	switch f {
	case settingsRole:
		return "Role"
	case settingsPageTime:
		return "Page time (days)"
	case settingsHoursPerDay:
		return "Hours per day"
	case settingsMultNormal:
		return "Normal multiplier"
	case settingsMultMedium:
		return "Medium multiplier"
	case settingsMultHard:
		return "Hard multiplier"
	default:
		return ""
	}
}

func (f settingsField) complexity() (model.Complexity, bool) {
	switch f {
	case settingsMultNormal:
		return model.ComplexityNormal, true
	case settingsMultMedium:
		return model.ComplexityMedium, true
	case settingsMultHard:
		return model.ComplexityHard, true
	}
	return "", false
}

// settingsForm edits a copy of the configuration; nothing reaches the session
// until the form is applied.
type settingsForm struct {
	cfg   config.Configuration
	field settingsField
	input textinput.Model
}

func newSettingsForm(cfg config.Configuration) settingsForm {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 16
	in.Width = 10
	f := settingsForm{cfg: cfg, input: in}
	f.load()
	return f
}

func (f settingsForm) value(field settingsField) float64 {
	switch field {
	case settingsPageTime:
		return f.cfg.PageTimeDays
	case settingsHoursPerDay:
		return f.cfg.HoursPerDay
	}
	if cx, ok := field.complexity(); ok {
		return f.cfg.Multiplier(cx)
	}
	return 0
}

// load copies the focused field's value into the input.
func (f *settingsForm) load() {
	if f.field == settingsRole {
		f.input.Blur()
		f.input.SetValue("")
		return
	}
	f.input.SetValue(formatNumber(f.value(f.field)))
	f.input.Focus()
	f.input.CursorEnd()
}

// commit parses the input back into the focused field.
func (f *settingsForm) commit() {
	if f.field == settingsRole {
		return
	}
	v := model.ParseScreens(f.input.Value())
	switch f.field {
	case settingsPageTime:
		f.cfg.SetPageTimeDays(v)
	case settingsHoursPerDay:
		f.cfg.SetHoursPerDay(v)
	default:
		if cx, ok := f.field.complexity(); ok {
			f.cfg.SetMultiplier(cx, v)
		}
	}
}

func (f *settingsForm) move(delta int) {
	f.commit()
	n := int(settingsFieldCount)
	f.field = settingsField((int(f.field) + delta + n) % n)
	f.load()
}

func (f *settingsForm) cycleRole(delta int) {
	roles := f.cfg.SortedRoles()
	if len(roles) == 0 {
		return
	}
	i := 0
	for j, r := range roles {
		if r == f.cfg.Role {
			i = j
			break
		}
	}
	i = (i + delta + len(roles)) % len(roles)
	f.cfg.SetRole(roles[i])
}

func (m *appModel) openSettings() tea.Cmd {
	m.modal = modalSettings
	m.settings = newSettingsForm(m.sess.Config())
	return textinput.Blink
}

func (m appModel) closeSettings() appModel {
	m.modal = modalNone
	m.focusLocation(m.cur)
	return m
}

func (m appModel) updateSettings(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.settings
	switch km.String() {
	case "esc":
		m.setStatus("Settings discarded", false)
		return m.closeSettings(), nil
	case "enter":
		f.commit()
		m.sess.SetConfig(f.cfg)
		m.debugLogf("settings applied role=%s page=%v", f.cfg.Role, f.cfg.PageTimeDays)
		m.setStatus("Settings applied", false)
		return m.closeSettings(), nil
	case "ctrl+s":
		f.commit()
		m.sess.SetConfig(f.cfg)
		if err := config.Save(m.configDir, f.cfg); err != nil {
			m.setStatus("Saving settings failed: "+err.Error(), true)
			return m.closeSettings(), nil
		}
		path, _ := config.Path(m.configDir)
		m.setStatus("Settings saved to "+path, false)
		return m.closeSettings(), nil
	case "tab", "down":
		f.move(1)
		return m, nil
	case "shift+tab", "up":
		f.move(-1)
		return m, nil
	}

	if f.field == settingsRole {
		switch km.String() {
		case "left", "h":
			f.cycleRole(-1)
		case "right", "l", " ":
			f.cycleRole(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(km)
	return m, cmd
}

func (m appModel) viewSettings() string {
	f := m.settings
	w := modalBodyWidth(m.width)
	labelW := 20

	var b strings.Builder
	for i := settingsField(0); i < settingsFieldCount; i++ {
		focused := i == f.field
		var val string
		switch {
		case i == settingsRole:
			val = f.cfg.RoleLabel()
			if !f.cfg.RoleMatchesPreset(f.cfg.Role) {
				val += " (custom)"
			}
			if focused {
				val = "‹ " + val + " ›"
			}
		case focused:
			val = f.input.View()
		default:
			val = formatNumber(f.value(i))
		}

		label := padRight(i.label(), labelW)
		if focused {
			b.WriteString(styleFocusedCell().Render(label) + " " + styleInput().Render(val))
		} else {
			b.WriteString(styleMuted().Render(label) + " " + val)
		}
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("%s h/page", formatNumber(f.cfg.HoursPerPage()))
	b.WriteString("\n")
	b.WriteString(styleSummaryValue().Render(summary))
	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render("tab: next   ←/→: role   enter: apply   ctrl+s: apply and save   esc: cancel"))

	body := lipgloss.NewStyle().Width(w).Render(b.String())
	return renderModalBox(m.width, "Settings", body)
}
