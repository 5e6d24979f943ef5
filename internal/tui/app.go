package tui

import (
	"fmt"
	"strings"

	"design-timeline/internal/config"
	"design-timeline/internal/focus"
	"design-timeline/internal/session"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalSettings
	modalConfirmReset
	modalPreview
)

// location is the field holding input focus. itemID is empty for the project
// field and the add-main button.
type location struct {
	field  focus.Field
	itemID string
}

type appModel struct {
	sess      *session.Session
	configDir string
	outDir    string

	width  int
	height int

	cur   location
	input textinput.Model
	// offset is the first outline row rendered.
	offset int

	modal        modalKind
	settings     settingsForm
	confirmFocus confirmModalFocus
	preview      viewport.Model

	status        string
	statusIsError bool

	debugEnabled bool
}

func newAppModel(opts Options) appModel {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 200

	m := appModel{
		sess:      opts.Session,
		configDir: opts.ConfigDir,
		outDir:    strings.TrimSpace(opts.OutDir),
		width:     100,
		height:    30,
		input:     in,
	}
	if m.sess == nil {
		m.sess = session.New(config.Default())
	}
	if m.outDir == "" {
		m.outDir = "."
	}
	m.focusLocation(location{field: focus.FieldProject})
	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInput()
		m.scrollToCursor()
		if m.modal == modalPreview {
			m.refreshPreview()
		}
		return m, nil

	case tea.KeyMsg:
		m.debugLogf("key modal=%d field=%s item=%s str=%q type=%v alt=%v",
			int(m.modal), m.cur.field, m.cur.itemID, msg.String(), msg.Type, msg.Alt)
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.modal {
		case modalSettings:
			return m.updateSettings(msg)
		case modalConfirmReset:
			return m.updateConfirmReset(msg)
		case modalPreview:
			return m.updatePreview(msg)
		}
		return m.updateOutline(msg)
	}

	// Shift+Enter and Shift+Delete arrive as CSI sequences Bubble Tea does not map.
	if s, ok := msg.(fmt.Stringer); ok {
		if raw := s.String(); strings.HasPrefix(raw, "?CSI[") {
			decoded, _ := decodeUnknownCSIString(raw)
			m.debugLogf("csi modal=%d field=%s str=%q decoded=%q", int(m.modal), m.cur.field, raw, decoded)
			if m.modal == modalNone {
				if st, ok := strokeFromUnknownCSI(raw); ok {
					m.applyStroke(st)
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.modal == modalSettings {
		m.settings.input, cmd = m.settings.input.Update(msg)
		return m, cmd
	}
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateOutline(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch km.String() {
	case "ctrl+q":
		return m, tea.Quit
	case "ctrl+s":
		return m, m.openSettings()
	case "ctrl+p":
		m.openPreview()
		return m, nil
	case "ctrl+r":
		m.modal = modalConfirmReset
		m.confirmFocus = confirmFocusCancel
		return m, nil
	case "ctrl+t":
		m.toggleCollapse()
		return m, nil
	case "ctrl+x":
		m.deleteCurrent()
		return m, nil
	}

	if st, ok := strokeFromKey(km); ok {
		if m.applyStroke(st) {
			return m, nil
		}
	}

	switch km.Type {
	case tea.KeyTab:
		m.moveField(1)
		return m, nil
	case tea.KeyShiftTab:
		m.moveField(-1)
		return m, nil
	case tea.KeyUp:
		m.moveRow(-1)
		return m, nil
	case tea.KeyDown:
		m.moveRow(1)
		return m, nil
	case tea.KeyEnter, tea.KeyEsc:
		return m, nil
	}

	switch m.cur.field {
	case focus.FieldComplexity:
		switch {
		case km.Type == tea.KeyLeft || km.String() == "h":
			m.cycleComplexity(-1)
		case km.Type == tea.KeyRight || km.Type == tea.KeySpace || km.String() == "l":
			m.cycleComplexity(1)
		}
		return m, nil
	case focus.FieldAddMain:
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(km)
	m.commitInput()
	return m, cmd
}

// applyStroke runs the authoring key rules for the focused field and moves
// focus to wherever they asked. It reports whether the key was consumed.
func (m *appModel) applyStroke(st focus.Stroke) bool {
	res := m.sess.HandleKey(focus.Event{Stroke: st, Field: m.cur.field, ItemID: m.cur.itemID})
	if !res.Handled {
		return false
	}
	m.debugLogf("rule action=%s new=%s focus=%s", res.Action, res.NewItemID, res.FocusID)

	switch res.Action {
	case focus.ActionFocusAddMain:
		m.focusLocation(location{field: focus.FieldAddMain})
		return true
	case focus.ActionDeleteSub:
		m.setStatus("Deleted sub page", false)
	}
	if !m.applyPendingFocus() {
		m.ensureCursor()
	}
	return true
}

// applyPendingFocus moves focus to the outline's one-shot focus request, if any.
func (m *appModel) applyPendingFocus() bool {
	id, ok := m.sess.ConsumeFocus()
	if !ok {
		return false
	}
	m.focusLocation(location{field: focus.FieldName, itemID: id})
	return true
}

func (m *appModel) setStatus(s string, isError bool) {
	m.status = s
	m.statusIsError = isError
}

func (m appModel) updateConfirmReset(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirm := false
	switch km.String() {
	case "esc", "n":
		m.modal = modalNone
		return m, nil
	case "y":
		confirm = true
	case "tab", "shift+tab", "left", "right", "h", "l":
		m.confirmFocus = m.confirmFocus.toggle()
		return m, nil
	case "enter":
		confirm = m.confirmFocus == confirmFocusConfirm
		if !confirm {
			m.modal = modalNone
			return m, nil
		}
	default:
		return m, nil
	}

	if confirm {
		m.sess.Reset()
		m.modal = modalNone
		m.offset = 0
		m.focusLocation(location{field: focus.FieldProject})
		m.debugLogf("reset")
		m.setStatus("Outline cleared", false)
	}
	return m, nil
}
