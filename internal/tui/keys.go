package tui

import (
	"strconv"
	"strings"

	"design-timeline/internal/focus"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding describes one editor key for `timeline keys` and the help line.
type KeyBinding struct {
	Keys   string `json:"keys" yaml:"keys"`
	Where  string `json:"where" yaml:"where"`
	Action string `json:"action" yaml:"action"`
}

func KeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: "enter", Where: "main row", Action: "add a sub page at the end of its group"},
		{Keys: "enter", Where: "sub row", Action: "add a sub page right below"},
		{Keys: "shift+enter (alt+enter)", Where: "sub row", Action: "add a main page after the group"},
		{Keys: "shift+delete, shift+backspace (ctrl+d, alt+backspace)", Where: "sub name", Action: "delete the sub page, focus the previous one"},
		{Keys: "tab", Where: "project name", Action: "jump to the add main page button"},
		{Keys: "enter", Where: "add main page", Action: "add a main page"},
		{Keys: "tab / shift+tab", Where: "anywhere", Action: "next / previous field"},
		{Keys: "up / down", Where: "outline", Action: "previous / next row"},
		{Keys: "left / right, space", Where: "complexity", Action: "change complexity"},
		{Keys: "ctrl+t", Where: "outline", Action: "collapse / expand the group"},
		{Keys: "ctrl+x", Where: "outline", Action: "delete the row (a main deletes its group)"},
		{Keys: "ctrl+s", Where: "outline", Action: "settings"},
		{Keys: "ctrl+p", Where: "outline", Action: "report preview (e: export html, m: export markdown, y: copy)"},
		{Keys: "ctrl+r", Where: "outline", Action: "reset the outline"},
		{Keys: "ctrl+c, ctrl+q", Where: "anywhere", Action: "quit"},
	}
}

// strokeFromKey maps a key onto the authoring strokes the focus rules know.
// Terminals without modifier reporting can use alt+enter for Shift+Enter and
// ctrl+d / alt+backspace for Shift+Delete / Shift+Backspace.
func strokeFromKey(km tea.KeyMsg) (focus.Stroke, bool) {
	switch km.Type {
	case tea.KeyEnter:
		return focus.Stroke{Key: focus.KeyEnter, Shift: km.Alt}, true
	case tea.KeyTab:
		return focus.Stroke{Key: focus.KeyTab}, true
	case tea.KeyShiftTab:
		return focus.Stroke{Key: focus.KeyTab, Shift: true}, true
	case tea.KeyDelete:
		return focus.Stroke{Key: focus.KeyDelete}, true
	case tea.KeyBackspace:
		return focus.Stroke{Key: focus.KeyBackspace, Shift: km.Alt}, true
	case tea.KeyCtrlD:
		return focus.Stroke{Key: focus.KeyDelete, Shift: true}, true
	}
	return focus.Stroke{}, false
}

// strokeFromUnknownCSI decodes the modified Enter/Delete/Backspace sequences
// Bubble Tea reports as unknown CSI (e.g. "?CSI[51 59 50 126]?" is "3;2~",
// Shift+Delete). Both the xterm modifyOtherKeys and CSI-u forms are accepted.
func strokeFromUnknownCSI(raw string) (focus.Stroke, bool) {
	seq, ok := decodeUnknownCSIString(raw)
	if !ok {
		return focus.Stroke{}, false
	}

	var key focus.Key
	var params []string
	switch {
	case strings.HasSuffix(seq, "u"):
		// CSI <code> ; <mod> u
		params = strings.Split(strings.TrimSuffix(seq, "u"), ";")
		if len(params) != 2 {
			return focus.Stroke{}, false
		}
		key = keyFromCode(params[0])
		params = params[1:]
	case strings.HasPrefix(seq, "27;") && strings.HasSuffix(seq, "~"):
		// CSI 27 ; <mod> ; <code> ~
		p := strings.Split(strings.TrimSuffix(seq, "~"), ";")
		if len(p) != 3 {
			return focus.Stroke{}, false
		}
		key = keyFromCode(p[2])
		params = p[1:2]
	case strings.HasPrefix(seq, "3;") && strings.HasSuffix(seq, "~"):
		// CSI 3 ; <mod> ~
		key = focus.KeyDelete
		params = []string{strings.TrimSuffix(strings.TrimPrefix(seq, "3;"), "~")}
	default:
		return focus.Stroke{}, false
	}
	if key == 0 {
		return focus.Stroke{}, false
	}

	mod, err := strconv.Atoi(params[0])
	if err != nil || mod < 1 {
		return focus.Stroke{}, false
	}
	// xterm modifier encoding: 1 + (shift=1 | alt=2 | ctrl=4 ...).
	shift := (mod-1)&1 == 1
	return focus.Stroke{Key: key, Shift: shift}, true
}

func keyFromCode(code string) focus.Key {
	switch strings.TrimSpace(code) {
	case "13":
		return focus.KeyEnter
	case "127", "8":
		return focus.KeyBackspace
	case "9":
		return focus.KeyTab
	}
	return 0
}

// decodeUnknownCSIString turns Bubble Tea's "?CSI[49 59 50 126]?" rendering
// back into the sequence text ("1;2~").
func decodeUnknownCSIString(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "?CSI[") || !strings.HasSuffix(raw, "]?") {
		return "", false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(raw, "?CSI["), "]?")
	fields := strings.Fields(inner)
	if len(fields) == 0 {
		return "", false
	}
	b := make([]byte, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n > 255 {
			return "", false
		}
		b = append(b, byte(n))
	}
	return string(b), true
}
