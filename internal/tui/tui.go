// Package tui is the interactive outline editor.
package tui

import (
	"fmt"
	"log"
	"os"
	"strings"

	"design-timeline/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Session *session.Session
	// ConfigDir is where "save settings" writes (empty: the default settings dir).
	ConfigDir string
	// OutDir receives exported reports.
	OutDir string
}

func Run(opts Options) error {
	applyThemePreference()
	applyColorProfilePreference()

	debug := false
	if p := strings.TrimSpace(os.Getenv("TIMELINE_DEBUG_LOG")); p != "" {
		f, err := tea.LogToFile(p, "timeline")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
		debug = true
	}

	m := newAppModel(opts)
	m.debugEnabled = debug
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// debugLogf writes to the TIMELINE_DEBUG_LOG file; it is a no-op otherwise.
func (m *appModel) debugLogf(format string, args ...any) {
	if !m.debugEnabled {
		return
	}
	log.Printf(format, args...)
}
