package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The editor must stay readable on light and dark terminals: colors are
// lipgloss.AdaptiveColor, and faint text is only used on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted        = ac("240", "243")
	colorChromeMuted  = ac("240", "245")
	colorSelectedBg   = ac("#e9e9e9", "#262626")
	colorSelectedFg   = ac("235", "255")
	colorSurfaceBg    = ac("255", "235")
	colorSurfaceFg    = ac("235", "252")
	colorControlBg    = ac("252", "235")
	colorInputBg      = ac("254", "234")
	colorAccent       = ac("27", "62")
	colorAccentFg     = ac("255", "235")
	colorError        = ac("160", "203")
	colorModalBorder  = ac("250", "243")
	colorModalHeadBg  = colorControlBg
	colorModalHeadFg  = colorSurfaceFg
	colorMainRowFg    = ac("232", "255")
	colorSubRowFg     = colorSurfaceFg
	colorSummaryValue = colorAccent
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
}

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorChromeMuted)
}

func styleMainRow() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorMainRowFg)
}

func styleSubRow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSubRowFg)
}

// styleFocusedCell marks the cell holding input focus.
func styleFocusedCell() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
}

func styleButton(active bool) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 1).Foreground(colorSurfaceFg).Background(colorControlBg)
	if active {
		st = st.Foreground(colorAccentFg).Background(colorAccent).Bold(true)
	}
	return st
}

func styleInput() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorInputBg).Foreground(colorSurfaceFg)
}

func styleSummaryValue() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorSummaryValue)
}

func styleStatus(isError bool) lipgloss.Style {
	if isError {
		return lipgloss.NewStyle().Foreground(colorError).Bold(true)
	}
	return styleMuted()
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile also honors CLICOLOR, which can disable colors in a
// TUI by accident; only NO_COLOR is honored here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they claim more than the detector found.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) TIMELINE_TUI_THEME=light|dark|auto
// 2) COLORFGBG heuristic ("15;0" = fg;bg)
func applyThemePreference() {
	switch themePreference() {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}
}

// themePreference returns "light", "dark" or "" (let Lip Gloss detect).
func themePreference() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TIMELINE_TUI_THEME"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			// 0-6 are the dark colors of the usual xterm palette.
			if bg < 7 {
				return "dark"
			}
			return "light"
		}
	}
	return ""
}
