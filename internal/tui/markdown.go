package tui

import (
	"strings"

	"design-timeline/internal/report"

	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// renderReport renders the report preview with a glamour style that follows
// the TUI theme.
func renderReport(r report.Report, width int) string {
	name := markdownStyle()
	return report.RenderTerminal(r, width, name, markdownStyleConfig(name))
}

func markdownStyle() string {
	if p := themePreference(); p != "" {
		return p
	}
	// Avoid glamour's auto style: its background query can block.
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func markdownStyleConfig(styleName string) ansi.StyleConfig {
	switch strings.ToLower(strings.TrimSpace(styleName)) {
	case "light":
		cfg := styles.LightStyleConfig
		applyTimelineMarkdownPalette(&cfg, "light")
		return cfg
	default:
		cfg := styles.DarkStyleConfig
		applyTimelineMarkdownPalette(&cfg, "dark")
		return cfg
	}
}

func applyTimelineMarkdownPalette(cfg *ansi.StyleConfig, styleName string) {
	if cfg == nil {
		return
	}

	headingColor := mdColor(colorSurfaceFg, styleName)
	cfg.Heading.Color = headingColor
	cfg.H1.Color = headingColor
	cfg.H2.Color = headingColor

	// The default H1 uses a bright background block; keep the title plain.
	cfg.H1.BackgroundColor = nil
	cfg.H1.Prefix = ""
	cfg.H1.Suffix = ""

	cfg.Text.Color = mdColor(colorSurfaceFg, styleName)
	cfg.Strong.Color = mdColor(colorAccent, styleName)
	cfg.Emph.Color = nil
}

func mdColor(c lipgloss.AdaptiveColor, styleName string) *string {
	if strings.TrimSpace(strings.ToLower(styleName)) == "light" {
		return mdStrPtr(c.Light)
	}
	return mdStrPtr(c.Dark)
}

func mdStrPtr(s string) *string { return &s }
