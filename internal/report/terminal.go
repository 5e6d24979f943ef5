package report

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
)

var (
	termRendererMu sync.Mutex
	// Keyed by style name and wrap width. WithAutoStyle is avoided because its
	// terminal background query can block.
	termRenderers = map[string]*glamour.TermRenderer{}
)

// RenderTerminal renders r for a terminal of the given width using the given
// glamour style config. name keys the renderer cache and should identify cfg.
func RenderTerminal(r Report, width int, name string, cfg ansi.StyleConfig) string {
	md := RenderMarkdown(r)
	if width < 20 {
		width = 20
	}
	key := name + ":" + strconv.Itoa(width)

	termRendererMu.Lock()
	tr := termRenderers[key]
	termRendererMu.Unlock()

	if tr == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(cfg),
			glamour.WithWordWrap(width),
			glamour.WithEmoji(),
		)
		if err != nil {
			return md
		}
		termRendererMu.Lock()
		if existing := termRenderers[key]; existing != nil {
			tr = existing
		} else {
			termRenderers[key] = rr
			tr = rr
		}
		termRendererMu.Unlock()
	}

	out, err := tr.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
