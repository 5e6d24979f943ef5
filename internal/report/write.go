package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrFileExists = errors.New("file exists")

// Format selects the on-disk rendering of a report.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "md"
)

// FormatForPath infers the export format from a file extension; anything other
// than .md/.markdown is HTML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatHTML
	}
}

// Render renders r in the given format.
func Render(r Report, f Format) ([]byte, error) {
	switch f {
	case FormatMarkdown:
		return []byte(RenderMarkdown(r)), nil
	case FormatHTML, "":
		return RenderHTML(r)
	default:
		return nil, fmt.Errorf("unknown report format %q", f)
	}
}

// WriteFile renders r (format inferred from path) and writes it to path.
// Existing files are kept unless overwrite is set.
func WriteFile(path string, r Report, overwrite bool) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("missing output path")
	}
	b, err := Render(r, FormatForPath(path))
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w (use --overwrite): %s", ErrFileExists, path)
		}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, b, 0o644)
}
