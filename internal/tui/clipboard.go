package tui

import (
	"strings"

	"github.com/atotto/clipboard"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

func copyToClipboard(s string) error {
	return clipboardWrite(strings.ReplaceAll(s, "\r\n", "\n"))
}
