package main

import (
	"os"
	"strconv"
	"strings"

	"design-timeline/internal/cli"
	"design-timeline/internal/model"
)

func isScreenCount(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

func rewriteBareEstimateArgs(argv []string) []string {
	// Convenience: `timeline 3 hard` works like
	// `timeline estimate --screens 3 --complexity hard`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv before parsing.
	// Persistent flags may come first (`timeline --role senior 3`), so we look for the first
	// positional token, not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--format":        true,
		"--config-dir":    true,
		"--role":          true,
		"--page-time":     true,
		"--hours-per-day": true,
	}
	// Flags only the root (TUI) command accepts; estimate would reject them.
	rootFlags := map[string]bool{
		"--project": true,
		"--out":     true,
	}

	rewrite := func(i int) []string {
		out := make([]string, 0, len(argv)+3)
		out = append(out, argv[:i]...)
		out = append(out, "estimate", "--screens", strings.TrimSpace(argv[i]))
		rest := argv[i+1:]
		if len(rest) > 0 {
			if _, ok := model.ParseComplexity(rest[0]); ok {
				out = append(out, "--complexity", strings.TrimSpace(rest[0]))
				rest = rest[1:]
			}
		}
		return append(out, rest...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			name, _, _ := strings.Cut(a, "=")
			if rootFlags[name] {
				return argv
			}
			// --flag=value form
			if strings.Contains(a, "=") {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
			}
			continue
		}

		// First positional token.
		if isScreenCount(a) {
			return rewrite(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteBareEstimateArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
