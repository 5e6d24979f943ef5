package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"design-timeline/internal/config"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func mustData(t *testing.T, args ...string) map[string]any {
	t.Helper()
	stdout, stderr, err := runCLI(t, args)
	if err != nil {
		t.Fatalf("command failed: timeline %v\nerr: %v\nstderr:\n%s", args, err, string(stderr))
	}
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal stdout: %v\nstdout:\n%s", err, string(stdout))
	}
	data, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object; got %#v", env)
	}
	return data
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestEstimate(t *testing.T) {
	t.Setenv("TIMELINE_CONFIG_DIR", t.TempDir())

	tests := []struct {
		name string
		args []string
		days float64
	}{
		{name: "defaults", args: []string{"estimate", "--screens", "3"}, days: (3 + 0.5) * 0.3},
		{name: "hard senior", args: []string{"estimate", "--screens", "2", "--complexity", "hard", "--role", "senior"}, days: (2 + 2) * 0.2},
		{name: "legacy tag", args: []string{"estimate", "--screens", "1", "--complexity", "quite"}, days: (1 + 1) * 0.3},
		{name: "non-numeric screens", args: []string{"estimate", "--screens", "abc"}, days: 0.5 * 0.3},
		{name: "page time override", args: []string{"estimate", "--screens", "1", "--page-time", "0.5"}, days: 1.5 * 0.5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			data := mustData(t, tt.args...)
			got, _ := data["days"].(float64)
			if !approx(got, tt.days) {
				t.Fatalf("days: got %v, want %v", got, tt.days)
			}
		})
	}
}

func TestEstimate_HoursUseHoursPerDay(t *testing.T) {
	t.Setenv("TIMELINE_CONFIG_DIR", t.TempDir())
	data := mustData(t, "estimate", "--screens", "1", "--complexity", "medium", "--hours-per-day", "6")
	if got, _ := data["hours"].(float64); !approx(got, 2*0.3*6) {
		t.Fatalf("hours: got %v, want %v", got, 2*0.3*6)
	}
}

func TestEstimate_Errors(t *testing.T) {
	t.Setenv("TIMELINE_CONFIG_DIR", t.TempDir())

	_, stderr, err := runCLI(t, []string{"estimate", "--complexity", "extreme"})
	if err == nil || !strings.Contains(string(stderr), "--complexity") {
		t.Fatalf("expected complexity error; err=%v stderr=%q", err, string(stderr))
	}

	_, _, err = runCLI(t, []string{"estimate", "--role", "intern"})
	var roleErr config.UnknownRoleError
	if !errors.As(err, &roleErr) {
		t.Fatalf("expected UnknownRoleError; got %v", err)
	}
}

func TestEstimate_TableFormat(t *testing.T) {
	t.Setenv("TIMELINE_CONFIG_DIR", t.TempDir())
	stdout, _, err := runCLI(t, []string{"--format", "table", "estimate", "--screens", "3"})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	out := string(stdout)
	for _, want := range []string{"FIELD", "complexity", "Normal", "1.05"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table output:\n%s", want, out)
		}
	}
}

func TestConfigSetShowRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TIMELINE_CONFIG_DIR", dir)

	show := mustData(t, "config", "show")
	if exists, _ := show["exists"].(bool); exists {
		t.Fatalf("expected no settings file yet")
	}

	mustData(t, "config", "set", "hours_per_day", "7")
	set := mustData(t, "config", "set", "role", "junior")
	cfg, _ := set["config"].(map[string]any)
	if cfg["role"] != "junior" || !approx(cfg["pageTimeDays"].(float64), 0.4) || !approx(cfg["hoursPerDay"].(float64), 7) {
		t.Fatalf("unexpected config after set: %#v", cfg)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("expected settings file: %v", err)
	}

	// Settings flow into estimates.
	est := mustData(t, "estimate", "--screens", "0", "--complexity", "hard")
	if got, _ := est["hours"].(float64); !approx(got, 2*0.4*7) {
		t.Fatalf("hours: got %v, want %v", got, 2*0.4*7)
	}
}

func TestConfigSet_UnknownKey(t *testing.T) {
	t.Setenv("TIMELINE_CONFIG_DIR", t.TempDir())
	_, _, err := runCLI(t, []string{"config", "set", "colour", "1"})
	var keyErr config.UnknownKeyError
	if !errors.As(err, &keyErr) {
		t.Fatalf("expected UnknownKeyError; got %v", err)
	}
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	mustData(t, "--config-dir", dir, "config", "init")
	if _, _, err := runCLI(t, []string{"--config-dir", dir, "config", "init"}); err == nil {
		t.Fatalf("expected init to refuse overwriting")
	}
	mustData(t, "--config-dir", dir, "config", "init", "--force")

	stdout, _, err := runCLI(t, []string{"--config-dir", dir, "config", "path"})
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if got, want := strings.TrimSpace(string(stdout)), filepath.Join(dir, "config.yaml"); got != want {
		t.Fatalf("path: got %q, want %q", got, want)
	}
}

func TestConfigShow_YAML(t *testing.T) {
	t.Setenv("TIMELINE_CONFIG_DIR", t.TempDir())
	stdout, _, err := runCLI(t, []string{"--format", "yaml", "config", "show"})
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(string(stdout), "hours_per_day: 8") {
		t.Fatalf("expected yaml settings:\n%s", string(stdout))
	}
}

func TestKeys_DefaultsToTable(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"keys"})
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	out := string(stdout)
	for _, want := range []string{"KEYS", "shift+enter", "shift+delete"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in keys output:\n%s", want, out)
		}
	}
}

func TestDocs_ListsTopics(t *testing.T) {
	data := mustData(t, "docs")
	topics, ok := data["topics"].([]any)
	if !ok || len(topics) == 0 {
		t.Fatalf("topics = %#v", data["topics"])
	}
}

func TestDocs_Raw(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"docs", "estimation", "--raw"})
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Estimation") {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestDocs_UnknownTopic(t *testing.T) {
	_, stderr, err := runCLI(t, []string{"docs", "nope"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(string(stderr), "unknown docs topic") {
		t.Fatalf("stderr = %q", stderr)
	}
}
