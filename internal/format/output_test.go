package format

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	Name string  `json:"name" yaml:"name"`
	Days float64 `json:"days" yaml:"days"`
}

type sampleTable []sample

func (s sampleTable) TableHeader() []string { return []string{"NAME", "DAYS"} }

func (s sampleTable) TableRows() [][]string {
	var out [][]string
	for _, r := range s {
		out = append(out, []string{r.Name, "x"})
	}
	return out
}

func TestWrite(t *testing.T) {
	v := sample{Name: "Home", Days: 1.5}
	tests := []struct {
		format string
		pretty bool
		want   string
	}{
		{format: "", want: "{\"name\":\"Home\",\"days\":1.5}\n"},
		{format: "json", want: "{\"name\":\"Home\",\"days\":1.5}\n"},
		{format: "json", pretty: true, want: "{\n  \"name\": \"Home\",\n  \"days\": 1.5\n}\n"},
		{format: "yaml", want: "name: Home\ndays: 1.5\n"},
		{format: "YAML", want: "name: Home\ndays: 1.5\n"},
		{format: "table", want: "name: Home\ndays: 1.5\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, v, tt.format, tt.pretty); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleTable{{Name: "Home"}, {Name: "Login"}}, "table", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows; got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "NAME") || !strings.HasPrefix(lines[2], "Login") {
		t.Fatalf("unexpected table:\n%s", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, 1, "edn", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
