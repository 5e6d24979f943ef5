package model

import (
	"math"
	"testing"
)

func TestParseScreens_CoercesMalformedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{in: "3", want: 3},
		{in: " 2.5 ", want: 2.5},
		{in: "", want: 0},
		{in: "abc", want: 0},
		{in: "-4", want: 0},
		{in: "NaN", want: 0},
		{in: "+Inf", want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := ParseScreens(tt.in); got != tt.want {
				t.Fatalf("ParseScreens(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseComplexity_AcceptsLegacyTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   Complexity
		wantOK bool
	}{
		{in: "normal", want: ComplexityNormal, wantOK: true},
		{in: "Medium", want: ComplexityMedium, wantOK: true},
		{in: "quite", want: ComplexityMedium, wantOK: true},
		{in: "more", want: ComplexityHard, wantOK: true},
		{in: "hard", want: ComplexityHard, wantOK: true},
		{in: "epic", want: Complexity("epic"), wantOK: false},
	}
	for _, tt := range tests {
		got, ok := ParseComplexity(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("ParseComplexity(%q): got (%q,%v), want (%q,%v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestItemPatch_NeverTouchesKindOrID(t *testing.T) {
	it := NewSub("item-1")
	name := "Login"
	screens := math.Inf(1)
	c := ComplexityHard
	got := ItemPatch{Name: &name, EstimatedScreens: &screens, Complexity: &c}.Apply(it)

	if got.ID != "item-1" || got.Kind != KindSub {
		t.Fatalf("expected id/kind unchanged; got id=%q kind=%q", got.ID, got.Kind)
	}
	if got.Name != "Login" || got.Complexity != ComplexityHard {
		t.Fatalf("expected name/complexity patched; got %+v", got)
	}
	if got.EstimatedScreens != 0 {
		t.Fatalf("expected infinite screens coerced to 0; got %v", got.EstimatedScreens)
	}
}

func TestDefaults(t *testing.T) {
	m := NewMain("a")
	if m.EstimatedScreens != 1 || m.Complexity != ComplexityNormal || m.Name != DefaultMainName {
		t.Fatalf("unexpected Main defaults: %+v", m)
	}
	s := NewSub("b")
	if s.EstimatedScreens != 0 || s.Complexity != ComplexityNormal || s.Name != DefaultSubName {
		t.Fatalf("unexpected Sub defaults: %+v", s)
	}
}

func TestComplexityCycle(t *testing.T) {
	c := ComplexityNormal
	for i := 0; i < len(Complexities); i++ {
		c = c.Next()
	}
	if c != ComplexityNormal {
		t.Fatalf("expected full cycle to return to normal; got %q", c)
	}
	if got := ComplexityNormal.Prev(); got != ComplexityHard {
		t.Fatalf("expected normal.Prev()=hard; got %q", got)
	}
	if got := Complexity("x").Next(); got != ComplexityNormal {
		t.Fatalf("expected unknown tag to restart at normal; got %q", got)
	}
}
