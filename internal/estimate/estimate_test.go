package estimate

import (
	"math"
	"testing"

	"design-timeline/internal/config"
	"design-timeline/internal/model"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestItemDays_Formula(t *testing.T) {
	t.Parallel()

	cfg := config.Default() // normal=0.5, pageTimeDays=0.3
	it := model.Item{ID: "item-a", Kind: model.KindMain, EstimatedScreens: 3, Complexity: model.ComplexityNormal}
	if got := ItemDays(it, cfg); !near(got, 1.05) {
		t.Fatalf("ItemDays: got %v, want 1.05", got)
	}
}

func TestItemDays_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		screens float64
		cx      model.Complexity
		page    float64
		want    float64
	}{
		{name: "sub default", screens: 0, cx: model.ComplexityNormal, page: 0.3, want: 0.15},
		{name: "medium", screens: 2, cx: model.ComplexityMedium, page: 0.2, want: 0.6},
		{name: "hard", screens: 1, cx: model.ComplexityHard, page: 0.4, want: 1.2},
		{name: "unknown tag uses 1", screens: 1, cx: model.Complexity("epic"), page: 0.5, want: 1},
		{name: "negative screens coerced", screens: -5, cx: model.ComplexityNormal, page: 1, want: 0.5},
		{name: "zero page time", screens: 9, cx: model.ComplexityHard, page: 0, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			cfg.SetPageTimeDays(tt.page)
			got := ItemDays(model.Item{EstimatedScreens: tt.screens, Complexity: tt.cx}, cfg)
			if !near(got, tt.want) {
				t.Fatalf("ItemDays: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompute_PreservesOrderAndSums(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	items := []model.Item{
		{ID: "m1", Kind: model.KindMain, EstimatedScreens: 1, Complexity: model.ComplexityNormal},
		{ID: "s1", Kind: model.KindSub, EstimatedScreens: 0, Complexity: model.ComplexityMedium},
		{ID: "m2", Kind: model.KindMain, EstimatedScreens: 4, Complexity: model.ComplexityHard},
	}
	res := Compute(items, cfg)

	if len(res.Rows) != len(items) {
		t.Fatalf("rows: got %d, want %d", len(res.Rows), len(items))
	}
	sum := 0.0
	for i, row := range res.Rows {
		if row.ID != items[i].ID {
			t.Fatalf("row %d: got id %q, want %q", i, row.ID, items[i].ID)
		}
		sum += row.Days
	}
	if !near(res.TotalDays, sum) {
		t.Fatalf("TotalDays: got %v, want %v", res.TotalDays, sum)
	}
	if !near(res.TotalHours, sum*8) {
		t.Fatalf("TotalHours: got %v, want %v", res.TotalHours, sum*8)
	}
	if !near(res.HoursPerPage, 2.4) {
		t.Fatalf("HoursPerPage: got %v, want 2.4", res.HoursPerPage)
	}
	if d, ok := res.Days("m2"); !ok || !near(d, 1.8) {
		t.Fatalf("Days(m2): got (%v,%v), want (1.8,true)", d, ok)
	}
	if _, ok := res.Days("missing"); ok {
		t.Fatalf("expected missing id lookup to fail")
	}
}

func TestCompute_TotalsAreOrderIndependent(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	a := []model.Item{
		{ID: "a", EstimatedScreens: 2, Complexity: model.ComplexityNormal},
		{ID: "b", EstimatedScreens: 1, Complexity: model.ComplexityHard},
		{ID: "c", EstimatedScreens: 5, Complexity: model.ComplexityMedium},
	}
	b := []model.Item{a[2], a[0], a[1]}
	if ra, rb := Compute(a, cfg), Compute(b, cfg); !near(ra.TotalDays, rb.TotalDays) {
		t.Fatalf("totals differ by order: %v vs %v", ra.TotalDays, rb.TotalDays)
	}
}

func TestCompute_Empty(t *testing.T) {
	t.Parallel()

	res := Compute(nil, config.Default())
	if len(res.Rows) != 0 || res.TotalDays != 0 || res.TotalHours != 0 {
		t.Fatalf("expected zero result; got %+v", res)
	}
	if res.Rows == nil {
		t.Fatalf("expected non-nil rows for JSON output")
	}
}
