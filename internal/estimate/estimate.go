// Package estimate derives per-item and aggregate durations from an outline.
package estimate

import (
	"design-timeline/internal/config"
	"design-timeline/internal/model"
)

type Row struct {
	ID   string  `json:"id" yaml:"id"`
	Days float64 `json:"days" yaml:"days"`
}

type Result struct {
	// Rows are in item order.
	Rows         []Row   `json:"rows" yaml:"rows"`
	TotalDays    float64 `json:"totalDays" yaml:"totalDays"`
	TotalHours   float64 `json:"totalHours" yaml:"totalHours"`
	HoursPerPage float64 `json:"hoursPerPage" yaml:"hoursPerPage"`
}

// ItemDays is (estimatedScreens + multiplier(complexity)) x pageTimeDays.
func ItemDays(it model.Item, cfg config.Configuration) float64 {
	screens := model.CoerceScreens(it.EstimatedScreens)
	page := model.CoerceScreens(cfg.PageTimeDays)
	return (screens + cfg.Multiplier(it.Complexity)) * page
}

// Compute is a pure function of items and cfg. Collapse state plays no part:
// hidden Sub items still count toward the totals.
func Compute(items []model.Item, cfg config.Configuration) Result {
	res := Result{
		Rows:         make([]Row, 0, len(items)),
		HoursPerPage: cfg.HoursPerPage(),
	}
	for _, it := range items {
		d := ItemDays(it, cfg)
		res.Rows = append(res.Rows, Row{ID: it.ID, Days: d})
		res.TotalDays += d
	}
	res.TotalHours = res.TotalDays * model.CoerceScreens(cfg.HoursPerDay)
	return res
}

// Days returns the computed days for id.
func (r Result) Days(id string) (float64, bool) {
	for _, row := range r.Rows {
		if row.ID == id {
			return row.Days, true
		}
	}
	return 0, false
}

// Index maps item id -> days for callers joining against a rendered outline.
func (r Result) Index() map[string]float64 {
	out := make(map[string]float64, len(r.Rows))
	for _, row := range r.Rows {
		out[row.ID] = row.Days
	}
	return out
}
