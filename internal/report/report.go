// Package report builds the printable summary of an outline and renders it
// as Markdown, HTML or styled terminal text.
package report

import (
	"strings"

	"design-timeline/internal/config"
	"design-timeline/internal/estimate"
	"design-timeline/internal/model"
)

const baseTitle = "Design Timeline"

type Row struct {
	ID         string     `json:"id" yaml:"id"`
	Kind       model.Kind `json:"kind" yaml:"kind"`
	Name       string     `json:"name" yaml:"name"`
	Screens    float64    `json:"screens" yaml:"screens"`
	Complexity string     `json:"complexity" yaml:"complexity"`
	Days       float64    `json:"days" yaml:"days"`
}

type Summary struct {
	HoursPerPage float64 `json:"hoursPerPage" yaml:"hoursPerPage"`
	RoleLabel    string  `json:"role" yaml:"role"`
	TotalHours   float64 `json:"totalHours" yaml:"totalHours"`
	TotalDays    float64 `json:"totalDays" yaml:"totalDays"`
}

type Report struct {
	Title       string  `json:"title" yaml:"title"`
	ProjectName string  `json:"projectName,omitempty" yaml:"projectName,omitempty"`
	Rows        []Row   `json:"rows" yaml:"rows"`
	Summary     Summary `json:"summary" yaml:"summary"`
}

// Build assembles a Report. It renders nothing itself; items appear in outline
// order regardless of collapse state.
func Build(projectName string, items []model.Item, est estimate.Result, cfg config.Configuration) Report {
	projectName = strings.TrimSpace(projectName)
	days := est.Index()

	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, Row{
			ID:         it.ID,
			Kind:       it.Kind,
			Name:       it.Name,
			Screens:    model.CoerceScreens(it.EstimatedScreens),
			Complexity: it.Complexity.Label(),
			Days:       days[it.ID],
		})
	}

	return Report{
		Title:       Title(projectName),
		ProjectName: projectName,
		Rows:        rows,
		Summary: Summary{
			HoursPerPage: est.HoursPerPage,
			RoleLabel:    cfg.RoleLabel(),
			TotalHours:   est.TotalHours,
			TotalDays:    est.TotalDays,
		},
	}
}

// Title is "<project> - Design Timeline", or just "Design Timeline".
func Title(projectName string) string {
	projectName = strings.TrimSpace(projectName)
	if projectName == "" {
		return baseTitle
	}
	return projectName + " - " + baseTitle
}
