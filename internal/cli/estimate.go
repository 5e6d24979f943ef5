package cli

import (
	"strings"

	"design-timeline/internal/config"
	"design-timeline/internal/estimate"
	"design-timeline/internal/model"
	"design-timeline/internal/report"

	"github.com/spf13/cobra"
)

type estimateOutput struct {
	Screens      float64          `json:"screens" yaml:"screens"`
	Complexity   model.Complexity `json:"complexity" yaml:"complexity"`
	Multiplier   float64          `json:"multiplier" yaml:"multiplier"`
	Role         config.Role      `json:"role" yaml:"role"`
	PageTimeDays float64          `json:"pageTimeDays" yaml:"pageTimeDays"`
	HoursPerDay  float64          `json:"hoursPerDay" yaml:"hoursPerDay"`
	Days         float64          `json:"days" yaml:"days"`
	Hours        float64          `json:"hours" yaml:"hours"`
}

func (o estimateOutput) TableHeader() []string { return []string{"FIELD", "VALUE"} }

func (o estimateOutput) TableRows() [][]string {
	return [][]string{
		{"screens", report.FormatFixed(o.Screens, -1)},
		{"complexity", o.Complexity.Label()},
		{"multiplier", report.FormatFixed(o.Multiplier, -1)},
		{"role", string(o.Role)},
		{"page time (days)", report.FormatFixed(o.PageTimeDays, -1)},
		{"hours per day", report.FormatFixed(o.HoursPerDay, -1)},
		{"days", report.FormatFixed(o.Days, 2)},
		{"hours", report.FormatFixed(o.Hours, 2)},
	}
}

func newEstimateCmd(app *App) *cobra.Command {
	var screens string
	var complexity string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the duration of a single page",
		Example: strings.TrimSpace(`
  timeline estimate --screens 3
  timeline estimate --screens 2 --complexity hard --role junior --format table
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sessionConfig(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cx, ok := model.ParseComplexity(complexity)
			if !ok {
				return writeErr(cmd, errInvalidFlag("complexity", complexity, "expected normal, medium or hard"))
			}

			it := model.NewMain("estimate")
			it.EstimatedScreens = model.ParseScreens(screens)
			it.Complexity = cx
			days := estimate.ItemDays(it, cfg)

			return writeOut(cmd, app, estimateOutput{
				Screens:      it.EstimatedScreens,
				Complexity:   cx,
				Multiplier:   cfg.Multiplier(cx),
				Role:         cfg.Role,
				PageTimeDays: cfg.PageTimeDays,
				HoursPerDay:  cfg.HoursPerDay,
				Days:         days,
				Hours:        days * cfg.HoursPerDay,
			})
		},
	}

	cmd.Flags().StringVar(&screens, "screens", "1", "Estimated screen count (non-numeric input counts as 0)")
	cmd.Flags().StringVar(&complexity, "complexity", string(model.ComplexityNormal), "Complexity (normal|medium|hard)")
	return cmd
}
