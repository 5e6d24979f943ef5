package cli

import (
	"fmt"
	"os"
	"strings"

	"design-timeline/internal/config"
	"design-timeline/internal/format"
	"design-timeline/internal/session"
	"design-timeline/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigDir  string
	PrettyJSON bool
	Format     string

	// Session overrides (not written back to the settings file).
	Role         string
	PageTimeDays float64
	HoursPerDay  float64

	Project string
	OutDir  string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "timeline",
		Short:        "Estimate UI design effort from an outline of pages",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive outline editor
  timeline

  # Start with a project name and a senior page time
  timeline --project "Acme Portal" --role senior

  # One-off estimate for a single page
  timeline estimate --screens 3 --complexity hard

  # Inspect or edit the settings file
  timeline config show --format table
  timeline config set hours_per_day 7
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigDir, "config-dir", envOr("TIMELINE_CONFIG_DIR", ""), "Settings directory (default: ~/.timeline)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TIMELINE_FORMAT", "json"), "Output format ("+strings.Join(format.Formats, "|")+")")

	cmd.PersistentFlags().StringVar(&app.Role, "role", "", "Role preset for this session (senior|middle|junior)")
	cmd.PersistentFlags().Float64Var(&app.PageTimeDays, "page-time", 0, "Days per page for this session (overrides the role preset)")
	cmd.PersistentFlags().Float64Var(&app.HoursPerDay, "hours-per-day", 0, "Working hours per day for this session")

	cmd.Flags().StringVar(&app.Project, "project", "", "Initial project name")
	cmd.Flags().StringVar(&app.OutDir, "out", ".", "Directory for exported reports")

	cmd.AddCommand(newEstimateCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newKeysCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	cfg, err := sessionConfig(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	s := session.New(cfg)
	s.SetProjectName(app.Project)
	return tui.Run(tui.Options{
		Session:   s,
		ConfigDir: app.ConfigDir,
		OutDir:    app.OutDir,
	})
}

// sessionConfig loads the settings file and applies the per-session flag overrides.
func sessionConfig(cmd *cobra.Command, app *App) (config.Configuration, error) {
	cfg, err := config.Load(app.ConfigDir)
	if err != nil {
		return config.Configuration{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("role") {
		if err := cfg.Set("role", app.Role); err != nil {
			return config.Configuration{}, err
		}
	}
	if flags.Changed("page-time") {
		if app.PageTimeDays < 0 {
			return config.Configuration{}, errInvalidFlag("page-time", fmt.Sprint(app.PageTimeDays), "must not be negative")
		}
		cfg.SetPageTimeDays(app.PageTimeDays)
	}
	if flags.Changed("hours-per-day") {
		if app.HoursPerDay < 0 {
			return config.Configuration{}, errInvalidFlag("hours-per-day", fmt.Sprint(app.HoursPerDay), "must not be negative")
		}
		cfg.SetHoursPerDay(app.HoursPerDay)
	}
	return cfg, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

type envelope struct {
	Data any `json:"data" yaml:"data"`
}

// writeOut writes v wrapped in the {"data": ...} envelope. Table output
// renders v directly.
func writeOut(cmd *cobra.Command, app *App, v any) error {
	if strings.EqualFold(strings.TrimSpace(app.Format), "table") {
		return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
	}
	return format.Write(cmd.OutOrStdout(), envelope{Data: v}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
