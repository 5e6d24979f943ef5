package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"design-timeline/internal/config"
	"design-timeline/internal/model"
	"design-timeline/internal/report"

	"github.com/spf13/cobra"
)

type configView struct {
	Path   string               `json:"path" yaml:"path"`
	Exists bool                 `json:"exists" yaml:"exists"`
	Config config.Configuration `json:"config" yaml:"config"`
}

func (v configView) TableHeader() []string { return []string{"KEY", "VALUE"} }

func (v configView) TableRows() [][]string {
	cfg := v.Config
	rows := [][]string{
		{"role", string(cfg.Role)},
		{"page_time_days", report.FormatFixed(cfg.PageTimeDays, -1)},
		{"hours_per_day", report.FormatFixed(cfg.HoursPerDay, -1)},
	}
	for _, cx := range model.Complexities {
		rows = append(rows, []string{"multipliers." + string(cx), report.FormatFixed(cfg.Multiplier(cx), -1)})
	}
	for _, r := range cfg.SortedRoles() {
		p, _ := cfg.Preset(r)
		rows = append(rows, []string{"role_presets." + string(r), report.FormatFixed(p, -1)})
	}
	return rows
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the settings file",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigPathCmd(app))
	cmd.AddCommand(newConfigInitCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	return cmd
}

func loadConfigView(app *App) (configView, error) {
	path, err := config.Path(app.ConfigDir)
	if err != nil {
		return configView{}, err
	}
	cfg, err := config.Load(app.ConfigDir)
	if err != nil {
		return configView{}, err
	}
	_, statErr := os.Stat(path)
	return configView{Path: path, Exists: statErr == nil, Config: cfg}, nil
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective settings (defaults when no file exists)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfigView(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, v)
		},
	}
}

func newConfigPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path(app.ConfigDir)
			if err != nil {
				return writeErr(cmd, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path(app.ConfigDir)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return writeErr(cmd, errors.New("settings file exists (use --force): "+path))
				}
			}
			if err := config.Save(app.ConfigDir, config.Default()); err != nil {
				return writeErr(cmd, err)
			}
			v, err := loadConfigView(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, v)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")
	return cmd
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one setting",
		Long: "Set one setting and save the file.\n\nKeys:\n  " + strings.Join(config.Keys(), "\n  ") + "\n\n" +
			"Setting role also resets page_time_days to that role's preset.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(app.ConfigDir)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return writeErr(cmd, err)
			}
			if err := config.Save(app.ConfigDir, cfg); err != nil {
				return writeErr(cmd, err)
			}
			v, err := loadConfigView(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, v)
		},
	}
}
