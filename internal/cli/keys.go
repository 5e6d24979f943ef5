package cli

import (
	"design-timeline/internal/tui"

	"github.com/spf13/cobra"
)

type keysView []tui.KeyBinding

func (v keysView) TableHeader() []string { return []string{"KEYS", "WHERE", "ACTION"} }

func (v keysView) TableRows() [][]string {
	out := make([][]string, 0, len(v))
	for _, b := range v {
		out = append(out, []string{b.Keys, b.Where, b.Action})
	}
	return out
}

func newKeysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the outline editor key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Table unless --format was given explicitly.
			if !cmd.Flags().Changed("format") {
				app.Format = "table"
			}
			return writeOut(cmd, app, keysView(tui.KeyBindings()))
		},
	}
}
