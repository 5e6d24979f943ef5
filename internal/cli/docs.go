package cli

import (
	"fmt"

	"design-timeline/internal/docs"

	"github.com/spf13/cobra"
)

type docsTopic struct {
	Topic    string `json:"topic" yaml:"topic"`
	Markdown string `json:"markdown" yaml:"markdown"`
}

type docsTopics struct {
	Topics []string `json:"topics" yaml:"topics"`
}

func (d docsTopics) TableHeader() []string { return []string{"TOPIC"} }

func (d docsTopics) TableRows() [][]string {
	rows := make([][]string, 0, len(d.Topics))
	for _, t := range d.Topics {
		rows = append(rows, []string{t})
	}
	return rows
}

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show help topics (estimation, outline, settings, export)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, docsTopics{Topics: docs.Topics()})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `timeline docs` to list topics)", topic))
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, docsTopic{Topic: topic, Markdown: body})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no envelope)")

	return cmd
}
