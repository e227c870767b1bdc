package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"voice-todo/internal/voicetask"
	"voice-todo/pkg/taskphrase"
)

type exampleView struct {
	Command  string             `json:"command"`
	Title    string             `json:"title"`
	Priority string             `json:"priority,omitempty"`
	DueDate  string             `json:"due_date,omitempty"`
	DueTime  string             `json:"due_time,omitempty"`
	Score    int                `json:"confidence"`
	Decision voicetask.Decision `json:"decision"`
}

func newExamplesCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List sample commands and how they parse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			examples := taskphrase.Examples()
			uc, err := ctx.useCase(len(examples))
			if err != nil {
				return err
			}
			out, err := uc.ParseBatch(cmd.Context(), voicetask.ParseBatchInput{Transcripts: examples})
			if err != nil {
				return err
			}

			views := make([]exampleView, len(out.Items))
			for i, item := range out.Items {
				views[i] = exampleView{
					Command:  item.Task.OriginalText,
					Title:    item.SuggestedTitle,
					Priority: string(item.Task.Priority),
					DueDate:  item.Task.DueDate,
					DueTime:  item.Task.DueTime,
					Score:    item.Task.Confidence,
					Decision: item.Decision,
				}
			}

			if jsonOut {
				return writeJSON(cmd, views)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderExamples(views))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print JSON instead of a table")
	return cmd
}
