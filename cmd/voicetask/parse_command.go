package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"voice-todo/internal/voicetask"
	"voice-todo/pkg/taskphrase"
)

type parseView struct {
	Task           taskphrase.ParsedTask `json:"task"`
	Decision       voicetask.Decision    `json:"decision"`
	SuggestedTitle string                `json:"suggested_title"`
	ReferenceTime  string                `json:"reference_time"`
}

func newParseCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "parse <transcript...>",
		Short: "Parse one spoken command",
		Example: `  voicetask parse "Remind me to call mom tomorrow at 5 PM"
  voicetask parse --now 2024-06-15T10:00:00Z --json add urgent task: file taxes by April 15th`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := ctx.useCase(1)
			if err != nil {
				return err
			}

			out, err := uc.Parse(cmd.Context(), voicetask.ParseInput{Transcript: strings.Join(args, " ")})
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, parseView{
					Task:           out.Task,
					Decision:       out.Decision,
					SuggestedTitle: out.SuggestedTitle,
					ReferenceTime:  out.ReferenceTime.Format(time.RFC3339),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderFields(taskFields(out)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print JSON instead of a table")
	return cmd
}

func taskFields(out voicetask.ParseOutput) []field {
	t := out.Task
	fields := []field{
		{"Title", t.Title},
		{"Priority", orDash(string(t.Priority))},
		{"Category", orDash(t.Category)},
		{"Due date", orDash(t.DueDate)},
		{"Due time", orDash(t.DueTime)},
		{"Description", orDash(t.Description)},
		{"Valid", strconv.FormatBool(t.IsValid)},
		{"Confidence", strconv.Itoa(t.Confidence)},
		{"Decision", string(out.Decision)},
		{"Suggested title", out.SuggestedTitle},
		{"Reference time", out.ReferenceTime.Format(time.RFC3339)},
	}
	for _, reason := range t.ConfidenceReasons {
		fields = append(fields, field{"Reasons", reason})
	}
	return fields
}
