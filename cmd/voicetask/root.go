package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "voicetask",
		Short:         "Parse spoken to-do commands into tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.now, "now", "", "Reference time in RFC3339 (default: current time)")
	rootCmd.PersistentFlags().StringVar(&ctx.timezone, "timezone", "UTC", "IANA timezone that decides the calendar day")
	rootCmd.PersistentFlags().IntVar(&ctx.threshold, "threshold", 75, "Confidence at or above which a parse is auto accepted")

	rootCmd.AddCommand(newParseCommand(ctx))
	rootCmd.AddCommand(newExamplesCommand(ctx))

	return rootCmd
}
