package main

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout. Transcripts are printed as spoken, so
// "&" and "<" are not escaped.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

type field struct {
	label, value string
}

// renderFields draws a two-column label/value table. Consecutive rows with the same label are merged,
// which keeps multi-line values such as confidence reasons under one label.
func renderFields(fields []field) string {
	if len(fields) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Field", "Value"})
	for _, f := range fields {
		tw.AppendRow(table.Row{f.label, f.value})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true, VAlign: text.VAlignTop},
	})
	return tw.Render()
}

const commandColumnWidth = 48

// renderExamples draws one row per sample command. Long commands wrap inside their column.
func renderExamples(views []exampleView) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Command", "Title", "Priority", "Due", "Confidence", "Decision"})
	for i, v := range views {
		due := strings.TrimSpace(v.DueDate + " " + v.DueTime)
		tw.AppendRow(table.Row{
			i + 1,
			v.Command,
			v.Title,
			orDash(v.Priority),
			orDash(due),
			strconv.Itoa(v.Score),
			string(v.Decision),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Command", WidthMax: commandColumnWidth},
		{Name: "Confidence", Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
