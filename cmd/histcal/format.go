package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"histcal/internal/calendar"
)

// FormatResult is the JSON output for histcal format.
type FormatResult struct {
	Date    string `json:"date"`
	Display string `json:"display"`
}

var formatCmd = &cobra.Command{
	Use:   "format <date>...",
	Short: "Render dates as \"15 November 1985\"",
	Long: `Render each YYYY-MM-DD argument as "<day> <Month> <year>".

Arguments that are not dates are printed unchanged. Put "--" before
dates with a negative year so they are not read as flags:

  histcal format -- -0500-06-20`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	results := make([]FormatResult, 0, len(args))
	for _, a := range args {
		results = append(results, FormatResult{Date: a, Display: calendar.FormatForDisplay(a)})
	}
	if humanOutput {
		for _, r := range results {
			fmt.Fprintln(out, r.Display)
		}
		return nil
	}
	return outputJSON(out, results)
}
