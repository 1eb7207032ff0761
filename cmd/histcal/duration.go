package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"histcal/internal/calendar"
)

// DurationResult is the JSON output for histcal duration.
type DurationResult struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
}

var durationCmd = &cobra.Command{
	Use:   "duration <start> <end>",
	Short: "Print the calendar duration between two dates",
	Long: `Print the elapsed years, months and days between two YYYY-MM-DD dates,
e.g. "3 months 25 days". A same-day span is "1 day".

Exits with code 3 if either date is malformed. Put "--" before dates with
a negative year:

  histcal duration -- -100-01-01 -99-01-01`,
	Args: cobra.ExactArgs(2),
	RunE: runDuration,
}

func init() {
	rootCmd.AddCommand(durationCmd)
}

func runDuration(cmd *cobra.Command, args []string) error {
	d, err := calendar.CalculateDuration(args[0], args[1])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if humanOutput {
		_, err := fmt.Fprintln(out, d)
		return err
	}
	return outputJSON(out, DurationResult{Start: args[0], End: args[1], Duration: d})
}
