package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"histcal/internal/ics"
	appLog "histcal/internal/log"
	"histcal/internal/model"
	"histcal/internal/timeline"
)

var (
	timelineICS  string
	timelineJSON string
	timelineSort bool
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Render timeline entries with display dates and durations",
	Long: `Render timeline entries read from an iCalendar file (--ics) or a JSON
array of {"id","title","startDate","endDate"} objects (--json, or stdin when
neither flag is given). Use "-" to read either format from stdin. --ics also
accepts an http(s) URL, which is downloaded and not cached.`,
	Args: cobra.NoArgs,
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().StringVar(&timelineICS, "ics", "", "iCalendar file or http(s) URL to import")
	timelineCmd.Flags().StringVar(&timelineJSON, "json", "", "JSON file of entries")
	timelineCmd.Flags().BoolVar(&timelineSort, "sort", false, "Sort entries by start date")
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, _ []string) error {
	if timelineICS != "" && timelineJSON != "" {
		return usageError{errors.New("--ics and --json are mutually exclusive")}
	}

	entries, err := readEntries(cmd.Context(), cmd.InOrStdin())
	if err != nil {
		return err
	}
	if timelineSort {
		timeline.Sort(entries)
	}
	rows := timeline.Render(entries)
	appLog.Debug("timeline rendered", "rows", len(rows))

	if humanOutput {
		return outputRows(cmd.OutOrStdout(), rows)
	}
	return outputJSON(cmd.OutOrStdout(), rows)
}

func readEntries(ctx context.Context, stdin io.Reader) ([]model.Entry, error) {
	if timelineICS != "" {
		var body []byte
		var err error
		if ics.IsURL(timelineICS) {
			body, err = ics.NewFetcher(0).Fetch(ctx, timelineICS)
		} else {
			body, err = readInput(timelineICS, stdin)
		}
		if err != nil {
			return nil, err
		}
		return ics.ParseEntries(body)
	}

	body, err := readInput(timelineJSON, stdin)
	if err != nil {
		return nil, err
	}
	var entries []model.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decoding timeline entries: %w", err)
	}
	return entries, nil
}

// readInput reads path, or stdin when path is "" or "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
