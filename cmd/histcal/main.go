// Package main provides the histcal CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	appLog "histcal/internal/log"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	humanOutput bool
	logLevel    string
)

func main() {
	// A .env file is optional.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCodeFor(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "histcal",
	Short: "Calendar dates and durations for history timelines",
	Long: `histcal formats YYYY-MM-DD dates (negative years allowed) for display
and computes calendar-aware durations between them.

It can render whole timelines from JSON or iCalendar files and serve the
same operations over an HTTP JSON API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel == "" {
			logLevel = os.Getenv("HISTCAL_LOG_LEVEL")
		}
		if logLevel == "" {
			return nil
		}
		l, err := appLog.ParseLevel(logLevel)
		if err != nil {
			return usageError{err}
		}
		appLog.SetLevel(l)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Version = Version
}
