package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/csm-portfolio/internal/observability"
	"github.com/spf13/cobra"
)

var verbose bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the dashboard summary",
	Long:  "Prints total metrics, trending count, average score and per-category statistics as JSON, or as tables with --verbose.",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print formatted tables instead of JSON")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cfg, store, err := loadStore(cmd)
	if err != nil {
		return err
	}

	summary := store.Summary()
	out := cmd.OutOrStdout()

	if cfg.Verbose {
		printer := observability.NewPrinter(out)
		printer.PrintSummary(&summary)
		printer.PrintMetrics("KEY METRICS", store.KeyMetrics())
		return nil
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
