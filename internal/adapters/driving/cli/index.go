package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var indexJSON bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index management commands",
}

var indexStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show index state and statistics",
	Args:  cobra.NoArgs,
	RunE:  runIndexStatus,
}

var indexRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the documentation index",
	Args:  cobra.NoArgs,
	RunE:  runIndexRebuild,
}

func init() {
	indexStatusCmd.Flags().BoolVar(&indexJSON, "json", false, "output status as JSON")
	indexCmd.AddCommand(indexStatusCmd)
	indexCmd.AddCommand(indexRebuildCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndexStatus(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	stats := indexService.Stats()
	if indexJSON {
		return printJSON(cmd, map[string]any{
			"state":      indexService.State().String(),
			"stats":      stats,
			"last_build": indexService.Report(),
		})
	}

	cmd.Printf("State: %s\n", indexService.State())
	cmd.Printf("Documents: %d\n", stats.TotalDocuments)
	cmd.Printf("Terms: %d\n", stats.TotalTerms)
	if !stats.BuiltAt.IsZero() {
		cmd.Printf("Built: %s\n", stats.BuiltAt.Format("2006-01-02 15:04:05"))
	}
	if report := indexService.Report(); report != nil && len(report.Skipped) > 0 {
		cmd.Printf("Skipped: %d documents\n", len(report.Skipped))
		for _, s := range report.Skipped {
			cmd.Printf("  %s: %s\n", s.ID, s.Reason)
		}
	}
	return nil
}

func runIndexRebuild(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	if err := indexService.StartIndexing(cmd.Context()); err != nil {
		return fmt.Errorf("starting index build: %w", err)
	}
	if err := indexService.WaitReady(cmd.Context()); err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	stats := indexService.Stats()
	cmd.Printf("Indexed %d documents (%d terms).\n", stats.TotalDocuments, stats.TotalTerms)
	return nil
}
