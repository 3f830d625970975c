package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
	"github.com/raihalea/esp-idf-docs/internal/core/services"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the corpus and keep the index fresh",
	Long: `Watches the local documentation tree for changes and rebuilds the
index after each change. Only filesystem sources support watching.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	indexer, ok := indexService.(*services.Indexer)
	if !ok || indexer == nil {
		return errors.New("index service not configured")
	}
	watchable, ok := source.(driven.WatchableSource)
	if !ok {
		return errors.New("the selected source does not support watching")
	}

	if err := ensureIndex(cmd); err != nil {
		return err
	}
	stats := indexService.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (%d documents indexed)\n",
		appConfig.DocsPath, stats.TotalDocuments)

	watcher := services.NewWatcher(watchable, indexer)
	err := watcher.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
