package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

var (
	searchLimit  int
	searchOffset int
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the documentation",
	Long: `Searches the documentation for a query and prints relevance-ranked
results with the matching lines and their surrounding context.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = config default)")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "number of results to skip")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if explorerService == nil {
		return errors.New("explorer service not configured")
	}
	if err := ensureIndex(cmd); err != nil {
		return err
	}

	resp, err := explorerService.SearchDocs(cmd.Context(), args[0], domain.SearchOptions{
		Limit:  searchLimit,
		Offset: searchOffset,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return printJSON(cmd, resp)
	}
	return printSearchResults(cmd, resp)
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printSearchResults(cmd *cobra.Command, resp *domain.SearchResponse) error {
	if len(resp.Results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	if len(resp.ExpandedQueries) > 1 {
		cmd.Println(mutedStyle.Render(fmt.Sprintf("Related terms: %v", resp.ExpandedQueries[1:])))
		cmd.Println()
	}

	for i, result := range resp.Results {
		cmd.Printf("%s %s\n",
			titleStyle.Render(fmt.Sprintf("[%d] %s", i+1, result.File)),
			scoreStyle.Render(fmt.Sprintf("(%.1f)", result.Score)))
		for _, m := range result.Matches {
			cmd.Printf("    %s %s\n",
				mutedStyle.Render(fmt.Sprintf("%d:", m.LineNumber)),
				matchStyle.Render(m.Snippet))
		}
		cmd.Println()
	}

	cmd.Println(mutedStyle.Render(fmt.Sprintf(
		"%d of %d results, %d files scanned in %s",
		resp.Metadata.ResultsReturned,
		resp.Metadata.ResultsFound,
		resp.Metadata.FilesScanned,
		resp.Metadata.Duration.Round(time.Millisecond))))
	return nil
}
