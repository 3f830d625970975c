package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var apirefJSON bool

var apirefCmd = &cobra.Command{
	Use:   "apiref [component]",
	Short: "Find API references for a component",
	Long: `Scans the documentation for API references to an ESP-IDF component:
doxygen directives, inline references, headings and function families.`,
	Args: cobra.ExactArgs(1),
	RunE: runAPIRef,
}

func init() {
	apirefCmd.Flags().BoolVar(&apirefJSON, "json", false, "output references as JSON")
	rootCmd.AddCommand(apirefCmd)
}

func runAPIRef(cmd *cobra.Command, args []string) error {
	if explorerService == nil {
		return errors.New("explorer service not configured")
	}

	resp, err := explorerService.FindAPIReferences(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("API reference lookup failed: %w", err)
	}

	if apirefJSON {
		return printJSON(cmd, resp)
	}

	if len(resp.Results) == 0 {
		cmd.Printf("No API references found for %q.\n", resp.Component)
		return nil
	}

	for _, result := range resp.Results {
		cmd.Printf("%s %s\n",
			titleStyle.Render(result.File),
			scoreStyle.Render(fmt.Sprintf("(%d)", result.MatchCount)))
		for _, m := range result.Matches {
			cmd.Printf("    %s %s %s\n",
				mutedStyle.Render(fmt.Sprintf("%d:", m.LineNumber)),
				matchStyle.Render(m.Pattern),
				mutedStyle.Render("["+m.Type+"]"))
		}
		cmd.Println()
	}

	cmd.Println(mutedStyle.Render(fmt.Sprintf(
		"%d matches in %d of %d files",
		resp.Metadata.TotalMatches,
		resp.Metadata.FilesWithMatches,
		resp.Metadata.FilesScanned)))
	return nil
}
