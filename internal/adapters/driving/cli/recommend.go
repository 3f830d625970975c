package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	recommendLimit int
	recommendJSON  bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [query]",
	Short: "Recommend documentation for a topic",
	Long: `Suggests documentation pages related to a topic by combining content
similarity, popular entry points and related API references.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 5, "maximum number of recommendations")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output recommendations as JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if recommendService == nil {
		return errors.New("recommendation service not configured")
	}
	if err := ensureIndex(cmd); err != nil {
		return err
	}

	resp := recommendService.Recommend(cmd.Context(), args[0], recommendLimit)

	if recommendJSON {
		return printJSON(cmd, resp)
	}

	if errMsg, ok := resp.Metadata["error"].(string); ok {
		cmd.Println(mutedStyle.Render("No recommendations: " + errMsg))
		return nil
	}
	if len(resp.Recommendations) == 0 {
		cmd.Println("No recommendations found.")
		return nil
	}

	for i, rec := range resp.Recommendations {
		cmd.Printf("%s %s\n",
			titleStyle.Render(fmt.Sprintf("[%d] %s", i+1, rec.Title)),
			scoreStyle.Render(fmt.Sprintf("(%.1f)", rec.RelevanceScore)))
		cmd.Printf("    %s\n", mutedStyle.Render(rec.ID+"  ["+rec.Type+"]"))
		if rec.Description != "" {
			cmd.Printf("    %s\n", rec.Description)
		}
		cmd.Println()
	}
	return nil
}
