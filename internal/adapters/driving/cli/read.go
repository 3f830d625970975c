package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var readJSON bool

var readCmd = &cobra.Command{
	Use:   "read [file]",
	Short: "Read a documentation file",
	Long:  `Prints the full content of one documentation file with its metadata.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRead,
}

func init() {
	readCmd.Flags().BoolVar(&readJSON, "json", false, "output content and metadata as JSON")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	if explorerService == nil {
		return errors.New("explorer service not configured")
	}

	doc, err := explorerService.ReadDoc(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	if readJSON {
		return printJSON(cmd, doc)
	}

	cmd.Println(mutedStyle.Render(fmt.Sprintf(
		"%s  %d lines, %d words, %s",
		doc.Metadata.ID, doc.Metadata.LineCount, doc.Metadata.WordCount, doc.Metadata.Encoding)))
	cmd.Println()
	cmd.Println(doc.Content)
	return nil
}
