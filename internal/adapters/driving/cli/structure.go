package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

var structureJSON bool

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Show the documentation structure",
	Long:  `Lists the directories, files and sections of the documentation corpus.`,
	Args:  cobra.NoArgs,
	RunE:  runStructure,
}

func init() {
	structureCmd.Flags().BoolVar(&structureJSON, "json", false, "output structure as JSON")
	rootCmd.AddCommand(structureCmd)
}

func runStructure(cmd *cobra.Command, _ []string) error {
	if explorerService == nil {
		return errors.New("explorer service not configured")
	}

	structure, err := explorerService.Structure(cmd.Context())
	if err != nil {
		return fmt.Errorf("structure scan failed: %w", err)
	}

	if structureJSON {
		return printJSON(cmd, structure)
	}
	return printStructure(cmd, structure)
}

func printStructure(cmd *cobra.Command, structure *domain.DocStructure) error {
	if len(structure.Directories) > 0 {
		cmd.Println(titleStyle.Render("Directories"))
		names := make([]string, 0, len(structure.Directories))
		for name := range structure.Directories {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			info := structure.Directories[name]
			cmd.Printf("  %s  %s\n", name,
				mutedStyle.Render(fmt.Sprintf("%d files, %.1f KB", info.FileCount, info.SizeKB)))
		}
		cmd.Println()
	}

	if len(structure.Files) > 0 {
		cmd.Println(titleStyle.Render("Files"))
		for _, f := range structure.Files {
			cmd.Printf("  %s  %s\n", f.Name, mutedStyle.Render(fmt.Sprintf("%.1f KB", f.SizeKB)))
		}
		cmd.Println()
	}

	if len(structure.Sections) > 0 {
		cmd.Println(titleStyle.Render("Sections"))
		for _, s := range structure.Sections {
			cmd.Printf("  %s  %s\n", s.Name, mutedStyle.Render(s.URL))
		}
		cmd.Println()
	}

	cmd.Println(mutedStyle.Render(fmt.Sprintf(
		"%d directories, %d files, %.2f MB",
		structure.Metadata.TotalDirectories,
		structure.Metadata.TotalFiles,
		structure.Metadata.TotalSizeMB)))
	return nil
}
