package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	configfile "github.com/raihalea/esp-idf-docs/internal/adapters/driven/config/file"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage configuration settings",
	Long: `Reads and writes settings in the TOML configuration file.
Keys use dot notation, e.g. search.max_results or docs.path.`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := configfile.NewConfigStore("")
		if err != nil {
			return err
		}
		val, ok := store.Get(args[0])
		if !ok {
			return fmt.Errorf("key %q is not set", args[0])
		}
		cmd.Printf("%v\n", val)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := configfile.NewConfigStore("")
		if err != nil {
			return err
		}
		if err := store.Set(args[0], args[1]); err != nil {
			return fmt.Errorf("setting %s: %w", args[0], err)
		}
		cmd.Printf("Set %s in %s\n", args[0], store.Path())
		return nil
	},
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := configfile.NewConfigStore("")
		if err != nil {
			return err
		}
		cfg := configfile.BuildConfig(store)
		entries := map[string]any{
			"docs.path":                     cfg.DocsPath,
			"docs.base_url":                 cfg.BaseURL,
			"docs.version":                  cfg.DocsVersion,
			"docs.allowed_extensions":       cfg.AllowedExtensions,
			"search.max_results":            cfg.MaxResults,
			"search.max_matches_per_file":   cfg.MaxMatchesPerFile,
			"search.max_query_length":       cfg.MaxQueryLength,
			"search.context_lines":          cfg.ContextLines,
			"search.enable_fuzzy":           cfg.EnableFuzzySearch,
			"search.fuzzy_threshold":        cfg.FuzzyThreshold,
			"search.enable_query_expansion": cfg.EnableQueryExpansion,
			"index.max_concurrent_files":    cfg.MaxConcurrentFiles,
			"index.max_file_size_kb":        cfg.MaxFileSizeKB,
			"recommendations.enabled":       cfg.EnableRecommendations,
			"web.cache_ttl_seconds":         int(cfg.PageCacheTTL.Seconds()),
		}
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			cmd.Printf("%s = %v\n", k, entries[k])
		}
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsListCmd)
	rootCmd.AddCommand(settingsCmd)
}
