// Package cli implements the espidf-docs command line interface.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/raihalea/esp-idf-docs/internal/adapters/driven/config/file"
	"github.com/raihalea/esp-idf-docs/internal/adapters/driven/storage/sqlite"
	"github.com/raihalea/esp-idf-docs/internal/connectors/filesystem"
	"github.com/raihalea/esp-idf-docs/internal/connectors/web"
	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driving"
	"github.com/raihalea/esp-idf-docs/internal/core/services"
	"github.com/raihalea/esp-idf-docs/internal/logger"
	"github.com/raihalea/esp-idf-docs/internal/normalisers"
)

// version is set at build time via ldflags.
var version = "dev"

// Services used by the commands. Injected by SetServices in tests,
// otherwise built by initServices on first use.
var (
	explorerService  driving.ExplorerService
	recommendService driving.RecommendationService
	indexService     driving.IndexService

	appConfig domain.Config
	source    driven.DocumentSource
	pageCache driven.PageCache
)

var (
	flagVerbose  bool
	flagDocsPath string
	flagWeb      bool
)

var rootCmd = &cobra.Command{
	Use:   "espidf-docs",
	Short: "Search and explore ESP-IDF documentation",
	Long: `espidf-docs searches a local or online copy of the ESP-IDF
documentation: full-text search with relevance ranking, document
structure listing, API reference lookup and topic recommendations.

It also runs as an MCP server for AI assistant integration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		// version and settings work without the service wiring.
		if cmd.Name() == "version" || hasAncestor(cmd, "settings") {
			return nil
		}
		return initServices()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if source != nil {
			source.Close() //nolint:errcheck
		}
		if pageCache != nil {
			pageCache.Close() //nolint:errcheck
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagDocsPath, "docs-path", "", "path to a local documentation tree (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagWeb, "web", false, "explore the online documentation site instead of local files")
}

// SetServices injects the services used by the commands. Primarily for
// tests; initServices builds the default wiring otherwise.
func SetServices(explorer driving.ExplorerService, recommend driving.RecommendationService, index driving.IndexService) {
	explorerService = explorer
	recommendService = recommend
	indexService = index
}

// initServices wires config, source, normalisers and core services.
// Already-injected services are left alone.
func initServices() error {
	if explorerService != nil {
		return nil
	}

	store, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	cfg := configfile.BuildConfig(store)
	if flagDocsPath != "" {
		cfg.DocsPath = flagDocsPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	appConfig = cfg

	if flagWeb {
		cache, err := sqlite.NewPageCache("")
		if err != nil {
			return fmt.Errorf("opening page cache: %w", err)
		}
		pageCache = cache
		source = web.New(cfg.BaseURL, cfg.DocsVersion, cache, cfg.PageCacheTTL)
	} else {
		source = filesystem.New(cfg.DocsPath, cfg.AllowedExtensions)
	}

	registry := normalisers.NewDefaultRegistry()
	indexer := services.NewIndexer(source, registry, cfg)
	explorerService = services.NewExplorer(source, registry, indexer, cfg)
	recommendService = services.NewRecommender(indexer, cfg)
	indexService = indexer
	return nil
}

// ensureIndex builds the index when no build has run yet, waiting for
// completion so commands see a fully published index.
func ensureIndex(cmd *cobra.Command) error {
	if indexService == nil {
		return nil
	}
	if indexService.State() != domain.IndexIdle {
		return indexService.WaitReady(cmd.Context())
	}
	start := time.Now()
	if err := indexService.StartIndexing(cmd.Context()); err != nil {
		return err
	}
	if err := indexService.WaitReady(cmd.Context()); err != nil {
		return err
	}
	logger.Debug("Index ready in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

func hasAncestor(cmd *cobra.Command, name string) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
