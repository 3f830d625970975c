package file

import (
	"time"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
)

// BuildConfig assembles a domain.Config from defaults overridden by
// whatever keys the store holds. Keys use dot notation, matching the
// TOML sections (e.g. "search.max_results").
func BuildConfig(store driven.ConfigStore) domain.Config {
	cfg := domain.DefaultConfig()

	if v := store.GetString("docs.path"); v != "" {
		cfg.DocsPath = v
	}
	if v := store.GetString("docs.base_url"); v != "" {
		cfg.BaseURL = v
	}
	if v := store.GetString("docs.version"); v != "" {
		cfg.DocsVersion = v
	}
	if v := store.GetStringSlice("docs.allowed_extensions"); len(v) > 0 {
		cfg.AllowedExtensions = v
	}

	if v := store.GetInt("search.max_results"); v > 0 {
		cfg.MaxResults = v
	}
	if v := store.GetInt("search.max_matches_per_file"); v > 0 {
		cfg.MaxMatchesPerFile = v
	}
	if v := store.GetInt("search.max_query_length"); v > 0 {
		cfg.MaxQueryLength = v
	}
	if v := store.GetInt("search.context_lines"); v > 0 {
		cfg.ContextLines = v
	}
	if _, ok := store.Get("search.enable_fuzzy"); ok {
		cfg.EnableFuzzySearch = store.GetBool("search.enable_fuzzy")
	}
	if v := store.GetFloat("search.fuzzy_threshold"); v > 0 {
		cfg.FuzzyThreshold = v
	}
	if _, ok := store.Get("search.enable_query_expansion"); ok {
		cfg.EnableQueryExpansion = store.GetBool("search.enable_query_expansion")
	}

	if v := store.GetInt("index.max_concurrent_files"); v > 0 {
		cfg.MaxConcurrentFiles = v
	}
	if v := store.GetInt("index.max_file_size_kb"); v > 0 {
		cfg.MaxFileSizeKB = v
	}

	if _, ok := store.Get("recommendations.enabled"); ok {
		cfg.EnableRecommendations = store.GetBool("recommendations.enabled")
	}

	if v := store.GetInt("web.cache_ttl_seconds"); v > 0 {
		cfg.PageCacheTTL = time.Duration(v) * time.Second
	}

	return cfg
}
