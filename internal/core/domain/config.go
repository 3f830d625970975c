package domain

import (
	"fmt"
	"strings"
	"time"
)

// Config is the explorer configuration value object. The core
// receives it fully built; loading from files or flags happens at the
// CLI edge.
type Config struct {
	// DocsPath is the root of a local documentation corpus.
	DocsPath string

	// BaseURL is the online documentation site root, used by the
	// web source instead of DocsPath.
	BaseURL string

	// DocsVersion selects the documentation version for the web
	// source ("latest" or a release tag).
	DocsVersion string

	// MaxResults caps the number of search results.
	MaxResults int

	// MaxMatchesPerFile caps match extraction per document.
	MaxMatchesPerFile int

	// MaxQueryLength caps the accepted query length.
	MaxQueryLength int

	// ContextLines is the number of lines shown around each match.
	ContextLines int

	// EnableFuzzySearch switches between fuzzy and substring
	// matching during search.
	EnableFuzzySearch bool

	// FuzzyThreshold is the minimum similarity ratio for a fuzzy
	// match, in [0,1].
	FuzzyThreshold float64

	// EnableQueryExpansion adds related terms to search responses.
	EnableQueryExpansion bool

	// MaxConcurrentFiles bounds document fan-out during builds and
	// searches.
	MaxConcurrentFiles int

	// MaxFileSizeKB caps documents accepted by full reads.
	MaxFileSizeKB int

	// AllowedExtensions filters corpus discovery.
	AllowedExtensions []string

	// EnableRecommendations toggles the recommendation engine.
	EnableRecommendations bool

	// PageCacheTTL bounds the age of cached web pages.
	PageCacheTTL time.Duration
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() Config {
	return Config{
		DocsPath:              ".",
		BaseURL:               "https://docs.espressif.com/projects/esp-idf",
		DocsVersion:           "latest",
		MaxResults:            20,
		MaxMatchesPerFile:     5,
		MaxQueryLength:        100,
		ContextLines:          2,
		EnableFuzzySearch:     true,
		FuzzyThreshold:        0.6,
		EnableQueryExpansion:  true,
		MaxConcurrentFiles:    10,
		MaxFileSizeKB:         1024,
		AllowedExtensions:     []string{".rst", ".md", ".txt"},
		EnableRecommendations: true,
		PageCacheTTL:          time.Hour,
	}
}

// Validate checks configuration values and reports every violation.
func (c Config) Validate() error {
	var problems []string

	if c.MaxResults <= 0 || c.MaxResults > 1000 {
		problems = append(problems, fmt.Sprintf("max_results must be between 1 and 1000, got %d", c.MaxResults))
	}
	if c.MaxMatchesPerFile <= 0 || c.MaxMatchesPerFile > 100 {
		problems = append(problems, fmt.Sprintf("max_matches_per_file must be between 1 and 100, got %d", c.MaxMatchesPerFile))
	}
	if c.MaxQueryLength <= 0 || c.MaxQueryLength > 1000 {
		problems = append(problems, fmt.Sprintf("max_query_length must be between 1 and 1000, got %d", c.MaxQueryLength))
	}
	if c.ContextLines < 0 {
		problems = append(problems, fmt.Sprintf("context_lines must not be negative, got %d", c.ContextLines))
	}
	if c.FuzzyThreshold < 0.0 || c.FuzzyThreshold > 1.0 {
		problems = append(problems, fmt.Sprintf("fuzzy_threshold must be between 0.0 and 1.0, got %g", c.FuzzyThreshold))
	}
	if c.MaxConcurrentFiles <= 0 {
		problems = append(problems, fmt.Sprintf("max_concurrent_files must be positive, got %d", c.MaxConcurrentFiles))
	}
	if len(c.AllowedExtensions) == 0 {
		problems = append(problems, "allowed_extensions cannot be empty")
	}
	for _, ext := range c.AllowedExtensions {
		if !strings.HasPrefix(ext, ".") {
			problems = append(problems, fmt.Sprintf("extension must start with '.', got %q", ext))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}
