package domain

import "time"

// SearchOptions configures a documentation search.
type SearchOptions struct {
	// Limit is the maximum number of results to return.
	Limit int

	// Offset is the number of results to skip for pagination.
	Offset int
}

// ContextLine is one line of context surrounding a match.
type ContextLine struct {
	// Line is the 1-based line number.
	Line int `json:"line"`

	// Text is the trimmed line text.
	Text string `json:"text"`

	// Highlighted is the line with match spans wrapped in the
	// highlight marker. Equal to Text for non-matching lines.
	Highlighted string `json:"highlighted"`

	// IsMatch indicates this is the matching line itself.
	IsMatch bool `json:"is_match"`
}

// Match is a single query occurrence within a document, with context.
type Match struct {
	// LineNumber is the 1-based line of the match.
	LineNumber int `json:"line_number"`

	// Snippet is the trimmed matching line.
	Snippet string `json:"snippet"`

	// Context holds the surrounding lines, match line included.
	Context []ContextLine `json:"context"`
}

// ResultMetadata is the per-result document summary.
type ResultMetadata struct {
	SizeKB    float64 `json:"size_kb"`
	WordCount int     `json:"word_count"`
	DocType   string  `json:"doc_type"`
}

// SearchResult is one ranked document hit.
type SearchResult struct {
	// File is the document identifier.
	File string `json:"file"`

	// Matches are the extracted occurrences, bounded per file.
	Matches []Match `json:"matches"`

	// Score is the relevance score in [0,100].
	Score float64 `json:"score"`

	// Metadata summarises the matched document.
	Metadata ResultMetadata `json:"metadata"`
}

// SearchMetadata aggregates statistics about one search execution.
type SearchMetadata struct {
	FilesScanned    int           `json:"total_files_scanned"`
	ResultsFound    int           `json:"total_results_found"`
	ResultsReturned int           `json:"results_returned"`
	Duration        time.Duration `json:"search_duration"`
	FuzzyEnabled    bool          `json:"fuzzy_search_enabled"`
}

// SearchResponse is the full answer to one search request.
type SearchResponse struct {
	// Query is the original query string.
	Query string `json:"query"`

	// ExpandedQueries are related terms from query expansion,
	// empty when expansion is disabled or nothing matched.
	ExpandedQueries []string `json:"expanded_queries,omitempty"`

	// Results are ranked hits, score-descending, paginated.
	Results []SearchResult `json:"results"`

	// Metadata describes the search execution.
	Metadata SearchMetadata `json:"metadata"`
}

// APIMatch is one API-reference occurrence in a document.
type APIMatch struct {
	// Type classifies the reference (function, struct, enum,
	// define, reference, heading, function_family).
	Type string `json:"type"`

	// Pattern is the exact text that matched.
	Pattern string `json:"pattern"`

	// LineNumber is the 1-based line of the match.
	LineNumber int `json:"line_number"`

	// Context is the trimmed line containing the match.
	Context string `json:"context"`
}

// APIReferenceResult groups the API matches found in one document.
type APIReferenceResult struct {
	File       string     `json:"file"`
	Matches    []APIMatch `json:"matches"`
	MatchCount int        `json:"match_count"`
}

// APIReferenceResponse is the answer to an API-reference lookup.
type APIReferenceResponse struct {
	Component       string               `json:"component"`
	QueryVariations []string             `json:"query_variations"`
	Results         []APIReferenceResult `json:"results"`
	Metadata        APIReferenceMetadata `json:"metadata"`
}

// APIReferenceMetadata aggregates statistics about one lookup.
type APIReferenceMetadata struct {
	FilesScanned     int           `json:"total_files_scanned"`
	FilesWithMatches int           `json:"files_with_matches"`
	TotalMatches     int           `json:"total_matches"`
	Duration         time.Duration `json:"search_duration"`
	PatternCount     int           `json:"pattern_count"`
}

// DocumentContent is a fully-read document with its metadata.
type DocumentContent struct {
	Content  string            `json:"content"`
	Metadata *DocumentMetadata `json:"metadata"`
}
