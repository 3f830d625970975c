package driving

import (
	"context"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

// ExplorerService provides the user-facing documentation operations.
type ExplorerService interface {
	// SearchDocs runs a keyword/fuzzy search and returns ranked,
	// paginated results with context. Validation failures are
	// returned; per-document failures only shrink the result set.
	SearchDocs(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error)

	// Structure describes the corpus layout.
	Structure(ctx context.Context) (*domain.DocStructure, error)

	// ReadDoc returns the full content and metadata of one document.
	ReadDoc(ctx context.Context, path string) (*domain.DocumentContent, error)

	// FindAPIReferences locates API mentions of a named component.
	FindAPIReferences(ctx context.Context, component string) (*domain.APIReferenceResponse, error)
}

// RecommendationService produces ranked document recommendations.
// Best effort: failures degrade to an empty list with a diagnostic in
// the response metadata, never an error.
type RecommendationService interface {
	// Recommend returns up to limit deduplicated recommendations,
	// score-descending.
	Recommend(ctx context.Context, query string, limit int) *domain.RecommendationResponse
}

// IndexService controls the term index lifecycle.
type IndexService interface {
	// StartIndexing launches a background build and returns
	// immediately. A second call while a build runs returns
	// domain.ErrBuildInProgress.
	StartIndexing(ctx context.Context) error

	// WaitReady blocks until the running build finishes or ctx is
	// cancelled. Returns the build error, if any.
	WaitReady(ctx context.Context) error

	// State reports the current index lifecycle state.
	State() domain.IndexState

	// Stats describes the published index. Zero-valued before the
	// first successful build.
	Stats() domain.IndexStats

	// Report returns the report of the last completed build, or
	// nil when none has completed.
	Report() *domain.BuildReport
}
