package driven

import (
	"context"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

// DocumentSource supplies the documentation corpus: an enumerable set
// of documents plus full-text reads with the encoding resolved.
// Implementations are a filesystem walk or an HTTP fetcher; both must
// surface failures as one error per document, never a partial read.
type DocumentSource interface {
	// Type returns the source type identifier ("filesystem", "web").
	Type() string

	// List enumerates all discoverable documents.
	List(ctx context.Context) ([]domain.DocumentRef, error)

	// Exists reports whether a document identifier resolves.
	Exists(ctx context.Context, id string) (bool, error)

	// Read returns the full decoded text of one document together
	// with its stats.
	Read(ctx context.Context, id string) (*domain.RawDocument, error)

	// Structure describes the corpus layout.
	Structure(ctx context.Context) (*domain.DocStructure, error)

	// Close releases resources.
	Close() error
}

// WatchableSource is a DocumentSource that can push change events.
// The filesystem source implements it; the web source does not.
type WatchableSource interface {
	DocumentSource

	// Watch emits corpus change events until ctx is cancelled.
	Watch(ctx context.Context) (<-chan domain.ChangeEvent, error)
}
