package driven

import (
	"context"
	"time"
)

// PageCache stores fetched documentation pages so repeated searches
// do not re-download the same content. Entries expire by age; the
// search index itself is never persisted here.
type PageCache interface {
	// Get returns the cached content for a URL when present and
	// younger than maxAge.
	Get(ctx context.Context, url string, maxAge time.Duration) (string, bool, error)

	// Put stores the content for a URL, replacing any prior entry.
	Put(ctx context.Context, url, content string) error

	// Purge removes entries older than maxAge.
	Purge(ctx context.Context, maxAge time.Duration) (int, error)

	// Close releases resources.
	Close() error
}
