// Package sqlite provides SQLite-backed storage adapters.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
)

// Ensure PageCache implements the interface.
var _ driven.PageCache = (*PageCache)(nil)

// PageCache stores fetched documentation pages in a local SQLite
// database so repeated searches do not re-download them.
type PageCache struct {
	db   *sql.DB
	path string
}

const createPagesTable = `
CREATE TABLE IF NOT EXISTS pages (
	url        TEXT PRIMARY KEY,
	content    TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_pages_fetched_at ON pages (fetched_at);
`

// NewPageCache creates a page cache at the specified data directory.
// If dataDir is empty, defaults to ~/.espidf-docs/data.
func NewPageCache(dataDir string) (*PageCache, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".espidf-docs", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "pagecache.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(createPagesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &PageCache{db: db, path: dbPath}, nil
}

// Get returns the cached content for a URL when present and younger
// than maxAge.
func (c *PageCache) Get(ctx context.Context, url string, maxAge time.Duration) (string, bool, error) {
	cutoff := time.Now().Add(-maxAge).Unix()
	var content string
	err := c.db.QueryRowContext(ctx,
		"SELECT content FROM pages WHERE url = ? AND fetched_at >= ?",
		url, cutoff,
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying page cache: %w", err)
	}
	return content, true, nil
}

// Put stores the content for a URL, replacing any prior entry.
func (c *PageCache) Put(ctx context.Context, url, content string) error {
	_, err := c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO pages (url, content, fetched_at) VALUES (?, ?, ?)",
		url, content, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("writing page cache: %w", err)
	}
	return nil
}

// Purge removes entries older than maxAge and returns how many were
// deleted.
func (c *PageCache) Purge(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge).Unix()
	res, err := c.db.ExecContext(ctx, "DELETE FROM pages WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("purging page cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Close closes the database connection.
func (c *PageCache) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *PageCache) Path() string {
	return c.path
}
