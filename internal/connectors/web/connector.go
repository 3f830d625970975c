// Package web serves documentation pages fetched from the official
// ESP-IDF documentation site.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
	"github.com/raihalea/esp-idf-docs/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.DocumentSource = (*Connector)(nil)

const (
	userAgent      = "esp-idf-docs/0.3.0 (Documentation Search Bot)"
	requestTimeout = 30 * time.Second

	// fetchRate keeps the crawler polite towards the docs site.
	fetchRate  = 2.0
	fetchBurst = 4
)

// sections are the documentation areas enumerated by List. The site
// offers no machine-readable index, so the well-known section pages
// act as the corpus.
var sections = []string{
	"", // main index
	"api-reference/",
	"api-guides/",
	"get-started/",
	"tutorials/",
	"hw-reference/",
	"security/",
	"api-reference/system/",
	"api-reference/wifi/",
	"api-reference/bluetooth/",
	"api-reference/peripherals/",
	"api-reference/protocols/",
	"api-reference/storage/",
}

// Connector fetches documentation pages over HTTP with caching and
// rate limiting. Document identifiers are paths relative to the
// versioned documentation root.
type Connector struct {
	docsURL   string
	version   string
	client    *http.Client
	cache     driven.PageCache
	cacheTTL  time.Duration
	limiter   *rate.Limiter
	purgeOnce sync.Once
}

// New creates a web connector for the given documentation base URL and
// version. Fetched pages are cached in the given cache for ttl.
func New(baseURL, version string, cache driven.PageCache, ttl time.Duration) *Connector {
	return &Connector{
		docsURL:  strings.TrimRight(baseURL, "/") + "/en/" + version,
		version:  version,
		client:   &http.Client{Timeout: requestTimeout},
		cache:    cache,
		cacheTTL: ttl,
		limiter:  rate.NewLimiter(rate.Limit(fetchRate), fetchBurst),
	}
}

// Type returns the source type identifier.
func (c *Connector) Type() string {
	return "web"
}

// List enumerates the well-known documentation section pages. The
// first call also drops cached pages older than the TTL.
func (c *Connector) List(ctx context.Context) ([]domain.DocumentRef, error) {
	c.purgeOnce.Do(func() {
		if c.cache == nil {
			return
		}
		if n, err := c.cache.Purge(ctx, c.cacheTTL); err != nil {
			logger.Warn("Page cache purge failed: %v", err)
		} else if n > 0 {
			logger.Debug("Purged %d stale cached pages", n)
		}
	})

	refs := make([]domain.DocumentRef, 0, len(sections))
	for _, section := range sections {
		id := section
		if id == "" {
			id = "index.html"
		}
		refs = append(refs, domain.DocumentRef{
			ID:      id,
			URI:     c.resolve(section),
			DocType: domain.DocTypeHTML,
		})
	}
	return refs, nil
}

// Exists reports whether the page responds to a HEAD request.
func (c *Connector) Exists(ctx context.Context, id string) (bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return false, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.resolve(id), nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}

// Read fetches one page, serving from the cache when fresh.
func (c *Connector) Read(ctx context.Context, id string) (*domain.RawDocument, error) {
	pageURL := c.resolve(id)
	content, err := c.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return &domain.RawDocument{
		ID:           id,
		URI:          pageURL,
		DocType:      domain.DocTypeHTML,
		Content:      content,
		SizeBytes:    int64(len(content)),
		LastModified: time.Time{}, // the site exposes no reliable mtime
		Encoding:     "utf-8",
	}, nil
}

// Structure lists the navigation sections found on the index page.
func (c *Connector) Structure(ctx context.Context) (*domain.DocStructure, error) {
	content, err := c.fetch(ctx, c.docsURL)
	if err != nil {
		return nil, fmt.Errorf("fetching index: %w", err)
	}

	links := navigationLinks(content)
	structure := &domain.DocStructure{
		Sections: make([]domain.Section, 0, len(links)),
	}
	seen := make(map[string]struct{})
	for _, l := range links {
		if _, dup := seen[l.href]; dup {
			continue
		}
		seen[l.href] = struct{}{}
		structure.Sections = append(structure.Sections, domain.Section{
			Name: l.text,
			URL:  c.resolve(l.href),
			Path: l.href,
		})
	}
	return structure, nil
}

// Close is a no-op; the shared cache is owned by the caller.
func (c *Connector) Close() error {
	return nil
}

func (c *Connector) fetch(ctx context.Context, pageURL string) (string, error) {
	if c.cache != nil {
		if content, ok, err := c.cache.Get(ctx, pageURL, c.cacheTTL); err != nil {
			logger.Warn("Page cache read failed for %s: %v", pageURL, err)
		} else if ok {
			logger.Debug("Cache hit: %s", pageURL)
			return content, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%w: %s", domain.ErrNotFound, pageURL)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", pageURL, err)
	}
	content := string(body)

	if c.cache != nil {
		if err := c.cache.Put(ctx, pageURL, content); err != nil {
			logger.Warn("Page cache write failed for %s: %v", pageURL, err)
		}
	}
	return content, nil
}

func (c *Connector) resolve(id string) string {
	if strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		return id
	}
	base, err := url.Parse(c.docsURL + "/")
	if err != nil {
		return c.docsURL + "/" + id
	}
	ref, err := url.Parse(id)
	if err != nil {
		return c.docsURL + "/" + id
	}
	return base.ResolveReference(ref).String()
}
