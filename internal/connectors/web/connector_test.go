package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

type memoryCache struct {
	pages  map[string]string
	puts   int
	purges int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{pages: make(map[string]string)}
}

func (m *memoryCache) Get(_ context.Context, url string, _ time.Duration) (string, bool, error) {
	content, ok := m.pages[url]
	return content, ok, nil
}

func (m *memoryCache) Put(_ context.Context, url, content string) error {
	m.pages[url] = content
	m.puts++
	return nil
}

func (m *memoryCache) Purge(_ context.Context, _ time.Duration) (int, error) {
	m.purges++
	n := len(m.pages)
	m.pages = make(map[string]string)
	return n, nil
}

func (m *memoryCache) Close() error { return nil }

func newTestServer(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(content))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestListEnumeratesSections(t *testing.T) {
	c := New("https://docs.example.com/projects/esp-idf", "latest", nil, time.Hour)

	refs, err := c.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, refs)

	assert.Equal(t, "index.html", refs[0].ID)
	assert.Equal(t, "https://docs.example.com/projects/esp-idf/en/latest/", refs[0].URI)
	for _, ref := range refs {
		assert.Equal(t, domain.DocTypeHTML, ref.DocType)
	}
}

func TestListPurgesStaleCacheOnce(t *testing.T) {
	cache := newMemoryCache()
	cache.pages["https://docs.example.com/old"] = "<html>stale</html>"
	c := New("https://docs.example.com/projects/esp-idf", "latest", cache, time.Hour)

	_, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cache.pages)
	assert.Equal(t, 1, cache.purges)

	// Repeated listings do not purge again.
	_, err = c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.purges)
}

func TestReadFetchesPage(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/en/latest/get-started/": "<html><h1>Get Started</h1></html>",
	})
	c := New(srv.URL, "latest", nil, time.Hour)

	raw, err := c.Read(context.Background(), "get-started/")
	require.NoError(t, err)

	assert.Equal(t, "get-started/", raw.ID)
	assert.Equal(t, domain.DocTypeHTML, raw.DocType)
	assert.Contains(t, raw.Content, "Get Started")
	assert.Equal(t, int64(len(raw.Content)), raw.SizeBytes)
	assert.Equal(t, "utf-8", raw.Encoding)
}

func TestReadNotFound(t *testing.T) {
	srv := newTestServer(t, nil)
	c := New(srv.URL, "latest", nil, time.Hour)

	_, err := c.Read(context.Background(), "missing/")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReadUsesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("<html>page</html>"))
	}))
	t.Cleanup(srv.Close)

	cache := newMemoryCache()
	c := New(srv.URL, "latest", cache, time.Hour)
	ctx := context.Background()

	_, err := c.Read(ctx, "api-reference/")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, cache.puts)

	// The second read is served from the cache.
	raw, err := c.Read(ctx, "api-reference/")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
	assert.Equal(t, "<html>page</html>", raw.Content)
}

func TestExists(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/en/latest/get-started/": "<html></html>",
	})
	c := New(srv.URL, "latest", nil, time.Hour)
	ctx := context.Background()

	ok, err := c.Exists(ctx, "get-started/")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Exists(ctx, "missing/")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStructureParsesNavigation(t *testing.T) {
	index := `<html><body>
<div class="toctree navigation">
<a href="get-started/">Get Started</a>
<a href="api-reference/">API Reference</a>
<a href="get-started/">Get Started Again</a>
</div>
</body></html>`
	srv := newTestServer(t, map[string]string{"/en/latest": index})
	c := New(srv.URL, "latest", nil, time.Hour)

	structure, err := c.Structure(context.Background())
	require.NoError(t, err)

	// Duplicate targets collapse to the first link.
	require.Len(t, structure.Sections, 2)
	assert.Equal(t, "Get Started", structure.Sections[0].Name)
	assert.Equal(t, "get-started/", structure.Sections[0].Path)
	assert.Equal(t, "API Reference", structure.Sections[1].Name)
}
