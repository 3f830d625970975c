package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestConfigStoreSetGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("docs.path", "/srv/docs"))
	require.NoError(t, store.Set("search.max_results", 50))
	require.NoError(t, store.Set("search.enable_fuzzy", false))

	assert.Equal(t, "/srv/docs", store.GetString("docs.path"))
	assert.Equal(t, 50, store.GetInt("search.max_results"))
	assert.False(t, store.GetBool("search.enable_fuzzy"))

	_, ok := store.Get("missing.key")
	assert.False(t, ok)
}

func TestConfigStoreTypeMismatches(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("key", "text"))

	assert.Equal(t, 0, store.GetInt("key"))
	assert.Equal(t, 0.0, store.GetFloat("key"))
	assert.False(t, store.GetBool("key"))
	assert.Nil(t, store.GetStringSlice("key"))
}

func TestConfigStoreLoadsTOML(t *testing.T) {
	dir := t.TempDir()
	content := `[docs]
path = "/data/esp-idf"
allowed_extensions = [".rst", ".md"]

[search]
max_results = 30
fuzzy_threshold = 0.8
enable_fuzzy = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "/data/esp-idf", store.GetString("docs.path"))
	assert.Equal(t, []string{".rst", ".md"}, store.GetStringSlice("docs.allowed_extensions"))
	assert.Equal(t, 30, store.GetInt("search.max_results"))
	assert.Equal(t, 0.8, store.GetFloat("search.fuzzy_threshold"))
	assert.True(t, store.GetBool("search.enable_fuzzy"))
}

func TestConfigStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("docs.version", "v5.2"))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "v5.2", reloaded.GetString("docs.version"))
}

func TestBuildConfigDefaults(t *testing.T) {
	cfg := BuildConfig(newTestStore(t))
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestBuildConfigOverrides(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("docs.path", "/srv/docs"))
	require.NoError(t, store.Set("docs.version", "v5.2"))
	require.NoError(t, store.Set("search.max_results", 42))
	require.NoError(t, store.Set("search.fuzzy_threshold", 0.75))
	require.NoError(t, store.Set("search.enable_fuzzy", false))
	require.NoError(t, store.Set("recommendations.enabled", false))
	require.NoError(t, store.Set("web.cache_ttl_seconds", 120))

	cfg := BuildConfig(store)

	assert.Equal(t, "/srv/docs", cfg.DocsPath)
	assert.Equal(t, "v5.2", cfg.DocsVersion)
	assert.Equal(t, 42, cfg.MaxResults)
	assert.Equal(t, 0.75, cfg.FuzzyThreshold)
	assert.False(t, cfg.EnableFuzzySearch)
	assert.False(t, cfg.EnableRecommendations)
	assert.Equal(t, 2*time.Minute, cfg.PageCacheTTL)

	// Untouched keys keep their defaults.
	defaults := domain.DefaultConfig()
	assert.Equal(t, defaults.MaxQueryLength, cfg.MaxQueryLength)
	assert.Equal(t, defaults.AllowedExtensions, cfg.AllowedExtensions)
}
