package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

var testExtensions = []string{".rst", ".md", ".txt"}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestCorpus(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "index.rst", "Index\n=====\n\nWelcome.\n")
	writeFile(t, root, "api-reference/wifi.rst", "WiFi\n====\n\nDriver docs.\n")
	writeFile(t, root, "api-reference/uart.md", "# UART\n\nSerial docs.\n")
	writeFile(t, root, "api-reference/diagram.png", "\x89PNG")
	writeFile(t, root, ".git/config", "[core]\n")
	writeFile(t, root, ".hidden.rst", "hidden\n")
	return root
}

func TestListFiltersAndSorts(t *testing.T) {
	c := New(newTestCorpus(t), testExtensions)

	refs, err := c.List(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	assert.Equal(t, []string{
		"api-reference/uart.md",
		"api-reference/wifi.rst",
		"index.rst",
	}, ids)

	assert.Equal(t, domain.DocTypeMarkdown, refs[0].DocType)
	assert.Equal(t, domain.DocTypeRST, refs[1].DocType)
}

func TestExists(t *testing.T) {
	c := New(newTestCorpus(t), testExtensions)
	ctx := context.Background()

	ok, err := c.Exists(ctx, "index.rst")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Exists(ctx, "missing.rst")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRead(t *testing.T) {
	root := newTestCorpus(t)
	c := New(root, testExtensions)

	raw, err := c.Read(context.Background(), "api-reference/wifi.rst")
	require.NoError(t, err)

	assert.Equal(t, "api-reference/wifi.rst", raw.ID)
	assert.Equal(t, domain.DocTypeRST, raw.DocType)
	assert.Equal(t, "WiFi\n====\n\nDriver docs.\n", raw.Content)
	assert.Equal(t, int64(len(raw.Content)), raw.SizeBytes)
	assert.Equal(t, "utf-8", raw.Encoding)
	assert.False(t, raw.LastModified.IsZero())
}

func TestReadMissing(t *testing.T) {
	c := New(newTestCorpus(t), testExtensions)

	_, err := c.Read(context.Background(), "missing.rst")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReadLatin1Fallback(t *testing.T) {
	root := t.TempDir()
	// 0xE9 is e-acute in Latin-1 and invalid as a lone UTF-8 byte.
	require.NoError(t, os.WriteFile(filepath.Join(root, "legacy.txt"), []byte{'c', 'a', 'f', 0xE9}, 0o644))
	c := New(root, testExtensions)

	raw, err := c.Read(context.Background(), "legacy.txt")
	require.NoError(t, err)
	assert.Equal(t, "latin-1", raw.Encoding)
	assert.Equal(t, "café", raw.Content)
}

func TestStructure(t *testing.T) {
	c := New(newTestCorpus(t), testExtensions)

	structure, err := c.Structure(context.Background())
	require.NoError(t, err)

	require.Contains(t, structure.Directories, "api-reference")
	dir := structure.Directories["api-reference"]
	assert.Equal(t, 2, dir.FileCount)
	assert.Equal(t, map[string]int{".rst": 1, ".md": 1}, dir.Extensions)

	require.Len(t, structure.Files, 1)
	assert.Equal(t, "index.rst", structure.Files[0].Name)
	assert.Equal(t, 1, structure.Metadata.TotalFiles)
	assert.Equal(t, 1, structure.Metadata.TotalDirectories)
	assert.NotContains(t, structure.Directories, ".git")
}

func TestDecode(t *testing.T) {
	content, encoding := decode([]byte("plain ascii"))
	assert.Equal(t, "plain ascii", content)
	assert.Equal(t, "utf-8", encoding)

	content, encoding = decode([]byte{0xFF, 0xFE})
	assert.Equal(t, "latin-1", encoding)
	assert.Equal(t, "ÿþ", content)
}
