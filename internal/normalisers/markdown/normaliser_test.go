package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
)

const sample = "# Build System\n" +
	"\n" +
	"See the [project guide](docs/project.md) for **important** details\n" +
	"about *incremental* builds and the `idf.py` tool.\n" +
	"\n" +
	"![layout](images/layout.png)\n" +
	"\n" +
	"## Configuration ##\n" +
	"\n" +
	"```bash\n" +
	"idf.py menuconfig\n" +
	"```\n" +
	"\n" +
	"### Advanced\n"

func normalise(t *testing.T, content string) *driven.NormaliseResult {
	t.Helper()
	res, err := New().Normalise(context.Background(), &domain.RawDocument{
		ID:      "doc.md",
		DocType: domain.DocTypeMarkdown,
		Content: content,
	})
	require.NoError(t, err)
	return res
}

func TestNormaliseStripsFormatting(t *testing.T) {
	res := normalise(t, sample)

	assert.Contains(t, res.Content, "project guide")
	assert.NotContains(t, res.Content, "docs/project.md")
	assert.Contains(t, res.Content, "important")
	assert.NotContains(t, res.Content, "**")
	assert.Contains(t, res.Content, "incremental")
	assert.Contains(t, res.Content, "idf.py tool")
	assert.Contains(t, res.Content, "layout")
	assert.NotContains(t, res.Content, "images/layout.png")
	assert.NotContains(t, res.Content, "menuconfig")
}

func TestExtractHeadings(t *testing.T) {
	res := normalise(t, sample)

	require.Len(t, res.Headings, 3)
	assert.Equal(t, "Build System", res.Headings[0].Title)
	assert.Equal(t, 1, res.Headings[0].Level)
	assert.Equal(t, 1, res.Headings[0].Line)

	// Trailing closing hashes are not part of the title.
	assert.Equal(t, "Configuration", res.Headings[1].Title)
	assert.Equal(t, 2, res.Headings[1].Level)

	assert.Equal(t, "Advanced", res.Headings[2].Title)
	assert.Equal(t, 3, res.Headings[2].Level)
	assert.Equal(t, domain.DocTypeMarkdown, res.Headings[2].Dialect)
}

func TestTitleIsFirstHeading(t *testing.T) {
	res := normalise(t, sample)
	assert.Equal(t, "Build System", res.Title)
}

func TestExtractCodeBlocks(t *testing.T) {
	res := normalise(t, sample)

	require.Len(t, res.CodeBlocks, 1)
	assert.Equal(t, "bash", res.CodeBlocks[0].Language)
	assert.Equal(t, "idf.py menuconfig", res.CodeBlocks[0].Code)
	assert.Equal(t, domain.DocTypeMarkdown, res.CodeBlocks[0].Dialect)
}

func TestExtractCodeBlocksDefaultLanguage(t *testing.T) {
	res := normalise(t, "```\nplain commands\n```\n")
	require.Len(t, res.CodeBlocks, 1)
	assert.Equal(t, "text", res.CodeBlocks[0].Language)
}

func TestNormaliseNilDocument(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
