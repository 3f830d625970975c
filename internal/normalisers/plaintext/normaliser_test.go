package plaintext

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

func TestNormalisePassthrough(t *testing.T) {
	content := "Release Notes\n\nFixed a crash in the UART driver.\n"
	res, err := New().Normalise(context.Background(), &domain.RawDocument{
		ID:      "notes.txt",
		DocType: domain.DocTypeText,
		Content: content,
	})
	require.NoError(t, err)

	assert.Equal(t, content, res.Content)
	assert.Equal(t, "Release Notes", res.Title)
	assert.Empty(t, res.Headings)
	assert.Empty(t, res.CodeBlocks)
}

func TestFirstLineTitle(t *testing.T) {
	assert.Equal(t, "Short title", firstLineTitle("\n\n  Short title  \nbody"))
	assert.Equal(t, "", firstLineTitle(""))
	assert.Equal(t, "", firstLineTitle(strings.Repeat("x", 81)))
}

func TestNormaliseNilDocument(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
