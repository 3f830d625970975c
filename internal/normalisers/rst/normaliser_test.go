package rst

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
)

const sample = `WiFi Driver
===========

.. note::
   Read the hardware guide first.

Station Mode
------------

Connect with :ref:` + "`wifi-station`" + ` and configure the interface.

.. code-block:: c

    esp_err_t err = esp_wifi_init(&cfg);
    ESP_ERROR_CHECK(err);

Scanning
^^^^^^^^

Passive scanning is described in :doc:` + "`scan`" + `.
`

func normalise(t *testing.T, content string) *driven.NormaliseResult {
	t.Helper()
	res, err := New().Normalise(context.Background(), &domain.RawDocument{
		ID:      "doc.rst",
		DocType: domain.DocTypeRST,
		Content: content,
	})
	require.NoError(t, err)
	return res
}

func TestNormaliseStripsMarkup(t *testing.T) {
	res := normalise(t, sample)

	assert.NotContains(t, res.Content, ".. note::")
	assert.NotContains(t, res.Content, ".. code-block::")
	assert.NotContains(t, res.Content, ":ref:")
	assert.NotContains(t, res.Content, ":doc:")
	assert.Contains(t, res.Content, "configure the interface")
}

func TestNormaliseTitle(t *testing.T) {
	res := normalise(t, sample)
	assert.Equal(t, "WiFi Driver", res.Title)
}

func TestExtractHeadings(t *testing.T) {
	res := normalise(t, sample)

	require.Len(t, res.Headings, 3)
	assert.Equal(t, "WiFi Driver", res.Headings[0].Title)
	assert.Equal(t, 1, res.Headings[0].Level)
	assert.Equal(t, 1, res.Headings[0].Line)

	assert.Equal(t, "Station Mode", res.Headings[1].Title)
	assert.Equal(t, 2, res.Headings[1].Level)

	assert.Equal(t, "Scanning", res.Headings[2].Title)
	assert.Equal(t, 3, res.Headings[2].Level)
	assert.Equal(t, domain.DocTypeRST, res.Headings[2].Dialect)
}

func TestExtractHeadingsIgnoresBareUnderlines(t *testing.T) {
	res := normalise(t, "\n=====\n\ntext\n")
	assert.Empty(t, res.Headings)
}

func TestExtractCodeBlocks(t *testing.T) {
	res := normalise(t, sample)

	require.Len(t, res.CodeBlocks, 1)
	block := res.CodeBlocks[0]
	assert.Equal(t, "c", block.Language)
	assert.Contains(t, block.Code, "esp_wifi_init(&cfg)")
	assert.NotContains(t, block.Code, "    esp_err_t")
	assert.Equal(t, domain.DocTypeRST, block.Dialect)
}

func TestExtractCodeBlocksDefaultLanguage(t *testing.T) {
	res := normalise(t, ".. code-block::\n\n    idf.py build\n")
	require.Len(t, res.CodeBlocks, 1)
	assert.Equal(t, "text", res.CodeBlocks[0].Language)
	assert.Equal(t, "idf.py build", res.CodeBlocks[0].Code)
}

func TestNormaliseNilDocument(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDialects(t *testing.T) {
	assert.Equal(t, []string{domain.DocTypeRST}, New().Dialects())
}
