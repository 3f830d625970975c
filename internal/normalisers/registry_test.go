package normalisers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

func TestDefaultRegistryCoversBuiltinDialects(t *testing.T) {
	r := NewDefaultRegistry()

	for _, dialect := range []string{
		domain.DocTypeRST,
		domain.DocTypeMarkdown,
		domain.DocTypeText,
		domain.DocTypeHTML,
	} {
		n, err := r.ForDialect(dialect)
		require.NoError(t, err, dialect)
		assert.Contains(t, n.Dialects(), dialect)
	}
}

func TestForDialectUnknown(t *testing.T) {
	r := NewDefaultRegistry()

	_, err := r.ForDialect("docx")
	assert.ErrorIs(t, err, domain.ErrUnsupportedDialect)
}
