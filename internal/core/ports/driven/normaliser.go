package driven

import (
	"context"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

// Normaliser cleans one markup dialect. Cleaning strips markup syntax
// but never the words it wraps, so terms present in the raw text stay
// searchable in the cleaned text.
type Normaliser interface {
	// Dialects returns the dialect tags this normaliser handles.
	Dialects() []string

	// Normalise cleans a raw document and extracts its features.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult is the output of cleaning one document.
type NormaliseResult struct {
	// Content is the cleaned text.
	Content string

	// Title is the first heading, or a filename-derived fallback.
	Title string

	// Headings are the extracted headings in document order.
	Headings []domain.Heading

	// CodeBlocks are the extracted code samples in document order.
	CodeBlocks []domain.CodeBlock
}

// NormaliserRegistry selects a normaliser by dialect tag.
type NormaliserRegistry interface {
	// ForDialect returns the normaliser registered for a dialect,
	// or domain.ErrUnsupportedDialect when none is.
	ForDialect(dialect string) (Normaliser, error)
}
