// Package plaintext normalises documents with no markup.
package plaintext

import (
	"context"
	"strings"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text. Content passes through untouched so
// plain text search semantics stay byte-exact.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Dialects returns the dialect tags this normaliser handles.
func (n *Normaliser) Dialects() []string {
	return []string{domain.DocTypeText}
}

// Normalise returns the content as-is. The title falls back to the
// first non-empty line when it is reasonably short.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	return &driven.NormaliseResult{
		Content: raw.Content,
		Title:   firstLineTitle(raw.Content),
	}, nil
}

const maxTitleLength = 80

func firstLineTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > maxTitleLength {
			return ""
		}
		return line
	}
	return ""
}
