// Package normalisers wires dialect-specific content normalisers into
// a registry keyed by dialect tag.
package normalisers

import (
	"fmt"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
	"github.com/raihalea/esp-idf-docs/internal/normalisers/html"
	"github.com/raihalea/esp-idf-docs/internal/normalisers/markdown"
	"github.com/raihalea/esp-idf-docs/internal/normalisers/plaintext"
	"github.com/raihalea/esp-idf-docs/internal/normalisers/rst"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry maps dialect tags to normalisers. Registration happens at
// construction; lookups are read-only afterwards.
type Registry struct {
	byDialect map[string]driven.Normaliser
}

// NewRegistry creates a registry holding the given normalisers.
func NewRegistry(normalisers ...driven.Normaliser) *Registry {
	r := &Registry{byDialect: make(map[string]driven.Normaliser)}
	for _, n := range normalisers {
		for _, dialect := range n.Dialects() {
			r.byDialect[dialect] = n
		}
	}
	return r
}

// NewDefaultRegistry creates a registry with every built-in dialect.
func NewDefaultRegistry() *Registry {
	return NewRegistry(rst.New(), markdown.New(), plaintext.New(), html.New())
}

// ForDialect returns the normaliser registered for a dialect.
func (r *Registry) ForDialect(dialect string) (driven.Normaliser, error) {
	n, ok := r.byDialect[dialect]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedDialect, dialect)
	}
	return n, nil
}
