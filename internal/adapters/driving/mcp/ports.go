package mcp

import (
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Explorer provides search, structure, read and API lookup.
	Explorer driving.ExplorerService

	// Recommend provides document recommendations.
	Recommend driving.RecommendationService

	// Index exposes the index lifecycle.
	Index driving.IndexService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Explorer == nil {
		return ErrMissingExplorerService
	}
	// Recommend and Index are optional; the matching tools degrade
	// when absent.
	return nil
}
