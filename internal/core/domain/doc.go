// Package domain contains the core data model for the documentation
// explorer: document metadata, index entries, search results and
// recommendations. Types here are plain values with no dependencies on
// adapters or infrastructure.
package domain
