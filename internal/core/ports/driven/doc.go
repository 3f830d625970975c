// Package driven defines the interfaces the core depends on: document
// sources, markup normalisers, the page cache and configuration
// access. Adapters implement these; the core only consumes them.
package driven
