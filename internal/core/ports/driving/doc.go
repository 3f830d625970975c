// Package driving defines the interfaces through which external
// actors (CLI, MCP server) drive the core: search, structure listing,
// document reads, API-reference lookup, recommendations and index
// lifecycle.
package driving
