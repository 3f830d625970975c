// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the documentation explorer. It lets AI assistants search, read
// and navigate ESP-IDF documentation.
package mcp

import "errors"

// ErrMissingExplorerService is returned when the explorer service is not provided.
var ErrMissingExplorerService = errors.New("mcp: explorer service is required")
