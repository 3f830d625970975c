// Package connectors groups document source implementations. Each
// connector lives in its own subpackage and implements
// driven.DocumentSource: filesystem walks a local documentation tree,
// web fetches pages from the online documentation site.
package connectors
