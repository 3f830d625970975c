package domain

import "time"

// DocumentRef identifies a discoverable document in a source.
type DocumentRef struct {
	// ID is the stable document identifier (relative path or URL).
	ID string

	// URI is the resolvable location of the document.
	URI string

	// DocType is the markup dialect tag.
	DocType string
}

// RawDocument is a document as delivered by a source: full text with
// the encoding already resolved, plus the file/page stats needed to
// build metadata. Sources surface failures as a single error per
// document, never partial reads.
type RawDocument struct {
	// ID is the stable document identifier.
	ID string

	// URI is the resolvable location of the document.
	URI string

	// DocType is the markup dialect tag.
	DocType string

	// Content is the decoded text content.
	Content string

	// SizeBytes is the raw content size before decoding.
	SizeBytes int64

	// LastModified is the document's last modification time.
	LastModified time.Time

	// Encoding is the encoding the content was decoded from.
	Encoding string
}

// ChangeType classifies a corpus change event.
type ChangeType int

const (
	// ChangeCreated indicates a new document appeared.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates a document was modified.
	ChangeUpdated

	// ChangeDeleted indicates a document was removed.
	ChangeDeleted
)

// ChangeEvent is a corpus change notification from a watching source.
// The explorer reacts by scheduling a rebuild-and-swap of the index.
type ChangeEvent struct {
	// Type is the kind of change.
	Type ChangeType

	// ID is the affected document identifier.
	ID string
}
