package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// Document type tags identify the markup dialect of a document.
// The dialect selects the normaliser used to clean the content.
const (
	// DocTypeRST is reStructuredText, the primary ESP-IDF dialect.
	DocTypeRST = "rst"

	// DocTypeMarkdown is Markdown.
	DocTypeMarkdown = "md"

	// DocTypeText is plain text with no markup.
	DocTypeText = "txt"

	// DocTypeHTML is rendered HTML fetched from the documentation site.
	DocTypeHTML = "html"
)

// DocTypeForPath classifies a document by its file extension.
// Unknown extensions fall back to plain text.
func DocTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rst":
		return DocTypeRST
	case ".md", ".markdown":
		return DocTypeMarkdown
	case ".html", ".htm":
		return DocTypeHTML
	default:
		return DocTypeText
	}
}

// DocumentMetadata describes a single document in the corpus.
// It is created once per read and never mutated afterwards.
type DocumentMetadata struct {
	// ID is the stable document identifier (relative path or URL).
	ID string

	// SizeBytes is the raw content size.
	SizeBytes int64

	// LineCount is the number of lines in the raw content.
	LineCount int

	// WordCount is the number of whitespace-separated words.
	WordCount int

	// LastModified is the document's last modification time.
	LastModified time.Time

	// Encoding is the detected character encoding ("utf-8" or "latin-1").
	Encoding string

	// DocType is the markup dialect tag (rst, md, txt, html).
	DocType string

	// Hash is the hex-encoded SHA-256 digest of the full raw content.
	Hash string
}

// Heading is a section heading extracted from a document.
// Headings are recomputed on every index build and carry no identity
// of their own.
type Heading struct {
	// Title is the heading text.
	Title string

	// Level is the heading depth, 1 being the shallowest.
	Level int

	// Line is the 1-based line number where the heading appears.
	Line int

	// Dialect is the markup dialect the heading was extracted from.
	Dialect string
}

// CodeBlock is a fenced or directive-introduced code sample.
type CodeBlock struct {
	// Language is the declared language, or "text" when absent.
	Language string

	// Code is the block content with directive indentation removed.
	Code string

	// Dialect is the markup dialect the block was extracted from.
	Dialect string
}

// IndexedDocument is the term index's view of one document.
// Entries are created during an index build and never mutated after
// insertion; a rebuild replaces them wholesale.
type IndexedDocument struct {
	// ID is the stable document identifier.
	ID string

	// Metadata is the document metadata captured at index time.
	Metadata *DocumentMetadata

	// Title is the first heading, or a filename-derived fallback.
	Title string

	// Description is the first substantial paragraph, truncated.
	// Never empty: documents without one carry NoDescription.
	Description string

	// WordCount is the number of terms after normalisation.
	WordCount int

	// Headings are the extracted headings in document order.
	Headings []Heading

	// CodeBlocks are the extracted code samples in document order.
	CodeBlocks []CodeBlock

	// TermFrequency maps each distinct term to its occurrence count.
	// Zero counts are never stored.
	TermFrequency map[string]int

	// ContentLength is the length of the cleaned content in bytes.
	ContentLength int
}

// NoDescription is the sentinel returned when no qualifying
// description line exists in a document.
const NoDescription = "No description available."
