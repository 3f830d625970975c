package domain

import "time"

// DirectoryInfo summarises one top-level documentation directory.
type DirectoryInfo struct {
	// FileCount is the number of matching documents underneath.
	FileCount int `json:"file_count"`

	// SizeKB is the combined size of those documents.
	SizeKB float64 `json:"size_kb"`

	// Extensions counts documents per extension.
	Extensions map[string]int `json:"extensions"`
}

// FileInfo describes a top-level documentation file.
type FileInfo struct {
	Name         string    `json:"name"`
	SizeKB       float64   `json:"size_kb"`
	Extension    string    `json:"extension"`
	LastModified time.Time `json:"last_modified"`
}

// Section is a named area of an online documentation site.
type Section struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Path string `json:"path"`
}

// StructureMetadata summarises a structure scan.
type StructureMetadata struct {
	TotalDirectories    int           `json:"total_directories"`
	TotalFiles          int           `json:"total_files"`
	TotalSizeMB         float64       `json:"total_size_mb"`
	SupportedExtensions []string      `json:"supported_extensions"`
	ScanDuration        time.Duration `json:"scan_duration"`
}

// DocStructure describes the layout of a documentation corpus.
// Filesystem sources populate Directories and Files; web sources
// populate Sections.
type DocStructure struct {
	Directories map[string]DirectoryInfo `json:"directories,omitempty"`
	Files       []FileInfo               `json:"files,omitempty"`
	Sections    []Section                `json:"sections,omitempty"`
	Metadata    StructureMetadata        `json:"metadata"`
}
