package domain

import "time"

// IndexState tracks the lifecycle of a background index build.
type IndexState int

const (
	// IndexIdle means no build has been started yet.
	IndexIdle IndexState = iota

	// IndexBuilding means a build is in progress.
	IndexBuilding

	// IndexReady means a complete index has been published.
	IndexReady

	// IndexFailed means the last build ended in an error.
	IndexFailed
)

// String returns the lowercase state name.
func (s IndexState) String() string {
	switch s {
	case IndexIdle:
		return "idle"
	case IndexBuilding:
		return "building"
	case IndexReady:
		return "ready"
	case IndexFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SkippedDocument records one document excluded from an index build.
type SkippedDocument struct {
	// ID is the document identifier.
	ID string `json:"id"`

	// Reason is the failure that caused the skip.
	Reason string `json:"reason"`
}

// BuildReport summarises one index build. Per-document failures are
// collected here instead of aborting the build.
type BuildReport struct {
	// ID uniquely identifies this build.
	ID string `json:"id"`

	// Indexed is the number of documents added to the index.
	Indexed int `json:"indexed"`

	// Skipped lists documents excluded with their reasons.
	Skipped []SkippedDocument `json:"skipped,omitempty"`

	// Started and Finished bound the build.
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
}

// IndexStats describes the published index.
type IndexStats struct {
	// TotalDocuments is the number of indexed documents.
	TotalDocuments int `json:"total_documents"`

	// TotalTerms is the number of distinct terms across the corpus.
	TotalTerms int `json:"total_terms"`

	// BuiltAt is when the index was published. Zero when no build
	// has completed.
	BuiltAt time.Time `json:"built_at"`

	// ReportID links to the build report that produced the index.
	ReportID string `json:"report_id,omitempty"`
}
