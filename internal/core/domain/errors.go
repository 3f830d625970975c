package domain

import "errors"

// Domain errors represent business logic failures. Infrastructure
// errors (I/O, network) are wrapped where they cross into the core.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	// Validation failures wrap this with detail.
	ErrInvalidInput = errors.New("invalid input")

	// ErrQueryTooLong indicates the query exceeds the configured
	// maximum length.
	ErrQueryTooLong = errors.New("query too long")

	// ErrUnsafeInput indicates the input contains a disallowed
	// pattern (path traversal, script injection and similar).
	ErrUnsafeInput = errors.New("input contains invalid pattern")

	// ErrUnsupportedDialect indicates no normaliser is registered
	// for a document's markup dialect.
	ErrUnsupportedDialect = errors.New("unsupported dialect")

	// ErrFileTooLarge indicates a document exceeds the configured
	// size limit for full reads.
	ErrFileTooLarge = errors.New("file too large")

	// ErrBuildInProgress indicates an index build is already
	// running.
	ErrBuildInProgress = errors.New("index build in progress")

	// ErrRecommendationsDisabled indicates the recommendation
	// feature is switched off in the configuration.
	ErrRecommendationsDisabled = errors.New("recommendations disabled")
)
