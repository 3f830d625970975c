package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Patterns never accepted in queries or component names. They point
// at path traversal or injection attempts rather than documentation
// lookups.
var unsafePatterns = []string{
	"../",
	"..\\",
	"/etc/",
	"/proc/",
	"c:\\",
	"<script",
	"javascript:",
	"data:",
	"file://",
	"ftp://",
	"ldap://",
}

// ValidateQuery checks a search query against the configured limits.
// Failures wrap ErrInvalidInput so callers can classify them.
func ValidateQuery(query string, maxLength int) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query cannot be empty", ErrInvalidInput)
	}
	if len(query) > maxLength {
		return fmt.Errorf("%w: maximum length is %d characters", ErrQueryTooLong, maxLength)
	}

	lower := strings.ToLower(query)
	for _, pattern := range unsafePatterns {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("%w: %q", ErrUnsafeInput, pattern)
		}
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
var controlChars = regexp.MustCompile(`[\x00-\x1f\x7f]`)

// SanitizeComponent strips characters that are unsafe in filenames or
// regular-expression sources from a component name.
func SanitizeComponent(name string) string {
	clean := unsafeFilenameChars.ReplaceAllString(name, "_")
	clean = controlChars.ReplaceAllString(clean, "")
	if len(clean) > 255 {
		clean = clean[:255]
	}
	return strings.TrimSpace(clean)
}

// ValidateFilePath checks a document path requested for reading.
// Only relative paths inside the corpus with an allowed extension are
// accepted.
func ValidateFilePath(path string, allowedExtensions []string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: file path cannot be empty", ErrInvalidInput)
	}

	lower := strings.ToLower(path)
	for _, pattern := range unsafePatterns {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("%w: %q", ErrUnsafeInput, pattern)
		}
	}
	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, "\\") {
		return fmt.Errorf("%w: path must be relative", ErrUnsafeInput)
	}

	for _, ext := range allowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return fmt.Errorf("%w: file must have one of these extensions: %s",
		ErrInvalidInput, strings.Join(allowedExtensions, ", "))
}
