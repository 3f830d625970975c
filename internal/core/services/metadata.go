package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

// buildMetadata derives document metadata from raw content. The hash is
// the SHA-256 of the exact bytes read, so unchanged files can be
// detected across rebuilds.
func buildMetadata(raw *domain.RawDocument) domain.DocumentMetadata {
	sum := sha256.Sum256([]byte(raw.Content))
	return domain.DocumentMetadata{
		ID:           raw.ID,
		SizeBytes:    raw.SizeBytes,
		LineCount:    countLines(raw.Content),
		WordCount:    len(strings.Fields(raw.Content)),
		LastModified: raw.LastModified,
		Encoding:     raw.Encoding,
		DocType:      raw.DocType,
		Hash:         hex.EncodeToString(sum[:]),
	}
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
