package services

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

// fuzzyMatch reports whether query matches text. A normalized substring
// hit always matches, whatever the threshold; otherwise the similarity
// ratio of the normalized strings must reach the threshold.
func fuzzyMatch(query, text string, threshold float64) bool {
	q := normalizeText(query)
	t := normalizeText(text)
	if q == "" {
		return false
	}
	if strings.Contains(t, q) {
		return true
	}
	return similarityRatio(q, t) >= threshold
}

// countOccurrences counts non-overlapping case-insensitive occurrences
// of needle in haystack.
func countOccurrences(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	return strings.Count(strings.ToLower(haystack), strings.ToLower(needle))
}

const (
	matchWeight      = 10.0
	exactWeight      = 15.0
	filenameBonus    = 25.0
	docTypeBonus     = 5.0
	recencyNearBonus = 10.0
	recencyFarBonus  = 5.0
	maxScore         = 100.0
)

// relevanceScore combines match count, exact occurrences, heading hits,
// filename and document type bonuses, recency and a length factor into
// a bounded [0,100] score.
func relevanceScore(query string, doc *domain.IndexedDocument, content string, matchCount int, now time.Time) float64 {
	score := matchWeight * float64(matchCount)
	score += exactWeight * float64(countOccurrences(content, query))

	lowered := strings.ToLower(query)
	for _, h := range doc.Headings {
		if strings.Contains(strings.ToLower(h.Title), lowered) {
			bonus := 30.0 - 5.0*float64(h.Level)
			if bonus < 10.0 {
				bonus = 10.0
			}
			score += bonus
		}
	}

	if strings.Contains(strings.ToLower(doc.ID), lowered) {
		score += filenameBonus
	}
	if doc.Metadata != nil {
		if doc.Metadata.DocType == domain.DocTypeRST {
			score += docTypeBonus
		}
		if !doc.Metadata.LastModified.IsZero() {
			age := now.Sub(doc.Metadata.LastModified)
			switch {
			case age < 30*24*time.Hour:
				score += recencyNearBonus
			case age < 90*24*time.Hour:
				score += recencyFarBonus
			}
		}
	}

	// Shorter documents carry proportionally denser matches.
	if doc.WordCount > 0 {
		factor := 1000.0 / float64(doc.WordCount)
		if factor > 1.0 {
			factor = 1.0
		}
		score *= 0.5 + 0.5*factor
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

// highlight wraps up to maxOccurrences case-insensitive occurrences of
// query in text with ** markers. The scan resumes one rune past each
// hit, so overlapping hits of a self-overlapping query are tolerated.
// Matching is rune-aligned on the original text, so case mappings that
// change byte length never shift the wrapped span.
func highlight(text, query string, maxOccurrences int) string {
	if text == "" || query == "" || maxOccurrences <= 0 {
		return text
	}

	var b strings.Builder
	written := 0
	pos := 0
	for n := 0; n < maxOccurrences; n++ {
		found, end := foldIndex(text, query, pos)
		if found < 0 {
			break
		}
		if found >= written {
			b.WriteString(text[written:found])
			b.WriteString("**")
			b.WriteString(text[found:end])
			b.WriteString("**")
			written = end
		}
		_, size := utf8.DecodeRuneInString(text[found:])
		pos = found + size
	}
	if written == 0 {
		return text
	}
	b.WriteString(text[written:])
	return b.String()
}

// foldIndex finds the first case-insensitive occurrence of query in
// text at or after the rune-aligned byte offset start. Candidate spans
// cover as many runes as the query and are compared with EqualFold, so
// the returned bounds are always valid slice offsets into text.
func foldIndex(text, query string, start int) (begin, end int) {
	qRunes := utf8.RuneCountInString(query)
	for i := start; i < len(text); {
		stop, ok := advanceRunes(text, i, qRunes)
		if !ok {
			return -1, -1
		}
		if strings.EqualFold(text[i:stop], query) {
			return i, stop
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return -1, -1
}

// advanceRunes returns the byte offset n runes past start, reporting
// false when fewer than n runes remain.
func advanceRunes(s string, start, n int) (int, bool) {
	i := start
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i, n == 0
}

// expandQuery returns the query followed by its known related terms.
// The original query is always first; expansion never rewrites it.
func expandQuery(query string) []string {
	expanded := []string{query}
	q := strings.ToLower(strings.TrimSpace(query))
	for _, term := range relatedTerms(q) {
		if term != q {
			expanded = append(expanded, term)
		}
	}
	return expanded
}
