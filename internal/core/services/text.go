package services

import (
	"strings"
	"unicode"
)

// normalizeText lowercases the input, replaces every non-alphanumeric
// rune with a space and collapses runs of whitespace. Tokenisation for
// indexing and fuzzy matching both go through here so term frequencies
// and query terms agree.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// tokenize splits normalized text into terms.
func tokenize(s string) []string {
	return strings.Fields(normalizeText(s))
}

// termFrequencies counts occurrences of each normalized term.
func termFrequencies(content string) map[string]int {
	tf := make(map[string]int)
	for _, t := range tokenize(content) {
		tf[t]++
	}
	return tf
}

// similarityRatio is the Ratcliff/Obershelp similarity of two strings,
// in [0,1]: twice the total length of all recursively matched blocks
// divided by the combined length.
func similarityRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	ra, rb := []rune(a), []rune(b)
	matched := matchingBlocks(ra, rb)
	return 2.0 * float64(matched) / float64(len(ra)+len(rb))
}

func matchingBlocks(a, b []rune) int {
	i, j, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingBlocks(a[:i], b[:j])
	total += matchingBlocks(a[i+size:], b[j+size:])
	return total
}

// longestMatch finds the longest common contiguous block, preferring
// the earliest occurrence in a, then in b.
func longestMatch(a, b []rune) (bestI, bestJ, bestSize int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// lengths[j] holds the length of the common suffix ending at
	// a[i-1], b[j-1] for the previous row.
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > bestSize {
					bestSize = cur[j]
					bestI = i - cur[j]
					bestJ = j - cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return bestI, bestJ, bestSize
}
