// Package html normalises rendered HTML pages fetched from the online
// documentation site.
package html

import (
	"context"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles HTML documents.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Dialects returns the dialect tags this normaliser handles.
func (n *Normaliser) Dialects() []string {
	return []string{domain.DocTypeHTML}
}

var (
	scriptRe  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe   = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe     = regexp.MustCompile(`(?s)<[^>]*>`)
	titleRe   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	headingRe = regexp.MustCompile(`(?is)<h([1-6])[^>]*>(.*?)</h[1-6]>`)
	preCodeRe = regexp.MustCompile(`(?is)<pre[^>]*>(?:\s*<code[^>]*>)?(.*?)(?:</code>\s*)?</pre>`)
	classRe   = regexp.MustCompile(`(?i)language-(\w+)`)
	blanksRe  = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// Normalise strips tags and scripts, keeping the visible text, and
// extracts the title, headings and preformatted code blocks.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	headings := extractHeadings(raw.Content)
	title := extractTitle(raw.Content)
	if title == "" && len(headings) > 0 {
		title = headings[0].Title
	}

	return &driven.NormaliseResult{
		Content:    clean(raw.Content),
		Title:      title,
		Headings:   headings,
		CodeBlocks: extractCodeBlocks(raw.Content),
	}, nil
}

func clean(content string) string {
	if content == "" {
		return ""
	}
	content = scriptRe.ReplaceAllString(content, "")
	content = styleRe.ReplaceAllString(content, "")
	content = tagRe.ReplaceAllString(content, " ")
	content = html.UnescapeString(content)

	// Collapse the whitespace left behind by removed tags, but keep
	// line structure for context extraction.
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	content = strings.Join(lines, "\n")
	content = blanksRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

func extractTitle(content string) string {
	m := titleRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(tagRe.ReplaceAllString(m[1], " ")))
}

func extractHeadings(content string) []domain.Heading {
	var headings []domain.Heading
	for _, loc := range headingRe.FindAllStringSubmatchIndex(content, -1) {
		level, _ := strconv.Atoi(content[loc[2]:loc[3]])
		text := tagRe.ReplaceAllString(content[loc[4]:loc[5]], " ")
		text = strings.Join(strings.Fields(html.UnescapeString(text)), " ")
		if text == "" {
			continue
		}
		headings = append(headings, domain.Heading{
			Title:   text,
			Level:   level,
			Line:    strings.Count(content[:loc[0]], "\n") + 1,
			Dialect: domain.DocTypeHTML,
		})
	}
	return headings
}

func extractCodeBlocks(content string) []domain.CodeBlock {
	var blocks []domain.CodeBlock
	for _, m := range preCodeRe.FindAllStringSubmatch(content, -1) {
		code := strings.TrimSpace(html.UnescapeString(m[1]))
		if code == "" {
			continue
		}
		blocks = append(blocks, domain.CodeBlock{
			Language: languageFor(m[0]),
			Code:     code,
			Dialect:  domain.DocTypeHTML,
		})
	}
	return blocks
}

func languageFor(block string) string {
	if m := classRe.FindStringSubmatch(block); m != nil {
		return strings.ToLower(m[1])
	}
	return "text"
}
