// Package markdown normalises Markdown documents.
package markdown

import (
	"context"
	"regexp"
	"strings"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Markdown documents.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Dialects returns the dialect tags this normaliser handles.
func (n *Normaliser) Dialects() []string {
	return []string{domain.DocTypeMarkdown}
}

var (
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	imageRe      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	boldRe       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe     = regexp.MustCompile(`\*([^*]+)\*`)
	fencedRe     = regexp.MustCompile("```[\\s\\S]*?```")
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	headingRe    = regexp.MustCompile(`^(#{1,6})\s*(.+?)(?:\s*#*)?$`)
	codeBlockRe  = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```")
)

// Normalise strips Markdown formatting while keeping the wrapped text,
// and extracts headings and fenced code blocks.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	headings := extractHeadings(raw.Content)
	title := ""
	if len(headings) > 0 {
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
	content = imageRe.ReplaceAllString(content, "$1")
	content = linkRe.ReplaceAllString(content, "$1")
	content = boldRe.ReplaceAllString(content, "$1")
	content = italicRe.ReplaceAllString(content, "$1")
	content = fencedRe.ReplaceAllString(content, "")
	content = inlineCodeRe.ReplaceAllString(content, "$1")
	return strings.TrimSpace(content)
}

func extractHeadings(content string) []domain.Heading {
	var headings []domain.Heading
	for i, line := range strings.Split(content, "\n") {
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		headings = append(headings, domain.Heading{
			Title:   strings.TrimSpace(m[2]),
			Level:   len(m[1]),
			Line:    i + 1,
			Dialect: domain.DocTypeMarkdown,
		})
	}
	return headings
}

func extractCodeBlocks(content string) []domain.CodeBlock {
	var blocks []domain.CodeBlock
	for _, m := range codeBlockRe.FindAllStringSubmatch(content, -1) {
		language := m[1]
		if language == "" {
			language = "text"
		}
		blocks = append(blocks, domain.CodeBlock{
			Language: language,
			Code:     strings.TrimSpace(m[2]),
			Dialect:  domain.DocTypeMarkdown,
		})
	}
	return blocks
}
