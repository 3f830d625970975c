// Package rst normalises reStructuredText, the primary dialect of the
// ESP-IDF documentation tree.
package rst

import (
	"context"
	"regexp"
	"strings"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles reStructuredText documents.
type Normaliser struct{}

// New creates a new RST normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Dialects returns the dialect tags this normaliser handles.
func (n *Normaliser) Dialects() []string {
	return []string{domain.DocTypeRST}
}

var (
	directiveRe     = regexp.MustCompile(`(?m)^\.\. \w+::`)
	refRoleRe       = regexp.MustCompile(":ref:`[^`]+`")
	docRoleRe       = regexp.MustCompile(":doc:`[^`]+`")
	codeDirectiveRe = regexp.MustCompile(`(?m)^\.\. code-block::\s*\w*\s*$`)
	blankRunsRe     = regexp.MustCompile(`\n\s*\n\s*\n`)

	codeBlockRe = regexp.MustCompile(`(?m)^\.\. code-block::\s*(\w*)\s*\n\n((?:    .+\n?)*)`)
	indentRe    = regexp.MustCompile(`(?m)^    `)
)

// Normalise cleans RST markup and extracts headings and code blocks.
// Directive and role syntax is stripped; the prose it wraps is kept.
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
	content = directiveRe.ReplaceAllString(content, "")
	content = refRoleRe.ReplaceAllString(content, "")
	content = docRoleRe.ReplaceAllString(content, "")
	content = codeDirectiveRe.ReplaceAllString(content, "")
	content = blankRunsRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

// underlineLevel maps an underline character to a heading level.
// Conventionally = marks sections, - subsections and ^ subsubsections.
func underlineLevel(line string) int {
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == "" {
		return 0
	}
	var ch byte
	switch trimmed[0] {
	case '=':
		ch = '='
	case '-':
		ch = '-'
	case '^':
		ch = '^'
	default:
		return 0
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != ch {
			return 0
		}
	}
	switch ch {
	case '=':
		return 1
	case '-':
		return 2
	default:
		return 3
	}
}

// extractHeadings finds underlined headings in document order. The
// underline must be at least as long as one character and directly
// follow a non-empty title line.
func extractHeadings(content string) []domain.Heading {
	lines := strings.Split(content, "\n")
	var headings []domain.Heading
	for i := 1; i < len(lines); i++ {
		level := underlineLevel(lines[i])
		if level == 0 {
			continue
		}
		title := strings.TrimSpace(lines[i-1])
		if title == "" {
			continue
		}
		headings = append(headings, domain.Heading{
			Title:   title,
			Level:   level,
			Line:    i, // 1-based line of the title
			Dialect: domain.DocTypeRST,
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
		code := indentRe.ReplaceAllString(m[2], "")
		blocks = append(blocks, domain.CodeBlock{
			Language: language,
			Code:     strings.TrimSpace(code),
			Dialect:  domain.DocTypeRST,
		})
	}
	return blocks
}
