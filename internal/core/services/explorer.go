package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driving"
	"github.com/raihalea/esp-idf-docs/internal/logger"
)

// Explorer implements the documentation exploration operations over a
// document source and the term index.
type Explorer struct {
	source      driven.DocumentSource
	normalisers driven.NormaliserRegistry
	index       *Indexer
	cfg         domain.Config
	now         func() time.Time
}

var _ driving.ExplorerService = (*Explorer)(nil)

// NewExplorer creates an explorer over the given source and index.
func NewExplorer(source driven.DocumentSource, normalisers driven.NormaliserRegistry, index *Indexer, cfg domain.Config) *Explorer {
	return &Explorer{
		source:      source,
		normalisers: normalisers,
		index:       index,
		cfg:         cfg,
		now:         time.Now,
	}
}

// SearchDocs scans every document for the query, scores the hits and
// returns a paginated, score-ordered result set. Per-document failures
// only shrink the results.
func (e *Explorer) SearchDocs(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
	start := e.now()

	if err := domain.ValidateQuery(query, e.cfg.MaxQueryLength); err != nil {
		return nil, err
	}
	limit := opts.Limit
	if limit <= 0 || limit > e.cfg.MaxResults {
		limit = e.cfg.MaxResults
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	logger.Section("Search")
	logger.Info("Searching for %q (limit=%d, offset=%d)", query, limit, offset)

	refs, err := e.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	var (
		mu      sync.Mutex
		results []domain.SearchResult
		scanned int
	)
	g, gctx := errgroup.WithContext(ctx)
	concurrency := e.cfg.MaxConcurrentFiles
	if concurrency <= 0 {
		concurrency = 1
	}
	g.SetLimit(concurrency)

	for _, ref := range refs {
		g.Go(func() error {
			result, err := e.searchOne(gctx, ref, query)
			mu.Lock()
			defer mu.Unlock()
			scanned++
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				logger.Debug("Skipping %s: %v", ref.ID, err)
				return nil
			}
			if result != nil {
				results = append(results, *result)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].File < results[j].File
	})

	total := len(results)
	page := paginate(results, offset, limit)

	var expanded []string
	if e.cfg.EnableQueryExpansion {
		expanded = expandQuery(query)
	}

	resp := &domain.SearchResponse{
		Query:           query,
		ExpandedQueries: expanded,
		Results:         page,
		Metadata: domain.SearchMetadata{
			FilesScanned:    scanned,
			ResultsFound:    total,
			ResultsReturned: len(page),
			Duration:        e.now().Sub(start),
			FuzzyEnabled:    e.cfg.EnableFuzzySearch,
		},
	}
	logger.Info("Search complete: %d results in %d files", total, scanned)
	return resp, nil
}

func paginate(results []domain.SearchResult, offset, limit int) []domain.SearchResult {
	if offset >= len(results) {
		return []domain.SearchResult{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}

// searchOne checks a single document for the query. A nil result with
// nil error means no match.
func (e *Explorer) searchOne(ctx context.Context, ref domain.DocumentRef, query string) (*domain.SearchResult, error) {
	raw, err := e.source.Read(ctx, ref.ID)
	if err != nil {
		return nil, err
	}

	norm, err := e.normalisers.ForDialect(raw.DocType)
	if err != nil {
		return nil, err
	}
	res, err := norm.Normalise(ctx, raw)
	if err != nil {
		return nil, err
	}

	var matched bool
	if e.cfg.EnableFuzzySearch {
		matched = fuzzyMatch(query, res.Content, e.cfg.FuzzyThreshold)
	} else {
		matched = strings.Contains(strings.ToLower(res.Content), strings.ToLower(query))
	}
	if !matched {
		return nil, nil
	}

	matches := e.extractMatches(raw.Content, query)
	if len(matches) == 0 {
		return nil, nil
	}

	doc, ok := e.index.Get(ref.ID)
	if !ok {
		// Fall back to a freshly derived document when the index
		// has not caught up with this file yet.
		meta := buildMetadata(raw)
		doc = &domain.IndexedDocument{
			ID:        ref.ID,
			Metadata:  &meta,
			WordCount: len(tokenize(res.Content)),
			Headings:  res.Headings,
		}
	}
	score := relevanceScore(query, doc, res.Content, len(matches), e.now())

	return &domain.SearchResult{
		File:    ref.ID,
		Matches: matches,
		Score:   score,
		Metadata: domain.ResultMetadata{
			SizeKB:    roundKB(raw.SizeBytes),
			WordCount: doc.WordCount,
			DocType:   raw.DocType,
		},
	}, nil
}

// extractMatches finds up to MaxMatchesPerFile matching lines and
// captures the surrounding context with the matching line highlighted.
func (e *Explorer) extractMatches(content, query string) []domain.Match {
	lines := strings.Split(content, "\n")
	queryLower := strings.ToLower(query)

	var matches []domain.Match
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), queryLower) {
			continue
		}

		start := i - e.cfg.ContextLines
		if start < 0 {
			start = 0
		}
		end := i + e.cfg.ContextLines + 1
		if end > len(lines) {
			end = len(lines)
		}

		context := make([]domain.ContextLine, 0, end-start)
		for j := start; j < end; j++ {
			text := strings.TrimSpace(lines[j])
			cl := domain.ContextLine{
				Line:        j + 1,
				Text:        text,
				Highlighted: text,
				IsMatch:     j == i,
			}
			if j == i {
				cl.Highlighted = strings.TrimSpace(highlight(lines[j], query, e.cfg.MaxMatchesPerFile))
			}
			context = append(context, cl)
		}

		matches = append(matches, domain.Match{
			LineNumber: i + 1,
			Snippet:    strings.TrimSpace(line),
			Context:    context,
		})
		if len(matches) >= e.cfg.MaxMatchesPerFile {
			break
		}
	}
	return matches
}

// Structure describes the corpus layout as reported by the source.
func (e *Explorer) Structure(ctx context.Context) (*domain.DocStructure, error) {
	logger.Debug("Scanning documentation structure")
	start := e.now()
	structure, err := e.source.Structure(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning structure: %w", err)
	}
	structure.Metadata.ScanDuration = e.now().Sub(start)
	structure.Metadata.SupportedExtensions = e.cfg.AllowedExtensions
	return structure, nil
}

// ReadDoc returns the content of one document with its metadata.
func (e *Explorer) ReadDoc(ctx context.Context, path string) (*domain.DocumentContent, error) {
	if err := domain.ValidateFilePath(path, e.cfg.AllowedExtensions); err != nil {
		return nil, err
	}
	logger.Debug("Reading %s", path)

	raw, err := e.source.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	if e.cfg.MaxFileSizeKB > 0 && raw.SizeBytes > int64(e.cfg.MaxFileSizeKB)*1024 {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %dKB)",
			domain.ErrFileTooLarge, path, raw.SizeBytes, e.cfg.MaxFileSizeKB)
	}

	meta := buildMetadata(raw)
	return &domain.DocumentContent{
		Content:  raw.Content,
		Metadata: &meta,
	}, nil
}

// apiPatternSpecs describe how a component shows up in documentation,
// from doxygen directives down to bare name-prefix mentions.
var apiPatternSpecs = []struct {
	format    string
	matchType string
}{
	{`\.\. doxygenfunction::\s*%s`, "function"},
	{`\.\. doxygenstruct::\s*%s`, "struct"},
	{`\.\. doxygenenum::\s*%s`, "enum"},
	{`\.\. doxygendefine::\s*%s`, "define"},
	{"`%s`", "reference"},
	{`#%s`, "heading"},
	{`## %s`, "heading"},
	{`### %s`, "heading"},
	{`\b%s_\w+`, "function_family"},
}

// FindAPIReferences locates API mentions of a component across the
// corpus, ordered by match count.
func (e *Explorer) FindAPIReferences(ctx context.Context, component string) (*domain.APIReferenceResponse, error) {
	start := e.now()

	component = strings.TrimSpace(component)
	if component == "" {
		return nil, fmt.Errorf("%w: component name cannot be empty", domain.ErrInvalidInput)
	}
	sanitized := domain.SanitizeComponent(component)
	logger.Info("Finding API references for %q", component)

	escaped := regexp.QuoteMeta(component)
	type apiPattern struct {
		re        *regexp.Regexp
		matchType string
	}
	patterns := make([]apiPattern, 0, len(apiPatternSpecs))
	for _, spec := range apiPatternSpecs {
		re, err := regexp.Compile(`(?im)` + fmt.Sprintf(spec.format, escaped))
		if err != nil {
			return nil, fmt.Errorf("compiling pattern for %q: %w", component, err)
		}
		patterns = append(patterns, apiPattern{re: re, matchType: spec.matchType})
	}

	refs, err := e.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	var results []domain.APIReferenceResult
	scanned := 0
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		scanned++
		raw, err := e.source.Read(ctx, ref.ID)
		if err != nil {
			logger.Debug("Skipping %s: %v", ref.ID, err)
			continue
		}

		lines := strings.Split(raw.Content, "\n")
		var fileMatches []domain.APIMatch
		for _, p := range patterns {
			for _, loc := range p.re.FindAllStringIndex(raw.Content, -1) {
				lineNum := strings.Count(raw.Content[:loc[0]], "\n") + 1
				fileMatches = append(fileMatches, domain.APIMatch{
					Type:       p.matchType,
					Pattern:    raw.Content[loc[0]:loc[1]],
					LineNumber: lineNum,
					Context:    strings.TrimSpace(lines[lineNum-1]),
				})
			}
		}
		if len(fileMatches) > 0 {
			results = append(results, domain.APIReferenceResult{
				File:       ref.ID,
				Matches:    fileMatches,
				MatchCount: len(fileMatches),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchCount != results[j].MatchCount {
			return results[i].MatchCount > results[j].MatchCount
		}
		return results[i].File < results[j].File
	})

	totalMatches := 0
	for _, r := range results {
		totalMatches += r.MatchCount
	}
	return &domain.APIReferenceResponse{
		Component:       component,
		QueryVariations: []string{component, sanitized},
		Results:         results,
		Metadata: domain.APIReferenceMetadata{
			FilesScanned:     scanned,
			FilesWithMatches: len(results),
			TotalMatches:     totalMatches,
			Duration:         e.now().Sub(start),
			PatternCount:     len(patterns),
		},
	}, nil
}

func roundKB(bytes int64) float64 {
	return float64(bytes*100/1024) / 100
}
