package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driven"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driving"
	"github.com/raihalea/esp-idf-docs/internal/logger"
)

// indexSnapshot is an immutable view of a fully built index. Readers
// always see a complete snapshot; builds assemble a new one off to the
// side and publish it with a single pointer swap.
type indexSnapshot struct {
	docs    map[string]*domain.IndexedDocument
	df      map[string]int
	builtAt time.Time
}

func emptySnapshot() *indexSnapshot {
	return &indexSnapshot{
		docs: map[string]*domain.IndexedDocument{},
		df:   map[string]int{},
	}
}

// Indexer builds and serves the in-memory term index.
type Indexer struct {
	source      driven.DocumentSource
	normalisers driven.NormaliserRegistry
	cfg         domain.Config

	current atomic.Pointer[indexSnapshot]

	mu     sync.Mutex
	state  domain.IndexState
	report *domain.BuildReport
	done   chan struct{}
	err    error
}

var _ driving.IndexService = (*Indexer)(nil)

// NewIndexer creates an indexer over the given document source.
func NewIndexer(source driven.DocumentSource, normalisers driven.NormaliserRegistry, cfg domain.Config) *Indexer {
	idx := &Indexer{
		source:      source,
		normalisers: normalisers,
		cfg:         cfg,
		state:       domain.IndexIdle,
	}
	idx.current.Store(emptySnapshot())
	return idx
}

// StartIndexing launches a background build. Only one build may run at
// a time.
func (idx *Indexer) StartIndexing(ctx context.Context) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.state == domain.IndexBuilding {
		return domain.ErrBuildInProgress
	}
	idx.state = domain.IndexBuilding
	idx.done = make(chan struct{})
	done := idx.done

	go func() {
		report, err := idx.build(ctx)
		idx.mu.Lock()
		idx.report = report
		idx.err = err
		if err != nil {
			idx.state = domain.IndexFailed
		} else {
			idx.state = domain.IndexReady
		}
		idx.mu.Unlock()
		close(done)
	}()
	return nil
}

// WaitReady blocks until the current build completes or ctx is
// cancelled. Returns nil immediately when no build is running.
func (idx *Indexer) WaitReady(ctx context.Context) error {
	idx.mu.Lock()
	done := idx.done
	idx.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		idx.mu.Lock()
		defer idx.mu.Unlock()
		return idx.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Rebuild runs a build synchronously.
func (idx *Indexer) Rebuild(ctx context.Context) error {
	if err := idx.StartIndexing(ctx); err != nil {
		return err
	}
	return idx.WaitReady(ctx)
}

// State reports the index lifecycle state.
func (idx *Indexer) State() domain.IndexState {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.state
}

// Report returns the last completed build report, or nil.
func (idx *Indexer) Report() *domain.BuildReport {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.report
}

// Stats describes the currently published index.
func (idx *Indexer) Stats() domain.IndexStats {
	snap := idx.current.Load()
	stats := domain.IndexStats{
		TotalDocuments: len(snap.docs),
		TotalTerms:     len(snap.df),
		BuiltAt:        snap.builtAt,
	}
	idx.mu.Lock()
	if idx.report != nil {
		stats.ReportID = idx.report.ID
	}
	idx.mu.Unlock()
	return stats
}

// build reads, normalises and indexes every listed document, then
// publishes the new snapshot. Per-document failures are recorded and
// skipped; only listing failures abort the build.
func (idx *Indexer) build(ctx context.Context) (*domain.BuildReport, error) {
	report := &domain.BuildReport{
		ID:      uuid.NewString(),
		Started: time.Now(),
	}
	logger.Section("Index build " + report.ID)

	refs, err := idx.source.List(ctx)
	if err != nil {
		report.Finished = time.Now()
		return report, fmt.Errorf("listing documents: %w", err)
	}
	logger.Info("Indexing %d documents", len(refs))

	var (
		mu   sync.Mutex
		docs = make(map[string]*domain.IndexedDocument, len(refs))
	)
	g, gctx := errgroup.WithContext(ctx)
	limit := idx.cfg.MaxConcurrentFiles
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)

	for _, ref := range refs {
		g.Go(func() error {
			doc, err := idx.indexOne(gctx, ref)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				logger.Debug("Skipping %s: %v", ref.ID, err)
				report.Skipped = append(report.Skipped, domain.SkippedDocument{
					ID:     ref.ID,
					Reason: err.Error(),
				})
				return nil
			}
			docs[doc.ID] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		report.Finished = time.Now()
		return report, err
	}

	snap := &indexSnapshot{
		docs:    docs,
		df:      documentFrequencies(docs),
		builtAt: time.Now(),
	}
	idx.current.Store(snap)

	report.Indexed = len(docs)
	report.Finished = time.Now()
	sort.Slice(report.Skipped, func(i, j int) bool {
		return report.Skipped[i].ID < report.Skipped[j].ID
	})
	logger.Info("Index build complete: %d indexed, %d skipped", report.Indexed, len(report.Skipped))
	return report, nil
}

func (idx *Indexer) indexOne(ctx context.Context, ref domain.DocumentRef) (*domain.IndexedDocument, error) {
	raw, err := idx.source.Read(ctx, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("reading: %w", err)
	}
	if idx.cfg.MaxFileSizeKB > 0 && raw.SizeBytes > int64(idx.cfg.MaxFileSizeKB)*1024 {
		return nil, fmt.Errorf("%w: %d bytes", domain.ErrFileTooLarge, raw.SizeBytes)
	}

	norm, err := idx.normalisers.ForDialect(raw.DocType)
	if err != nil {
		return nil, err
	}
	res, err := norm.Normalise(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("normalising: %w", err)
	}

	meta := buildMetadata(raw)
	title := res.Title
	if title == "" {
		title = titleFromID(ref.ID)
	}
	tf := termFrequencies(res.Content)
	words := 0
	for _, count := range tf {
		words += count
	}
	return &domain.IndexedDocument{
		ID:            ref.ID,
		Metadata:      &meta,
		Title:         title,
		Description:   extractDescription(res.Content),
		WordCount:     words,
		Headings:      res.Headings,
		CodeBlocks:    res.CodeBlocks,
		TermFrequency: tf,
		ContentLength: len(res.Content),
	}, nil
}

func documentFrequencies(docs map[string]*domain.IndexedDocument) map[string]int {
	df := make(map[string]int)
	for _, doc := range docs {
		for term := range doc.TermFrequency {
			df[term]++
		}
	}
	return df
}

// Get returns the indexed document with the given id.
func (idx *Indexer) Get(id string) (*domain.IndexedDocument, bool) {
	doc, ok := idx.current.Load().docs[id]
	return doc, ok
}

// AllIDs returns the ids of every indexed document in sorted order.
func (idx *Indexer) AllIDs() []string {
	snap := idx.current.Load()
	ids := make([]string, 0, len(snap.docs))
	for id := range snap.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Similarity scores a tokenized query against one document using
// TF-IDF. Terms absent from the document or the corpus contribute
// nothing.
func (idx *Indexer) Similarity(queryTerms []string, docID string) float64 {
	snap := idx.current.Load()
	doc, ok := snap.docs[docID]
	if !ok || doc.WordCount == 0 {
		return 0
	}
	total := len(snap.docs)
	var score float64
	for _, term := range queryTerms {
		tf, ok := doc.TermFrequency[term]
		if !ok {
			continue
		}
		df := snap.df[term]
		if df == 0 {
			continue
		}
		score += (float64(tf) / float64(doc.WordCount)) * math.Log(float64(total)/float64(df))
	}
	return score
}

var skipLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^=+$`),
	regexp.MustCompile(`^-+$`),
	regexp.MustCompile(`^#+\s`),
	regexp.MustCompile(`^\.\.\s`),
	regexp.MustCompile(`^:\w+:`),
	regexp.MustCompile(`^\*+$`),
}

const (
	descriptionTarget  = 200
	descriptionMinLine = 20
)

// extractDescription assembles a short summary from the first
// substantive prose lines. Markup scaffolding and very short lines are
// ignored.
func extractDescription(content string) string {
	var parts []string
	joined := 0
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < descriptionMinLine || isMarkupLine(line) {
			continue
		}
		if joined > 0 {
			joined++ // joining space
		}
		parts = append(parts, line)
		joined += len(line)
		if joined >= descriptionTarget {
			break
		}
	}
	if len(parts) == 0 {
		return domain.NoDescription
	}
	desc := strings.Join(parts, " ")
	if len(desc) > descriptionTarget {
		desc = desc[:descriptionTarget] + "..."
	}
	return desc
}

func isMarkupLine(line string) bool {
	for _, re := range skipLinePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// titleFromID turns a document path into a readable fallback title.
func titleFromID(id string) string {
	base := id
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return strings.TrimSpace(base)
}
