package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
	"github.com/raihalea/esp-idf-docs/internal/core/ports/driving"
	"github.com/raihalea/esp-idf-docs/internal/logger"
)

// Recommender suggests documents for a query by combining three
// independent generators: content similarity, popular documents and
// related API references.
type Recommender struct {
	index *Indexer
	cfg   domain.Config
	now   func() time.Time
}

var _ driving.RecommendationService = (*Recommender)(nil)

// NewRecommender creates a recommender backed by the given index.
func NewRecommender(index *Indexer, cfg domain.Config) *Recommender {
	return &Recommender{index: index, cfg: cfg, now: time.Now}
}

// Recommend returns up to limit deduplicated recommendations in
// descending score order. Any generator failure degrades to an empty
// list with the cause recorded in the response metadata.
func (r *Recommender) Recommend(ctx context.Context, query string, limit int) *domain.RecommendationResponse {
	start := r.now()
	resp := &domain.RecommendationResponse{
		Query:    query,
		Metadata: map[string]any{},
	}
	if !r.cfg.EnableRecommendations {
		resp.Recommendations = []domain.Recommendation{}
		resp.Metadata["error"] = domain.ErrRecommendationsDisabled.Error()
		return resp
	}
	if limit <= 0 {
		limit = 5
	}

	recs, err := r.generate(ctx, query, limit)
	if err != nil {
		logger.Warn("Recommendations for %q failed: %v", query, err)
		resp.Recommendations = []domain.Recommendation{}
		resp.Metadata["error"] = err.Error()
		return resp
	}

	resp.Recommendations = recs
	types := make(map[string]struct{})
	for _, rec := range recs {
		types[rec.Type] = struct{}{}
	}
	typeList := make([]string, 0, len(types))
	for t := range types {
		typeList = append(typeList, t)
	}
	sort.Strings(typeList)

	resp.Metadata["recommendation_count"] = len(recs)
	resp.Metadata["recommendation_types"] = typeList
	resp.Metadata["search_time_ms"] = float64(r.now().Sub(start).Microseconds()) / 1000.0
	resp.Metadata["index_stats"] = r.index.Stats()
	return resp
}

func (r *Recommender) generate(ctx context.Context, query string, limit int) (recs []domain.Recommendation, err error) {
	defer func() {
		if p := recover(); p != nil {
			recs, err = nil, fmt.Errorf("recommendation generator panicked: %v", p)
		}
	}()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all := r.contentSimilarity(query, limit)
	all = append(all, r.popular(query, limit/2)...)
	all = append(all, r.relatedAPI(query, limit/2)...)

	// Stable sort keeps generator order among equal scores, so the
	// first-seen entry wins the dedup below.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].RelevanceScore > all[j].RelevanceScore
	})

	seen := make(map[string]struct{})
	unique := make([]domain.Recommendation, 0, limit)
	for _, rec := range all {
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		seen[rec.ID] = struct{}{}
		unique = append(unique, rec)
		if len(unique) == limit {
			break
		}
	}
	return unique, nil
}

// contentSimilarity ranks documents by TF-IDF similarity plus title and
// heading term bonuses.
func (r *Recommender) contentSimilarity(query string, limit int) []domain.Recommendation {
	queryTerms := tokenize(query)

	type scored struct {
		doc   *domain.IndexedDocument
		score float64
	}
	var candidates []scored
	for _, id := range r.index.AllIDs() {
		doc, ok := r.index.Get(id)
		if !ok {
			continue
		}
		score := r.index.Similarity(queryTerms, id)

		titleLower := strings.ToLower(doc.Title)
		for _, term := range queryTerms {
			if strings.Contains(titleLower, term) {
				score += 10
			}
		}
		for _, h := range doc.Headings {
			headingLower := strings.ToLower(h.Title)
			for _, term := range queryTerms {
				if strings.Contains(headingLower, term) && h.Level > 0 {
					score += 5 / float64(h.Level)
				}
			}
		}

		if score > 0 {
			candidates = append(candidates, scored{doc: doc, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	recs := make([]domain.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		recs = append(recs, domain.Recommendation{
			ID:             c.doc.ID,
			Title:          c.doc.Title,
			Description:    c.doc.Description,
			RelevanceScore: c.score,
			Type:           domain.RecTypeContentSimilarity,
			Metadata: map[string]any{
				"word_count":        c.doc.WordCount,
				"headings_count":    len(c.doc.Headings),
				"code_blocks_count": len(c.doc.CodeBlocks),
				"doc_type":          c.doc.Metadata.DocType,
			},
		})
	}
	return recs
}

// popularPatterns marks documents that act as entry points into the
// corpus; earlier entries are checked first and the first hit wins.
var popularPatterns = []struct {
	pattern     *regexp.Regexp
	description string
	points      float64
}{
	{regexp.MustCompile(`getting.?started`), "Getting Started Guide", 15},
	{regexp.MustCompile(`api.?reference`), "API Reference", 12},
	{regexp.MustCompile(`example`), "Code Examples", 10},
	{regexp.MustCompile(`tutorial`), "Tutorial", 10},
	{regexp.MustCompile(`quick.?start`), "Quick Start Guide", 8},
	{regexp.MustCompile(`overview`), "Overview Documentation", 6},
}

// popular surfaces well-known entry point documents that also mention
// the query in their title or description.
func (r *Recommender) popular(query string, limit int) []domain.Recommendation {
	queryTerms := strings.Fields(strings.ToLower(query))

	var recs []domain.Recommendation
	for _, id := range r.index.AllIDs() {
		doc, ok := r.index.Get(id)
		if !ok {
			continue
		}

		var score float64
		recType := domain.RecTypePopular
		idLower := strings.ToLower(doc.ID)
		titleLower := strings.ToLower(doc.Title)
		for _, p := range popularPatterns {
			if p.pattern.MatchString(idLower) || p.pattern.MatchString(titleLower) {
				score += p.points
				recType = domain.RecTypePopular + "_" +
					strings.ReplaceAll(strings.ToLower(p.description), " ", "_")
				break
			}
		}

		if doc.WordCount > 1000 {
			score += 5
		}
		if len(doc.Headings) > 5 {
			score += 3
		}
		if len(doc.CodeBlocks) > 0 {
			score += 4
		}

		descLower := strings.ToLower(doc.Description)
		relevant := false
		for _, term := range queryTerms {
			if strings.Contains(titleLower, term) || strings.Contains(descLower, term) {
				relevant = true
				break
			}
		}
		if score <= 0 || !relevant {
			continue
		}

		recs = append(recs, domain.Recommendation{
			ID:             doc.ID,
			Title:          doc.Title,
			Description:    doc.Description,
			RelevanceScore: score,
			Type:           recType,
			Metadata: map[string]any{
				"word_count":       doc.WordCount,
				"importance_score": score,
				"doc_type":         doc.Metadata.DocType,
			},
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].RelevanceScore > recs[j].RelevanceScore
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// relatedAPI recommends API documentation connected to the query
// through the component relationship table.
func (r *Recommender) relatedAPI(query string, limit int) []domain.Recommendation {
	terms := relatedTerms(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var recs []domain.Recommendation
	for _, id := range r.index.AllIDs() {
		doc, ok := r.index.Get(id)
		if !ok {
			continue
		}

		var score float64
		var matched []string
		docText := strings.ToLower(doc.Title + " " + doc.Description)
		for _, term := range terms {
			if strings.Contains(docText, term) {
				score += 3
				matched = append(matched, term)
			}
		}
		for _, h := range doc.Headings {
			headingLower := strings.ToLower(h.Title)
			for _, term := range terms {
				if strings.Contains(headingLower, term) {
					score += 5
					if !containsString(matched, term) {
						matched = append(matched, term)
					}
				}
			}
		}
		idLower := strings.ToLower(doc.ID)
		if strings.Contains(idLower, "api") || strings.Contains(idLower, "reference") {
			score += 8
		}
		if score <= 0 {
			continue
		}

		recs = append(recs, domain.Recommendation{
			ID:             doc.ID,
			Title:          doc.Title,
			Description:    doc.Description,
			RelevanceScore: score,
			Type:           domain.RecTypeRelatedAPI,
			Metadata: map[string]any{
				"matched_terms":       matched,
				"api_relevance_score": score,
				"doc_type":            doc.Metadata.DocType,
			},
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].RelevanceScore > recs[j].RelevanceScore
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
