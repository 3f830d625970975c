package domain

// Recommendation types produced by the three candidate generators.
// Popular recommendations carry a pattern-specific suffix, e.g.
// "popular_getting_started_guide".
const (
	// RecTypeContentSimilarity marks TF-IDF similarity candidates.
	RecTypeContentSimilarity = "content_similarity"

	// RecTypePopular is the prefix for importance-pattern candidates.
	RecTypePopular = "popular"

	// RecTypeRelatedAPI marks synonym-expansion candidates.
	RecTypeRelatedAPI = "related_api"
)

// Recommendation is a single recommended document. Value object,
// produced per request, never persisted.
type Recommendation struct {
	// ID is the recommended document identifier.
	ID string `json:"file_path"`

	// Title is the document title.
	Title string `json:"title"`

	// Description is the document description.
	Description string `json:"description"`

	// RelevanceScore orders recommendations, higher first.
	RelevanceScore float64 `json:"relevance_score"`

	// Type tags the generator that produced this candidate.
	Type string `json:"recommendation_type"`

	// Metadata carries generator-specific details.
	Metadata map[string]any `json:"metadata"`
}

// RecommendationResponse is the answer to one recommendation request.
// Recommendations are score-descending and contain no duplicate IDs.
type RecommendationResponse struct {
	Query           string           `json:"query"`
	Recommendations []Recommendation `json:"recommendations"`
	Metadata        map[string]any   `json:"metadata"`
}
