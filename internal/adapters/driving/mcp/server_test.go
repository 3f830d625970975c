package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

type stubExplorer struct {
	searchResp *domain.SearchResponse
	searchErr  error
	structure  *domain.DocStructure
	document   *domain.DocumentContent
	apiResp    *domain.APIReferenceResponse

	lastQuery string
	lastOpts  domain.SearchOptions
	lastPath  string
}

func (s *stubExplorer) SearchDocs(_ context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
	s.lastQuery = query
	s.lastOpts = opts
	return s.searchResp, s.searchErr
}

func (s *stubExplorer) Structure(context.Context) (*domain.DocStructure, error) {
	return s.structure, nil
}

func (s *stubExplorer) ReadDoc(_ context.Context, path string) (*domain.DocumentContent, error) {
	s.lastPath = path
	return s.document, nil
}

func (s *stubExplorer) FindAPIReferences(_ context.Context, _ string) (*domain.APIReferenceResponse, error) {
	return s.apiResp, nil
}

type stubRecommender struct {
	resp *domain.RecommendationResponse
}

func (s *stubRecommender) Recommend(context.Context, string, int) *domain.RecommendationResponse {
	return s.resp
}

type stubIndex struct {
	state domain.IndexState
	stats domain.IndexStats
}

func (s *stubIndex) StartIndexing(context.Context) error { return nil }
func (s *stubIndex) WaitReady(context.Context) error     { return nil }
func (s *stubIndex) State() domain.IndexState            { return s.state }
func (s *stubIndex) Stats() domain.IndexStats            { return s.stats }
func (s *stubIndex) Report() *domain.BuildReport         { return nil }

func TestNewServerRequiresExplorer(t *testing.T) {
	_, err := NewServer(&Ports{})
	assert.ErrorIs(t, err, ErrMissingExplorerService)
}

func TestNewServerOptionalPorts(t *testing.T) {
	s, err := NewServer(&Ports{Explorer: &stubExplorer{}})
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestHandleSearchDocs(t *testing.T) {
	explorer := &stubExplorer{
		searchResp: &domain.SearchResponse{Query: "wifi"},
	}
	s, err := NewServer(&Ports{Explorer: explorer})
	require.NoError(t, err)

	_, resp, err := s.handleSearchDocs(context.Background(), nil, SearchInput{
		Query:  "wifi",
		Limit:  10,
		Offset: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "wifi", resp.Query)
	assert.Equal(t, "wifi", explorer.lastQuery)
	assert.Equal(t, domain.SearchOptions{Limit: 10, Offset: 5}, explorer.lastOpts)
}

func TestHandleSearchDocsError(t *testing.T) {
	explorer := &stubExplorer{searchErr: domain.ErrQueryTooLong}
	s, err := NewServer(&Ports{Explorer: explorer})
	require.NoError(t, err)

	_, _, err = s.handleSearchDocs(context.Background(), nil, SearchInput{Query: "q"})
	assert.ErrorIs(t, err, domain.ErrQueryTooLong)
}

func TestHandleReadDoc(t *testing.T) {
	explorer := &stubExplorer{
		document: &domain.DocumentContent{Content: "body"},
	}
	s, err := NewServer(&Ports{Explorer: explorer})
	require.NoError(t, err)

	_, doc, err := s.handleReadDoc(context.Background(), nil, ReadDocInput{FilePath: "a.rst"})
	require.NoError(t, err)
	assert.Equal(t, "body", doc.Content)
	assert.Equal(t, "a.rst", explorer.lastPath)
}

func TestHandleRecommendationsUnavailable(t *testing.T) {
	s, err := NewServer(&Ports{Explorer: &stubExplorer{}})
	require.NoError(t, err)

	_, _, err = s.handleRecommendations(context.Background(), nil, RecommendInput{Query: "wifi"})
	assert.Error(t, err)
}

func TestHandleRecommendations(t *testing.T) {
	s, err := NewServer(&Ports{
		Explorer:  &stubExplorer{},
		Recommend: &stubRecommender{resp: &domain.RecommendationResponse{Query: "wifi"}},
	})
	require.NoError(t, err)

	_, resp, err := s.handleRecommendations(context.Background(), nil, RecommendInput{Query: "wifi"})
	require.NoError(t, err)
	assert.Equal(t, "wifi", resp.Query)
}

func TestHandleIndexStatus(t *testing.T) {
	built := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s, err := NewServer(&Ports{
		Explorer: &stubExplorer{},
		Index: &stubIndex{
			state: domain.IndexReady,
			stats: domain.IndexStats{TotalDocuments: 12, BuiltAt: built},
		},
	})
	require.NoError(t, err)

	_, status, err := s.handleIndexStatus(context.Background(), nil, IndexStatusInput{})
	require.NoError(t, err)
	assert.Equal(t, "ready", status.State)
	assert.Equal(t, 12, status.Stats.TotalDocuments)
	assert.Nil(t, status.Report)
}

func TestHandleIndexStatusUnavailable(t *testing.T) {
	s, err := NewServer(&Ports{Explorer: &stubExplorer{}})
	require.NoError(t, err)

	_, _, err = s.handleIndexStatus(context.Background(), nil, IndexStatusInput{})
	assert.Error(t, err)
}
