package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/raihalea/esp-idf-docs/internal/core/domain"
)

// SearchInput is the input schema for the search_docs tool.
type SearchInput struct {
	Query  string `json:"query" jsonschema:"the text to search for in the documentation"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of results to return"`
	Offset int    `json:"offset,omitempty" jsonschema:"number of results to skip for pagination"`
}

// StructureInput is the input schema for the get_doc_structure tool.
type StructureInput struct{}

// ReadDocInput is the input schema for the read_doc tool.
type ReadDocInput struct {
	FilePath string `json:"file_path" jsonschema:"relative path of the documentation file to read"`
}

// APIReferenceInput is the input schema for the find_api_references tool.
type APIReferenceInput struct {
	Component string `json:"component" jsonschema:"ESP-IDF component name, e.g. esp_wifi or gpio"`
}

// RecommendInput is the input schema for the get_recommendations tool.
type RecommendInput struct {
	Query string `json:"query" jsonschema:"topic to recommend documentation for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of recommendations (default 5)"`
}

// IndexStatusInput is the input schema for the get_index_status tool.
type IndexStatusInput struct{}

// IndexStatusOutput reports the index lifecycle state and statistics.
type IndexStatusOutput struct {
	State  string              `json:"state"`
	Stats  domain.IndexStats   `json:"stats"`
	Report *domain.BuildReport `json:"last_build,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_docs",
		Description: "Search ESP-IDF documentation for a query with relevance-ranked results",
	}, s.handleSearchDocs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_doc_structure",
		Description: "Get the directory and file structure of the ESP-IDF documentation",
	}, s.handleStructure)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "read_doc",
		Description: "Read the full content of a specific documentation file",
	}, s.handleReadDoc)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_api_references",
		Description: "Find API references for an ESP-IDF component across the documentation",
	}, s.handleAPIReferences)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_recommendations",
		Description: "Get documentation recommendations related to a topic",
	}, s.handleRecommendations)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_index_status",
		Description: "Report the state and statistics of the documentation index",
	}, s.handleIndexStatus)
}

func (s *Server) handleSearchDocs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, *domain.SearchResponse, error) {
	resp, err := s.ports.Explorer.SearchDocs(ctx, input.Query, domain.SearchOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) handleStructure(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ StructureInput,
) (*mcp.CallToolResult, *domain.DocStructure, error) {
	structure, err := s.ports.Explorer.Structure(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, structure, nil
}

func (s *Server) handleReadDoc(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadDocInput,
) (*mcp.CallToolResult, *domain.DocumentContent, error) {
	doc, err := s.ports.Explorer.ReadDoc(ctx, input.FilePath)
	if err != nil {
		return nil, nil, err
	}
	return nil, doc, nil
}

func (s *Server) handleAPIReferences(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input APIReferenceInput,
) (*mcp.CallToolResult, *domain.APIReferenceResponse, error) {
	resp, err := s.ports.Explorer.FindAPIReferences(ctx, input.Component)
	if err != nil {
		return nil, nil, err
	}
	return nil, resp, nil
}

func (s *Server) handleRecommendations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecommendInput,
) (*mcp.CallToolResult, *domain.RecommendationResponse, error) {
	if s.ports.Recommend == nil {
		return nil, nil, errors.New("recommendations are not available")
	}
	return nil, s.ports.Recommend.Recommend(ctx, input.Query, input.Limit), nil
}

func (s *Server) handleIndexStatus(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ IndexStatusInput,
) (*mcp.CallToolResult, *IndexStatusOutput, error) {
	if s.ports.Index == nil {
		return nil, nil, errors.New("index status is not available")
	}
	return nil, &IndexStatusOutput{
		State:  s.ports.Index.State().String(),
		Stats:  s.ports.Index.Stats(),
		Report: s.ports.Index.Report(),
	}, nil
}
