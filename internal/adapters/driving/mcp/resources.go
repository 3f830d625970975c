package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for documentation resources.
const uriScheme = "docs://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the corpus structure.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "structure",
		Name:        "structure",
		Description: "Directory and file structure of the ESP-IDF documentation",
		MIMEType:    "application/json",
	}, s.handleStructureResource)

	// Template for reading individual documentation files.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "file/{path}",
		Name:        "doc-file",
		Description: "Content of a specific documentation file",
		MIMEType:    "text/plain",
	}, s.handleFileResource)
}

// handleStructureResource returns the documentation structure as JSON.
func (s *Server) handleStructureResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	structure, err := s.ports.Explorer.Structure(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting structure: %w", err)
	}

	data, err := json.MarshalIndent(structure, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling structure: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFileResource returns the content of one documentation file.
func (s *Server) handleFileResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	path := strings.TrimPrefix(req.Params.URI, uriScheme+"file/")
	if path == "" || path == req.Params.URI {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	doc, err := s.ports.Explorer.ReadDoc(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     doc.Content,
		}},
	}, nil
}
