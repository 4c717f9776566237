// ABOUTME: MCP resources exposing a file's tags as readable JSON.
// ABOUTME: Allows AI agents to read tags via the taggit://file/ URI scheme.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const fileURIPrefix = "taggit://file/"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: fileURIPrefix + "{+path}",
			Name:        "File tags",
			Description: "Finder tags of a file by path",
			MIMEType:    "application/json",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	path, ok := strings.CutPrefix(req.Params.URI, fileURIPrefix)
	if !ok || path == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	list, err := s.manager.List(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	data, err := json.MarshalIndent(map[string]any{
		"path": path,
		"tags": list,
	}, "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
