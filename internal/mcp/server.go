// ABOUTME: MCP server exposing file tag operations to AI agents.
// ABOUTME: Provides tools and a resource template over stdio.

package mcp

import (
	"context"

	"github.com/harper/taggit/pkg/tagmanager"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

type Server struct {
	server  *mcp.Server
	manager tagmanager.Manager
	log     zerolog.Logger
}

func NewServer(manager tagmanager.Manager, version string, log zerolog.Logger) *Server {
	s := &Server{manager: manager, log: log}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "taggit",
			Version: version,
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
