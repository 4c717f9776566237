// ABOUTME: MCP prompts for common tagging workflows.
// ABOUTME: Guides agents through the tag tools for a given file.

package mcp

import (
	"context"
	"fmt"

	"github.com/harper/taggit/pkg/tags"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "suggest-tags",
		Description: "Suggest Finder tags for a file based on its name and current tags",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "path",
				Description: "File to tag",
				Required:    true,
			},
		},
	}, s.getSuggestTagsPrompt)
}

func (s *Server) getSuggestTagsPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	path, ok := req.Params.Arguments["path"]
	if !ok || path == "" {
		return nil, fmt.Errorf("path argument is required")
	}

	template := fmt.Sprintf(`Please suggest Finder tags for the file: %s

1. Use the list_tags tool to see the tags it already has
2. Look at the file name and location to infer its purpose
3. Propose up to three additional tags, each with one of these colors: %s
4. After I confirm, use the add_tags tool with objects like {"name": "...", "color": "..."}

Do not remove existing tags unless I ask.`, path, tags.ValidColors())

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}
