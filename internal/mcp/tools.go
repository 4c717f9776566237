// ABOUTME: MCP tools for listing, adding, and removing file tags.
// ABOUTME: Maps the tag manager operations to the MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harper/taggit/pkg/tags"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const tagItemSchema = `{
	"oneOf": [
		{"type": "string", "description": "Tag name, or \"name\\ncode\" wire form"},
		{"type": "array", "items": {"type": "string"}, "minItems": 1, "maxItems": 2, "description": "[name] or [name, color]"},
		{
			"type": "object",
			"properties": {
				"name": {"type": "string"},
				"color": {"type": "string", "description": "Color name or code 0-7"}
			},
			"required": ["name"]
		}
	]
}`

func (s *Server) registerTools() {
	// list_tags
	s.server.AddTool(&mcp.Tool{
		Name:        "list_tags",
		Description: "List the Finder tags of a file",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"path": {"type": "string", "description": "File path"}
			},
			"required": ["path"]
		}`),
	}, s.handleListTags)

	// add_tags
	s.server.AddTool(&mcp.Tool{
		Name:        "add_tags",
		Description: "Add tags to a file; tags already present are left alone",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"path": {"type": "string", "description": "File path"},
				"tags": {"type": "array", "items": ` + tagItemSchema + `}
			},
			"required": ["path", "tags"]
		}`),
	}, s.handleAddTags)

	// remove_tags
	s.server.AddTool(&mcp.Tool{
		Name:        "remove_tags",
		Description: "Remove tags from a file; name and color must both match",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"path": {"type": "string", "description": "File path"},
				"tags": {"type": "array", "items": ` + tagItemSchema + `}
			},
			"required": ["path", "tags"]
		}`),
	}, s.handleRemoveTags)

	// remove_all_tags
	s.server.AddTool(&mcp.Tool{
		Name:        "remove_all_tags",
		Description: "Remove every tag from a file",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"path": {"type": "string", "description": "File path"}
			},
			"required": ["path"]
		}`),
	}, s.handleRemoveAllTags)
}

type pathParams struct {
	Path string `json:"path"`
}

type tagsParams struct {
	Path string            `json:"path"`
	Tags []json.RawMessage `json:"tags"`
}

// Tool handlers.
func (s *Server) handleListTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params pathParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}
	if params.Path == "" {
		return errorResult("path is required"), nil
	}

	list, err := s.manager.List(params.Path)
	if err != nil {
		return errorResult(fmt.Sprintf("failed to list tags: %v", err)), nil
	}

	data, _ := json.MarshalIndent(list, "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleAddTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.mutate(req, "add", func(path string, inputs []tags.Input) error {
		return s.manager.Add(path, inputs...)
	})
}

func (s *Server) handleRemoveTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.mutate(req, "remove", func(path string, inputs []tags.Input) error {
		return s.manager.Remove(path, inputs...)
	})
}

func (s *Server) handleRemoveAllTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params pathParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}
	if params.Path == "" {
		return errorResult("path is required"), nil
	}

	if err := s.manager.RemoveAll(params.Path); err != nil {
		return errorResult(fmt.Sprintf("failed to remove tags: %v", err)), nil
	}
	return textResult(fmt.Sprintf("Removed all tags from %s", params.Path)), nil
}

// mutate decodes and resolves every tag before calling op, so one bad item
// rejects the whole call. Color warnings are returned to the caller.
func (s *Server) mutate(req *mcp.CallToolRequest, verb string, op func(string, []tags.Input) error) (*mcp.CallToolResult, error) {
	var params tagsParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}
	if params.Path == "" {
		return errorResult("path is required"), nil
	}

	var warnings tags.Warnings
	inputs := make([]tags.Input, 0, len(params.Tags))
	for i, raw := range params.Tags {
		in, err := decodeInput(raw)
		if err != nil {
			return errorResult(fmt.Sprintf("tag %d: %v", i, err)), nil
		}
		// Resolve here so warnings are attributed to this call.
		t, err := in.Resolve(&warnings)
		if err != nil {
			return errorResult(fmt.Sprintf("tag %d: %v", i, err)), nil
		}
		inputs = append(inputs, t)
	}

	if err := op(params.Path, inputs); err != nil {
		return errorResult(fmt.Sprintf("failed to %s tags: %v", verb, err)), nil
	}

	for _, w := range warnings {
		s.log.Warn().Str("input", w.Input).Str("path", params.Path).Msg(w.String())
	}

	msg := fmt.Sprintf("%s %d tag(s) on %s", pastTense(verb), len(inputs), params.Path)
	if len(warnings) > 0 {
		lines := make([]string, len(warnings))
		for i, w := range warnings {
			lines[i] = "warning: " + w.String()
		}
		msg += "\n" + strings.Join(lines, "\n")
	}
	return textResult(msg), nil
}

// decodeInput accepts a string (wire form or bare name), a one or two
// element array, or an object with name and optional color.
func decodeInput(raw json.RawMessage) (tags.Input, error) {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return tags.Wire(str), nil
	}

	var tuple []string
	if err := json.Unmarshal(raw, &tuple); err == nil {
		switch len(tuple) {
		case 1:
			return tags.Name(tuple[0]), nil
		case 2:
			return tags.NameColor{Name: tuple[0], Color: tuple[1]}, nil
		}
		_, err := tags.FromTuple(tuple, nil)
		return nil, err
	}

	var obj struct {
		Name  *string          `json:"name"`
		Color *json.RawMessage `json:"color"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Name != nil {
		if obj.Color == nil {
			return tags.Name(*obj.Name), nil
		}
		color, err := colorString(*obj.Color)
		if err != nil {
			return nil, err
		}
		return tags.NameColor{Name: *obj.Name, Color: color}, nil
	}

	return nil, fmt.Errorf("%w: unsupported tag value %s", tags.ErrInvalidArgument, string(raw))
}

// colorString accepts a color as a JSON string or integer.
func colorString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return fmt.Sprint(n), nil
	}
	return "", fmt.Errorf("%w: color must be a string or integer", tags.ErrInvalidArgument)
}

func pastTense(verb string) string {
	switch verb {
	case "add":
		return "Added"
	case "remove":
		return "Removed"
	default:
		return verb
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		IsError: true,
	}
}
