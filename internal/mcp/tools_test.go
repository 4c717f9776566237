// ABOUTME: Tests for MCP tool and resource handlers.
// ABOUTME: Drives the handlers directly against an in-memory store.

package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/harper/taggit/pkg/tagmanager"
	"github.com/harper/taggit/pkg/tags"
	"github.com/harper/taggit/pkg/xattrs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	m := tagmanager.NewMacOS(xattrs.NewAttribute(xattrs.NewMemStore()), nil)
	return NewServer(m, "test", zerolog.Nop())
}

func call(t *testing.T, h func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error), args string) *mcp.CallToolResult {
	t.Helper()
	res, err := h(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(args)},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestAddAndListTags(t *testing.T) {
	s := newTestServer(t)

	res := call(t, s.handleAddTags, `{"path": "f.txt", "tags": ["plain", ["pair", "red"], {"name": "obj", "color": 4}, "wire\n7"]}`)
	require.False(t, res.IsError, text(t, res))

	res = call(t, s.handleListTags, `{"path": "f.txt"}`)
	require.False(t, res.IsError)

	var got []struct {
		Name      string `json:"name"`
		ColorName string `json:"color_name"`
		ColorCode int    `json:"color_code"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "plain", got[0].Name)
	assert.Equal(t, "NONE", got[0].ColorName)
	assert.Equal(t, "RED", got[1].ColorName)
	assert.Equal(t, 4, got[2].ColorCode)
	assert.Equal(t, "ORANGE", got[3].ColorName)
}

func TestAddTagsRejectsWholeBatch(t *testing.T) {
	s := newTestServer(t)

	res := call(t, s.handleAddTags, `{"path": "f.txt", "tags": ["ok", 42]}`)
	assert.True(t, res.IsError)

	res = call(t, s.handleAddTags, `{"path": "f.txt", "tags": [["a", "b", "c"]]}`)
	assert.True(t, res.IsError)

	list, err := s.manager.List("f.txt")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddTagsReportsColorWarnings(t *testing.T) {
	s := newTestServer(t)

	res := call(t, s.handleAddTags, `{"path": "f.txt", "tags": [{"name": "x", "color": "rainbow"}]}`)
	require.False(t, res.IsError)
	assert.Contains(t, text(t, res), "warning")
	assert.Contains(t, text(t, res), "rainbow")
}

func TestRemoveTags(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.manager.Add("f.txt", tags.NameColor{Name: "t1", Color: "red"}, tags.Name("t2")))

	res := call(t, s.handleRemoveTags, `{"path": "f.txt", "tags": [["t1", "red"]]}`)
	require.False(t, res.IsError)

	list, _ := s.manager.List("f.txt")
	require.Len(t, list, 1)
	assert.Equal(t, "t2", list[0].Name())

	res = call(t, s.handleRemoveAllTags, `{"path": "f.txt"}`)
	require.False(t, res.IsError)

	list, _ = s.manager.List("f.txt")
	assert.Empty(t, list)
}

func TestMissingPath(t *testing.T) {
	s := newTestServer(t)

	assert.True(t, call(t, s.handleListTags, `{}`).IsError)
	assert.True(t, call(t, s.handleRemoveAllTags, `{}`).IsError)
	assert.True(t, call(t, s.handleAddTags, `{"tags": ["x"]}`).IsError)
}

func TestReadResource(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.manager.Add("/abs/f.txt", tags.NameColor{Name: "work", Color: "green"}))

	res, err := s.handleReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "taggit://file//abs/f.txt"},
	})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, `"GREEN"`)
	assert.Contains(t, res.Contents[0].Text, `"/abs/f.txt"`)

	_, err = s.handleReadResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "other://file/x"},
	})
	assert.Error(t, err)
}
