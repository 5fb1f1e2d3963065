package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasblocks/dialect"
)

// startTestSession creates an in-process MCP server/client pair over the
// petstore units of d and returns the connected client session. The server
// is shut down when the test ends.
func startTestSession(t *testing.T, d dialect.Dialect) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasblocks-test", Version: "test"},
		nil,
	)
	registerAllTools(server, petstoreTools(t, d, nil))

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t, dialect.Swagger12)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, result.Tools, 3)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
	for _, name := range []string{"build_root", "build_api_declaration", "list_resources"} {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}
}

func TestIntegration_CallTool_BuildRoot(t *testing.T) {
	session := startTestSession(t, dialect.OAS30)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "build_root",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "3.0", structured["dialect"])
	assert.Equal(t, "json", structured["format"])

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(structured["document"].(string)), &doc))
	assert.Equal(t, "3.0.0", doc["openapi"])
	assert.Contains(t, doc, "components")
}

func TestIntegration_CallTool_ListAndBuildAPI(t *testing.T) {
	session := startTestSession(t, dialect.Swagger12)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "list_resources",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	structured := unmarshalStructured(t, result)
	assert.Equal(t, []any{"pet", "user"}, structured["resources"])

	result, err = session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "build_api_declaration",
		Arguments: map[string]any{"resource": "user", "format": "yaml"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	structured = unmarshalStructured(t, result)
	assert.Equal(t, "yaml", structured["format"])
	assert.Contains(t, structured["document"], "resourcePath: /user")
}

func TestIntegration_CallTool_BuildAPIUnknownResource(t *testing.T) {
	session := startTestSession(t, dialect.Swagger12)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "build_api_declaration",
		Arguments: map[string]any{"resource": "store"},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

// unmarshalStructured extracts the structured output from a CallToolResult
// as a map. Falls back to parsing the first TextContent as JSON.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
